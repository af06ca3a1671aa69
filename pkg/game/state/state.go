package state

import (
	"github.com/arekfu/quoridor/pkg/engine/world"
)

// InputMode selects what the arrow keys do for a human seat
type InputMode int

// Input modes
const (
	ModeStep InputMode = iota
	ModeBarrier
)

// Game is an interactive session around a Board: whose turn it is, the
// barrier cursor and the message log
type Game struct {
	Board *Board

	Turn int

	Mode          InputMode
	Cursor        world.Position
	CursorDir     world.Direction
	LastMove      Move
	LastMoveValid bool

	Hints []string

	// Passes counts consecutive turns passed without a move
	Passes int

	Messages []string

	// Verify runs Board.Verify after every accepted move
	Verify bool

	Over bool
}

// NewGame creates a session with the first seat to move
func NewGame(b *Board) *Game {
	mid := b.Side() / 2
	return &Game{
		Board:     b,
		Messages:  make([]string, 0),
		Cursor:    world.Pos(mid, mid),
		CursorDir: world.Right,
	}
}

// CurrentSeat returns the seat whose turn it is
func (g *Game) CurrentSeat() Seat {
	return g.Board.Seat(g.Turn)
}

// AdvanceTurn passes play to the next seat in turn order
func (g *Game) AdvanceTurn() {
	g.Turn = (g.Turn + 1) % g.Board.SeatCount()
}

// RewindTurn hands play back to the given seat after an undo
func (g *Game) RewindTurn(seat int) {
	g.Turn = seat
	g.Over = false
}

// CursorBarrier returns the barrier under the placement cursor
func (g *Game) CursorBarrier() (world.Barrier, error) {
	return world.NewBarrier(g.Cursor.X, g.Cursor.Y, g.CursorDir, world.DefaultBarrierLength)
}

// MoveCursor shifts the barrier cursor, keeping it on the lattice
func (g *Game) MoveCursor(d world.Direction) {
	next := g.Cursor.Step(d)
	side := g.Board.Side()
	if next.X < 0 || next.X > side || next.Y < 0 || next.Y > side {
		return
	}
	g.Cursor = next
}

// RotateCursor turns the barrier cursor a quarter turn clockwise
func (g *Game) RotateCursor() {
	switch g.CursorDir {
	case world.Up:
		g.CursorDir = world.Right
	case world.Right:
		g.CursorDir = world.Down
	case world.Down:
		g.CursorDir = world.Left
	default:
		g.CursorDir = world.Up
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SetHints replaces the hint lines shown next to the board
func (g *Game) SetHints(hints []string) {
	g.Hints = hints
}
