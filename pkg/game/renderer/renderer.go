package renderer

import (
	"strings"

	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// GlyphKind classifies one position of the board lattice
type GlyphKind int

const (
	GlyphCorner GlyphKind = iota
	GlyphCell
	GlyphOpen
	GlyphWall
	GlyphSeat
	GlyphCursor
	GlyphCursorBlocked
)

// Glyph is one position of the board lattice. Seat is only meaningful for
// GlyphSeat.
type Glyph struct {
	Kind GlyphKind
	Rune rune
	Seat int
}

// BoardView is the board drawn on a (2*side+1) square lattice: cells sit on
// odd rows and columns, edges between them, lattice points on even ones
type BoardView struct {
	Size   int
	Glyphs []Glyph
}

// Cursor is an optional barrier preview drawn over the board
type Cursor struct {
	Barrier world.Barrier
	Legal   bool
}

// CellAt returns the lattice coordinates of cell p
func CellAt(p world.Position) (col, row int) {
	return 2*p.X + 1, 2*p.Y + 1
}

// NodeAt returns the lattice coordinates of lattice point p
func NodeAt(p world.Position) (col, row int) {
	return 2 * p.X, 2 * p.Y
}

// EdgeAt returns the lattice coordinates of an edge
func EdgeAt(e world.Edge) (col, row int) {
	col, row = CellAt(e.Cell)
	dx, dy := e.Dir.Delta()
	return col + dx, row + dy
}

// BuildView lays out the board, with an optional cursor on top
func BuildView(b *state.Board, cursor *Cursor) BoardView {
	side := b.Side()
	size := 2*side + 1
	v := BoardView{Size: size, Glyphs: make([]Glyph, size*size)}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch {
			case row%2 == 0 && col%2 == 0:
				v.set(col, row, Glyph{Kind: GlyphCorner, Rune: '+'})
			case row%2 == 1 && col%2 == 1:
				v.set(col, row, Glyph{Kind: GlyphCell, Rune: '.'})
			default:
				v.set(col, row, Glyph{Kind: GlyphOpen, Rune: ' '})
			}
		}
	}

	grid := b.Grid()
	grid.ForEachCell(func(p world.Position, _ uint8) {
		for _, d := range []world.Direction{world.Up, world.Left, world.Right, world.Down} {
			if grid.IsOpen(p, d) {
				continue
			}
			col, row := EdgeAt(world.Edge{Cell: p, Dir: d})
			v.set(col, row, wallGlyph(d))
		}
	})

	for _, bar := range b.Barriers() {
		v.markBarrier(bar, Glyph{Kind: GlyphWall, Rune: '+'})
	}

	for _, s := range b.Seats() {
		col, row := CellAt(s.Position)
		v.set(col, row, Glyph{Kind: GlyphSeat, Rune: s.Symbol, Seat: s.Index})
	}

	if cursor != nil {
		kind := GlyphCursor
		if !cursor.Legal {
			kind = GlyphCursorBlocked
		}
		for _, e := range cursor.Barrier.Edges() {
			if !grid.IsValidPosition(e.Cell) {
				continue
			}
			col, row := EdgeAt(e)
			v.set(col, row, Glyph{Kind: kind, Rune: '#'})
		}
		for i := 0; i <= cursor.Barrier.Length; i++ {
			col, row := NodeAt(cursor.Barrier.Node(i))
			v.set(col, row, Glyph{Kind: kind, Rune: '#'})
		}
	}
	return v
}

// markBarrier paints the lattice points strictly inside a placed barrier
func (v BoardView) markBarrier(bar world.Barrier, g Glyph) {
	for i := 1; i < bar.Length; i++ {
		col, row := NodeAt(bar.Node(i))
		v.set(col, row, g)
	}
}

func wallGlyph(d world.Direction) Glyph {
	if d.Horizontal() {
		return Glyph{Kind: GlyphWall, Rune: '|'}
	}
	return Glyph{Kind: GlyphWall, Rune: '-'}
}

func (v BoardView) set(col, row int, g Glyph) {
	if col < 0 || row < 0 || col >= v.Size || row >= v.Size {
		return
	}
	v.Glyphs[row*v.Size+col] = g
}

// At returns the glyph at lattice coordinates (col, row)
func (v BoardView) At(col, row int) Glyph {
	return v.Glyphs[row*v.Size+col]
}

// Row returns one lattice row as plain text
func (v BoardView) Row(row int) string {
	var sb strings.Builder
	for col := 0; col < v.Size; col++ {
		sb.WriteRune(v.At(col, row).Rune)
	}
	return sb.String()
}

// String renders the whole lattice as plain text, one row per line
func (v BoardView) String() string {
	var sb strings.Builder
	for row := 0; row < v.Size; row++ {
		sb.WriteString(v.Row(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GameCursor returns the barrier preview of a game in barrier mode, or nil
func GameCursor(g *state.Game) *Cursor {
	if g.Mode != state.ModeBarrier {
		return nil
	}
	bar, err := g.CursorBarrier()
	if err != nil {
		return nil
	}
	return &Cursor{Barrier: bar, Legal: g.Board.CheckBarrier(bar)}
}
