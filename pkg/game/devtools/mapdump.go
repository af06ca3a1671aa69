// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arekfu/quoridor/pkg/engine/pathing"
	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/renderer"
	"github.com/arekfu/quoridor/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// Cell size of the arrow drawing. The center of each cell holds the pawn
// and one arrow per open side surrounds it.
const (
	cellSizeX = 4
	cellSizeY = 4
)

// ArrowBoard draws the board with one arrow per open edge of every cell,
// barriers as X along the grid lines and pawns at cell centers
func ArrowBoard(b *state.Board) string {
	side := b.Side()
	width := cellSizeX*side + 1
	height := cellSizeY*side + 1

	image := make([][]byte, height)
	for y := range image {
		image[y] = bytes.Repeat([]byte{' '}, width)
	}

	// Grid lines
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			onRow, onCol := y%cellSizeY == 0, x%cellSizeX == 0
			switch {
			case onRow && onCol:
				image[y][x] = '+'
			case onRow:
				image[y][x] = '-'
			case onCol:
				image[y][x] = '|'
			}
		}
	}

	for _, bar := range b.Barriers() {
		o := bar.Node(0)
		x, y := o.X*cellSizeX, o.Y*cellSizeY
		if bar.Dir == world.Right {
			for i := 1; i < bar.Length*cellSizeX; i++ {
				image[y][x+i] = 'X'
			}
		} else {
			for i := 1; i < bar.Length*cellSizeY; i++ {
				image[y+i][x] = 'X'
			}
		}
	}

	arrows := map[world.Direction]byte{world.Up: '^', world.Right: '>', world.Down: 'v', world.Left: '<'}
	grid := b.Grid()
	grid.ForEachCell(func(p world.Position, mask uint8) {
		cx, cy := p.X*cellSizeX+cellSizeX/2, p.Y*cellSizeY+cellSizeY/2
		for _, d := range world.AllDirections() {
			if mask&uint8(d) == 0 {
				continue
			}
			dx, dy := d.Delta()
			image[cy+dy][cx+dx] = arrows[d]
		}
	})

	for _, s := range b.Seats() {
		cx, cy := s.Position.X*cellSizeX+cellSizeX/2, s.Position.Y*cellSizeY+cellSizeY/2
		image[cy][cx] = byte(s.Symbol)
	}

	var sb strings.Builder
	for _, line := range image {
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FieldString renders a distance field one row per line. Unreachable cells
// show as a dash.
func FieldString(f *pathing.Field) string {
	var sb strings.Builder
	for y := 0; y < f.Side(); y++ {
		for x := 0; x < f.Side(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			d := f.At(world.Pos(x, y))
			if d == pathing.Unreachable {
				sb.WriteString(" -")
				continue
			}
			fmt.Fprintf(&sb, "%2d", d)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteBoardDump writes a full debug dump of a game: metadata, seats,
// barriers, the board and every seat's distance field
func WriteBoardDump(w io.Writer, g *state.Game) {
	b := g.Board
	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "side: %d\n", b.Side())
	fmt.Fprintf(w, "seats: %d\n", b.SeatCount())
	fmt.Fprintf(w, "turn: %d\n", g.Turn)
	fmt.Fprintf(w, "phase: %s\n", b.Phase())
	fmt.Fprintf(w, "applied_moves: %d\n", b.Applied())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows downward)\n")
	if g.LastMoveValid {
		fmt.Fprintf(w, "last_move: %s\n", g.LastMove)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Seats ---")
	for i, s := range b.Seats() {
		fmt.Fprintf(w, "  seat: %c id: %q position: %s goal: %s distance: %d barriers: %d computer: %v\n",
			s.Symbol, s.ID, s.Position, s.Goal, b.Distance(i), s.Barriers, s.IsComputer())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Barriers ---")
	for _, bar := range b.Barriers() {
		fmt.Fprintf(w, "  %s %s\n", bar, bar.Dir)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Board ---")
	fmt.Fprint(w, renderer.BuildView(b, nil).String())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Open edges ---")
	fmt.Fprint(w, ArrowBoard(b))
	fmt.Fprintln(w, "")

	for i, s := range b.Seats() {
		fmt.Fprintf(w, "--- Distance field of seat %c (goal %s) ---\n", s.Symbol, s.Goal)
		fmt.Fprint(w, FieldString(b.Field(i)))
		fmt.Fprintln(w, "")
	}
}

// DumpBoard returns WriteBoardDump as a string
func DumpBoard(g *state.Game) string {
	var sb strings.Builder
	WriteBoardDump(&sb, g)
	return sb.String()
}

// DumpBoardToFile writes the debug dump to board.txt in the working
// directory and returns its absolute path
func DumpBoardToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteBoardDump(f, g)
	return absPath, nil
}
