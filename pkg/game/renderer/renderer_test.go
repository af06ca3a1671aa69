package renderer

import (
	"strings"
	"testing"

	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/state"
)

func newBoard(t *testing.T) *state.Board {
	t.Helper()
	b, err := state.NewBoard(3, 2, state.WithIDSource(state.NewSequenceSource("s")))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestBuildView_EmptyBoard(t *testing.T) {
	b := newBoard(t)
	want := strings.Join([]string{
		"+-+-+-+",
		"|. 1 .|",
		"+ + + +",
		"|. . .|",
		"+ + + +",
		"|. 2 .|",
		"+-+-+-+",
	}, "\n") + "\n"

	if got := BuildView(b, nil).String(); got != want {
		t.Errorf("BuildView() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildView_Barrier(t *testing.T) {
	b := newBoard(t)
	if !b.Apply(0, state.Place(1, 1, world.Right)) {
		t.Fatal("barrier rejected")
	}

	v := BuildView(b, nil)
	if got, want := v.Row(2), "+ +-+-+"; got != want {
		t.Errorf("Row(2) = %q, want %q", got, want)
	}
	if g := v.At(3, 2); g.Kind != GlyphWall {
		t.Errorf("At(3, 2).Kind = %v, want %v", g.Kind, GlyphWall)
	}
}

func TestBuildView_Seats(t *testing.T) {
	b := newBoard(t)
	for _, s := range b.Seats() {
		col, row := CellAt(s.Position)
		g := BuildView(b, nil).At(col, row)
		if g.Kind != GlyphSeat || g.Seat != s.Index || g.Rune != s.Symbol {
			t.Errorf("At(%d, %d) = %+v, want seat %d %c", col, row, g, s.Index, s.Symbol)
		}
	}
}

func TestGameCursor(t *testing.T) {
	g := state.NewGame(newBoard(t))
	if c := GameCursor(g); c != nil {
		t.Errorf("GameCursor() in step mode = %+v, want nil", c)
	}

	g.Mode = state.ModeBarrier
	c := GameCursor(g)
	if c == nil || !c.Legal {
		t.Fatalf("GameCursor() = %+v, want a legal cursor", c)
	}
	if got, want := BuildView(g.Board, c).Row(2), "+ #####"; got != want {
		t.Errorf("Row(2) = %q, want %q", got, want)
	}

	if !g.Board.Apply(0, state.PlaceBarrier(c.Barrier)) {
		t.Fatal("barrier rejected")
	}
	c = GameCursor(g)
	if c == nil || c.Legal {
		t.Fatalf("GameCursor() over a placed barrier = %+v, want an illegal cursor", c)
	}
	if k := BuildView(g.Board, c).At(3, 2).Kind; k != GlyphCursorBlocked {
		t.Errorf("At(3, 2).Kind = %v, want %v", k, GlyphCursorBlocked)
	}
}

func TestSeatStyle(t *testing.T) {
	if got := SeatStyle(2); got != StyleSeat3 {
		t.Errorf("SeatStyle(2) = %v, want %v", got, StyleSeat3)
	}
	if got := SeatStyle(4); got != StyleSeat1 {
		t.Errorf("SeatStyle(4) = %v, want %v", got, StyleSeat1)
	}
}
