package setup

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

func TestLayout_TwoSeats(t *testing.T) {
	got, err := Layout(9, 2)
	if err != nil {
		t.Fatalf("Layout(9, 2) error: %v", err)
	}
	want := []Placement{
		{Start: world.Pos(4, 0), Goal: world.Down, Symbol: '1'},
		{Start: world.Pos(4, 8), Goal: world.Up, Symbol: '2'},
	}
	if len(got) != len(want) {
		t.Fatalf("Layout(9, 2) returned %d placements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Layout(9, 2)[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLayout_FourSeatsDistinctAndOpposite(t *testing.T) {
	got, err := Layout(9, 4)
	if err != nil {
		t.Fatalf("Layout(9, 4) error: %v", err)
	}
	g := world.NewGrid(9)
	starts := mapset.New[world.Position]()
	for i, p := range got {
		if starts.Has(p.Start) {
			t.Errorf("seat %d starts on an occupied cell %v", i, p.Start)
		}
		starts.Put(p.Start)
		if !g.OnEdge(p.Start, p.Goal.Opposite()) {
			t.Errorf("seat %d starts at %v, not on the side opposite its goal %v", i, p.Start, p.Goal)
		}
	}
	if got[1].Goal != world.Left || got[3].Goal != world.Right {
		t.Errorf("Layout(9, 4) goals = %v %v, want left right", got[1].Goal, got[3].Goal)
	}
}

func TestLayout_Invalid(t *testing.T) {
	tests := []struct{ side, seats int }{
		{9, 1},
		{9, 5},
		{1, 2},
		{2, 3},
	}
	for _, tt := range tests {
		if _, err := Layout(tt.side, tt.seats); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("Layout(%d, %d) error = %v, want ErrInvalidLayout", tt.side, tt.seats, err)
		}
	}
}
