package pathing

import (
	"math/rand"
	"testing"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

func TestNewField_EmptyBoard(t *testing.T) {
	g := world.NewGrid(9)
	down := NewField(g, world.Down)
	up := NewField(g, world.Up)

	if got := down.At(world.Pos(4, 0)); got != 8 {
		t.Errorf("down.At((4,0)) = %d, want 8", got)
	}
	if got := up.At(world.Pos(4, 8)); got != 8 {
		t.Errorf("up.At((4,8)) = %d, want 8", got)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if got := down.At(world.Pos(x, y)); got != 8-y {
				t.Fatalf("down.At((%d,%d)) = %d, want %d", x, y, got, 8-y)
			}
		}
	}
	if got := down.At(world.Pos(-1, 0)); got != Unreachable {
		t.Errorf("At out of bounds = %d, want Unreachable", got)
	}
}

func TestField_ReconsiderDetour(t *testing.T) {
	g := world.NewGrid(5)
	f := NewField(g, world.Down)

	// A barrier under (1,1)-(2,1) forces those cells to walk around it.
	b, err := world.NewBarrier(1, 2, world.Right, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.AddBarrier(b)
	f.Reconsider(g, b)

	tests := []struct {
		p    world.Position
		want int
	}{
		{world.Pos(0, 1), 3},
		{world.Pos(1, 1), 4},
		{world.Pos(2, 1), 4},
		{world.Pos(3, 1), 3},
		{world.Pos(1, 0), 5},
		{world.Pos(2, 2), 2},
	}
	for _, tt := range tests {
		if got := f.At(tt.p); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}

	g.RemoveBarrier(b)
	f.Reconsider(g, b)
	if !f.Equal(NewField(g, world.Down)) {
		t.Error("field after removing the barrier differs from a fresh field")
	}
}

func TestField_ReconsiderUnreachable(t *testing.T) {
	g := world.NewGrid(4)
	f := NewField(g, world.Down)

	var placed []world.Barrier
	for _, x := range []int{0, 2} {
		b, err := world.NewBarrier(x, 1, world.Right, 2)
		if err != nil {
			t.Fatal(err)
		}
		g.AddBarrier(b)
		f.Reconsider(g, b)
		placed = append(placed, b)
	}

	for x := 0; x < 4; x++ {
		if got := f.At(world.Pos(x, 0)); got != Unreachable {
			t.Errorf("At((%d,0)) = %d, want Unreachable", x, got)
		}
		if got := f.At(world.Pos(x, 1)); got != 2 {
			t.Errorf("At((%d,1)) = %d, want 2", x, got)
		}
	}

	g.RemoveBarrier(placed[1])
	f.Reconsider(g, placed[1])
	if got := f.At(world.Pos(0, 0)); got != 5 {
		t.Errorf("At((0,0)) after reopening = %d, want 5", got)
	}
	if !f.Equal(NewField(g, world.Down)) {
		t.Error("field after reopening differs from a fresh field")
	}
}

// Random add/remove sequences must leave every incremental field identical
// to one rebuilt from scratch.
func TestField_IncrementalMatchesRecompute(t *testing.T) {
	for _, side := range []int{3, 5, 9} {
		rng := rand.New(rand.NewSource(int64(side)))
		g := world.NewGrid(side)
		fields := make([]*Field, 0, 4)
		for _, goal := range world.AllDirections() {
			fields = append(fields, NewField(g, goal))
		}

		var placed []world.Barrier
		for step := 0; step < 400; step++ {
			var b world.Barrier
			if len(placed) > 0 && rng.Intn(3) == 0 {
				k := rng.Intn(len(placed))
				b = placed[k]
				placed = append(placed[:k], placed[k+1:]...)
				g.RemoveBarrier(b)
			} else {
				dir := world.AllDirections()[rng.Intn(4)]
				nb, err := world.NewBarrier(rng.Intn(side+1), rng.Intn(side+1), dir, 2)
				if err != nil {
					t.Fatal(err)
				}
				if !g.IsBarrierLegal(nb) || intersectsAny(nb, placed) {
					continue
				}
				b = nb
				placed = append(placed, b)
				g.AddBarrier(b)
			}

			for _, f := range fields {
				f.Reconsider(g, b)
				fresh := NewField(g, f.Goal())
				if !f.Equal(fresh) {
					t.Fatalf("side %d step %d: field towards %v diverged after %v\ngot  %v\nwant %v",
						side, step, f.Goal(), b, f.Snapshot(), fresh.Snapshot())
				}
			}
		}
	}
}

func TestField_AgreesWithReachable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := world.NewGrid(6)
	f := NewField(g, world.Left)
	var placed []world.Barrier
	for i := 0; i < 60; i++ {
		b, err := world.NewBarrier(rng.Intn(7), rng.Intn(7), world.AllDirections()[rng.Intn(4)], 2)
		if err != nil {
			t.Fatal(err)
		}
		if !g.IsBarrierLegal(b) || intersectsAny(b, placed) {
			continue
		}
		g.AddBarrier(b)
		f.Reconsider(g, b)
		placed = append(placed, b)
	}
	g.ForEachCell(func(p world.Position, _ uint8) {
		if got, want := f.At(p) >= 0, g.Reachable(p, world.Left); got != want {
			t.Errorf("At(%v) >= 0 is %v, Reachable is %v", p, got, want)
		}
	})
}

func intersectsAny(b world.Barrier, placed []world.Barrier) bool {
	for _, o := range placed {
		if b.IntersectsWith(o) {
			return true
		}
	}
	return false
}
