// Package pathing maintains shortest-path distance fields over a world.Grid.
//
// A Field holds, for every cell, the number of steps needed to reach one side
// of the board. It is built once with a breadth-first search and then kept
// exact as barriers come and go, touching only the cells whose distance can
// change.
package pathing

import (
	"github.com/arekfu/quoridor/pkg/engine/world"
)

// Unreachable is the distance of a cell with no path to the goal side
const Unreachable = -1

// Field is the distance from every cell to one side of the board
type Field struct {
	side int
	goal world.Direction
	dist []int

	// scratch state reused across updates
	epoch   uint32
	dirty   []uint32
	queued  []uint32
	touched []int
	queue   bucketQueue
}

// NewField builds the distance field of grid towards the goal side
func NewField(g *world.Grid, goal world.Direction) *Field {
	f := &Field{goal: goal}
	f.Init(g)
	return f
}

// Init recomputes every distance from scratch with a multi-source BFS
// seeded from the goal side
func (f *Field) Init(g *world.Grid) {
	n := g.Cells()
	if f.side != g.Side() || len(f.dist) != n {
		f.side = g.Side()
		f.dist = make([]int, n)
		f.dirty = make([]uint32, n)
		f.queued = make([]uint32, n)
		f.touched = make([]int, 0, n)
		f.epoch = 0
		f.queue.reset(n)
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}

	frontier := make([]int, 0, n)
	for _, p := range g.EdgeCells(f.goal) {
		i := g.Index(p)
		f.dist[i] = 0
		frontier = append(frontier, i)
	}

	for head := 0; head < len(frontier); head++ {
		i := frontier[head]
		p := g.At(i)
		for _, d := range world.AllDirections() {
			if !g.IsOpen(p, d) {
				continue
			}
			j := g.Index(p.Step(d))
			if f.dist[j] == Unreachable {
				f.dist[j] = f.dist[i] + 1
				frontier = append(frontier, j)
			}
		}
	}
}

// Goal returns the board side this field measures towards
func (f *Field) Goal() world.Direction {
	return f.goal
}

// Side returns the board side length the field was built for
func (f *Field) Side() int {
	return f.side
}

// At returns the distance of a cell, or Unreachable when out of bounds
func (f *Field) At(p world.Position) int {
	if p.X < 0 || p.X >= f.side || p.Y < 0 || p.Y >= f.side {
		return Unreachable
	}
	return f.dist[p.Y*f.side+p.X]
}

// Snapshot returns a copy of the distances in row-major order
func (f *Field) Snapshot() []int {
	out := make([]int, len(f.dist))
	copy(out, f.dist)
	return out
}

// Equal reports whether two fields hold the same distances towards the same side
func (f *Field) Equal(o *Field) bool {
	if f.goal != o.goal || len(f.dist) != len(o.dist) {
		return false
	}
	for i := range f.dist {
		if f.dist[i] != o.dist[i] {
			return false
		}
	}
	return true
}

// Reconsider brings the field up to date after b was added to or removed
// from g. The grid must already reflect the change. Edges the barrier now
// closes can only raise distances and edges it now opens can only lower
// them, so each case is repaired locally.
func (f *Field) Reconsider(g *world.Grid, b world.Barrier) {
	var closed, opened []world.Edge
	for _, e := range b.Edges() {
		if g.IsOpen(e.Cell, e.Dir) {
			opened = append(opened, e)
		} else {
			closed = append(closed, e)
		}
	}
	if len(closed) > 0 {
		f.raise(g, closed)
	}
	if len(opened) > 0 {
		f.lower(g, opened)
	}
}

func (f *Field) nextEpoch() uint32 {
	f.epoch++
	if f.epoch == 0 {
		for i := range f.dirty {
			f.dirty[i] = 0
			f.queued[i] = 0
		}
		f.epoch = 1
	}
	return f.epoch
}

// raise handles closed edges. Cells that lost every neighbour one step
// closer to the goal are marked dirty in increasing order of their old
// distance, then the dirty region is rebuilt from its clean boundary.
func (f *Field) raise(g *world.Grid, closed []world.Edge) {
	epoch := f.nextEpoch()
	f.touched = f.touched[:0]

	for _, e := range closed {
		a, b := g.Index(e.Cell), g.Index(e.Other())
		switch {
		case f.dist[b] >= 0 && f.dist[a] == f.dist[b]+1:
			f.enqueue(a, f.dist[a], epoch)
		case f.dist[a] >= 0 && f.dist[b] == f.dist[a]+1:
			f.enqueue(b, f.dist[b], epoch)
		}
	}

	f.queue.drain(func(i, d int) {
		if f.dist[i] != d || f.supported(g, i, epoch) {
			return
		}
		f.dirty[i] = epoch
		f.touched = append(f.touched, i)

		p := g.At(i)
		for _, dir := range world.AllDirections() {
			if !g.IsOpen(p, dir) {
				continue
			}
			j := g.Index(p.Step(dir))
			if f.dist[j] == d+1 {
				f.enqueue(j, d+1, epoch)
			}
		}
	})

	if len(f.touched) == 0 {
		return
	}

	for _, i := range f.touched {
		f.dist[i] = Unreachable
	}
	for _, i := range f.touched {
		best := Unreachable
		p := g.At(i)
		for _, dir := range world.AllDirections() {
			if !g.IsOpen(p, dir) {
				continue
			}
			j := g.Index(p.Step(dir))
			if f.dirty[j] == epoch || f.dist[j] < 0 {
				continue
			}
			if best < 0 || f.dist[j]+1 < best {
				best = f.dist[j] + 1
			}
		}
		if best >= 0 {
			f.dist[i] = best
			f.queue.push(best, i)
		}
	}

	f.queue.drain(func(i, d int) {
		if f.dist[i] != d {
			return
		}
		p := g.At(i)
		for _, dir := range world.AllDirections() {
			if !g.IsOpen(p, dir) {
				continue
			}
			j := g.Index(p.Step(dir))
			if f.dirty[j] != epoch {
				continue
			}
			if f.dist[j] < 0 || f.dist[j] > d+1 {
				f.dist[j] = d + 1
				f.queue.push(d+1, j)
			}
		}
	})
}

// supported reports whether cell i still has an open, clean neighbour one
// step closer to the goal
func (f *Field) supported(g *world.Grid, i int, epoch uint32) bool {
	d := f.dist[i]
	if d == 0 {
		return true
	}
	p := g.At(i)
	for _, dir := range world.AllDirections() {
		if !g.IsOpen(p, dir) {
			continue
		}
		j := g.Index(p.Step(dir))
		if f.dist[j] == d-1 && f.dirty[j] != epoch {
			return true
		}
	}
	return false
}

func (f *Field) enqueue(i, d int, epoch uint32) {
	if f.queued[i] == epoch {
		return
	}
	f.queued[i] = epoch
	f.queue.push(d, i)
}

// lower handles opened edges by propagating improvements outward in
// increasing distance order
func (f *Field) lower(g *world.Grid, opened []world.Edge) {
	relax := func(to, from int) {
		if f.dist[from] < 0 {
			return
		}
		if f.dist[to] < 0 || f.dist[to] > f.dist[from]+1 {
			f.dist[to] = f.dist[from] + 1
			f.queue.push(f.dist[to], to)
		}
	}
	for _, e := range opened {
		a, b := g.Index(e.Cell), g.Index(e.Other())
		relax(a, b)
		relax(b, a)
	}

	f.queue.drain(func(i, d int) {
		if f.dist[i] != d {
			return
		}
		p := g.At(i)
		for _, dir := range world.AllDirections() {
			if !g.IsOpen(p, dir) {
				continue
			}
			relax(g.Index(p.Step(dir)), i)
		}
	})
}
