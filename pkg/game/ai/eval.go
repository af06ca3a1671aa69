package ai

import (
	"math"

	"github.com/arekfu/quoridor/pkg/game/state"
)

// evaluate scores the current board for the searching seat; lower is better
func (a *Agent) evaluate(s *search) float64 {
	b := s.board
	mine := float64(b.Distance(s.me))

	switch a.cfg.Mode {
	case EvalRatio:
		nearest := math.Inf(1)
		for _, o := range s.order {
			nearest = math.Min(nearest, float64(b.Distance(o)))
		}
		if nearest <= 0 {
			return math.Inf(1)
		}
		return mine / nearest
	default:
		return mine - float64(b.Distance(s.enemy)) + 1
	}
}

// pickEnemy returns the opponent closest to its goal. order lists the
// opponents in turn order.
func (a *Agent) pickEnemy(b *state.Board, order []int) int {
	if len(order) == 0 {
		return -1
	}

	closest := b.Distance(order[0])
	var tied []int
	for _, o := range order {
		d := b.Distance(o)
		switch {
		case d < closest:
			closest = d
			tied = []int{o}
		case d == closest:
			tied = append(tied, o)
		}
	}

	switch a.cfg.TieBreak {
	case TieBreakLast:
		return tied[len(tied)-1]
	case TieBreakRandom:
		return tied[a.rng.Intn(len(tied))]
	default:
		return tied[0]
	}
}
