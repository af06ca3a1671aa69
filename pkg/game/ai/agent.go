// Package ai chooses moves for computer-controlled seats.
//
// The agent looks exactly one round ahead: for each of its own candidate
// moves it lets every other seat answer in turn order with every legal move
// and scores the worst joint answer. It picks the candidate whose worst case
// is best, pruning a candidate as soon as its worst case is already worse
// than the best one found so far. All exploration happens in place on the
// shared board through Apply and Restore.
package ai

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/arekfu/quoridor/pkg/engine/logging"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// ErrNoMove is returned when the seat has no applicable move at all
var ErrNoMove = errors.New("no applicable move")

// Stats counts the work done by the last GetMove call
type Stats struct {
	Candidates   int  // root candidates applied
	Leaves       int  // positions evaluated
	Pruned       int  // opponent enumerations cut short
	ShortCircuit bool // an immediate win was returned
	Fallback     bool // no candidate had a finite score
}

// Option configures an Agent
type Option func(*Agent)

// WithLogger sets the entry search decisions are logged to
func WithLogger(entry *log.Entry) Option {
	return func(a *Agent) {
		a.log = entry
	}
}

// WithRand sets the generator used by TieBreakRandom
func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) {
		a.rng = rng
	}
}

// Agent is a one-round lookahead move chooser
type Agent struct {
	cfg   Config
	log   *log.Entry
	rng   *rand.Rand
	stats Stats
}

// New creates an agent with the given configuration
func New(cfg Config, opts ...Option) *Agent {
	a := &Agent{
		cfg: cfg,
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(1))
	}
	return a
}

// Config returns the agent configuration
func (a *Agent) Config() Config {
	return a.cfg
}

// Stats returns the counters of the last search
func (a *Agent) Stats() Stats {
	return a.stats
}

// search holds what stays fixed while one GetMove call runs
type search struct {
	board *state.Board
	me    int
	enemy int
	order []int
}

// GetMove returns the move seat id should play. The board is left exactly
// as it was found.
func (a *Agent) GetMove(b *state.Board, seatID string) (state.Move, error) {
	me, err := b.SeatIndex(seatID)
	if err != nil {
		return state.Move{}, err
	}
	a.stats = Stats{}

	s := &search{
		board: b,
		me:    me,
		order: turnOrderAfter(me, b.SeatCount()),
	}
	s.enemy = a.pickEnemy(b, s.order)

	candidates := a.moves(b, me)
	running := math.Inf(1)
	best, fallback := -1, -1

	for k, m := range candidates {
		if !b.Apply(me, m) {
			continue
		}
		a.stats.Candidates++
		if fallback < 0 {
			fallback = k
		}

		if b.HasWon(me) {
			if err := b.Restore(me, m); err != nil {
				return state.Move{}, err
			}
			a.stats.ShortCircuit = true
			a.log.WithFields(log.Fields{"seat": me, "move": m.String()}).Debug("winning move")
			return m, nil
		}

		loss, err := a.respond(s, 0, math.Inf(-1), running)
		if rerr := b.Restore(me, m); rerr != nil {
			return state.Move{}, rerr
		}
		if err != nil {
			return state.Move{}, err
		}

		if loss < running {
			running = loss
			best = k
		}
	}

	switch {
	case best >= 0:
		a.log.WithFields(log.Fields{
			"seat": me,
			"move": candidates[best].String(),
			"loss": running,
		}).Debug("move chosen")
		return candidates[best], nil
	case fallback >= 0:
		a.stats.Fallback = true
		a.log.WithFields(log.Fields{"seat": me, "move": candidates[fallback].String()}).
			Info("every move loses, playing the first applicable one")
		return candidates[fallback], nil
	default:
		return state.Move{}, fmt.Errorf("%w: seat %d", ErrNoMove, me)
	}
}

// respond enumerates every joint answer of the seats in s.order from depth
// on and returns the largest score seen, starting from acc. It stops early
// once that exceeds bound. A seat with no applicable move passes.
func (a *Agent) respond(s *search, depth int, acc, bound float64) (float64, error) {
	if depth == len(s.order) {
		a.stats.Leaves++
		return math.Max(acc, a.evaluate(s)), nil
	}

	b := s.board
	seat := s.order[depth]
	moved := false
	for _, m := range a.moves(b, seat) {
		if !b.Apply(seat, m) {
			continue
		}
		moved = true

		var (
			score float64
			err   error
		)
		if b.HasWon(seat) {
			score = math.Inf(1)
		} else {
			score, err = a.respond(s, depth+1, acc, bound)
		}
		if rerr := b.Restore(seat, m); rerr != nil {
			return acc, rerr
		}
		if err != nil {
			return acc, err
		}

		acc = math.Max(acc, score)
		if acc > bound {
			a.stats.Pruned++
			return acc, nil
		}
	}

	if !moved {
		return a.respond(s, depth+1, acc, bound)
	}
	return acc, nil
}

// moves lists the candidate moves of a seat: steps ordered by the distance
// they leave the seat at, then barrier placements in scan order
func (a *Agent) moves(b *state.Board, seat int) []state.Move {
	field := b.Field(seat)
	steps := b.LegalSteps(seat)
	dist := make([]int, len(steps))
	for k, d := range steps {
		to, _ := b.StepTarget(seat, d)
		dist[k] = field.At(to)
	}
	order := make([]int, len(steps))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(x, y int) bool {
		return dist[order[x]] < dist[order[y]]
	})

	out := make([]state.Move, 0, len(steps))
	for _, k := range order {
		out = append(out, state.Step(steps[k]))
	}

	if !b.Seat(seat).CanPlaceBarrier() {
		return out
	}
	for _, bar := range b.LegalBarriers(a.cfg.BarrierRadius) {
		out = append(out, state.PlaceBarrier(bar))
	}
	return out
}

func turnOrderAfter(me, n int) []int {
	order := make([]int, 0, n-1)
	for k := 1; k < n; k++ {
		order = append(order, (me+k)%n)
	}
	return order
}
