package gameplay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arekfu/quoridor/pkg/game/ai"
	"github.com/arekfu/quoridor/pkg/game/config"
	"github.com/arekfu/quoridor/pkg/game/renderer"
	"github.com/arekfu/quoridor/pkg/game/state"
)

var (
	// ErrHumanSeat is returned when a computer-only loop reaches a human seat
	ErrHumanSeat = errors.New("seat is not played by the computer")

	// ErrTurnLimit is returned when a game runs past its turn bound
	ErrTurnLimit = errors.New("turn limit reached")

	// ErrIllegalChoice is returned when a controller picks a move the board rejects
	ErrIllegalChoice = errors.New("controller chose an illegal move")
)

// Options tunes the interactive loop
type Options struct {
	// ComputerDelay is waited before each computer move so people can follow
	ComputerDelay time.Duration
}

// BuildGame creates a game from validated options. Computer seats get an
// agent each, seeded from the option seed and their index.
func BuildGame(opts config.Options, entry *log.Entry) (*state.Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b, err := state.NewBoard(opts.Side, opts.Seats,
		state.WithLogger(entry),
		state.WithBarrierStock(opts.BarrierStock),
	)
	if err != nil {
		return nil, fmt.Errorf("building board: %w", err)
	}

	for _, i := range opts.Computer {
		agent := ai.New(opts.AI(),
			ai.WithLogger(entry.WithField("seat", i)),
			ai.WithRand(rand.New(rand.NewSource(opts.Seed+int64(i)))),
		)
		b.SetController(i, agent)
	}

	g := state.NewGame(b)
	g.Verify = opts.Verify
	entry.WithFields(log.Fields{
		"side":     opts.Side,
		"seats":    opts.Seats,
		"computer": opts.Computer,
		"eval":     opts.Eval.String(),
	}).Info("game built")
	logMessage(g, "TURN", g.CurrentSeat().Symbol)
	return g, nil
}

// PlayComputerTurn lets the computer seat to play choose and play a move. A
// seat whose controller finds nothing passes.
func PlayComputerTurn(g *state.Game) error {
	s := g.CurrentSeat()
	if !s.IsComputer() {
		return fmt.Errorf("%w: seat %c", ErrHumanSeat, s.Symbol)
	}

	start := time.Now()
	m, err := s.Controller.GetMove(g.Board, s.ID)
	if err != nil {
		if errors.Is(err, state.ErrInvariantViolation) || errors.Is(err, state.ErrUnbalancedRestore) {
			return err
		}
		logger.WithError(err).WithField("seat", g.Turn).Warn("computer found no move")
		passTurn(g)
		return nil
	}
	logger.WithFields(log.Fields{
		"seat":    g.Turn,
		"move":    m.String(),
		"elapsed": time.Since(start),
	}).Debug("computer chose")

	if !PlayMove(g, m) {
		return fmt.Errorf("%w: seat %c chose %s", ErrIllegalChoice, s.Symbol, m)
	}
	return nil
}

// Run drives an interactive game until the player quits or ctx is done.
// Computer seats play on their own; human seats play through r.
func Run(ctx context.Context, g *state.Game, r renderer.Renderer, opts Options) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.RenderFrame(g)

		if !g.Over {
			if passIfStuck(g) {
				continue
			}
			if g.CurrentSeat().IsComputer() {
				if err := wait(ctx, opts.ComputerDelay); err != nil {
					return err
				}
				if err := PlayComputerTurn(g); err != nil {
					return err
				}
				continue
			}
		}

		if !ProcessIntent(g, r.GetInput()) {
			return nil
		}
	}
}

// PlayOut plays a game where every seat is a computer until it is over.
// maxTurns bounds the number of turns when positive.
func PlayOut(ctx context.Context, g *state.Game, maxTurns int) error {
	for turns := 0; !g.Over; turns++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxTurns > 0 && turns >= maxTurns {
			return fmt.Errorf("%w: %d turns", ErrTurnLimit, maxTurns)
		}
		if passIfStuck(g) {
			continue
		}
		if err := PlayComputerTurn(g); err != nil {
			return err
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
