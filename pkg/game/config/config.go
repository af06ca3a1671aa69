// Package config holds the settings of one game session and checks them
// before a board is built.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arekfu/quoridor/pkg/engine/logging"
	"github.com/arekfu/quoridor/pkg/game/ai"
	"github.com/arekfu/quoridor/pkg/game/i18n"
	"github.com/arekfu/quoridor/pkg/game/setup"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// Renderers
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererNone   = "none"
)

// Board size limits
const (
	MinSide     = 2
	MaxSide     = 40
	DefaultSide = 9
)

// AutoRadius lets AI pick the barrier radius from the seat count
const AutoRadius = -1

// Options configures a game session
type Options struct {
	Side  int
	Seats int

	// Computer holds the 0-based indices of computer seats
	Computer []int

	Eval         ai.EvalMode
	TieBreak     ai.TieBreak
	Seed         int64
	BarrierStock int

	// BarrierRadius bounds the computer's barrier search around pawns; 0
	// searches the whole board and AutoRadius decides from the seat count
	BarrierRadius int

	Renderer string
	Language string
	Verify   bool

	// MaxTurns bounds a game without a human seat; 0 means no bound
	MaxTurns int

	Log logging.Options
}

// Defaults returns the options of a two-seat game against the computer
func Defaults() Options {
	return Options{
		Side:          DefaultSide,
		Seats:         setup.MinSeats,
		Computer:      []int{1},
		Eval:          ai.EvalEnemy,
		TieBreak:      ai.TieBreakFirst,
		Seed:          1,
		BarrierStock:  state.UnlimitedBarriers,
		BarrierRadius: AutoRadius,
		Renderer:      RendererTUI,
		Language:      i18n.DefaultLanguage,
		Log: logging.Options{
			Level:  "info",
			Format: "text",
			File:   logging.DefaultFile(),
		},
	}
}

// Validate checks the options for consistency
func (o Options) Validate() error {
	if o.Side < MinSide || o.Side > MaxSide {
		return fmt.Errorf("config validation: side must be between %d and %d, got %d", MinSide, MaxSide, o.Side)
	}
	if o.Seats < setup.MinSeats || o.Seats > setup.MaxSeats {
		return fmt.Errorf("config validation: seats must be between %d and %d, got %d", setup.MinSeats, setup.MaxSeats, o.Seats)
	}
	if _, err := setup.Layout(o.Side, o.Seats); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	seen := make(map[int]bool, len(o.Computer))
	for _, i := range o.Computer {
		if i < 0 || i >= o.Seats {
			return fmt.Errorf("config validation: computer seat %d does not exist with %d seats", i+1, o.Seats)
		}
		if seen[i] {
			return fmt.Errorf("config validation: computer seat %d listed twice", i+1)
		}
		seen[i] = true
	}

	if o.BarrierStock < state.UnlimitedBarriers {
		return fmt.Errorf("config validation: barrier stock must be %d (unlimited) or more, got %d", state.UnlimitedBarriers, o.BarrierStock)
	}
	if o.BarrierRadius < AutoRadius {
		return fmt.Errorf("config validation: barrier radius must be %d (auto) or more, got %d", AutoRadius, o.BarrierRadius)
	}
	if o.MaxTurns < 0 {
		return fmt.Errorf("config validation: max turns must not be negative, got %d", o.MaxTurns)
	}

	switch o.Renderer {
	case RendererTUI, RendererEbiten:
	case RendererNone:
		if len(o.Computer) != o.Seats {
			return fmt.Errorf("config validation: renderer %q needs every seat played by the computer", RendererNone)
		}
	default:
		return fmt.Errorf("config validation: unknown renderer %q", o.Renderer)
	}
	return nil
}

// IsComputer reports whether seat i is played by the computer
func (o Options) IsComputer(i int) bool {
	for _, c := range o.Computer {
		if c == i {
			return true
		}
	}
	return false
}

// AI returns the search settings of the computer seats. AutoRadius becomes
// 2 with more than two seats, to keep the search small, and the whole
// board otherwise.
func (o Options) AI() ai.Config {
	radius := o.BarrierRadius
	if radius == AutoRadius {
		radius = 0
		if o.Seats > setup.MinSeats {
			radius = 2
		}
	}
	return ai.Config{
		Mode:          o.Eval,
		TieBreak:      o.TieBreak,
		BarrierRadius: radius,
	}
}

// ParseSeatList parses a comma-separated list of 1-based seat numbers into
// 0-based seat indices. "none" and the empty string give no seats; "all"
// gives every seat.
func ParseSeatList(s string, seats int) ([]int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none":
		return nil, nil
	case "all":
		out := make([]int, seats)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	var out []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad seat number %q", field)
		}
		out = append(out, n-1)
	}
	return out, nil
}
