package ai

import (
	"fmt"
	"strings"
)

// EvalMode selects how a position is scored for the searching seat
type EvalMode int

// Evaluation modes
const (
	// EvalEnemy scores own distance minus the enemy's distance, plus one
	EvalEnemy EvalMode = iota
	// EvalRatio scores own distance over the nearest opponent's distance
	EvalRatio
)

func (m EvalMode) String() string {
	switch m {
	case EvalEnemy:
		return "enemy"
	case EvalRatio:
		return "ratio"
	default:
		return "unknown"
	}
}

// ParseEvalMode converts a mode name to an EvalMode
func ParseEvalMode(s string) (EvalMode, error) {
	switch strings.ToLower(s) {
	case "enemy", "difference", "diff":
		return EvalEnemy, nil
	case "ratio", "others":
		return EvalRatio, nil
	}
	return 0, fmt.Errorf("unknown eval mode %q: want enemy or ratio", s)
}

// TieBreak selects the enemy among opponents equally close to their goals
type TieBreak int

// Tie-break policies
const (
	TieBreakFirst TieBreak = iota // earliest in turn order
	TieBreakLast                  // latest in turn order
	TieBreakRandom
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakFirst:
		return "first"
	case TieBreakLast:
		return "last"
	case TieBreakRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseTieBreak converts a policy name to a TieBreak
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "first":
		return TieBreakFirst, nil
	case "last":
		return TieBreakLast, nil
	case "random":
		return TieBreakRandom, nil
	}
	return 0, fmt.Errorf("unknown tie-break %q: want first, last or random", s)
}

// Config tunes the agent
type Config struct {
	Mode     EvalMode
	TieBreak TieBreak

	// BarrierRadius limits barrier candidates to those anchored within this
	// many lattice steps of a pawn. Zero considers every barrier.
	BarrierRadius int
}
