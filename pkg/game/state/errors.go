package state

import "errors"

var (
	// ErrInvalidSeat is returned when a seat identifier or index is unknown
	ErrInvalidSeat = errors.New("invalid seat")

	// ErrInvalidBoard is returned when a board cannot be built
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidMove is returned when a move encoding cannot be parsed
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvariantViolation means the board state disagrees with itself
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrUnbalancedRestore means a restore did not match the last applied move
	ErrUnbalancedRestore = errors.New("restore does not match the last applied move")
)
