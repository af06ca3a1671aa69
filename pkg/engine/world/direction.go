package world

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDirection is returned when a value is not one of the four directions
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a cardinal direction encoded as a single passability bit
type Direction uint8

// Direction constants. Each value is also the bit used in a cell mask.
const (
	Up    Direction = 1
	Right Direction = 2
	Down  Direction = 4
	Left  Direction = 8
)

// AllMask has every passability bit set
const AllMask uint8 = uint8(Up | Right | Down | Left)

// AllDirections returns all valid directions in bit order
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the lowercase name of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Arrow returns a single rune pointing in the direction
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '?'
	}
}

// IsValid returns true if the direction is exactly one of the four bits
func (d Direction) IsValid() bool {
	return d == Up || d == Right || d == Down || d == Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction runs along the x axis
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

// ParseDirection accepts a direction name, its first letter or its numeric bit value
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north", "n":
		return Up, nil
	case "right", "r", "east", "e":
		return Right, nil
	case "down", "d", "south", "s":
		return Down, nil
	case "left", "l", "west", "w":
		return Left, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	d := Direction(n)
	if n < 0 || n > int(AllMask) || !d.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}
