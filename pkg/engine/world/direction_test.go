package world

import (
	"errors"
	"testing"
)

func TestDirection_Opposite(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, d.Opposite().Opposite(), d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("Delta of %v and its opposite do not cancel", d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", Up},
		{"R", Right},
		{"4", Down},
		{" left ", Left},
		{"8", Left},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v, want %v, nil", tt.in, got, err, tt.want)
		}
	}

	for _, in := range []string{"3", "0", "16", "sideways", ""} {
		if _, err := ParseDirection(in); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", in, err)
		}
	}
}
