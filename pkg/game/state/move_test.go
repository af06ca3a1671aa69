package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"m 1", Step(world.Up)},
		{"m left", Step(world.Left)},
		{"b 3 4 2", Place(3, 4, world.Right)},
		{"  b 0 7 down ", Place(0, 7, world.Down)},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, "ParseMove(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseMove(%q)", tt.in)
	}
}

func TestParseMove_Errors(t *testing.T) {
	for _, in := range []string{"", "m", "m 3", "b 1 2", "b x 2 4", "b 1 y 4", "b 1 2 0", "jump 4"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidMove, "ParseMove(%q)", in)
	}
}

func TestMove_StringRoundTrip(t *testing.T) {
	for _, m := range []Move{Step(world.Down), Place(2, 5, world.Down), Place(8, 1, world.Right)} {
		got, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "m 8", Step(world.Left).String())
	assert.Equal(t, "b 3 4 2", Place(3, 4, world.Right).String())
}
