package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

func TestGame_TurnsAndCursor(t *testing.T) {
	b, err := NewBoard(5, 3, WithIDSource(NewSequenceSource("p")))
	require.NoError(t, err)
	g := NewGame(b)

	assert.Equal(t, "p0", g.CurrentSeat().ID)
	g.AdvanceTurn()
	g.AdvanceTurn()
	assert.Equal(t, "p2", g.CurrentSeat().ID)
	g.AdvanceTurn()
	assert.Equal(t, 0, g.Turn)

	assert.Equal(t, world.Pos(2, 2), g.Cursor)
	for i := 0; i < 10; i++ {
		g.MoveCursor(world.Right)
	}
	assert.Equal(t, world.Pos(5, 2), g.Cursor, "cursor stays on the lattice")

	g.RotateCursor()
	assert.Equal(t, world.Down, g.CursorDir)
	bar, err := g.CursorBarrier()
	require.NoError(t, err)
	assert.Equal(t, world.Pos(5, 2), bar.Origin)
}

func TestGame_AddMessageKeepsLastFive(t *testing.T) {
	b, err := NewBoard(5, 2)
	require.NoError(t, err)
	g := NewGame(b)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, g.Messages)
	g.ClearMessages()
	assert.Empty(t, g.Messages)
}
