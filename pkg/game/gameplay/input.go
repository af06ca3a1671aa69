package gameplay

import (
	"github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/devtools"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// intentDirections maps movement actions to board directions
var intentDirections = map[input.Action]world.Direction{
	input.ActionMoveUp:    world.Up,
	input.ActionMoveDown:  world.Down,
	input.ActionMoveLeft:  world.Left,
	input.ActionMoveRight: world.Right,
}

// ProcessIntent handles one intent of the human seat to play. It returns
// false when the player asked to quit.
func ProcessIntent(g *state.Game, intent input.Intent) bool {
	switch intent.Action {
	case input.ActionNone:
		return true
	case input.ActionQuit:
		return false
	case input.ActionUndo:
		UndoMove(g)
		return true
	case input.ActionHint:
		ShowHint(g)
		return true
	case input.ActionCopyBoard:
		CopyBoard(g)
		return true
	}

	if g.Over {
		logMessage(g, "GAME_OVER")
		return true
	}

	switch intent.Action {
	case input.ActionToggleMode:
		if g.Mode == state.ModeStep {
			g.Mode = state.ModeBarrier
			logMessage(g, "MODE_BARRIER")
		} else {
			g.Mode = state.ModeStep
			logMessage(g, "MODE_STEP")
		}

	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight:
		d := intentDirections[intent.Action]
		if g.Mode == state.ModeBarrier {
			g.MoveCursor(d)
			return true
		}
		PlayMove(g, state.Step(d))

	case input.ActionRotate:
		if g.Mode != state.ModeBarrier {
			logMessage(g, "NOT_IN_BARRIER_MODE")
			return true
		}
		g.RotateCursor()

	case input.ActionConfirm:
		if g.Mode != state.ModeBarrier {
			logMessage(g, "NOT_IN_BARRIER_MODE")
			return true
		}
		PlayMove(g, state.Place(g.Cursor.X, g.Cursor.Y, g.CursorDir))
	}
	return true
}

// CopyBoard puts the board dump on the clipboard and reports the outcome
func CopyBoard(g *state.Game) {
	if err := devtools.CopyBoard(g); err != nil {
		logger.WithError(err).Warn("copy to clipboard failed")
		logMessage(g, "COPY_FAILED", err.Error())
		return
	}
	logMessage(g, "BOARD_COPIED")
}
