// Package gameplay runs a game session: it turns intents into moves, lets
// computer seats play and keeps the message log up to date.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"github.com/arekfu/quoridor/pkg/engine/logging"
	"github.com/arekfu/quoridor/pkg/game/state"
)

var logger = logging.Discard()

// SetLogger sets where gameplay logs moves and board checks
func SetLogger(entry *log.Entry) {
	logger = entry
}

// dynamicGet avoids vet's printf check on catalog keys
var dynamicGet = gotext.Get

// logMessage adds a translated message to the game log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(dynamicGet(key, a...))
}

// PlayMove plays m for the seat whose turn it is. It returns false, leaving
// the turn unchanged, when the move is not allowed.
func PlayMove(g *state.Game, m state.Move) bool {
	seat := g.Turn
	s := g.Board.Seat(seat)

	if m.Kind == state.MoveBarrier && !s.CanPlaceBarrier() {
		logMessage(g, "NO_BARRIERS", s.Symbol)
		return false
	}

	if !g.Board.Apply(seat, m) {
		if m.Kind == state.MoveStep {
			logMessage(g, "ILLEGAL_STEP", m.Dir.String())
		} else {
			logMessage(g, "ILLEGAL_BARRIER", fmt.Sprintf("(%d,%d) %s", m.X, m.Y, m.Dir))
		}
		logger.WithFields(log.Fields{"seat": seat, "move": m.String()}).Debug("move rejected")
		return false
	}

	g.LastMove = m
	g.LastMoveValid = true
	g.Passes = 0
	g.SetHints(nil)
	logger.WithFields(log.Fields{"seat": seat, "move": m.String()}).Info("move played")
	logMessage(g, "PLAYED", s.Symbol, m.Describe())

	if g.Verify {
		if err := g.Board.Verify(); err != nil {
			logger.WithError(err).Error("board check failed")
			logMessage(g, "VERIFY_FAILED", err.Error())
		}
	}

	if g.Board.HasWon(seat) {
		g.Over = true
		logger.WithField("seat", seat).Info("game won")
		logMessage(g, "WINNER", s.Symbol)
		return true
	}

	g.Mode = state.ModeStep
	g.AdvanceTurn()
	return true
}

// HasAnyMove reports whether seat i can step or place a barrier
func HasAnyMove(b *state.Board, i int) bool {
	if len(b.LegalSteps(i)) > 0 {
		return true
	}
	if !b.Seat(i).CanPlaceBarrier() {
		return false
	}
	// LegalBarriers does not check that every seat keeps a path, Apply does
	for _, bar := range b.LegalBarriers(0) {
		m := state.PlaceBarrier(bar)
		if !b.Apply(i, m) {
			continue
		}
		if err := b.Restore(i, m); err != nil {
			logger.WithError(err).Error("restoring a trial barrier failed")
		}
		return true
	}
	return false
}

// passTurn skips the current seat. The game ends in a stalemate once every
// seat has passed in a row.
func passTurn(g *state.Game) {
	s := g.CurrentSeat()
	g.Passes++
	logger.WithField("seat", g.Turn).Info("seat passes")
	logMessage(g, "NO_MOVE", s.Symbol)

	if g.Passes >= g.Board.SeatCount() {
		g.Over = true
		logger.Info("stalemate")
		logMessage(g, "STALEMATE")
		return
	}
	g.AdvanceTurn()
}

// passIfStuck passes the current seat when it has nothing to play
func passIfStuck(g *state.Game) bool {
	if HasAnyMove(g.Board, g.Turn) {
		return false
	}
	passTurn(g)
	return true
}

// UndoMove takes back the last move. Moves of computer seats are taken back
// along with it until a human seat is to play again.
func UndoMove(g *state.Game) {
	if g.Board.Applied() == 0 {
		logMessage(g, "NOTHING_TO_UNDO")
		return
	}

	hasHuman := false
	for _, s := range g.Board.Seats() {
		if !s.IsComputer() {
			hasHuman = true
			break
		}
	}

	for g.Board.Applied() > 0 {
		seat, m, err := g.Board.Undo()
		if err != nil {
			logger.WithError(err).Error("undo failed")
			logMessage(g, "VERIFY_FAILED", err.Error())
			return
		}
		s := g.Board.Seat(seat)
		g.RewindTurn(seat)
		g.Passes = 0
		g.LastMoveValid = false
		logger.WithFields(log.Fields{"seat": seat, "move": m.String()}).Info("move taken back")
		logMessage(g, "UNDONE", m.Describe(), s.Symbol)

		if !hasHuman || !s.IsComputer() {
			break
		}
	}
	g.Mode = state.ModeStep
	g.SetHints(nil)
}
