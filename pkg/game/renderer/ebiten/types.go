package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"

	engineinput "github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/renderer"
)

// seatState holds one seat's info for rendering
type seatState struct {
	symbol   rune
	position world.Position
	summary  string
	current  bool
	winner   bool
}

// renderSnapshot holds a consistent snapshot of game state for rendering
// This prevents jitter from race conditions between game logic and rendering
type renderSnapshot struct {
	valid    bool
	side     int
	view     renderer.BoardView
	seats    []seatState
	mode     string
	messages []string
	hints    []string
	over     bool
}

// pawnSlide animates a pawn from its previous cell to its current one
type pawnSlide struct {
	from     world.Position
	to       world.Position
	tween    *gween.Tween
	progress float32
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	fontSource *text.GoTextFaceSource

	// Cached font face
	cachedFontSize float64
	cachedFace     *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Running pawn slides by seat index, guarded by snapshotMutex
	slides []*pawnSlide

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Closed by Close; the next Update ends the ebiten loop
	done      chan struct{}
	closeOnce sync.Once
}
