package devtools

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/arekfu/quoridor/pkg/game/state"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// writeClipboard is swapped out in tests
var writeClipboard = func(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

// CopyBoard puts the debug dump of the game on the system clipboard
func CopyBoard(g *state.Game) error {
	return writeClipboard(DumpBoard(g))
}
