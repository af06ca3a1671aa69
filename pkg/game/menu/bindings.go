// Package menu provides the key bindings listing printed by the keys command.
package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/game/renderer"
)

// StyleFunc styles a piece of text for the output device
type StyleFunc func(text string, style renderer.TextStyle) string

// BindingItem is one line of the bindings listing
type BindingItem struct {
	Action engineinput.Action
	Fixed  bool
}

// Label returns the display label of the binding
func (b BindingItem) Label(style StyleFunc) string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.Fixed {
		return fmt.Sprintf("%s: %s %s", name, style(codeText, renderer.StyleActionShort), style("(fixed)", renderer.StyleSubtle))
	}
	return fmt.Sprintf("%s: %s", name, style(codeText, renderer.StyleActionShort))
}

// Bindings returns the listed bindings in display order
func Bindings() []BindingItem {
	actions := []engineinput.Action{
		engineinput.ActionMoveUp,
		engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft,
		engineinput.ActionMoveRight,
		engineinput.ActionToggleMode,
		engineinput.ActionRotate,
		engineinput.ActionConfirm,
		engineinput.ActionUndo,
		engineinput.ActionHint,
		engineinput.ActionCopyBoard,
		engineinput.ActionQuit,
	}

	items := make([]BindingItem, len(actions))
	for i, act := range actions {
		items[i] = BindingItem{Action: act, Fixed: isFixed(act)}
	}
	return items
}

// WriteBindings writes a title and one line per binding
func WriteBindings(w io.Writer, title string, style StyleFunc) {
	fmt.Fprintln(w, style(title, renderer.StyleAction))
	for _, item := range Bindings() {
		fmt.Fprintf(w, "  %s\n", item.Label(style))
	}
}

// Plain is a StyleFunc that leaves text unstyled
func Plain(text string, _ renderer.TextStyle) string {
	return text
}

// isFixed reports actions that ctrl+c also triggers
func isFixed(action engineinput.Action) bool {
	return action == engineinput.ActionQuit
}
