package menu

import (
	"strings"
	"testing"

	engineinput "github.com/arekfu/quoridor/pkg/engine/input"
)

func TestBindingItem_Label(t *testing.T) {
	got := BindingItem{Action: engineinput.ActionUndo}.Label(Plain)
	if got != "Undo: u" {
		t.Errorf("Label() = %q, want %q", got, "Undo: u")
	}

	got = BindingItem{Action: engineinput.ActionQuit, Fixed: true}.Label(Plain)
	if got != "Quit: escape, q (fixed)" {
		t.Errorf("Label() = %q, want %q", got, "Quit: escape, q (fixed)")
	}
}

func TestWriteBindings(t *testing.T) {
	var sb strings.Builder
	WriteBindings(&sb, "Keys", Plain)

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if lines[0] != "Keys" {
		t.Errorf("title = %q, want %q", lines[0], "Keys")
	}
	if got, want := len(lines), len(Bindings())+1; got != want {
		t.Errorf("WriteBindings() wrote %d lines, want %d", got, want)
	}
	if !strings.Contains(sb.String(), "Move Up: arrow_up, k") {
		t.Errorf("WriteBindings() lacks the move up line:\n%s", sb.String())
	}
}
