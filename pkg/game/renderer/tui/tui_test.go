package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/game/i18n"
	"github.com/arekfu/quoridor/pkg/game/state"
)

func keys(codes ...string) KeyReader {
	return func() (input.RawInput, error) {
		if len(codes) == 0 {
			return input.RawInput{}, input.ErrInterrupted
		}
		c := codes[0]
		codes = codes[1:]
		if c == "!" {
			return input.RawInput{}, errors.New("read failed")
		}
		return input.RawInput{Device: input.DeviceTerminal, Code: c}, nil
	}
}

func TestGetInput(t *testing.T) {
	r := New(WithKeyReader(keys("x", "!", "k", "enter")))

	tests := []input.Action{input.ActionMoveUp, input.ActionConfirm, input.ActionQuit}
	for _, want := range tests {
		if got := r.GetInput().Action; got != want {
			t.Errorf("GetInput().Action = %v, want %v", got, want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	if err := i18n.Load("en"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := state.NewBoard(5, 2, state.WithBarrierStock(3))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	g := state.NewGame(b)
	g.AddMessage("hello there")

	var out bytes.Buffer
	r := New(WithOutput(&out))
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.RenderFrame(g)

	got := out.String()
	for _, want := range []string{
		"Quoridor",
		"Seat 1: 4 to go, 3 barriers",
		"Seat 2: 4 to go, 3 barriers",
		"Step mode",
		"hello there",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderFrame() output lacks %q:\n%s", want, got)
		}
	}

	out.Reset()
	g.Mode = state.ModeBarrier
	r.RenderFrame(g)
	if got := out.String(); !strings.Contains(got, "Barrier mode") || !strings.Contains(got, "#") {
		t.Errorf("RenderFrame() in barrier mode lacks the cursor:\n%s", got)
	}
}
