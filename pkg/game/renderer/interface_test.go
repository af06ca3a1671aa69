package renderer

import (
	"testing"

	"github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// recorder is a Renderer that remembers what it was asked to do
type recorder struct {
	cleared  int
	frames   int
	messages []string
}

func (r *recorder) Init() error             { return nil }
func (r *recorder) Clear()                  { r.cleared++ }
func (r *recorder) RenderFrame(*state.Game) { r.frames++ }
func (r *recorder) GetInput() input.Intent  { return input.Intent{} }

func (r *recorder) ShowMessage(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *recorder) StyleText(s string, _ TextStyle) string {
	return "[" + s + "]"
}

func TestCurrentWrappers(t *testing.T) {
	orig := Current
	t.Cleanup(func() { SetRenderer(orig) })

	SetRenderer(nil)
	if got := StyleText("x", StyleWall); got != "x" {
		t.Errorf("StyleText() without a renderer = %q, want %q", got, "x")
	}
	Clear()
	RenderFrame(nil)
	ShowMessage("ignored")

	r := &recorder{}
	SetRenderer(r)
	Clear()
	RenderFrame(nil)
	ShowMessage("bye")
	if got := StyleText("x", StyleWall); got != "[x]" {
		t.Errorf("StyleText() = %q, want %q", got, "[x]")
	}
	if r.cleared != 1 || r.frames != 1 || len(r.messages) != 1 || r.messages[0] != "bye" {
		t.Errorf("recorder = %+v, want one clear, one frame and one message", r)
	}
}
