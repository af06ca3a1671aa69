package devtools

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/state"
)

func newGame(t *testing.T, side int) *state.Game {
	t.Helper()
	b, err := state.NewBoard(side, 2, state.WithIDSource(state.NewSequenceSource("s")))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return state.NewGame(b)
}

func TestArrowBoard(t *testing.T) {
	g := newGame(t, 2)
	lines := strings.Split(ArrowBoard(g.Board), "\n")

	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, '+'},
		{1, 0, '-'},
		{0, 1, '|'},
		{3, 2, '>'}, // (0,0) opens right
		{2, 3, 'v'}, // (0,0) opens down
		{2, 1, ' '}, // (0,0) is closed at the top
		{6, 2, '1'}, // seat 1 at (1,0)
		{5, 2, '<'},
		{6, 6, '2'}, // seat 2 at (1,1)
	}
	for _, tt := range tests {
		if got := lines[tt.y][tt.x]; got != tt.want {
			t.Errorf("ArrowBoard()[%d][%d] = %q, want %q", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestArrowBoard_Barrier(t *testing.T) {
	g := newGame(t, 2)
	if !g.Board.Apply(0, state.Place(1, 0, world.Down)) {
		t.Fatal("barrier rejected")
	}
	lines := strings.Split(ArrowBoard(g.Board), "\n")

	for y := 1; y < 8; y++ {
		if got := lines[y][4]; got != 'X' {
			t.Errorf("ArrowBoard()[%d][4] = %q, want 'X'", y, got)
		}
	}
	if got := lines[2][3]; got != ' ' {
		t.Errorf("ArrowBoard()[2][3] = %q, want no arrow through the barrier", got)
	}
}

func TestFieldString(t *testing.T) {
	g := newGame(t, 3)
	lines := strings.Split(FieldString(g.Board.Field(0)), "\n")
	want := []string{" 2  2  2", " 1  1  1", " 0  0  0", ""}
	if len(lines) != len(want) {
		t.Fatalf("FieldString() has %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("FieldString() line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDumpBoard(t *testing.T) {
	g := newGame(t, 3)
	dump := DumpBoard(g)
	for _, want := range []string{
		"side: 3",
		"phase: initialized",
		`seat: 1 id: "s0"`,
		"--- Open edges ---",
		"--- Distance field of seat 2 (goal up) ---",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("DumpBoard() lacks %q:\n%s", want, dump)
		}
	}
}

func TestDumpBoardToFile(t *testing.T) {
	t.Chdir(t.TempDir())

	g := newGame(t, 3)
	path, err := DumpBoardToFile(g)
	if err != nil {
		t.Fatalf("DumpBoardToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != DumpBoard(g) {
		t.Errorf("file content differs from DumpBoard()")
	}
}

func TestCopyBoard(t *testing.T) {
	var copied string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	g := newGame(t, 3)
	if err := CopyBoard(g); err != nil {
		t.Fatalf("CopyBoard: %v", err)
	}
	if copied != DumpBoard(g) {
		t.Errorf("CopyBoard() copied %q, want the board dump", copied)
	}

	writeClipboard = func(string) error { return ErrClipboardUnsupported }
	if err := CopyBoard(g); !errors.Is(err, ErrClipboardUnsupported) {
		t.Errorf("CopyBoard() = %v, want %v", err, ErrClipboardUnsupported)
	}
}
