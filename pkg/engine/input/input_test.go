package input

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x1b, '[', 'A'}, "arrow_up"},
		{[]byte{0x1b, 'O', 'B'}, "arrow_down"},
		{[]byte{0x1b, '[', 'C'}, "arrow_right"},
		{[]byte{0x1b, '[', 'D'}, "arrow_left"},
		{[]byte{0x1b}, "escape"},
		{[]byte{'\r'}, "enter"},
		{[]byte{'\t'}, "tab"},
		{[]byte{'b'}, "b"},
		{[]byte{0x1b, '[', 'Z'}, ""},
	}
	for _, tt := range tests {
		got, err := ReadKey(bytes.NewReader(tt.in))
		if err != nil || got != tt.want {
			t.Errorf("ReadKey(%q) = %q, %v, want %q, nil", tt.in, got, err, tt.want)
		}
	}
}

func TestReadKey_CtrlC(t *testing.T) {
	if _, err := ReadKey(bytes.NewReader([]byte{3})); !errors.Is(err, ErrInterrupted) {
		t.Errorf("ReadKey(Ctrl+C) error = %v, want ErrInterrupted", err)
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveUp},
		{"h", ActionMoveLeft},
		{"b", ActionToggleMode},
		{"enter", ActionConfirm},
		{"u", ActionUndo},
		{"zz", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveUp]
	if len(codes) != 2 || codes[0] != "arrow_up" || codes[1] != "k" {
		t.Errorf("GetBindingsByAction()[ActionMoveUp] = %v, want [arrow_up k]", codes)
	}
}
