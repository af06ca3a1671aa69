package terminal

import (
	"bytes"
	"testing"
)

func TestFits(t *testing.T) {
	tests := []struct {
		side, extra, w, h int
		want              bool
	}{
		{9, 5, DefaultWidth, DefaultHeight, true},
		{9, 6, DefaultWidth, DefaultHeight, false},
		{40, 0, DefaultWidth + 1, 200, true},
		{40, 0, DefaultWidth, 200, false},
	}
	for _, tt := range tests {
		if got := Fits(tt.side, tt.extra, tt.w, tt.h); got != tt.want {
			t.Errorf("Fits(%d, %d, %d, %d) = %v, want %v", tt.side, tt.extra, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	if buf.String() != "\033[2J\033[H" {
		t.Errorf("Clear wrote %q", buf.String())
	}
}
