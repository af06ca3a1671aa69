package config

import (
	"strings"
	"testing"

	"github.com/arekfu/quoridor/pkg/game/ai"
)

func TestDefaults_Valid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		errMsg string
	}{
		{"side too small", func(o *Options) { o.Side = 1 }, "side must be between"},
		{"side too large", func(o *Options) { o.Side = 41 }, "side must be between"},
		{"too many seats", func(o *Options) { o.Seats = 5 }, "seats must be between"},
		{"four seats on a tiny board", func(o *Options) { o.Side = 2; o.Seats = 4 }, "config validation"},
		{"unknown computer seat", func(o *Options) { o.Computer = []int{2} }, "computer seat 3 does not exist"},
		{"duplicate computer seat", func(o *Options) { o.Computer = []int{1, 1} }, "listed twice"},
		{"bad stock", func(o *Options) { o.BarrierStock = -2 }, "barrier stock"},
		{"bad radius", func(o *Options) { o.BarrierRadius = -2 }, "barrier radius"},
		{"bad max turns", func(o *Options) { o.MaxTurns = -1 }, "max turns"},
		{"unknown renderer", func(o *Options) { o.Renderer = "vga" }, "unknown renderer"},
		{"headless with a human", func(o *Options) { o.Renderer = RendererNone }, "every seat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Defaults()
			tt.modify(&o)
			err := o.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() = %q, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidate_Headless(t *testing.T) {
	o := Defaults()
	o.Renderer = RendererNone
	o.Computer = []int{0, 1}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAI(t *testing.T) {
	o := Defaults()
	o.Eval = ai.EvalRatio
	if got := o.AI(); got.BarrierRadius != 0 || got.Mode != ai.EvalRatio {
		t.Errorf("AI() = %+v, want ratio mode with no radius", got)
	}

	o.Seats = 4
	if got := o.AI().BarrierRadius; got != 2 {
		t.Errorf("AI().BarrierRadius with 4 seats = %d, want 2", got)
	}

	o.BarrierRadius = 3
	if got := o.AI().BarrierRadius; got != 3 {
		t.Errorf("AI().BarrierRadius = %d, want 3", got)
	}

	o.BarrierRadius = 0
	if got := o.AI().BarrierRadius; got != 0 {
		t.Errorf("AI().BarrierRadius with an explicit 0 and 4 seats = %d, want 0 (whole board)", got)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() with radius 0 = %v, want nil", err)
	}
}

func TestParseSeatList(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"none", nil},
		{"2", []int{1}},
		{"1, 3", []int{0, 2}},
		{"all", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		got, err := ParseSeatList(tt.in, 3)
		if err != nil {
			t.Errorf("ParseSeatList(%q) error = %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseSeatList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseSeatList(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}

	if _, err := ParseSeatList("one", 2); err == nil {
		t.Error("ParseSeatList(\"one\") = nil error, want error")
	}
}

func TestIsComputer(t *testing.T) {
	o := Defaults()
	if o.IsComputer(0) || !o.IsComputer(1) {
		t.Errorf("IsComputer() disagrees with Computer = %v", o.Computer)
	}
}
