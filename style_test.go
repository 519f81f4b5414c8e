package mathfig

import (
	"math"
	"testing"
)

func TestDash_Pattern(t *testing.T) {
	tests := []struct {
		name          string
		length, ratio float64
		on, off       float64
	}{
		{"half", 0.15, 0.5, 0.15, 0.15},
		{"dense", 0.2, 0.8, 0.2, 0.05},
		{"solid ratio", 0.2, 1.0, 0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.length, tt.ratio)
			if d == nil {
				t.Fatal("NewDash returned nil for valid input")
			}
			on, off := d.Pattern()
			if math.Abs(on-tt.on) > 1e-12 || math.Abs(off-tt.off) > 1e-12 {
				t.Errorf("Pattern() = (%v, %v), want (%v, %v)", on, off, tt.on, tt.off)
			}
		})
	}
}

func TestNewDash_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		length, ratio float64
	}{
		{"zero length", 0, 0.5},
		{"negative length", -1, 0.5},
		{"zero ratio", 0.15, 0},
		{"ratio above one", 0.15, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := NewDash(tt.length, tt.ratio); d != nil {
				t.Errorf("NewDash(%v, %v) = %+v, want nil", tt.length, tt.ratio, d)
			}
		})
	}
}

func TestDash_IsDashed(t *testing.T) {
	if NewDash(0.15, 0.5).IsDashed() != true {
		t.Error("expected dashed pattern")
	}
	if NewDash(0.15, 1.0).IsDashed() {
		t.Error("ratio 1 leaves no gap, should not be dashed")
	}
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Error("nil dash should be solid")
	}
}

func TestStyle_IsDashed(t *testing.T) {
	th := DefaultTheme()

	if th.Solid().IsDashed() {
		t.Error("solid style should not be dashed")
	}
	if !th.Hidden().IsDashed() {
		t.Error("hidden style should be dashed")
	}
	if !th.Helper().IsDashed() {
		t.Error("helper style should be dashed")
	}
	if (Style{Dash: NewDash(0.2, 1.0)}).IsDashed() {
		t.Error("ratio 1 leaves no gap, should not be dashed")
	}
}

func TestStyle_Alpha(t *testing.T) {
	th := DefaultTheme()

	if got := th.Solid().Alpha(); got != 1 {
		t.Errorf("Solid().Alpha() = %v, want 1", got)
	}
	if got := th.Hidden().Alpha(); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Hidden().Alpha() = %v, want 0.6", got)
	}

	s := Style{Color: th.Curve, Opacity: 0.5}
	s.Color.A = 0.5
	if got := s.Alpha(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Alpha() = %v, want 0.25", got)
	}
}

func TestTheme_OrDefault(t *testing.T) {
	var nilTheme *Theme
	if nilTheme.OrDefault() == nil {
		t.Fatal("OrDefault() on nil returned nil")
	}
	th := &Theme{StrokeWidth: 2}
	if th.OrDefault() != th {
		t.Error("OrDefault() should return the theme itself when non-nil")
	}
}
