package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPolar(t *testing.T) {
	v := Polar(10, math.Pi/2)
	if math.Abs(v.X()) > 1e-12 || math.Abs(v.Y()-10) > 1e-12 {
		t.Errorf("Expected (0, 10), got %v", v)
	}

	v = Polar(2, math.Pi)
	if math.Abs(v.X()+2) > 1e-12 || math.Abs(v.Y()) > 1e-12 {
		t.Errorf("Expected (-2, 0), got %v", v)
	}
}

func TestBelowTwoPi(t *testing.T) {
	if !(BelowTwoPi < TwoPi) {
		t.Fatalf("Expected BelowTwoPi < TwoPi, got %v >= %v", BelowTwoPi, TwoPi)
	}
	if TwoPi-BelowTwoPi > 1e-12 {
		t.Errorf("Expected BelowTwoPi adjacent to TwoPi, gap %v", TwoPi-BelowTwoPi)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(mgl64.Vec2{1, -1}) {
		t.Error("Expected finite vector to report finite")
	}
	if IsFinite(mgl64.Vec2{math.NaN(), 0}) {
		t.Error("Expected NaN component to report non-finite")
	}
	if IsFinite(mgl64.Vec2{0, math.Inf(-1)}) {
		t.Error("Expected -Inf component to report non-finite")
	}
}

func TestScaleDiv_Zero(t *testing.T) {
	v := ScaleDiv(mgl64.Vec2{3, 4}, 0)
	if v != (mgl64.Vec2{}) {
		t.Errorf("Expected zero vector, got %v", v)
	}
	v = ScaleDiv(mgl64.Vec2{3, 4}, 2)
	if v != (mgl64.Vec2{1.5, 2}) {
		t.Errorf("Expected (1.5, 2), got %v", v)
	}
}

func TestSum(t *testing.T) {
	got := Sum([]mgl64.Vec2{{1, 2}, {3, 4}, {-1, -1}})
	if got != (mgl64.Vec2{3, 5}) {
		t.Errorf("Expected (3, 5), got %v", got)
	}
	if Sum(nil) != (mgl64.Vec2{}) {
		t.Error("Expected zero sum for empty list")
	}
}
