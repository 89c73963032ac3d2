package game

import (
	"math"
	"math/rand/v2"
	"testing"
)

func checkWrapped(t *testing.T, v, dim, got float64) {
	t.Helper()
	if got < 0 || got >= dim {
		t.Errorf("Wrap(%g, %g) = %g, outside [0, %g)", v, dim, got, dim)
	}
	if r := math.Remainder(got-v, dim); math.Abs(r) > 1e-6 {
		t.Errorf("Wrap(%g, %g) = %g, not congruent (off by %g)", v, dim, got, r)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, dim, want float64
	}{
		{0, 400, 0},
		{10, 400, 10},
		{400, 400, 0},
		{410, 400, 10},
		{-10, 400, 390},
		{-400, 400, 0},
		{-810, 400, 390},
		{1200.5, 400, 0.5},
	}
	for _, tt := range tests {
		got := Wrap(tt.v, tt.dim)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%g, %g) = %g, want %g", tt.v, tt.dim, got, tt.want)
		}
		checkWrapped(t, tt.v, tt.dim, got)
	}
}

func TestWrapTinyNegativeStaysBelowDim(t *testing.T) {
	got := Wrap(-1e-18, 400)
	checkWrapped(t, -1e-18, 400, got)
}

func TestWrapRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		v := (rng.Float64()*2 - 1) * 1e4
		dim := 1 + rng.Float64()*999
		checkWrapped(t, v, dim, Wrap(v, dim))
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 3 * math.Pi, -3 * math.Pi, 10} {
		got := NormalizeAngle(a)
		if got < -math.Pi || got > math.Pi {
			t.Errorf("NormalizeAngle(%f) = %f out of range", a, got)
		}
		if math.Abs(math.Sin(got)-math.Sin(a)) > 1e-9 || math.Abs(math.Cos(got)-math.Cos(a)) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f changed direction", a, got)
		}
	}
}

func TestNormalizeAngleLargeAndNonFinite(t *testing.T) {
	for _, a := range []float64{1e12, -1e12, 1e17, math.MaxFloat64} {
		if got := NormalizeAngle(a); got < -math.Pi || got > math.Pi {
			t.Errorf("NormalizeAngle(%g) = %f out of range", a, got)
		}
	}
	for _, a := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := NormalizeAngle(a); got != 0 {
			t.Errorf("NormalizeAngle(%g) = %f, want 0", a, got)
		}
	}
}

func TestVec(t *testing.T) {
	a := Vec{3, 4}
	if a.Len() != 5 {
		t.Errorf("expected length 5, got %f", a.Len())
	}
	if got := a.Add(Vec{1, 1}).Scale(2).Sub(Vec{8, 10}); got != (Vec{}) {
		t.Errorf("expected zero vector, got %+v", got)
	}
	v := FromAngle(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-2) > 1e-9 {
		t.Errorf("expected (0,2), got %+v", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{5, 5}, {-1, 0}, {11, 10}, {0, 0}, {10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 10); got != tt.want {
			t.Errorf("Clamp(%g, 0, 10) = %g, want %g", tt.v, got, tt.want)
		}
	}
}
