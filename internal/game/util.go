package game

import "math"

// Vec is a 2D point or displacement in playfield units
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Len returns the euclidean length of v
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromAngle returns the vector of length mag pointing along angle (radians)
func FromAngle(angle, mag float64) Vec {
	return Vec{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Wrap maps value into [0, dim). dim must be positive.
// Negative values reappear near the far edge.
func Wrap(value, dim float64) float64 {
	r := math.Mod(value, dim)
	if r < 0 {
		r += dim
	}
	// -tiny + dim can round up to dim
	if r >= dim {
		r = 0
	}
	return r
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// NormalizeAngle wraps angle to [-PI, PI]. NaN and infinities map to 0.
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return math.Remainder(a, 2*math.Pi)
}
