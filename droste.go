package droste

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrDegenerateBounds is returned when a sampling rectangle has no area.
var ErrDegenerateBounds = errors.New("droste: degenerate bounds")

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("droste: invalid config")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets and control points.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether r has zero or negative area.
func (r Rect) Empty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// Inset shrinks r by mx on the left and right and by my on the top and
// bottom. It returns ErrDegenerateBounds if nothing is left.
func (r Rect) Inset(mx, my float64) (Rect, error) {
	out := Rect{
		X:      r.X + mx,
		Y:      r.Y + my,
		Width:  r.Width - 2*mx,
		Height: r.Height - 2*my,
	}
	if out.Empty() {
		return Rect{}, fmt.Errorf("inset %vx%v by (%v, %v): %w", r.Width, r.Height, mx, my, ErrDegenerateBounds)
	}
	return out, nil
}

// Sample returns a uniformly distributed point inside r. X is drawn before Y.
func (r Rect) Sample(rng Rand) Vec2 {
	return Vec2{
		X: r.X + rng.Float64()*r.Width,
		Y: r.Y + rng.Float64()*r.Height,
	}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max). A collapsed range returns Min without
// consuming randomness.
func (r Range) Random(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Rand is the source of uniform randomness consumed by the walker.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
