package droste

// CubicBezier is a cubic Bezier segment defined by four control points.
// The curve is a polynomial in t, so Eval is well defined outside [0, 1]
// and extrapolates past the end points.
type CubicBezier struct {
	P0, P1, P2, P3 Vec2
}

// NewCubicBezier returns the segment [p0, p1, p2, p3].
func NewCubicBezier(p0, p1, p2, p3 Vec2) CubicBezier {
	return CubicBezier{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Points returns the control points in order.
func (c CubicBezier) Points() [4]Vec2 {
	return [4]Vec2{c.P0, c.P1, c.P2, c.P3}
}

// Eval returns the point on the curve at t.
func (c CubicBezier) Eval(t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Vec2{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Derivative returns the tangent of the curve at t.
func (c CubicBezier) Derivative(t float64) Vec2 {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	d := 3 * t * t
	return c.P1.Sub(c.P0).Scale(a).
		Add(c.P2.Sub(c.P1).Scale(b)).
		Add(c.P3.Sub(c.P2).Scale(d))
}
