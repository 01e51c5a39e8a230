package droste

import (
	"fmt"
	"math"
)

// PathConfig controls how a PathWalker plans and paces its segments.
type PathConfig struct {
	// Period is the time in seconds spent on each segment.
	Period float64
	// Jitter is added independently to the X and Y of every sampled target,
	// so targets may land slightly outside the sampling bounds.
	Jitter Range
	// Lookahead is the parameter at which the previous segment is
	// extrapolated to produce the second control point of the next one.
	Lookahead float64
	// HueBase and HueAmplitude shape the hue reported by Evaluate:
	// HueBase + sin(t·π)·HueAmplitude.
	HueBase      float64
	HueAmplitude float64
}

// DefaultPathConfig returns the tuning used by the demo.
func DefaultPathConfig() PathConfig {
	return PathConfig{
		Period:       1.5,
		Jitter:       Range{Min: -150, Max: 150},
		Lookahead:    1.3,
		HueBase:      180,
		HueAmplitude: 80,
	}
}

// Validate reports whether the configuration is usable.
func (c PathConfig) Validate() error {
	if !(c.Period > 0) {
		return fmt.Errorf("path period %v: %w", c.Period, ErrInvalidConfig)
	}
	if c.Jitter.Min > c.Jitter.Max {
		return fmt.Errorf("path jitter [%v, %v]: %w", c.Jitter.Min, c.Jitter.Max, ErrInvalidConfig)
	}
	return nil
}

// PathWalker moves along a chain of cubic Bezier segments. Every time its
// timer completes a period it plans a new segment from the end of the current
// one to a random target; between regenerations it is sampled at the timer's
// progress.
//
// The zero curve evaluates to the origin until the first regeneration.
type PathWalker struct {
	config        PathConfig
	timer         *RepeatingTimer
	curve         CubicBezier
	regenerations int
}

// NewPathWalker creates a walker with an all-zero curve. A non-positive
// period panics; call PathConfig.Validate first when it comes from user input.
func NewPathWalker(cfg PathConfig) *PathWalker {
	return &PathWalker{
		config: cfg,
		timer:  NewRepeatingTimer(cfg.Period),
	}
}

// Tick advances the walker's timer by dt and, if a period completed,
// replaces the current segment with a new one ending at a random point in
// bounds. At most one segment is generated per call. It reports whether a new
// segment was generated.
//
// bounds must have positive area; Rect.Inset guarantees this.
func (w *PathWalker) Tick(dt float64, bounds Rect, rng Rand) bool {
	w.timer.Tick(dt)
	if !w.timer.JustFinished() {
		return false
	}
	if bounds.Empty() {
		panic(fmt.Sprintf("droste: PathWalker.Tick with empty bounds %+v", bounds))
	}

	end := bounds.Sample(rng)
	end.X += w.config.Jitter.Random(rng)
	end.Y += w.config.Jitter.Random(rng)

	start := w.curve.Eval(1)
	continued := w.curve.Eval(w.config.Lookahead)

	w.curve = NewCubicBezier(start, continued, end, end)
	w.regenerations++
	return true
}

// Evaluate returns the position on the current segment at the timer's
// progress and the matching hue in degrees.
func (w *PathWalker) Evaluate() (Vec2, float64) {
	t := w.timer.Fraction()
	return w.curve.Eval(t), w.Hue(t)
}

// Hue returns the hue in degrees for progress t.
func (w *PathWalker) Hue(t float64) float64 {
	return w.config.HueBase + math.Sin(t*math.Pi)*w.config.HueAmplitude
}

// Curve returns the active segment.
func (w *PathWalker) Curve() CubicBezier {
	return w.curve
}

// Progress returns the fraction of the current period elapsed, in [0, 1].
func (w *PathWalker) Progress() float64 {
	return w.timer.Fraction()
}

// Regenerations returns how many segments have been generated.
func (w *PathWalker) Regenerations() int {
	return w.regenerations
}

// Config returns the walker configuration.
func (w *PathWalker) Config() PathConfig {
	return w.config
}

// Reset returns the walker to its initial all-zero curve and rewinds the timer.
func (w *PathWalker) Reset() {
	w.curve = CubicBezier{}
	w.timer.Reset()
	w.regenerations = 0
}
