package droste

import "math"

// RepeatingTimer is a fixed-period countdown that restarts itself every time
// it completes. It is advanced explicitly with Tick once per frame.
type RepeatingTimer struct {
	period        float64
	elapsed       float64
	justFinished  bool
	timesFinished int
}

// NewRepeatingTimer creates a timer with the given period in seconds.
// A non-positive period panics.
func NewRepeatingTimer(period float64) *RepeatingTimer {
	if !(period > 0) {
		panic("droste: RepeatingTimer period must be positive")
	}
	return &RepeatingTimer{period: period}
}

// Tick advances the timer by dt seconds. Negative dt is treated as zero.
// If the advance crosses one or more period boundaries, JustFinished reports
// true until the next Tick and the elapsed time wraps into the new period.
func (t *RepeatingTimer) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.timesFinished = int(t.elapsed / t.period)
		t.elapsed = math.Mod(t.elapsed, t.period)
		t.justFinished = true
		return
	}
	t.timesFinished = 0
	t.justFinished = false
}

// JustFinished reports whether the last Tick completed a period.
func (t *RepeatingTimer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished returns how many periods the last Tick completed.
func (t *RepeatingTimer) TimesFinished() int {
	return t.timesFinished
}

// Fraction returns the progress through the current period in [0, 1].
func (t *RepeatingTimer) Fraction() float64 {
	return clamp01(t.elapsed / t.period)
}

// Elapsed returns the seconds elapsed in the current period.
func (t *RepeatingTimer) Elapsed() float64 {
	return t.elapsed
}

// Period returns the timer period in seconds.
func (t *RepeatingTimer) Period() float64 {
	return t.period
}

// Reset rewinds the timer to the start of a period and clears the finished edge.
func (t *RepeatingTimer) Reset() {
	t.elapsed = 0
	t.justFinished = false
	t.timesFinished = 0
}
