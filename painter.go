package droste

import (
	"fmt"
	"math"
)

// PainterConfig controls the circles left behind by the mouse.
type PainterConfig struct {
	Style MarkerStyle
	// HueStart is the hue of the first painted circle, in degrees.
	HueStart float64
	// HueSpeed is how fast the painted hue cycles, in degrees per second.
	HueSpeed float64
}

// DefaultPainterConfig returns the tuning used by the demo.
func DefaultPainterConfig() PainterConfig {
	return PainterConfig{
		Style:    MarkerStyle{Radius: 18, Lifetime: 2, Saturation: 0.7, Value: 1},
		HueStart: 0,
		HueSpeed: 90,
	}
}

// Validate reports whether the configuration is usable.
func (c PainterConfig) Validate() error {
	if c.Style.Radius <= 0 || c.Style.Lifetime <= 0 {
		return fmt.Errorf("painter style %+v: %w", c.Style, ErrInvalidConfig)
	}
	return nil
}

// Painter drops one marker per frame at the pointer while it is pressed.
type Painter struct {
	config  PainterConfig
	pointer PointerSource
	sink    MarkerSink
	clock   float64
	painted int
}

// NewPainter creates a painter reading pointer and emitting into sink.
func NewPainter(cfg PainterConfig, pointer PointerSource, sink MarkerSink) *Painter {
	return &Painter{config: cfg, pointer: pointer, sink: sink}
}

// Update advances the hue clock by dt and emits a marker if the pointer is
// pressed. It reports whether a marker was emitted.
func (p *Painter) Update(dt float64) bool {
	if dt > 0 {
		p.clock += dt
	}
	if !p.pointer.Pressed() {
		return false
	}
	x, y := p.pointer.Position()
	p.sink.Emit(Vec2{X: x, Y: y}, p.Hue())
	p.painted++
	return true
}

// Hue returns the hue the next painted circle will use.
func (p *Painter) Hue() float64 {
	return math.Mod(p.config.HueStart+p.clock*p.config.HueSpeed, 360)
}

// Painted returns the number of circles emitted so far.
func (p *Painter) Painted() int {
	return p.painted
}
