package droste

import "github.com/hajimehoshi/ebiten/v2"

// MarkerSink receives one (position, hue) event per emitted marker. The
// producer never learns what happens to the marker afterwards.
type MarkerSink interface {
	Emit(pos Vec2, hue float64)
}

// MarkerSpec describes a single marker to spawn.
type MarkerSpec struct {
	Pos      Vec2
	Radius   float64
	Color    Color
	Lifetime float64 // seconds until the marker is removed
}

// MarkerLayer owns a collection of fixed-lifetime markers. Implementations
// fade markers out over their lifetime and drop them once it elapses.
type MarkerLayer interface {
	Spawn(m MarkerSpec)
	Update(dt float64)
	Draw(dst *ebiten.Image)
	Len() int
}

// MarkerStyle maps a (position, hue) event to a concrete MarkerSpec.
type MarkerStyle struct {
	Radius     float64
	Lifetime   float64
	Saturation float64
	Value      float64
}

// DefaultWalkerStyle is the style of markers left by the PathWalker.
func DefaultWalkerStyle() MarkerStyle {
	return MarkerStyle{Radius: 12, Lifetime: 1, Saturation: 0.85, Value: 1}
}

// Spec builds the marker for an event at pos with the given hue.
func (s MarkerStyle) Spec(pos Vec2, hue float64) MarkerSpec {
	return MarkerSpec{
		Pos:      pos,
		Radius:   s.Radius,
		Color:    HSVColor(hue, s.Saturation, s.Value),
		Lifetime: s.Lifetime,
	}
}

// StyledSink returns a MarkerSink that spawns markers of the given style
// into layer.
func StyledSink(layer MarkerLayer, style MarkerStyle) MarkerSink {
	return &styledSink{layer: layer, style: style}
}

type styledSink struct {
	layer MarkerLayer
	style MarkerStyle
}

func (s *styledSink) Emit(pos Vec2, hue float64) {
	s.layer.Spawn(s.style.Spec(pos, hue))
}
