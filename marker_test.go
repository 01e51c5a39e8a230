package droste

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingLayer is a MarkerLayer that keeps every spawned marker forever.
type recordingLayer struct {
	spawned []MarkerSpec
	updates int
	draws   int
}

func (l *recordingLayer) Spawn(m MarkerSpec) { l.spawned = append(l.spawned, m) }
func (l *recordingLayer) Update(float64)     { l.updates++ }
func (l *recordingLayer) Draw(*ebiten.Image) { l.draws++ }
func (l *recordingLayer) Len() int           { return len(l.spawned) }

// recordingSink is a MarkerSink that remembers every event.
type recordingSink struct {
	pos []Vec2
	hue []float64
}

func (s *recordingSink) Emit(pos Vec2, hue float64) {
	s.pos = append(s.pos, pos)
	s.hue = append(s.hue, hue)
}

func TestMarkerStyleSpec(t *testing.T) {
	style := MarkerStyle{Radius: 7, Lifetime: 0.75, Saturation: 1, Value: 1}
	spec := style.Spec(Vec2{3, 4}, 120)
	if spec.Pos != (Vec2{3, 4}) {
		t.Errorf("Pos = %+v", spec.Pos)
	}
	if spec.Radius != 7 || spec.Lifetime != 0.75 {
		t.Errorf("Radius = %v, Lifetime = %v", spec.Radius, spec.Lifetime)
	}
	if !approxEqual(spec.Color.G, 1, 1e-9) || !approxEqual(spec.Color.R, 0, 1e-9) {
		t.Errorf("Color = %+v, want green", spec.Color)
	}
}

func TestStyledSinkSpawnsIntoLayer(t *testing.T) {
	layer := &recordingLayer{}
	sink := StyledSink(layer, DefaultWalkerStyle())
	sink.Emit(Vec2{10, 20}, 180)
	sink.Emit(Vec2{30, 40}, 260)

	if len(layer.spawned) != 2 {
		t.Fatalf("spawned %d, want 2", len(layer.spawned))
	}
	if layer.spawned[1].Pos != (Vec2{30, 40}) {
		t.Errorf("second marker at %+v", layer.spawned[1].Pos)
	}
	if layer.spawned[0].Lifetime != DefaultWalkerStyle().Lifetime {
		t.Errorf("Lifetime = %v", layer.spawned[0].Lifetime)
	}
}
