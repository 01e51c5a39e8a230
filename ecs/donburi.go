package ecs

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/droste"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// DefaultMaxMarkers is the capacity used when NewMarkerWorld is given zero.
const DefaultMaxMarkers = 4096

// MarkerData is the per-entity marker state.
type MarkerData struct {
	Pos       droste.Vec2
	Radius    float64
	Color     droste.Color
	Alpha     float64
	Remaining float64 // seconds left before removal
	fade      *gween.Tween
}

// Marker is the Donburi component holding MarkerData.
var Marker = donburi.NewComponentType[MarkerData]()

// MarkerExpired is published once for every marker removed by Update.
type MarkerExpired struct {
	Entity donburi.Entity
	Pos    droste.Vec2
	Color  droste.Color
}

// MarkerExpiredType is the Donburi event type for expired markers.
// MarkerWorld.Update delivers them to subscribers.
var MarkerExpiredType = events.NewEventType[MarkerExpired]()

// MarkerWorld is a droste.MarkerLayer backed by a Donburi world.
type MarkerWorld struct {
	world      donburi.World
	query      *donburi.Query
	max        int
	warnedFull bool
	expired    []MarkerExpired
}

var _ droste.MarkerLayer = (*MarkerWorld)(nil)

// NewMarkerWorld creates a marker layer on world holding at most max live
// markers. A non-positive max uses DefaultMaxMarkers.
func NewMarkerWorld(world donburi.World, max int) *MarkerWorld {
	if max <= 0 {
		max = DefaultMaxMarkers
	}
	return &MarkerWorld{
		world: world,
		query: donburi.NewQuery(filter.Contains(Marker)),
		max:   max,
	}
}

// World returns the underlying Donburi world.
func (m *MarkerWorld) World() donburi.World {
	return m.world
}

// Spawn creates a marker entity. New markers are silently dropped when the
// layer is full; the first drop is logged. Markers with a non-positive
// lifetime are ignored.
func (m *MarkerWorld) Spawn(spec droste.MarkerSpec) {
	if spec.Lifetime <= 0 {
		return
	}
	if m.Len() >= m.max {
		if !m.warnedFull {
			log.Printf("droste: marker layer full (%d), dropping new markers", m.max)
			m.warnedFull = true
		}
		return
	}
	entry := m.world.Entry(m.world.Create(Marker))
	Marker.SetValue(entry, MarkerData{
		Pos:       spec.Pos,
		Radius:    spec.Radius,
		Color:     spec.Color,
		Alpha:     1,
		Remaining: spec.Lifetime,
		fade:      gween.New(1, 0, float32(spec.Lifetime), ease.OutQuad),
	})
}

// Update advances every marker's fade by dt seconds, removes the markers
// whose lifetime has elapsed and publishes a MarkerExpired event for each.
// The events are delivered to subscribers before Update returns.
func (m *MarkerWorld) Update(dt float64) {
	m.expired = m.expired[:0]
	m.query.Each(m.world, func(entry *donburi.Entry) {
		d := Marker.Get(entry)
		d.Remaining -= dt
		val, _ := d.fade.Update(float32(dt))
		d.Alpha = float64(val)
		if d.Remaining <= 0 {
			m.expired = append(m.expired, MarkerExpired{
				Entity: entry.Entity(),
				Pos:    d.Pos,
				Color:  d.Color,
			})
		}
	})
	for _, e := range m.expired {
		m.world.Remove(e.Entity)
		MarkerExpiredType.Publish(m.world, e)
	}
	m.expired = m.expired[:0]
	MarkerExpiredType.ProcessEvents(m.world)
	if m.warnedFull && m.Len() < m.max {
		m.warnedFull = false
	}
}

// Draw fills every live marker as a circle tinted by its color and current
// alpha.
func (m *MarkerWorld) Draw(dst *ebiten.Image) {
	m.query.Each(m.world, func(entry *donburi.Entry) {
		d := Marker.Get(entry)
		if d.Alpha <= 0 {
			return
		}
		c := d.Color.WithAlpha(d.Color.A * d.Alpha)
		vector.DrawFilledCircle(dst, float32(d.Pos.X), float32(d.Pos.Y), float32(d.Radius), c.RGBA(), true)
	})
}

// Len returns the number of live markers.
func (m *MarkerWorld) Len() int {
	return m.query.Count(m.world)
}
