package droste

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// advancer is implemented by pointer sources that consume one queued event
// per frame, such as ScriptedPointer.
type advancer interface {
	Advance() bool
}

// Scene is the top-level object that owns the walker, the painter, the
// marker layer and the Droste view. It implements ebiten.Game.
type Scene struct {
	config  Config
	seed    uint64
	rng     *rand.Rand
	bounds  Rect
	walker  *PathWalker
	markers MarkerLayer
	trail   MarkerSink
	pointer PointerSource
	painter *Painter
	view    *DrosteView
	hud     *HUD
	frame   int

	screenshotQueue []string
}

var _ ebiten.Game = (*Scene)(nil)

// NewScene validates cfg and builds a scene drawing markers into the given
// layer and painting from pointer.
func NewScene(cfg Config, markers MarkerLayer, pointer PointerSource) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounds, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Scene{
		config:  cfg,
		seed:    seed,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bounds:  bounds,
		walker:  NewPathWalker(cfg.Path),
		markers: markers,
		trail:   StyledSink(markers, cfg.WalkerMarker),
		pointer: pointer,
		view:    NewDrosteView(cfg.Droste, cfg.Width, cfg.Height),
	}
	s.painter = NewPainter(cfg.Painter, pointer, StyledSink(markers, cfg.Painter.Style))
	s.hud = NewHUD(s.Stats)
	s.hud.Visible = cfg.ShowHUD
	return s, nil
}

// Seed returns the seed actually used for the walker randomness.
func (s *Scene) Seed() uint64 {
	return s.seed
}

// Walker returns the scene's PathWalker.
func (s *Scene) Walker() *PathWalker {
	return s.walker
}

// Painter returns the scene's Painter.
func (s *Scene) Painter() *Painter {
	return s.painter
}

// View returns the scene's DrosteView.
func (s *Scene) View() *DrosteView {
	return s.view
}

// HUD returns the debug overlay.
func (s *Scene) HUD() *HUD {
	return s.hud
}

// Bounds returns the walker sampling rectangle.
func (s *Scene) Bounds() Rect {
	return s.bounds
}

// Frame returns the number of steps taken.
func (s *Scene) Frame() int {
	return s.frame
}

// Stats collects the numbers shown by the HUD.
func (s *Scene) Stats() HUDStats {
	return HUDStats{
		FPS:           ebiten.ActualFPS(),
		TPS:           ebiten.ActualTPS(),
		Markers:       s.markers.Len(),
		Regenerations: s.walker.Regenerations(),
		Painted:       s.painter.Painted(),
	}
}

// Update handles the HUD and screenshot keys and advances the scene by one
// tick.
func (s *Scene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.hud.Visible = !s.hud.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.Screenshot(fmt.Sprintf("frame-%d", s.frame))
	}
	s.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Step advances the scene by dt seconds. Existing markers age first, then
// the walker ticks and is evaluated, then the painter runs.
func (s *Scene) Step(dt float64) {
	s.frame++
	s.markers.Update(dt)

	s.walker.Tick(dt, s.bounds, s.rng)
	pos, hue := s.walker.Evaluate()
	s.trail.Emit(pos, hue)

	if a, ok := s.pointer.(advancer); ok {
		a.Advance()
	}
	s.painter.Update(dt)
	s.hud.Update(dt)
}

// Draw renders the markers on top of the nested previous frame, then the
// HUD, then captures any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.view.Draw(screen, s.markers.Draw)
	s.hud.Draw(screen)
	s.flushScreenshots(screen)
}

// Layout always renders at the configured logical size and lets ebiten
// scale it to the window.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.config.Width, s.config.Height
}

// Dispose frees the offscreen buffers.
func (s *Scene) Dispose() {
	s.view.Dispose()
}
