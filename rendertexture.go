package droste

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrosteConfig controls the recursive feedback effect.
type DrosteConfig struct {
	// Levels is the number of nested copies of the previous frame drawn
	// behind the scene each frame. Zero disables the effect.
	Levels int
	// Scale is the size of each level relative to the one outside it.
	Scale float64
	// Rotation is the extra rotation per level, in radians.
	Rotation float64
	// Fade is the alpha multiplier applied per level.
	Fade float64
	// Background fills the frame before the nested copies are drawn.
	Background Color
}

// DefaultDrosteConfig returns the tuning used by the demo.
func DefaultDrosteConfig() DrosteConfig {
	return DrosteConfig{
		Levels:     3,
		Scale:      0.8,
		Rotation:   0.06,
		Fade:       0.9,
		Background: Color{R: 0.05, G: 0.05, B: 0.08, A: 1},
	}
}

// Validate reports whether the configuration is usable.
func (c DrosteConfig) Validate() error {
	if c.Levels < 0 {
		return fmt.Errorf("droste levels %d: %w", c.Levels, ErrInvalidConfig)
	}
	if c.Levels > 0 && !(c.Scale > 0 && c.Scale < 1) {
		return fmt.Errorf("droste scale %v must be in (0, 1): %w", c.Scale, ErrInvalidConfig)
	}
	if c.Fade < 0 || c.Fade > 1 {
		return fmt.Errorf("droste fade %v: %w", c.Fade, ErrInvalidConfig)
	}
	return nil
}

// DrosteView renders a scene on top of nested copies of its own previous
// output. It owns two offscreen images of the logical screen size and swaps
// them every frame; unlike pooled render targets they persist across frames.
type DrosteView struct {
	config   DrosteConfig
	current  *ebiten.Image
	previous *ebiten.Image
	w, h     int
	frames   int
}

// NewDrosteView creates a view with buffers of the given size.
func NewDrosteView(cfg DrosteConfig, w, h int) *DrosteView {
	v := &DrosteView{config: cfg}
	v.Resize(w, h)
	return v
}

// Width returns the buffer width in pixels.
func (v *DrosteView) Width() int {
	return v.w
}

// Height returns the buffer height in pixels.
func (v *DrosteView) Height() int {
	return v.h
}

// Frames returns how many frames have been drawn since the last resize.
func (v *DrosteView) Frames() int {
	return v.frames
}

// Previous returns the image holding the last completed frame.
func (v *DrosteView) Previous() *ebiten.Image {
	return v.previous
}

// NestedGeoM returns the transform placing the previous frame at the given
// nesting level: scaled by Scale^level and rotated by Rotation·level around
// the buffer centre. Level 0 is the identity.
func (v *DrosteView) NestedGeoM(level int) ebiten.GeoM {
	return nestedGeoM(v.config, level, float64(v.w), float64(v.h))
}

func nestedGeoM(cfg DrosteConfig, level int, w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	if level <= 0 {
		return m
	}
	s := math.Pow(cfg.Scale, float64(level))
	m.Translate(-w/2, -h/2)
	m.Scale(s, s)
	if cfg.Rotation != 0 {
		m.Rotate(cfg.Rotation * float64(level))
	}
	m.Translate(w/2, h/2)
	return m
}

// LevelAlpha returns the opacity of the copy at the given nesting level.
func (v *DrosteView) LevelAlpha(level int) float64 {
	return math.Pow(v.config.Fade, float64(level))
}

// Draw composes one frame: background, nested copies of the previous frame
// from the outermost level inwards, then scene on top. The result is drawn
// to screen and kept as the source for the next frame.
func (v *DrosteView) Draw(screen *ebiten.Image, scene func(dst *ebiten.Image)) {
	v.current.Fill(v.config.Background.RGBA())

	if v.frames > 0 {
		for level := 1; level <= v.config.Levels; level++ {
			var op ebiten.DrawImageOptions
			op.GeoM = v.NestedGeoM(level)
			op.ColorScale.ScaleAlpha(float32(v.LevelAlpha(level)))
			op.Filter = ebiten.FilterLinear
			v.current.DrawImage(v.previous, &op)
		}
	}

	if scene != nil {
		scene(v.current)
	}

	screen.DrawImage(v.current, nil)
	v.current, v.previous = v.previous, v.current
	v.frames++
}

// Resize deallocates the old buffers and creates new ones at the given size.
// A no-op when the size is unchanged.
func (v *DrosteView) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if v.current != nil && v.w == w && v.h == h {
		return
	}
	v.Dispose()
	v.current = ebiten.NewImage(w, h)
	v.previous = ebiten.NewImage(w, h)
	v.w, v.h = w, h
	v.frames = 0
}

// Dispose deallocates both buffers. The view must be resized before it is
// drawn again.
func (v *DrosteView) Dispose() {
	if v.current != nil {
		v.current.Deallocate()
		v.current = nil
	}
	if v.previous != nil {
		v.previous.Deallocate()
		v.previous = nil
	}
}
