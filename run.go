package droste

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config holds every tunable of the demo.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen size in pixels. The window
	// starts at this size and the image is scaled when resized.
	Width, Height int
	// MarginX and MarginY shrink the screen on each side to get the
	// PathWalker sampling bounds.
	MarginX, MarginY float64
	// Seed seeds the PathWalker randomness. Zero picks a time-based seed.
	Seed uint64
	// ShowHUD shows the debug overlay at startup. F1 toggles it.
	ShowHUD bool
	// Attract replaces the mouse with a scripted pointer that paints on
	// its own.
	Attract bool
	// PointerScript, when set, is the path of a JSON pointer script (see
	// LoadPointerScript) that replaces the mouse. It takes precedence over
	// Attract.
	PointerScript string
	// ScreenshotDir is where F12 screenshots are written.
	ScreenshotDir string

	Path         PathConfig
	Droste       DrosteConfig
	Painter      PainterConfig
	WalkerMarker MarkerStyle
}

// DefaultConfig returns the configuration used by the demo.
func DefaultConfig() Config {
	return Config{
		Title:         "Droste",
		Width:         800,
		Height:        600,
		MarginX:       100,
		MarginY:       100,
		ShowHUD:       true,
		ScreenshotDir: "screenshots",
		Path:          DefaultPathConfig(),
		Droste:        DefaultDrosteConfig(),
		Painter:       DefaultPainterConfig(),
		WalkerMarker:  DefaultWalkerStyle(),
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("screen %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if _, err := c.Bounds(); err != nil {
		return fmt.Errorf("margins (%v, %v): %w", c.MarginX, c.MarginY, err)
	}
	if c.WalkerMarker.Radius <= 0 || c.WalkerMarker.Lifetime <= 0 {
		return fmt.Errorf("walker marker %+v: %w", c.WalkerMarker, ErrInvalidConfig)
	}
	if err := c.Path.Validate(); err != nil {
		return err
	}
	if err := c.Droste.Validate(); err != nil {
		return err
	}
	return c.Painter.Validate()
}

// Bounds returns the PathWalker sampling rectangle: the screen minus the
// margins on each side.
func (c Config) Bounds() (Rect, error) {
	return Rect{Width: float64(c.Width), Height: float64(c.Height)}.Inset(c.MarginX, c.MarginY)
}

// NewPointer returns the pointer source selected by cfg: a scripted pointer
// loaded from PointerScript, the built-in attract strokes, or the mouse.
func NewPointer(cfg Config) (PointerSource, error) {
	switch {
	case cfg.PointerScript != "":
		data, err := os.ReadFile(cfg.PointerScript)
		if err != nil {
			return nil, fmt.Errorf("read pointer script: %w", err)
		}
		return LoadPointerScript(data)
	case cfg.Attract:
		sp := &ScriptedPointer{}
		QueueAttractStrokes(sp, cfg.Width, cfg.Height)
		return sp, nil
	default:
		return EbitenPointer{}, nil
	}
}

// Run creates a Scene drawing into markers, opens a window and blocks until
// it is closed.
func Run(cfg Config, markers MarkerLayer) error {
	pointer, err := NewPointer(cfg)
	if err != nil {
		return fmt.Errorf("droste: %w", err)
	}

	scene, err := NewScene(cfg, markers, pointer)
	if err != nil {
		return fmt.Errorf("droste: %w", err)
	}
	defer scene.Dispose()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("droste: running %dx%d, seed %d, period %.2fs, %d nested levels",
		cfg.Width, cfg.Height, scene.Seed(), cfg.Path.Period, cfg.Droste.Levels)
	return ebiten.RunGame(scene)
}
