package droste

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudRefresh = 0.5 // seconds between HUD redraws

// HUDStats is the data shown by the HUD.
type HUDStats struct {
	FPS, TPS      float64
	Markers       int
	Regenerations int
	Painted       int
}

// String formats the stats the way the HUD prints them.
func (s HUDStats) String() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nMarkers: %d\nSegments: %d\nPainted: %d",
		s.FPS, s.TPS, s.Markers, s.Regenerations, s.Painted)
}

// HUD is a debug overlay that redraws itself every half second.
type HUD struct {
	Visible bool
	img     *ebiten.Image
	stats   func() HUDStats
	accum   float64
	last    HUDStats
	drawn   bool
}

// NewHUD creates an overlay that polls stats on every refresh.
func NewHUD(stats func() HUDStats) *HUD {
	// 120x80 is enough for five lines of debug text.
	return &HUD{
		Visible: true,
		img:     ebiten.NewImage(120, 80),
		stats:   stats,
	}
}

// Update advances the refresh clock and redraws the overlay when due.
// It reports whether the overlay was redrawn.
func (h *HUD) Update(dt float64) bool {
	h.accum += dt
	if h.drawn && h.accum < hudRefresh {
		return false
	}
	h.accum = 0
	h.drawn = true
	h.last = h.stats()

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.last.String())
	return true
}

// Last returns the stats from the most recent redraw.
func (h *HUD) Last() HUDStats {
	return h.last
}

// Draw draws the overlay at the top-left corner of screen when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible || !h.drawn {
		return
	}
	screen.DrawImage(h.img, nil)
}
