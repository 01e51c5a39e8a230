package droste

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueColor converts a hue in degrees to a fully saturated, fully bright
// opaque color. Hues outside [0, 360) wrap.
func HueColor(hue float64) Color {
	return HSVColor(hue, 1, 1)
}

// HSVColor converts hue (degrees), saturation and value to an opaque Color.
func HSVColor(hue, sat, val float64) Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, clamp01(sat), clamp01(val)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
