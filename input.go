package droste

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the pointer state for the current frame.
type PointerSource interface {
	// Position returns the pointer position in screen coordinates.
	Position() (x, y float64)
	// Pressed reports whether the painting button is held down.
	Pressed() bool
}

// EbitenPointer reads the mouse cursor and left button from ebiten.
type EbitenPointer struct{}

// Position returns the cursor position.
func (EbitenPointer) Position() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}

// Pressed reports whether the left mouse button is down.
func (EbitenPointer) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
