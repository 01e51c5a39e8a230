package droste

import "math"

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// ScriptedPointer is a PointerSource fed by queued synthetic events. Each
// call to Advance consumes one event; once the queue drains the last state
// is held. It is used for attract-mode painting and for tests.
type ScriptedPointer struct {
	// Loop replays every consumed event once the queue drains.
	Loop bool

	queue   []syntheticPointerEvent
	played  []syntheticPointerEvent
	x, y    float64
	pressed bool
}

// InjectPress queues a press at (x, y).
func (p *ScriptedPointer) InjectPress(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the button held down.
func (p *ScriptedPointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (p *ScriptedPointer) InjectRelease(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full stroke: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (p *ScriptedPointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued events.
func (p *ScriptedPointer) Pending() int {
	return len(p.queue)
}

// Advance pops one queued event and makes it the current state.
// It reports whether an event was consumed.
func (p *ScriptedPointer) Advance() bool {
	if len(p.queue) == 0 {
		if !p.Loop || len(p.played) == 0 {
			return false
		}
		p.queue, p.played = p.played, p.queue[:0]
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	p.x, p.y, p.pressed = evt.x, evt.y, evt.pressed
	if p.Loop {
		p.played = append(p.played, evt)
	}
	return true
}

// Position returns the position of the last consumed event.
func (p *ScriptedPointer) Position() (float64, float64) {
	return p.x, p.y
}

// Pressed reports the button state of the last consumed event.
func (p *ScriptedPointer) Pressed() bool {
	return p.pressed
}

// QueueAttractStrokes queues a looping figure-eight of drag strokes sized
// to a w×h screen, followed by a short pause.
func QueueAttractStrokes(p *ScriptedPointer, w, h int) {
	const (
		strokes       = 8
		framesPerLine = 20
		pauseFrames   = 90
	)
	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := float64(w)*0.3, float64(h)*0.25
	point := func(i int) (float64, float64) {
		a := 2 * math.Pi * float64(i) / strokes
		return cx + rx*math.Sin(a), cy + ry*math.Sin(2*a)
	}
	for i := 0; i < strokes; i++ {
		x0, y0 := point(i)
		x1, y1 := point(i + 1)
		p.InjectDrag(x0, y0, x1, y1, framesPerLine)
	}
	x, y := point(0)
	for i := 0; i < pauseFrames; i++ {
		p.InjectRelease(x, y)
	}
	p.Loop = true
}
