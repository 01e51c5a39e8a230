package droste

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Loop  bool         `json:"loop"`
	Steps []scriptStep `json:"steps"`
}

// LoadPointerScript parses a JSON pointer script into a ScriptedPointer.
//
//	{"loop": true, "steps": [
//		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 400, "toY": 300, "frames": 30},
//		{"action": "wait", "frames": 60}
//	]}
//
// Actions are press, move, release (x, y), drag (fromX, fromY, toX, toY,
// frames) and wait (frames; the pointer is released at its last position).
func LoadPointerScript(jsonData []byte) (*ScriptedPointer, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}

	p := &ScriptedPointer{Loop: script.Loop}
	var lastX, lastY float64
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			p.InjectPress(st.X, st.Y)
			lastX, lastY = st.X, st.Y
		case "move":
			p.InjectMove(st.X, st.Y)
			lastX, lastY = st.X, st.Y
		case "release":
			p.InjectRelease(st.X, st.Y)
			lastX, lastY = st.X, st.Y
		case "drag":
			p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
			lastX, lastY = st.ToX, st.ToY
		case "wait":
			for n := 0; n < st.Frames; n++ {
				p.InjectRelease(lastX, lastY)
			}
		default:
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return p, nil
}
