package droste

import "testing"

func TestLoadPointerScript(t *testing.T) {
	data := []byte(`{
		"loop": true,
		"steps": [
			{"action": "press", "x": 100, "y": 200},
			{"action": "move", "x": 110, "y": 210},
			{"action": "release", "x": 120, "y": 220},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 30, "frames": 4}
		]
	}`)

	p, err := LoadPointerScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Loop {
		t.Error("expected Loop")
	}
	if p.Pending() != 3+3+4 {
		t.Fatalf("Pending = %d, want 10", p.Pending())
	}

	p.Advance()
	if x, y := p.Position(); x != 100 || y != 200 || !p.Pressed() {
		t.Errorf("step 0: (%v, %v, %v)", x, y, p.Pressed())
	}
	for i := 0; i < 5; i++ {
		p.Advance()
	}
	// Last wait frame holds the release position.
	if x, y := p.Position(); x != 120 || y != 220 || p.Pressed() {
		t.Errorf("after wait: (%v, %v, %v)", x, y, p.Pressed())
	}
}

func TestLoadPointerScript_Invalid(t *testing.T) {
	_, err := LoadPointerScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPointerScript_Empty(t *testing.T) {
	_, err := LoadPointerScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadPointerScript_UnknownAction(t *testing.T) {
	_, err := LoadPointerScript([]byte(`{"steps": [{"action": "jump"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}
