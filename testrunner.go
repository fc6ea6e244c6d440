package shapes

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Model  bool    `json:"model,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner plays a scripted sequence of taps, drags, waits and screenshots
// across ticks. Attach it with Canvas.SetTestRunner.
//
// Coordinates are screen points unless a step sets "model": true, in which
// case they are model units.
//
//	{"steps": [
//		{"action": "tap", "x": 0, "y": 0, "model": true},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "after-tap"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON touch script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "tap", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: s.Steps}, nil
}

// SetTestRunner attaches a runner. Its step runs at the start of every Update.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "tap":
		p := r.screenPoint(c, st, st.X, st.Y)
		c.InjectTap(p.X, p.Y)
	case "drag":
		from := r.screenPoint(c, st, st.FromX, st.FromY)
		to := r.screenPoint(c, st, st.ToX, st.ToY)
		c.InjectDrag(from.X, from.Y, to.X, to.Y, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) screenPoint(c *Canvas, st scriptStep, x, y float64) Point {
	if st.Model {
		return c.ConvertPointToScreen(Point{x, y})
	}
	return Point{x, y}
}
