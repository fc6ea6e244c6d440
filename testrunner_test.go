package shapes

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "tap", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": -10, "fromY": 0, "toX": 10, "toY": 0, "frames": 4, "model": true},
			{"action": "screenshot", "label": "after-drag"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "tap" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.Action != "drag" || !st.Model || st.FromX != -10 || st.ToX != 10 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_TapModel(t *testing.T) {
	c := newTestCanvas()
	rect := NewDefaultRectangle(c)
	var tapped bool
	rect.OnTouchUp(func(TouchContext) { tapped = true })

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "tap", "x": 0, "y": 0, "model": true}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)

	runner.step(c)
	if c.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", c.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should wait for injections to drain")
	}
	ev := c.injectQueue[0]
	if ev.x != 100 || ev.y != 100 {
		t.Errorf("tap at (%v, %v), want canvas center (100, 100)", ev.x, ev.y)
	}

	c.processInjectedInput()
	c.processInjectedInput()
	if !tapped {
		t.Error("expected tap to reach the rectangle")
	}

	runner.step(c)
	if !runner.Done() {
		t.Error("expected runner done")
	}
}

func TestRunnerStep_WaitThenScreenshot(t *testing.T) {
	c := newTestCanvas()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(c)
		if len(c.screenshotQueue) != 0 {
			t.Fatalf("screenshot queued too early at tick %d", i)
		}
	}
	runner.step(c)
	if len(c.screenshotQueue) != 1 || c.screenshotQueue[0] != "done" {
		t.Errorf("queue = %v, want [done]", c.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("expected runner done")
	}
}
