package shapes

import "testing"

func TestInjectTap(t *testing.T) {
	c := newTestCanvas()
	rect := NewDefaultRectangle(c)

	var events []TouchPhase
	rect.OnTouchDown(func(ctx TouchContext) {
		events = append(events, ctx.Phase)
		if ctx.Drawable != &rect.Drawable {
			t.Error("expected rectangle drawable")
		}
	})
	rect.OnTouchUp(func(ctx TouchContext) { events = append(events, ctx.Phase) })

	c.InjectTap(100, 100)
	if c.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", c.PendingInjections())
	}

	// Frame 1: press
	if !c.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if len(events) != 1 || events[0] != TouchBegan {
		t.Fatalf("after press events = %v", events)
	}

	// Frame 2: release
	c.processInjectedInput()
	if c.PendingInjections() != 0 {
		t.Fatalf("expected empty queue, got %d", c.PendingInjections())
	}
	if len(events) != 2 || events[1] != TouchEnded {
		t.Fatalf("after release events = %v", events)
	}

	if c.processInjectedInput() {
		t.Error("empty queue should consume nothing")
	}
}

func TestInjectDrag(t *testing.T) {
	c := newTestCanvas()
	rect := NewDefaultRectangle(c)
	rect.Draggable = true

	var moves int
	rect.OnTouchDrag(func(TouchContext) { moves++ })

	// Press at (100,100), three moves 10 points apart, release at (140,100).
	c.InjectDrag(100, 100, 140, 100, 5)
	if c.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued events, got %d", c.PendingInjections())
	}
	for i := 0; i < 5; i++ {
		c.processInjectedInput()
	}
	if moves != 3 {
		t.Errorf("moves = %d, want 3", moves)
	}

	// The last move placed the center; release does not move it.
	center := rect.Center()
	assertNear(t, "center.X", center.X, 15)
	assertNear(t, "center.Y", center.Y, 0)

	c.Advance(1)
	assertNear(t, "scale", rect.Scale(), 1)
	assertNear(t, "rotation", rect.Rotation(), 0)
}

func TestInjectDragMinimumFrames(t *testing.T) {
	c := newTestCanvas()
	c.InjectDrag(0, 0, 10, 10, 0)
	if c.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d", c.PendingInjections())
	}
}
