package shapes

// syntheticTouchEvent is one queued pointer level for pointer 0, in screen
// points, as a test or script would see the screen.
type syntheticTouchEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at the given screen coordinates. The event is
// consumed on the next Update.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticTouchEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the pointer held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticTouchEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticTouchEvent{x: x, y: y})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two ticks.
func (c *Canvas) InjectTap(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). The sequence consumes frames ticks, at least 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// PendingInjections returns how many injected events are still queued.
func (c *Canvas) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through the pointer
// state machine as pointer 0. Returns true if an event was consumed, in which
// case real mouse input is skipped for the tick.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
