package shapes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Hit shapes ---

// HitRect is an axis-aligned rectangular hit area in layer-local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in layer-local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Touch events ---

// TouchEvent is one sample of a touch series in screen points. ID selects the
// pointer slot (0 = mouse, 1-9 = touch).
type TouchEvent struct {
	ID    int
	Phase TouchPhase
	X, Y  float64
}

// pointerState tracks one pointer slot between events.
type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target *Drawable // nil when the canvas handlers own the series
}

// --- Handler registry ---

type touchHandler struct {
	id uint32
	fn func(TouchContext)
}

type handlerRegistry struct {
	touchDown      []touchHandler
	touchDrag      []touchHandler
	touchUp        []touchHandler
	touchCancelled []touchHandler
	nextID         uint32
}

func (r *handlerRegistry) list(phase TouchPhase) *[]touchHandler {
	switch phase {
	case TouchBegan:
		return &r.touchDown
	case TouchMoved:
		return &r.touchDrag
	case TouchEnded:
		return &r.touchUp
	default:
		return &r.touchCancelled
	}
}

func (r *handlerRegistry) add(phase TouchPhase, fn func(TouchContext)) CallbackHandle {
	r.nextID++
	l := r.list(phase)
	*l = append(*l, touchHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, phase: phase}
}

// CallbackHandle allows removing a registered canvas-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	phase TouchPhase
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	l := h.reg.list(h.phase)
	s := *l
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = touchHandler{}
			*l = s[:len(s)-1]
			return
		}
	}
}

// --- Canvas-level event registration ---

// OnTouchDown registers a callback for touches that land on no interested
// drawable.
func (c *Canvas) OnTouchDown(fn func(TouchContext)) CallbackHandle {
	return c.handlers.add(TouchBegan, fn)
}

// OnTouchDrag registers a callback for moves of touches the canvas owns.
func (c *Canvas) OnTouchDrag(fn func(TouchContext)) CallbackHandle {
	return c.handlers.add(TouchMoved, fn)
}

// OnTouchUp registers a callback for lifts of touches the canvas owns.
func (c *Canvas) OnTouchUp(fn func(TouchContext)) CallbackHandle {
	return c.handlers.add(TouchEnded, fn)
}

// OnTouchCancelled registers a callback for cancelled touches the canvas owns.
func (c *Canvas) OnTouchCancelled(fn func(TouchContext)) CallbackHandle {
	return c.handlers.add(TouchCancelled, fn)
}

func (c *Canvas) fireCanvasHandlers(ctx TouchContext) {
	handlers := *c.handlers.list(ctx.Phase)
	if len(handlers) == 0 {
		return
	}
	// Handlers may register or remove handlers while running.
	for _, h := range append([]touchHandler(nil), handlers...) {
		h.fn(ctx)
	}
}

// --- Hit testing ---

// hitTest finds the topmost member at the screen point that wants touches and
// is not already tracking another touch. Returns nil if nothing is hit.
func (c *Canvas) hitTest(x, y float64) *Drawable {
	for i := len(c.drawables) - 1; i >= 0; i-- {
		d := c.drawables[i]
		if !d.wantsTouch() || d.hasTouch() {
			continue
		}
		if d.hitTest(x, y) {
			return d
		}
	}
	return nil
}

// DrawableAt returns the topmost member drawn at the model point, regardless
// of whether it handles touches, or nil.
func (c *Canvas) DrawableAt(p Point) Graphic {
	s := c.ConvertPointToScreen(p)
	for i := len(c.drawables) - 1; i >= 0; i-- {
		if d := c.drawables[i]; d.hitTest(s.X, s.Y) {
			return d.owner
		}
	}
	return nil
}

// --- Dispatch ---

// HandleTouch routes one touch sample. A began sample picks the owner of the
// series: the topmost interested drawable under the point, or the canvas
// handlers when there is none. Later samples of the series go to that owner
// only. Samples with an unknown ID, or moves and lifts without a preceding
// began, are ignored.
func (c *Canvas) HandleTouch(ev TouchEvent) {
	if ev.ID < 0 || ev.ID >= maxPointers {
		Logger().Debug("touch ignored: pointer out of range", "id", ev.ID)
		return
	}
	ps := &c.pointers[ev.ID]

	if ev.Phase == TouchBegan {
		if ps.down {
			Logger().Debug("touch ignored: pointer already down", "id", ev.ID)
			return
		}
		ps.down = true
		ps.lastX, ps.lastY = ev.X, ev.Y
		ps.target = c.hitTest(ev.X, ev.Y)
		ctx := c.touchContext(ev, ps.target)
		if ps.target != nil {
			ps.target.touchesBegan(ctx)
		} else {
			c.fireCanvasHandlers(ctx)
		}
		return
	}

	if !ps.down {
		Logger().Debug("touch ignored: no series in progress", "id", ev.ID, "phase", ev.Phase)
		return
	}
	target := ps.target
	ps.lastX, ps.lastY = ev.X, ev.Y
	if ev.Phase == TouchEnded || ev.Phase == TouchCancelled {
		ps.down = false
		ps.target = nil
	}
	ctx := c.touchContext(ev, target)
	if target == nil {
		c.fireCanvasHandlers(ctx)
		return
	}
	switch ev.Phase {
	case TouchMoved:
		target.touchesMoved(ctx)
	case TouchEnded:
		target.touchesEnded(ctx)
	case TouchCancelled:
		target.touchesCancelled(ctx)
	}
}

func (c *Canvas) touchContext(ev TouchEvent, d *Drawable) TouchContext {
	return TouchContext{
		Drawable: d,
		TouchID:  ev.ID,
		Phase:    ev.Phase,
		Location: c.ConvertPointFromScreen(Point{ev.X, ev.Y}),
		ScreenX:  ev.X,
		ScreenY:  ev.Y,
	}
}

// cancelTouchesOwnedBy ends every series delivered to d with a cancel.
func (c *Canvas) cancelTouchesOwnedBy(d *Drawable) {
	for i := range c.pointers {
		ps := &c.pointers[i]
		if ps.down && ps.target == d {
			c.HandleTouch(TouchEvent{ID: i, Phase: TouchCancelled, X: ps.lastX, Y: ps.lastY})
		}
	}
}

// CancelAllTouches ends every series in progress with a cancel, as when the
// window loses focus.
func (c *Canvas) CancelAllTouches() {
	for i := range c.pointers {
		ps := &c.pointers[i]
		if ps.down {
			c.HandleTouch(TouchEvent{ID: i, Phase: TouchCancelled, X: ps.lastX, Y: ps.lastY})
		}
	}
}

// CurrentTouchPoints returns the model-space location of every touch in
// progress, ordered by pointer slot.
func (c *Canvas) CurrentTouchPoints() []Point {
	var pts []Point
	for i := range c.pointers {
		ps := &c.pointers[i]
		if ps.down {
			pts = append(pts, c.ConvertPointFromScreen(Point{ps.lastX, ps.lastY}))
		}
	}
	return pts
}

// --- Input polling ---

// processInput turns this tick's Ebitengine input into touch samples.
// An injected event, when queued, replaces real mouse input for the tick.
func (c *Canvas) processInput() {
	focused := ebiten.IsFocused()
	if !focused && c.focused {
		c.CancelAllTouches()
	}
	c.focused = focused
	if !focused {
		return
	}
	if c.processInjectedInput() {
		return
	}
	c.processMousePointer()
	c.processTouchPointers()
}

// processMousePointer handles the left mouse button as pointer 0.
func (c *Canvas) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	c.processPointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processTouchPointers handles touch input (pointers 1-9).
func (c *Canvas) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(c.prevTouchIDs[:0])
	c.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := c.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		c.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && !activeSlots[i] {
			ps := &c.pointers[i]
			if ps.down {
				c.processPointer(i, ps.lastX, ps.lastY, false)
			}
			c.touchUsed[i] = false
			c.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (c *Canvas) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && c.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !c.touchUsed[i] {
			c.touchUsed[i] = true
			c.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer converts a polled pressed/released level into touch phases.
func (c *Canvas) processPointer(id int, x, y float64, pressed bool) {
	ps := &c.pointers[id]
	switch {
	case pressed && !ps.down:
		c.HandleTouch(TouchEvent{ID: id, Phase: TouchBegan, X: x, Y: y})
	case pressed && (x != ps.lastX || y != ps.lastY):
		c.HandleTouch(TouchEvent{ID: id, Phase: TouchMoved, X: x, Y: y})
	case !pressed && ps.down:
		c.HandleTouch(TouchEvent{ID: id, Phase: TouchEnded, X: x, Y: y})
	}
}
