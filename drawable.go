package shapes

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	dragPopScale    = 1.15
	dragPopRotation = math.Pi / 4
	dragPopDuration = 0.35
)

// Graphic is implemented by every drawable kind: *Circle, *Rectangle, *Image
// and *Text. The set is closed; all of them embed Drawable.
type Graphic interface {
	drawable() *Drawable
}

// Shadow describes a drop shadow in model units.
type Shadow struct {
	Offset     Point
	BlurRadius float64
	Opacity    float64
	Color      Color
}

// DefaultShadow returns a soft black shadow cast down and to the right.
func DefaultShadow() *Shadow {
	return &Shadow{
		Offset:     Point{X: 1, Y: -1},
		BlurRadius: 1,
		Opacity:    0.3,
		Color:      ColorBlack,
	}
}

// TouchContext carries information about a touch delivered to a handler.
type TouchContext struct {
	Drawable *Drawable  // nil for canvas-level handlers that hit nothing
	TouchID  int        // pointer slot: 0 = mouse, 1-9 = touch
	Phase    TouchPhase // began, moved, ended or cancelled
	Location Point      // model space
	ScreenX  float64
	ScreenY  float64
}

// Drawable is the state shared by every object on a canvas: placement,
// scale, rotation, shadow, dragging and touch handlers. It is embedded by the
// concrete kinds and never created on its own.
type Drawable struct {
	// ID is unique within the canvas that created the drawable.
	ID uint32

	// Draggable lets the user move the object with a finger or the mouse.
	// While held, the object is raised to the front and pops up slightly.
	Draggable bool

	kind   Kind
	owner  Graphic
	canvas *Canvas
	layer  *Layer

	modelSize Size
	scale     float64
	rotation  float64
	shadow    *Shadow

	onTouchDown      func(TouchContext)
	onTouchDrag      func(TouchContext)
	onTouchUp        func(TouchContext)
	onTouchCancelled func(TouchContext)

	touchOffset Point
	touchID     int
	popped      bool
	prePopScale float64
}

// init wires a freshly allocated drawable to its canvas and adds it.
func (d *Drawable) init(c *Canvas, kind Kind, owner Graphic) {
	if c == nil {
		panic("shapes: drawable created with a nil canvas")
	}
	c.nextID++
	d.ID = c.nextID
	d.kind = kind
	d.owner = owner
	d.canvas = c
	d.layer = newLayer(&c.engine)
	d.scale = 1
	d.touchID = -1
	d.layer.SetPosition(c.width/2, c.height/2)
	c.AddDrawable(owner)
}

func (d *Drawable) drawable() *Drawable { return d }

// Kind returns which concrete type this drawable is.
func (d *Drawable) Kind() Kind { return d.kind }

// Canvas returns the canvas the drawable was created on.
func (d *Drawable) Canvas() *Canvas { return d.canvas }

// Layer returns the render state handle behind the drawable.
func (d *Drawable) Layer() *Layer { return d.layer }

// Graphic returns the concrete value (*Circle, *Rectangle, ...) embedding d.
func (d *Drawable) Graphic() Graphic { return d.owner }

// Center returns the center of the object in model space, as currently shown
// on screen. While a move is animating this is the in-flight position.
func (d *Drawable) Center() Point {
	p := &d.layer.presentation
	return d.canvas.ConvertPointFromScreen(Point{p.X, p.Y})
}

// SetCenter moves the object so its center is at p.
func (d *Drawable) SetCenter(p Point) {
	s := d.canvas.ConvertPointToScreen(p)
	d.layer.SetPosition(s.X, s.Y)
}

// Scale returns the scale factor. 1 is the natural size.
func (d *Drawable) Scale() float64 { return d.scale }

// SetScale grows or shrinks the object about its center.
func (d *Drawable) SetScale(s float64) {
	d.scale = s
	d.applyTransform()
}

// Rotation returns the rotation in radians, counter-clockwise.
func (d *Drawable) Rotation() float64 { return d.rotation }

// SetRotation rotates the object counter-clockwise about its center.
// A value of math.Pi turns it upside down.
func (d *Drawable) SetRotation(r float64) {
	d.rotation = r
	d.applyTransform()
}

func (d *Drawable) applyTransform() {
	d.layer.SetTransform(Transform{Scale: d.scale, Rotation: d.rotation})
}

// DropShadow returns the current shadow, or nil when there is none.
func (d *Drawable) DropShadow() *Shadow { return d.shadow }

// SetDropShadow sets or (with nil) removes the drop shadow.
func (d *Drawable) SetDropShadow(s *Shadow) {
	d.shadow = s
	if s == nil {
		d.layer.SetShadowOpacity(0)
		return
	}
	c := d.canvas
	d.layer.SetShadow(
		c.ConvertMagnitudeToScreen(s.Offset.X),
		-c.ConvertMagnitudeToScreen(s.Offset.Y),
		c.ConvertMagnitudeToScreen(s.BlurRadius),
		s.Opacity,
		s.Color,
	)
}

// Add puts the drawable back on its canvas. Does nothing if it is already
// there.
func (d *Drawable) Add() { d.canvas.AddDrawable(d.owner) }

// Remove takes the drawable off its canvas. Does nothing if it is not there.
// The drawable stays valid and can be added again.
func (d *Drawable) Remove() { d.canvas.RemoveDrawable(d.owner) }

// IsAdded reports whether the drawable is currently on its canvas.
func (d *Drawable) IsAdded() bool { return d.canvas.Contains(d.owner) }

// Overlaps reports whether the footprints of d and other intersect. Only
// centers and sizes are considered; scale and rotation are ignored. Pairs
// involving Text never overlap.
func (d *Drawable) Overlaps(other Graphic) bool {
	if other == nil {
		return false
	}
	return overlaps(d, other.drawable())
}

// --- Touch handlers ---

// OnTouchDown sets the handler called when a touch lands on the object.
// Pass nil to clear it.
func (d *Drawable) OnTouchDown(fn func(TouchContext)) { d.onTouchDown = fn }

// OnTouchDrag sets the handler called as a touch that began on the object
// moves.
func (d *Drawable) OnTouchDrag(fn func(TouchContext)) { d.onTouchDrag = fn }

// OnTouchUp sets the handler called when a touch that began on the object
// lifts.
func (d *Drawable) OnTouchUp(fn func(TouchContext)) { d.onTouchUp = fn }

// OnTouchCancelled sets the handler called when a touch on the object is
// interrupted, for example because the window lost focus or the object was
// removed.
func (d *Drawable) OnTouchCancelled(fn func(TouchContext)) { d.onTouchCancelled = fn }

// wantsTouch reports whether the object takes part in hit testing.
func (d *Drawable) wantsTouch() bool {
	return d.Draggable || d.onTouchDown != nil || d.onTouchDrag != nil ||
		d.onTouchUp != nil || d.onTouchCancelled != nil
}

// hasTouch reports whether a touch series is currently delivered to d.
func (d *Drawable) hasTouch() bool { return d.touchID >= 0 }

func (d *Drawable) hitTest(x, y float64) bool {
	return d.layer.containsScreenPoint(x, y, d.kind == KindCircle)
}

func (d *Drawable) touchesBegan(ctx TouchContext) {
	d.touchID = ctx.TouchID
	if d.Draggable {
		d.canvas.BringToFront(d.owner)
		d.popped = true
		d.prePopScale = d.scale
		d.canvas.engine.animate(dragPopDuration, 0, ease.OutBack, func() {
			d.SetScale(d.prePopScale * dragPopScale)
			d.SetRotation(d.rotation + dragPopRotation)
		}, nil)
	}
	d.touchOffset = ctx.Location.Sub(d.Center())
	if d.onTouchDown != nil {
		d.onTouchDown(ctx)
	}
}

func (d *Drawable) touchesMoved(ctx TouchContext) {
	if d.Draggable {
		d.SetCenter(ctx.Location.Sub(d.touchOffset))
	}
	if d.onTouchDrag != nil {
		d.onTouchDrag(ctx)
	}
}

func (d *Drawable) touchesEnded(ctx TouchContext) {
	d.finishTouch()
	if d.onTouchUp != nil {
		d.onTouchUp(ctx)
	}
}

func (d *Drawable) touchesCancelled(ctx TouchContext) {
	d.finishTouch()
	if d.onTouchCancelled != nil {
		d.onTouchCancelled(ctx)
	}
}

// finishTouch releases the touch and settles a popped object back down.
func (d *Drawable) finishTouch() {
	d.touchID = -1
	if !d.popped {
		return
	}
	d.popped = false
	d.canvas.engine.animate(dragPopDuration, 0, ease.OutBack, func() {
		d.SetScale(d.prePopScale)
		d.SetRotation(d.rotation - dragPopRotation)
	}, nil)
}

// --- Size plumbing ---

// setModelSize resizes the layer from a model-space size.
func (d *Drawable) setModelSize(s Size) {
	s = s.clamped()
	d.modelSize = s
	ppu := d.canvas.pointsPerUnit
	d.layer.SetSize(s.Width*ppu, s.Height*ppu)
}

// setScreenSize resizes the layer from a size in screen points and records
// the equivalent model size.
func (d *Drawable) setScreenSize(w, h float64) {
	ppu := d.canvas.pointsPerUnit
	d.modelSize = Size{max(w, 0) / ppu, max(h, 0) / ppu}
	d.layer.SetSize(w, h)
}

// footprint returns the unscaled model-space box used for overlap tests.
func (d *Drawable) footprint() (Point, Size) {
	return d.Center(), d.modelSize
}
