package shapes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultCanvasWidth  = 640
	defaultCanvasHeight = 480
	defaultUnitsAcross  = 100.0
)

// CanvasConfig holds the options for NewCanvas. Zero values select the
// defaults.
type CanvasConfig struct {
	// Width and Height are the canvas size in screen points.
	// Defaults: 640 x 480.
	Width, Height int

	// UnitsAcross is how many model units span the shorter side of the
	// canvas. Default: 100.
	UnitsAcross float64

	// Background fills the canvas before drawables are drawn.
	// Default: ColorWhite.
	Background *Color
}

// Canvas is the drawing surface. It owns which drawables are shown and in
// what order, converts between model space (origin at the center, Y up) and
// screen space (origin top-left, Y down), routes touches and drives
// animations.
type Canvas struct {
	// Background fills the canvas before drawables are drawn.
	Background Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	width, height float64
	pointsPerUnit float64

	drawables []*Drawable
	nextID    uint32

	engine animationEngine

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticTouchEvent
	focused      bool

	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error
	debug           bool
	stats           debugStats
}

// NewCanvas creates an empty canvas.
func NewCanvas(cfg CanvasConfig) *Canvas {
	if cfg.Width <= 0 {
		cfg.Width = defaultCanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultCanvasHeight
	}
	if cfg.UnitsAcross <= 0 {
		cfg.UnitsAcross = defaultUnitsAcross
	}
	bg := ColorWhite
	if cfg.Background != nil {
		bg = *cfg.Background
	}
	w, h := float64(cfg.Width), float64(cfg.Height)
	return &Canvas{
		Background:    bg,
		ScreenshotDir: "screenshots",
		width:         w,
		height:        h,
		pointsPerUnit: math.Min(w, h) / cfg.UnitsAcross,
		focused:       true,
	}
}

// ScreenSize returns the canvas size in screen points.
func (c *Canvas) ScreenSize() (width, height int) {
	return int(c.width), int(c.height)
}

// PointsPerUnit returns how many screen points one model unit spans.
func (c *Canvas) PointsPerUnit() float64 { return c.pointsPerUnit }

// VisibleSize returns the canvas size in model units.
func (c *Canvas) VisibleSize() Size {
	return Size{c.width / c.pointsPerUnit, c.height / c.pointsPerUnit}
}

// --- Coordinate conversion ---

// ConvertPointToScreen maps a model point to screen points.
func (c *Canvas) ConvertPointToScreen(p Point) Point {
	return Point{
		X: c.width/2 + p.X*c.pointsPerUnit,
		Y: c.height/2 - p.Y*c.pointsPerUnit,
	}
}

// ConvertPointFromScreen maps a screen point to model space.
func (c *Canvas) ConvertPointFromScreen(p Point) Point {
	return Point{
		X: (p.X - c.width/2) / c.pointsPerUnit,
		Y: (c.height/2 - p.Y) / c.pointsPerUnit,
	}
}

// ConvertMagnitudeToScreen converts a model length to screen points.
func (c *Canvas) ConvertMagnitudeToScreen(m float64) float64 {
	return m * c.pointsPerUnit
}

// ConvertMagnitudeFromScreen converts a screen length to model units.
func (c *Canvas) ConvertMagnitudeFromScreen(m float64) float64 {
	return m / c.pointsPerUnit
}

// --- Membership ---

// AddDrawable puts g on top of the canvas. Adding a member again does nothing.
func (c *Canvas) AddDrawable(g Graphic) {
	d := c.own(g)
	if c.indexOf(d) >= 0 {
		return
	}
	c.drawables = append(c.drawables, d)
}

// RemoveDrawable takes g off the canvas. Removing a non-member does nothing.
// A touch series owned by g is cancelled.
func (c *Canvas) RemoveDrawable(g Graphic) {
	d := c.own(g)
	i := c.indexOf(d)
	if i < 0 {
		return
	}
	copy(c.drawables[i:], c.drawables[i+1:])
	c.drawables[len(c.drawables)-1] = nil
	c.drawables = c.drawables[:len(c.drawables)-1]
	c.cancelTouchesOwnedBy(d)
}

// Contains reports whether g is currently on the canvas.
func (c *Canvas) Contains(g Graphic) bool {
	if g == nil {
		return false
	}
	return c.indexOf(g.drawable()) >= 0
}

// Drawables returns the members in z-order, bottom first. The returned slice
// is a copy.
func (c *Canvas) Drawables() []Graphic {
	out := make([]Graphic, len(c.drawables))
	for i, d := range c.drawables {
		out[i] = d.owner
	}
	return out
}

// Len returns the number of members.
func (c *Canvas) Len() int { return len(c.drawables) }

// BringToFront moves a member to the top of the z-order.
func (c *Canvas) BringToFront(g Graphic) {
	d := c.own(g)
	i := c.indexOf(d)
	if i < 0 || i == len(c.drawables)-1 {
		return
	}
	copy(c.drawables[i:], c.drawables[i+1:])
	c.drawables[len(c.drawables)-1] = d
}

// Clear removes every member. The drawables stay valid and can be added back.
func (c *Canvas) Clear() {
	old := c.drawables
	c.drawables = nil
	for _, d := range old {
		c.cancelTouchesOwnedBy(d)
	}
}

func (c *Canvas) own(g Graphic) *Drawable {
	if g == nil {
		panic("shapes: nil Graphic")
	}
	d := g.drawable()
	if d.canvas != c {
		panic("shapes: drawable belongs to a different canvas")
	}
	return d
}

func (c *Canvas) indexOf(d *Drawable) int {
	for i, m := range c.drawables {
		if m == d {
			return i
		}
	}
	return -1
}

// --- Frame loop ---

// SetUpdateFunc registers a callback run at the end of every Update. A
// non-nil error ends Run.
func (c *Canvas) SetUpdateFunc(fn func() error) {
	c.updateFunc = fn
}

// Update runs one tick: scripted steps, input, animations and the update
// callback. Call it from ebiten.Game.Update, or let Run do it.
func (c *Canvas) Update() error {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.Advance(tickDuration())
	if c.updateFunc != nil {
		return c.updateFunc()
	}
	return nil
}

// Advance moves every running animation forward by dt seconds and delivers
// completions. Update calls it with one tick; tests and custom loops can call
// it directly. A zero dt only delivers pending completions; negative or NaN
// steps are ignored.
func (c *Canvas) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		return
	}
	c.engine.update(dt)
}

// tickDuration is the length of one Update in seconds. Under
// ebiten.SyncWithFPS Update runs once per frame, so the measured frame rate
// stands in for TPS.
func tickDuration() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1.0 / float64(tps)
	}
	if fps := ebiten.ActualFPS(); fps > 0 {
		return 1.0 / fps
	}
	return 1.0 / ebiten.DefaultTPS
}

// Animating reports whether any animation is still in flight.
func (c *Canvas) Animating() bool {
	return c.engine.active() > 0
}
