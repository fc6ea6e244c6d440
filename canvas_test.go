package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCanvas returns a 200x200 canvas with 2 points per model unit, so
// model (0,0) is screen (100,100) and conversions are exact.
func newTestCanvas() *Canvas {
	return NewCanvas(CanvasConfig{Width: 200, Height: 200})
}

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(CanvasConfig{})
	w, h := c.ScreenSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.InDelta(t, 4.8, c.PointsPerUnit(), 1e-12)
	assert.Equal(t, ColorWhite, c.Background)
	assert.Zero(t, c.Len())

	vs := c.VisibleSize()
	assert.InDelta(t, 640/4.8, vs.Width, 1e-9)
	assert.InDelta(t, 100, vs.Height, 1e-9)
}

func TestNewCanvasConfig(t *testing.T) {
	bg := ColorNavy
	c := NewCanvas(CanvasConfig{Width: 400, Height: 200, UnitsAcross: 50, Background: &bg})
	assert.Equal(t, 4.0, c.PointsPerUnit())
	assert.Equal(t, ColorNavy, c.Background)
	assert.Equal(t, Size{100, 50}, c.VisibleSize())
}

func TestConvertPoint(t *testing.T) {
	c := newTestCanvas()
	tests := []struct {
		model, screen Point
	}{
		{Point{0, 0}, Point{100, 100}},
		{Point{10, 20}, Point{120, 60}},
		{Point{-50, -50}, Point{0, 200}},
		{Point{50, 50}, Point{200, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.screen, c.ConvertPointToScreen(tt.model), "to screen %v", tt.model)
		assert.Equal(t, tt.model, c.ConvertPointFromScreen(tt.screen), "from screen %v", tt.screen)
	}
}

func TestConvertMagnitude(t *testing.T) {
	c := newTestCanvas()
	assert.Equal(t, 20.0, c.ConvertMagnitudeToScreen(10))
	assert.Equal(t, 10.0, c.ConvertMagnitudeFromScreen(20))
	assert.Equal(t, -4.0, c.ConvertMagnitudeToScreen(-2))
}

func TestMembership(t *testing.T) {
	c := newTestCanvas()
	a := NewDefaultCircle(c)
	b := NewDefaultRectangle(c)
	require.Equal(t, []Graphic{a, b}, c.Drawables())
	assert.True(t, a.IsAdded())

	c.AddDrawable(a)
	assert.Equal(t, 2, c.Len(), "adding a member again is a no-op")

	a.Remove()
	assert.False(t, a.IsAdded())
	assert.False(t, c.Contains(a))
	assert.Equal(t, []Graphic{b}, c.Drawables())

	a.Remove()
	assert.Equal(t, 1, c.Len(), "removing a non-member is a no-op")

	a.Add()
	assert.Equal(t, []Graphic{b, a}, c.Drawables(), "re-added drawable goes on top")
}

func TestBringToFront(t *testing.T) {
	c := newTestCanvas()
	a := NewDefaultCircle(c)
	b := NewDefaultCircle(c)
	d := NewDefaultCircle(c)

	c.BringToFront(a)
	assert.Equal(t, []Graphic{b, d, a}, c.Drawables())

	c.BringToFront(a)
	assert.Equal(t, []Graphic{b, d, a}, c.Drawables())

	b.Remove()
	c.BringToFront(b)
	assert.Equal(t, []Graphic{d, a}, c.Drawables(), "non-members are ignored")
}

func TestClear(t *testing.T) {
	c := newTestCanvas()
	a := NewDefaultCircle(c)
	NewDefaultRectangle(c)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Drawables())

	a.Add()
	assert.Equal(t, []Graphic{a}, c.Drawables())
}

func TestDrawablesReturnsCopy(t *testing.T) {
	c := newTestCanvas()
	NewDefaultCircle(c)
	list := c.Drawables()
	list[0] = nil
	assert.NotNil(t, c.Drawables()[0])
}

func TestForeignDrawablePanics(t *testing.T) {
	c1 := newTestCanvas()
	c2 := newTestCanvas()
	circle := NewDefaultCircle(c2)

	assert.Panics(t, func() { c1.AddDrawable(circle) })
	assert.Panics(t, func() { c1.RemoveDrawable(circle) })
	assert.False(t, c1.Contains(circle))
	assert.Panics(t, func() { NewDefaultCircle(nil) })
}

func TestUniqueIDs(t *testing.T) {
	c := newTestCanvas()
	a := NewDefaultCircle(c)
	b := NewDefaultRectangle(c)
	txt := NewText(c, "x")
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, txt.ID)
	assert.Less(t, a.ID, b.ID)
}

func TestSetUpdateFunc(t *testing.T) {
	c := newTestCanvas()
	var called bool
	c.SetUpdateFunc(func() error { called = true; return nil })
	require.NotNil(t, c.updateFunc)
	require.NoError(t, c.updateFunc())
	assert.True(t, called)
}

func TestSetDebugMode(t *testing.T) {
	c := newTestCanvas()
	assert.False(t, c.debug)
	c.SetDebugMode(true)
	assert.True(t, c.debug)
}

func TestAdvanceIgnoresNegativeStep(t *testing.T) {
	c := newTestCanvas()
	r := NewDefaultRectangle(c)
	c.Animate(1, 0, func() { r.SetCenter(Point{X: 20}) })
	c.Advance(0.5)
	mid := r.Center().X

	c.Advance(-1)
	c.Advance(math.NaN())
	assert.Equal(t, mid, r.Center().X)

	c.Advance(0.5)
	assert.Equal(t, 20.0, r.Center().X)
	assert.False(t, c.Animating())
}

func TestTickDuration(t *testing.T) {
	assert.InDelta(t, 1.0/60, tickDuration(), 1e-12)
}
