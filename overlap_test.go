package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	c := newTestCanvas()

	circleAt := func(r float64, p Point) Graphic {
		g := NewCircle(c, r)
		g.SetCenter(p)
		return g
	}
	rectAt := func(w, h float64, p Point) Graphic {
		g := NewRectangle(c, w, h, 0)
		g.SetCenter(p)
		return g
	}
	imageAt := func(w, h float64, p Point) Graphic {
		g := NewImage(c, nil, nil, ContentScaleToFit)
		g.SetSize(Size{w, h})
		g.SetCenter(p)
		return g
	}

	tests := []struct {
		name string
		a, b Graphic
		want bool
	}{
		{"circles apart", circleAt(5, Point{}), circleAt(5, Point{X: 20}), false},
		{"circles touching", circleAt(5, Point{}), circleAt(5, Point{X: 10}), false},
		{"circles overlapping", circleAt(5, Point{}), circleAt(5, Point{X: 9.5}), true},
		{"circle inside circle", circleAt(10, Point{}), circleAt(1, Point{X: 2}), true},

		{"circle touching rect edge", circleAt(5, Point{X: 10}), rectAt(10, 10, Point{}), false},
		{"circle crossing rect edge", circleAt(5, Point{X: 9.5}), rectAt(10, 10, Point{}), true},
		{"circle near rect corner", circleAt(5, Point{X: 9, Y: 9}), rectAt(10, 10, Point{}), false},
		{"circle on rect corner", circleAt(5, Point{X: 8, Y: 8}), rectAt(10, 10, Point{}), true},
		{"circle center inside rect", circleAt(1, Point{X: 1}), rectAt(10, 10, Point{}), true},

		{"rects touching", rectAt(10, 10, Point{}), rectAt(10, 10, Point{X: 10}), false},
		{"rects overlapping", rectAt(10, 10, Point{}), rectAt(10, 10, Point{X: 9.5, Y: -9.5}), true},
		{"rects apart vertically", rectAt(10, 4, Point{}), rectAt(10, 4, Point{Y: 5}), false},

		{"circle and image", circleAt(5, Point{X: 9.5}), imageAt(10, 10, Point{}), true},
		{"circle touching image", circleAt(5, Point{Y: 10}), imageAt(10, 10, Point{}), false},
		{"rect and image", rectAt(10, 10, Point{}), imageAt(4, 4, Point{X: 6.5}), true},
		{"images touching", imageAt(4, 4, Point{}), imageAt(4, 4, Point{X: 4}), false},
		{"images overlapping", imageAt(4, 4, Point{}), imageAt(4, 4, Point{X: 3.5}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.drawable().Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.drawable().Overlaps(tt.a), "overlap is symmetric")
		})
	}
}

func TestTextNeverOverlaps(t *testing.T) {
	c := newTestCanvas()
	label := NewText(c, "hello")
	circle := NewCircle(c, 20)
	rect := NewRectangle(c, 50, 50, 0)
	other := NewText(c, "world")

	for _, g := range []Graphic{circle, rect, other, label} {
		assert.False(t, label.Overlaps(g))
		assert.False(t, g.drawable().Overlaps(label))
	}
}

func TestOverlapIgnoresScaleAndRotation(t *testing.T) {
	c := newTestCanvas()
	a := NewRectangle(c, 10, 2, 0)
	b := NewRectangle(c, 10, 2, 0)
	b.SetCenter(Point{Y: 5})

	a.SetScale(10)
	a.SetRotation(1)
	assert.False(t, a.Overlaps(b))
}

func TestOverlapsNil(t *testing.T) {
	c := newTestCanvas()
	assert.False(t, NewDefaultCircle(c).Overlaps(nil))
}

func TestOverlapUsesPresentedCenter(t *testing.T) {
	c := newTestCanvas()
	a := NewCircle(c, 5)
	b := NewCircle(c, 5)
	b.SetCenter(Point{X: 40})

	c.Animate(1, 0, func() { b.SetCenter(Point{}) })
	assert.False(t, a.Overlaps(b), "b has not moved on screen yet")
	c.Advance(1)
	assert.True(t, a.Overlaps(b))
}
