package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{X: 1, Y: 2}
	assert.Equal(t, 5.0, Point{}.Distance(Point{X: 3, Y: 4}))
	assert.Equal(t, Point{X: 4, Y: 6}, p.Add(Point{X: 3, Y: 4}))
	assert.Equal(t, Point{X: -2, Y: -2}, p.Sub(Point{X: 3, Y: 4}))
}

func TestSizeClamped(t *testing.T) {
	assert.Equal(t, Size{0, 3}, Size{-1, 3}.clamped())
	assert.Equal(t, Size{2, 0}, Size{2, -0.5}.clamped())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "rectangle", KindRectangle.String())
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", Kind(42).String())

	assert.Equal(t, "began", TouchBegan.String())
	assert.Equal(t, "moved", TouchMoved.String())
	assert.Equal(t, "ended", TouchEnded.String())
	assert.Equal(t, "cancelled", TouchCancelled.String())
	assert.Equal(t, "unknown", TouchPhase(9).String())
}
