package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestNewTextDefaults(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "Hello")

	assert.Equal(t, KindText, txt.Kind())
	assert.Equal(t, "Hello", txt.String())
	assert.Equal(t, DefaultFontName, txt.FontName())
	assert.Equal(t, 17.0, txt.FontSize())
	assert.Equal(t, ColorBlack, txt.Color())
	assert.Equal(t, TextAlignCenter, txt.Alignment())
	assert.Zero(t, txt.NumberOfLines())
	assert.Equal(t, Point{}, txt.Center())

	size := txt.Size()
	assert.Positive(t, size.Width)
	assert.Positive(t, size.Height)
	assert.Equal(t, size.Width*2, txt.Layer().model.Width, "layer size is in screen points")
}

func TestTextSizeFollowsContent(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "Hi")
	short := txt.Size()

	txt.SetString("Hello there")
	assert.Greater(t, txt.Size().Width, short.Width)
	assert.InDelta(t, short.Height, txt.Size().Height, 1e-9)

	txt.SetString("")
	assert.Equal(t, Size{}, txt.Size())
	assert.Nil(t, txt.VisibleLines())
}

func TestTextFontSize(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "Hello")
	before := txt.Size()

	txt.SetFontSize(34)
	assert.Equal(t, 34.0, txt.FontSize())
	assert.Greater(t, txt.Size().Width, before.Width)
	assert.Greater(t, txt.Size().Height, before.Height)

	txt.SetFontSize(-1)
	assert.Zero(t, txt.FontSize())
}

func TestTextNumberOfLines(t *testing.T) {
	c := newTestCanvas()
	one := NewText(c, "first")
	three := NewText(c, "first\nsecond\nthird")
	assert.Greater(t, three.Size().Height, one.Size().Height)
	assert.Equal(t, []string{"first", "second", "third"}, three.VisibleLines())

	three.SetNumberOfLines(1)
	assert.Equal(t, 1, three.NumberOfLines())
	assert.Equal(t, []string{"first"}, three.VisibleLines())
	assert.InDelta(t, one.Size().Height, three.Size().Height, 1e-9)

	three.SetNumberOfLines(-2)
	assert.Zero(t, three.NumberOfLines())
	assert.Len(t, three.VisibleLines(), 3)
}

func TestTextResizesAboutCenter(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "Hi")
	txt.SetCenter(Point{X: 10, Y: -10})
	txt.SetString("A much longer label")
	assert.Equal(t, Point{X: 10, Y: -10}, txt.Center())
}

func TestTextFontName(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "Hello")

	txt.SetFontName("go-mono")
	assert.Equal(t, "go-mono", txt.FontName())
	assert.Equal(t, 17.0, txt.FontSize(), "font size is kept")

	txt.SetFontName("no-such-font")
	assert.Equal(t, "go-mono", txt.FontName(), "unknown font keeps the current one")
}

func TestNewTextWithUnknownFont(t *testing.T) {
	c := newTestCanvas()
	txt := NewTextWithFont(c, "Hello", 20, "missing", ColorRed)
	assert.Equal(t, DefaultFontName, txt.FontName())
	assert.Equal(t, 20.0, txt.FontSize())
	assert.Equal(t, ColorRed, txt.Color())
	assert.Positive(t, txt.Size().Width)
}

func TestRegisterFont(t *testing.T) {
	require.NoError(t, RegisterFont("Custom Mono", gomono.TTF))

	c := newTestCanvas()
	txt := NewTextWithFont(c, "Hello", 12, "custom mono", ColorBlack)
	assert.Equal(t, "custom mono", txt.FontName())

	err := RegisterFont("broken", []byte("not a font"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `register font "broken"`)
}

func TestTextAlignment(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "a\nbbb")
	size := txt.Size()

	txt.SetAlignment(TextAlignRight)
	assert.Equal(t, TextAlignRight, txt.Alignment())
	assert.Equal(t, size, txt.Size(), "alignment does not change the box")
}

func TestTextLineHeight(t *testing.T) {
	c := newTestCanvas()
	txt := NewText(c, "a\nb")
	lh := txt.LineHeight()
	assert.Positive(t, lh)
	assert.InDelta(t, txt.Size().Height, 2*lh, lh/2)
}
