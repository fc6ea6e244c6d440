package shapes

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const defaultFontSize = 17.0

// Text is a label on the canvas. Its size always follows the measured text,
// so changing the string, font or line limit resizes it about its center.
type Text struct {
	Drawable

	content  textContent
	fontName string
}

// NewText creates a label in the default font at 17 points, colored black,
// centered and with no line limit.
func NewText(c *Canvas, s string) *Text {
	return NewTextWithFont(c, s, defaultFontSize, DefaultFontName, ColorBlack)
}

// NewTextWithFont creates a label with an explicit font. An unknown fontName
// falls back to the default font.
func NewTextWithFont(c *Canvas, s string, fontSize float64, fontName string, color Color) *Text {
	t := &Text{}
	c.engine.immediate(func() {
		t.init(c, KindText, t)
		t.content = textContent{
			str:   s,
			color: color,
			align: TextAlignCenter,
		}
		src, ok := lookupFont(fontName)
		if ok {
			t.fontName = fontName
		} else {
			Logger().Warn("unknown font, using default", "font", fontName)
			src, _ = lookupFont(DefaultFontName)
			t.fontName = DefaultFontName
		}
		t.content.face = &text.GoTextFace{Source: src, Size: max(fontSize, 0)}
		t.layer.setText(&t.content)
		t.updateSizeFromFont()
	})
	return t
}

// String returns the label text.
func (t *Text) String() string { return t.content.str }

// SetString replaces the label text.
func (t *Text) SetString(s string) {
	t.content.str = s
	t.updateSizeFromFont()
}

// Color returns the text color. The default is ColorBlack.
func (t *Text) Color() Color { return t.content.color }

// SetColor sets the text color.
func (t *Text) SetColor(c Color) {
	t.content.color = c
	t.layer.contentDirty = true
}

// FontSize returns the font size in points. The default is 17.
func (t *Text) FontSize() float64 { return t.content.face.Size }

// SetFontSize changes the font size, keeping the font.
func (t *Text) SetFontSize(size float64) {
	t.content.face = &text.GoTextFace{Source: t.content.face.Source, Size: max(size, 0)}
	t.updateSizeFromFont()
}

// FontName returns the registered name of the current font.
func (t *Text) FontName() string { return t.fontName }

// SetFontName switches to a font registered with RegisterFont (or a built-in
// Go font). Unknown names leave the current font in place.
func (t *Text) SetFontName(name string) {
	src, ok := lookupFont(name)
	if !ok {
		Logger().Warn("unknown font, keeping current", "font", name, "current", t.fontName)
		return
	}
	t.fontName = name
	t.content.face = &text.GoTextFace{Source: src, Size: t.content.face.Size}
	t.updateSizeFromFont()
}

// Alignment returns how lines are aligned relative to each other.
func (t *Text) Alignment() TextAlign { return t.content.align }

// SetAlignment changes how lines are aligned relative to each other.
func (t *Text) SetAlignment(a TextAlign) {
	t.content.align = a
	t.updateSizeFromFont()
}

// NumberOfLines returns the line limit. Zero means unlimited.
func (t *Text) NumberOfLines() int { return t.content.lines }

// SetNumberOfLines limits how many lines are shown. Zero shows every line;
// negative values are treated as zero.
func (t *Text) SetNumberOfLines(n int) {
	t.content.lines = max(n, 0)
	t.updateSizeFromFont()
}

// Size returns the measured size in model units.
func (t *Text) Size() Size { return t.modelSize }

// VisibleLines returns the lines actually shown, after the line limit.
func (t *Text) VisibleLines() []string {
	s := t.content.visibleText()
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// LineHeight returns the distance between baselines in model units.
func (t *Text) LineHeight() float64 {
	if t.content.face == nil || t.content.face.Source == nil {
		return 0
	}
	return t.canvas.ConvertMagnitudeFromScreen(t.content.lineSpacing())
}

func (t *Text) updateSizeFromFont() {
	w, h := measureText(&t.content)
	t.setScreenSize(w, h)
	t.layer.contentDirty = true
}

// visibleText returns the string limited to the line count.
func (tc *textContent) visibleText() string {
	if tc.lines <= 0 {
		return tc.str
	}
	lines := strings.SplitN(tc.str, "\n", tc.lines+1)
	if len(lines) > tc.lines {
		lines = lines[:tc.lines]
	}
	return strings.Join(lines, "\n")
}

// lineSpacing returns the distance between baselines in points.
func (tc *textContent) lineSpacing() float64 {
	m := tc.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// measureText returns the natural size of the visible text in screen points.
func measureText(tc *textContent) (float64, float64) {
	if tc.face == nil || tc.face.Source == nil {
		return 0, 0
	}
	s := tc.visibleText()
	if s == "" {
		return 0, 0
	}
	return text.Measure(s, tc.face, tc.lineSpacing())
}
