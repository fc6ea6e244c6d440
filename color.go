package shapes

import (
	"image/color"
	"math/rand/v2"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// The toolkit palette. Red, orange, yellow, green, blue and purple are tuned
// for legibility on a white canvas; the remaining names follow the CSS table.
var (
	ColorClear     = Color{1, 1, 1, 0}
	ColorBlack     = Color{0, 0, 0, 1}
	ColorWhite     = Color{1, 1, 1, 1}
	ColorGray      = colorFromRGBA(colornames.Gray)
	ColorLightGray = colorFromRGBA(colornames.Lightgray)
	ColorDarkGray  = colorFromRGBA(colornames.Darkgray)
	ColorRed       = Color{0.7294117647, 0.07058823529, 0.03921568627, 1}
	ColorBrightRed = Color{1, 0, 0, 1}
	ColorOrange    = Color{0.8941176470588236, 0.4705882352941176, 0.08627450980392157, 1}
	ColorYellow    = Color{0.9490196078431372, 0.8, 0.1215686274509804, 1}
	ColorGreen     = Color{0.3725490196078431, 0.7176470588235294, 0.196078431372549, 1}
	ColorBlue      = Color{0.2627450980392157, 0.5803921568627451, 0.9686274509803922, 1}
	ColorPurple    = Color{0.3843137254901961, 0.1607843137254902, 0.5372549019607843, 1}
	ColorPink      = colorFromRGBA(colornames.Pink)
	ColorBrown     = colorFromRGBA(colornames.Brown)
	ColorCyan      = colorFromRGBA(colornames.Cyan)
	ColorGold      = colorFromRGBA(colornames.Gold)
	ColorNavy      = colorFromRGBA(colornames.Navy)
)

var palette = map[string]Color{
	"clear":     ColorClear,
	"red":       ColorRed,
	"brightred": ColorBrightRed,
	"orange":    ColorOrange,
	"yellow":    ColorYellow,
	"green":     ColorGreen,
	"blue":      ColorBlue,
	"purple":    ColorPurple,
}

// ColorNamed looks up a color by name, case-insensitively and ignoring
// spaces, so "Light Sea Green" and "lightseagreen" are equivalent. The toolkit
// palette takes precedence over the CSS table.
func ColorNamed(name string) (Color, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if c, ok := palette[key]; ok {
		return c, true
	}
	if c, ok := colornames.Map[key]; ok {
		return colorFromRGBA(c), true
	}
	return Color{}, false
}

// NewColorHSB creates an opaque-or-not color from hue, saturation and
// brightness, each in [0, 1].
func NewColorHSB(hue, saturation, brightness, alpha float64) Color {
	c := colorful.Hsv(clamp01(hue)*360, clamp01(saturation), clamp01(brightness))
	return Color{c.R, c.G, c.B, clamp01(alpha)}
}

// NewColorWhite creates a gray level color.
func NewColorWhite(white, alpha float64) Color {
	w := clamp01(white)
	return Color{w, w, w, clamp01(alpha)}
}

// RandomColor returns an opaque color with uniformly random channels.
func RandomColor() Color {
	return Color{rand.Float64(), rand.Float64(), rand.Float64(), 1}
}

// Lighter returns c with its brightness raised by percent (0.2 is a good
// default). Brightness saturates at 1.
func (c Color) Lighter(percent float64) Color {
	return c.withBrightness(1 + percent)
}

// Darker returns c with its brightness reduced by percent. Darker(0) returns
// c unchanged and Darker(1) returns black at the same alpha.
func (c Color) Darker(percent float64) Color {
	return c.withBrightness(1 - percent)
}

// WithAlpha returns c with only its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp01(alpha)
	return c
}

// HSB returns hue, saturation and brightness in [0, 1].
func (c Color) HSB() (hue, saturation, brightness float64) {
	h, s, v := c.colorful().Hsv()
	return h / 360, s, v
}

// withBrightness scales the HSB brightness by factor. The factor is floored
// at zero and the resulting brightness is capped at one.
func (c Color) withBrightness(factor float64) Color {
	if factor == 1 {
		return c
	}
	factor = max(factor, 0)
	h, s, v := c.colorful().Hsv()
	out := colorful.Hsv(h, s, clamp01(v*factor)).Clamped()
	return Color{out.R, out.G, out.B, c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func colorFromRGBA(c color.RGBA) Color {
	if c.A == 0 {
		return Color{}
	}
	a := float64(c.A) / 255
	return Color{
		R: float64(c.R) / 255 / a,
		G: float64(c.G) / 255 / a,
		B: float64(c.B) / 255 / a,
		A: a,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
