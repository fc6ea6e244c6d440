package shapes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// layerState is one snapshot of everything a layer renders. All values are in
// screen points. Position is the layer center.
type layerState struct {
	X, Y          float64
	Width, Height float64
	Scale         float64
	Rotation      float64
	Background    Color
	BorderWidth   float64
	BorderColor   Color
	CornerRadius  float64
	Shadow        shadowState
}

type shadowState struct {
	OffsetX, OffsetY float64
	Radius           float64
	Opacity          float64
	Color            Color
}

// textContent is the label payload of a text layer.
type textContent struct {
	str   string
	face  *text.GoTextFace
	color Color
	align TextAlign
	lines int
}

// imageContent is the bitmap payload of an image layer.
type imageContent struct {
	src  *ebiten.Image
	mode ContentMode
	tint *Color
}

// Layer is the retained render state behind a Drawable. It keeps two copies
// of its state: the model (the value last set) and the presentation (the
// value on screen, which trails the model while an animation is running).
// Setters called inside an animation's Changes animate the presentation from
// its current value to the new model value; setters called elsewhere apply
// immediately.
type Layer struct {
	model        layerState
	presentation layerState

	engine *animationEngine

	text  *textContent
	image *imageContent

	// cache holds the rasterized content. contentDirty forces a redraw.
	cache        *ebiten.Image
	contentDirty bool
	drawnState   layerState
}

func newLayer(engine *animationEngine) *Layer {
	l := &Layer{engine: engine, contentDirty: true}
	l.model.Scale = 1
	l.presentation.Scale = 1
	return l
}

// setField updates one animatable scalar. acc selects the same field from a
// layerState so both copies can be addressed.
func (l *Layer) setField(acc func(*layerState) *float64, v float64) {
	m := acc(&l.model)
	p := acc(&l.presentation)
	*m = v
	if a := l.engine.capturing(); a != nil {
		a.track(m, p, v)
		return
	}
	l.engine.cancelTrack(p)
	*p = v
}

func (l *Layer) setColor(acc func(*layerState) *Color, c Color) {
	l.setField(func(s *layerState) *float64 { return &acc(s).R }, c.R)
	l.setField(func(s *layerState) *float64 { return &acc(s).G }, c.G)
	l.setField(func(s *layerState) *float64 { return &acc(s).B }, c.B)
	l.setField(func(s *layerState) *float64 { return &acc(s).A }, c.A)
}

// SetPosition moves the layer center to (x, y) in screen points.
func (l *Layer) SetPosition(x, y float64) {
	l.setField(func(s *layerState) *float64 { return &s.X }, x)
	l.setField(func(s *layerState) *float64 { return &s.Y }, y)
}

// SetSize resizes the layer about its center.
func (l *Layer) SetSize(w, h float64) {
	l.setField(func(s *layerState) *float64 { return &s.Width }, max(w, 0))
	l.setField(func(s *layerState) *float64 { return &s.Height }, max(h, 0))
}

// SetTransform applies a combined scale and rotation about the center.
func (l *Layer) SetTransform(t Transform) {
	l.setField(func(s *layerState) *float64 { return &s.Scale }, t.Scale)
	l.setField(func(s *layerState) *float64 { return &s.Rotation }, t.Rotation)
}

// SetBackgroundColor sets the fill color.
func (l *Layer) SetBackgroundColor(c Color) {
	l.setColor(func(s *layerState) *Color { return &s.Background }, c)
}

// SetBorder sets the border width (screen points, drawn inside the bounds)
// and color.
func (l *Layer) SetBorder(width float64, c Color) {
	l.setField(func(s *layerState) *float64 { return &s.BorderWidth }, max(width, 0))
	l.setColor(func(s *layerState) *Color { return &s.BorderColor }, c)
}

// SetCornerRadius rounds the corners of the fill and border.
func (l *Layer) SetCornerRadius(r float64) {
	l.setField(func(s *layerState) *float64 { return &s.CornerRadius }, max(r, 0))
}

// SetShadow configures the drop shadow. An opacity of zero hides it.
func (l *Layer) SetShadow(offsetX, offsetY, radius, opacity float64, c Color) {
	l.setField(func(s *layerState) *float64 { return &s.Shadow.OffsetX }, offsetX)
	l.setField(func(s *layerState) *float64 { return &s.Shadow.OffsetY }, offsetY)
	l.setField(func(s *layerState) *float64 { return &s.Shadow.Radius }, max(radius, 0))
	l.setField(func(s *layerState) *float64 { return &s.Shadow.Opacity }, clamp01(opacity))
	l.setColor(func(s *layerState) *Color { return &s.Shadow.Color }, c)
}

// SetShadowOpacity changes only the shadow opacity.
func (l *Layer) SetShadowOpacity(opacity float64) {
	l.setField(func(s *layerState) *float64 { return &s.Shadow.Opacity }, clamp01(opacity))
}

func (l *Layer) setText(tc *textContent) {
	l.text = tc
	l.contentDirty = true
}

func (l *Layer) setImage(ic *imageContent) {
	l.image = ic
	l.contentDirty = true
}

// matrix returns the presentation content-to-screen matrix.
func (l *Layer) matrix() [6]float64 {
	return layerMatrix(&l.presentation)
}

// containsScreenPoint reports whether the screen point lands on the layer's
// presentation geometry. round selects the circle inscribed in the box.
func (l *Layer) containsScreenPoint(x, y float64, round bool) bool {
	p := &l.presentation
	if p.Width <= 0 || p.Height <= 0 {
		return false
	}
	m := l.matrix()
	if singular(m) {
		return false
	}
	lx, ly := transformPoint(invertAffine(m), x, y)
	if round {
		r := min(p.Width, p.Height) / 2
		return HitCircle{CenterX: p.Width / 2, CenterY: p.Height / 2, Radius: r}.Contains(lx, ly)
	}
	return HitRect{Width: p.Width, Height: p.Height}.Contains(lx, ly)
}
