package shapes

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shadowSamples spreads shadow copies around a ring to approximate blur.
const shadowSamples = 8

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(ColorWhite.toRGBA())
}

// contentKey is the part of a layer's state baked into its cached content
// image. Position, scale, rotation and shadow are applied at composite time.
type contentKey struct {
	Width, Height float64
	Background    Color
	BorderWidth   float64
	BorderColor   Color
	CornerRadius  float64
}

func keyOf(s *layerState) contentKey {
	return contentKey{
		Width:        s.Width,
		Height:       s.Height,
		Background:   s.Background,
		BorderWidth:  s.BorderWidth,
		BorderColor:  s.BorderColor,
		CornerRadius: s.CornerRadius,
	}
}

// Draw renders the canvas: background first, then every member in z-order
// as currently presented. Call it from ebiten.Game.Draw, or let Run do it.
func (c *Canvas) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
		c.stats = debugStats{drawables: len(c.drawables)}
	}

	if c.Background.A > 0 {
		screen.Fill(c.Background.toRGBA())
	}
	for _, d := range c.drawables {
		c.drawLayer(screen, d.layer)
	}

	if c.debug {
		c.stats.drawTime = time.Since(t0)
		c.stats.animations = c.engine.active()
		c.debugLog()
	}
	c.flushScreenshots(screen)
}

// drawLayer composites one layer's presentation state onto dst.
func (c *Canvas) drawLayer(dst *ebiten.Image, l *Layer) {
	p := &l.presentation
	if p.Width <= 0 || p.Height <= 0 {
		return
	}
	content := c.layerContent(l)
	if content == nil {
		return
	}
	geo := geoM(layerMatrix(p))

	if sh := p.Shadow; sh.Opacity > 0 && sh.Color.A > 0 {
		drawShadow(dst, content, geo, sh)
	}

	var op ebiten.DrawImageOptions
	op.GeoM = geo
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(content, &op)
}

// drawShadow draws content as a solid silhouette in the shadow color, offset
// in screen space and spread over the blur radius.
func drawShadow(dst, content *ebiten.Image, geo ebiten.GeoM, sh shadowState) {
	alpha := sh.Opacity * sh.Color.A
	offsets := [][2]float64{{0, 0}}
	if sh.Radius > 0 {
		for i := 0; i < shadowSamples; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / shadowSamples)
			offsets = append(offsets, [2]float64{cos * sh.Radius / 2, sin * sh.Radius / 2})
		}
		alpha /= float64(len(offsets)) / 2
	}

	var cm colorm.ColorM
	cm.Scale(0, 0, 0, clamp01(alpha))
	cm.Translate(sh.Color.R, sh.Color.G, sh.Color.B, 0)

	for _, off := range offsets {
		var op colorm.DrawImageOptions
		op.GeoM = geo
		op.GeoM.Translate(sh.OffsetX+off[0], sh.OffsetY+off[1])
		op.Filter = ebiten.FilterLinear
		colorm.DrawImage(dst, content, cm, &op)
	}
}

// layerContent returns the layer's rasterized content, redrawing it when the
// baked state changed.
func (c *Canvas) layerContent(l *Layer) *ebiten.Image {
	p := &l.presentation
	key := keyOf(p)
	if l.cache != nil && !l.contentDirty && keyOf(&l.drawnState) == key {
		return l.cache
	}

	w := int(math.Ceil(p.Width))
	h := int(math.Ceil(p.Height))
	if w <= 0 || h <= 0 {
		return nil
	}
	if l.cache != nil {
		b := l.cache.Bounds()
		if b.Dx() != w || b.Dy() != h {
			l.cache.Deallocate()
			l.cache = nil
		} else {
			l.cache.Clear()
		}
	}
	if l.cache == nil {
		l.cache = ebiten.NewImage(w, h)
	}

	switch {
	case l.text != nil:
		drawTextContent(l.cache, l.text, p.Width)
	case l.image != nil:
		drawImageContent(l.cache, l.image, p.Width, p.Height)
	default:
		drawShapeContent(l.cache, p)
	}

	l.drawnState = *p
	l.contentDirty = false
	if c.debug {
		c.stats.redraws++
	}
	return l.cache
}

// drawShapeContent fills the rounded box and strokes the border inside it.
func drawShapeContent(dst *ebiten.Image, s *layerState) {
	w, h := float32(s.Width), float32(s.Height)
	r := float32(s.CornerRadius)

	if s.Background.A > 0 {
		path := roundedRectPath(0, 0, w, h, r)
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		drawSolid(dst, vs, is, s.Background)
	}

	bw := float32(s.BorderWidth)
	if bw > 0 && s.BorderColor.A > 0 {
		half := bw / 2
		path := roundedRectPath(half, half, w-bw, h-bw, max(r-half, 0))
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    bw,
			LineJoin: vector.LineJoinRound,
		})
		drawSolid(dst, vs, is, s.BorderColor)
	}
}

// drawSolid draws triangles filled with a single straight-alpha color.
func drawSolid(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c Color) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// roundedRectPath builds a box path with corners rounded to r, clamped to
// half the shorter side.
func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	if w <= 0 || h <= 0 {
		return &p
	}
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return &p
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

// drawImageContent fits the bitmap into the w x h box, optionally as a
// template filled with the tint color.
func drawImageContent(dst *ebiten.Image, ic *imageContent, w, h float64) {
	if ic.src == nil {
		return
	}
	b := ic.src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	var geo ebiten.GeoM
	switch ic.mode {
	case ContentScaleAndStretchToFill:
		geo.Scale(w/sw, h/sh)
	default:
		s := math.Min(w/sw, h/sh)
		geo.Scale(s, s)
		geo.Translate((w-sw*s)/2, (h-sh*s)/2)
	}

	if ic.tint == nil {
		var op ebiten.DrawImageOptions
		op.GeoM = geo
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(ic.src, &op)
		return
	}

	t := *ic.tint
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, clamp01(t.A))
	cm.Translate(t.R, t.G, t.B, 0)
	var op colorm.DrawImageOptions
	op.GeoM = geo
	op.Filter = ebiten.FilterLinear
	colorm.DrawImage(dst, ic.src, cm, &op)
}

// drawTextContent lays the visible lines out across the box width.
func drawTextContent(dst *ebiten.Image, tc *textContent, w float64) {
	s := tc.visibleText()
	if s == "" || tc.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = tc.lineSpacing()
	switch tc.align {
	case TextAlignLeft:
		op.PrimaryAlign = text.AlignStart
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(w, 0)
	default:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(w/2, 0)
	}
	op.ColorScale.ScaleWithColor(tc.color.toRGBA())
	text.Draw(dst, s, tc.face, op)
}
