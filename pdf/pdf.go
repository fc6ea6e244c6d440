// Package pdf writes a canvas out as a one-page vector PDF.
//
// The page has the canvas size in points. Shapes and text are drawn as vector
// paths in their model state; images are drawn as outlined placeholders
// filled with their tint, since bitmap pixels are only readable while the
// game loop runs.
package pdf

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/phanxgames/shapes"
)

const (
	fontFamily = "Helvetica"
	// placeholderBorder is the outline width of image placeholders, in points.
	placeholderBorder = 1.0
)

// Export writes c to w as a PDF document.
func Export(c *shapes.Canvas, w io.Writer) error {
	doc, err := render(c)
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}
	return nil
}

// ExportFile writes c to a PDF file at path.
func ExportFile(c *shapes.Canvas, path string) error {
	doc, err := render(c)
	if err != nil {
		return err
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf export %s: %w", path, err)
	}
	shapes.Logger().Debug("pdf written", "path", path, "drawables", c.Len())
	return nil
}

func render(c *shapes.Canvas) (*gofpdf.Fpdf, error) {
	if c == nil {
		return nil, fmt.Errorf("pdf export: nil canvas")
	}
	w, h := c.ScreenSize()
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.AddPage()

	p := &painter{doc: doc, canvas: c}
	if bg := c.Background; bg.A > 0 {
		p.fill(bg)
		doc.Rect(0, 0, float64(w), float64(h), "F")
	}
	for _, g := range c.Drawables() {
		p.draw(g)
	}
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf export: %w", err)
	}
	return doc, nil
}

// painter draws drawables onto a page in screen coordinates.
type painter struct {
	doc    *gofpdf.Fpdf
	canvas *shapes.Canvas
}

func (p *painter) draw(g shapes.Graphic) {
	var d *shapes.Drawable
	switch v := g.(type) {
	case *shapes.Circle:
		d = &v.Drawable
	case *shapes.Rectangle:
		d = &v.Drawable
	case *shapes.Image:
		d = &v.Drawable
	case *shapes.Text:
		d = &v.Drawable
	default:
		return
	}
	center := p.canvas.ConvertPointToScreen(d.Center())

	p.doc.TransformBegin()
	if r := d.Rotation(); r != 0 {
		p.doc.TransformRotate(r*180/math.Pi, center.X, center.Y)
	}
	if s := d.Scale(); s != 1 {
		p.doc.TransformScale(s*100, s*100, center.X, center.Y)
	}
	if sh := d.DropShadow(); sh != nil && sh.Opacity > 0 {
		off := shapes.Point{
			X: p.canvas.ConvertMagnitudeToScreen(sh.Offset.X),
			Y: -p.canvas.ConvertMagnitudeToScreen(sh.Offset.Y),
		}
		p.shadow(g, center.Add(off), sh)
	}
	switch v := g.(type) {
	case *shapes.Circle:
		p.circle(v, center)
	case *shapes.Rectangle:
		p.rectangle(v, center)
	case *shapes.Image:
		p.image(v, center)
	case *shapes.Text:
		p.text(v, center)
	}
	p.doc.TransformEnd()
}

// shadow draws a flat silhouette of g. Blur is not reproduced.
func (p *painter) shadow(g shapes.Graphic, at shapes.Point, sh *shapes.Shadow) {
	p.doc.SetAlpha(sh.Opacity*sh.Color.A, "Normal")
	p.doc.SetFillColor(rgb(sh.Color))
	switch v := g.(type) {
	case *shapes.Circle:
		p.doc.Circle(at.X, at.Y, p.canvas.ConvertMagnitudeToScreen(v.Radius()), "F")
	case *shapes.Rectangle:
		w, h := p.screenSize(v.Size())
		p.box(at, w, h, p.canvas.ConvertMagnitudeToScreen(v.CornerRadius()), "F")
	case *shapes.Image:
		w, h := p.screenSize(v.Size())
		p.box(at, w, h, 0, "F")
	}
	p.doc.SetAlpha(1, "Normal")
}

func (p *painter) circle(v *shapes.Circle, at shapes.Point) {
	r := p.canvas.ConvertMagnitudeToScreen(v.Radius())
	if style := p.shapeStyle(&v.Shape); style != "" {
		p.doc.Circle(at.X, at.Y, r, style)
	}
	p.doc.SetAlpha(1, "Normal")
}

func (p *painter) rectangle(v *shapes.Rectangle, at shapes.Point) {
	w, h := p.screenSize(v.Size())
	if style := p.shapeStyle(&v.Shape); style != "" {
		p.box(at, w, h, p.canvas.ConvertMagnitudeToScreen(v.CornerRadius()), style)
	}
	p.doc.SetAlpha(1, "Normal")
}

// shapeStyle sets fill and stroke state for s and returns the gofpdf style
// string, or "" when nothing is visible.
func (p *painter) shapeStyle(s *shapes.Shape) string {
	var style string
	p.doc.SetAlpha(1, "Normal")
	fill := s.Color()
	if fill.A > 0 {
		p.fill(fill)
		style += "F"
	}
	if bw := s.BorderWidth(); bw > 0 && s.BorderColor().A > 0 {
		bc := s.BorderColor()
		p.doc.SetDrawColor(rgb(bc))
		p.doc.SetLineWidth(p.canvas.ConvertMagnitudeToScreen(bw))
		style += "D"
	}
	return style
}

func (p *painter) image(v *shapes.Image, at shapes.Point) {
	w, h := p.screenSize(v.Size())
	style := "D"
	if t := v.Tint(); t != nil && t.A > 0 {
		p.fill(*t)
		style = "FD"
	}
	p.doc.SetDrawColor(rgb(shapes.ColorGray))
	p.doc.SetLineWidth(placeholderBorder)
	p.box(at, w, h, 0, style)
	p.doc.SetAlpha(1, "Normal")
}

func (p *painter) text(v *shapes.Text, at shapes.Point) {
	lines := v.VisibleLines()
	if len(lines) == 0 {
		return
	}
	col := v.Color()
	p.doc.SetFont(fontFamily, "", v.FontSize())
	p.doc.SetTextColor(rgb(col))
	p.doc.SetAlpha(col.A, "Normal")

	w, h := p.screenSize(v.Size())
	lineH := h / float64(len(lines))
	left := at.X - w/2
	top := at.Y - h/2
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		lw := p.doc.GetStringWidth(line)
		x := left
		switch v.Alignment() {
		case shapes.TextAlignCenter:
			x = left + (w-lw)/2
		case shapes.TextAlignRight:
			x = left + w - lw
		}
		// Baseline sits at roughly 80% of the line box for the core fonts.
		p.doc.Text(x, top+float64(i)*lineH+lineH*0.8, line)
	}
	p.doc.SetAlpha(1, "Normal")
}

// box draws a w x h box centered at c with corners rounded to r.
func (p *painter) box(c shapes.Point, w, h, r float64, style string) {
	x, y := c.X-w/2, c.Y-h/2
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		p.doc.Rect(x, y, w, h, style)
		return
	}
	d := p.doc
	d.MoveTo(x+r, y)
	d.LineTo(x+w-r, y)
	d.ArcTo(x+w-r, y+r, r, r, 0, 90, 0)
	d.LineTo(x+w, y+h-r)
	d.ArcTo(x+w-r, y+h-r, r, r, 0, 0, -90)
	d.LineTo(x+r, y+h)
	d.ArcTo(x+r, y+h-r, r, r, 0, 270, 180)
	d.LineTo(x, y+r)
	d.ArcTo(x+r, y+r, r, r, 0, 180, 90)
	d.ClosePath()
	d.DrawPath(style)
}

func (p *painter) fill(c shapes.Color) {
	p.doc.SetFillColor(rgb(c))
	p.doc.SetAlpha(c.A, "Normal")
}

func (p *painter) screenSize(s shapes.Size) (float64, float64) {
	return p.canvas.ConvertMagnitudeToScreen(s.Width), p.canvas.ConvertMagnitudeToScreen(s.Height)
}

func rgb(c shapes.Color) (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
