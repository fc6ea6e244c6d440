package shapes

const (
	defaultCircleRadius    = 5.0
	defaultRectangleWidth  = 10.0
	defaultRectangleHeight = 10.0
	defaultBorderWidth     = 2.0
)

// Shape holds the fill and border shared by circles and rectangles.
type Shape struct {
	Drawable

	color       Color
	borderWidth float64
	borderColor Color
}

func (s *Shape) initShape(c *Canvas, kind Kind, owner Graphic) {
	s.init(c, kind, owner)
	s.SetColor(ColorBlue)
	s.SetBorderWidth(defaultBorderWidth)
	s.SetBorderColor(ColorClear)
}

// Color returns the fill color. The default is ColorBlue.
func (s *Shape) Color() Color { return s.color }

// SetColor sets the fill color.
func (s *Shape) SetColor(c Color) {
	s.color = c
	s.layer.SetBackgroundColor(c)
}

// BorderWidth returns the border width in screen points. The default is 2.
func (s *Shape) BorderWidth() float64 { return s.borderWidth }

// SetBorderWidth sets the border width in screen points. The border is drawn
// inside the shape's bounds.
func (s *Shape) SetBorderWidth(w float64) {
	s.borderWidth = max(w, 0)
	s.layer.SetBorder(s.borderWidth, s.borderColor)
}

// BorderColor returns the border color. The default is ColorClear.
func (s *Shape) BorderColor() Color { return s.borderColor }

// SetBorderColor sets the border color.
func (s *Shape) SetBorderColor(c Color) {
	s.borderColor = c
	s.layer.SetBorder(s.borderWidth, c)
}

// Circle is a round shape defined by its radius in model units.
type Circle struct {
	Shape
	radius float64
}

// NewCircle creates a circle of the given radius at the canvas origin and
// adds it to the canvas.
func NewCircle(c *Canvas, radius float64) *Circle {
	circle := &Circle{}
	c.engine.immediate(func() {
		circle.initShape(c, KindCircle, circle)
		circle.SetRadius(radius)
	})
	return circle
}

// NewDefaultCircle creates a circle with radius 5.
func NewDefaultCircle(c *Canvas) *Circle {
	return NewCircle(c, defaultCircleRadius)
}

// Radius returns the radius in model units.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius resizes the circle about its center. Negative values are treated
// as zero.
func (c *Circle) SetRadius(r float64) {
	c.radius = max(r, 0)
	d := c.radius * 2
	c.setModelSize(Size{d, d})
	c.layer.SetCornerRadius(d * c.canvas.pointsPerUnit / 2)
}

// Rectangle is a box with optional rounded corners.
type Rectangle struct {
	Shape
	cornerRadius float64
}

// NewRectangle creates a width x height rectangle (model units) at the
// canvas origin and adds it to the canvas.
func NewRectangle(c *Canvas, width, height, cornerRadius float64) *Rectangle {
	r := &Rectangle{}
	c.engine.immediate(func() {
		r.initShape(c, KindRectangle, r)
		r.SetSize(Size{width, height})
		r.SetCornerRadius(cornerRadius)
	})
	return r
}

// NewDefaultRectangle creates a 10 x 10 rectangle with square corners.
func NewDefaultRectangle(c *Canvas) *Rectangle {
	return NewRectangle(c, defaultRectangleWidth, defaultRectangleHeight, 0)
}

// Size returns the unscaled size in model units.
func (r *Rectangle) Size() Size { return r.modelSize }

// SetSize resizes the rectangle about its center. Negative components are
// treated as zero.
func (r *Rectangle) SetSize(s Size) {
	r.setModelSize(s)
}

// CornerRadius returns the corner radius in model units.
func (r *Rectangle) CornerRadius() float64 { return r.cornerRadius }

// SetCornerRadius rounds the corners. The radius is in model units.
func (r *Rectangle) SetCornerRadius(radius float64) {
	r.cornerRadius = max(radius, 0)
	r.layer.SetCornerRadius(r.canvas.ConvertMagnitudeToScreen(r.cornerRadius))
}
