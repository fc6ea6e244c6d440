package shapes

import "math"

// Point is a position in model space: origin at the canvas center, Y up.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance from p to other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Add returns p translated by other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Size is a width/height pair. Setters clamp negative components to zero.
type Size struct {
	Width, Height float64
}

func (s Size) clamped() Size {
	return Size{math.Max(s.Width, 0), math.Max(s.Height, 0)}
}

// Kind identifies the concrete type behind a Drawable.
type Kind uint8

const (
	KindCircle    Kind = iota // filled circle with a radius
	KindRectangle             // box with optional rounded corners
	KindImage                 // bitmap scaled into a box
	KindText                  // single or multi-line label
	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// TouchPhase is the stage of a touch series.
type TouchPhase uint8

const (
	TouchBegan     TouchPhase = iota // first contact
	TouchMoved                       // contact moved while down
	TouchEnded                       // contact lifted
	TouchCancelled                   // series aborted by the system or by removal of its owner
)

// String returns the phase name.
func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ContentMode controls how an Image fits its source bitmap into its box.
type ContentMode uint8

const (
	ContentScaleToFit             ContentMode = iota // keep aspect ratio, letterbox inside the box
	ContentScaleAndStretchToFill                     // stretch to the box, ignoring aspect ratio
)

// TextAlign controls horizontal alignment of Text lines.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // lines start at the left edge
	TextAlignCenter                  // lines are centered (default)
	TextAlignRight                   // lines end at the right edge
)
