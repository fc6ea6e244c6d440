package shapes

import "math"

// overlapFunc tests two footprints. a always has the lower Kind.
type overlapFunc func(a, b *Drawable) bool

// overlapTable holds one entry per unordered kind pair, stored at
// [lower][higher]. Nil entries mean the pair never overlaps.
//
// Every comparison is strict: shapes that only touch do not overlap.
var overlapTable = [kindCount][kindCount]overlapFunc{
	KindCircle: {
		KindCircle:    circleCircle,
		KindRectangle: circleBox,
		KindImage:     circleBox,
	},
	KindRectangle: {
		KindRectangle: boxBox,
		KindImage:     boxBox,
	},
	KindImage: {
		KindImage: boxBox,
	},
}

// overlaps dispatches on the ordered kind pair so a.Overlaps(b) and
// b.Overlaps(a) always run the same test.
func overlaps(a, b *Drawable) bool {
	if a.kind > b.kind {
		a, b = b, a
	}
	if a.kind >= kindCount || b.kind >= kindCount {
		return false
	}
	fn := overlapTable[a.kind][b.kind]
	if fn == nil {
		return false
	}
	return fn(a, b)
}

func circleRadius(d *Drawable) float64 {
	return d.modelSize.Width / 2
}

func circleCircle(a, b *Drawable) bool {
	return a.Center().Distance(b.Center()) < circleRadius(a)+circleRadius(b)
}

// circleBox clamps the circle center onto the box and compares the distance
// to that nearest point with the radius.
func circleBox(circle, box *Drawable) bool {
	c := circle.Center()
	bc, bs := box.footprint()
	nearest := Point{
		X: math.Max(bc.X-bs.Width/2, math.Min(c.X, bc.X+bs.Width/2)),
		Y: math.Max(bc.Y-bs.Height/2, math.Min(c.Y, bc.Y+bs.Height/2)),
	}
	return c.Distance(nearest) < circleRadius(circle)
}

func boxBox(a, b *Drawable) bool {
	ac, as := a.footprint()
	bc, bs := b.footprint()
	return math.Abs(ac.X-bc.X) < (as.Width+bs.Width)/2 &&
		math.Abs(ac.Y-bc.Y) < (as.Height+bs.Height)/2
}
