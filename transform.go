package shapes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the combined scale and rotation applied to a layer about its
// center. Rotation is in radians, counter-clockwise as seen on screen.
type Transform struct {
	Scale    float64
	Rotation float64
}

// IdentityTransform leaves a layer at its natural size and orientation.
var IdentityTransform = Transform{Scale: 1}

// layerMatrix computes the affine matrix that maps a layer's content space
// (origin at its top-left corner, Y down, Width x Height) to screen space.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-W/2, -H/2) -> Scale -> Rotate(-Rotation) -> Translate(X, Y)
//
// The rotation is negated because screen Y grows downward while rotation is
// counter-clockwise on screen.
func layerMatrix(s *layerState) [6]float64 {
	sin, cos := math.Sincos(-s.Rotation)
	sc := s.Scale

	preTx := -s.Width / 2 * sc
	preTy := -s.Height / 2 * sc

	return [6]float64{
		cos * sc,
		sin * sc,
		-sin * sc,
		cos * sc,
		cos*preTx - sin*preTy + s.X,
		sin*preTx + cos*preTy + s.Y,
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant near 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// singular reports whether m collapses the plane (scale 0).
func singular(m [6]float64) bool {
	det := m[0]*m[3] - m[2]*m[1]
	return det > -1e-12 && det < 1e-12
}

// geoM loads an affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
