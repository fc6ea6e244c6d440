package shapes

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- layerMatrix ---

func TestLayerMatrixIdentity(t *testing.T) {
	s := layerState{Scale: 1}
	assertMatrix(t, "identity", layerMatrix(&s), identityTransform)
}

func TestLayerMatrixCentersContent(t *testing.T) {
	s := layerState{X: 50, Y: 60, Width: 20, Height: 10, Scale: 1}
	assertMatrix(t, "centered", layerMatrix(&s), [6]float64{1, 0, 0, 1, 40, 55})
}

func TestLayerMatrixScaleAboutCenter(t *testing.T) {
	s := layerState{Width: 20, Height: 10, Scale: 2}
	assertMatrix(t, "scale", layerMatrix(&s), [6]float64{2, 0, 0, 2, -20, -10})
}

func TestLayerMatrixRotationCounterClockwise(t *testing.T) {
	s := layerState{Scale: 1, Rotation: math.Pi / 2}
	m := layerMatrix(&s)
	// The content X axis should point up the screen (negative Y).
	x, y := transformPoint(m, 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, -1)
}

func TestLayerMatrixKeepsCenterFixed(t *testing.T) {
	s := layerState{X: 30, Y: 40, Width: 16, Height: 8, Scale: 1.5, Rotation: 0.7}
	x, y := transformPoint(layerMatrix(&s), 8, 4)
	assertNear(t, "x", x, 30)
	assertNear(t, "y", y, 40)
}

// --- invertAffine ---

func TestInvertAffineRoundTrip(t *testing.T) {
	s := layerState{X: 12, Y: -7, Width: 30, Height: 20, Scale: 0.8, Rotation: 1.1}
	m := layerMatrix(&s)
	inv := invertAffine(m)

	x, y := transformPoint(m, 3, 5)
	bx, by := transformPoint(inv, x, y)
	assertNear(t, "x", bx, 3)
	assertNear(t, "y", by, 5)
}

func TestInvertAffineSingular(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 5, 5}
	if !singular(m) {
		t.Fatal("expected zero matrix to be singular")
	}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

func TestGeoMElements(t *testing.T) {
	m := [6]float64{1, 2, 3, 4, 5, 6}
	g := geoM(m)
	assertNear(t, "a", g.Element(0, 0), 1)
	assertNear(t, "b", g.Element(1, 0), 2)
	assertNear(t, "c", g.Element(0, 1), 3)
	assertNear(t, "d", g.Element(1, 1), 4)
	assertNear(t, "tx", g.Element(0, 2), 5)
	assertNear(t, "ty", g.Element(1, 2), 6)
}
