package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{Point{0, -1}, Point{1, 0}, Point{0, 1}}
			// Clockwise triangles have negative area
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assert.InDelta(t, sign, tri.SignedArea(), Tolerance)
			assert.InDelta(t, 1, tri.Area(), Tolerance)

			// Rotating and translating the triangle keeps its area
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri.A = rotatePoint(tri.A, angle).Add(Point{5, 3})
				tri.B = rotatePoint(tri.B, angle).Add(Point{5, 3})
				tri.C = rotatePoint(tri.C, angle).Add(Point{5, 3})
				assert.InDelta(t, sign, tri.SignedArea(), 1e-9)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	square := LoadFixture("square").Polygon()
	assert.InDelta(t, 1, square.SignedArea(), Tolerance)
	assert.InDelta(t, -1, square.Reverse().SignedArea(), Tolerance)
	assert.False(t, square.IsCW())
	assert.True(t, square.Reverse().IsCW())

	hexagon := LoadFixture("hexagon").Polygon()
	assert.InDelta(t, 3*math.Sqrt(3)/2, hexagon.Area(), 1e-6)
}

func TestPolygonCentroid(t *testing.T) {
	c, ok := LoadFixture("square").Polygon().Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0.5, c.X, Tolerance)
	assert.InDelta(t, 0.5, c.Y, Tolerance)

	// Winding doesn't matter
	c, ok = LoadFixture("hexagon").Polygon().Reverse().Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)

	// Right triangle: the mean of its corners
	c, ok = Polygon{Points: []Point{{0, 0}, {3, 0}, {0, 3}}}.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 1, c.X, Tolerance)
	assert.InDelta(t, 1, c.Y, Tolerance)

	_, ok = LoadFixture("collinear").Polygon().Centroid()
	assert.False(t, ok)

	// Small but not degenerate
	c, ok = Polygon{Points: []Point{{0, 0}, {1e-6, 0}, {0, 1e-6}}}.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 1e-6/3, c.X, 1e-18)
	assert.InDelta(t, 1e-6/3, c.Y, 1e-18)

	_, ok = Polygon{Points: []Point{{0, 0}, {math.Inf(1), 0}, {0, 1}}}.Centroid()
	assert.False(t, ok)
}

func TestPolygonExtent(t *testing.T) {
	assert.InDelta(t, math.Sqrt2, LoadFixture("square").Polygon().Extent(), Tolerance)
	assert.Zero(t, Polygon{}.Extent())
}

func TestPolygonContainsPoint(t *testing.T) {
	pentagon := LoadFixture("pentagon").Polygon()
	assert.True(t, pentagon.ContainsPoint(Point{1.5, 1.8}))
	assert.True(t, pentagon.ContainsPoint(Point{0, 0}), "vertex")
	assert.True(t, pentagon.ContainsPoint(Point{1.5, 0.25}), "edge")
	assert.False(t, pentagon.ContainsPoint(Point{3.4, 0.3}))
	assert.False(t, pentagon.ContainsPoint(Point{-1, 2}))
	assert.True(t, pentagon.Reverse().ContainsPoint(Point{1.5, 1.8}))
}

// The boundary tolerance follows the size of the polygon.
func TestPolygonContainsPoint_Scale(t *testing.T) {
	for _, side := range []float64{1e-5, 1, 1e6} {
		square := Polygon{Points: []Point{{0, 0}, {side, 0}, {side, side}, {0, side}}}
		assert.True(t, square.ContainsPoint(Point{side, side / 2}), "edge, side %g", side)
		assert.True(t, square.ContainsPoint(Point{side * (1 + 1e-12), side / 2}), "just outside the edge, side %g", side)
		assert.False(t, square.ContainsPoint(Point{side * (1 + 1e-6), side / 2}), "outside, side %g", side)
	}
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}
