package advanced

import "math"

// A cell is bounded iff none of its vertices is the point at infinity.
func IsBounded(cell []int, infinity int) bool {
	for _, v := range cell {
		if v == infinity {
			return false
		}
	}
	return true
}

// A Fan splits a cell polygon into one triangle per boundary edge, all sharing
// the generator as their apex. Because the generator lies inside its own
// (convex) Voronoi cell, the triangles tile the cell without overlap, whatever
// the winding of the boundary.
type Fan struct {
	Generator Point
	Triangles []Triangle
	Areas     []float64
	Total     float64
	// Cumulative area fractions. The last entry is 1 up to rounding.
	cdf []float64
}

// Build the fan for a cell's boundary. Returns an error wrapping
// ErrDegenerateGeometry if the boundary has fewer than 3 vertices or encloses
// no area.
func NewFan(generator Point, boundary []Point) (fan *Fan, err error) {
	defer func() {
		if recoveredErr := HandleSamplePanicRecover(recover()); recoveredErr != nil {
			fan = nil
			err = recoveredErr
		}
	}()
	return buildFan(generator, boundary), nil
}

func buildFan(generator Point, boundary []Point) *Fan {
	m := len(boundary)
	if m < 3 {
		degeneratef("bounded cell has %d boundary vertices, need at least 3", m)
	}

	fan := &Fan{
		Generator: generator,
		Triangles: make([]Triangle, m),
		Areas:     make([]float64, m),
		cdf:       make([]float64, m),
	}
	for k := 0; k < m; k++ {
		tri := Triangle{generator, boundary[k], boundary[CircularIndex(k+1, m)]}
		fan.Triangles[k] = tri
		fan.Areas[k] = tri.Area()
		fan.Total += fan.Areas[k]
	}
	if !(fan.Total > 0) || math.IsInf(fan.Total, 0) {
		degeneratef("triangle fan has total area %v", fan.Total)
	}

	var sum float64
	for k, area := range fan.Areas {
		sum += area
		fan.cdf[k] = sum / fan.Total
	}
	return fan
}

// Select the triangle for a uniform variate r in [0, 1): the smallest index
// whose cumulative area fraction reaches r. Slices with zero area are never
// chosen. If rounding leaves the final fraction just short of r, the last slice
// with positive area is used.
func (f *Fan) Select(r float64) int {
	last := -1
	for k, fraction := range f.cdf {
		if f.Areas[k] == 0 {
			continue
		}
		if fraction >= r {
			return k
		}
		last = k
	}
	return last
}

// Fraction of the cell's area covered by triangle k.
func (f *Fan) Weight(k int) float64 {
	return f.Areas[k] / f.Total
}

// Draw one point uniformly over the cell. Consumes exactly three variates from
// src: the triangle selection first, then the two in-triangle variates.
func (f *Fan) Sample(src Source) Point {
	k := f.Select(src.Float64())
	u1 := src.Float64()
	u2 := src.Float64()
	return SampleTriangle(f.Triangles[k], u1, u2)
}

func (f *Fan) Polygon() Polygon {
	points := make([]Point, len(f.Triangles))
	for k, tri := range f.Triangles {
		points[k] = tri.B
	}
	return Polygon{Points: points}
}

// Map two uniform variates to a point uniformly distributed over the triangle.
// Taking the square root of u1 corrects for the triangle widening away from A;
// mixing the vertices linearly would crowd points towards A.
func SampleTriangle(t Triangle, u1, u2 float64) Point {
	s := math.Sqrt(u1)
	a := 1 - s
	b := s * (1 - u2)
	c := s * u2
	return Point{
		X: a*t.A.X + b*t.B.X + c*t.C.X,
		Y: a*t.A.Y + b*t.B.Y + c*t.C.Y,
	}
}
