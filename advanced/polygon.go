package advanced

import "math"

// Signed area of the triangle. Clockwise triangles are negative.
func (t Triangle) SignedArea() float64 {
	return cross3(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Shoelace area. Clockwise polygons are negative.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		sum += p.Cross(poly.Points[CircularIndex(i+1, n)])
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Geometric centroid by the signed-area-weighted vertex formula. This is
// independent of any triangulation, which is what makes it useful for checking
// the sampler. Returns ok=false for a polygon with zero or non-finite area,
// the same polygons NewFan rejects.
func (poly Polygon) Centroid() (c Point, ok bool) {
	area := poly.SignedArea()
	if !(math.Abs(area) > 0) || math.IsInf(area, 0) {
		return Point{}, false
	}
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		step := p.Cross(q)
		c.X += (p.X + q.X) * step
		c.Y += (p.Y + q.Y) * step
	}
	return c.Scale(1 / (6 * area)), true
}

// Even-odd point-in-polygon test. Points within Tolerance of an edge, relative
// to the polygon's extent, count as inside, so samples that land exactly on the
// boundary are accepted at any scale.
func (poly Polygon) ContainsPoint(p Point) bool {
	if poly.OnBoundary(p) {
		return true
	}
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts boundary edges crossed by a
// ray running from p in the +X direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) OnBoundary(p Point) bool {
	tolerance := Tolerance * poly.Extent()
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		if segmentDistance(p, a, b) <= tolerance {
			return true
		}
	}
	return false
}

// Length of the diagonal of the bounding box.
func (poly Polygon) Extent() float64 {
	if len(poly.Points) == 0 {
		return 0
	}
	lo, hi := poly.Points[0], poly.Points[0]
	for _, p := range poly.Points[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return hi.Sub(lo).length()
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (p Point) length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance from p to the closed segment ab.
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSquared := ab.X*ab.X + ab.Y*ab.Y
	if lengthSquared == 0 {
		return p.Sub(a).length()
	}
	t := (p.Sub(a).X*ab.X + p.Sub(a).Y*ab.Y) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Scale(t))).length()
}
