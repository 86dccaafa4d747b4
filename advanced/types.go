package advanced

type Point struct {
	X float64
	Y float64
}

type Triangle struct {
	A, B, C Point
}

type Polygon struct {
	Points []Point
}

// Sentinel conventions for the point at infinity. A tessellation whose
// Infinity field is left at its zero value reserves vertex index 0; scipy
// (and Qhull) use -1 instead.
const (
	ReservedInfinity = 0
	ScipyInfinity    = -1
)

// A Tessellation is the precomputed output of a Voronoi library. Regions hold
// ordered vertex indices into Vertices. A region that contains the Infinity
// index has an edge running off to infinity, and the vertex stored at that
// index (if any) is a placeholder that must never be read as a coordinate.
//
// When PointRegion is nil, region i belongs to generator i. Otherwise
// generator i owns region PointRegion[i], which is how scipy numbers them.
type Tessellation struct {
	Vertices    []Point
	Regions     [][]int
	PointRegion []int
	Infinity    int
}

// Number of cells, which is also the number of generators the tessellation
// expects.
func (t *Tessellation) Len() int {
	if t.PointRegion != nil {
		return len(t.PointRegion)
	}
	return len(t.Regions)
}

// Vertex indices bounding the cell of generator i.
func (t *Tessellation) Cell(i int) []int {
	if t.PointRegion != nil {
		return t.Regions[t.PointRegion[i]]
	}
	return t.Regions[i]
}

// Boundary coordinates of a bounded cell. Calling this on an unbounded cell
// is a programming error.
func (t *Tessellation) Boundary(i int) []Point {
	cell := t.Cell(i)
	points := make([]Point, len(cell))
	for k, v := range cell {
		if v == t.Infinity {
			fatalf("cell %d: boundary vertex %d is the point at infinity", i, k)
		}
		points[k] = t.Vertices[v]
	}
	return points
}

// Result of one sampling pass. Points[k] was drawn in cell Bounded[k].
// Skipped is only populated when degenerate cells are skipped rather than
// treated as fatal.
type Result struct {
	Points  []Point
	Bounded []int
	Skipped []*CellError
}
