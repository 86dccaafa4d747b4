// Uniform random placement of points on bounded Voronoi cells.
//
// Given a precomputed planar Voronoi tessellation and its generator points,
// this package places one point uniformly at random in every bounded cell. Each
// cell is split into a fan of triangles around its generator, a triangle is
// picked with probability proportional to its area, and a point is drawn
// uniformly inside it.
//
// Computing the tessellation is left to a geometry library. See the advanced
// package for the individual steps.
package uniform

import "github.com/hpaulkeeler/voronoi-uniform/advanced"

type Point = advanced.Point
type Tessellation = advanced.Tessellation
type Result = advanced.Result
type Source = advanced.Source
type Option = advanced.Option
type CellError = advanced.CellError

var (
	ErrInvalidInput       = advanced.ErrInvalidInput
	ErrDegenerateGeometry = advanced.ErrDegenerateGeometry
)

// Place one point uniformly at random in every bounded cell of t. Unbounded
// cells are left out of the result entirely.
func Sample(t *Tessellation, generators []Point, src Source, opts ...Option) (*Result, error) {
	return advanced.SampleCells(t, generators, src, opts...)
}

// Like Sample, but with cells spread over workers goroutines. Each cell gets
// its own stream derived from seed, so the result is the same for any worker
// count.
func SampleParallel(t *Tessellation, generators []Point, seed int64, workers int, opts ...Option) (*Result, error) {
	return advanced.SampleCellsParallel(t, generators, advanced.CellStreams(seed), workers, opts...)
}

func NewSource(seed int64) Source {
	return advanced.NewSource(seed)
}

func SkipDegenerate() Option {
	return advanced.SkipDegenerate()
}

func PointsFromXY(xs, ys []float64) ([]Point, error) {
	return advanced.PointsFromXY(xs, ys)
}
