package advanced

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/hpaulkeeler/voronoi-uniform/dbg"
)

type options struct {
	skipDegenerate bool
}

type Option func(*options)

// SkipDegenerate makes a degenerate bounded cell a per-cell report in
// Result.Skipped instead of a failure of the whole batch. No point is ever
// emitted for such a cell.
func SkipDegenerate() Option {
	return func(o *options) { o.skipDegenerate = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Place one uniformly distributed point in every bounded cell, drawing all
// variates from src in cell order. Unbounded cells contribute nothing to the
// result.
//
// The input is validated in full before any point is drawn. Malformed input
// returns an error wrapping ErrInvalidInput; a degenerate bounded cell returns
// a *CellError wrapping ErrDegenerateGeometry unless SkipDegenerate is given.
func SampleCells(t *Tessellation, generators []Point, src Source, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := HandleSamplePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	o := newOptions(opts)
	validate(t, generators)

	result = &Result{}
	for i := 0; i < t.Len(); i++ {
		point, bounded, cellErr := sampleCell(t, generators[i], i, src)
		if err := result.collect(o, i, point, bounded, cellErr); err != nil {
			return nil, err
		}
	}
	result.log()
	return result, nil
}

// Like SampleCells, but cells are processed concurrently by up to workers
// goroutines (all CPUs if workers <= 0). Cell i draws only from streams(i),
// which is called once per cell and must be safe to call concurrently. The
// result does not depend on the worker count. A panic in a worker is re-raised
// in the calling goroutine once every worker has finished.
func SampleCellsParallel(t *Tessellation, generators []Point, streams func(cell int) Source, workers int, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := HandleSamplePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	o := newOptions(opts)
	validate(t, generators)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type outcome struct {
		point   Point
		bounded bool
		err     *CellError
	}
	outcomes := make([]outcome, t.Len())
	panics := make([]interface{}, t.Len())

	waitchan := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range outcomes {
		waitchan <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer func() {
				panics[i] = recover()
				<-waitchan
				wg.Done()
			}()
			point, bounded, cellErr := sampleCell(t, generators[i], i, streams(i))
			outcomes[i] = outcome{point, bounded, cellErr}
		}(i)
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	result = &Result{}
	for i, out := range outcomes {
		if err := result.collect(o, i, out.point, out.bounded, out.err); err != nil {
			return nil, err
		}
	}
	result.log()
	return result, nil
}

// Fold one cell's outcome into the result. Only a cell error that is not being
// skipped is returned.
func (r *Result) collect(o options, i int, point Point, bounded bool, cellErr *CellError) error {
	if cellErr != nil {
		if !o.skipDegenerate {
			return cellErr
		}
		if logger := Logger(); logger.Enabled(context.Background(), slog.LevelWarn) {
			logger.Warn("skipping degenerate cell", "cell", i, "name", dbg.Name(i), "err", cellErr.Err)
		}
		r.Skipped = append(r.Skipped, cellErr)
		return nil
	}
	if bounded {
		r.Points = append(r.Points, point)
		r.Bounded = append(r.Bounded, i)
	}
	return nil
}

func (r *Result) log() {
	Logger().Info("sampled bounded cells", "bounded", len(r.Bounded), "skipped", len(r.Skipped))
}

// Classify, triangulate and sample a single cell. Geometry failures come back
// as a *CellError; anything else thrown here is a bug in validation and keeps
// unwinding.
func sampleCell(t *Tessellation, generator Point, i int, src Source) (point Point, bounded bool, cellErr *CellError) {
	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	cell := t.Cell(i)
	if !IsBounded(cell, t.Infinity) {
		if debug {
			logger.Debug("unbounded cell", "cell", i, "name", dbg.Name(i))
		}
		return Point{}, false, nil
	}

	fan, err := NewFan(generator, t.Boundary(i))
	if err != nil {
		return Point{}, true, &CellError{Index: i, Err: err}
	}
	if debug {
		logger.Debug("bounded cell", "cell", i, "name", dbg.Name(i), "triangles", len(fan.Triangles), "area", fan.Total)
	}
	return fan.Sample(src), true, nil
}

// Check that the tessellation and generators agree and that every vertex index
// can be resolved. Throws ErrInvalidInput.
func validate(t *Tessellation, generators []Point) {
	if t == nil {
		fatalf("nil tessellation")
	}
	if len(generators) != t.Len() {
		fatalf("%d generator points for %d cells", len(generators), t.Len())
	}
	for i, region := range t.PointRegion {
		if region < 0 || region >= len(t.Regions) {
			fatalf("generator %d maps to region %d, have %d regions", i, region, len(t.Regions))
		}
	}
	for i := 0; i < t.Len(); i++ {
		for k, v := range t.Cell(i) {
			if v == t.Infinity {
				continue
			}
			if v < 0 || v >= len(t.Vertices) {
				fatalf("cell %d: boundary vertex %d has index %d, have %d vertices", i, k, v, len(t.Vertices))
			}
		}
	}
}

// Pair up separate coordinate arrays.
func PointsFromXY(xs, ys []float64) (points []Point, err error) {
	defer func() {
		if recoveredErr := HandleSamplePanicRecover(recover()); recoveredErr != nil {
			points = nil
			err = recoveredErr
		}
	}()
	if len(xs) != len(ys) {
		fatalf("%d x coordinates but %d y coordinates", len(xs), len(ys))
	}
	points = make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{xs[i], ys[i]}
	}
	return points, nil
}
