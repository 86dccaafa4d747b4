package advanced

// Empirical versus exact centroid of one bounded cell. If sampling is uniform,
// Mean converges on Exact at a rate of O(1/sqrt(Runs)).
type CentroidReport struct {
	Index int
	Mean  Point
	Exact Point
	Runs  int
}

// Run SampleCells runs times and average the points drawn in each bounded
// cell. Cells skipped as degenerate (with SkipDegenerate) are left out.
func EmpiricalCentroids(t *Tessellation, generators []Point, src Source, runs int, opts ...Option) (reports []CentroidReport, err error) {
	defer func() {
		recoveredErr := HandleSamplePanicRecover(recover())
		if recoveredErr != nil {
			reports = nil
			err = recoveredErr
		}
	}()
	if runs < 1 {
		fatalf("need at least one run, got %d", runs)
	}

	var sums []Point
	var bounded []int
	for run := 0; run < runs; run++ {
		result, err := SampleCells(t, generators, src, opts...)
		if err != nil {
			return nil, err
		}
		if sums == nil {
			sums = make([]Point, len(result.Points))
			bounded = result.Bounded
		}
		for k, p := range result.Points {
			sums[k] = sums[k].Add(p)
		}
	}

	reports = make([]CentroidReport, len(bounded))
	for k, i := range bounded {
		exact, ok := Polygon{Points: t.Boundary(i)}.Centroid()
		if !ok {
			degeneratef("cell %d has no centroid", i)
		}
		reports[k] = CentroidReport{
			Index: i,
			Mean:  sums[k].Scale(1 / float64(runs)),
			Exact: exact,
			Runs:  runs,
		}
	}
	Logger().Info("estimated centroids", "cells", len(reports), "runs", runs)
	return reports, nil
}
