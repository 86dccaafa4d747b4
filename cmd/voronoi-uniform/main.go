package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hpaulkeeler/voronoi-uniform/advanced"
	"github.com/hpaulkeeler/voronoi-uniform/internal/tessfile"
)

var (
	app = kingpin.New("voronoi-uniform", "Uniform random points on bounded Voronoi cells.")

	seed           = app.Flag("seed", "Random seed. 0 seeds from the clock.").Short('s').Default("0").Int64()
	skipDegenerate = app.Flag("skip-degenerate", "Report degenerate cells instead of failing.").Bool()
	pngPath        = app.Flag("png", "Draw cells and sampled points to this PNG file.").String()
	pngScale       = app.Flag("scale", "Pixels per unit when drawing.").Default("400").Float64()
	showImage      = app.Flag("imgcat", "Print the PNG to the terminal (iTerm only).").Bool()
	color          = app.Flag("color", "Colorize output.").Default("true").Bool()
	verbose        = app.Flag("verbose", "Log per-cell diagnostics to stderr.").Short('v').Bool()

	sampleCmd     = app.Command("sample", "Place one point in every bounded cell.")
	sampleFile    = sampleCmd.Arg("file", "Tessellation YAML file.").Required().ExistingFile()
	sampleWorkers = sampleCmd.Flag("workers", "Cells sampled concurrently. 0 uses every CPU, 1 samples sequentially.").Short('w').Default("1").Int()

	centroidCmd  = app.Command("centroid", "Compare empirical and exact cell centroids.")
	centroidFile = centroidCmd.Arg("file", "Tessellation YAML file.").Required().ExistingFile()
	centroidRuns = centroidCmd.Flag("runs", "Number of placements to average.").Short('n').Default("10000").Int()
)

// Places one uniform random point in every bounded cell of a tessellation read
// from a YAML file (see internal/tessfile for the format), or estimates the
// cell centroids by repeating the placement many times.
func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	au := aurora.NewAurora(*color)

	var err error
	switch command {
	case sampleCmd.FullCommand():
		err = runSample(os.Stdout, au, *sampleFile, *sampleWorkers)
	case centroidCmd.FullCommand():
		err = runCentroid(os.Stdout, au, *centroidFile, *centroidRuns)
	}
	app.FatalIfError(err, "")
}

func sampleOptions() []advanced.Option {
	if *skipDegenerate {
		return []advanced.Option{advanced.SkipDegenerate()}
	}
	return nil
}

func runSample(w io.Writer, au aurora.Aurora, path string, workers int) error {
	file, err := tessfile.Load(path)
	if err != nil {
		return err
	}

	var result *advanced.Result
	if workers == 1 {
		result, err = advanced.SampleCells(file.Tessellation, file.Generators, advanced.NewSource(*seed), sampleOptions()...)
	} else {
		result, err = advanced.SampleCellsParallel(file.Tessellation, file.Generators, advanced.CellStreams(*seed), workers, sampleOptions()...)
	}
	if err != nil {
		return err
	}

	writeSamples(w, au, result)
	return draw(file, result)
}

func runCentroid(w io.Writer, au aurora.Aurora, path string, runs int) error {
	file, err := tessfile.Load(path)
	if err != nil {
		return err
	}
	reports, err := advanced.EmpiricalCentroids(file.Tessellation, file.Generators, advanced.NewSource(*seed), runs, sampleOptions()...)
	if err != nil {
		return err
	}
	writeCentroids(w, au, reports)

	if *pngPath == "" {
		return nil
	}
	result := &advanced.Result{}
	for _, report := range reports {
		result.Points = append(result.Points, report.Mean)
		result.Bounded = append(result.Bounded, report.Index)
	}
	return draw(file, result)
}

func writeSamples(w io.Writer, au aurora.Aurora, result *advanced.Result) {
	for k, p := range result.Points {
		fmt.Fprintf(w, "%d\t%.10g\t%.10g\n", au.Green(result.Bounded[k]), p.X, p.Y)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(w, "%d\t%s\n", au.Red(skipped.Index), skipped.Err)
	}
}

func writeCentroids(w io.Writer, au aurora.Aurora, reports []advanced.CentroidReport) {
	fmt.Fprintln(w, au.Bold("cell\tmean x\tmean y\texact x\texact y"))
	for _, r := range reports {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\t%.6f\n", au.Green(r.Index), r.Mean.X, r.Mean.Y, r.Exact.X, r.Exact.Y)
	}
}

func draw(file *tessfile.File, result *advanced.Result) error {
	if *pngPath == "" {
		return nil
	}
	if err := advanced.DrawPNG(*pngPath, file.Tessellation, file.Generators, result, *pngScale); err != nil {
		return err
	}
	if *showImage {
		imgcat.CatFile(*pngPath, os.Stdout)
	}
	return nil
}
