// Package tessfile reads and writes tessellations as YAML documents:
//
//	infinity: -1          # sentinel index, 0 if omitted
//	vertices: [[x, y], ...]
//	regions: [[i, j, k, ...], ...]
//	point_region: [r, ...] # optional, generator -> region
//	points: [[x, y], ...]  # generators
//
// This is the shape of scipy.spatial.Voronoi output, so a Python script can
// dump one with a few lines of yaml.
package tessfile

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hpaulkeeler/voronoi-uniform/advanced"
)

type document struct {
	Infinity    int         `yaml:"infinity"`
	Vertices    [][]float64 `yaml:"vertices"`
	Regions     [][]int     `yaml:"regions"`
	PointRegion []int       `yaml:"point_region,omitempty"`
	Points      [][]float64 `yaml:"points"`
}

// A File is a tessellation together with its generators.
type File struct {
	Tessellation *advanced.Tessellation
	Generators   []advanced.Point
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open tessellation")
	}
	defer f.Close()
	file, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return file, nil
}

// Decode a YAML tessellation. Unknown fields are rejected so that typos do not
// silently drop data.
func Decode(r io.Reader) (*File, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode tessellation")
	}

	vertices, err := toPoints("vertices", doc.Vertices, doc.Infinity)
	if err != nil {
		return nil, err
	}
	generators, err := toPoints("points", doc.Points, -1)
	if err != nil {
		return nil, err
	}
	return &File{
		Tessellation: &advanced.Tessellation{
			Vertices:    vertices,
			Regions:     doc.Regions,
			PointRegion: doc.PointRegion,
			Infinity:    doc.Infinity,
		},
		Generators: generators,
	}, nil
}

func Save(path string, file *File) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create tessellation")
	}
	if err := Encode(f, file); err != nil {
		f.Close()
		return errors.Wrapf(err, "save %s", path)
	}
	return errors.Wrap(f.Close(), "close tessellation")
}

func Encode(w io.Writer, file *File) error {
	t := file.Tessellation
	doc := document{
		Infinity:    t.Infinity,
		Vertices:    fromPoints(t.Vertices),
		Regions:     t.Regions,
		PointRegion: t.PointRegion,
		Points:      fromPoints(file.Generators),
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return errors.Wrap(err, "encode tessellation")
	}
	return errors.Wrap(encoder.Close(), "encode tessellation")
}

// Convert coordinate pairs. The entry at index placeholder is the point at
// infinity and may be empty.
func toPoints(field string, pairs [][]float64, placeholder int) ([]advanced.Point, error) {
	points := make([]advanced.Point, len(pairs))
	for i, pair := range pairs {
		if i == placeholder && len(pair) == 0 {
			continue
		}
		if len(pair) != 2 {
			return nil, errors.Wrapf(advanced.ErrInvalidInput, "%s[%d]: want 2 coordinates, have %d", field, i, len(pair))
		}
		points[i] = advanced.Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}

func fromPoints(points []advanced.Point) [][]float64 {
	pairs := make([][]float64, len(points))
	for i, p := range points {
		pairs[i] = []float64{p.X, p.Y}
	}
	return pairs
}
