package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into cells. This is not a full (or even
// correct) svg parser. It finds the first polygon, which is the cell boundary,
// and the first circle, whose center is the generator. If anything goes wrong,
// it bails out.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"square", "hexagon", "pentagon", "sliver"}

type fixture struct {
	Generator Point
	Boundary  []Point
}

func (f fixture) Polygon() Polygon {
	return Polygon{Points: f.Boundary}
}

func LoadFixture(name string) fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Want exactly one polygon in fixture %q, found %d", name, len(polygons))
	}
	circles := rootEl.FindAll("circle")
	if len(circles) != 1 {
		log.Fatalf("Want exactly one circle in fixture %q, found %d", name, len(circles))
	}

	var result fixture
	result.Generator = Point{
		X: parseFloat(name, circles[0].Attributes["cx"]),
		Y: parseFloat(name, circles[0].Attributes["cy"]),
	}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		result.Boundary = append(result.Boundary, Point{
			X: parseFloat(name, pointStrings[0]),
			Y: parseFloat(name, pointStrings[1]),
		})
	}
	return result
}

func parseFloat(name, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q in fixture %q: %v", s, name, err)
	}
	return v
}

// Build a tessellation that holds every named fixture as a bounded cell, plus
// one unbounded cell at the end. Vertex 0 is reserved for the point at
// infinity.
func fixtureTessellation(names ...string) (*Tessellation, []Point) {
	t := &Tessellation{Vertices: []Point{{}}}
	var generators []Point
	for _, name := range names {
		f := LoadFixture(name)
		region := make([]int, len(f.Boundary))
		for k, p := range f.Boundary {
			region[k] = len(t.Vertices)
			t.Vertices = append(t.Vertices, p)
		}
		t.Regions = append(t.Regions, region)
		generators = append(generators, f.Generator)
	}
	t.Regions = append(t.Regions, []int{1, 0, 2})
	generators = append(generators, Point{100, 100})
	return t, generators
}
