package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding in pixels around the drawn cells
const drawPadding = 20

// Render the bounded cells, the generators and the sampled points to a PNG.
// Generators of bounded cells are green, generators of unbounded cells blue and
// sampled points red. Unbounded cells have no finite outline and are not
// drawn. scale is pixels per unit.
func DrawPNG(path string, t *Tessellation, generators []Point, result *Result, scale float64) (err error) {
	defer func() {
		if recoveredErr := HandleSamplePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	validate(t, generators)
	return Draw(t, generators, result, scale).SavePNG(path)
}

// Draw is DrawPNG without the file. The input must already be valid.
func Draw(t *Tessellation, generators []Point, result *Result, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range generators {
		grow(p)
	}
	for i := 0; i < t.Len(); i++ {
		if IsBounded(t.Cell(i), t.Infinity) {
			for _, p := range t.Boundary(i) {
				grow(p)
			}
		}
	}
	if len(generators) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	// Flip Y so the origin is at the bottom left
	toPixel := func(p Point) (float64, float64) {
		return drawPadding + scale*(p.X-minX), float64(height) - drawPadding - scale*(p.Y-minY)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetLineWidth(1)
	c.SetRGB(0.3, 0.3, 0.3)
	for i := 0; i < t.Len(); i++ {
		if !IsBounded(t.Cell(i), t.Infinity) {
			continue
		}
		boundary := t.Boundary(i)
		if len(boundary) == 0 {
			continue
		}
		c.MoveTo(toPixel(boundary[0]))
		for _, p := range boundary[1:] {
			c.LineTo(toPixel(p))
		}
		c.ClosePath()
		c.Stroke()
	}

	for i, p := range generators {
		if IsBounded(t.Cell(i), t.Infinity) {
			c.SetRGB(0, 0.6, 0)
		} else {
			c.SetRGB(0, 0, 1)
		}
		x, y := toPixel(p)
		c.DrawCircle(x, y, 3)
		c.Fill()
	}

	if result != nil {
		c.SetRGB(1, 0, 0)
		for _, p := range result.Points {
			x, y := toPixel(p)
			c.DrawCircle(x, y, 4)
			c.Stroke()
		}
	}
	return c
}
