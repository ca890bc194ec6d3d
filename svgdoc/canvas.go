// Composes shapes into an SVG drawing surface,
// and drawing surfaces into an HTML document.
package svgdoc

import (
	"fmt"
	"io"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgrand"
	"github.com/Matthew-Goosney/svgart/svgshape"
)

// Component is a block of markup which may be placed in a Document.
type Component interface {
	// Render writes the component, its first lines
	// being indented at `level`.
	Render(w io.Writer, level int) error
}

var _ Component = (*Canvas)(nil) // assert interface conformance

const canvasComment = "Define SVG drawing box"

// Canvas is an SVG drawing surface holding shapes.
// Shapes are drawn in insertion order, the last one on top.
type Canvas struct {
	Width, Height int

	shapes []svgshape.Shape
}

// NewCanvas returns an empty canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// Add appends a shape, which will be drawn on top of the previous ones.
// Shapes are always rendered one level below the canvas.
func (c *Canvas) Add(s svgshape.Shape) {
	c.shapes = append(c.shapes, s)
}

// Shapes returns a copy of the shapes, in drawing order.
func (c *Canvas) Shapes() []svgshape.Shape {
	return append([]svgshape.Shape(nil), c.shapes...)
}

// Len returns the number of shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Render writes the comment, the <svg> block and one line per shape.
func (c *Canvas) Render(w io.Writer, level int) error {
	lw := &lineWriter{w: w}
	lw.line(level, "<!--"+canvasComment+"-->")
	lw.line(level, fmt.Sprintf(`<svg width="%d" height="%d">`, c.Width, c.Height))
	for _, s := range c.shapes {
		lw.writeString(s.Line(level + 1))
	}
	lw.line(level, "</svg>")
	return lw.err
}

// PopulateRandom adds cfg.ShapeCount random shapes, numbered from 0.
func (c *Canvas) PopulateRandom(g *svgrand.Generator, cfg svgconfig.RangeConfig) {
	for i := 0; i < cfg.ShapeCount; i++ {
		c.Add(g.Shape(cfg, i))
	}
}

// PopulateFixedDemo adds two rows of five circles of radius 50:
// red ones at y = 50 then blue ones at y = 250, with x going
// from 50 to 450 by steps of 100.
func (c *Canvas) PopulateFixedDemo() {
	rows := [...]struct {
		y     int
		color svgshape.ColorSpec
	}{
		{50, svgshape.NewColor(255, 0, 0, 1.0)},
		{250, svgshape.NewColor(0, 0, 255, 1.0)},
	}
	id := 0
	for _, row := range rows {
		for i := 0; i < 5; i++ {
			c.Add(svgshape.NewCircle(id, 50+i*100, row.y, 50, row.color))
			id++
		}
	}
}
