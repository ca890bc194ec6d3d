package svgshape

import (
	"fmt"
	"strings"
)

// IndentUnit is written once per indentation level.
const IndentUnit = "   "

// Indent returns the prefix for a line at the given level.
func Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, level)
}

// Shape is one element of a drawing.
// Only the extents relevant to Kind are used when writing markup:
// Radius for Circle, Width and Height for Rectangle, RX and RY for Ellipse.
// The other extents may hold values, which are then ignored.
type Shape struct {
	Kind Kind
	ID   int // sequence number in the drawing

	X, Y          int // center for circles and ellipses, corner for rectangles
	Radius        int
	RX, RY        int
	Width, Height int

	Color ColorSpec
}

// NewCircle returns a circle centered on (cx, cy).
func NewCircle(id, cx, cy, r int, c ColorSpec) Shape {
	return Shape{Kind: Circle, ID: id, X: cx, Y: cy, Radius: r, Color: c}
}

// NewRectangle returns a rectangle whose top left corner is (x, y).
func NewRectangle(id, x, y, w, h int, c ColorSpec) Shape {
	return Shape{Kind: Rectangle, ID: id, X: x, Y: y, Width: w, Height: h, Color: c}
}

// NewEllipse returns an axis aligned ellipse centered on (cx, cy).
func NewEllipse(id, cx, cy, rx, ry int, c ColorSpec) Shape {
	return Shape{Kind: Ellipse, ID: id, X: cx, Y: cy, RX: rx, RY: ry, Color: c}
}

// Markup returns the SVG element for the shape, on one line.
// An unsupported kind yields an empty string: the drawing
// then simply misses the element.
func (s Shape) Markup() string {
	fill := fmt.Sprintf(`fill="%s" fill-opacity="%s"`, s.Color.RGB(), s.Color.OpacityString())
	switch s.Kind {
	case Circle:
		return fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" %s></circle>`, s.X, s.Y, s.Radius, fill)
	case Rectangle:
		return fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" %s></rect>`, s.X, s.Y, s.Width, s.Height, fill)
	case Ellipse:
		return fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" %s></ellipse>`, s.X, s.Y, s.RX, s.RY, fill)
	default:
		return ""
	}
}

// Line returns the markup indented at `level`, terminated by a newline.
func (s Shape) Line(level int) string {
	return Indent(level) + s.Markup() + "\n"
}
