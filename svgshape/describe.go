package svgshape

import (
	"fmt"
	"strings"
)

// TableHeader is the header line matching TableRow.
const TableHeader = "CNT SHA   X   Y RAD  RX  RY   W   H   R   G   B  OP"

// String returns a readable, multi-line description of the shape.
func (s Shape) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape #%d: %s\n", s.ID, s.Kind)
	fmt.Fprintf(&b, "  Position: (%d, %d)\n", s.X, s.Y)
	switch s.Kind {
	case Circle:
		fmt.Fprintf(&b, "  Radius: %d\n", s.Radius)
	case Rectangle:
		fmt.Fprintf(&b, "  Size: %d x %d\n", s.Width, s.Height)
	case Ellipse:
		fmt.Fprintf(&b, "  Radii: %d x %d\n", s.RX, s.RY)
	}
	fmt.Fprintf(&b, "  Color: RGB(%d, %d, %d), Opacity: %s\n",
		s.Color.Red, s.Color.Green, s.Color.Blue, s.Color.OpacityString())
	return b.String()
}

// TableRow lists every attribute, including the unused extents,
// in fixed width columns.
func (s Shape) TableRow() string {
	return fmt.Sprintf("%3d %3d %3d %3d %3d %3d %3d %3d %3d %3d %3d %3d %3.1f",
		s.ID, int(s.Kind), s.X, s.Y, s.Radius, s.RX, s.RY, s.Width, s.Height,
		s.Color.Red, s.Color.Green, s.Color.Blue, s.Color.Opacity)
}
