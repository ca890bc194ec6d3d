// Defines the shapes drawn on an art canvas and
// how each of them is written as an SVG element.
// A Shape is a closed variant over Circle, Rectangle and Ellipse:
// the Kind selects which extents are meaningful.
package svgshape

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects the SVG element used for a shape.
type Kind uint8

const (
	Circle Kind = iota
	Rectangle
	Ellipse
)

// AllKinds lists the supported kinds, in their numeric order.
var AllKinds = []Kind{Circle, Rectangle, Ellipse}

func (k Kind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Rectangle:
		return "Rectangle"
	case Ellipse:
		return "Ellipse"
	default:
		return "Unknown"
	}
}

// IsValid returns true for the three supported kinds.
func (k Kind) IsValid() bool { return k <= Ellipse }

// ParseKind accepts the kind names, case insensitive,
// as well as the "rect" element name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "rectangle", "rect":
		return Rectangle, nil
	case "ellipse":
		return Ellipse, nil
	}
	return 0, fmt.Errorf("unsupported shape kind %q", s)
}

// MarshalYAML writes the lower case name of the kind.
func (k Kind) MarshalYAML() (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("unsupported shape kind %d", k)
	}
	return strings.ToLower(k.String()), nil
}

// UnmarshalYAML reads a kind name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
