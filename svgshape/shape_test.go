package svgshape

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarkup(t *testing.T) {
	for _, tc := range []struct {
		shape Shape
		want  string
	}{
		{
			NewCircle(0, 100, 100, 20, NewColor(255, 0, 0, 0.5)),
			`<circle cx="100" cy="100" r="20" fill="rgb(255, 0, 0)" fill-opacity="0.5"></circle>`,
		},
		{
			NewRectangle(1, 10, 20, 30, 40, NewColor(0, 128, 255, 1)),
			`<rect x="10" y="20" width="30" height="40" fill="rgb(0, 128, 255)" fill-opacity="1.0"></rect>`,
		},
		{
			NewEllipse(2, 5, 6, 7, 8, NewColor(1, 2, 3, 0.1)),
			`<ellipse cx="5" cy="6" rx="7" ry="8" fill="rgb(1, 2, 3)" fill-opacity="0.1"></ellipse>`,
		},
	} {
		assert.Equal(t, tc.want, tc.shape.Markup(), tc.shape.Kind.String())
	}
}

func TestMarkupIgnoresOtherExtents(t *testing.T) {
	s := Shape{Kind: Circle, X: 1, Y: 2, Radius: 3, RX: 40, RY: 50, Width: 60, Height: 70, Color: NewColor(0, 0, 0, 1)}
	assert.Equal(t, `<circle cx="1" cy="2" r="3" fill="rgb(0, 0, 0)" fill-opacity="1.0"></circle>`, s.Markup())
}

func TestOpacityOneDecimal(t *testing.T) {
	for op, want := range map[float64]string{
		0.5:     "0.5",
		1:       "1.0",
		0.34999: "0.3",
		0.36:    "0.4",
		0.1:     "0.1",
	} {
		assert.Equal(t, want, NewColor(0, 0, 0, op).OpacityString())
	}
	assert.Equal(t, 0.4, RoundOpacity(0.4444))
	assert.Equal(t, 0.7, RoundOpacity(0.65001))
}

func TestRoundOpacityMatchesString(t *testing.T) {
	assert.Equal(t, 0.1, RoundOpacity(0.15))
	assert.Equal(t, 0.2, RoundOpacity(0.25))
	assert.Equal(t, 0.3, RoundOpacity(0.35))
	for i := 0; i <= 1000; i++ {
		op := float64(i) / 1000
		rounded := RoundOpacity(op)
		assert.Equal(t, NewColor(0, 0, 0, op).OpacityString(), NewColor(0, 0, 0, rounded).OpacityString(), "opacity %v", op)
	}
}

func TestUnsupportedKind(t *testing.T) {
	s := Shape{Kind: Kind(7), X: 1, Y: 1, Radius: 4}
	assert.Equal(t, "", s.Markup())
	assert.Equal(t, Indent(2)+"\n", s.Line(2))
	assert.Equal(t, "Unknown", s.Kind.String())
	assert.False(t, s.Kind.IsValid())
}

func TestLine(t *testing.T) {
	s := NewCircle(0, 100, 100, 20, NewColor(255, 0, 0, 0.5))
	assert.Equal(t, s.Markup()+"\n", s.Line(0))
	assert.Equal(t, "      "+s.Markup()+"\n", s.Line(2))
	assert.Equal(t, "", Indent(-1))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"circle": Circle, "Rectangle": Rectangle, "rect": Rectangle, " ELLIPSE ": Ellipse,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("triangle")
	assert.Error(t, err)
}

func TestKindYAML(t *testing.T) {
	out, err := yaml.Marshal([]Kind{Ellipse, Circle})
	require.NoError(t, err)
	assert.Equal(t, "- ellipse\n- circle\n", string(out))

	var kinds []Kind
	require.NoError(t, yaml.Unmarshal([]byte("[rect, circle]"), &kinds))
	assert.Equal(t, []Kind{Rectangle, Circle}, kinds)

	assert.Error(t, yaml.Unmarshal([]byte("[hexagon]"), &kinds))
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 10, B: 0, A: 255}, NewColor(300, 10, -4, 1).NRGBA())
	assert.Equal(t, uint8(128), NewColor(0, 0, 0, 0.5).NRGBA().A)
}

func TestDescribe(t *testing.T) {
	s := NewRectangle(3, 10, 20, 30, 40, NewColor(1, 2, 3, 0.7))
	want := "Shape #3: Rectangle\n" +
		"  Position: (10, 20)\n" +
		"  Size: 30 x 40\n" +
		"  Color: RGB(1, 2, 3), Opacity: 0.7\n"
	assert.Equal(t, want, s.String())

	e := NewEllipse(4, 1, 2, 3, 4, NewColor(0, 0, 0, 1))
	assert.Contains(t, e.String(), "  Radii: 3 x 4\n")
}

func TestTableRow(t *testing.T) {
	s := Shape{Kind: Ellipse, ID: 7, X: 120, Y: 45, Radius: 10, RX: 20, RY: 30, Width: 40, Height: 50,
		Color: NewColor(255, 0, 9, 0.3)}
	row := s.TableRow()
	assert.Equal(t, "  7   2 120  45  10  20  30  40  50 255   0   9 0.3", row)
	assert.Equal(t, len(TableHeader), len(row))
	assert.Equal(t, 13, len(strings.Fields(TableHeader)))
}
