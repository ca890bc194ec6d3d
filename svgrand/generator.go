// Draws random shapes within the bounds of a svgconfig.RangeConfig.
// The random source is an explicit handle: seeding it fixes
// the whole drawing.
package svgrand

import (
	"math/rand"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgshape"
)

// Generator produces shapes from its own random source.
// It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a generator seeded with `seed`.
func New(seed int64) *Generator {
	return NewFromSource(rand.NewSource(seed))
}

// NewFromSource returns a generator reading from `src`.
func NewFromSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// intIn draws uniformly in [r.Min, r.Max]. An inverted range panics.
func (g *Generator) intIn(r svgconfig.IntRange) int {
	return r.Min + g.rnd.Intn(r.Max-r.Min+1)
}

func (g *Generator) floatIn(r svgconfig.FloatRange) float64 {
	return r.Min + g.rnd.Float64()*(r.Max-r.Min)
}

// Shape draws a shape whose kind is chosen uniformly in cfg.ShapeKinds.
// cfg.ShapeKinds must not be empty.
func (g *Generator) Shape(cfg svgconfig.RangeConfig, id int) svgshape.Shape {
	kind := cfg.ShapeKinds[g.rnd.Intn(len(cfg.ShapeKinds))]
	return g.ShapeOfKind(cfg, id, kind)
}

// ShapeOfKind draws a shape of the given kind.
// Every attribute is drawn, including the extents the kind does not use,
// so that the sequence of draws does not depend on the kind.
func (g *Generator) ShapeOfKind(cfg svgconfig.RangeConfig, id int, kind svgshape.Kind) svgshape.Shape {
	s := svgshape.Shape{Kind: kind, ID: id}
	s.X = g.intIn(cfg.X)
	s.Y = g.intIn(cfg.Y)
	s.Radius = g.intIn(cfg.Radius)
	s.RX = g.intIn(cfg.RX)
	s.RY = g.intIn(cfg.RY)
	s.Width = g.intIn(cfg.Width)
	s.Height = g.intIn(cfg.Height)
	s.Color.Red = g.intIn(cfg.Color.Red)
	s.Color.Green = g.intIn(cfg.Color.Green)
	s.Color.Blue = g.intIn(cfg.Color.Blue)
	s.Color.Opacity = svgshape.RoundOpacity(g.floatIn(cfg.Color.Opacity))
	return s
}

// Shapes draws `n` shapes numbered from 0.
func (g *Generator) Shapes(cfg svgconfig.RangeConfig, n int) []svgshape.Shape {
	out := make([]svgshape.Shape, n)
	for i := range out {
		out[i] = g.Shape(cfg, i)
	}
	return out
}
