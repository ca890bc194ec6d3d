// Alternative implementation of PDF rendering, writing
// the content stream directly with github.com/benoitkugler/pdf.
package alt

import (
	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

// control point distance for a quarter of circle, as a fraction of the radius
const kappa = 0.5522847498

// Renderer paints shapes on a content stream, in SVG coordinates:
// the caller is responsible for flipping the y axis (see NewPage).
type Renderer struct {
	pdf               *contentstream.Appearance
	fillOpacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{pdf: cs, fillOpacityStates: make(map[float64]*model.GraphicState)}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (r Renderer) moveTo(a fixed.Point26_6) {
	x, y := fixedTof(a)
	r.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
}

func (r Renderer) lineTo(b fixed.Point26_6) {
	x, y := fixedTof(b)
	r.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
}

func (r Renderer) cubeTo(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	r.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
}

// addEllipse writes an axis aligned ellipse as four cubic arcs
func (r Renderer) addEllipse(cx, cy, rx, ry float64) {
	kx, ky := kappa*rx, kappa*ry
	r.moveTo(fToFixed(cx+rx, cy))
	r.cubeTo(fToFixed(cx+rx, cy+ky), fToFixed(cx+kx, cy+ry), fToFixed(cx, cy+ry))
	r.cubeTo(fToFixed(cx-kx, cy+ry), fToFixed(cx-rx, cy+ky), fToFixed(cx-rx, cy))
	r.cubeTo(fToFixed(cx-rx, cy-ky), fToFixed(cx-kx, cy-ry), fToFixed(cx, cy-ry))
	r.cubeTo(fToFixed(cx+kx, cy-ry), fToFixed(cx+rx, cy-ky), fToFixed(cx+rx, cy))
	r.pdf.Ops(contentstream.OpClosePath{})
}

func (r Renderer) addRect(x, y, w, h float64) {
	r.moveTo(fToFixed(x, y))
	r.lineTo(fToFixed(x+w, y))
	r.lineTo(fToFixed(x+w, y+h))
	r.lineTo(fToFixed(x, y+h))
	r.pdf.Ops(contentstream.OpClosePath{})
}

// setFill selects the color and the opacity of the next fill
func (r Renderer) setFill(c svgshape.ColorSpec) {
	col := c.NRGBA()
	opacity := float64(col.A) / 255.
	col.A = 0xff
	r.pdf.SetColorFill(col)
	// cache the opacity states
	gs, ok := r.fillOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{Ca: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		r.fillOpacityStates[opacity] = gs
	}
	name := r.pdf.AddExtGState(gs)
	r.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

// DrawShape fills one shape. Unsupported kinds,
// as well as empty shapes, are not drawn.
func (r Renderer) DrawShape(s svgshape.Shape) {
	x, y := float64(s.X), float64(s.Y)
	switch s.Kind {
	case svgshape.Circle:
		if s.Radius <= 0 {
			return
		}
		r.setFill(s.Color)
		r.addEllipse(x, y, float64(s.Radius), float64(s.Radius))
	case svgshape.Ellipse:
		if s.RX <= 0 || s.RY <= 0 {
			return
		}
		r.setFill(s.Color)
		r.addEllipse(x, y, float64(s.RX), float64(s.RY))
	case svgshape.Rectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		r.setFill(s.Color)
		r.addRect(x, y, float64(s.Width), float64(s.Height))
	default:
		return
	}
	r.pdf.Ops(contentstream.OpFill{})
}

// NewPage paints the canvas shapes, in order, on a page
// of the canvas size, with the origin at the top left corner.
func NewPage(c *svgdoc.Canvas) *model.PageObject {
	w, h := float64(c.Width), float64(c.Height)
	pdf := contentstream.NewAppearance(w, h)
	renderer := NewRenderer(&pdf)
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, h}},
	)
	for _, s := range c.Shapes() {
		renderer.DrawShape(s)
	}
	pdf.Ops(contentstream.OpRestore{})
	var page model.PageObject
	pdf.ApplyToPageObject(&page, true)
	return &page
}

// WritePDFFile renders the canvases, one per page, into the named file.
func WritePDFFile(path string, canvases ...*svgdoc.Canvas) error {
	var doc model.Document
	for _, c := range canvases {
		doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, NewPage(c))
	}
	return doc.WriteFile(path, nil)
}
