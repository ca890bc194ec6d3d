// Implements a PDF backend to render art canvases,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"
	"os"

	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/jung-kurt/gofpdf"
)

// Renderer paints shapes on the current page of a PDF.
// Coordinates are used as is: the page unit should be the point
// and the origin the top left corner, as in SVG.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// DrawShape fills one shape. Unsupported kinds are not drawn.
func (r Renderer) DrawShape(s svgshape.Shape) {
	x, y := float64(s.X), float64(s.Y)
	switch s.Kind {
	case svgshape.Circle, svgshape.Rectangle, svgshape.Ellipse:
	default:
		return
	}
	r.pdf.SetFillColor(s.Color.Red, s.Color.Green, s.Color.Blue)
	r.pdf.SetAlpha(s.Color.Opacity, "Normal")
	switch s.Kind {
	case svgshape.Circle:
		r.pdf.Circle(x, y, float64(s.Radius), "F")
	case svgshape.Rectangle:
		r.pdf.Rect(x, y, float64(s.Width), float64(s.Height), "F")
	case svgshape.Ellipse:
		r.pdf.Ellipse(x, y, float64(s.RX), float64(s.RY), 0, "F")
	}
}

// NewPage returns a one page document with the size of the canvas,
// expressed in points.
func NewPage(c *svgdoc.Canvas, title string) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(c.Width), Ht: float64(c.Height)},
	})
	pdf.SetTitle(title, true)
	pdf.SetCreator("svgart", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// Export renders the canvas shapes, in order, as a PDF written to `w`.
func Export(w io.Writer, c *svgdoc.Canvas, title string) error {
	pdf := NewPage(c, title)
	r := NewRenderer(pdf)
	for _, s := range c.Shapes() {
		r.DrawShape(s)
	}
	return pdf.Output(w)
}

// WritePDFFile is the same as Export, into the named file.
func WritePDFFile(path string, c *svgdoc.Canvas, title string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if errC := f.Close(); err == nil {
			err = errC
		}
	}()
	return Export(f, c, title)
}
