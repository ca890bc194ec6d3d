// Implements a raster backend to render art canvases,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Renderer paints shapes on a destination image.
type Renderer struct {
	filler *rasterx.Filler
}

// NewRenderer returns a renderer drawing on `dst`, through
// a rasterx.ScannerGV covering the whole image.
func NewRenderer(dst draw.Image) *Renderer {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	return &Renderer{filler: rasterx.NewFiller(w, h, scanner)}
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// addRect adds the outline of an axis aligned rectangle
func (rd *Renderer) addRect(x, y, w, h float64) {
	rd.filler.Start(fToFixed(x, y))
	rd.filler.Line(fToFixed(x+w, y))
	rd.filler.Line(fToFixed(x+w, y+h))
	rd.filler.Line(fToFixed(x, y+h))
	rd.filler.Stop(true)
}

// DrawShape fills one shape. Unsupported kinds,
// as well as empty shapes, are not drawn.
func (rd *Renderer) DrawShape(s svgshape.Shape) {
	rd.filler.Clear()
	x, y := float64(s.X), float64(s.Y)
	switch s.Kind {
	case svgshape.Circle:
		if s.Radius <= 0 {
			return
		}
		rasterx.AddEllipse(x, y, float64(s.Radius), float64(s.Radius), 0, rd.filler)
	case svgshape.Ellipse:
		if s.RX <= 0 || s.RY <= 0 {
			return
		}
		rasterx.AddEllipse(x, y, float64(s.RX), float64(s.RY), 0, rd.filler)
	case svgshape.Rectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return
		}
		rd.addRect(x, y, float64(s.Width), float64(s.Height))
	default:
		return
	}
	rd.filler.SetColor(s.Color.NRGBA())
	rd.filler.Draw()
}

// RasterCanvas paints the canvas shapes, in order, over
// a `background` filled image of the canvas size.
// A nil background leaves the image transparent.
func RasterCanvas(c *svgdoc.Canvas, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	rd := NewRenderer(img)
	for _, s := range c.Shapes() {
		rd.DrawShape(s)
	}
	return img
}

// EncodePNG rasters the canvas on a white background
// and writes it as PNG.
func EncodePNG(w io.Writer, c *svgdoc.Canvas) error {
	return png.Encode(w, RasterCanvas(c, color.White))
}

// WritePNGFile is the same as EncodePNG, into the named file.
func WritePNGFile(path string, c *svgdoc.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if errC := f.Close(); err == nil {
			err = errC
		}
	}()
	return EncodePNG(f, c)
}
