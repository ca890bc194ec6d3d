package svgdoc

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgrand"
)

// DemoTitle is the title of the document built by FixedDemo.
const DemoTitle = "Seng 265 Art! :D"

type entry struct {
	component Component
	level     int
}

// Document is an HTML page made of components, rendered in insertion order.
type Document struct {
	Title string

	entries []entry
}

// NewDocument returns an empty document.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// AddComponent appends `c`, to be rendered at the given indentation level.
func (d *Document) AddComponent(c Component, level int) {
	d.entries = append(d.entries, entry{component: c, level: level})
}

// Components returns the components, in rendering order.
func (d *Document) Components() []Component {
	out := make([]Component, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.component
	}
	return out
}

// Render writes the whole page to `w`.
// The first error returned by `w` aborts the rendering.
func (d *Document) Render(w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.line(0, "<html>")
	lw.line(0, "<head>")
	lw.line(1, "<title>"+d.Title+"</title>")
	lw.line(0, "</head>")
	lw.line(0, "<body>")
	if lw.err != nil {
		return lw.err
	}
	for _, e := range d.entries {
		if err := e.component.Render(w, e.level); err != nil {
			return err
		}
	}
	lw.line(0, "</body>")
	lw.line(0, "</html>")
	return lw.err
}

// WriteFile renders the document into the named file, which is
// created or truncated. The file is closed in every case; on failure
// its content is unspecified.
func (d *Document) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if errC := f.Close(); err == nil {
			err = errC
		}
	}()
	buf := bufio.NewWriter(f)
	if err = d.Render(buf); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return buf.Flush()
}

// GenerateArt returns a document holding one canvas
// populated with random shapes drawn from `cfg`.
func GenerateArt(cfg svgconfig.RangeConfig, g *svgrand.Generator) *Document {
	doc := NewDocument("Random Art - " + cfg.Theme)
	canvas := NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	canvas.PopulateRandom(g, cfg)
	doc.AddComponent(canvas, 1)
	return doc
}

// GenerateArtFile writes the result of GenerateArt to `path`.
func GenerateArtFile(cfg svgconfig.RangeConfig, g *svgrand.Generator, path string) error {
	return GenerateArt(cfg, g).WriteFile(path)
}

// FixedDemo returns a document with a 500x300 canvas
// holding the fixed demo layout.
func FixedDemo() *Document {
	doc := NewDocument(DemoTitle)
	canvas := NewCanvas(500, 300)
	canvas.PopulateFixedDemo()
	doc.AddComponent(canvas, 1)
	return doc
}
