package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgrand"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkPDF(t *testing.T, data []byte) {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-1.")), "missing pdf header: %q", data[:min(len(data), 16)])
	assert.True(t, bytes.Contains(data, []byte("%%EOF")), "missing pdf trailer")
}

func TestExportThemes(t *testing.T) {
	for _, cfg := range []svgconfig.RangeConfig{svgconfig.Nature(), svgconfig.Ocean(), svgconfig.Sunset()} {
		canvas := svgdoc.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
		canvas.PopulateRandom(svgrand.New(4), cfg)

		var b bytes.Buffer
		require.NoError(t, Export(&b, canvas, "Random Art - "+cfg.Theme), cfg.Theme)
		checkPDF(t, b.Bytes())
	}
}

func TestExportFixedDemo(t *testing.T) {
	canvas := svgdoc.NewCanvas(500, 300)
	canvas.PopulateFixedDemo()
	canvas.Add(svgshape.Shape{Kind: svgshape.Kind(3)}) // skipped

	path := filepath.Join(t.TempDir(), "demo.pdf")
	require.NoError(t, WritePDFFile(path, canvas, svgdoc.DemoTitle))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	checkPDF(t, data)

	err = WritePDFFile(filepath.Join(t.TempDir(), "no", "demo.pdf"), canvas, "")
	assert.Error(t, err, "missing directory")
}

func TestPageSize(t *testing.T) {
	pdf := NewPage(svgdoc.NewCanvas(600, 400), "size")
	w, h := pdf.GetPageSize()
	assert.Equal(t, 600.0, w)
	assert.Equal(t, 400.0, h)

	r := NewRenderer(pdf)
	r.DrawShape(svgshape.NewEllipse(0, 300, 200, 50, 20, svgshape.NewColor(10, 20, 30, 0.4)))
	require.NoError(t, pdf.Error())
}
