package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments,
// resetting the flag values shared between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	genSeed, genOutDir, genConfig, genPNG, genPDF = 0, ".", "", false, false
	demoOut, demoPNG, demoPDF = "demo", false, false
	tableCount, tableSeed, tableConf = -1, 0, ""
	inspectTable, inspectStrict, convertCanvas, pdfBackend = false, false, 0, "gofpdf"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateDefaultThemes(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--seed", "5", "--out-dir", dir)
	require.NoError(t, err)

	for _, name := range []string{"nature", "ocean", "sunset"} {
		path := filepath.Join(dir, name+".html")
		assert.Contains(t, out, path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		cfg, _ := svgconfig.Theme(name)
		assert.Contains(t, string(content), "<title>Random Art - "+cfg.Theme+"</title>")
		assert.Equal(t, cfg.ShapeCount, strings.Count(string(content), "fill-opacity="))
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	_, err := execute(t, "generate", "ocean", "--seed", "77", "-o", dirA)
	require.NoError(t, err)
	_, err = execute(t, "generate", "ocean", "--seed", "77", "-o", dirB)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dirA, "ocean.html"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "ocean.html"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateRenditions(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "generate", "sunset", "--seed", "1", "-o", dir, "--png", "--pdf")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "sunset.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())

	data, err := os.ReadFile(filepath.Join(dir, "sunset.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGenerateFromConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "mono.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("theme: Mono Blue\nshape_count: 4\nshape_kinds: [rect]\n"), 0o644))

	_, err := execute(t, "generate", "--config", conf, "--seed", "3", "-o", dir)
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "mono_blue.html"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(content), "<rect "))

	_, err = execute(t, "generate", "ocean", "--config", conf)
	assert.Error(t, err)
}

func TestGenerateUnknownTheme(t *testing.T) {
	_, err := execute(t, "generate", "volcano", "-o", t.TempDir())
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	base := filepath.Join(t.TempDir(), "a41")
	_, err := execute(t, "demo", "--out", base)
	require.NoError(t, err)

	content, err := os.ReadFile(base + ".html")
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, svgdoc.FixedDemo().Render(&want))
	assert.Equal(t, want.String(), string(content))
}

func TestDemoRenditions(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "demo")
	_, err := execute(t, "demo", "--out", base, "--png")
	require.NoError(t, err)
	assert.FileExists(t, base+".png")
	assert.NoFileExists(t, base+".pdf")

	// demo flags do not leak into generate
	_, err = execute(t, "generate", "ocean", "--seed", "2", "-o", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ocean.html"))
	assert.NoFileExists(t, filepath.Join(dir, "ocean.png"))
}

func TestCanvasAt(t *testing.T) {
	first, second := svgdoc.NewCanvas(10, 10), svgdoc.NewCanvas(20, 20)
	doc := svgdoc.NewDocument("two")
	doc.AddComponent(first, 1)
	doc.AddComponent(second, 1)

	got, err := canvasAt(doc.Components(), 1)
	require.NoError(t, err)
	assert.Same(t, second, got)
	_, err = canvasAt(doc.Components(), 2)
	assert.Error(t, err)
	_, err = canvasAt(doc.Components(), -1)
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table", "--seed", "8")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, svgshape.TableHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  0 "))

	out, err = execute(t, "table", "--seed", "8", "-n", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestInspectAndConvert(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "demo")
	_, err := execute(t, "demo", "--out", base)
	require.NoError(t, err)

	out, err := execute(t, "inspect", base+".html")
	require.NoError(t, err)
	assert.Contains(t, out, "Title: "+svgdoc.DemoTitle)
	assert.Contains(t, out, "Canvas 0: 500x300, 10 shapes")
	assert.Contains(t, out, "Shape #9: Circle\n  Position: (450, 250)\n  Radius: 50\n")

	out, err = execute(t, "inspect", "--table", base+".html")
	require.NoError(t, err)
	assert.Contains(t, out, svgshape.TableHeader)

	_, err = execute(t, "convert", base+".html", filepath.Join(dir, "copy.html"))
	require.NoError(t, err)
	orig, _ := os.ReadFile(base + ".html")
	copied, err := os.ReadFile(filepath.Join(dir, "copy.html"))
	require.NoError(t, err)
	assert.Equal(t, orig, copied)

	_, err = execute(t, "convert", base+".html", filepath.Join(dir, "demo.png"))
	require.NoError(t, err)
	_, err = execute(t, "convert", base+".html", filepath.Join(dir, "demo.pdf"))
	require.NoError(t, err)

	_, err = execute(t, "convert", "--pdf-backend", "alt", base+".html", filepath.Join(dir, "demo-alt.pdf"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "demo-alt.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	_, err = execute(t, "convert", "--pdf-backend", "cairo", base+".html", filepath.Join(dir, "demo-x.pdf"))
	assert.Error(t, err)

	_, err = execute(t, "convert", base+".html", filepath.Join(dir, "demo.gif"))
	assert.Error(t, err)
	_, err = execute(t, "convert", "--canvas", "3", base+".html", filepath.Join(dir, "demo.png"))
	assert.Error(t, err)
	_, err = execute(t, "inspect", filepath.Join(dir, "missing.html"))
	assert.Error(t, err)
}
