package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgparse"
	"github.com/Matthew-Goosney/svgart/svgpdf"
	"github.com/Matthew-Goosney/svgart/svgpdf/alt"
	"github.com/Matthew-Goosney/svgart/svgraster"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inspectTable  bool
	inspectStrict bool
	convertCanvas int
	pdfBackend    string
)

// inspectCmd describes the shapes of a rendered document
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Describe the shapes of a rendered document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

// convertCmd converts a rendered document
var convertCmd = &cobra.Command{
	Use:   "convert [file] [output]",
	Short: "Convert a rendered document to PNG, PDF or HTML",
	Long: `Reads a rendered document and writes one of its canvases
in the format given by the extension of the output: .png, .pdf or .html.

Example:
  svgart convert nature.html nature.png`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectTable, "table", false, "print shapes as a table")
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "fail on unsupported elements")
	convertCmd.Flags().IntVar(&convertCanvas, "canvas", 0, "index of the canvas to convert")
	convertCmd.Flags().StringVar(&pdfBackend, "pdf-backend", "gofpdf", "PDF writer: gofpdf or alt")
}

func readDrawing(path string, strict bool) (*svgparse.Drawing, error) {
	mode := svgparse.WarnErrorMode
	if strict {
		mode = svgparse.StrictErrorMode
	}
	drawing, err := svgparse.ReadDocument(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Debug("Parsed document",
		zap.String("path", path),
		zap.String("title", drawing.Title),
		zap.Int("canvases", len(drawing.Canvases)))
	return drawing, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	drawing, err := readDrawing(args[0], inspectStrict)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title: %s\n", drawing.Title)
	for i, canvas := range drawing.Canvases {
		fmt.Fprintf(out, "Canvas %d: %dx%d, %d shapes\n", i, canvas.Width, canvas.Height, canvas.Len())
		if inspectTable {
			fmt.Fprintln(out, svgshape.TableHeader)
		}
		for _, s := range canvas.Shapes() {
			if inspectTable {
				fmt.Fprintln(out, s.TableRow())
			} else {
				fmt.Fprint(out, s.String())
			}
		}
	}
	return nil
}

// writePDF dispatches on --pdf-backend
func writePDF(path string, canvas *svgdoc.Canvas, title string) error {
	switch pdfBackend {
	case "gofpdf":
		return svgpdf.WritePDFFile(path, canvas, title)
	case "alt":
		return alt.WritePDFFile(path, canvas)
	default:
		return fmt.Errorf("unknown pdf backend %q (expected gofpdf or alt)", pdfBackend)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, output := args[0], args[1]
	drawing, err := readDrawing(in, false)
	if err != nil {
		return err
	}
	doc := drawing.Document()
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".html", ".htm":
		err = doc.WriteFile(output)
	case ".png", ".pdf":
		canvas, errC := canvasAt(doc.Components(), convertCanvas)
		if errC != nil {
			return errC
		}
		if ext == ".png" {
			err = svgraster.WritePNGFile(output, canvas)
		} else {
			err = writePDF(output, canvas, drawing.Title)
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Info("Converted document", zap.String("from", in), zap.String("to", output))
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
