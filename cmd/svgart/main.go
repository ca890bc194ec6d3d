package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgpdf"
	"github.com/Matthew-Goosney/svgart/svgraster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "svgart",
	Short: "svgart - random SVG art generator",
	Long: `svgart draws circles, rectangles and ellipses on an SVG canvas
embedded in an HTML page. Shapes are drawn at random within the bounds
of a theme (or a YAML configuration), or laid out in a fixed demo pattern.

The drawings may also be exported as PNG or PDF.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd, demoCmd, tableCmd, inspectCmd, convertCmd)
}

// resolveSeed replaces the zero seed by a time based one
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	seed = time.Now().UnixNano()
	logger.Info("Using time based seed", zap.Int64("seed", seed))
	return seed
}

// writeRenditions writes the document as `base`.html, and its first canvas
// as `base`.png and `base`.pdf when asked to.
func writeRenditions(doc *svgdoc.Document, base string, withPNG, withPDF bool) ([]string, error) {
	written := []string{base + ".html"}
	if err := doc.WriteFile(base + ".html"); err != nil {
		return nil, fmt.Errorf("failed to write html: %w", err)
	}
	if !withPNG && !withPDF {
		return written, nil
	}
	canvas, err := canvasAt(doc.Components(), 0)
	if err != nil {
		return written, err
	}
	if withPNG {
		if err := svgraster.WritePNGFile(base+".png", canvas); err != nil {
			return written, fmt.Errorf("failed to write png: %w", err)
		}
		written = append(written, base+".png")
	}
	if withPDF {
		if err := svgpdf.WritePDFFile(base+".pdf", canvas, doc.Title); err != nil {
			return written, fmt.Errorf("failed to write pdf: %w", err)
		}
		written = append(written, base+".pdf")
	}
	return written, nil
}

// canvasAt returns the index-th canvas among the components
func canvasAt(components []svgdoc.Component, index int) (*svgdoc.Canvas, error) {
	var canvases []*svgdoc.Canvas
	for _, c := range components {
		if canvas, ok := c.(*svgdoc.Canvas); ok {
			canvases = append(canvases, canvas)
		}
	}
	if index < 0 || index >= len(canvases) {
		return nil, fmt.Errorf("canvas %d not found (document has %d)", index, len(canvases))
	}
	return canvases[index], nil
}

func baseName(dir, name string) string {
	return filepath.Join(dir, strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_")))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
