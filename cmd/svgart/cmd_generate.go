package main

import (
	"fmt"
	"os"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgrand"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var defaultThemes = []string{"nature", "ocean", "sunset"}

var (
	genSeed    int64
	genOutDir  string
	genConfig  string
	genPNG     bool
	genPDF     bool
	demoOut    string
	demoPNG    bool
	demoPDF    bool
	tableCount int
	tableSeed  int64
	tableConf  string
)

// generateCmd renders random art documents
var generateCmd = &cobra.Command{
	Use:   "generate [theme...]",
	Short: "Render random art for the given themes",
	Long: `Renders one HTML document per theme, named after the theme.
Without argument, the nature, ocean and sunset themes are rendered.
With --config, the bounds are read from a YAML file instead.

Example:
  svgart generate ocean --seed 42 --png`,
	RunE: runGenerate,
}

// demoCmd renders the fixed demo layout
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the fixed demo layout (two rows of circles)",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

// tableCmd prints random shapes as a table
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print random shapes as a table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 for a time based seed)")
	generateCmd.Flags().StringVarP(&genOutDir, "out-dir", "o", ".", "output directory")
	generateCmd.Flags().StringVarP(&genConfig, "config", "c", "", "YAML configuration (replaces the themes)")
	generateCmd.Flags().BoolVar(&genPNG, "png", false, "also write a PNG rendition")
	generateCmd.Flags().BoolVar(&genPDF, "pdf", false, "also write a PDF rendition")

	demoCmd.Flags().StringVarP(&demoOut, "out", "o", "demo", "output path, without extension")
	demoCmd.Flags().BoolVar(&demoPNG, "png", false, "also write a PNG rendition")
	demoCmd.Flags().BoolVar(&demoPDF, "pdf", false, "also write a PDF rendition")

	tableCmd.Flags().IntVarP(&tableCount, "count", "n", -1, "number of shapes (default: shape_count of the configuration)")
	tableCmd.Flags().Int64Var(&tableSeed, "seed", 0, "random seed (0 for a time based seed)")
	tableCmd.Flags().StringVarP(&tableConf, "config", "c", "", "YAML configuration (default: classic theme)")
}

// loadConfigs resolves the configurations to render
func loadConfigs(path string, themes []string) ([]svgconfig.RangeConfig, error) {
	if path != "" {
		if len(themes) > 0 {
			return nil, fmt.Errorf("themes and --config are exclusive")
		}
		cfg, err := svgconfig.Load(path)
		if err != nil {
			return nil, err
		}
		return []svgconfig.RangeConfig{cfg}, nil
	}
	if len(themes) == 0 {
		themes = defaultThemes
	}
	out := make([]svgconfig.RangeConfig, len(themes))
	for i, name := range themes {
		cfg, err := svgconfig.Theme(name)
		if err != nil {
			return nil, err
		}
		out[i] = cfg
	}
	return out, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configs, err := loadConfigs(genConfig, args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// one source for every theme, so that a seed fixes the whole run
	g := svgrand.New(resolveSeed(genSeed))
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("theme %s: %w", cfg.Theme, err)
		}
		doc := svgdoc.GenerateArt(cfg, g)
		files, err := writeRenditions(doc, baseName(genOutDir, cfg.Theme), genPNG, genPDF)
		if err != nil {
			return err
		}
		logger.Info("Rendered theme",
			zap.String("theme", cfg.Theme),
			zap.Int("shapes", cfg.ShapeCount),
			zap.Strings("files", files))
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	files, err := writeRenditions(svgdoc.FixedDemo(), demoOut, demoPNG, demoPDF)
	if err != nil {
		return err
	}
	logger.Debug("Rendered demo", zap.Strings("files", files))
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg := svgconfig.Classic()
	if tableConf != "" {
		var err error
		if cfg, err = svgconfig.Load(tableConf); err != nil {
			return err
		}
	}
	count := tableCount
	if count < 0 {
		count = cfg.ShapeCount
	}
	logger.Debug("Printing table", zap.String("theme", cfg.Theme), zap.Int("count", count))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, svgshape.TableHeader)
	for _, s := range svgrand.New(resolveSeed(tableSeed)).Shapes(cfg, count) {
		fmt.Fprintln(out, s.TableRow())
	}
	return nil
}
