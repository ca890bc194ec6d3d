// Holds the bounds used to draw random shapes,
// the built-in theme presets, and their YAML form.
package svgconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/Matthew-Goosney/svgart/svgshape"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvertedRange = errors.New("range minimum is greater than its maximum")
	ErrNoShapeKinds  = errors.New("no shape kind to choose from")
	ErrBadCanvas     = errors.New("canvas dimensions must be positive")
	ErrShapeCount    = errors.New("shape count must not be negative")
)

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a closed real interval.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ColorRange bounds each color channel and the opacity.
type ColorRange struct {
	Red     IntRange   `yaml:"red"`
	Green   IntRange   `yaml:"green"`
	Blue    IntRange   `yaml:"blue"`
	Opacity FloatRange `yaml:"opacity"`
}

// CanvasSize is the size of the drawing surface.
type CanvasSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RangeConfig bundles every bound used to generate a drawing.
// It is built once and only read afterwards.
type RangeConfig struct {
	Theme      string     `yaml:"theme"`
	Canvas     CanvasSize `yaml:"canvas"`
	ShapeCount int        `yaml:"shape_count"`

	X      IntRange `yaml:"x"`
	Y      IntRange `yaml:"y"`
	Radius IntRange `yaml:"radius"`
	RX     IntRange `yaml:"rx"`
	RY     IntRange `yaml:"ry"`
	Width  IntRange `yaml:"width"`
	Height IntRange `yaml:"height"`

	Color ColorRange `yaml:"color"`

	ShapeKinds []svgshape.Kind `yaml:"shape_kinds"`
}

// Default returns the bounds used when nothing else is specified.
func Default() RangeConfig {
	return RangeConfig{
		Theme:      "Default",
		Canvas:     CanvasSize{600, 400},
		ShapeCount: 100,
		X:          IntRange{0, 600},
		Y:          IntRange{0, 400},
		Radius:     IntRange{5, 50},
		RX:         IntRange{10, 30},
		RY:         IntRange{10, 30},
		Width:      IntRange{10, 50},
		Height:     IntRange{10, 50},
		Color: ColorRange{
			Red:     IntRange{0, 255},
			Green:   IntRange{0, 255},
			Blue:    IntRange{0, 255},
			Opacity: FloatRange{0.1, 1.0},
		},
		ShapeKinds: []svgshape.Kind{svgshape.Circle, svgshape.Rectangle, svgshape.Ellipse},
	}
}

func (r IntRange) check(field string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s [%d, %d]: %w", field, r.Min, r.Max, ErrInvertedRange)
	}
	return nil
}

// Contains returns true if min <= v <= max.
func (r IntRange) Contains(v int) bool { return r.Min <= v && v <= r.Max }

// Contains returns true if min <= v <= max.
func (r FloatRange) Contains(v float64) bool { return r.Min <= v && v <= r.Max }

// Validate checks the invariants of the configuration.
// The generator itself never calls it.
func (cfg RangeConfig) Validate() error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", cfg.Canvas.Width, cfg.Canvas.Height, ErrBadCanvas)
	}
	if cfg.ShapeCount < 0 {
		return fmt.Errorf("shape_count %d: %w", cfg.ShapeCount, ErrShapeCount)
	}
	for _, f := range [...]struct {
		name string
		r    IntRange
	}{
		{"x", cfg.X}, {"y", cfg.Y},
		{"radius", cfg.Radius}, {"rx", cfg.RX}, {"ry", cfg.RY},
		{"width", cfg.Width}, {"height", cfg.Height},
		{"color.red", cfg.Color.Red}, {"color.green", cfg.Color.Green}, {"color.blue", cfg.Color.Blue},
	} {
		if err := f.r.check(f.name); err != nil {
			return err
		}
	}
	if op := cfg.Color.Opacity; op.Min > op.Max {
		return fmt.Errorf("color.opacity [%g, %g]: %w", op.Min, op.Max, ErrInvertedRange)
	}
	if len(cfg.ShapeKinds) == 0 {
		return ErrNoShapeKinds
	}
	for _, k := range cfg.ShapeKinds {
		if !k.IsValid() {
			return fmt.Errorf("shape_kinds: unsupported kind %d", k)
		}
	}
	return nil
}

// Load reads a YAML configuration. Keys missing from the file
// keep their Default value.
func Load(path string) (RangeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RangeConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse is the same as Load, for in-memory data.
func Parse(data []byte) (RangeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RangeConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RangeConfig{}, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (cfg RangeConfig) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
