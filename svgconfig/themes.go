package svgconfig

import (
	"fmt"
	"sort"
	"strings"
)

// Nature is a green and earth tone theme.
func Nature() RangeConfig {
	cfg := Default()
	cfg.Theme = "Nature"
	cfg.Canvas = CanvasSize{600, 400}
	cfg.ShapeCount = 200
	cfg.Radius = IntRange{5, 40}
	cfg.Color = ColorRange{
		Red:     IntRange{50, 150},
		Green:   IntRange{100, 255},
		Blue:    IntRange{20, 100},
		Opacity: FloatRange{0.3, 0.8},
	}
	return cfg
}

// Ocean is a blue theme.
func Ocean() RangeConfig {
	cfg := Default()
	cfg.Theme = "Ocean"
	cfg.Canvas = CanvasSize{600, 400}
	cfg.ShapeCount = 150
	cfg.Radius = IntRange{3, 30}
	cfg.Color = ColorRange{
		Red:     IntRange{0, 100},
		Green:   IntRange{50, 200},
		Blue:    IntRange{150, 255},
		Opacity: FloatRange{0.2, 0.9},
	}
	return cfg
}

// Sunset is a warm theme.
func Sunset() RangeConfig {
	cfg := Default()
	cfg.Theme = "Sunset"
	cfg.Canvas = CanvasSize{600, 400}
	cfg.ShapeCount = 120
	cfg.Radius = IntRange{10, 60}
	cfg.Color = ColorRange{
		Red:     IntRange{180, 255},
		Green:   IntRange{20, 180},
		Blue:    IntRange{0, 100},
		Opacity: FloatRange{0.4, 1.0},
	}
	return cfg
}

// Classic uses the wider bounds of the shape table printer,
// on a smaller canvas.
func Classic() RangeConfig {
	cfg := Default()
	cfg.Theme = "Classic"
	cfg.Canvas = CanvasSize{500, 300}
	cfg.ShapeCount = 10
	cfg.X = IntRange{0, 500}
	cfg.Y = IntRange{0, 300}
	cfg.Radius = IntRange{10, 100}
	cfg.Width = IntRange{10, 100}
	cfg.Height = IntRange{10, 100}
	return cfg
}

var themes = map[string]func() RangeConfig{
	"default": Default,
	"nature":  Nature,
	"ocean":   Ocean,
	"sunset":  Sunset,
	"classic": Classic,
}

// Theme returns the preset with the given name, case insensitive.
func Theme(name string) (RangeConfig, error) {
	fn, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RangeConfig{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return fn(), nil
}

// ThemeNames returns the lower case names accepted by Theme, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
