package svgshape

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// ColorSpec is a fill color: RGB channels in [0, 255]
// and an opacity, usually in [0, 1].
type ColorSpec struct {
	Red, Green, Blue int
	Opacity          float64
}

// NewColor returns the color with the given channels and opacity.
func NewColor(r, g, b int, opacity float64) ColorSpec {
	return ColorSpec{Red: r, Green: g, Blue: b, Opacity: opacity}
}

// RGB returns the CSS functional notation used in the fill attribute,
// as in rgb(255, 0, 0).
func (c ColorSpec) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
}

// OpacityString formats the opacity with exactly one decimal.
func (c ColorSpec) OpacityString() string {
	return strconv.FormatFloat(c.Opacity, 'f', 1, 64)
}

// RoundOpacity rounds `op` to one decimal, agreeing with OpacityString
// on halfway cases such as 0.15 (stored as 0.1499...).
func RoundOpacity(op float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(op, 'f', 1, 64), 64)
	return v
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// NRGBA returns the color with the opacity folded into the alpha channel.
func (c ColorSpec) NRGBA() color.NRGBA {
	op := math.Max(0, math.Min(1, c.Opacity))
	return color.NRGBA{
		R: clampChannel(c.Red),
		G: clampChannel(c.Green),
		B: clampChannel(c.Blue),
		A: uint8(math.Round(op * 0xff)),
	}
}
