package svgparse

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Matthew-Goosney/svgart/svgconfig"
	"github.com/Matthew-Goosney/svgart/svgdoc"
	"github.com/Matthew-Goosney/svgart/svgshape"
	"go.uber.org/zap"
)

var (
	errNestedSurface = errors.New("nested svg elements are not supported")
	errBadColor      = errors.New("invalid fill color")
)

// docCursor is used while parsing documents
type docCursor struct {
	drawing     *Drawing
	canvas      *svgdoc.Canvas // current drawing surface, nil outside of it
	inTitleText bool
	errorMode   ErrorMode
}

type elementFunc func(c *docCursor, attrs []xml.Attr) error

// shapeFuncs are only valid inside a drawing surface
var shapeFuncs = map[string]elementFunc{
	"circle":  circleF,
	"ellipse": ellipseF,
	"rect":    rectF,
}

func (c *docCursor) handleError(errStr string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		zap.L().Warn("skipping element", zap.String("reason", errStr))
	}
	return nil
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	switch se.Name.Local {
	case "title":
		if c.canvas == nil {
			c.inTitleText = true
			c.drawing.Title = ""
		}
		return nil
	case "svg":
		if c.canvas != nil {
			return errNestedSurface
		}
		return svgF(c, se.Attr)
	}
	if c.canvas == nil { // page structure: html, head, body...
		return nil
	}
	df, ok := shapeFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("element %s #%d: %w", se.Name.Local, c.canvas.Len(), err)
	}
	return nil
}

func (c *docCursor) readEndElement(se xml.EndElement) {
	switch se.Name.Local {
	case "title":
		c.inTitleText = false
	case "svg":
		c.canvas = nil
	}
}

// parseInt accepts integers, and rounds real values.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// parseFill reads rgb(r, g, b), #rrggbb or #rgb
func parseFill(v string) (r, g, b int, err error) {
	v = strings.TrimSpace(v)
	switch {
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		parts := strings.Split(v[4:len(v)-1], ",")
		if len(parts) != 3 {
			return 0, 0, 0, fmt.Errorf("%w: %q", errBadColor, v)
		}
		var rgb [3]int
		for i, p := range parts {
			rgb[i], err = strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return 0, 0, 0, fmt.Errorf("%w: %q", errBadColor, v)
			}
		}
		return rgb[0], rgb[1], rgb[2], nil
	case strings.HasPrefix(v, "#") && (len(v) == 7 || len(v) == 4):
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		n, errP := strconv.ParseUint(hex, 16, 32)
		if errP != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", errBadColor, v)
		}
		return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), nil
	}
	return 0, 0, 0, fmt.Errorf("%w: %q", errBadColor, v)
}

// readShape reads the attributes shared by every shape, storing
// the geometric ones by name in `geom`
func readShape(attrs []xml.Attr, geom map[string]*int) (svgshape.ColorSpec, error) {
	col := svgshape.ColorSpec{Opacity: 1}
	var err error
	for _, attr := range attrs {
		switch name := attr.Name.Local; name {
		case "fill":
			col.Red, col.Green, col.Blue, err = parseFill(attr.Value)
		case "fill-opacity":
			col.Opacity, err = strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		default:
			if ptr, ok := geom[name]; ok {
				*ptr, err = parseInt(attr.Value)
			}
		}
		if err != nil {
			return col, fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
		}
	}
	return col, nil
}

func svgF(c *docCursor, attrs []xml.Attr) error {
	var width, height int
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			width, err = parseInt(attr.Value)
		case "height":
			height, err = parseInt(attr.Value)
		}
		if err != nil {
			return fmt.Errorf("svg attribute %s: %w", attr.Name.Local, err)
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg size %dx%d: %w", width, height, svgconfig.ErrBadCanvas)
	}
	c.canvas = svgdoc.NewCanvas(width, height)
	c.drawing.Canvases = append(c.drawing.Canvases, c.canvas)
	return nil
}

func circleF(c *docCursor, attrs []xml.Attr) error {
	s := svgshape.Shape{Kind: svgshape.Circle, ID: c.canvas.Len()}
	var err error
	s.Color, err = readShape(attrs, map[string]*int{"cx": &s.X, "cy": &s.Y, "r": &s.Radius})
	if err != nil {
		return err
	}
	c.canvas.Add(s)
	return nil
}

func ellipseF(c *docCursor, attrs []xml.Attr) error {
	s := svgshape.Shape{Kind: svgshape.Ellipse, ID: c.canvas.Len()}
	var err error
	s.Color, err = readShape(attrs, map[string]*int{"cx": &s.X, "cy": &s.Y, "rx": &s.RX, "ry": &s.RY})
	if err != nil {
		return err
	}
	c.canvas.Add(s)
	return nil
}

func rectF(c *docCursor, attrs []xml.Attr) error {
	s := svgshape.Shape{Kind: svgshape.Rectangle, ID: c.canvas.Len()}
	var err error
	s.Color, err = readShape(attrs, map[string]*int{"x": &s.X, "y": &s.Y, "width": &s.Width, "height": &s.Height})
	if err != nil {
		return err
	}
	c.canvas.Add(s)
	return nil
}
