package chart

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyles lists the accepted dash pattern names.
var LineStyles = []string{"solid", "dash", "dot", "dashdot"}

// Dashes returns the dash pattern for a line style name scaled to width.
func Dashes(name string, width vg.Length) []vg.Length {
	u := width
	if u < vg.Points(1) {
		u = vg.Points(1)
	}
	switch name {
	case "dash":
		return []vg.Length{5 * u, 3 * u}
	case "dot":
		return []vg.Length{u, 2 * u}
	case "dashdot":
		return []vg.Length{5 * u, 2 * u, u, 2 * u}
	default:
		return nil
	}
}

// LineStyle builds a stroke style from the command-line values: a color
// string (empty selects the i-th default color), a width in pixels and a
// dash name.
func LineStyle(col string, i int, width float64, dash string) (draw.LineStyle, error) {
	c, err := ColorOr(col, i)
	if err != nil {
		return draw.LineStyle{}, err
	}
	w := Px(width)
	return draw.LineStyle{Color: c, Width: w, Dashes: Dashes(dash, w)}, nil
}

// ParseColor parses #RGB, #RRGGBB, #RRGGBBAA or a CSS color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, Usagef("Invalid color %s", s)
}

func parseHex(s string) (color.Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, Usagef("Invalid color %s", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, Usagef("Invalid color %s", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorOr parses s, or returns the i-th default color when s is empty.
func ColorOr(s string, i int) (color.Color, error) {
	if s == "" {
		return plotutil.Color(i), nil
	}
	return ParseColor(s)
}
