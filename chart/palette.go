package chart

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColorScale is used when no color scale is named.
const DefaultColorScale = "Viridis"

// viridisStops are evenly spaced samples of the viridis map.
var viridisStops = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// brewerSize is the class count requested from ColorBrewer palettes.
const brewerSize = 9

// ColorScales lists the built-in scale names. ColorBrewer names such as
// YlOrRd or Blues are accepted as well, and a "_r" suffix reverses any
// scale.
func ColorScales() []string {
	return []string{"Viridis", "Heat", "Rainbow", "Kindlmann", "BlackBody", "BlueRed"}
}

// ColorScale returns n colors of the named scale.
func ColorScale(name string, n int) (palette.Palette, error) {
	if n < 2 {
		n = 2
	}
	base, reverse := strings.CutSuffix(name, "_r")

	var (
		p   palette.Palette
		err error
	)
	switch strings.ToLower(base) {
	case "viridis":
		p = interpolated(viridisStops, n)
	case "heat":
		p = palette.Heat(n, 1)
	case "rainbow":
		p = palette.Rainbow(n, palette.Blue, palette.Red, 1, 1, 1)
	case "kindlmann":
		p = mapPalette(moreland.Kindlmann(), n)
	case "blackbody":
		p = mapPalette(moreland.BlackBody(), n)
	case "bluered":
		p = mapPalette(moreland.SmoothBlueRed(), n)
	default:
		p, err = brewerPalette(base)
		if err != nil {
			return nil, Usagef("Unknown color scale %s", name)
		}
	}

	if reverse {
		src := p.Colors()
		rev := make(colors, len(src))
		for i, c := range src {
			rev[len(src)-1-i] = c
		}
		p = rev
	}
	return p, nil
}

func mapPalette(cm palette.ColorMap, n int) palette.Palette {
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(n)
}

// brewerPalette returns the largest available class count up to
// brewerSize.
func brewerPalette(name string) (palette.Palette, error) {
	var err error
	for n := brewerSize; n >= 3; n-- {
		var p palette.Palette
		p, err = brewer.GetPalette(brewer.TypeAny, name, n)
		if err == nil {
			return p, nil
		}
	}
	return nil, err
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// interpolated spreads n colors linearly across hex stops.
func interpolated(stops []string, n int) palette.Palette {
	rgb := make([]color.NRGBA, len(stops))
	for i, s := range stops {
		c, _ := parseHex(s)
		rgb[i] = c.(color.NRGBA)
	}

	out := make(colors, n)
	last := float64(len(rgb) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * last
		k := int(pos)
		if k >= len(rgb)-1 {
			out[i] = rgb[len(rgb)-1]
			continue
		}
		t := pos - float64(k)
		a, b := rgb[k], rgb[k+1]
		out[i] = color.NRGBA{
			R: lerp(a.R, b.R, t),
			G: lerp(a.G, b.G, t),
			B: lerp(a.B, b.B, t),
			A: 0xff,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
