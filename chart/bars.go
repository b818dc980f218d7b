package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars draws one bar per point from Base to the value, skipping NaN and
// infinite points. Unlike
// plotter.BarChart, positions and widths are in data units, so bars can
// be as thin as stems.
type Bars struct {
	// Pos holds the bar centres along the category axis.
	Pos []float64
	// Val holds the bar ends along the value axis.
	Val []float64
	// Width is the bar width in data units.
	Width float64
	// Offset shifts every bar along the category axis.
	Offset float64
	// Base is where bars start on the value axis.
	Base float64
	// Horizontal puts the category axis on Y.
	Horizontal bool

	Color     color.Color
	LineStyle draw.LineStyle
}

// NewBars returns bars at pos with heights val. The slices are used
// directly and must have equal lengths.
func NewBars(pos, val []float64, width float64, col color.Color) *Bars {
	return &Bars{Pos: pos, Val: val, Width: width, Color: col}
}

// Plot implements plot.Plotter.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := b.Width / 2

	for i, v := range b.Val {
		if i >= len(b.Pos) {
			break
		}
		if !finite(v) || !finite(b.Pos[i]) {
			continue
		}
		p0 := b.Pos[i] + b.Offset - half
		p1 := b.Pos[i] + b.Offset + half

		var pts []vg.Point
		if b.Horizontal {
			pts = rect(trX(b.Base), trX(v), trY(p0), trY(p1))
		} else {
			pts = rect(trX(p0), trX(p1), trY(b.Base), trY(v))
		}

		if b.Color != nil {
			c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
		}
		if b.LineStyle.Width > 0 && b.LineStyle.Color != nil {
			outline := append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesXY(outline)...)
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func rect(x0, x1, y0, y1 vg.Length) []vg.Point {
	return []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
}

// DataRange implements plot.DataRanger.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	pmin, pmax := math.Inf(1), math.Inf(-1)
	vmin, vmax := b.Base, b.Base
	for i, v := range b.Val {
		if i >= len(b.Pos) {
			break
		}
		if !finite(v) || !finite(b.Pos[i]) {
			continue
		}
		pmin = math.Min(pmin, b.Pos[i]+b.Offset-b.Width/2)
		pmax = math.Max(pmax, b.Pos[i]+b.Offset+b.Width/2)
		vmin = math.Min(vmin, v)
		vmax = math.Max(vmax, v)
	}
	if math.IsInf(pmin, 1) {
		pmin, pmax = 0, 0
	}
	if b.Horizontal {
		return vmin, vmax, pmin, pmax
	}
	return pmin, pmax, vmin, vmax
}

// Thumbnail implements plot.Thumbnailer.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := rect(c.Min.X, c.Max.X, c.Min.Y, c.Max.Y)
	if b.Color != nil {
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))
	}
	if b.LineStyle.Width > 0 && b.LineStyle.Color != nil {
		c.StrokeLines(b.LineStyle, c.ClipLinesY(append(pts, pts[0]))...)
	}
}
