package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type shape int

const (
	shapeNone shape = iota
	shapeCircle
	shapeSquare
	shapeTriangle
	shapeDiamond
	shapeX
	shapeCross
	shapeAsterisk
)

// lineOnly reports whether the shape has no interior.
func (s shape) lineOnly() bool {
	return s == shapeX || s == shapeCross || s == shapeAsterisk
}

type symbol struct {
	name  string
	shape shape
	open  bool
	dot   bool
	inner shape
}

var symbols = [...]symbol{
	{name: "none"},
	{name: "circle-open-dot", shape: shapeCircle, open: true, dot: true},
	{name: "x-open-dot", shape: shapeX, dot: true},
	{name: "square-open", shape: shapeSquare, open: true},
	{name: "triangle-up-open", shape: shapeTriangle, open: true},
	{name: "circle-open", shape: shapeCircle, open: true},
	{name: "diamond-open", shape: shapeDiamond, open: true},
	{name: "x-thin", shape: shapeX},
	{name: "cross-thin", shape: shapeCross},
	{name: "circle-x-open", shape: shapeCircle, open: true, inner: shapeX},
	{name: "circle-cross-open", shape: shapeCircle, open: true, inner: shapeCross},
	{name: "square", shape: shapeSquare},
	{name: "triangle-up", shape: shapeTriangle},
	{name: "circle", shape: shapeCircle},
	{name: "diamond", shape: shapeDiamond},
	{name: "asterisk", shape: shapeAsterisk},
}

// NumSymbols is the number of marker symbols; valid symbols are
// 0..NumSymbols-1 and 0 draws nothing.
const NumSymbols = len(symbols)

// SymbolName returns the name of marker symbol n.
func SymbolName(n int) string {
	if n < 0 || n >= NumSymbols {
		return ""
	}
	return symbols[n].name
}

// Marker describes the point markers of a series.
type Marker struct {
	Symbol int
	// Color fills closed shapes and strokes open ones.
	Color color.Color
	// Size is the marker diameter in pixels.
	Size float64
	// LineColor strokes line-only shapes and outlines filled ones.
	LineColor color.Color
	// LineWidth is in pixels; zero leaves filled shapes without outline.
	LineWidth float64
}

// Validate checks the symbol number.
func (m Marker) Validate() error {
	if m.Symbol < 0 || m.Symbol >= NumSymbols {
		return Usagef("Marker symbol must be in 0..%d", NumSymbols-1)
	}
	return nil
}

// Visible reports whether the marker draws anything.
func (m Marker) Visible() bool {
	return m.Symbol > 0 && m.Symbol < NumSymbols && m.Size > 0
}

// GlyphStyle returns the gonum glyph style drawing this marker.
func (m Marker) GlyphStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  m.Color,
		Radius: Px(m.Size) / 2,
		Shape: glyph{
			sym:       symbols[m.Symbol],
			lineColor: m.LineColor,
			lineWidth: Px(m.LineWidth),
		},
	}
}

type glyph struct {
	sym       symbol
	lineColor color.Color
	lineWidth vg.Length
}

// DrawGlyph implements draw.GlyphDrawer.
func (g glyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	if g.sym.shape == shapeNone || r <= 0 {
		return
	}

	width := g.lineWidth
	if width <= 0 {
		width = vg.Points(1)
	}

	switch {
	case g.sym.shape.lineOnly():
		col := g.lineColor
		if col == nil {
			col = sty.Color
		}
		c.SetLineStyle(draw.LineStyle{Color: col, Width: width})
		c.Stroke(linesPath(g.sym.shape, pt, r))
	case g.sym.open:
		c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: width})
		c.Stroke(outlinePath(g.sym.shape, pt, r))
		if g.sym.inner != shapeNone {
			c.Stroke(linesPath(g.sym.inner, pt, r))
		}
	default:
		p := outlinePath(g.sym.shape, pt, r)
		c.SetColor(sty.Color)
		c.Fill(p)
		if g.lineWidth > 0 && g.lineColor != nil {
			c.SetLineStyle(draw.LineStyle{Color: g.lineColor, Width: g.lineWidth})
			c.Stroke(p)
		}
	}

	if g.sym.dot {
		var p vg.Path
		d := r / 4
		p.Move(vg.Point{X: pt.X + d, Y: pt.Y})
		p.Arc(pt, d, 0, 2*math.Pi)
		p.Close()
		c.SetColor(sty.Color)
		c.Fill(p)
	}
}

func outlinePath(s shape, pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	switch s {
	case shapeSquare:
		h := r * 0.85
		p.Move(vg.Point{X: pt.X - h, Y: pt.Y - h})
		p.Line(vg.Point{X: pt.X + h, Y: pt.Y - h})
		p.Line(vg.Point{X: pt.X + h, Y: pt.Y + h})
		p.Line(vg.Point{X: pt.X - h, Y: pt.Y + h})
	case shapeTriangle:
		dx := r * vg.Length(math.Sqrt(3)/2)
		p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
		p.Line(vg.Point{X: pt.X - dx, Y: pt.Y - r/2})
		p.Line(vg.Point{X: pt.X + dx, Y: pt.Y - r/2})
	case shapeDiamond:
		p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
		p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
		p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	default:
		p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Arc(pt, r, 0, 2*math.Pi)
	}
	p.Close()
	return p
}

func linesPath(s shape, pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	diag := r * vg.Length(math.Sqrt2/2)
	if s == shapeX || s == shapeAsterisk {
		p.Move(vg.Point{X: pt.X - diag, Y: pt.Y - diag})
		p.Line(vg.Point{X: pt.X + diag, Y: pt.Y + diag})
		p.Move(vg.Point{X: pt.X - diag, Y: pt.Y + diag})
		p.Line(vg.Point{X: pt.X + diag, Y: pt.Y - diag})
	}
	if s == shapeCross || s == shapeAsterisk {
		p.Move(vg.Point{X: pt.X - r, Y: pt.Y})
		p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
		p.Line(vg.Point{X: pt.X, Y: pt.Y + r})
	}
	return p
}
