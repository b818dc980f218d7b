// Package tools implements the drawing commands. Each command is a Tool
// taking its arguments and environment and returning the exit status, so
// the cmd mains stay one line and the commands can be tested in-process.
package tools

import (
	"flag"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/dsp/core"
)

// Tool runs one drawing command.
type Tool func(args []string, env chart.Env) int

// All maps command names to their implementations.
var All = map[string]Tool{
	"fdrw":      Fdrw,
	"glogsp":    Glogsp,
	"gpolezero": Gpolezero,
	"grlogsp":   Grlogsp,
	"gseries":   Gseries,
	"gspecgram": Gspecgram,
	"gwave":     Gwave,
}

const defaultLineColor = "#636EFA"

// lineFlags are the -ls, -lc and -lw options.
type lineFlags struct {
	style *chart.Choice
	color *string
	width *float64
}

func addLineFlags(fs *flag.FlagSet, color string, width float64) *lineFlags {
	l := &lineFlags{style: chart.NewChoice("solid", chart.LineStyles...)}
	fs.Var(l.style, "ls", "line style (solid, dash, dot or dashdot)")
	l.color = fs.String("lc", color, "line color")
	l.width = fs.Float64("lw", width, "line width [px]")
	return l
}

// lineStyle returns the stroke for series i.
func (l *lineFlags) lineStyle(i int) (draw.LineStyle, error) {
	return chart.LineStyle(*l.color, i, *l.width, l.style.Value)
}

// markerFlags are the -ms, -mc, -mw, -mlc and -mlw options.
type markerFlags struct {
	symbol    *int
	color     *string
	size      *float64
	lineColor *string
	lineWidth *float64
}

func addMarkerFlags(fs *flag.FlagSet, symbol int, color string, size, lineWidth float64) *markerFlags {
	return &markerFlags{
		symbol:    fs.Int("ms", symbol, fmt.Sprintf("marker symbol (0-%d, 0 for none)", chart.NumSymbols-1)),
		color:     fs.String("mc", color, "marker color"),
		size:      fs.Float64("mw", size, "marker size [px]"),
		lineColor: fs.String("mlc", "midnightblue", "marker line color"),
		lineWidth: fs.Float64("mlw", lineWidth, "marker line width [px]"),
	}
}

// marker returns the marker for series i.
func (m *markerFlags) marker(i int) (chart.Marker, error) {
	mk := chart.Marker{Symbol: *m.symbol, Size: *m.size, LineWidth: *m.lineWidth}
	if err := mk.Validate(); err != nil {
		return chart.Marker{}, err
	}
	var err error
	if mk.Color, err = chart.ColorOr(*m.color, i); err != nil {
		return chart.Marker{}, err
	}
	if *m.lineColor != "" {
		if mk.LineColor, err = chart.ParseColor(*m.lineColor); err != nil {
			return chart.Marker{}, err
		}
	}
	return mk, nil
}

// span is a half-open index interval.
type span struct{ start, end int }

// screens splits n samples into count consecutive spans of per samples.
// When per is not positive each span gets n/count samples and the last
// one takes the remainder. Spans are clamped to n.
func screens(n, count, per int) ([]span, error) {
	if count < 1 {
		return nil, chart.Usagef("Number of screens must be positive")
	}
	auto := per <= 0
	if auto {
		per = n / count
	}

	out := make([]span, count)
	s := 0
	for i := range out {
		e := s + per
		if auto && i == count-1 {
			e = n
		}
		out[i] = span{start: min(s, n), end: min(e, n)}
		s = e
	}
	return out, nil
}

// selectRange returns data[start:end+1] with end < 0 meaning the last
// sample, clamped to the data.
func selectRange(data []float64, start, end int) ([]float64, error) {
	if start < 0 {
		return nil, chart.Usagef("Start point must be non-negative")
	}
	stop := len(data)
	if end >= 0 && end+1 < stop {
		stop = end + 1
	}
	if start >= stop {
		return nil, chart.Usagef("No data to draw")
	}
	return data[start:stop], nil
}

// arange returns start, start+1, ... of length n.
func arange(n int, start float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = start + float64(i)
	}
	return x
}

// linspace returns n evenly spaced values over [lo, hi].
func linspace(n int, lo, hi float64) []float64 {
	x := make([]float64, n)
	if n < 2 {
		for i := range x {
			x[i] = lo
		}
		return x
	}
	return floats.Span(x, lo, hi)
}

// symmetricLimits returns ±max|y| over the finite values, or false when
// there is no nonzero finite value.
func symmetricLimits(y []float64) (float64, float64, bool) {
	m := core.MaxAbs(finiteValues(y))
	if m == 0 {
		return 0, 0, false
	}
	return -m, m, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteValues(y []float64) []float64 {
	out := make([]float64, 0, len(y))
	for _, v := range y {
		if finite(v) {
			out = append(out, v)
		}
	}
	return out
}

// runs splits the points of x and y at NaN or infinite coordinates into
// the maximal finite runs between them.
func runs(x, y []float64) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i := range min(len(x), len(y)) {
		if !finite(x[i]) || !finite(y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// setRange fixes an axis range when r is set.
func setRange(a *plot.Axis, r *chart.Range) {
	if r != nil && r.IsSet {
		a.Min, a.Max = r.Min, r.Max
	}
}

// addGrid adds grid lines behind the data when on.
func addGrid(p *plot.Plot, on bool) {
	if on {
		p.Add(plotter.NewGrid())
	}
}

// gappedLine is a polyline that leaves a gap wherever a point is NaN or
// infinite.
type gappedLine struct {
	runs []plotter.XYs
	draw.LineStyle
}

// line returns a line through x and y, broken at non-finite points.
func line(x, y []float64, sty draw.LineStyle) *gappedLine {
	return &gappedLine{runs: runs(x, y), LineStyle: sty}
}

// Plot implements plot.Plotter.
func (g *gappedLine) Plot(c draw.Canvas, plt *plot.Plot) {
	for _, r := range g.runs {
		l := plotter.Line{XYs: r, LineStyle: g.LineStyle}
		l.Plot(c, plt)
	}
}

// DataRange implements plot.DataRanger.
func (g *gappedLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, r := range g.runs {
		x0, x1, y0, y1 := plotter.XYRange(r)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (g *gappedLine) Thumbnail(c *draw.Canvas) {
	l := plotter.Line{LineStyle: g.LineStyle}
	l.Thumbnail(c)
}

// scatter returns a marker plotter over x and y.
func scatter(x, y []float64, m chart.Marker) (*plotter.Scatter, error) {
	var pts plotter.XYs
	for _, r := range runs(x, y) {
		pts = append(pts, r...)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = m.GlyphStyle()
	return s, nil
}
