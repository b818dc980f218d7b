package tools

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-draw/chart"
)

// manyPoints is the point count above which gseries warns about render
// time.
const manyPoints = 100000

// Gseries draws a discrete series as stems topped with markers.
func Gseries(args []string, env chart.Env) int {
	p := chart.NewParser("gseries", "draw a discrete series",
		chart.WithInput("discrete series"), chart.WithDataType())
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	start := fs.Int("s", 0, "start point")
	end := fs.Int("e", -1, "end point (default: last sample)")
	perScreen := fs.Int("n", 0, "number of samples per screen (default: divide evenly)")
	count := fs.Int("i", 1, "number of screens")
	transpose := fs.Bool("t", false, "align screens horizontally instead of vertically (valid with -i)")
	reset := fs.Bool("r", false, "do not succeed time across screens (valid with -i)")
	rate := fs.Float64("x", 0, "sampling rate [kHz] (default: time in samples)")
	ylim := p.Range("y", "y-axis limits: YMIN YMAX")
	stemColor := fs.String("lc", defaultLineColor, "line color")
	stemWidth := fs.Float64("lw", 0.02, "line width [samples]")
	mf := addMarkerFlags(fs, 1, defaultLineColor, 6, 0)

	rep := p.Reporter(env)
	if err := p.Parse(args); err != nil {
		return rep.Fail(err)
	}

	data, err := p.ReadInput(env, 1)
	if err != nil {
		return rep.Fail(err)
	}
	y, err := selectRange(data.Data, *start, *end)
	if err != nil {
		return rep.Fail(err)
	}

	x := arange(len(y), float64(*start))
	width := *stemWidth
	xname := "Time [samples]"
	if *rate > 0 {
		floats.Scale(1/(*rate*1000), x)
		width /= *rate * 1000
		xname = "Time [sec]"
	}

	if len(y) > manyPoints {
		rep.Warn("Too many data points. This takes a long time.")
	}

	spans, err := screens(len(y), *count, *perScreen)
	if err != nil {
		return rep.Fail(err)
	}
	col, err := chart.ParseColor(*stemColor)
	if err != nil {
		return rep.Fail(err)
	}
	mk, err := mf.marker(0)
	if err != nil {
		return rep.Fail(err)
	}
	lo, hi, auto := symmetricLimits(y)

	rows, cols := len(spans), 1
	if *transpose {
		rows, cols = 1, len(spans)
	}
	fig := chart.NewFigure(rows, cols)
	for i, sp := range spans {
		panel := fig.Panel(0, i)
		if !*transpose {
			panel = fig.Panel(i, 0)
		}
		addGrid(panel, *grid)

		ys := y[sp.start:sp.end]
		xs := x[sp.start:sp.end]
		if *reset {
			xs = x[:sp.end-sp.start]
		}
		if len(ys) > 0 {
			panel.Add(chart.NewBars(xs, ys, width, col))
			if mk.Visible() {
				s, err := scatter(xs, ys, mk)
				if err != nil {
					return rep.Fail(err)
				}
				panel.Add(s)
			}
		}

		if *transpose || i == len(spans)-1 {
			panel.X.Label.Text = xname
		}
		if ylim.IsSet {
			setRange(&panel.Y, ylim)
		} else if auto {
			panel.Y.Min, panel.Y.Max = lo, hi
		}
	}

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}
