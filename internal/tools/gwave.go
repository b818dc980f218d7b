package tools

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-draw/chart"
)

// Gwave draws a waveform as a line plot, optionally split over stacked
// screens.
func Gwave(args []string, env chart.Env) int {
	p := chart.NewParser("gwave", "draw a waveform", chart.WithInput("waveform"))
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	start := fs.Int("s", 0, "start point")
	end := fs.Int("e", -1, "end point (default: last sample)")
	perScreen := fs.Int("n", 0, "number of samples per screen (default: divide evenly)")
	count := fs.Int("i", 1, "number of screens")
	rate := fs.Float64("x", 0, "sampling rate [kHz] (default: time in samples)")
	ylim := p.Range("y", "y-axis limits: YMIN YMAX")
	xname := fs.String("xname", "", "x-axis title (default: Time [sample], or Time [sec] with -x)")
	lf := addLineFlags(fs, defaultLineColor, 2)

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
	title := *xname
	if *rate > 0 {
		floats.Scale(1/(*rate*1000), x)
		if title == "" {
			title = "Time [sec]"
		}
	}
	if title == "" {
		title = "Time [sample]"
	}

	spans, err := screens(len(y), *count, *perScreen)
	if err != nil {
		return rep.Fail(err)
	}
	sty, err := lf.lineStyle(0)
	if err != nil {
		return rep.Fail(err)
	}
	lo, hi, auto := symmetricLimits(y)

	fig := chart.NewFigure(len(spans), 1)
	for i, sp := range spans {
		panel := fig.Panel(i, 0)
		addGrid(panel, *grid)
		if sp.end > sp.start {
			panel.Add(line(x[sp.start:sp.end], y[sp.start:sp.end], sty))
		}
		if i == len(spans)-1 {
			panel.X.Label.Text = title
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
