package tools

import (
	"slices"

	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/dsp/core"
)

// Grlogsp draws a run of log spectra stacked with a constant offset, the
// value axis hidden.
func Grlogsp(args []string, env chart.Env) int {
	p := chart.NewParser("grlogsp", "draw running log spectrum", chart.WithInput("log spectrum"))
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	transpose := fs.Bool("t", false, "transpose axes")
	start := fs.Int("s", 0, "start frame number")
	end := fs.Int("e", -1, "end frame number (default: last frame)")
	length := fs.Int("l", 256, "FFT length")
	bias := fs.Float64("z", 20, "distance between spectra")
	sr := fs.Float64("x", 1, "sampling rate [kHz] (0 for radians, 1 for normalized frequency)")
	lf := addLineFlags(fs, defaultLineColor, 2)

	rep := p.Reporter(env)
	if err := p.Parse(args); err != nil {
		return rep.Fail(err)
	}

	dim, err := spectrumDim(*length)
	if err != nil {
		return rep.Fail(err)
	}
	data, err := p.ReadInput(env, dim)
	if err != nil {
		return rep.Fail(err)
	}
	if *start < 0 {
		return rep.Fail(chart.Usagef("Start frame must be non-negative"))
	}
	stop := data.Rows()
	if *end >= 0 && *end+1 < stop {
		stop = *end + 1
	}
	frames := data.Slice(*start, stop)
	if frames.Rows() == 0 {
		return rep.Fail(chart.Usagef("No data to draw"))
	}

	x := frequencies(dim, *sr)
	if *transpose {
		slices.Reverse(x)
	}
	sty, err := lf.lineStyle(0)
	if err != nil {
		return rep.Fail(err)
	}

	fig := chart.NewFigure(1, 1)
	panel := fig.Panel(0, 0)
	addGrid(panel, *grid)
	for i := 0; i < frames.Rows(); i++ {
		y := core.Offset(frames.Row(i), *bias*float64(i))
		xs, ys := x, y
		if *transpose {
			xs, ys = y, x
		}
		panel.Add(line(xs, ys, sty))
	}

	freq, value := &panel.X, &panel.Y
	if *transpose {
		freq, value = &panel.Y, &panel.X
	}
	frequencyAxis(freq, *sr, "Normalized frequency [rad]")
	freq.Min, freq.Max = x[0], x[len(x)-1]
	if freq.Min > freq.Max {
		freq.Min, freq.Max = freq.Max, freq.Min
		freq.Scale = plot.InvertedScale{Normalizer: freq.Scale}
	}
	hideValueAxis(value)

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}

// hideValueAxis drops the title, ticks and line of a but keeps its range.
func hideValueAxis(a *plot.Axis) {
	a.Label.Text = ""
	a.Tick.Marker = plot.ConstantTicks{}
	a.Tick.Length = 0
	a.LineStyle.Width = 0
	a.Padding = 0
}
