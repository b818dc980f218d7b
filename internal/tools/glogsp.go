package tools

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-draw/chart"
)

// spectrumDim returns the bins of a one-sided log spectrum of an FFT of
// length l.
func spectrumDim(l int) (int, error) {
	if l < 2 {
		return 0, chart.Usagef("FFT length must be at least 2")
	}
	return l/2 + 1, nil
}

// frequencies returns the bin frequencies: normalized [0, 1] when sr <= 0,
// otherwise [0, sr/2].
func frequencies(dim int, sr float64) []float64 {
	x := linspace(dim, 0, 1)
	if sr > 0 {
		floats.Scale(sr*0.5, x)
	}
	return x
}

// frequencyAxis labels a frequency axis for the sampling rate sr.
// radTitle names the normalized angular axis used when sr <= 0.
func frequencyAxis(a *plot.Axis, sr float64, radTitle string) {
	switch {
	case sr <= 0:
		a.Label.Text = radTitle
		a.Tick.Marker = plot.ConstantTicks([]plot.Tick{
			{Value: 0, Label: "0"},
			{Value: 0.5, Label: "π/2"},
			{Value: 1, Label: "π"},
		})
	case sr == 1:
		a.Label.Text = "Normalized frequency [cyc]"
	default:
		a.Label.Text = "Frequency [kHz]"
	}
}

// Glogsp draws one frame of a log amplitude spectrum.
func Glogsp(args []string, env chart.Env) int {
	p := chart.NewParser("glogsp", "draw a log spectrum", chart.WithInput("log spectrum"))
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	frame := fs.Int("s", 0, "frame number")
	length := fs.Int("l", 256, "FFT length")
	sr := fs.Float64("x", 1, "sampling rate [kHz] (0 for radians, 1 for normalized frequency)")
	ylim := p.Range("y", "y-axis limits: YMIN YMAX")
	lf := addLineFlags(fs, "", 2)

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
	if *frame < 0 || *frame >= data.Rows() {
		return rep.Fail(chart.Usagef("Frame %d is out of range (%d frames)", *frame, data.Rows()))
	}

	x := frequencies(dim, *sr)
	sty, err := lf.lineStyle(0)
	if err != nil {
		return rep.Fail(err)
	}

	fig := chart.NewFigure(1, 1)
	panel := fig.Panel(0, 0)
	addGrid(panel, *grid)
	panel.Add(line(x, data.Row(*frame), sty))
	frequencyAxis(&panel.X, *sr, "Frequency [rad]")
	panel.X.Min, panel.X.Max = x[0], x[len(x)-1]
	panel.Y.Label.Text = "Log amplitude [dB]"
	setRange(&panel.Y, ylim)

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}
