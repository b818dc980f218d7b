package tools

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/dsp/core"
	"github.com/cwbudde/algo-draw/dsp/spectrum"
	"github.com/cwbudde/algo-draw/dsp/window"
)

// Gspecgram draws the spectrogram of a waveform as a heat map, optionally
// split over stacked screens.
func Gspecgram(args []string, env chart.Env) int {
	p := chart.NewParser("gspecgram", "draw a spectrogram", chart.WithInput("waveform"))
	fs := p.Flags
	start := fs.Int("s", 0, "start point")
	end := fs.Int("e", -1, "end point (default: last sample)")
	perScreen := fs.Int("n", 0, "number of samples per screen (default: divide evenly)")
	count := fs.Int("i", 1, "number of screens")
	sr := fs.Float64("y", 16, "sampling rate [kHz]")
	windowName := fs.String("w", "blackman", "window type ("+strings.Join(window.Names(), ", ")+")")
	length := fs.Int("l", 512, "window length")
	scale := fs.String("c", chart.DefaultColorScale, "color scale ("+strings.Join(chart.ColorScales(), ", ")+", append _r to reverse)")
	power := fs.Float64("p", 1, "power parameter to control visibility")

	rep := p.Reporter(env)
	if err := p.Parse(args); err != nil {
		return rep.Fail(err)
	}

	wt, err := window.Parse(*windowName)
	if err != nil {
		return rep.Fail(chart.Usagef("Unknown window type %s", *windowName))
	}
	if *sr <= 0 {
		return rep.Fail(chart.Usagef("Sampling rate must be positive"))
	}
	if *length <= 0 {
		return rep.Fail(chart.Usagef("Window length must be positive"))
	}
	if _, err := chart.ColorScale(*scale, 2); err != nil {
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
	spans, err := screens(len(y), *count, *perScreen)
	if err != nil {
		return rep.Fail(err)
	}

	cfg := spectrum.DefaultConfig()
	cfg.SampleRate = *sr
	cfg.Window = wt
	cfg.Length = *length

	fig := chart.NewFigure(len(spans), 1)
	for i, sp := range spans {
		if sp.end <= sp.start {
			return rep.Fail(chart.Usagef("Screen %d has no samples", i+1))
		}
		sg, err := spectrum.Compute(y[sp.start:sp.end], cfg)
		if err != nil {
			return rep.Fail(err)
		}

		// Time is in ms; shift by the screen offset and convert to seconds.
		t := append([]float64(nil), sg.Time...)
		floats.AddConst(float64(sp.start) / *sr, t)
		floats.Scale(0.001, t)

		hm, err := chart.NewHeatMap(chart.Grid{
			ColPos: t,
			RowPos: sg.Freq,
			Values: levels(sg.Power, *power),
		}, *scale)
		if err != nil {
			return rep.Fail(err)
		}

		panel := fig.Panel(i, 0)
		panel.Add(hm)
		panel.Y.Label.Text = "Frequency [kHz]"
		if i == len(spans)-1 {
			panel.X.Label.Text = "Time [sec]"
		}
	}

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}

// levels converts power to dB and, when p != 1, raises the dB values
// above their minimum to the power p.
func levels(pow [][]float64, p float64) [][]float64 {
	if len(pow) == 0 {
		return pow
	}
	cols := len(pow[0])
	flat := make([]float64, 0, len(pow)*cols)
	for _, row := range pow {
		flat = append(flat, row...)
	}
	core.PowerToDBFloor(flat, flat)

	if p != 1 {
		lo := floats.Min(flat)
		for i, v := range flat {
			flat[i] = math.Pow(v-lo, p)
		}
	}

	out := make([][]float64, len(pow))
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols]
	}
	return out
}
