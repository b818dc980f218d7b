package tools

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/dsp/core"
)

// barSpan is the share of one x unit covered by a group of bars.
const barSpan = 0.8

// Fdrw draws general graphs: the input is cut into graphs of n samples,
// each shifted by a constant bias, drawn as lines, lines with markers or
// grouped bars.
func Fdrw(args []string, env chart.Env) int {
	p := chart.NewParser("fdrw", "draw a graph",
		chart.WithInput("input sequence"), chart.WithDataType(), chart.WithPipeRequired())
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	transpose := fs.Bool("t", false, "transpose axes")
	barMode := fs.Bool("b", false, "bar graph mode")
	n := fs.Int("n", 0, "number of samples per graph (default: all)")
	bias := fs.Float64("z", 0, "distance between graphs")
	xlim := p.Range("x", "x-axis limits: XMIN XMAX")
	ylim := p.Range("y", "y-axis limits: YMIN YMAX")
	xname := fs.String("xname", "", "x-axis title")
	yname := fs.String("yname", "", "y-axis title")
	names := fs.String("names", "", "comma-separated graph names for the legend")
	lf := addLineFlags(fs, "", 1)
	mf := addMarkerFlags(fs, 0, "", 6, 1)

	rep := p.Reporter(env)
	if err := p.Parse(args); err != nil {
		return rep.Fail(err)
	}

	data, err := p.ReadInput(env, 1)
	if err != nil {
		return rep.Fail(err)
	}
	if data.Len() == 0 {
		return rep.Fail(chart.Usagef("No data to draw"))
	}

	step := *n
	if step <= 0 {
		step = data.Len()
	}
	var legend []string
	if *names != "" {
		legend = strings.Split(*names, ",")
	}

	fig := chart.NewFigure(1, 1)
	panel := fig.Panel(0, 0)
	addGrid(panel, *grid)

	graphs := (data.Len() + step - 1) / step
	index := arange(step, 0)
	for i := 0; i < graphs; i++ {
		chunk := data.Slice(i*step, (i+1)*step).Data
		y := core.Offset(chunk, *bias*float64(i))
		x := index[:len(y)]

		var plotters []plot.Thumbnailer
		if *barMode {
			bars, err := fdrwBars(mf, x, y, i, graphs, *transpose)
			if err != nil {
				return rep.Fail(err)
			}
			panel.Add(bars)
			plotters = append(plotters, bars)
		} else {
			sty, err := lf.lineStyle(i)
			if err != nil {
				return rep.Fail(err)
			}
			got, err := fdrwLine(mf, sty, x, y, i, *transpose)
			if err != nil {
				return rep.Fail(err)
			}
			for _, pl := range got {
				panel.Add(pl)
				plotters = append(plotters, pl)
			}
		}

		if i < len(legend) && legend[i] != "" {
			panel.Legend.Add(legend[i], plotters...)
		}
	}

	if *transpose {
		panel.X.Label.Text, panel.Y.Label.Text = *yname, *xname
		setRange(&panel.X, ylim)
		setRange(&panel.Y, xlim)
	} else {
		panel.X.Label.Text, panel.Y.Label.Text = *xname, *yname
		setRange(&panel.X, xlim)
		setRange(&panel.Y, ylim)
	}

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}

// thumbPlotter is a plotter that can also appear in a legend.
type thumbPlotter interface {
	plot.Plotter
	plot.Thumbnailer
}

func fdrwLine(mf *markerFlags, sty draw.LineStyle, x, y []float64, i int, transpose bool) ([]thumbPlotter, error) {
	if transpose {
		x, y = y, x
	}
	out := []thumbPlotter{line(x, y, sty)}

	mk, err := mf.marker(i)
	if err != nil {
		return nil, err
	}
	if !mk.Visible() {
		return out, nil
	}
	if *mf.color == "" {
		mk.Color = sty.Color
	}
	s, err := scatter(x, y, mk)
	if err != nil {
		return nil, err
	}
	return append(out, s), nil
}

func fdrwBars(mf *markerFlags, x, y []float64, i, graphs int, transpose bool) (*chart.Bars, error) {
	col, err := chart.ColorOr(*mf.color, i)
	if err != nil {
		return nil, err
	}
	width := barSpan / float64(graphs)
	bars := chart.NewBars(x, y, width, col)
	bars.Offset = -barSpan/2 + width*(float64(i)+0.5)
	bars.Horizontal = transpose
	if *mf.lineColor != "" && *mf.lineWidth > 0 {
		lc, err := chart.ParseColor(*mf.lineColor)
		if err != nil {
			return nil, err
		}
		bars.LineStyle = draw.LineStyle{Color: lc, Width: chart.Px(*mf.lineWidth)}
	}
	return bars, nil
}
