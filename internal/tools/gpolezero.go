package tools

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/polyroot"
)

const (
	symbolZero = 5 // circle-open
	symbolPole = 7 // x-thin

	circlePoints = 361
)

// Gpolezero draws zeros and poles on the complex plane together with the
// unit circle.
func Gpolezero(args []string, env chart.Env) int {
	p := chart.NewParser("gpolezero", "draw a pole-zero plot")
	fs := p.Flags
	grid := fs.Bool("g", false, "draw grid")
	format := fs.Int("q", 0, "input format (0: rectangular x+iy, 1: polar r, theta)")
	zeroFile := fs.String("z", "", "file of zeros")
	poleFile := fs.String("p", "", "file of poles")
	coeffs := fs.Bool("c", false, "files hold polynomial coefficients in descending powers instead of roots")
	xlim := p.Range("x", "x-axis limits: XMIN XMAX")
	ylim := p.Range("y", "y-axis limits: YMIN YMAX")
	mc := fs.String("mc", "", "marker color")
	mw := fs.Float64("mw", 10, "marker size [px]")
	mlc := fs.String("mlc", "midnightblue", "marker line color")
	mlw := fs.Float64("mlw", 1, "marker line width [px]")

	rep := p.Reporter(env)
	if err := p.Parse(args); err != nil {
		return rep.Fail(err)
	}
	if !*coeffs && *format != 0 && *format != 1 {
		return rep.Fail(chart.Usagef("Unexpected input format"))
	}
	squareByDefault(p)

	zeroMarker := chart.Marker{Symbol: symbolZero, Size: *mw}
	poleMarker := chart.Marker{Symbol: symbolPole, Size: *mw, LineWidth: *mlw}
	var err error
	if zeroMarker.Color, err = chart.ColorOr(*mc, 0); err != nil {
		return rep.Fail(err)
	}
	if poleMarker.Color, err = chart.ColorOr(*mc, 1); err != nil {
		return rep.Fail(err)
	}
	if poleMarker.LineColor, err = chart.ParseColor(*mlc); err != nil {
		return rep.Fail(err)
	}

	type layer struct {
		path   string
		marker chart.Marker
		xs, ys []float64
	}
	var layers []layer
	if *zeroFile != "" {
		layers = append(layers, layer{path: *zeroFile, marker: zeroMarker})
	}
	if *poleFile != "" {
		layers = append(layers, layer{path: *poleFile, marker: poleMarker})
	}
	if len(layers) == 0 {
		layers = append(layers, layer{marker: zeroMarker})
	}

	extent := 1.0
	for i := range layers {
		l := &layers[i]
		if *coeffs {
			l.xs, l.ys, err = readCoefficients(p, env, l.path)
		} else {
			l.xs, l.ys, err = readRoots(p, env, l.path, *format)
		}
		if err != nil {
			return rep.Fail(err)
		}
		for k := range l.xs {
			extent = math.Max(extent, math.Max(math.Abs(l.xs[k]), math.Abs(l.ys[k])))
		}
	}
	extent *= 1.1

	fig := chart.NewFigure(1, 1)
	panel := fig.Panel(0, 0)
	addGrid(panel, *grid)
	addAxesAndCircle(fig, extent)
	for _, l := range layers {
		if len(l.xs) == 0 {
			continue
		}
		s, err := scatter(l.xs, l.ys, l.marker)
		if err != nil {
			return rep.Fail(err)
		}
		panel.Add(s)
	}

	panel.X.Min, panel.X.Max = -extent, extent
	panel.Y.Min, panel.Y.Max = -extent, extent
	setRange(&panel.X, xlim)
	setRange(&panel.Y, ylim)

	if err := fig.Save(p.Options.OutFile, p.Options.Layout); err != nil {
		return rep.Fail(err)
	}
	return 0
}

// squareByDefault makes the image square unless a size was requested, so
// equal axis ranges give equal scales.
func squareByDefault(p *chart.Parser) {
	sized := false
	p.Flags.Visit(func(f *flag.Flag) {
		if f.Name == "W" || f.Name == "H" {
			sized = true
		}
	})
	if !sized {
		p.Options.Layout.Width = p.Options.Layout.Height
	}
}

// readRoots decodes (x, y) or (r, theta) pairs.
func readRoots(p *chart.Parser, env chart.Env, path string, format int) ([]float64, []float64, error) {
	data, err := p.ReadPath(env, path, 2)
	if err != nil {
		return nil, nil, err
	}
	a, b := data.Column(0), data.Column(1)
	if format == 0 {
		return a, b, nil
	}
	for i := range a {
		z := cmplx.Rect(a[i], b[i])
		a[i], b[i] = real(z), imag(z)
	}
	return a, b, nil
}

// readCoefficients decodes polynomial coefficients and returns the roots.
func readCoefficients(p *chart.Parser, env chart.Env, path string) ([]float64, []float64, error) {
	data, err := p.ReadPath(env, path, 1)
	if err != nil {
		return nil, nil, err
	}
	roots, err := polyroot.Roots(data.Data)
	if err != nil {
		name := path
		if name == "" {
			name = "standard input"
		}
		return nil, nil, fmt.Errorf("roots of %s: %w", name, err)
	}
	xs := make([]float64, len(roots))
	ys := make([]float64, len(roots))
	for i, r := range roots {
		xs[i], ys[i] = real(r), imag(r)
	}
	return xs, ys, nil
}

// addAxesAndCircle draws the real and imaginary axes and the unit circle.
func addAxesAndCircle(fig *chart.Figure, extent float64) {
	panel := fig.Panel(0, 0)

	axis := draw.LineStyle{Color: colornames.Gray, Width: chart.Px(1)}
	for _, seg := range [][2][]float64{
		{{-extent, extent}, {0, 0}},
		{{0, 0}, {-extent, extent}},
	} {
		panel.Add(line(seg[0], seg[1], axis))
	}

	theta := linspace(circlePoints, 0, 2*math.Pi)
	cx := make([]float64, circlePoints)
	cy := make([]float64, circlePoints)
	for i, t := range theta {
		cx[i], cy[i] = math.Cos(t), math.Sin(t)
	}
	panel.Add(line(cx, cy, draw.LineStyle{Color: colornames.Purple, Width: chart.Px(1.5)}))
}
