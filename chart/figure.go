package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	defaultWidth    = 700
	defaultHeight   = 500
	defaultFontSize = 12

	// screenDPI maps layout pixels to physical length.
	screenDPI = 96
)

// Margin is the blank border around the figure in pixels.
type Margin struct {
	Left, Right, Top, Bottom int
}

// ParseMargin parses "m", "lr,tb" or "l,r,t,b".
func ParseMargin(s string) (Margin, error) {
	parts := strings.Split(s, ",")
	v := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Margin{}, fmt.Errorf("invalid margin %q", s)
		}
		if n < 0 {
			return Margin{}, fmt.Errorf("negative margin %q", s)
		}
		v[i] = n
	}

	switch len(v) {
	case 1:
		return Margin{Left: v[0], Right: v[0], Top: v[0], Bottom: v[0]}, nil
	case 2:
		return Margin{Left: v[0], Right: v[0], Top: v[1], Bottom: v[1]}, nil
	case 4:
		return Margin{Left: v[0], Right: v[1], Top: v[2], Bottom: v[3]}, nil
	default:
		return Margin{}, fmt.Errorf("margin needs 1, 2 or 4 values, got %d", len(v))
	}
}

// Layout controls the output image.
type Layout struct {
	// Scale multiplies the raster resolution.
	Scale float64
	// Width and Height are the figure size in pixels.
	Width, Height int
	// Margin, if non-nil, replaces the default padding.
	Margin *Margin
	// FontFamily is sans, serif or mono.
	FontFamily string
	// FontSize is in points.
	FontSize int
}

// DefaultLayout returns a 700x500 layout at scale 1.
func DefaultLayout() Layout {
	return Layout{
		Scale:      1,
		Width:      defaultWidth,
		Height:     defaultHeight,
		FontFamily: "sans",
		FontSize:   defaultFontSize,
	}
}

func (l Layout) validate() error {
	switch {
	case !(l.Scale > 0) || math.IsInf(l.Scale, 0):
		return Usagef("Scale must be positive")
	case l.Width <= 0 || l.Height <= 0:
		return Usagef("Image size must be positive")
	case l.FontSize <= 0:
		return Usagef("Font size must be positive")
	}
	if _, ok := fontVariants[strings.ToLower(l.FontFamily)]; !ok {
		return Usagef("Unknown font family %s", l.FontFamily)
	}
	return nil
}

var fontVariants = map[string]font.Variant{
	"sans":       "Sans",
	"sans-serif": "Sans",
	"arial":      "Sans",
	"helvetica":  "Sans",
	"serif":      "Serif",
	"times":      "Serif",
	"mono":       "Mono",
	"monospace":  "Mono",
	"courier":    "Mono",
}

// Font returns the font selected by the layout.
func (l Layout) Font() font.Font {
	return font.Font{
		Typeface: "Liberation",
		Variant:  fontVariants[strings.ToLower(l.FontFamily)],
		Size:     vg.Points(float64(l.FontSize)),
	}
}

// Px converts layout pixels to a vg length.
func Px(v float64) vg.Length {
	return vg.Length(v) * vg.Inch / screenDPI
}

// Figure is a grid of plot panels rendered into one image.
type Figure struct {
	Rows, Cols int
	panels     [][]*plot.Plot
}

// NewFigure returns a rows x cols grid of empty panels.
func NewFigure(rows, cols int) *Figure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	panels := make([][]*plot.Plot, rows)
	for i := range panels {
		panels[i] = make([]*plot.Plot, cols)
		for j := range panels[i] {
			panels[i][j] = plot.New()
		}
	}
	return &Figure{Rows: rows, Cols: cols, panels: panels}
}

// Panel returns the panel at row, col.
func (f *Figure) Panel(row, col int) *plot.Plot {
	return f.panels[row][col]
}

// Save renders the figure to path. The image format follows the file
// extension: png, jpg, jpeg, tif, tiff, svg, pdf or eps.
func (f *Figure) Save(path string, l Layout) error {
	if err := l.validate(); err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := newCanvas(format, l)
	if err != nil {
		return err
	}

	f.Render(draw.New(c), l)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := c.WriteTo(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// WriteTo renders the figure in format to w.
func (f *Figure) WriteTo(w io.Writer, format string, l Layout) error {
	c, err := newCanvas(strings.ToLower(format), l)
	if err != nil {
		return err
	}
	f.Render(draw.New(c), l)
	_, err = c.WriteTo(w)
	return err
}

// Render draws every panel onto dc, applying the layout fonts and margin.
func (f *Figure) Render(dc draw.Canvas, l Layout) {
	fnt := l.Font()
	for _, row := range f.panels {
		for _, p := range row {
			applyFont(p, fnt)
		}
	}

	if m := l.Margin; m != nil {
		dc = draw.Crop(dc,
			Px(float64(m.Left)), -Px(float64(m.Right)),
			Px(float64(m.Bottom)), -Px(float64(m.Top)))
	}

	tiles := draw.Tiles{
		Rows: f.Rows,
		Cols: f.Cols,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(f.panels, tiles, dc)
	for i, row := range f.panels {
		for j, p := range row {
			p.Draw(canvases[i][j])
		}
	}
}

func newCanvas(format string, l Layout) (vg.CanvasWriterTo, error) {
	w := Px(float64(l.Width))
	h := Px(float64(l.Height))

	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		dpi := int(math.Round(screenDPI * l.Scale))
		if dpi < 1 {
			dpi = 1
		}
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: img}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: img}, nil
		default:
			return vgimg.TiffCanvas{Canvas: img}, nil
		}
	case "svg", "pdf", "eps":
		return draw.NewFormattedCanvas(w, h, format)
	default:
		return nil, Usagef("Unsupported image format %q", format)
	}
}

func applyFont(p *plot.Plot, f font.Font) {
	title := f
	title.Size = f.Size * 1.2
	p.Title.TextStyle.Font = title
	p.X.Label.TextStyle.Font = f
	p.Y.Label.TextStyle.Font = f
	p.X.Tick.Label.Font = f
	p.Y.Tick.Label.Font = f
	p.Legend.TextStyle.Font = f
}
