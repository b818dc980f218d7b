package chart

import (
	"gonum.org/v1/plot/plotter"
)

// Grid adapts a matrix indexed [row][column] to plotter.GridXYZ. Rows run
// along Y at the RowPos coordinates and columns along X at ColPos.
type Grid struct {
	ColPos []float64
	RowPos []float64
	Values [][]float64
}

// Dims implements plotter.GridXYZ.
func (g Grid) Dims() (c, r int) { return len(g.ColPos), len(g.RowPos) }

// Z implements plotter.GridXYZ.
func (g Grid) Z(c, r int) float64 { return g.Values[r][c] }

// X implements plotter.GridXYZ.
func (g Grid) X(c int) float64 { return g.ColPos[c] }

// Y implements plotter.GridXYZ.
func (g Grid) Y(r int) float64 { return g.RowPos[r] }

// NewHeatMap returns a heat map of g colored by the named scale. A constant
// grid maps to the lowest color.
func NewHeatMap(g Grid, scale string) (*plotter.HeatMap, error) {
	p, err := ColorScale(scale, 256)
	if err != nil {
		return nil, err
	}
	h := plotter.NewHeatMap(g, p)
	if !(h.Max > h.Min) {
		h.Max = h.Min + 1
	}
	return h, nil
}
