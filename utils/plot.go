package utils

import (
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vizstat/histviz"
	"github.com/vizstat/histviz/dataset"
)

// HistogramFigure draws values with the stock histogram plotter and a fixed
// bin count, library defaults untouched. This is the "before" of every
// styled figure.
func HistogramFigure(v []float64, bins int, title string) (*plot.Plot, error) {
	vals := plotter.Values(v)

	p := plot.New()
	p.Title.Text = title

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, err
	}
	p.Add(h)

	return p, nil
}

// HistOptions carry the per-figure settings of PlotHistogram.
type HistOptions struct {
	Title  string
	XLabel string

	// Density, when set, is drawn over the histogram as a smooth curve
	// and labeled DensityLabel in the legend. Only meaningful for
	// normalized histograms.
	Density      func(x float64) float64
	DensityLabel string
}

// PlotHistogram renders a computed histogram with the given style. The bins
// are drawn as a filled step outline, which handles variable-width edges
// the same as equal-width ones.
func PlotHistogram(hist histviz.Histogram, style Style, opts HistOptions) (*plot.Plot, error) {
	p := plot.New()
	style.Apply(p)
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	if hist.Normalized {
		p.Y.Label.Text = "density"
	} else {
		p.Y.Label.Text = "count"
	}

	steps := stepXYs(hist)

	fill, err := plotter.NewPolygon(steps)
	if err != nil {
		return nil, err
	}
	fill.Color = style.FillColor
	fill.LineStyle.Color = nil
	p.Add(fill)

	outline, err := plotter.NewLine(steps)
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Color = style.LineColor
	outline.LineStyle.Width = style.LineWidth
	p.Add(outline)

	if opts.Density != nil {
		fn := plotter.NewFunction(opts.Density)
		fn.Samples = 200
		fn.LineStyle.Color = style.Color(1)
		fn.LineStyle.Width = style.LineWidth
		fn.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(fn)
		if opts.DensityLabel != "" {
			p.Legend.Add(opts.DensityLabel, fn)
		}
	}

	return p, nil
}

// stepXYs traces the histogram as a closed step curve anchored at zero.
func stepXYs(h histviz.Histogram) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*h.Bins()+2)
	xys = append(xys, plotter.XY{X: h.Edges[0], Y: 0})
	for i, c := range h.Counts {
		xys = append(xys,
			plotter.XY{X: h.Edges[i], Y: c},
			plotter.XY{X: h.Edges[i+1], Y: c})
	}
	xys = append(xys, plotter.XY{X: h.Edges[len(h.Edges)-1], Y: 0})
	return xys
}

// PlotLines renders a labeled line family with a legend.
func PlotLines(lines []dataset.Line, style Style, title string) (*plot.Plot, error) {
	p := plot.New()
	style.Apply(p)
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, ln := range lines {
		xys := make(plotter.XYs, len(ln.X))
		for j := range xys {
			xys[j] = plotter.XY{X: ln.X[j], Y: ln.Y[j]}
		}

		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = style.Color(i)
		l.LineStyle.Width = style.LineWidth
		p.Add(l)
		p.Legend.Add(ln.Label, l)
	}

	return p, nil
}

// PlotScatter renders a point cloud.
func PlotScatter(xs, ys []float64, style Style, title string) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(xs))
	for i := range xys {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	p := plot.New()
	style.Apply(p)
	p.Title.Text = title

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = style.FillColor
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	return p, nil
}

// PlotDensity2D bins the cloud onto an nx x ny grid and renders the counts
// as a heatmap. This replaces the scatter cloud where overplotting hides
// the density structure.
func PlotDensity2D(xs, ys []float64, nx, ny int, style Style, pal palette.Palette, title string) (*plot.Plot, error) {
	xe, err := histviz.ChooseEdges(xs, histviz.FixedCount, nx)
	if err != nil {
		return nil, err
	}
	ye, err := histviz.ChooseEdges(ys, histviz.FixedCount, ny)
	if err != nil {
		return nil, err
	}

	z := mat.NewDense(ny, nx, nil)
	for i := range xs {
		cx, okx := xe.Locate(xs[i])
		cy, oky := ye.Locate(ys[i])
		if okx && oky {
			z.Set(cy, cx, z.At(cy, cx)+1)
		}
	}

	p := plot.New()
	style.Apply(p)
	p.Title.Text = title

	p.Add(plotter.NewHeatMap(densityGrid{xe: xe, ye: ye, z: z}, pal))
	return p, nil
}

// PlotSurface renders a sampled z = f(x, y) grid with the given palette.
func PlotSurface(s dataset.Surface, style Style, pal palette.Palette, title string) (*plot.Plot, error) {
	p := plot.New()
	style.Apply(p)
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	p.Add(plotter.NewHeatMap(surfaceGrid{s}, pal))
	return p, nil
}

// Save serializes the figure, creating the output directory if needed. The
// format follows the file extension (png, svg, pdf).
func Save(p *plot.Plot, w, h vg.Length, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(w, h, path)
}

// densityGrid adapts 2D bin counts to the heatmap interface, placing each
// cell at its bin center.
type densityGrid struct {
	xe, ye histviz.BinEdges
	z      *mat.Dense
}

func (g densityGrid) Dims() (int, int) {
	return len(g.xe) - 1, len(g.ye) - 1
}

func (g densityGrid) X(c int) float64 {
	return 0.5 * (g.xe[c] + g.xe[c+1])
}

func (g densityGrid) Y(r int) float64 {
	return 0.5 * (g.ye[r] + g.ye[r+1])
}

func (g densityGrid) Z(c, r int) float64 {
	return g.z.At(r, c)
}

// surfaceGrid adapts a dataset.Surface to the heatmap interface.
type surfaceGrid struct {
	s dataset.Surface
}

func (g surfaceGrid) Dims() (int, int) {
	return len(g.s.X), len(g.s.Y)
}

func (g surfaceGrid) X(c int) float64 {
	return g.s.X[c]
}

func (g surfaceGrid) Y(r int) float64 {
	return g.s.Y[r]
}

func (g surfaceGrid) Z(c, r int) float64 {
	return g.s.Z.At(r, c)
}
