package utils

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Style is a reusable sheet of cosmetic settings applied on top of a plot
// before any data is added. The zero value leaves the library defaults
// untouched except for sizes.
type Style struct {
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length

	Background color.Color

	// Horizontal grid only; vertical rules add clutter on every figure
	// this package draws.
	Grid      bool
	GridColor color.Color
	GridWidth vg.Length

	LegendTop  bool
	LegendLeft bool

	LineWidth vg.Length
	FillColor color.Color
	LineColor color.Color

	// Palette cycles through series colors. Empty falls back to the
	// plotutil defaults.
	Palette []color.Color
}

// DefaultStyle mirrors the stock look of the plotting library.
func DefaultStyle() Style {
	return Style{
		TitleSize:  vg.Points(12),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
		LegendSize: vg.Points(12),
		Background: color.White,
		LineWidth:  vg.Points(1),
		FillColor:  color.Gray{Y: 128},
		LineColor:  color.Black,
	}
}

// NotebookStyle is the improved sheet: larger type, a light horizontal
// grid, a muted palette and the legend tucked into the top-left corner.
func NotebookStyle() Style {
	return Style{
		TitleSize:  vg.Points(15),
		LabelSize:  vg.Points(13),
		TickSize:   vg.Points(11),
		LegendSize: vg.Points(11),
		Background: color.White,
		Grid:       true,
		GridColor:  color.Gray{Y: 220},
		GridWidth:  vg.Points(0.5),
		LegendTop:  true,
		LegendLeft: true,
		LineWidth:  vg.Points(1.5),
		FillColor:  color.RGBA{R: 0x34, G: 0x65, B: 0xa4, A: 0xb0},
		LineColor:  color.RGBA{R: 0x20, G: 0x4a, B: 0x87, A: 0xff},
		Palette: []color.Color{
			color.RGBA{R: 0x34, G: 0x65, B: 0xa4, A: 0xff},
			color.RGBA{R: 0xcc, G: 0x00, B: 0x00, A: 0xff},
			color.RGBA{R: 0x73, G: 0xd2, B: 0x16, A: 0xff},
			color.RGBA{R: 0xf5, G: 0x79, B: 0x00, A: 0xff},
			color.RGBA{R: 0x75, G: 0x50, B: 0x7b, A: 0xff},
		},
	}
}

// Apply writes the sheet onto p.
func (s Style) Apply(p *plot.Plot) {
	if s.Background != nil {
		p.BackgroundColor = s.Background
	}
	p.Title.TextStyle.Font.Size = s.TitleSize
	p.X.Label.TextStyle.Font.Size = s.LabelSize
	p.Y.Label.TextStyle.Font.Size = s.LabelSize
	p.X.Tick.Label.Font.Size = s.TickSize
	p.Y.Tick.Label.Font.Size = s.TickSize
	p.Legend.TextStyle.Font.Size = s.LegendSize
	p.Legend.Top = s.LegendTop
	p.Legend.Left = s.LegendLeft

	if s.Grid {
		g := plotter.NewGrid()
		g.Vertical.Color = nil
		g.Horizontal.Color = s.GridColor
		g.Horizontal.Width = s.GridWidth
		p.Add(g)
	}
}

// Color returns the i-th series color of the sheet, cycling as needed.
func (s Style) Color(i int) color.Color {
	if len(s.Palette) == 0 {
		return plotutil.Color(i)
	}
	return s.Palette[i%len(s.Palette)]
}
