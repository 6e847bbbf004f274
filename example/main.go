package main

import (
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/plot/vg"

	"github.com/vizstat/histviz"
	"github.com/vizstat/histviz/dataset"
	"github.com/vizstat/histviz/utils"
)

// Minimal demo: draw a bimodal sample, let Scott's rule pick the bins and
// save one styled histogram with the model density overlaid.
func main() {
	mix := dataset.Bimodal()
	sample := mix.Sample(5000, 42)

	edges, err := histviz.ChooseEdges(sample, histviz.Scott, 0)
	log.ErrFatal(err)
	log.Lvl1("scott rule chose", len(edges)-1, "bins")

	hist, err := histviz.ComputeHistogram(sample, edges, true)
	log.ErrFatal(err)

	p, err := utils.PlotHistogram(hist, utils.NotebookStyle(), utils.HistOptions{
		Title:        "bimodal mixture",
		XLabel:       "x",
		Density:      mix.Prob,
		DensityLabel: "model",
	})
	log.ErrFatal(err)

	log.ErrFatal(utils.Save(p, 6*vg.Inch, 4*vg.Inch, "mixture.png"))
}
