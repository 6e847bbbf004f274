package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	libunlynx "github.com/ldsec/unlynx/lib"
	gotoml "github.com/pelletier/go-toml"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"

	"github.com/vizstat/histviz"
	"github.com/vizstat/histviz/dataset"
	"github.com/vizstat/histviz/utils"
)

// RunConfig mirrors runconfig.toml and steers the full figure run.
type RunConfig struct {
	Seed     uint64
	Samples  int
	OutDir   string
	Format   string
	WidthIn  float64
	HeightIn float64
	Time     bool
	Debug    int

	FixedBins     int
	GridBins      int
	LineCount     int
	LinePoints    int
	ScatterPoints int
	Rho           float64
}

func (conf *RunConfig) applyDefaults() {
	if conf.Samples == 0 {
		conf.Samples = 5000
	}
	if conf.OutDir == "" {
		conf.OutDir = "figures"
	}
	if conf.Format == "" {
		conf.Format = "png"
	}
	if conf.WidthIn == 0 {
		conf.WidthIn = 6
	}
	if conf.HeightIn == 0 {
		conf.HeightIn = 4
	}
	if conf.FixedBins == 0 {
		conf.FixedBins = histviz.DefaultFixedCount
	}
	if conf.GridBins == 0 {
		conf.GridBins = 40
	}
	if conf.LineCount == 0 {
		conf.LineCount = 4
	}
	if conf.LinePoints == 0 {
		conf.LinePoints = 100
	}
	if conf.ScatterPoints == 0 {
		conf.ScatterPoints = 2000
	}
	if conf.Rho == 0 {
		conf.Rho = 0.7
	}
}

func main() {
	confFile := flag.String("config", "runconfig.toml", "run configuration file")
	flag.Parse()

	var conf RunConfig
	if _, err := toml.DecodeFile(*confFile, &conf); err != nil {
		log.Fatal("cannot read run configuration:", err)
	}
	conf.applyDefaults()

	log.SetDebugVisible(conf.Debug)
	if conf.Time {
		libunlynx.TIME = true
	}

	if err := run(conf); err != nil {
		log.Fatal(err)
	}
	log.Lvl1("figures written to", conf.OutDir)
}

func run(conf RunConfig) error {
	w := vg.Length(conf.WidthIn) * vg.Inch
	h := vg.Length(conf.HeightIn) * vg.Inch

	mix := dataset.Bimodal()
	sample := mix.Sample(conf.Samples, conf.Seed)

	sum, err := utils.Summarize(sample)
	if err != nil {
		return err
	}
	log.Lvl1("mixture sample:", sum)

	if err := defaultFigures(conf, sample, w, h); err != nil {
		return err
	}
	if err := styledFigures(conf, mix, sample, w, h); err != nil {
		return err
	}

	return writeResolvedConfig(conf)
}

// defaultFigures renders the "before" set: stock styling, fixed bin count,
// stock heat palette, legend wherever the library puts it.
func defaultFigures(conf RunConfig, sample []float64, w, h vg.Length) error {
	timer := libunlynx.StartTimer("DefaultFigures")
	defer libunlynx.EndTimer(timer)

	style := utils.DefaultStyle()

	p, err := utils.HistogramFigure(sample, conf.FixedBins, "mixture, fixed bins")
	if err != nil {
		return err
	}
	if err := utils.Save(p, w, h, figPath(conf, "default_hist")); err != nil {
		return err
	}

	lines := dataset.Lines(conf.LineCount, conf.LinePoints, conf.Seed)
	if p, err = utils.PlotLines(lines, style, "lines"); err != nil {
		return err
	}
	if err := utils.Save(p, w, h, figPath(conf, "default_lines")); err != nil {
		return err
	}

	xs, ys := dataset.ScatterCloud(conf.ScatterPoints, conf.Rho, conf.Seed)
	if p, err = utils.PlotScatter(xs, ys, style, "scatter"); err != nil {
		return err
	}
	if err := utils.Save(p, h, h, figPath(conf, "default_scatter")); err != nil {
		return err
	}

	surf := dataset.Peaks(conf.GridBins, conf.GridBins)
	if p, err = utils.PlotSurface(surf, style, palette.Heat(12, 1), "peaks"); err != nil {
		return err
	}
	if err := utils.Save(p, h, h, figPath(conf, "default_surface")); err != nil {
		return err
	}

	log.Lvl2("default figures done")
	return nil
}

// styledFigures re-renders the same data with the notebook sheet: Scott and
// Bayesian-blocks bins with the model density overlaid, legend top-left,
// a diverging colormap and a 2D density map instead of the raw cloud.
func styledFigures(conf RunConfig, mix dataset.GaussianMixture, sample []float64, w, h vg.Length) error {
	timer := libunlynx.StartTimer("StyledFigures")
	defer libunlynx.EndTimer(timer)

	style := utils.NotebookStyle()

	scott, err := histviz.ChooseEdges(sample, histviz.Scott, 0)
	if err != nil {
		return err
	}
	log.Lvl2("scott rule chose", len(scott)-1, "bins")

	hist, err := histviz.ComputeHistogram(sample, scott, true)
	if err != nil {
		return err
	}
	p, err := utils.PlotHistogram(hist, style, utils.HistOptions{
		Title:        "mixture, scott bins",
		XLabel:       "x",
		Density:      mix.Prob,
		DensityLabel: "model",
	})
	if err != nil {
		return err
	}
	if err := utils.Save(p, w, h, figPath(conf, "styled_hist_scott")); err != nil {
		return err
	}

	dpTimer := libunlynx.StartTimer("BayesianBlocks(DP)")
	blocks, err := histviz.ChooseEdges(sample, histviz.BayesianBlocks, 0)
	libunlynx.EndTimer(dpTimer)
	if err != nil {
		return err
	}
	log.Lvl2("bayesian blocks chose", len(blocks)-1, "bins")

	if hist, err = histviz.ComputeHistogram(sample, blocks, true); err != nil {
		return err
	}
	p, err = utils.PlotHistogram(hist, style, utils.HistOptions{
		Title:        "mixture, bayesian blocks",
		XLabel:       "x",
		Density:      mix.Prob,
		DensityLabel: "model",
	})
	if err != nil {
		return err
	}
	if err := utils.Save(p, w, h, figPath(conf, "styled_hist_blocks")); err != nil {
		return err
	}

	lines := dataset.Lines(conf.LineCount, conf.LinePoints, conf.Seed)
	if p, err = utils.PlotLines(lines, style, "lines"); err != nil {
		return err
	}
	if err := utils.Save(p, w, h, figPath(conf, "styled_lines")); err != nil {
		return err
	}

	xs, ys := dataset.ScatterCloud(conf.ScatterPoints, conf.Rho, conf.Seed)
	pal := moreland.SmoothBlueRed().Palette(64)
	if p, err = utils.PlotDensity2D(xs, ys, conf.GridBins, conf.GridBins, style, pal, "scatter density"); err != nil {
		return err
	}
	if err := utils.Save(p, h, h, figPath(conf, "styled_density2d")); err != nil {
		return err
	}

	surf := dataset.Peaks(conf.GridBins, conf.GridBins)
	if p, err = utils.PlotSurface(surf, style, pal, "peaks"); err != nil {
		return err
	}
	if err := utils.Save(p, h, h, figPath(conf, "styled_surface")); err != nil {
		return err
	}

	log.Lvl2("styled figures done")
	return nil
}

// writeResolvedConfig records the effective configuration next to the
// figures, defaults filled in.
func writeResolvedConfig(conf RunConfig) error {
	b, err := gotoml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(conf.OutDir, "runconfig_resolved.toml"), b, 0644)
}

func figPath(conf RunConfig, name string) string {
	return filepath.Join(conf.OutDir, name+"."+conf.Format)
}
