package dataset

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Component is one weighted normal of a mixture.
type Component struct {
	Mean   float64
	Sigma  float64
	Weight float64
}

// GaussianMixture is a weighted sum of normal components.
type GaussianMixture struct {
	Components []Component
}

// Bimodal returns the mixture used throughout the figures: a narrow peak
// next to a wide shoulder, weighted 3:2.
func Bimodal() GaussianMixture {
	return GaussianMixture{Components: []Component{
		{Mean: 0, Sigma: 0.3, Weight: 0.6},
		{Mean: 2.5, Sigma: 1.0, Weight: 0.4},
	}}
}

// Sample draws n points from the mixture, deterministic for a given seed.
func (g GaussianMixture) Sample(n int, seed uint64) []float64 {
	src := rand.NewSource(seed)
	r := rand.New(src)

	norms := make([]distuv.Normal, len(g.Components))
	for i, c := range g.Components {
		norms[i] = distuv.Normal{Mu: c.Mean, Sigma: c.Sigma, Src: src}
	}
	total := g.totalWeight()

	out := make([]float64, n)
	for i := range out {
		u := r.Float64() * total
		for j, c := range g.Components {
			u -= c.Weight
			if u < 0 || j == len(g.Components)-1 {
				out[i] = norms[j].Rand()
				break
			}
		}
	}
	return out
}

// Prob evaluates the mixture density at x.
func (g GaussianMixture) Prob(x float64) float64 {
	total := g.totalWeight()
	p := 0.0
	for _, c := range g.Components {
		n := distuv.Normal{Mu: c.Mean, Sigma: c.Sigma}
		p += c.Weight / total * n.Prob(x)
	}
	return p
}

func (g GaussianMixture) totalWeight() float64 {
	w := 0.0
	for _, c := range g.Components {
		w += c.Weight
	}
	return w
}
