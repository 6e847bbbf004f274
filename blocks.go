package histviz

import (
	"math"
	"sort"
)

// blockEdges partitions the sorted sample into variable-width blocks with
// the Bayesian blocks dynamic program of Scargle et al. (2013), event-data
// formulation. Each block contributes a fitness N*(ln N - ln T) for N points
// over width T, penalized by a constant prior per extra block. The cost
// table is a flat array, so the O(n^2) scan stays iterative and
// deterministic.
func blockEdges(sample []float64) BinEdges {
	vals, weights := dedupe(sample)
	n := len(vals)
	if n == 1 {
		lo, hi := sampleSpan(sample)
		return BinEdges{lo, hi}
	}

	// Cell edges: the data range split at midpoints between distinct
	// values. Block boundaries can only fall on these.
	edges := make([]float64, n+1)
	edges[0] = vals[0]
	for i := 1; i < n; i++ {
		edges[i] = 0.5 * (vals[i-1] + vals[i])
	}
	edges[n] = vals[n-1]

	ncp := ncpPrior(len(sample))

	// best[r] is the fitness of the optimal partition of cells [0, r],
	// last[r] the start cell of its final block.
	best := make([]float64, n)
	last := make([]int, n)
	for r := 0; r < n; r++ {
		bestFit := math.Inf(-1)
		bestStart := 0
		cnt := 0.0
		for k := r; k >= 0; k-- {
			cnt += weights[k]
			width := edges[r+1] - edges[k]
			fit := cnt*(math.Log(cnt)-math.Log(width)) - ncp
			if k > 0 {
				fit += best[k-1]
			}
			if fit > bestFit {
				bestFit = fit
				bestStart = k
			}
		}
		best[r] = bestFit
		last[r] = bestStart
	}

	// Backtrack the change points into edge indexes.
	idx := []int{n}
	for r := n - 1; r >= 0; {
		start := last[r]
		idx = append(idx, start)
		if start == 0 {
			break
		}
		r = start - 1
	}
	sort.Ints(idx)

	out := make(BinEdges, len(idx))
	for i, j := range idx {
		out[i] = edges[j]
	}
	return out
}

// ncpPrior is the closed-form block prior calibrated for a false alarm
// probability p0 (eq. 21 of Scargle et al. 2013).
func ncpPrior(n int) float64 {
	return 4 - math.Log(73.53*FalseAlarmP0*math.Pow(float64(n), -0.478))
}

// dedupe sorts a copy of the sample and collapses ties into weights.
func dedupe(sample []float64) (vals, weights []float64) {
	s := make([]float64, len(sample))
	copy(s, sample)
	sort.Float64s(s)

	vals = make([]float64, 0, len(s))
	weights = make([]float64, 0, len(s))
	for _, v := range s {
		if len(vals) > 0 && vals[len(vals)-1] == v {
			weights[len(weights)-1]++
			continue
		}
		vals = append(vals, v)
		weights = append(weights, 1)
	}
	return vals, weights
}
