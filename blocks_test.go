package histviz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Two clusters with very different densities: 500 tight points in [0,1] and
// 50 spread points in [9,10]. The partition must place at least one boundary
// inside the gap.
func TestBlocksSplitsDensityChange(t *testing.T) {
	sample := make([]float64, 0, 550)
	for i := 0; i < 500; i++ {
		sample = append(sample, float64(i)/500)
	}
	for i := 0; i < 50; i++ {
		sample = append(sample, 9+float64(i)/50)
	}

	edges, err := ChooseEdges(sample, BayesianBlocks, 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(edges), 3)

	inGap := false
	for _, e := range edges[1 : len(edges)-1] {
		if e > 1 && e < 9 {
			inGap = true
		}
	}
	require.True(t, inGap, "expected a block boundary in the empty gap, got %v", edges)
}

func TestBlocksDeterministic(t *testing.T) {
	sample := []float64{0.1, 0.12, 0.13, 0.15, 0.9, 2.2, 2.21, 2.23, 2.25, 2.3, 5}

	a, err := ChooseEdges(sample, BayesianBlocks, 0)
	require.NoError(t, err)
	b, err := ChooseEdges(sample, BayesianBlocks, 0)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestBlocksConstantSample(t *testing.T) {
	edges, err := ChooseEdges([]float64{3, 3, 3, 3, 3}, BayesianBlocks, 0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, 3.0, edges[0])
	require.Greater(t, edges[1], edges[0])
}

func TestBlocksCountsPreserved(t *testing.T) {
	sample := make([]float64, 0, 300)
	for i := 0; i < 200; i++ {
		sample = append(sample, float64(i)*0.005)
	}
	for i := 0; i < 100; i++ {
		sample = append(sample, 4+float64(i)*0.04)
	}

	edges, err := ChooseEdges(sample, BayesianBlocks, 0)
	require.NoError(t, err)

	h, err := ComputeHistogram(sample, edges, false)
	require.NoError(t, err)

	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	require.Equal(t, float64(len(sample)), total)
}

func TestNcpPriorGrowsWithSampleSize(t *testing.T) {
	require.Greater(t, ncpPrior(10000), ncpPrior(100))
	require.Greater(t, ncpPrior(100), 0.0)
}

func TestDedupe(t *testing.T) {
	vals, weights := dedupe([]float64{2, 1, 2, 3, 1, 1})
	require.Equal(t, []float64{1, 2, 3}, vals)
	require.Equal(t, []float64{3, 2, 1}, weights)
}
