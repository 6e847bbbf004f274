package histviz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHistogramWorkedExample(t *testing.T) {
	sample := []float64{1, 1, 2, 2, 2, 3, 3, 3, 3}

	edges, err := ChooseEdges(sample, FixedCount, 3)
	require.NoError(t, err)

	h, err := ComputeHistogram(sample, edges, false)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4}, h.Counts)
	require.False(t, h.Normalized)
	require.Equal(t, 3, h.Bins())
}

func TestComputeHistogramCountsSumToSampleSize(t *testing.T) {
	sample := make([]float64, 777)
	for i := range sample {
		sample[i] = math.Sin(float64(i)) * float64(i%13)
	}

	for _, rule := range []Rule{FixedCount, Scott, BayesianBlocks} {
		edges, err := ChooseEdges(sample, rule, 20)
		require.NoError(t, err)

		h, err := ComputeHistogram(sample, edges, false)
		require.NoError(t, err)

		total := 0.0
		for _, c := range h.Counts {
			total += c
		}
		require.Equal(t, float64(len(sample)), total, "rule %s", rule)
	}
}

func TestComputeHistogramLastBinClosed(t *testing.T) {
	sample := []float64{0, 1, 2, 3, 4}

	h, err := ComputeHistogram(sample, BinEdges{0, 2, 4}, false)
	require.NoError(t, err)
	// 4 == max lands in the last bin, 2 in the second.
	require.Equal(t, []float64{2, 3}, h.Counts)
}

func TestComputeHistogramIgnoresOutOfRange(t *testing.T) {
	sample := []float64{-10, 0.5, 1.5, 99}

	h, err := ComputeHistogram(sample, BinEdges{0, 1, 2}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, h.Counts)
}

func TestComputeHistogramNormalized(t *testing.T) {
	sample := make([]float64, 500)
	for i := range sample {
		sample[i] = float64(i%37) + float64(i)/501
	}

	edges, err := ChooseEdges(sample, BayesianBlocks, 0)
	require.NoError(t, err)

	h, err := ComputeHistogram(sample, edges, true)
	require.NoError(t, err)
	require.True(t, h.Normalized)

	integral := 0.0
	for i, d := range h.Counts {
		require.GreaterOrEqual(t, d, 0.0)
		integral += d * h.Width(i)
	}
	require.InDelta(t, 1.0, integral, 1e-9)
}

func TestComputeHistogramRejectsBadEdges(t *testing.T) {
	sample := []float64{1, 2, 3}

	_, err := ComputeHistogram(sample, BinEdges{1}, false)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeHistogram(sample, BinEdges{1, 1, 2}, false)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeHistogram(sample, BinEdges{2, 1}, false)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeHistogram(sample, BinEdges{0, math.NaN(), 2}, false)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeHistogram(nil, BinEdges{0, 1}, false)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLocate(t *testing.T) {
	edges := BinEdges{1, 2, 3}

	i, ok := edges.Locate(1)
	require.True(t, ok)
	require.Equal(t, 0, i)

	i, ok = edges.Locate(2)
	require.True(t, ok)
	require.Equal(t, 1, i)

	i, ok = edges.Locate(2.999)
	require.True(t, ok)
	require.Equal(t, 1, i)

	i, ok = edges.Locate(3)
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = edges.Locate(0.999)
	require.False(t, ok)

	_, ok = edges.Locate(3.001)
	require.False(t, ok)
}
