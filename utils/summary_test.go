package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.Equal(t, 5, s.N)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 5.0, s.Max)
	require.Equal(t, 3.0, s.Mean)
	require.Equal(t, 3.0, s.Median)
	require.InDelta(t, 1.5811, s.StdDev, 1e-4)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
}

func TestSummaryString(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Contains(t, s.String(), "n=3")
	require.Contains(t, s.String(), "median=2")
}
