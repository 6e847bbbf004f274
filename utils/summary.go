package utils

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// SampleSummary holds the descriptive statistics logged next to each
// figure.
type SampleSummary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
	IQR    float64
}

// Summarize computes a SampleSummary for a non-empty sample.
func Summarize(sample []float64) (SampleSummary, error) {
	s := SampleSummary{N: len(sample)}

	var err error
	if s.Min, err = stats.Min(sample); err != nil {
		return SampleSummary{}, err
	}
	if s.Max, err = stats.Max(sample); err != nil {
		return SampleSummary{}, err
	}
	if s.Mean, err = stats.Mean(sample); err != nil {
		return SampleSummary{}, err
	}
	if s.Median, err = stats.Median(sample); err != nil {
		return SampleSummary{}, err
	}
	if s.StdDev, err = stats.StandardDeviationSample(sample); err != nil {
		return SampleSummary{}, err
	}
	if s.IQR, err = stats.InterQuartileRange(sample); err != nil {
		return SampleSummary{}, err
	}
	return s, nil
}

func (s SampleSummary) String() string {
	return fmt.Sprintf("n=%d min=%.4g max=%.4g mean=%.4g median=%.4g sd=%.4g iqr=%.4g",
		s.N, s.Min, s.Max, s.Mean, s.Median, s.StdDev, s.IQR)
}
