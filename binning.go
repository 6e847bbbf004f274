package histviz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Rule selects how bin edges are derived from a sample.
type Rule string

const (
	// FixedCount produces a fixed number of equal-width bins.
	FixedCount Rule = "fixed"
	// Scott derives an equal bin width from the sample standard deviation.
	Scott Rule = "scott"
	// BayesianBlocks finds an optimal variable-width partition.
	BayesianBlocks Rule = "blocks"
)

// ParseRule maps a config string to a Rule.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case FixedCount, Scott, BayesianBlocks:
		return Rule(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRule, s)
}

// BinEdges is a strictly increasing sequence of k+1 edges defining k
// half-open bins [e_i, e_i+1).
type BinEdges []float64

// ChooseEdges derives bin edges for sample under the given rule. fixedCount
// is only consulted for FixedCount and must then be >= 1. The returned edges
// always span [min(sample), max(sample)].
func ChooseEdges(sample []float64, rule Rule, fixedCount int) (BinEdges, error) {
	if err := checkSample(sample); err != nil {
		return nil, err
	}

	switch rule {
	case FixedCount:
		if fixedCount < 1 {
			return nil, fmt.Errorf("%w: fixed bin count must be >= 1, got %d", ErrInvalidParameter, fixedCount)
		}
		return equalWidthEdges(sample, fixedCount), nil
	case Scott:
		return scottEdges(sample), nil
	case BayesianBlocks:
		return blockEdges(sample), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidRule, rule)
}

func checkSample(sample []float64) error {
	if len(sample) == 0 {
		return fmt.Errorf("%w: empty sample", ErrInvalidInput)
	}
	for i, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v at index %d", ErrInvalidInput, v, i)
		}
	}
	return nil
}

// sampleSpan returns the data range, bumped open for constant samples so
// that edges stay strictly increasing. The bump scales with the magnitude
// of the data; an absolute one underflows the ulp for large values.
func sampleSpan(sample []float64) (lo, hi float64) {
	lo = floats.Min(sample)
	hi = floats.Max(sample)
	if hi == lo {
		hi = lo + math.Max(degenerateSpan, math.Abs(lo)*relativeSpan)
		if hi == lo {
			hi = math.Nextafter(lo, math.Inf(1))
		}
	}
	return lo, hi
}

func equalWidthEdges(sample []float64, bins int) BinEdges {
	lo, hi := sampleSpan(sample)
	edges := make(BinEdges, bins+1)
	floats.Span(edges, lo, hi)
	return edges
}

// scottEdges applies Scott's rule: width = 3.49 * sd * n^(-1/3). A sample
// with no spread gets a single bin.
func scottEdges(sample []float64) BinEdges {
	if len(sample) < 2 {
		return equalWidthEdges(sample, 1)
	}
	sd := stat.StdDev(sample, nil)
	if sd == 0 {
		return equalWidthEdges(sample, 1)
	}

	lo, hi := sampleSpan(sample)
	width := ScottFactor * sd * math.Pow(float64(len(sample)), -1.0/3.0)
	bins := int(math.Ceil((hi - lo) / width))
	if bins < 1 {
		bins = 1
	}
	return equalWidthEdges(sample, bins)
}
