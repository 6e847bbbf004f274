package histviz

import (
	"fmt"
	"math"
	"sort"
)

// Histogram is a pure derived value: per-bin counts (or densities) over a
// fixed set of edges.
type Histogram struct {
	Edges      BinEdges
	Counts     []float64
	Normalized bool
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	return len(h.Counts)
}

// Width returns the width of bin i.
func (h Histogram) Width(i int) float64 {
	return h.Edges[i+1] - h.Edges[i]
}

// ComputeHistogram bins sample into the given edges. A value v falls in bin
// i iff edges[i] <= v < edges[i+1]; the last bin is closed on the right.
// Values outside the edge range are ignored. With normalize set, each count
// is divided by total*width so the histogram integrates to 1.
func ComputeHistogram(sample []float64, edges BinEdges, normalize bool) (Histogram, error) {
	if err := checkSample(sample); err != nil {
		return Histogram{}, err
	}
	if err := checkEdges(edges); err != nil {
		return Histogram{}, err
	}

	counts := make([]float64, len(edges)-1)
	for _, v := range sample {
		if i, ok := edges.Locate(v); ok {
			counts[i]++
		}
	}

	if normalize {
		total := 0.0
		for _, c := range counts {
			total += c
		}
		if total > 0 {
			for i := range counts {
				counts[i] /= total * (edges[i+1] - edges[i])
			}
		}
	}

	out := make(BinEdges, len(edges))
	copy(out, edges)
	return Histogram{Edges: out, Counts: counts, Normalized: normalize}, nil
}

func checkEdges(edges BinEdges) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least two bin edges, got %d", ErrInvalidInput, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: non-finite bin edge %v at index %d", ErrInvalidInput, e, i)
		}
		if i > 0 && e <= edges[i-1] {
			return fmt.Errorf("%w: bin edges must be strictly increasing at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// Locate finds the bin of v by binary search, so variable-width edges cost
// O(log k) per value. The second return is false for values outside the
// edge range.
func (edges BinEdges) Locate(v float64) (int, bool) {
	k := len(edges) - 1
	if v < edges[0] || v > edges[k] {
		return 0, false
	}
	if v == edges[k] {
		return k - 1, true
	}
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i, true
	}
	return i - 1, true
}
