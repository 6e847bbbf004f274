package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Line is one labeled y = slope*x + offset trace with mild noise.
type Line struct {
	Label string
	X, Y  []float64
}

// Lines generates k lines with distinct slopes sampled on n points over
// [0, 10], deterministic for a given seed.
func Lines(k, n int, seed uint64) []Line {
	r := rand.New(rand.NewSource(seed))
	x := floats.Span(make([]float64, n), 0, 10)

	out := make([]Line, k)
	for i := range out {
		slope := float64(i+1) / 2
		offset := float64(i)

		y := make([]float64, n)
		for j := range y {
			y[j] = slope*x[j] + offset + 0.2*r.NormFloat64()
		}
		out[i] = Line{
			Label: fmt.Sprintf("slope %.1f", slope),
			X:     x,
			Y:     y,
		}
	}
	return out
}
