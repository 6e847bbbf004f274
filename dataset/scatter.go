package dataset

import (
	"math"

	"golang.org/x/exp/rand"
)

// ScatterCloud draws n points from a standard bivariate normal with
// correlation rho, deterministic for a given seed.
func ScatterCloud(n int, rho float64, seed uint64) (xs, ys []float64) {
	r := rand.New(rand.NewSource(seed))
	c := math.Sqrt(1 - rho*rho)

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		u := r.NormFloat64()
		v := r.NormFloat64()
		xs[i] = u
		ys[i] = rho*u + c*v
	}
	return xs, ys
}
