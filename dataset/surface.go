package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Surface is a z = f(x, y) grid for the colormap figures. Z is
// len(Y) x len(X), row i holding the values along Y[i].
type Surface struct {
	X, Y []float64
	Z    *mat.Dense
}

// Peaks samples the classic two-lobe peaks surface on [-3, 3]^2.
func Peaks(nx, ny int) Surface {
	x := floats.Span(make([]float64, nx), -3, 3)
	y := floats.Span(make([]float64, ny), -3, 3)

	z := mat.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			z.Set(i, j, peaks(x[j], y[i]))
		}
	}
	return Surface{X: x, Y: y, Z: z}
}

func peaks(x, y float64) float64 {
	return 3*(1-x)*(1-x)*math.Exp(-x*x-(y+1)*(y+1)) -
		10*(x/5-x*x*x-math.Pow(y, 5))*math.Exp(-x*x-y*y) -
		math.Exp(-(x+1)*(x+1)-y*y)/3
}
