package regression

import (
	"github.com/gradientlab/descent/core/parallel"
	"github.com/gradientlab/descent/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Row counts at or below this run sequentially; above it, the per-sample
// prediction loop is split across CPU cores.
const parallelThreshold = 1000

// affine evaluates the linear model over every row of X:
//
//	out[i] = Σ_j X[i][j]*w[j] + c
//
// Rows are independent, so the loop may run in parallel without changing
// the result.
func affine(X mat.Matrix, w []float64, c float64) []float64 {
	n, k := X.Dims()
	out := make([]float64, n)

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := c
			for j := 0; j < k; j++ {
				pred += X.At(i, j) * w[j]
			}
			out[i] = pred
		}
	})

	return out
}

// Gradients computes the mean-squared-error loss and its partial derivatives
// with respect to the weights and intercept at the current parameters:
//
//	error[i] = y[i] - (Σ_j X[i][j]*w[j] + c)
//	dw[j]    = (-2/n) * Σ_i X[i][j] * error[i]
//	dc       = (-2/n) * Σ_i error[i]
//	loss     = (1/n)  * Σ_i error[i]²
//
// It is a pure function: X, y, w and c are never mutated. It returns a
// ValueError when X has no rows (the mean is undefined) and a DimensionError
// when X's column count differs from len(w) or X and y disagree on the
// sample count.
func Gradients(X mat.Matrix, y *mat.VecDense, w []float64, c float64) (dw []float64, dc float64, loss float64, err error) {
	n, k := X.Dims()

	if n == 0 {
		return nil, 0, 0, errors.NewValueError("Gradients", "at least one sample is required")
	}
	if k != len(w) {
		return nil, 0, 0, errors.NewDimensionError("Gradients", len(w), k, 1)
	}
	if y.Len() != n {
		return nil, 0, 0, errors.NewDimensionError("Gradients", n, y.Len(), 0)
	}

	yPred := affine(X, w, c)

	dw = make([]float64, k)
	var errSum, sqSum float64
	for i := 0; i < n; i++ {
		e := y.AtVec(i) - yPred[i]
		errSum += e
		sqSum += e * e
		for j := 0; j < k; j++ {
			dw[j] += X.At(i, j) * e
		}
	}

	scale := -2.0 / float64(n)
	for j := range dw {
		dw[j] *= scale
	}
	dc = scale * errSum
	loss = sqSum / float64(n)

	return dw, dc, loss, nil
}
