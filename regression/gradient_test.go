package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gradientlab/descent/pkg/errors"
)

func TestAffine(t *testing.T) {
	// Hand-computed: each row dotted with w, plus c
	X := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	got := affine(X, []float64{1, 1}, 0)
	assert.Equal(t, []float64{3, 7}, got)

	got = affine(X, []float64{2, -1}, 10)
	assert.Equal(t, []float64{10, 12}, got)
}

func TestGradients_SingleSample(t *testing.T) {
	// One sample, one feature, prediction 0 against target 5:
	// error = 5, dc = -2*5 = -10, dw = -2*1*5 = -10, loss = 25
	X := mat.NewDense(1, 1, []float64{1})
	y := mat.NewVecDense(1, []float64{5})

	dw, dc, loss, err := Gradients(X, y, []float64{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{-10.0}, dw)
	assert.Equal(t, -10.0, dc)
	assert.Equal(t, 25.0, loss)
}

func TestGradients_MultiFeature(t *testing.T) {
	// X = [[1,2],[3,4]], w = [1,1], c = 0 -> predictions [3,7]
	// y = [4,6] -> errors [1,-1]
	// dc = (-2/2)*(1-1) = 0
	// dw[0] = (-2/2)*(1*1 + 3*(-1)) = 2
	// dw[1] = (-2/2)*(2*1 + 4*(-1)) = 2
	// loss = (1+1)/2 = 1
	X := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	y := mat.NewVecDense(2, []float64{4, 6})

	dw, dc, loss, err := Gradients(X, y, []float64{1, 1}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dw[0], 1e-12)
	assert.InDelta(t, 2.0, dw[1], 1e-12)
	assert.InDelta(t, 0.0, dc, 1e-12)
	assert.InDelta(t, 1.0, loss, 1e-12)
}

func TestGradients_ZeroAtOptimum(t *testing.T) {
	// Exact fit: y = 2x + 1 with w = [2], c = 1
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{3, 5, 7})

	dw, dc, loss, err := Gradients(X, y, []float64{2}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dw[0])
	assert.Equal(t, 0.0, dc)
	assert.Equal(t, 0.0, loss)
}

func TestGradients_DoesNotMutateInputs(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewVecDense(2, []float64{1, 2})
	w := []float64{0.5}

	_, _, _, err := Gradients(X, y, w, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, w)
	assert.Equal(t, 1.0, X.At(0, 0))
	assert.Equal(t, 2.0, y.AtVec(1))
}

func TestGradients_Errors(t *testing.T) {
	t.Run("weight length mismatch", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		y := mat.NewVecDense(2, []float64{1, 2})

		_, _, _, err := Gradients(X, y, []float64{1}, 0)
		require.Error(t, err)

		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 1, dimErr.Axis)
	})

	t.Run("sample count mismatch", func(t *testing.T) {
		X := mat.NewDense(2, 1, []float64{1, 2})
		y := mat.NewVecDense(3, []float64{1, 2, 3})

		_, _, _, err := Gradients(X, y, []float64{1}, 0)
		require.Error(t, err)

		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 0, dimErr.Axis)
	})

	t.Run("no samples", func(t *testing.T) {
		X := &mat.Dense{}
		y := &mat.VecDense{}

		_, _, _, err := Gradients(X, y, nil, 0)
		require.Error(t, err)

		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr))
	})
}

func TestGradients_LargeInputParallelPath(t *testing.T) {
	// Enough rows to cross the parallel threshold; result must match the
	// sequential formula regardless of execution order.
	n := parallelThreshold + 500
	X := mat.NewDense(n, 1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		y.SetVec(i, 2)
	}

	// w=0, c=0: every error is 2
	dw, dc, loss, err := Gradients(X, y, []float64{0}, 0)
	require.NoError(t, err)
	assert.InDelta(t, -4.0, dw[0], 1e-9)
	assert.InDelta(t, -4.0, dc, 1e-9)
	assert.InDelta(t, 4.0, loss, 1e-9)
	assert.False(t, math.IsNaN(dw[0]))
}
