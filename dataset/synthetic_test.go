package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gradientlab/descent/pkg/errors"
)

func TestMakeRegression_Shapes(t *testing.T) {
	X, y, coef, _, err := MakeRegression(50, 3, WithSeed(1))
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 50, r)
	assert.Equal(t, 3, c)

	ry, cy := y.Dims()
	assert.Equal(t, 50, ry)
	assert.Equal(t, 1, cy)

	assert.Len(t, coef, 3)
}

func TestMakeRegression_Reproducible(t *testing.T) {
	X1, y1, coef1, c1, err := MakeRegression(20, 2, WithSeed(5), WithNoise(0.3))
	require.NoError(t, err)
	X2, y2, coef2, c2, err := MakeRegression(20, 2, WithSeed(5), WithNoise(0.3))
	require.NoError(t, err)

	assert.True(t, mat.Equal(X1, X2))
	assert.True(t, mat.Equal(y1, y2))
	assert.Equal(t, coef1, coef2)
	assert.Equal(t, c1, c2)

	// A different seed produces different data
	X3, _, _, _, err := MakeRegression(20, 2, WithSeed(6), WithNoise(0.3))
	require.NoError(t, err)
	assert.False(t, mat.Equal(X1, X3))
}

func TestMakeRegression_NoiselessTargets(t *testing.T) {
	coef := []float64{1.5, -2}
	X, y, gotCoef, gotIntercept, err := MakeRegression(30, 2,
		WithCoefficients(coef, 0.5),
		WithSeed(11),
	)
	require.NoError(t, err)
	assert.Equal(t, coef, gotCoef)
	assert.Equal(t, 0.5, gotIntercept)

	// Without noise, each target is exactly the affine map of its row
	for i := 0; i < 30; i++ {
		want := 0.5 + X.At(i, 0)*coef[0] + X.At(i, 1)*coef[1]
		assert.InDelta(t, want, y.At(i, 0), 1e-12)
	}
}

func TestMakeRegression_Validation(t *testing.T) {
	var valErr *errors.ValidationError

	_, _, _, _, err := MakeRegression(0, 1)
	require.True(t, errors.As(err, &valErr))

	_, _, _, _, err = MakeRegression(10, 0)
	require.True(t, errors.As(err, &valErr))

	_, _, _, _, err = MakeRegression(10, 1, WithNoise(-1))
	require.True(t, errors.As(err, &valErr))

	var dimErr *errors.DimensionError
	_, _, _, _, err = MakeRegression(10, 2, WithCoefficients([]float64{1}, 0))
	require.True(t, errors.As(err, &dimErr))
}
