package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gradientlab/descent/pkg/errors"
)

// indexedData builds X whose single feature is the sample index, so split
// membership can be checked exactly.
func indexedData(n int) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, float64(i)*10)
	}
	return X, y
}

func TestTrainTestSplit_Partition(t *testing.T) {
	X, y := indexedData(10)

	XTrain, XTest, yTrain, yTest, err := TrainTestSplit(X, y, 0.2, 1)
	require.NoError(t, err)

	nTrain, _ := XTrain.Dims()
	nTest, _ := XTest.Dims()
	assert.Equal(t, 8, nTrain)
	assert.Equal(t, 2, nTest)

	// Disjoint and complete: every original index appears exactly once
	seen := make(map[float64]int)
	for i := 0; i < nTrain; i++ {
		seen[XTrain.At(i, 0)]++
		// y rows travel with their X rows
		assert.Equal(t, XTrain.At(i, 0)*10, yTrain.At(i, 0))
	}
	for i := 0; i < nTest; i++ {
		seen[XTest.At(i, 0)]++
		assert.Equal(t, XTest.At(i, 0)*10, yTest.At(i, 0))
	}
	assert.Len(t, seen, 10)
	for idx, count := range seen {
		assert.Equal(t, 1, count, "index %v appeared %d times", idx, count)
	}
}

func TestTrainTestSplit_Reproducible(t *testing.T) {
	X, y := indexedData(20)

	a1, b1, _, _, err := TrainTestSplit(X, y, 0.25, 9)
	require.NoError(t, err)
	a2, b2, _, _, err := TrainTestSplit(X, y, 0.25, 9)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2))
	assert.True(t, mat.Equal(b1, b2))
}

func TestTrainTestSplit_Validation(t *testing.T) {
	X, y := indexedData(10)

	var valErr *errors.ValidationError
	_, _, _, _, err := TrainTestSplit(X, y, 0, 1)
	require.True(t, errors.As(err, &valErr))

	_, _, _, _, err = TrainTestSplit(X, y, 1, 1)
	require.True(t, errors.As(err, &valErr))

	var dimErr *errors.DimensionError
	_, _, _, _, err = TrainTestSplit(X, mat.NewDense(5, 1, nil), 0.2, 1)
	require.True(t, errors.As(err, &dimErr))

	_, _, _, _, err = TrainTestSplit(X, mat.NewDense(10, 2, nil), 0.2, 1)
	var vErr *errors.ValueError
	require.True(t, errors.As(err, &vErr))

	// A single sample cannot be split
	X1, y1 := indexedData(1)
	_, _, _, _, err = TrainTestSplit(X1, y1, 0.5, 1)
	require.Error(t, err)
}
