package dataset

import (
	"math/rand/v2"

	"github.com/gradientlab/descent/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// TrainTestSplit shuffles the samples of X and y with the given seed and
// partitions them into disjoint train and test subsets. testSize is the
// fraction of samples assigned to the test subset and must leave at least
// one sample on each side.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed uint64) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	n, k := X.Dims()
	ry, cy := y.Dims()

	if ry != n {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", n, ry, 0)
	}
	if cy != 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "y must be a column vector")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}

	nTest := int(float64(n) * testSize)
	if nTest < 1 {
		nTest = 1
	}
	nTrain := n - nTest
	if nTrain < 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "not enough samples to split")
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	XTrain = mat.NewDense(nTrain, k, nil)
	yTrain = mat.NewDense(nTrain, 1, nil)
	XTest = mat.NewDense(nTest, k, nil)
	yTest = mat.NewDense(nTest, 1, nil)

	for row, idx := range indices[:nTrain] {
		for j := 0; j < k; j++ {
			XTrain.Set(row, j, X.At(idx, j))
		}
		yTrain.Set(row, 0, y.At(idx, 0))
	}
	for row, idx := range indices[nTrain:] {
		for j := 0; j < k; j++ {
			XTest.Set(row, j, X.At(idx, j))
		}
		yTest.Set(row, 0, y.At(idx, 0))
	}

	return XTrain, XTest, yTrain, yTest, nil
}
