package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gradientlab/descent/dataset"
	"github.com/gradientlab/descent/metrics"
	"github.com/gradientlab/descent/pkg/errors"
	"github.com/gradientlab/descent/pkg/log"
)

// lineData returns a noiseless y = 2x + 1 problem.
func lineData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
	return X, y
}

func TestGDRegressor_FitRecoversLine(t *testing.T) {
	X, y := lineData()

	model := NewGDRegressor(
		WithLearningRate(0.05),
		WithEpochs(5000),
		WithRandomState(1),
	)
	require.NoError(t, model.Fit(X, y))

	coef := model.Coef()
	require.Len(t, coef, 1)
	assert.InDelta(t, 2.0, coef[0], 0.01)
	assert.InDelta(t, 1.0, model.Intercept(), 0.01)

	XTest := mat.NewDense(2, 1, []float64{5, 6})
	pred, err := model.Predict(XTest)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, pred.At(0, 0), 0.05)
	assert.InDelta(t, 13.0, pred.At(1, 0), 0.05)
}

func TestGDRegressor_LossHistoryLength(t *testing.T) {
	X, y := lineData()

	for _, epochs := range []int{1, 7, 100} {
		model := NewGDRegressor(
			WithLearningRate(0.01),
			WithEpochs(epochs),
			WithRandomState(0),
		)
		require.NoError(t, model.Fit(X, y))
		assert.Len(t, model.LossHistory(), epochs)
		assert.Equal(t, epochs, model.NIter())
	}
}

func TestGDRegressor_LossDecreases(t *testing.T) {
	X, y := lineData()

	model := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(1000),
		WithRandomState(3),
	)
	require.NoError(t, model.Fit(X, y))

	history := model.LossHistory()
	assert.Less(t, history[len(history)-1], history[0])

	// On average non-increasing: increases should be rare for a
	// well-conditioned problem with a small step size.
	increases := 0
	for i := 1; i < len(history); i++ {
		if history[i] > history[i-1] {
			increases++
		}
	}
	assert.LessOrEqual(t, increases, len(history)/10)
}

func TestGDRegressor_Reproducibility(t *testing.T) {
	X, y := lineData()

	train := func() *GDRegressor {
		m := NewGDRegressor(
			WithLearningRate(0.02),
			WithEpochs(500),
			WithRandomState(42),
		)
		require.NoError(t, m.Fit(X, y))
		return m
	}

	m1 := train()
	m2 := train()

	// Bit-identical, not merely close
	assert.Equal(t, m1.Coef(), m2.Coef())
	assert.Equal(t, m1.Intercept(), m2.Intercept())
	assert.Equal(t, m1.LossHistory(), m2.LossHistory())
}

func TestGDRegressor_InitialParams(t *testing.T) {
	X, y := lineData()

	// Starting at the optimum, every recorded loss is zero and the
	// parameters stay put.
	model := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(10),
		WithInitialParams([]float64{2}, 1),
	)
	require.NoError(t, model.Fit(X, y))
	assert.Equal(t, []float64{2.0}, model.Coef())
	assert.Equal(t, 1.0, model.Intercept())
	for _, loss := range model.LossHistory() {
		assert.Equal(t, 0.0, loss)
	}

	// Wrong initial weight length is a dimension error
	bad := NewGDRegressor(WithInitialParams([]float64{1, 2}, 0))
	err := bad.Fit(X, y)
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
}

func TestGDRegressor_HyperparameterValidation(t *testing.T) {
	X, y := lineData()

	tests := []struct {
		name  string
		opts  []Option
		param string
	}{
		{"zero learning rate", []Option{WithLearningRate(0)}, "learning_rate"},
		{"negative learning rate", []Option{WithLearningRate(-0.1)}, "learning_rate"},
		{"zero epochs", []Option{WithEpochs(0)}, "epochs"},
		{"negative epochs", []Option{WithEpochs(-5)}, "epochs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewGDRegressor(tt.opts...)
			err := model.Fit(X, y)
			require.Error(t, err)

			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.param, valErr.ParamName)
			assert.False(t, model.IsFitted())
		})
	}
}

func TestGDRegressor_DimensionValidation(t *testing.T) {
	model := NewGDRegressor(WithEpochs(1), WithRandomState(0))

	// X and y disagree on sample count
	err := model.Fit(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))

	// y must be a column vector
	err = model.Fit(mat.NewDense(3, 1, nil), mat.NewDense(3, 2, nil))
	var valErr *errors.ValueError
	require.True(t, errors.As(err, &valErr))

	// Predict with the wrong feature count after a valid fit
	X, y := lineData()
	require.NoError(t, model.Fit(X, y))
	_, err = model.Predict(mat.NewDense(2, 3, nil))
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestGDRegressor_NotFitted(t *testing.T) {
	model := NewGDRegressor()

	_, err := model.Predict(mat.NewDense(1, 1, []float64{1}))
	var notFitted *errors.NotFittedError
	require.True(t, errors.As(err, &notFitted))

	_, err = model.Score(mat.NewDense(1, 1, []float64{1}), mat.NewDense(1, 1, []float64{1}))
	require.True(t, errors.As(err, &notFitted))

	assert.Nil(t, model.Coef())
	assert.Nil(t, model.LossHistory())
	assert.Equal(t, 0.0, model.Intercept())
}

func TestGDRegressor_Divergence(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	X, y := lineData()
	model := NewGDRegressor(
		WithLearningRate(2.0), // far too large for this data
		WithEpochs(50),
		WithRandomState(0),
	)
	require.NoError(t, model.Fit(X, y))

	history := model.LossHistory()
	last := history[len(history)-1]
	assert.True(t, math.IsNaN(last) || math.IsInf(last, 0) || last > history[0],
		"expected the loss history to reveal divergence, got first=%g last=%g", history[0], last)

	require.NotNil(t, captured, "expected a divergence warning")
	var divergence *errors.DivergenceWarning
	require.True(t, errors.As(captured, &divergence))
	assert.Equal(t, 50, divergence.Epochs)
}

func TestGDRegressor_Callbacks(t *testing.T) {
	X, y := lineData()

	var recorded []float64
	model := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(20),
		WithRandomState(0),
		WithCallback(RecordEvaluation(&recorded)),
	)
	require.NoError(t, model.Fit(X, y))
	assert.Equal(t, model.LossHistory(), recorded)

	// A failing callback aborts training
	failing := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(20),
		WithRandomState(0),
		WithCallback(func(env *CallbackEnv) error {
			return errors.New("callback boom")
		}),
	)
	err := failing.Fit(X, y)
	require.Error(t, err)
	assert.False(t, failing.IsFitted())
}

func TestGDRegressor_TrainingLogs(t *testing.T) {
	X, y := lineData()

	logger, _ := log.NewTestLogger(log.LevelDebug)
	model := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(5),
		WithRandomState(0),
		WithLogger(logger),
	)
	require.NoError(t, model.Fit(X, y))

	assert.True(t, logger.ContainsMessage("Training started"))
	assert.True(t, logger.ContainsMessage("Training completed"))
	assert.True(t, logger.ContainsField(log.SamplesKey, 4))
	assert.True(t, logger.ContainsField(log.FeaturesKey, 1))
}

func TestGDRegressor_EndToEnd(t *testing.T) {
	trueCoef := []float64{3, 2, 1.5}
	const trueIntercept = 4.0

	X, y, _, _, err := dataset.MakeRegression(100, 3,
		dataset.WithCoefficients(trueCoef, trueIntercept),
		dataset.WithNoise(0.1),
		dataset.WithSeed(7),
	)
	require.NoError(t, err)

	XTrain, XTest, yTrain, yTest, err := dataset.TrainTestSplit(X, y, 0.2, 7)
	require.NoError(t, err)

	model := NewGDRegressor(
		WithLearningRate(0.01),
		WithEpochs(10000),
		WithRandomState(7),
	)
	require.NoError(t, model.Fit(XTrain, yTrain))

	coef := model.Coef()
	require.Len(t, coef, 3)
	for j, want := range trueCoef {
		assert.InDelta(t, want, coef[j], 0.5, "coefficient %d", j)
	}
	assert.InDelta(t, trueIntercept, model.Intercept(), 0.5)

	yPred, err := model.Predict(XTest)
	require.NoError(t, err)
	testMSE, err := metrics.MSEMatrix(yTest, yPred)
	require.NoError(t, err)
	assert.Less(t, testMSE, 0.1, "held-out MSE should be close to the noise variance")

	r2, err := model.Score(XTest, yTest)
	require.NoError(t, err)
	assert.Greater(t, r2, 0.95)
}
