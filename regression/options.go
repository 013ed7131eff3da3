package regression

import (
	"github.com/gradientlab/descent/pkg/log"
)

// Option configures a GDRegressor.
type Option func(*GDRegressor)

// WithLearningRate sets the fixed gradient-descent step size. Fit rejects
// non-positive values.
func WithLearningRate(lr float64) Option {
	return func(r *GDRegressor) {
		r.learningRate = lr
	}
}

// WithEpochs sets the number of training iterations. Fit rejects values
// below 1.
func WithEpochs(epochs int) Option {
	return func(r *GDRegressor) {
		r.epochs = epochs
	}
}

// WithRandomState sets the seed for random parameter initialization. Two
// regressors with the same seed, data and hyperparameters produce identical
// results. Negative seeds select a non-deterministic source.
func WithRandomState(seed int64) Option {
	return func(r *GDRegressor) {
		r.randomState = seed
	}
}

// WithInitialParams supplies the starting weights and intercept instead of
// drawing them at random. The weight slice is copied at the start of Fit;
// its length must match the feature count of the training data.
func WithInitialParams(weights []float64, intercept float64) Option {
	return func(r *GDRegressor) {
		r.initWeights = weights
		r.initIntercept = intercept
		r.hasInit = true
	}
}

// WithCallback registers a callback invoked after every epoch. Callbacks
// observe training progress; they cannot stop the run.
func WithCallback(cb Callback) Option {
	return func(r *GDRegressor) {
		r.callbacks = append(r.callbacks, cb)
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger log.Logger) Option {
	return func(r *GDRegressor) {
		r.logger = logger
	}
}
