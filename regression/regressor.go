// Package regression implements linear regression trained by batch gradient
// descent with a fixed learning rate and a fixed epoch budget.
//
// The implementation is deliberately plain: no regularization, no
// closed-form solving, no feature scaling, no convergence detection and no
// optimizer variants. Each epoch computes the full-batch MSE gradient and
// takes one step against it; the loss at every epoch is recorded so the
// optimization path can be inspected or plotted afterwards.
package regression

import (
	"math/rand"
	"time"

	"github.com/gradientlab/descent/core/model"
	"github.com/gradientlab/descent/core/parallel"
	"github.com/gradientlab/descent/metrics"
	"github.com/gradientlab/descent/pkg/errors"
	"github.com/gradientlab/descent/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// GDRegressor is a linear regression model fitted by batch gradient descent.
// It owns the weight vector and intercept during training and exposes them,
// together with the per-epoch loss history, once Fit returns.
type GDRegressor struct {
	state *model.StateManager

	// Hyperparameters
	learningRate float64
	epochs       int
	randomState  int64

	// Optional caller-supplied initial parameters
	initWeights   []float64
	initIntercept float64
	hasInit       bool

	callbacks []Callback
	logger    log.Logger

	// Learned parameters
	coef_        []float64
	intercept_   float64
	nFeatures_   int
	lossHistory_ []float64

	rand *rand.Rand
}

// NewGDRegressor creates a gradient-descent regressor with a learning rate
// of 0.01 and an epoch budget of 1000 unless overridden by options.
func NewGDRegressor(opts ...Option) *GDRegressor {
	r := &GDRegressor{
		state:        model.NewStateManager(),
		learningRate: 0.01,
		epochs:       1000,
		randomState:  -1,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = log.GetLoggerWithName("regression").With(
			log.ModelNameKey, "GDRegressor",
		)
	}

	if r.randomState >= 0 {
		r.rand = rand.New(rand.NewSource(r.randomState))
	} else {
		r.rand = rand.New(rand.NewSource(rand.Int63()))
	}

	return r
}

// Fit trains the model on X (n_samples x n_features) and y (n_samples x 1).
//
// The weights and intercept are initialized once, from the standard normal
// distribution (or from WithInitialParams), then updated for exactly the
// configured number of epochs:
//
//	w ← w - learningRate * dw
//	c ← c - learningRate * dc
//
// There is no early stopping: the loop always runs the full epoch budget.
// After a successful call, LossHistory has one entry per epoch. If the
// final loss is non-finite or worse than the first, a DivergenceWarning is
// emitted through pkg/errors.Warn; the fitted parameters are still
// returned, since a bad learning rate is a tuning concern, not an error.
func (r *GDRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GDRegressor.Fit")

	if r.learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", r.learningRate)
	}
	if r.epochs < 1 {
		return errors.NewValidationError("epochs", "must be at least 1", r.epochs)
	}

	n, k := X.Dims()
	ry, cy := y.Dims()

	if n == 0 || k == 0 {
		return errors.NewModelError("GDRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != n {
		return errors.NewDimensionError("GDRegressor.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("GDRegressor.Fit", "y must be a column vector")
	}

	startTime := time.Now()
	r.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, n,
		log.FeaturesKey, k,
		log.LearningRateKey, r.learningRate,
		log.EpochsKey, r.epochs,
		log.RandomSeedKey, r.randomState,
	)

	weights, intercept, err := r.initialParams(k)
	if err != nil {
		return err
	}

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	history := make([]float64, 0, r.epochs)

	for epoch := 0; epoch < r.epochs; epoch++ {
		dw, dc, loss, gerr := Gradients(X, yVec, weights, intercept)
		if gerr != nil {
			return gerr
		}

		for j := range weights {
			weights[j] -= r.learningRate * dw[j]
		}
		intercept -= r.learningRate * dc

		history = append(history, loss)

		if len(r.callbacks) > 0 {
			env := &CallbackEnv{
				Epoch:        epoch,
				Epochs:       r.epochs,
				Loss:         loss,
				LearningRate: r.learningRate,
			}
			for _, cb := range r.callbacks {
				if cerr := cb(env); cerr != nil {
					return errors.Wrapf(cerr, "callback failed at epoch %d", epoch)
				}
			}
		}
	}

	first, final := history[0], history[len(history)-1]
	if errors.CheckScalar("loss", final, r.epochs) != nil || final > first {
		errors.Warn(errors.NewDivergenceWarning("GDRegressor", r.epochs, first, final))
	}

	r.coef_ = weights
	r.intercept_ = intercept
	r.nFeatures_ = k
	r.lossHistory_ = history
	r.state.SetDimensions(k, n)
	r.state.SetFitted()

	r.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.EpochKey, r.epochs,
		log.LossKey, final,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)

	return nil
}

// initialParams produces the starting weights and intercept, either from
// WithInitialParams or drawn from the standard normal distribution.
func (r *GDRegressor) initialParams(nFeatures int) ([]float64, float64, error) {
	if r.hasInit {
		if len(r.initWeights) != nFeatures {
			return nil, 0, errors.NewDimensionError("GDRegressor.Fit", nFeatures, len(r.initWeights), 1)
		}
		weights := make([]float64, nFeatures)
		copy(weights, r.initWeights)
		return weights, r.initIntercept, nil
	}

	weights := make([]float64, nFeatures)
	for j := range weights {
		weights[j] = r.rand.NormFloat64()
	}
	return weights, r.rand.NormFloat64(), nil
}

// Predict applies the fitted model to X and returns an n_samples x 1 matrix
// of predictions. It returns a NotFittedError before Fit and a
// DimensionError when X's column count differs from the training data.
func (r *GDRegressor) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "GDRegressor.Predict")

	if !r.state.IsFitted() {
		return nil, errors.NewNotFittedError("GDRegressor", "Predict")
	}

	n, k := X.Dims()
	if k != r.nFeatures_ {
		return nil, errors.NewDimensionError("GDRegressor.Predict", r.nFeatures_, k, 1)
	}

	predictions := mat.NewDense(n, 1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := r.intercept_
			for j := 0; j < k; j++ {
				pred += X.At(i, j) * r.coef_[j]
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Score computes the coefficient of determination R² on the given data.
func (r *GDRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !r.state.IsFitted() {
		return 0, errors.NewNotFittedError("GDRegressor", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	yTrueVec := mat.NewVecDense(n, nil)
	yPredVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}

// IsFitted reports whether the model has been trained.
func (r *GDRegressor) IsFitted() bool {
	return r.state.IsFitted()
}

// Coef returns a copy of the learned weight vector, or nil before Fit.
func (r *GDRegressor) Coef() []float64 {
	if r.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(r.coef_))
	copy(coef, r.coef_)
	return coef
}

// Intercept returns the learned intercept, or 0 before Fit.
func (r *GDRegressor) Intercept() float64 {
	if !r.state.IsFitted() {
		return 0
	}
	return r.intercept_
}

// LossHistory returns a copy of the per-epoch training loss. Its length
// equals the configured epoch count after a successful Fit.
func (r *GDRegressor) LossHistory() []float64 {
	if r.lossHistory_ == nil {
		return nil
	}
	history := make([]float64, len(r.lossHistory_))
	copy(history, r.lossHistory_)
	return history
}

// NFeatures returns the feature count seen during fitting, or 0 before Fit.
func (r *GDRegressor) NFeatures() int {
	return r.nFeatures_
}

// NIter returns the number of gradient-descent iterations actually run,
// which is always the configured epoch count once the model is fitted.
func (r *GDRegressor) NIter() int {
	return len(r.lossHistory_)
}
