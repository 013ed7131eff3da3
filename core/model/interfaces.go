package model

import (
	"gonum.org/v1/gonum/mat"
)

// Estimator is the interface shared by all trainable models.
type Estimator interface {
	// Fit trains the model on X (n_samples x n_features) and y
	// (n_samples x 1).
	Fit(X, y mat.Matrix) error

	// Predict returns predictions for X as an n_samples x 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is an estimator scored by the coefficient of determination.
type Regressor interface {
	Estimator

	// Score computes R-squared on the given data.
	Score(X, y mat.Matrix) (float64, error)
}
