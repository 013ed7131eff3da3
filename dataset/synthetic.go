// Package dataset provides synthetic data generation and train/test
// splitting for regression experiments. Both are seed-controlled so that
// experiments and tests are reproducible.
package dataset

import (
	"math/rand/v2"

	"github.com/gradientlab/descent/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// genConfig holds MakeRegression settings.
type genConfig struct {
	noise     float64
	seed      uint64
	coef      []float64
	intercept float64
	hasCoef   bool
}

// GenOption configures MakeRegression.
type GenOption func(*genConfig)

// WithNoise sets the standard deviation of the Gaussian noise added to the
// targets. The default is 0 (noiseless).
func WithNoise(noise float64) GenOption {
	return func(c *genConfig) {
		c.noise = noise
	}
}

// WithSeed sets the random seed for features, coefficients and noise.
func WithSeed(seed uint64) GenOption {
	return func(c *genConfig) {
		c.seed = seed
	}
}

// WithCoefficients fixes the ground-truth weights and intercept instead of
// drawing them at random. len(coef) must equal the feature count.
func WithCoefficients(coef []float64, intercept float64) GenOption {
	return func(c *genConfig) {
		c.coef = coef
		c.intercept = intercept
		c.hasCoef = true
	}
}

// MakeRegression generates a random regression problem:
//
//	X[i][j] ~ N(0, 1)
//	y[i]    = Σ_j X[i][j]*coef[j] + intercept + noise*N(0, 1)
//
// X is nSamples x nFeatures, y is nSamples x 1. The returned coef and
// intercept are the ground-truth parameters the targets were generated
// from. The same seed always produces the same dataset.
func MakeRegression(nSamples, nFeatures int, opts ...GenOption) (X, y *mat.Dense, coef []float64, intercept float64, err error) {
	if nSamples < 1 {
		return nil, nil, nil, 0, errors.NewValidationError("n_samples", "must be at least 1", nSamples)
	}
	if nFeatures < 1 {
		return nil, nil, nil, 0, errors.NewValidationError("n_features", "must be at least 1", nFeatures)
	}

	cfg := genConfig{seed: 42}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.noise < 0 {
		return nil, nil, nil, 0, errors.NewValidationError("noise", "must be non-negative", cfg.noise)
	}
	if cfg.hasCoef && len(cfg.coef) != nFeatures {
		return nil, nil, nil, 0, errors.NewDimensionError("MakeRegression", nFeatures, len(cfg.coef), 1)
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))

	if cfg.hasCoef {
		coef = make([]float64, nFeatures)
		copy(coef, cfg.coef)
		intercept = cfg.intercept
	} else {
		coef = make([]float64, nFeatures)
		for j := range coef {
			coef[j] = rng.NormFloat64()
		}
		intercept = rng.NormFloat64()
	}

	X = mat.NewDense(nSamples, nFeatures, nil)
	y = mat.NewDense(nSamples, 1, nil)

	for i := 0; i < nSamples; i++ {
		target := intercept
		for j := 0; j < nFeatures; j++ {
			v := rng.NormFloat64()
			X.Set(i, j, v)
			target += v * coef[j]
		}
		if cfg.noise > 0 {
			target += cfg.noise * rng.NormFloat64()
		}
		y.Set(i, 0, target)
	}

	return X, y, coef, intercept, nil
}
