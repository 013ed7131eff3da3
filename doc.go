// Package descent is an educational linear regression library that trains
// models with plain batch gradient descent instead of a closed-form solver,
// so the iterative optimization mechanics stay visible: per-epoch loss,
// gradients, and parameter updates.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/gradientlab/descent/regression"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Training data: y = 2x + 1
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    model := regression.NewGDRegressor(
//	        regression.WithLearningRate(0.05),
//	        regression.WithEpochs(2000),
//	        regression.WithRandomState(42),
//	    )
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(model.Coef(), model.Intercept())
//	}
//
// # Packages
//
//   - regression: the gradient-descent trainer, predictor and callbacks
//   - metrics: MSE and other regression metrics
//   - dataset: synthetic data generation and train/test splitting
//   - visualize: loss-curve and fitted-line plots
//   - core/model, core/parallel, pkg/errors, pkg/log: shared infrastructure
package descent
