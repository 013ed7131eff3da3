// Command descent runs an end-to-end gradient-descent regression demo:
// generate a synthetic dataset, split it, train, evaluate on the held-out
// subset, and optionally plot the loss curve and fitted line.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gradientlab/descent/dataset"
	"github.com/gradientlab/descent/metrics"
	"github.com/gradientlab/descent/pkg/errors"
	"github.com/gradientlab/descent/pkg/log"
	"github.com/gradientlab/descent/regression"
	"github.com/gradientlab/descent/visualize"
)

var rootCommand = &cobra.Command{
	Use:   "descent",
	Short: "Train a linear regression model with batch gradient descent on synthetic data.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logLevel, _ := cmd.PersistentFlags().GetString("log-level")
		log.SetupLogger(logLevel)
		setupWarnings()

		samples, _ := cmd.PersistentFlags().GetInt("samples")
		features, _ := cmd.PersistentFlags().GetInt("features")
		noise, _ := cmd.PersistentFlags().GetFloat64("noise")
		seed, _ := cmd.PersistentFlags().GetUint64("seed")
		testSize, _ := cmd.PersistentFlags().GetFloat64("test-size")
		learningRate, _ := cmd.PersistentFlags().GetFloat64("learning-rate")
		epochs, _ := cmd.PersistentFlags().GetInt("epochs")
		progress, _ := cmd.PersistentFlags().GetBool("progress")
		lossPlot, _ := cmd.PersistentFlags().GetString("loss-plot")
		fitPlot, _ := cmd.PersistentFlags().GetString("fit-plot")

		X, y, trueCoef, trueIntercept, err := dataset.MakeRegression(samples, features,
			dataset.WithNoise(noise),
			dataset.WithSeed(seed),
		)
		if err != nil {
			return err
		}

		XTrain, XTest, yTrain, yTest, err := dataset.TrainTestSplit(X, y, testSize, seed)
		if err != nil {
			return err
		}

		opts := []regression.Option{
			regression.WithLearningRate(learningRate),
			regression.WithEpochs(epochs),
			regression.WithRandomState(int64(seed)),
		}
		if progress {
			opts = append(opts, regression.WithCallback(regression.ProgressBar("training")))
		}

		model := regression.NewGDRegressor(opts...)
		if err := model.Fit(XTrain, yTrain); err != nil {
			return err
		}

		fmt.Printf("true coefficients:    %v (intercept %.4f)\n", trueCoef, trueIntercept)
		fmt.Printf("learned coefficients: %v (intercept %.4f)\n", model.Coef(), model.Intercept())

		yPred, err := model.Predict(XTest)
		if err != nil {
			return err
		}
		testMSE, err := metrics.MSEMatrix(yTest, yPred)
		if err != nil {
			return err
		}
		r2, err := model.Score(XTest, yTest)
		if err != nil {
			return err
		}

		history := model.LossHistory()
		fmt.Printf("training loss: %.6f -> %.6f over %d epochs\n", history[0], history[len(history)-1], len(history))
		fmt.Printf("held-out MSE:  %.6f\n", testMSE)
		fmt.Printf("held-out R²:   %.6f\n", r2)

		if lossPlot != "" {
			if err := visualize.SaveLossCurve(history, lossPlot); err != nil {
				return err
			}
			fmt.Printf("loss curve written to %s\n", lossPlot)
		}
		if fitPlot != "" {
			if features != 1 {
				fmt.Println("skipping fit plot: only single-feature data can be plotted")
			} else if err := visualize.SaveRegressionLine(XTest, yTest, model.Coef(), model.Intercept(), fitPlot); err != nil {
				return err
			} else {
				fmt.Printf("regression plot written to %s\n", fitPlot)
			}
		}

		return nil
	},
}

// setupWarnings routes library warnings (e.g. a diverging loss) through
// zerolog so they come out structured alongside the rest of the logs.
func setupWarnings() {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := zl.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(marshaler)
		}
		event.Msg(warning.Error())
	})
}

func init() {
	rootCommand.PersistentFlags().Int("samples", 200, "number of synthetic samples to generate")
	rootCommand.PersistentFlags().Int("features", 1, "number of features")
	rootCommand.PersistentFlags().Float64("noise", 0.5, "standard deviation of target noise")
	rootCommand.PersistentFlags().Uint64("seed", 42, "random seed for data generation, splitting and initialization")
	rootCommand.PersistentFlags().Float64("test-size", 0.2, "fraction of samples held out for evaluation")
	rootCommand.PersistentFlags().Float64("learning-rate", 0.01, "gradient-descent step size")
	rootCommand.PersistentFlags().Int("epochs", 1000, "number of training epochs")
	rootCommand.PersistentFlags().Bool("progress", true, "show a training progress bar")
	rootCommand.PersistentFlags().String("loss-plot", "", "write the loss curve PNG to this path")
	rootCommand.PersistentFlags().String("fit-plot", "", "write the fitted-line PNG to this path (single feature only)")
	rootCommand.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
