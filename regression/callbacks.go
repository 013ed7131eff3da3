package regression

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// CallbackEnv is the per-epoch snapshot passed to callbacks. Epoch counts
// from 0; Loss is the MSE recorded for that epoch.
type CallbackEnv struct {
	Epoch        int
	Epochs       int
	Loss         float64
	LearningRate float64
}

// Callback is invoked after each training epoch. Callbacks are a read-only
// side channel: they must not alter the numeric outcome of training. A
// returned error aborts Fit.
type Callback func(env *CallbackEnv) error

// PrintEvaluation prints the loss every period epochs.
func PrintEvaluation(period int) Callback {
	if period < 1 {
		period = 1
	}
	return func(env *CallbackEnv) error {
		if env.Epoch%period == 0 {
			fmt.Printf("[%d] loss: %.6f\n", env.Epoch, env.Loss)
		}
		return nil
	}
}

// RecordEvaluation appends each epoch's loss to history. The regressor
// already keeps its own loss history; this callback is for callers that
// want the values streamed into their own slice.
func RecordEvaluation(history *[]float64) Callback {
	return func(env *CallbackEnv) error {
		*history = append(*history, env.Loss)
		return nil
	}
}

// ProgressBar renders a terminal progress bar over the epoch budget,
// showing the current loss in the description.
func ProgressBar(description string) Callback {
	var bar *progressbar.ProgressBar
	return func(env *CallbackEnv) error {
		if bar == nil {
			bar = progressbar.Default(int64(env.Epochs), description)
		}
		bar.Describe(fmt.Sprintf("%s (loss: %.6f)", description, env.Loss))
		return bar.Add(1)
	}
}
