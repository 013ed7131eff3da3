// Package visualize renders training diagnostics as PNG files: the
// loss-curve over epochs and, for single-feature data, the fitted
// regression line over a scatter of the samples. It is a pure sink; nothing
// in the training core depends on it.
package visualize

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gradientlab/descent/pkg/errors"
)

// SaveLossCurve plots the per-epoch loss history as a line chart and saves
// it to path as a PNG.
func SaveLossCurve(history []float64, path string) error {
	if len(history) == 0 {
		return errors.NewValueError("SaveLossCurve", "empty loss history")
	}

	// Non-finite entries (a diverged run) would break axis scaling
	pts := make(plotter.XYs, 0, len(history))
	for i, loss := range history {
		if !errors.IsFinite(loss) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: loss})
	}
	if len(pts) == 0 {
		return errors.NewValueError("SaveLossCurve", "no finite loss values to plot")
	}

	p := plot.New()
	p.Title.Text = "Training Loss"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "MSE"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build loss line")
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save loss curve")
	}
	return nil
}

// SaveRegressionLine plots single-feature samples as a scatter together
// with the fitted line y = w[0]*x + c and saves the figure to path as a
// PNG. It returns a DimensionError for multi-feature data, which has no
// two-dimensional rendering.
func SaveRegressionLine(X, y mat.Matrix, w []float64, c float64, path string) error {
	n, k := X.Dims()
	if k != 1 || len(w) != 1 {
		return errors.NewDimensionError("SaveRegressionLine", 1, k, 1)
	}
	ry, _ := y.Dims()
	if ry != n {
		return errors.NewDimensionError("SaveRegressionLine", n, ry, 0)
	}
	if n == 0 {
		return errors.NewValueError("SaveRegressionLine", "empty data")
	}

	points := make(plotter.XYs, n)
	minX, maxX := X.At(0, 0), X.At(0, 0)
	for i := 0; i < n; i++ {
		x := X.At(i, 0)
		points[i].X = x
		points[i].Y = y.At(i, 0)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	p := plot.New()
	p.Title.Text = "Linear Regression Fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	p.Add(scatter)

	fit := plotter.XYs{
		{X: minX, Y: w[0]*minX + c},
		{X: maxX, Y: w[0]*maxX + c},
	}
	line, err := plotter.NewLine(fit)
	if err != nil {
		return errors.Wrap(err, "failed to build fit line")
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save regression plot")
	}
	return nil
}
