package regression

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gradientlab/descent/pkg/errors"
)

// The model is ephemeral by default; these helpers exist so a fitted
// parameter set can be inspected or reloaded without retraining.

// modelEnvelope is the JSON document written by ExportParams.
type modelEnvelope struct {
	Name          string          `json:"name"`
	FormatVersion string          `json:"format_version"`
	Params        json.RawMessage `json:"params"`
}

// modelParams holds the fitted parameters.
type modelParams struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	NFeatures    int       `json:"n_features"`
}

const formatVersion = "1.0"

// ExportParams writes the fitted parameters as indented JSON. It returns a
// NotFittedError when called before Fit.
func (r *GDRegressor) ExportParams(w io.Writer) error {
	if !r.state.IsFitted() {
		return errors.NewNotFittedError("GDRegressor", "ExportParams")
	}

	params := modelParams{
		Coefficients: r.Coef(),
		Intercept:    r.intercept_,
		NFeatures:    r.nFeatures_,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return errors.Wrap(err, "failed to marshal params")
	}

	envelope := modelEnvelope{
		Name:          "GDRegressor",
		FormatVersion: formatVersion,
		Params:        paramsJSON,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&envelope); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}

	return nil
}

// ExportParamsFile writes the fitted parameters to a file.
func (r *GDRegressor) ExportParamsFile(filename string) error {
	if !r.state.IsFitted() {
		return errors.NewNotFittedError("GDRegressor", "ExportParamsFile")
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return r.ExportParams(file)
}

// LoadParams restores parameters exported by ExportParams and marks the
// model fitted. The loss history is not part of the format and stays nil.
func (r *GDRegressor) LoadParams(reader io.Reader) error {
	var envelope modelEnvelope
	if err := json.NewDecoder(reader).Decode(&envelope); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}

	if envelope.Name != "GDRegressor" {
		return errors.NewValueError("GDRegressor.LoadParams", "unexpected model name: "+envelope.Name)
	}

	var params modelParams
	if err := json.Unmarshal(envelope.Params, &params); err != nil {
		return errors.Wrap(err, "failed to unmarshal params")
	}

	if params.NFeatures != len(params.Coefficients) {
		return errors.NewDimensionError("GDRegressor.LoadParams", params.NFeatures, len(params.Coefficients), 1)
	}

	r.coef_ = params.Coefficients
	r.intercept_ = params.Intercept
	r.nFeatures_ = params.NFeatures
	r.lossHistory_ = nil
	r.state.SetDimensions(params.NFeatures, 0)
	r.state.SetFitted()

	return nil
}

// LoadParamsFile restores parameters from a file written by
// ExportParamsFile.
func (r *GDRegressor) LoadParamsFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return r.LoadParams(file)
}
