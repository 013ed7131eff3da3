package log

// Standard attribute keys. Keys follow a hierarchical naming convention
// ("model.name", "data.samples") so records can be filtered by prefix.

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "GDRegressor".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "regression", "dataset".
	ComponentKey = "ml.component"

	// PhaseKey indicates the lifecycle phase: "training", "inference",
	// "validation".
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training progress and performance.
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"

	// EpochKey records the current epoch during training.
	EpochKey = "training.epoch"

	// LossKey records the loss value at a given epoch or evaluation.
	LossKey = "metrics.loss"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"
)

// Hyperparameters and configuration.
const (
	// LearningRateKey records the fixed gradient-descent step size.
	LearningRateKey = "hyperparams.learning_rate"

	// EpochsKey records the configured epoch budget.
	EpochsKey = "hyperparams.epochs"

	// RandomSeedKey records the seed used for parameter initialization.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute values for OperationKey and PhaseKey.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"
	PhaseTesting   = "testing"
)
