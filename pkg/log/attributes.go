// Package log defines standard attribute keys for tabular modeling operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in bamboo. Using these standard keys enables better
// log analysis, monitoring, and debugging of data preparation workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Splitting and Balancing Context
//   - Prediction and Scoring Context
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.rows") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the estimator, component, and operation being performed.
const (
	// ModelNameKey identifies the type of estimator being driven.
	// Examples: "LogisticClassifier", "RidgeModel"
	ModelNameKey = "model.name"

	// OperationKey specifies the data preparation or modeling operation.
	// Standard values: "fit", "predict", "predict_proba", "split", "balance"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "frame", "modeling", "metrics", "plotting"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the modeling workflow.
	// Examples: "training", "testing", "scoring"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
// These attributes describe the structure of the tabular data being processed.
const (
	// SamplesKey indicates the number of rows in the dataset.
	SamplesKey = "data.rows"

	// FeaturesKey indicates the number of feature columns in the dataset.
	// Important for dimensionality tracking and debugging shape mismatches.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct target values.
	// Relevant for classification-oriented operations like balancing.
	ClassesKey = "data.classes"

	// WeightedKey indicates whether per-sample weights are attached.
	WeightedKey = "data.weighted"

	// DataTypeKey specifies the dtype of a column being processed.
	// Examples: "float", "int", "bool", "string"
	DataTypeKey = "data.dtype"
)

// Splitting and Balancing Context
// These attributes capture resampling parameters for reproducibility.
const (
	// TestSizeKey records the requested test fraction of a split.
	TestSizeKey = "split.test_size"

	// TrainSizeKey records the requested train fraction of a split.
	TrainSizeKey = "split.train_size"

	// TestRowsKey records the realized number of test rows.
	TestRowsKey = "split.test_rows"

	// TrainRowsKey records the realized number of train rows.
	TrainRowsKey = "split.train_rows"

	// FoldsKey records the number of folds in a cross-validation run.
	FoldsKey = "split.folds"

	// StrategyKey records the class balancing strategy in use.
	// Standard values: "truncate", "sample"
	StrategyKey = "balance.strategy"

	// SampleSizeKey records the requested total size for balanced sampling.
	SampleSizeKey = "balance.sample_size"

	// GroupSizeKey records the realized per-class group size after balancing.
	GroupSizeKey = "balance.group_size"

	// RandomSeedKey records the random seed for reproducibility.
	// Essential for debugging and ensuring reproducible resampling.
	RandomSeedKey = "config.random_seed"
)

// Prediction and Scoring Context
// These attributes describe scoring operations and their results.
const (
	// PredsKey indicates the number of prediction records produced.
	PredsKey = "preds.count"

	// ThresholdKey records the decision threshold used for classification.
	ThresholdKey = "preds.threshold"

	// TargetClassKey records the positive class a threshold summary scores against.
	TargetClassKey = "preds.target_class"
)

// Performance Metrics
// These attributes capture timing and evaluation results.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy for evaluation operations.
	// Range typically [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// PrecisionKey records precision for threshold evaluation.
	PrecisionKey = "metrics.precision"

	// RecallKey records recall for threshold evaluation.
	RecallKey = "metrics.recall"

	// R2ScoreKey records R² coefficient of determination for regression scoring.
	R2ScoreKey = "metrics.r2_score"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "UNKNOWN_KEY"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "KeyError", "DimensionError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check feature/target lengths", "Use a registered strategy name"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationSplit        = "split"
	OperationBalance      = "balance"
	OperationThreshold    = "threshold_summary"
	OperationCrossVal     = "cross_validate"

	// Standard phases
	PhaseTraining = "training"
	PhaseTesting  = "testing"
	PhaseScoring  = "scoring"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorUnknownKey        = "UNKNOWN_KEY"
	ErrorUndefinedMetric   = "UNDEFINED_METRIC"
)
