// Package log defines standard attribute keys for reduction operations.
//
// This file contains predefined attribute keys that keep logging consistent
// across costlearn. Using these standard keys enables log analysis and
// monitoring of online training runs without grepping free-form messages.
//
// The attributes are organized into categories:
//   - Reduction and Operation Context
//   - Label and Candidate Structure
//   - Training Progress
//   - Performance Metrics
//   - Error Context
//
// The keys follow a hierarchical naming convention (e.g., "reduction.kind",
// "labels.count") to enable structured log filtering.

package log

// Reduction and Operation Context
// These attributes identify the reduction and the operation being performed.
const (
	// ReductionKey identifies the reduction kind.
	// Standard values: "csoaa", "wap_ldf", "csoaa_ldf"
	ReductionKey = "reduction.kind"

	// OperationKey specifies the operation being performed.
	// Standard values: "learn", "predict", "predict_scores", "train"
	OperationKey = "reduction.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "csoaa", "wap", "metrics"
	ComponentKey = "reduction.component"
)

// Label and Candidate Structure
// These attributes describe the label structure of the examples being processed.
const (
	// LabelKey carries a single label id, for example the offending label of
	// a malformed example or the winner of a tournament.
	LabelKey = "labels.id"

	// NumLabelsKey is the configured label-count bound of a reduction.
	NumLabelsKey = "labels.count"

	// CandidatesKey is the number of candidate labels on an example.
	CandidatesKey = "labels.candidates"

	// FeaturesKey is the dimension of a feature vector.
	FeaturesKey = "data.features"

	// WeightKey is the importance weight attached to an example.
	WeightKey = "data.importance_weight"
)

// Training Progress
// These attributes track the state of an online pass.
const (
	// ExamplesKey is the number of examples processed so far.
	ExamplesKey = "train.examples"

	// SubExamplesKey is the number of sub-examples emitted to the base learner.
	SubExamplesKey = "train.sub_examples"

	// SkippedPairsKey is the number of zero-cost-difference pairs dropped.
	SkippedPairsKey = "train.skipped_pairs"

	// SkippedExamplesKey is the number of examples dropped by the streaming
	// trainer because they failed validation.
	SkippedExamplesKey = "train.skipped_examples"
)

// Performance Metrics
// These attributes capture timing and evaluation information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AverageCostKey records the average realized cost over an evaluation set.
	AverageCostKey = "metrics.average_cost"

	// RegretKey records the average regret against the minimum-cost labels.
	RegretKey = "metrics.regret"

	// CostKey records a single realized cost value.
	CostKey = "metrics.cost"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "MALFORMED_EXAMPLE", "INVALID_LDF_MAPPING"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "MalformedExampleError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging handler.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard reduction operations
	OperationLearn         = "learn"
	OperationPredict       = "predict"
	OperationPredictScores = "predict_scores"
	OperationTrain         = "train"

	// Standard error codes
	ErrorMalformedExample     = "MALFORMED_EXAMPLE"
	ErrorInvalidLDFMapping    = "INVALID_LDF_MAPPING"
	ErrorEmptyCandidateSet    = "EMPTY_CANDIDATE_SET"
	ErrorNoCandidateLabels    = "NO_CANDIDATE_LABELS"
	ErrorUnsupportedReduction = "UNSUPPORTED_REDUCTION"
	ErrorMissingNumLabels     = "MISSING_NUM_LABELS"
	ErrorNumerical            = "NUMERICAL_INSTABILITY"
)
