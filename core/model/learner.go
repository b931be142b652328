// Package model provides the learner contracts that reductions are built
// against: the base-learner interface consumed one sub-example at a time, and
// the cost-sensitive composite interface that reductions expose one level up.
package model

import (
	"github.com/YuminosukeSato/costlearn/costs"
)

// Learner is the base-learner contract. A base learner solves elementary
// regression or binary sub-problems: it scores one instance, and it folds one
// instance into its weight state. The learner is the sole owner of that
// state; reductions hold the interface value and never copy weights.
//
// Implementations must be deterministic given identical state and input, and
// Predict must not mutate state (a reduction configured for parallel scoring
// calls Predict concurrently).
type Learner interface {
	// Predict returns the score for one instance.
	Predict(in *Instance) (float64, error)

	// Learn folds one weighted instance into the learner's state.
	Learn(in *Instance) error
}

// CostSensitiveLearner is the composite contract a reduction exposes. It
// mirrors the base contract one level up, so a composite can itself serve as
// the inner learner of a further layer (see metrics.Progressive for a
// stacked wrapper).
type CostSensitiveLearner interface {
	// Learn consumes one cost-sensitive example. The example is fully
	// validated before any base-learner call, so a returned validation error
	// implies the base learner's state is untouched.
	Learn(ex *costs.Example) error

	// Predict returns the label with the lowest predicted cost, ties broken
	// by the smallest label id.
	Predict(ex *costs.Example) (int, error)

	// PredictScores returns the winning label together with the full
	// per-label diagnostic vector (estimated costs, win tallies, or margins,
	// depending on the reduction).
	PredictScores(ex *costs.Example) (Prediction, error)
}

// LabelScore is one candidate label's aggregated score.
type LabelScore struct {
	Label int
	Score float64
}

// Prediction is the outcome of scoring one example: the winning label and,
// for diagnostics, every candidate's aggregated score in ascending label
// order. The caller owns the slice.
type Prediction struct {
	Label  int
	Scores []LabelScore
}
