// Package csoaa implements the cost-sensitive one-against-all reduction.
//
// The CSOAA type turns one cost-sensitive multiclass example into one
// regression sub-example per candidate label: the example's shared feature
// vector, the label's cost as the target, and the label id as the weight
// subspace offset. Prediction scores every candidate the same way and picks
// the lowest estimated cost. The LDF variant does the same over
// label-dependent feature vectors, one per candidate, at a fixed offset.
//
// Both types drive a single base learner through the model.Learner contract
// and expose model.CostSensitiveLearner one level up, so they can themselves
// serve as the inner learner of a further layer.
package csoaa

import (
	"math"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/core/parallel"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

const (
	opLearn   = "csoaa.Learn"
	opPredict = "csoaa.Predict"

	defaultParallelThreshold = 64
)

// CSOAA is the one-against-all reduction over a shared feature vector.
// Each candidate label owns the weight subspace addressed by its id, so one
// base learner carries every per-label regressor without interference.
//
// Learn must be called from a single goroutine; Predict is safe to call
// concurrently when the base learner's Predict is.
type CSOAA struct {
	base model.Learner

	numLabels         int
	weightScaling     float64
	binarize          bool
	binThreshold      float64
	parallelPredict   bool
	parallelThreshold int

	state *model.StateManager
}

// New creates a CSOAA reduction over the given base learner. WithNumLabels
// is required: the bound defines both the largest label id accepted during
// learning and the out-of-band candidate set for examples that arrive
// without pairs.
func New(base model.Learner, options ...Option) (*CSOAA, error) {
	if base == nil {
		return nil, errors.WithStack(errors.ErrNilBaseLearner)
	}

	c := &CSOAA{
		base:              base,
		weightScaling:     1.0,
		parallelThreshold: defaultParallelThreshold,
		state:             model.NewStateManager(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.numLabels < 1 {
		return nil, errors.NewMissingNumLabelsError("csoaa")
	}

	return c, nil
}

// Learn emits one sub-example per label-cost pair in ascending label order
// and feeds each to the base learner. Labels absent from the pairs are
// skipped entirely, never treated as cost zero. The example is validated
// before the first base call, so an error for a malformed example implies no
// partial update happened.
func (c *CSOAA) Learn(ex *costs.Example) (err error) {
	defer errors.Recover(&err, opLearn)

	if err := ex.ValidateForLearning(costs.SharedFeatures); err != nil {
		return err
	}

	pairs := ex.SortedPairs()
	for _, pair := range pairs {
		if pair.Label > c.numLabels {
			return errors.NewMalformedExampleError(opLearn, "label id exceeds the configured label count", pair.Label)
		}
	}

	weight := ex.ImportanceWeight() * c.weightScaling

	var inst model.Instance
	defer inst.Clear()
	for _, pair := range pairs {
		inst.Set(ex.Shared, regressionTarget(pair.Cost, c.binarize, c.binThreshold), weight, pair.Label)
		if err := c.base.Learn(&inst); err != nil {
			return errors.Wrapf(err, "%s: label %d", opLearn, pair.Label)
		}
	}

	c.state.CountExample(len(pairs), 0)
	return nil
}

// Predict returns the candidate label with the lowest estimated cost, ties
// broken by the smallest label id.
func (c *CSOAA) Predict(ex *costs.Example) (int, error) {
	pred, err := c.PredictScores(ex)
	if err != nil {
		return 0, err
	}
	return pred.Label, nil
}

// PredictScores scores every candidate label and returns the winner together
// with the per-label estimated costs in ascending label order. An example
// without pairs is scored over the configured label universe 1..NumLabels.
func (c *CSOAA) PredictScores(ex *costs.Example) (model.Prediction, error) {
	if err := ex.Validate(costs.SharedFeatures); err != nil {
		return model.Prediction{}, err
	}

	cands := ex.Candidates()
	if len(cands) == 0 {
		cands = c.labelUniverse()
	}
	if len(cands) == 0 {
		return model.Prediction{}, errors.NewNoCandidateLabelsError(opPredict)
	}

	scores := make([]model.LabelScore, len(cands))
	scoreRange := func(start, end int) (err error) {
		defer errors.Recover(&err, opPredict)
		var inst model.Instance
		defer inst.Clear()
		for i := start; i < end; i++ {
			inst.Set(ex.Shared, 0, 1, cands[i])
			s, err := c.base.Predict(&inst)
			if err != nil {
				return errors.Wrapf(err, "%s: label %d", opPredict, cands[i])
			}
			scores[i] = model.LabelScore{Label: cands[i], Score: s}
		}
		return nil
	}

	var err error
	if c.parallelPredict {
		err = parallel.ParallelizeWithThresholdError(len(cands), c.parallelThreshold, scoreRange)
	} else {
		err = scoreRange(0, len(cands))
	}
	if err != nil {
		return model.Prediction{}, err
	}

	return pickMin(opPredict, scores, c.state.Snapshot().Examples)
}

// Stats returns the reduction's online counters.
func (c *CSOAA) Stats() model.Stats {
	return c.state.Snapshot()
}

// labelUniverse is the out-of-band candidate set 1..NumLabels.
func (c *CSOAA) labelUniverse() []int {
	labels := make([]int, c.numLabels)
	for i := range labels {
		labels[i] = i + 1
	}
	return labels
}

// regressionTarget maps a label's cost to the sub-example target. In
// binarized mode preferred labels (cost at or below the threshold) train
// toward -1 and the rest toward +1, keeping argmin prediction consistent.
func regressionTarget(cost float64, binarize bool, threshold float64) float64 {
	if !binarize {
		return cost
	}
	if cost <= threshold {
		return -1
	}
	return 1
}

// pickMin selects the lowest-scoring candidate. Scores arrive in ascending
// label order, so a strict comparison ties to the smallest label id. A NaN
// or Inf score is surfaced as a numerical instability instead of silently
// winning or losing the comparison.
func pickMin(op string, scores []model.LabelScore, example int64) (model.Prediction, error) {
	best := -1
	bestScore := math.Inf(1)
	for _, ls := range scores {
		if err := errors.CheckScalar(op, ls.Score, example); err != nil {
			return model.Prediction{}, err
		}
		if best < 0 || ls.Score < bestScore {
			best = ls.Label
			bestScore = ls.Score
		}
	}
	return model.Prediction{Label: best, Scores: scores}, nil
}
