package csoaa

import (
	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/core/parallel"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

const (
	opLDFLearn   = "csoaa_ldf.Learn"
	opLDFPredict = "csoaa_ldf.Predict"
)

// LDF is the one-against-all reduction over label-dependent features. Each
// candidate label is regressed toward its cost through its own feature
// vector at offset 0: the vectors themselves distinguish the candidates, so
// candidate sets may vary freely per example and need no label-count bound.
//
// Learn must be called from a single goroutine; Predict is safe to call
// concurrently when the base learner's Predict is.
type LDF struct {
	base model.Learner

	weightScaling     float64
	binarize          bool
	binThreshold      float64
	parallelPredict   bool
	parallelThreshold int

	state *model.StateManager
}

// NewLDF creates a label-dependent one-against-all reduction over the given
// base learner.
func NewLDF(base model.Learner, options ...Option) (*LDF, error) {
	if base == nil {
		return nil, errors.WithStack(errors.ErrNilBaseLearner)
	}

	l := &LDF{
		base:              base,
		weightScaling:     1.0,
		parallelThreshold: defaultParallelThreshold,
		state:             model.NewStateManager(),
	}

	for _, opt := range options {
		opt(l)
	}

	return l, nil
}

// Learn emits one sub-example per label-cost pair in ascending label order,
// each built from the candidate's own feature vector. The label-dependent
// mapping is validated for completeness before the first base call, so an
// incomplete mapping never causes a partial update.
func (l *LDF) Learn(ex *costs.Example) (err error) {
	defer errors.Recover(&err, opLDFLearn)

	if err := ex.ValidateForLearning(costs.LabelDependentFeatures); err != nil {
		return err
	}

	weight := ex.ImportanceWeight() * l.weightScaling

	var inst model.Instance
	defer inst.Clear()
	pairs := ex.SortedPairs()
	for _, pair := range pairs {
		inst.Set(ex.LabelFeatures[pair.Label], regressionTarget(pair.Cost, l.binarize, l.binThreshold), weight, 0)
		if err := l.base.Learn(&inst); err != nil {
			return errors.Wrapf(err, "%s: label %d", opLDFLearn, pair.Label)
		}
	}

	l.state.CountExample(len(pairs), 0)
	return nil
}

// Predict returns the candidate label with the lowest estimated cost, ties
// broken by the smallest label id.
func (l *LDF) Predict(ex *costs.Example) (int, error) {
	pred, err := l.PredictScores(ex)
	if err != nil {
		return 0, err
	}
	return pred.Label, nil
}

// PredictScores scores every candidate through its own feature vector and
// returns the winner with the per-label estimated costs in ascending label
// order. An example without pairs is scored over the labels of its feature
// mapping, the out-of-band candidate set in label-dependent mode.
func (l *LDF) PredictScores(ex *costs.Example) (model.Prediction, error) {
	if err := ex.Validate(costs.LabelDependentFeatures); err != nil {
		return model.Prediction{}, err
	}

	cands := ex.Candidates()
	if len(cands) == 0 {
		cands = ex.LDFLabels()
	}
	if len(cands) == 0 {
		return model.Prediction{}, errors.NewNoCandidateLabelsError(opLDFPredict)
	}

	scores := make([]model.LabelScore, len(cands))
	scoreRange := func(start, end int) (err error) {
		defer errors.Recover(&err, opLDFPredict)
		var inst model.Instance
		defer inst.Clear()
		for i := start; i < end; i++ {
			inst.Set(ex.LabelFeatures[cands[i]], 0, 1, 0)
			s, err := l.base.Predict(&inst)
			if err != nil {
				return errors.Wrapf(err, "%s: label %d", opLDFPredict, cands[i])
			}
			scores[i] = model.LabelScore{Label: cands[i], Score: s}
		}
		return nil
	}

	var err error
	if l.parallelPredict {
		err = parallel.ParallelizeWithThresholdError(len(cands), l.parallelThreshold, scoreRange)
	} else {
		err = scoreRange(0, len(cands))
	}
	if err != nil {
		return model.Prediction{}, err
	}

	return pickMin(opLDFPredict, scores, l.state.Snapshot().Examples)
}

// Stats returns the reduction's online counters.
func (l *LDF) Stats() model.Stats {
	return l.state.Snapshot()
}
