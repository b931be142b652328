// Package wap implements the weighted-all-pairs reduction with
// label-dependent features.
//
// WAP turns one cost-sensitive example into up to n(n-1)/2 binary
// sub-examples, one per unordered candidate pair, each weighted by the
// absolute cost difference within the pair and labeled by which side costs
// less. Minimizing importance-weighted binary loss on these pairs bounds the
// cost-sensitive regret on the original problem, which is the point of the
// construction. With label-dependent features the pair vector is the
// difference of the two candidates' vectors, built into a reduction-owned
// scratch buffer one pair at a time; in shared-feature mode every pair
// trains against the example's own vector at a deterministic per-pair
// weight-subspace offset. Prediction runs a pairwise tournament.
package wap

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

const (
	opLearn   = "wap.Learn"
	opPredict = "wap.Predict"

	defaultParallelThreshold = 64
)

// WAP is the weighted-all-pairs reduction. It holds the base learner behind
// the model.Learner contract and never copies weight state; the only storage
// it owns is the scratch vector pair features are combined into.
//
// Learn must be called from a single goroutine; Predict is safe to call
// concurrently when the base learner's Predict is.
type WAP struct {
	base model.Learner

	ldf               bool
	combiner          Combiner
	tournament        Tournament
	weightScaling     float64
	parallelPredict   bool
	parallelThreshold int

	state *model.StateManager

	mu      sync.Mutex
	scratch *mat.VecDense
}

// New creates a WAP reduction over the given base learner. Label-dependent
// mode is the default; WithLDF(false) selects shared-feature mode.
func New(base model.Learner, options ...Option) (*WAP, error) {
	if base == nil {
		return nil, errors.WithStack(errors.ErrNilBaseLearner)
	}

	w := &WAP{
		base:              base,
		ldf:               true,
		combiner:          Difference,
		tournament:        RoundRobin,
		weightScaling:     1.0,
		parallelThreshold: defaultParallelThreshold,
		state:             model.NewStateManager(),
		scratch:           &mat.VecDense{},
	}

	for _, opt := range options {
		opt(w)
	}

	return w, nil
}

// Learn emits one sub-example per unordered candidate pair in ascending
// (i, j) label order: weight = example weight times |cost(i) - cost(j)|,
// target +1 when the smaller-id candidate costs less, -1 otherwise. Pairs
// with equal costs carry no signal and are skipped without a base call.
// The example is validated before the first base call.
//
// An example with a single candidate is a no-op: there is no pair to train
// on, so a SingleCandidateWarning goes to the warning stream and the base
// learner is left untouched. An example with no candidates at all returns
// EmptyCandidateSet.
func (w *WAP) Learn(ex *costs.Example) (err error) {
	defer errors.Recover(&err, opLearn)

	if err := ex.Validate(w.featureMode()); err != nil {
		return err
	}

	pairs := ex.SortedPairs()
	if len(pairs) == 0 {
		return errors.NewEmptyCandidateSetError(opLearn)
	}
	if len(pairs) == 1 {
		errors.Warn(errors.NewSingleCandidateWarning(opLearn, pairs[0].Label))
		w.state.CountExample(0, 0)
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	weight := ex.ImportanceWeight() * w.weightScaling
	emitted, skipped := 0, 0

	var inst model.Instance
	defer inst.Clear()
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			delta := pairs[i].Cost - pairs[j].Cost
			if delta == 0 {
				// Equal costs carry no discriminating signal; the pair is
				// skipped outright rather than trained with zero weight.
				skipped++
				continue
			}

			x, offset := w.pairFeatures(w.scratch, ex, pairs[i].Label, pairs[j].Label)
			target := -1.0
			if delta < 0 {
				target = 1.0
			}
			inst.Set(x, target, weight*math.Abs(delta), offset)
			if err := w.base.Learn(&inst); err != nil {
				return errors.Wrapf(err, "%s: pair (%d, %d)", opLearn, pairs[i].Label, pairs[j].Label)
			}
			emitted++
		}
	}

	w.state.CountExample(emitted, skipped)
	return nil
}

// Predict returns the winner of the configured pairwise tournament over the
// example's candidates.
func (w *WAP) Predict(ex *costs.Example) (int, error) {
	pred, err := w.PredictScores(ex)
	if err != nil {
		return 0, err
	}
	return pred.Label, nil
}

// PredictScores runs the configured tournament and returns the winner with
// the per-candidate tallies (win counts, signed margins, or bracket wins,
// depending on the tournament) in ascending label order.
//
// Candidates come from the example's pairs; an example without pairs falls
// back to the labels of its feature mapping in label-dependent mode. A
// single candidate wins trivially without consulting the base learner; no
// candidates at all is EmptyCandidateSet.
func (w *WAP) PredictScores(ex *costs.Example) (pred model.Prediction, err error) {
	defer errors.Recover(&err, opPredict)

	if err := ex.Validate(w.featureMode()); err != nil {
		return model.Prediction{}, err
	}

	cands := ex.Candidates()
	if len(cands) == 0 && w.ldf {
		cands = ex.LDFLabels()
	}
	if len(cands) == 0 {
		return model.Prediction{}, errors.NewEmptyCandidateSetError(opPredict)
	}
	if len(cands) == 1 {
		return model.Prediction{
			Label:  cands[0],
			Scores: []model.LabelScore{{Label: cands[0]}},
		}, nil
	}

	if w.tournament == SingleElimination {
		return w.predictSingleElimination(ex, cands)
	}
	return w.predictRoundRobin(ex, cands)
}

// Stats returns the reduction's online counters. SkippedPairs counts the
// equal-cost pairs dropped during learning.
func (w *WAP) Stats() model.Stats {
	return w.state.Snapshot()
}

func (w *WAP) featureMode() costs.FeatureMode {
	if w.ldf {
		return costs.LabelDependentFeatures
	}
	return costs.SharedFeatures
}

// pairFeatures builds the feature side of the (i, j) sub-example, i < j by
// label id. In label-dependent mode the combiner writes the pair vector into
// scratch; in shared mode the example's own vector is used at the pair's
// offset.
func (w *WAP) pairFeatures(scratch *mat.VecDense, ex *costs.Example, i, j int) (*mat.VecDense, int) {
	if w.ldf {
		scratch.Reset()
		w.combiner(scratch, ex.LabelFeatures[i], ex.LabelFeatures[j])
		return scratch, 0
	}
	return ex.Shared, pairOffset(i, j)
}

// pairOffset maps a label pair i < j to a nonzero weight-subspace offset.
// The Cantor pairing over label ids is injective and needs no label-count
// bound, so a pair lands in the same disjoint subspace on every example.
func pairOffset(i, j int) int {
	s := i + j
	return s*(s+1)/2 + j
}
