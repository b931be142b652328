package metrics

import (
	"sync"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// ProgressPoint is one row of a progressive-validation trace.
type ProgressPoint struct {
	Examples      int64
	AverageCost   float64
	AverageRegret float64
	ErrorRate     float64
}

// Progressive wraps a cost-sensitive learner with progressive validation.
// Every Learn call first predicts with the current state, scores that
// prediction against the example's recorded costs, and only then lets the
// wrapped learner train on the example. Each example is therefore scored by
// a model that has never seen it, which makes the running averages honest
// one-pass generalization estimates.
//
// Progressive implements CostSensitiveLearner itself, so it can stand
// anywhere the wrapped learner would, including under another wrapper.
type Progressive struct {
	inner model.CostSensitiveLearner
	every int64

	mu        sync.Mutex
	examples  int64
	sumCost   float64
	sumRegret float64
	mistakes  int64
	history   []ProgressPoint
}

// ProgressiveOption configures a Progressive wrapper.
type ProgressiveOption func(*Progressive)

// WithHistoryEvery sets the history stride: one ProgressPoint is recorded
// every n learned examples. The default stride is 1; long passes should thin
// the trace (n <= 0 disables history entirely, leaving Summary as the only
// readout).
func WithHistoryEvery(n int) ProgressiveOption {
	return func(p *Progressive) {
		p.every = int64(n)
	}
}

// NewProgressive wraps a cost-sensitive learner with progressive validation.
func NewProgressive(inner model.CostSensitiveLearner, opts ...ProgressiveOption) (*Progressive, error) {
	if inner == nil {
		return nil, errors.Wrap(errors.ErrNilBaseLearner, "metrics.NewProgressive")
	}
	p := &Progressive{inner: inner, every: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Learn predicts with the current state, then trains the wrapped learner.
// The example is counted only when the wrapped learner accepts it, so a
// validation failure leaves the trace untouched.
func (p *Progressive) Learn(ex *costs.Example) error {
	pred, err := p.inner.Predict(ex)
	if err != nil {
		return err
	}
	if err := p.inner.Learn(ex); err != nil {
		return err
	}
	p.record(ex, pred)
	return nil
}

// Predict delegates to the wrapped learner without touching the trace.
func (p *Progressive) Predict(ex *costs.Example) (int, error) {
	return p.inner.Predict(ex)
}

// PredictScores delegates to the wrapped learner without touching the trace.
func (p *Progressive) PredictScores(ex *costs.Example) (model.Prediction, error) {
	return p.inner.PredictScores(ex)
}

// Summary returns the running averages over every example learned so far.
func (p *Progressive) Summary() ProgressPoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// History returns a copy of the recorded trace in learning order.
func (p *Progressive) History() []ProgressPoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ProgressPoint, len(p.history))
	copy(out, p.history)
	return out
}

// Reset clears the trace and the running sums. The wrapped learner's state
// is left alone.
func (p *Progressive) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.examples = 0
	p.sumCost = 0
	p.sumRegret = 0
	p.mistakes = 0
	p.history = nil
}

func (p *Progressive) record(ex *costs.Example, pred int) {
	cost, ok := ex.CostOf(pred)
	if !ok {
		return
	}
	_, min, ok := ex.MinCost()
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.examples++
	p.sumCost += cost
	p.sumRegret += cost - min
	if cost > min {
		p.mistakes++
	}
	if p.every > 0 && p.examples%p.every == 0 {
		p.history = append(p.history, p.snapshotLocked())
	}
}

func (p *Progressive) snapshotLocked() ProgressPoint {
	pt := ProgressPoint{Examples: p.examples}
	if p.examples > 0 {
		n := float64(p.examples)
		pt.AverageCost = p.sumCost / n
		pt.AverageRegret = p.sumRegret / n
		pt.ErrorRate = float64(p.mistakes) / n
	}
	return pt
}
