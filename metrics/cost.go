// Package metrics provides cost bookkeeping around the reductions: batch
// evaluation of predicted labels against per-label costs, a stackable
// progressive-validation wrapper, and learning-curve rendering.
package metrics

import (
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// realizedCost looks up the cost attained by predicting label on the i-th
// example. A label outside the candidate set is a caller error, not a cost-0
// hit, and so is an example carrying a non-finite or negative cost. Batch
// metrics see raw caller-built examples, so the cost values are checked here
// rather than trusted.
func realizedCost(op string, e *costs.Example, label, i int) (float64, error) {
	c, ok := e.CostOf(label)
	if !ok {
		return 0, errors.Newf("%s: predicted label %d is not a candidate of example %d", op, label, i)
	}
	if !errors.IsFiniteNonNegative(c) {
		return 0, errors.Newf("%s: example %d carries unusable cost %v for label %d", op, i, c, label)
	}
	return c, nil
}

// AverageCost returns the mean realized cost of the predicted labels. Every
// predicted label must be a candidate of its example.
func AverageCost(examples []*costs.Example, predicted []int) (float64, error) {
	if len(examples) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "metrics.AverageCost")
	}
	if len(examples) != len(predicted) {
		return 0, errors.Newf("metrics.AverageCost: %d examples but %d predictions", len(examples), len(predicted))
	}

	var sum float64
	for i, ex := range examples {
		c, err := realizedCost("metrics.AverageCost", ex, predicted[i], i)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum / float64(len(examples)), nil
}

// Regret returns the mean excess cost of the predicted labels over each
// example's minimum cost. Zero means every prediction attained the minimum.
func Regret(examples []*costs.Example, predicted []int) (float64, error) {
	if len(examples) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "metrics.Regret")
	}
	if len(examples) != len(predicted) {
		return 0, errors.Newf("metrics.Regret: %d examples but %d predictions", len(examples), len(predicted))
	}

	var sum float64
	for i, ex := range examples {
		c, err := realizedCost("metrics.Regret", ex, predicted[i], i)
		if err != nil {
			return 0, err
		}
		_, min, ok := ex.MinCost()
		if !ok {
			return 0, errors.Newf("metrics.Regret: example %d has no label-cost pairs", i)
		}
		sum += c - min
	}
	return sum / float64(len(examples)), nil
}

// CostAccuracy returns the fraction of predictions that attained their
// example's minimum cost. A prediction tying the minimum through a different
// label still counts: the measure is realized cost, not label identity.
func CostAccuracy(examples []*costs.Example, predicted []int) (float64, error) {
	if len(examples) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "metrics.CostAccuracy")
	}
	if len(examples) != len(predicted) {
		return 0, errors.Newf("metrics.CostAccuracy: %d examples but %d predictions", len(examples), len(predicted))
	}

	hits := 0
	for i, ex := range examples {
		c, err := realizedCost("metrics.CostAccuracy", ex, predicted[i], i)
		if err != nil {
			return 0, err
		}
		_, min, ok := ex.MinCost()
		if !ok {
			return 0, errors.Newf("metrics.CostAccuracy: example %d has no label-cost pairs", i)
		}
		if c == min {
			hits++
		}
	}
	return float64(hits) / float64(len(examples)), nil
}
