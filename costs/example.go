// Package costs defines the cost-sensitive example model shared by all
// reductions: a multiclass example whose candidate labels each carry a
// real-valued cost, with an optional label-dependent feature mapping for
// candidates that are structurally distinct entities rather than abstract
// class indices.
package costs

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LabelCost is one (label, cost) pair of a cost-sensitive example.
// Label ids start at 1; costs are non-negative and finite.
type LabelCost struct {
	Label int
	Cost  float64
}

// FeatureMode selects how sub-example features are sourced from an example.
type FeatureMode int

const (
	// SharedFeatures: every candidate label is scored against the example's
	// own feature vector. Base learners distinguish candidates through the
	// sub-example offset.
	SharedFeatures FeatureMode = iota
	// LabelDependentFeatures: each candidate label carries its own feature
	// vector, supplied by the example source. Candidate sets may vary freely
	// per example.
	LabelDependentFeatures
)

// String returns the string representation of the feature mode.
func (m FeatureMode) String() string {
	switch m {
	case SharedFeatures:
		return "shared"
	case LabelDependentFeatures:
		return "label_dependent"
	default:
		return "unknown"
	}
}

// Example is a cost-sensitive multiclass example.
//
// Pairs lists the candidate labels for this instance with their costs; labels
// are unique within one example, and the listed set need not cover the whole
// label universe (absent labels are disallowed for this instance, never
// implicit cost zero). Shared carries the example's own feature vector,
// LabelFeatures the per-candidate vectors used in label-dependent mode.
//
// Weight is the example importance; it multiplies the weight of every derived
// sub-example. The zero value means 1 so that literal construction works.
type Example struct {
	Pairs         []LabelCost
	Shared        *mat.VecDense
	LabelFeatures map[int]*mat.VecDense
	Weight        float64
}

// NewExample creates a shared-feature example with importance weight 1.
func NewExample(pairs []LabelCost, shared *mat.VecDense) *Example {
	return &Example{Pairs: pairs, Shared: shared, Weight: 1}
}

// NewLDFExample creates a label-dependent example with importance weight 1.
func NewLDFExample(pairs []LabelCost, labelFeatures map[int]*mat.VecDense) *Example {
	return &Example{Pairs: pairs, LabelFeatures: labelFeatures, Weight: 1}
}

// ImportanceWeight returns the effective example weight, mapping the zero
// value to 1.
func (e *Example) ImportanceWeight() float64 {
	if e.Weight == 0 {
		return 1
	}
	return e.Weight
}

// Candidates returns the labels of the label-cost pairs in ascending order.
// The returned slice is a copy; the example is never mutated, so reductions
// can rely on a deterministic processing order without touching the caller's
// pair ordering.
func (e *Example) Candidates() []int {
	labels := make([]int, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		labels = append(labels, p.Label)
	}
	sort.Ints(labels)
	return labels
}

// SortedPairs returns a copy of the label-cost pairs sorted by ascending
// label id, the order in which reductions emit sub-examples.
func (e *Example) SortedPairs() []LabelCost {
	pairs := make([]LabelCost, len(e.Pairs))
	copy(pairs, e.Pairs)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Label < pairs[j].Label })
	return pairs
}

// LDFLabels returns the labels of the label-dependent feature mapping in
// ascending order. For an example without label-cost pairs this is the
// out-of-band candidate set in label-dependent mode.
func (e *Example) LDFLabels() []int {
	labels := make([]int, 0, len(e.LabelFeatures))
	for l := range e.LabelFeatures {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	return labels
}

// CostOf returns the cost recorded for the given label and whether the label
// appears in the example's pairs.
func (e *Example) CostOf(label int) (float64, bool) {
	for _, p := range e.Pairs {
		if p.Label == label {
			return p.Cost, true
		}
	}
	return 0, false
}

// MinCost returns the label with the lowest cost, ties broken by the smaller
// label id, and that cost. ok is false when the example has no pairs.
func (e *Example) MinCost() (label int, cost float64, ok bool) {
	for _, p := range e.SortedPairs() {
		if !ok || p.Cost < cost {
			label, cost, ok = p.Label, p.Cost, true
		}
	}
	return label, cost, ok
}
