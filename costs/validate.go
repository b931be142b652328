package costs

import (
	"math"

	"github.com/YuminosukeSato/costlearn/pkg/errors"
)

// Validate checks the structural invariants of the example for the given
// feature mode: label ids at least 1, unique labels, finite non-negative
// costs, a usable importance weight, and the feature material the mode
// requires. In label-dependent mode every label in the pairs must have a
// feature entry; a missing entry is reported as InvalidLDFMappingError, every
// other violation as MalformedExampleError.
//
// Validation is read-only: calling it any number of times returns the same
// result and leaves the example untouched.
func (e *Example) Validate(mode FeatureMode) error {
	return e.validate("costs.Validate", mode, false)
}

// ValidateForLearning runs Validate and additionally requires at least one
// label-cost pair. An example without pairs is rejected for learning but may
// still be scored when a candidate set is available out of band.
func (e *Example) ValidateForLearning(mode FeatureMode) error {
	return e.validate("costs.ValidateForLearning", mode, true)
}

func (e *Example) validate(op string, mode FeatureMode, learning bool) error {
	if e == nil {
		return errors.NewMalformedExampleError(op, "nil example", 0)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
		return errors.NewMalformedExampleError(op, "importance weight must be finite and non-negative", 0)
	}
	if learning && len(e.Pairs) == 0 {
		return errors.NewMalformedExampleError(op, "no label-cost pairs", 0)
	}

	seen := make(map[int]struct{}, len(e.Pairs))
	for _, p := range e.Pairs {
		if p.Label < 1 {
			return errors.NewMalformedExampleError(op, "label id must be at least 1", p.Label)
		}
		if _, dup := seen[p.Label]; dup {
			return errors.NewMalformedExampleError(op, "duplicate label", p.Label)
		}
		seen[p.Label] = struct{}{}
		if math.IsNaN(p.Cost) || math.IsInf(p.Cost, 0) {
			return errors.NewMalformedExampleError(op, "non-finite cost", p.Label)
		}
		if p.Cost < 0 {
			return errors.NewMalformedExampleError(op, "negative cost", p.Label)
		}
	}

	switch mode {
	case SharedFeatures:
		if e.Shared == nil {
			return errors.NewMalformedExampleError(op, "missing shared feature vector", 0)
		}
	case LabelDependentFeatures:
		if err := e.validateLDF(op); err != nil {
			return err
		}
	default:
		return errors.NewMalformedExampleError(op, "unknown feature mode", 0)
	}
	return nil
}

// validateLDF checks the label-dependent feature mapping: completeness
// against the pairs, no nil vectors, label ids at least 1, and one common
// dimension across all entries.
func (e *Example) validateLDF(op string) error {
	for _, p := range e.Pairs {
		if _, ok := e.LabelFeatures[p.Label]; !ok {
			return errors.NewInvalidLDFMappingError(op, p.Label)
		}
	}
	dim := -1
	for _, l := range e.LDFLabels() {
		v := e.LabelFeatures[l]
		if l < 1 {
			return errors.NewMalformedExampleError(op, "label id must be at least 1", l)
		}
		if v == nil {
			return errors.NewMalformedExampleError(op, "nil label-dependent feature vector", l)
		}
		if dim < 0 {
			dim = v.Len()
		} else if v.Len() != dim {
			return errors.NewMalformedExampleError(op, "label-dependent feature dimension mismatch", l)
		}
	}
	return nil
}
