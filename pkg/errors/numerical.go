package errors

import (
	"math"
)

// CheckScalar checks a single value, typically a base-learner score or a
// cost, for NaN or Inf.
func CheckScalar(operation string, value float64, example int64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, example)
	}
	return nil
}

// CheckValues checks a slice of values for NaN or Inf and reports the
// offending ones (up to a small limit, to keep messages readable).
func CheckValues(operation string, values []float64, example int64) error {
	var unstable []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstable = append(unstable, v)
			if len(unstable) >= 10 {
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, example)
	}
	return nil
}

// IsFiniteNonNegative reports whether v is a usable cost value: finite and
// not below zero.
func IsFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
