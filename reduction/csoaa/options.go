package csoaa

// Option configures a CSOAA or LDF reduction. Options that do not apply to
// the receiving type are no-ops.
type Option func(interface{})

// WithNumLabels sets the label-count bound K: labels 1..K are accepted
// during learning and form the out-of-band candidate set for pairless
// prediction. Required for CSOAA; the label-dependent variant carries its
// candidates on each example and ignores it.
func WithNumLabels(k int) Option {
	return func(r interface{}) {
		if c, ok := r.(*CSOAA); ok {
			c.numLabels = k
		}
	}
}

// WithWeightScaling scales the importance weight of every derived
// sub-example. The default is 1.
func WithWeightScaling(s float64) Option {
	return func(r interface{}) {
		switch t := r.(type) {
		case *CSOAA:
			t.weightScaling = s
		case *LDF:
			t.weightScaling = s
		}
	}
}

// WithBinaryTargets switches the sub-example target from the raw cost to a
// thresholded indicator: -1 when the label's cost is at or below the
// threshold, +1 otherwise. Prediction remains an argmin over scores.
func WithBinaryTargets(threshold float64) Option {
	return func(r interface{}) {
		switch t := r.(type) {
		case *CSOAA:
			t.binarize = true
			t.binThreshold = threshold
		case *LDF:
			t.binarize = true
			t.binThreshold = threshold
		}
	}
}

// WithParallelPredict fans candidate scoring out across CPU cores once a
// prediction has more than minCandidates candidates. The base learner's
// Predict must be safe for concurrent use. Scores land in fixed per-label
// slots and the winner is picked sequentially, so results are identical to
// the sequential path. Learning is never parallelized.
func WithParallelPredict(minCandidates int) Option {
	return func(r interface{}) {
		switch t := r.(type) {
		case *CSOAA:
			t.parallelPredict = true
			t.parallelThreshold = minCandidates
		case *LDF:
			t.parallelPredict = true
			t.parallelThreshold = minCandidates
		}
	}
}
