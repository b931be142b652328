package wap

import (
	"gonum.org/v1/gonum/mat"
)

// Combiner builds one pair's feature vector from the two candidates'
// label-dependent vectors: a belongs to the smaller label id, b to the
// larger. The destination is a reduction-owned scratch vector, reset before
// every call; the combination must be written into it and the inputs left
// untouched.
type Combiner func(dst *mat.VecDense, a, b *mat.VecDense)

// Difference is the default combiner: the elementwise difference a - b, so
// a positive base score reads as "the smaller-id candidate is preferred".
func Difference(dst, a, b *mat.VecDense) {
	dst.SubVec(a, b)
}

// Option configures a WAP reduction.
type Option func(*WAP)

// WithLDF selects between label-dependent features (true, the default) and
// shared-feature mode, where every pair trains against the example's own
// vector at a per-pair weight-subspace offset.
func WithLDF(enabled bool) Option {
	return func(w *WAP) {
		w.ldf = enabled
	}
}

// WithCombiner replaces the pair feature combiner. Only meaningful in
// label-dependent mode; a nil combiner keeps the default.
func WithCombiner(fn Combiner) Option {
	return func(w *WAP) {
		if fn != nil {
			w.combiner = fn
		}
	}
}

// WithTournament selects the prediction tournament.
func WithTournament(t Tournament) Option {
	return func(w *WAP) {
		w.tournament = t
	}
}

// WithWeightScaling scales the importance weight of every derived
// sub-example on top of the pair's cost difference. The default is 1.
func WithWeightScaling(s float64) Option {
	return func(w *WAP) {
		w.weightScaling = s
	}
}

// WithParallelPredict fans pair scoring out across CPU cores once a
// round-robin prediction has more than minPairs pairs. The base learner's
// Predict must be safe for concurrent use; each chunk combines into its own
// scratch vector and the tally stays sequential, so results are identical
// to the sequential path. Learning is never parallelized, and
// single-elimination brackets are inherently sequential and ignore this
// option.
func WithParallelPredict(minPairs int) Option {
	return func(w *WAP) {
		w.parallelPredict = true
		w.parallelThreshold = minPairs
	}
}
