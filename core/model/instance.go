package model

import (
	"gonum.org/v1/gonum/mat"
)

// Instance is one binary or regression sub-example handed to a base learner.
// Instances are transient: a reduction builds one, passes it to the learner,
// and reuses the backing storage for the next sub-example. Base learners must
// not retain the instance or its feature vector past the call.
//
// Offset identifies the sub-problem's weight subspace for base learners that
// partition their weights, the way the one-against-all reduction keeps one
// regressor per label inside a single weight vector. How the offset is folded
// into feature indices is the base learner's business. Label-dependent
// sub-examples use offset 0: their feature vectors already distinguish the
// candidates.
type Instance struct {
	X      *mat.VecDense
	Target float64
	Weight float64
	Offset int
}

// Set rewrites the instance in place for the next sub-example.
func (in *Instance) Set(x *mat.VecDense, target, weight float64, offset int) {
	in.X = x
	in.Target = target
	in.Weight = weight
	in.Offset = offset
}

// Clear detaches the instance from any feature storage. Reductions call this
// on their scratch instance when a learn or predict pass ends, so feature
// vectors never leak past the invocation that built them.
func (in *Instance) Clear() {
	in.X = nil
	in.Target = 0
	in.Weight = 0
	in.Offset = 0
}
