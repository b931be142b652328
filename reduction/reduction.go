// Package reduction builds and drives cost-sensitive reductions.
//
// Build binds a configured reduction kind over a supplied base learner and
// returns the composite model.CostSensitiveLearner. Train consumes a stream
// of cost-sensitive examples through such a composite, strictly one at a
// time, with a configurable per-example error policy. Composites and
// wrappers share one contract, so layers stack: metrics.Progressive around a
// Build result is the canonical example.
package reduction

import (
	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
	"github.com/YuminosukeSato/costlearn/reduction/csoaa"
	"github.com/YuminosukeSato/costlearn/reduction/wap"
)

// Kind names a reduction strategy.
type Kind string

const (
	// KindCSOAA is cost-sensitive one-against-all over shared features.
	KindCSOAA Kind = "csoaa"

	// KindWAPLDF is weighted-all-pairs, by default with label-dependent
	// features.
	KindWAPLDF Kind = "wap_ldf"

	// KindCSOAALDF is one-against-all cost regression over label-dependent
	// features.
	KindCSOAALDF Kind = "csoaa_ldf"
)

// Config selects and parameterizes a reduction. External configuration
// loaders populate it; Build validates it.
type Config struct {
	// Kind selects the reduction strategy.
	Kind Kind

	// NumLabels bounds the label universe for KindCSOAA: labels 1..NumLabels
	// are accepted during learning and form the candidate set for pairless
	// prediction. Required for KindCSOAA, ignored by the label-dependent
	// kinds.
	NumLabels int

	// LDF toggles label-dependent features for KindWAPLDF. Set it to true
	// for per-candidate feature vectors; false trains every pair against
	// the example's shared vector at per-pair weight-subspace offsets.
	LDF bool
}

// Build binds the configured reduction over the base learner and returns
// the composite. The composite exposes the cost-sensitive learn/predict
// contract one level up and can itself be wrapped by any other
// model.CostSensitiveLearner layer.
func Build(cfg Config, base model.Learner) (model.CostSensitiveLearner, error) {
	if base == nil {
		return nil, errors.WithStack(errors.ErrNilBaseLearner)
	}

	switch cfg.Kind {
	case KindCSOAA:
		if cfg.NumLabels < 1 {
			return nil, errors.NewMissingNumLabelsError(string(cfg.Kind))
		}
		return csoaa.New(base, csoaa.WithNumLabels(cfg.NumLabels))
	case KindCSOAALDF:
		return csoaa.NewLDF(base)
	case KindWAPLDF:
		return wap.New(base, wap.WithLDF(cfg.LDF))
	default:
		return nil, errors.NewUnsupportedReductionKindError(string(cfg.Kind))
	}
}
