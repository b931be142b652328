package reduction

import (
	"context"
	"time"

	"github.com/YuminosukeSato/costlearn/core/model"
	"github.com/YuminosukeSato/costlearn/costs"
	"github.com/YuminosukeSato/costlearn/pkg/errors"
	"github.com/YuminosukeSato/costlearn/pkg/log"
)

const defaultProgressEvery = 10000

// Report summarizes one training pass.
type Report struct {
	// Examples is the number of examples read from the stream.
	Examples int64
	// Learned is the number of examples that completed a learn call.
	Learned int64
	// Failed is the number of examples dropped by the error policy.
	Failed int64
}

// TrainOption configures a training pass.
type TrainOption func(*trainConfig)

type trainConfig struct {
	onError       func(example int64, err error) error
	logger        log.Logger
	progressEvery int64
}

// WithErrorHandler replaces the per-example error policy. The handler
// receives the 1-based ordinal of the failed example and the error;
// returning a non-nil error aborts the pass. The default policy logs the
// failure, counts it, and continues with the next example.
func WithErrorHandler(fn func(example int64, err error) error) TrainOption {
	return func(cfg *trainConfig) {
		cfg.onError = fn
	}
}

// WithTrainLogger routes the pass's progress and failure records through the
// given logger instead of the package default.
func WithTrainLogger(logger log.Logger) TrainOption {
	return func(cfg *trainConfig) {
		cfg.logger = logger
	}
}

// WithProgressEvery emits a progress record every n learned examples.
// Zero disables progress records. The default is 10000.
func WithProgressEvery(n int64) TrainOption {
	return func(cfg *trainConfig) {
		cfg.progressEvery = n
	}
}

// Train drives the learner over the stream until the stream closes or ctx is
// canceled. Examples are consumed strictly sequentially: the stream order is
// the causal order of weight updates, so there is no prefetching and no
// intra-stream concurrency. Cancellation is honored only between examples; a
// started example always completes.
//
// A failed example goes through the error policy and, under the default
// policy, is dropped without affecting the learner's state for subsequent
// examples. A panic inside a learn call is converted to an error and handled
// the same way.
func Train(ctx context.Context, learner model.CostSensitiveLearner, stream <-chan *costs.Example, opts ...TrainOption) (Report, error) {
	cfg := &trainConfig{
		progressEvery: defaultProgressEvery,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("reduction")
	}
	if cfg.onError == nil {
		logger := cfg.logger
		cfg.onError = func(example int64, err error) error {
			logger.Warn("example failed, continuing",
				log.ExamplesKey, example,
				log.ErrAttrKey, err,
			)
			return nil
		}
	}

	if learner == nil {
		return Report{}, errors.New("reduction.Train: nil learner")
	}

	var report Report
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return report, errors.Wrap(ctx.Err(), "reduction.Train")
		case ex, ok := <-stream:
			if !ok {
				cfg.logger.Info("training pass complete",
					log.ExamplesKey, report.Examples,
					log.SkippedExamplesKey, report.Failed,
					log.DurationMsKey, time.Since(start).Milliseconds(),
				)
				return report, nil
			}

			report.Examples++
			err := errors.SafeExecute("reduction.Train", func() error {
				return learner.Learn(ex)
			})
			if err != nil {
				report.Failed++
				if herr := cfg.onError(report.Examples, err); herr != nil {
					return report, herr
				}
				continue
			}

			report.Learned++
			if cfg.progressEvery > 0 && report.Learned%cfg.progressEvery == 0 {
				cfg.logger.Info("training progress",
					log.ExamplesKey, report.Examples,
					log.SkippedExamplesKey, report.Failed,
				)
			}
		}
	}
}
