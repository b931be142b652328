// Package costlearn provides cost-sensitive multiclass classification for
// Go, built as reductions to binary and regression sub-problems solved by a
// pluggable online base learner.
//
// A cost-sensitive example carries a set of candidate labels with a
// non-negative cost each, instead of a single correct class. The reductions
// turn every such example into a stream of weighted sub-examples for the
// base learner and aggregate the base learner's scores back into a
// minimum-cost prediction. Training is single-pass and streaming: one
// sub-example exists at a time and nothing is cached between examples.
//
// # Features
//
// - CSOAA: one-against-all cost regression, shared or label-dependent features
// - WAP: weighted-all-pairs with round-robin, margin-sum, or bracket tournaments
// - Streaming training driver with per-example error policy and progress logging
// - Progressive validation (test-then-train) with learning-curve rendering
// - Typed errors with stack traces and a structured warning stream
//
// # Installation
//
// Install costlearn using go get:
//
//	go get github.com/YuminosukeSato/costlearn
//
// # Quick Start
//
// Wire a reduction over your base learner and feed it examples:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/costlearn/core/model"
//	    "github.com/YuminosukeSato/costlearn/costs"
//	    "github.com/YuminosukeSato/costlearn/reduction"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // base is any model.Learner: Predict scores one sub-example,
//	    // Learn folds one in.
//	    learner, err := reduction.Build(
//	        reduction.Config{Kind: reduction.KindCSOAA, NumLabels: 3},
//	        base,
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ex := costs.NewExample(
//	        []costs.LabelCost{{Label: 1, Cost: 0}, {Label: 2, Cost: 1}, {Label: 3, Cost: 1}},
//	        mat.NewVecDense(2, []float64{0.3, 0.7}),
//	    )
//
//	    stream := model.SliceStream(ex)
//	    if _, err := reduction.Train(context.Background(), learner, stream); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := learner.Predict(ex)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predicted label:", label)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - costs: cost-sensitive example model and validation
//   - reduction: reduction configuration, building, and the streaming trainer
//   - reduction/csoaa: one-against-all cost regression (shared and LDF)
//   - reduction/wap: weighted-all-pairs with pairwise tournaments
//   - metrics: cost metrics, progressive validation, learning curves
//   - core/model: learner contracts, instances, training state
//   - core/parallel: chunked helpers for parallel prediction
//   - pkg/errors: typed errors, warnings, panic recovery, numeric guards
//   - pkg/log: structured logging interface with slog and zerolog backends
//
// # Concurrency
//
// The learn path is strictly sequential; the stream order is the causal
// order of weight updates. Prediction never mutates learner state and can
// optionally fan out pairwise scoring across CPU cores when the base
// learner's Predict is safe for concurrent use.
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/YuminosukeSato/costlearn
//
// # License
//
// costlearn is released under the MIT License.
package costlearn
