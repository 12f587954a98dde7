// Package bamboo provides labeled tabular data handling and modeling
// workflow helpers for Go, aimed at classification and regression
// experiments on small to medium datasets.
//
// bamboo pairs a small dataframe substrate (package frame) with a
// modeling layer (package modeling) that keeps features, targets, and
// optional sample weights aligned through splitting, class balancing,
// and scoring. Estimators are not implemented here; they plug in
// through the interfaces in core/model.
//
// # Features
//
// - Labeled Series/Frame columns with dtype inference from CSV
// - ModelingData: aligned features/targets/weights as a value object
// - Train/test splitting, K-fold, class balancing with explicit seeds
// - Threshold summaries and sweeps with undefined-metric warnings
// - Classification and regression metrics on gonum vectors
// - Per-class histograms and threshold curves via gonum/plot
//
// # Installation
//
// Install bamboo using go get:
//
//	go get github.com/kgocks/bamboo
//
// # Quick Start
//
// Splitting a dataset and summarizing classifier output at a threshold:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/kgocks/bamboo/frame"
//	    "github.com/kgocks/bamboo/modeling"
//	)
//
//	func main() {
//	    df, err := frame.New(
//	        frame.NewFloatSeries("score", []float64{0.9, 0.8, 0.3, 0.2}, nil),
//	        frame.NewStringSeries("label", []string{"yes", "yes", "no", "no"}, nil),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    md, err := modeling.FromFrame(df, "label", nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    train, test, err := md.TrainTestSplit(modeling.WithTestSize(0.5))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(train, test)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - frame: Series, Frame, GroupBy, CSV reading, operation dispatch
//   - modeling: ModelingData, splitting, balancing, scoring, cross-validation
//   - metrics: classification/regression metrics and threshold reports
//   - plotting: per-class histograms and threshold curves on gonum/plot
//   - core/model: estimator interfaces and fitted-state bookkeeping
//   - pkg/errors: typed errors, warnings, and panic recovery
//   - pkg/log: slog-compatible structured logging
//
// # Determinism
//
// Every randomized operation takes an explicit seed; there is no global
// RNG. Identical seeds produce identical splits, folds, and samples.
package bamboo
