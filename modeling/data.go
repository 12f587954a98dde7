// Package modeling pairs a feature frame with an aligned target series
// and drives the supervised workflow on the pair: train/test splitting,
// class balancing, estimator fitting and probability scoring.
//
// ModelingData is a value object. Every transformation returns a new
// instance and the row alignment between features, targets and optional
// sample weights is preserved by construction.
package modeling

import (
	"fmt"
	"time"

	"github.com/kgocks/bamboo/core/model"
	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// ModelingData binds features to targets for supervised modeling.
type ModelingData struct {
	features *frame.Frame
	targets  *frame.Series
	weights  *frame.Series
}

// Option configures ModelingData construction.
type Option func(*ModelingData) error

// WithWeights attaches per-sample weights. The series must have the same
// length as the targets.
func WithWeights(w *frame.Series) Option {
	return func(md *ModelingData) error {
		if w == nil {
			return errors.NewValueError("ModelingData.New", "nil weights series")
		}
		if w.Len() != md.targets.Len() {
			return errors.NewDimensionError("ModelingData.New", md.targets.Len(), w.Len(), 0)
		}
		md.weights = w
		return nil
	}
}

// New builds a ModelingData from a feature frame and a target series of
// equal length.
func New(features *frame.Frame, targets *frame.Series, opts ...Option) (*ModelingData, error) {
	if features == nil || targets == nil {
		return nil, errors.NewValueError("ModelingData.New", "nil features or targets")
	}
	if features.NumRows() != targets.Len() {
		return nil, errors.NewDimensionError("ModelingData.New", features.NumRows(), targets.Len(), 0)
	}

	md := &ModelingData{features: features, targets: targets}
	for _, opt := range opts {
		if err := opt(md); err != nil {
			return nil, err
		}
	}
	return md, nil
}

// FromFrame splits one frame into features and targets by column name.
// A nil featureNames selects every column except the target column; an
// explicit list is taken verbatim and may repeat the target.
func FromFrame(df *frame.Frame, target string, featureNames []string) (*ModelingData, error) {
	if df == nil {
		return nil, errors.NewValueError("ModelingData.FromFrame", "nil frame")
	}
	targets, err := df.Column(target)
	if err != nil {
		return nil, err
	}

	if featureNames == nil {
		for _, name := range df.Columns() {
			if name != target {
				featureNames = append(featureNames, name)
			}
		}
	}
	features, err := df.Select(featureNames)
	if err != nil {
		return nil, err
	}
	return New(features, targets)
}

// Features returns the feature frame.
func (md *ModelingData) Features() *frame.Frame { return md.features }

// Targets returns the target series.
func (md *ModelingData) Targets() *frame.Series { return md.targets }

// Weights returns the sample weight series, nil when none was attached.
func (md *ModelingData) Weights() *frame.Series { return md.weights }

// Len returns the number of rows. Features and targets are aligned at
// construction; a divergence afterwards is a programming error and panics.
func (md *ModelingData) Len() int {
	n := md.targets.Len()
	if md.features.NumRows() != n {
		panic(fmt.Sprintf("bamboo: ModelingData misaligned: %d feature rows, %d targets", md.features.NumRows(), n))
	}
	if md.weights != nil && md.weights.Len() != n {
		panic(fmt.Sprintf("bamboo: ModelingData misaligned: %d weights, %d targets", md.weights.Len(), n))
	}
	return n
}

// Shape returns the feature dimensions as (rows, columns).
func (md *ModelingData) Shape() (rows, cols int) {
	return md.features.NumRows(), md.features.NumCols()
}

// NumClasses returns the number of distinct target values.
func (md *ModelingData) NumClasses() int {
	return md.GroupedTargets().NumGroups()
}

// GroupedTargets partitions row positions by target value. Group keys
// iterate in ascending order.
func (md *ModelingData) GroupedTargets() *frame.GroupBy {
	return md.targets.GroupBySelf()
}

// IsOrthogonal reports whether the two datasets share no row labels.
// Train/test splits of the same frame are orthogonal; resampled data
// that duplicates rows is not orthogonal to its source.
func (md *ModelingData) IsOrthogonal(other *ModelingData) bool {
	if other == nil {
		return true
	}
	for _, label := range other.features.Index() {
		if md.features.HasLabel(label) {
			return false
		}
	}
	return true
}

// NumericFeatures restricts the features to numeric columns. Targets and
// weights are unchanged.
func (md *ModelingData) NumericFeatures() (*ModelingData, error) {
	features, err := md.features.SelectNumeric()
	if err != nil {
		return nil, err
	}
	return &ModelingData{features: features, targets: md.targets, weights: md.weights}, nil
}

// takeRows applies one position set to features, targets and weights,
// keeping the three aligned.
func (md *ModelingData) takeRows(positions []int) (*ModelingData, error) {
	features, err := md.features.TakeRows(positions)
	if err != nil {
		return nil, err
	}
	targets, err := md.targets.Take(positions)
	if err != nil {
		return nil, err
	}
	out := &ModelingData{features: features, targets: targets}
	if md.weights != nil {
		weights, err := md.weights.Take(positions)
		if err != nil {
			return nil, err
		}
		out.weights = weights
	}
	return out, nil
}

// Fit converts the features to a dense matrix and the targets to a
// column vector and delegates to the estimator. When sample weights are
// attached and the estimator accepts them, the weighted path is used.
func (md *ModelingData) Fit(est model.Fitter) (err error) {
	defer errors.Recover(&err, "ModelingData.Fit")

	if est == nil {
		return errors.NewValueError("ModelingData.Fit", "nil estimator")
	}

	start := time.Now()
	X, err := md.features.Matrix()
	if err != nil {
		return errors.Wrapf(err, "ModelingData.Fit: features")
	}
	y, err := md.targets.Vector()
	if err != nil {
		return errors.Wrapf(err, "ModelingData.Fit: targets")
	}

	weighted := false
	if md.weights != nil {
		if wf, ok := est.(model.WeightedFitter); ok {
			w, err := md.weights.Float64s()
			if err != nil {
				return errors.Wrapf(err, "ModelingData.Fit: weights")
			}
			if err := wf.FitWeighted(X, y, w); err != nil {
				return err
			}
			weighted = true
		}
	}
	if !weighted {
		if err := est.Fit(X, y); err != nil {
			return err
		}
	}

	rows, cols := X.Dims()
	log.GetLoggerWithName("modeling").Debug("Estimator fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.WeightedKey, weighted,
		log.DurationMsKey, time.Since(start).Milliseconds())
	return nil
}

// String renders the feature shape in the form ModelingData((rows, cols)).
func (md *ModelingData) String() string {
	rows, cols := md.Shape()
	return fmt.Sprintf("ModelingData((%d, %d))", rows, cols)
}
