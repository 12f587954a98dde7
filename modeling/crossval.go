package modeling

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/kgocks/bamboo/core/model"
	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// Scorer compares actual and predicted target vectors. The metrics
// package provides compatible functions such as metrics.MSE,
// metrics.R2Score and metrics.Accuracy.
type Scorer func(yTrue, yPred *mat.VecDense) (float64, error)

// CrossValScore fits the estimator on the train part of each of k
// shuffled folds and scores its row predictions on the held-out part.
// Returns one score per fold in fold order. The estimator is refit in
// place on every fold, so its final state reflects the last fold only.
// Targets must be numeric.
func CrossValScore(md *ModelingData, est model.Regressor, scorer Scorer, folds int, seed int64) ([]float64, error) {
	if md == nil {
		return nil, errors.NewValueError("CrossValScore", "nil dataset")
	}
	if est == nil {
		return nil, errors.NewValueError("CrossValScore", "nil estimator")
	}
	if scorer == nil {
		return nil, errors.NewValueError("CrossValScore", "nil scorer")
	}

	start := time.Now()
	kf := NewKFold(folds, true, seed)
	foldSet, err := kf.Split(md.Len())
	if err != nil {
		return nil, err
	}

	scores := make([]float64, 0, len(foldSet))
	for i, fold := range foldSet {
		train, err := md.takeRows(fold.Train)
		if err != nil {
			return nil, errors.Wrapf(err, "CrossValScore: fold %d", i)
		}
		test, err := md.takeRows(fold.Test)
		if err != nil {
			return nil, errors.Wrapf(err, "CrossValScore: fold %d", i)
		}

		if err := train.Fit(est); err != nil {
			return nil, errors.Wrapf(err, "CrossValScore: fold %d", i)
		}

		preds := make([]float64, test.Len())
		for j := 0; j < test.Len(); j++ {
			x, err := test.features.RowFloats(j)
			if err != nil {
				return nil, errors.Wrapf(err, "CrossValScore: fold %d, row %d", i, j)
			}
			predicted, err := est.PredictRow(x)
			if err != nil {
				return nil, errors.Wrapf(err, "CrossValScore: fold %d, row %d", i, j)
			}
			preds[j] = predicted
		}

		yTrue, err := test.targets.Vector()
		if err != nil {
			return nil, errors.Wrapf(err, "CrossValScore: fold %d", i)
		}
		score, err := scorer(yTrue, mat.NewVecDense(len(preds), preds))
		if err != nil {
			return nil, errors.Wrapf(err, "CrossValScore: fold %d", i)
		}
		scores = append(scores, score)
	}

	log.GetLoggerWithName("modeling").Debug("Cross-validation finished",
		log.OperationKey, log.OperationCrossVal,
		log.FoldsKey, len(foldSet),
		log.RandomSeedKey, seed,
		log.DurationMsKey, time.Since(start).Milliseconds())
	return scores, nil
}
