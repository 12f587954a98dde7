package modeling

import (
	"github.com/kgocks/bamboo/core/model"
	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// ProbaRecord is one row's class probability estimate next to its actual
// target. Probas is keyed by the rendered class label.
type ProbaRecord struct {
	Index  int // row label
	Probas map[string]float64
	Target any
}

// PredictionRecord is one row's point prediction next to its actual
// target.
type PredictionRecord struct {
	Index     int // row label
	Predicted float64
	Target    any
}

// PredictProba scores every row with the classifier and pairs the
// probabilities with the actual targets, in frame row order.
//
// The classifier's probability vector is indexed by class: position i
// corresponds to the i-th distinct target value in ascending order. The
// vector length must equal the class count of this dataset.
func (md *ModelingData) PredictProba(clf model.RowProbaPredictor) ([]ProbaRecord, error) {
	if clf == nil {
		return nil, errors.NewValueError("ModelingData.PredictProba", "nil classifier")
	}

	classes := md.targets.DistinctSorted()
	classNames := make([]string, len(classes))
	for i, c := range classes {
		classNames[i] = frame.FormatValue(c)
	}

	labels := md.targets.Labels()
	records := make([]ProbaRecord, 0, md.Len())
	for i := 0; i < md.Len(); i++ {
		x, err := md.features.RowFloats(i)
		if err != nil {
			return nil, errors.Wrapf(err, "ModelingData.PredictProba: row %d", i)
		}
		probas, err := clf.PredictProbaRow(x)
		if err != nil {
			return nil, errors.Wrapf(err, "ModelingData.PredictProba: row %d", i)
		}
		if len(probas) != len(classes) {
			return nil, errors.NewDimensionError("ModelingData.PredictProba", len(classes), len(probas), 1)
		}

		byClass := make(map[string]float64, len(classes))
		for j, name := range classNames {
			byClass[name] = probas[j]
		}
		records = append(records, ProbaRecord{
			Index:  labels[i],
			Probas: byClass,
			Target: md.targets.Value(i),
		})
	}

	log.GetLoggerWithName("modeling").Debug("Probabilities predicted",
		log.OperationKey, log.OperationPredictProba,
		log.PredsKey, len(records),
		log.ClassesKey, len(classes))
	return records, nil
}

// Predict scores every row with the regressor and pairs the predictions
// with the actual targets, in frame row order.
func (md *ModelingData) Predict(reg model.RowPredictor) ([]PredictionRecord, error) {
	if reg == nil {
		return nil, errors.NewValueError("ModelingData.Predict", "nil regressor")
	}

	labels := md.targets.Labels()
	records := make([]PredictionRecord, 0, md.Len())
	for i := 0; i < md.Len(); i++ {
		x, err := md.features.RowFloats(i)
		if err != nil {
			return nil, errors.Wrapf(err, "ModelingData.Predict: row %d", i)
		}
		predicted, err := reg.PredictRow(x)
		if err != nil {
			return nil, errors.Wrapf(err, "ModelingData.Predict: row %d", i)
		}
		records = append(records, PredictionRecord{
			Index:     labels[i],
			Predicted: predicted,
			Target:    md.targets.Value(i),
		})
	}

	log.GetLoggerWithName("modeling").Debug("Targets predicted",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(records))
	return records, nil
}
