package modeling

import (
	"math"

	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/metrics"
	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// ThresholdSummary evaluates probability records against one decision
// threshold for one target class. A record counts as predicted positive
// when its probability for the target class is at least the threshold;
// actual positives are records whose target renders to the target class.
// Metric derivation, including the zero-denominator fallbacks, lives in
// metrics.NewThresholdReport.
func ThresholdSummary(records []ProbaRecord, target string, threshold float64) (*metrics.ThresholdReport, error) {
	if len(records) == 0 {
		return nil, errors.NewValueError("ThresholdSummary", "no records to evaluate")
	}

	var tp, fp, tn, fn int
	for _, rec := range records {
		proba, ok := rec.Probas[target]
		if !ok {
			return nil, errors.NewKeyError("ThresholdSummary", "class", target)
		}
		actual := frame.FormatValue(rec.Target) == target

		if proba >= threshold {
			if actual {
				tp++
			} else {
				fp++
			}
		} else {
			if actual {
				fn++
			} else {
				tn++
			}
		}
	}

	report := metrics.NewThresholdReport(target, threshold, tp, fp, tn, fn)

	log.GetLoggerWithName("modeling").Debug("Threshold evaluated",
		log.OperationKey, log.OperationThreshold,
		log.TargetClassKey, target,
		log.ThresholdKey, threshold,
		log.PredsKey, len(records),
		log.AccuracyKey, report.Accuracy,
		log.PrecisionKey, report.Precision,
		log.RecallKey, report.Recall)
	return report, nil
}

// ThresholdSweep evaluates the records at every threshold 0, step,
// 2*step, ... up to and including 1 when step divides it. The reports
// feed ROC-style plotting.
func ThresholdSweep(records []ProbaRecord, target string, step float64) ([]*metrics.ThresholdReport, error) {
	if step <= 0 || step > 1 {
		return nil, errors.NewValidationError("step", "must be in (0, 1]", step)
	}

	steps := int(math.Floor(1/step + 1e-9))
	reports := make([]*metrics.ThresholdReport, 0, steps+1)
	for i := 0; i <= steps; i++ {
		threshold := float64(i) * step
		if threshold > 1 {
			break
		}
		report, err := ThresholdSummary(records, target, threshold)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
