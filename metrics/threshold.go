package metrics

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kgocks/bamboo/pkg/errors"
)

// ThresholdReport aggregates the confusion counts and derived binary
// classification metrics for one target class at one decision threshold.
type ThresholdReport struct {
	Target    string
	Threshold float64

	Positives int // rows predicted positive
	Negatives int // rows predicted negative

	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int

	Precision   float64
	Recall      float64
	Sensitivity float64 // alias of Recall
	Specificity float64
	Accuracy    float64
	F1          float64

	// ROC coordinates. TruePositiveRate mirrors Recall.
	FalsePositiveRate float64
	TruePositiveRate  float64
}

// NewThresholdReport derives the full metric set from raw confusion
// counts. When every prediction is positive (FP+TN == 0) specificity is
// defined as 1.0. Any other zero denominator emits an
// UndefinedMetricWarning and sets the affected metric to 0.
func NewThresholdReport(target string, threshold float64, tp, fp, tn, fn int) *ThresholdReport {
	r := &ThresholdReport{
		Target:    target,
		Threshold: threshold,

		Positives: tp + fp,
		Negatives: tn + fn,

		TruePositives:  tp,
		FalsePositives: fp,
		TrueNegatives:  tn,
		FalseNegatives: fn,
	}

	r.Precision = safeRatio("precision", float64(tp), float64(tp+fp), "no predicted positive samples")
	r.Recall = safeRatio("recall", float64(tp), float64(tp+fn), "no true positive or false negative samples")
	r.Sensitivity = r.Recall
	r.TruePositiveRate = r.Recall

	if fp+tn == 0 {
		r.Specificity = 1.0
	} else {
		r.Specificity = float64(tn) / float64(fp+tn)
	}
	r.FalsePositiveRate = safeRatio("false positive rate", float64(fp), float64(fp+tn), "no false positive or true negative samples")

	r.Accuracy = safeRatio("accuracy", float64(tp+tn), float64(tp+fp+tn+fn), "no samples")
	r.F1 = safeRatio("f1", 2*r.Precision*r.Recall, r.Precision+r.Recall, "precision and recall are both zero")

	return r
}

// safeRatio divides num by den, falling back to 0 with an
// UndefinedMetricWarning when the denominator is zero.
func safeRatio(metric string, num, den float64, condition string) float64 {
	if den == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(metric, condition, 0))
		return 0
	}
	return num / den
}

// MarshalZerologObject adds the report's counts and metrics to a zerolog
// event.
func (r *ThresholdReport) MarshalZerologObject(e *zerolog.Event) {
	e.Str("target", r.Target).
		Float64("threshold", r.Threshold).
		Int("tp", r.TruePositives).
		Int("fp", r.FalsePositives).
		Int("tn", r.TrueNegatives).
		Int("fn", r.FalseNegatives).
		Float64("precision", r.Precision).
		Float64("recall", r.Recall).
		Float64("specificity", r.Specificity).
		Float64("accuracy", r.Accuracy).
		Float64("f1", r.F1)
}

// String renders the report on one line.
func (r *ThresholdReport) String() string {
	return fmt.Sprintf("ThresholdReport(target=%s, threshold=%.3f, tp=%d, fp=%d, tn=%d, fn=%d, precision=%.3f, recall=%.3f, accuracy=%.3f)",
		r.Target, r.Threshold, r.TruePositives, r.FalsePositives, r.TrueNegatives, r.FalseNegatives,
		r.Precision, r.Recall, r.Accuracy)
}
