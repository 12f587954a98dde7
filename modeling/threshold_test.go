package modeling

import (
	"math"
	"testing"

	"github.com/kgocks/bamboo/pkg/errors"
)

// fourRecords is the canonical mixed outcome at threshold 0.5: one of
// each of TP, FP, TN and FN.
func fourRecords() []ProbaRecord {
	return []ProbaRecord{
		{Index: 0, Probas: map[string]float64{"yes": 0.8, "no": 0.2}, Target: "yes"}, // TP
		{Index: 1, Probas: map[string]float64{"yes": 0.7, "no": 0.3}, Target: "no"},  // FP
		{Index: 2, Probas: map[string]float64{"yes": 0.3, "no": 0.7}, Target: "no"},  // TN
		{Index: 3, Probas: map[string]float64{"yes": 0.2, "no": 0.8}, Target: "yes"}, // FN
	}
}

func TestThresholdSummary(t *testing.T) {
	report, err := ThresholdSummary(fourRecords(), "yes", 0.5)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}

	if report.TruePositives != 1 || report.FalsePositives != 1 ||
		report.TrueNegatives != 1 || report.FalseNegatives != 1 {
		t.Fatalf("counts = %d/%d/%d/%d, want 1/1/1/1",
			report.TruePositives, report.FalsePositives, report.TrueNegatives, report.FalseNegatives)
	}
	if report.Positives != 2 || report.Negatives != 2 {
		t.Errorf("subtotals = %d/%d, want 2/2", report.Positives, report.Negatives)
	}

	for _, c := range []struct {
		metric string
		got    float64
	}{
		{"Precision", report.Precision},
		{"Recall", report.Recall},
		{"Accuracy", report.Accuracy},
		{"Specificity", report.Specificity},
		{"F1", report.F1},
	} {
		if math.Abs(c.got-0.5) > 1e-12 {
			t.Errorf("%s = %v, want 0.5", c.metric, c.got)
		}
	}
	if report.Target != "yes" || report.Threshold != 0.5 {
		t.Errorf("report identifies %s@%v, want yes@0.5", report.Target, report.Threshold)
	}
}

func TestThresholdSummaryBoundary(t *testing.T) {
	records := []ProbaRecord{
		{Index: 0, Probas: map[string]float64{"yes": 0.5}, Target: "yes"},
	}

	// A probability equal to the threshold counts as positive.
	report, err := ThresholdSummary(records, "yes", 0.5)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}
	if report.TruePositives != 1 || report.FalseNegatives != 0 {
		t.Errorf("boundary proba classified as negative: %+v", report)
	}
}

func TestThresholdSummaryExtremes(t *testing.T) {
	// Threshold 0 predicts everything positive; threshold above every
	// probability predicts everything negative.
	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(nil)

	low, err := ThresholdSummary(fourRecords(), "yes", 0)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}
	if low.Positives != 4 || low.Negatives != 0 {
		t.Errorf("at threshold 0: positives/negatives = %d/%d, want 4/0", low.Positives, low.Negatives)
	}
	if low.Recall != 1.0 {
		t.Errorf("at threshold 0: recall = %v, want 1", low.Recall)
	}

	high, err := ThresholdSummary(fourRecords(), "yes", 0.95)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}
	if high.Positives != 0 || high.Negatives != 4 {
		t.Errorf("at threshold 0.95: positives/negatives = %d/%d, want 0/4", high.Positives, high.Negatives)
	}
	// No predicted positives: precision falls back to 0 with a warning.
	if high.Precision != 0 {
		t.Errorf("at threshold 0.95: precision = %v, want 0 fallback", high.Precision)
	}
	if len(warned) == 0 {
		t.Error("expected UndefinedMetricWarnings at the extreme threshold")
	}
}

func TestThresholdSummaryAllActualPositives(t *testing.T) {
	records := []ProbaRecord{
		{Index: 0, Probas: map[string]float64{"yes": 0.9}, Target: "yes"},
		{Index: 1, Probas: map[string]float64{"yes": 0.4}, Target: "yes"},
	}
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	report, err := ThresholdSummary(records, "yes", 0.5)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}
	// FP+TN == 0: the specificity guard applies.
	if report.Specificity != 1.0 {
		t.Errorf("Specificity = %v, want the 1.0 guard", report.Specificity)
	}
}

func TestThresholdSummaryErrors(t *testing.T) {
	t.Run("empty records", func(t *testing.T) {
		_, err := ThresholdSummary(nil, "yes", 0.5)
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("error = %v, want ValueError", err)
		}
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := ThresholdSummary(fourRecords(), "maybe", 0.5)
		var keyErr *errors.KeyError
		if !errors.As(err, &keyErr) {
			t.Errorf("error = %v, want KeyError", err)
		}
	})
}

func TestThresholdSweep(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	reports, err := ThresholdSweep(fourRecords(), "yes", 0.25)
	if err != nil {
		t.Fatalf("ThresholdSweep() error = %v", err)
	}

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(reports) != len(want) {
		t.Fatalf("reports = %d, want %d", len(reports), len(want))
	}
	for i, report := range reports {
		if math.Abs(report.Threshold-want[i]) > 1e-12 {
			t.Errorf("report %d threshold = %v, want %v", i, report.Threshold, want[i])
		}
		if i > 0 && reports[i].Threshold <= reports[i-1].Threshold {
			t.Error("thresholds must increase monotonically")
		}
		if report.Positives+report.Negatives != 4 {
			t.Errorf("report %d loses records", i)
		}
	}

	// Fewer rows pass the threshold as it rises.
	for i := 1; i < len(reports); i++ {
		if reports[i].Positives > reports[i-1].Positives {
			t.Error("predicted positives must not increase with the threshold")
		}
	}
}

func TestThresholdSweepStepNotDividingOne(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	reports, err := ThresholdSweep(fourRecords(), "yes", 0.3)
	if err != nil {
		t.Fatalf("ThresholdSweep() error = %v", err)
	}
	want := []float64{0, 0.3, 0.6, 0.9}
	if len(reports) != len(want) {
		t.Fatalf("reports = %d, want %d", len(reports), len(want))
	}
	for i, report := range reports {
		if math.Abs(report.Threshold-want[i]) > 1e-12 {
			t.Errorf("report %d threshold = %v, want %v", i, report.Threshold, want[i])
		}
	}
}

func TestThresholdSweepValidation(t *testing.T) {
	for _, step := range []float64{0, -0.1, 1.5} {
		if _, err := ThresholdSweep(fourRecords(), "yes", step); err == nil {
			t.Errorf("ThresholdSweep(step=%v) should fail", step)
		}
	}
}

func TestPredictProbaIntoThresholdSummary(t *testing.T) {
	md := classData(t)

	records, err := md.PredictProba(scoreClassifier{})
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	report, err := ThresholdSummary(records, "yes", 0.5)
	if err != nil {
		t.Fatalf("ThresholdSummary() error = %v", err)
	}

	// scores: yes rows {0.9 0.8 0.7 0.6}, no rows {0.3 0.2 0.1 0.4};
	// the classifier separates the classes perfectly at 0.5.
	if report.TruePositives != 4 || report.TrueNegatives != 4 ||
		report.FalsePositives != 0 || report.FalseNegatives != 0 {
		t.Fatalf("counts = %d/%d/%d/%d, want 4/0/4/0 split",
			report.TruePositives, report.FalsePositives, report.TrueNegatives, report.FalseNegatives)
	}
	if report.Accuracy != 1.0 || report.Precision != 1.0 || report.Recall != 1.0 {
		t.Errorf("perfect separation should score 1.0 across metrics: %+v", report)
	}
}
