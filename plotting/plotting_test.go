package plotting

import (
	"strings"
	"testing"

	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/metrics"
	"github.com/kgocks/bamboo/modeling"
	"github.com/kgocks/bamboo/pkg/errors"
)

func histData(t *testing.T) *modeling.ModelingData {
	t.Helper()

	scores := []float64{0.9, 0.8, 0.3, 0.2, 0.7, 0.1, 0.6, 0.4}
	labels := []string{"yes", "yes", "no", "no", "yes", "no", "yes", "no"}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	df, err := frame.New(
		frame.NewFloatSeries("score", scores, nil),
		frame.NewStringSeries("name", names, nil),
		frame.NewStringSeries("label", labels, nil),
	)
	if err != nil {
		t.Fatalf("frame.New() error = %v", err)
	}
	md, err := modeling.FromFrame(df, "label", nil)
	if err != nil {
		t.Fatalf("FromFrame() error = %v", err)
	}
	return md
}

func TestClassHistogram(t *testing.T) {
	md := histData(t)

	p, err := ClassHistogram(md, "score")
	if err != nil {
		t.Fatalf("ClassHistogram() error = %v", err)
	}
	if p == nil {
		t.Fatal("ClassHistogram() returned nil plot")
	}
	if !strings.Contains(p.Title.Text, "score") {
		t.Errorf("Title = %q, want it to mention the feature", p.Title.Text)
	}
	if p.X.Label.Text != "score" {
		t.Errorf("X label = %q, want %q", p.X.Label.Text, "score")
	}
}

func TestClassHistogramWithBins(t *testing.T) {
	md := histData(t)

	if _, err := ClassHistogram(md, "score", WithBins(4)); err != nil {
		t.Fatalf("ClassHistogram(WithBins(4)) error = %v", err)
	}

	_, err := ClassHistogram(md, "score", WithBins(0))
	var vErr *errors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ClassHistogram(WithBins(0)) error = %v, want ValidationError", err)
	}
	if vErr.ParamName != "bins" {
		t.Errorf("ParamName = %q, want %q", vErr.ParamName, "bins")
	}
}

func TestClassHistogramErrors(t *testing.T) {
	md := histData(t)

	tests := []struct {
		name    string
		run     func() error
		check   func(error) bool
		wantErr string
	}{
		{
			name: "nil dataset",
			run: func() error {
				_, err := ClassHistogram(nil, "score")
				return err
			},
			check: func(err error) bool {
				var vErr *errors.ValueError
				return errors.As(err, &vErr)
			},
			wantErr: "ValueError",
		},
		{
			name: "unknown feature",
			run: func() error {
				_, err := ClassHistogram(md, "missing")
				return err
			},
			check: func(err error) bool {
				var kErr *errors.KeyError
				return errors.As(err, &kErr)
			},
			wantErr: "KeyError",
		},
		{
			name: "non numeric feature",
			run: func() error {
				_, err := ClassHistogram(md, "name")
				return err
			},
			check: func(err error) bool {
				var vErr *errors.ValueError
				return errors.As(err, &vErr)
			},
			wantErr: "ValueError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Errorf("error = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func sweepReports() []*metrics.ThresholdReport {
	return []*metrics.ThresholdReport{
		metrics.NewThresholdReport("yes", 0.2, 4, 3, 1, 0),
		metrics.NewThresholdReport("yes", 0.5, 3, 1, 3, 1),
		metrics.NewThresholdReport("yes", 0.8, 1, 1, 3, 3),
	}
}

func TestThresholdCurve(t *testing.T) {
	p, err := ThresholdCurve(sweepReports())
	if err != nil {
		t.Fatalf("ThresholdCurve() error = %v", err)
	}
	if p == nil {
		t.Fatal("ThresholdCurve() returned nil plot")
	}
	if !strings.Contains(p.Title.Text, "yes") {
		t.Errorf("Title = %q, want it to mention the target class", p.Title.Text)
	}
	if p.X.Label.Text != "false positive rate" || p.Y.Label.Text != "true positive rate" {
		t.Errorf("axis labels = %q, %q", p.X.Label.Text, p.Y.Label.Text)
	}
	if p.X.Min != 0 || p.X.Max != 1 || p.Y.Min != 0 || p.Y.Max != 1 {
		t.Errorf("axis range = [%v, %v] x [%v, %v], want the unit square",
			p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestThresholdCurveErrors(t *testing.T) {
	var vErr *errors.ValueError

	_, err := ThresholdCurve(nil)
	if !errors.As(err, &vErr) {
		t.Errorf("ThresholdCurve(nil) error = %v, want ValueError", err)
	}

	_, err = ThresholdCurve([]*metrics.ThresholdReport{nil})
	if !errors.As(err, &vErr) {
		t.Errorf("ThresholdCurve([nil]) error = %v, want ValueError", err)
	}
}
