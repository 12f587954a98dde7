package plotting

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kgocks/bamboo/metrics"
	"github.com/kgocks/bamboo/pkg/errors"
)

// ThresholdCurve draws the ROC-style curve of a threshold sweep, plotting
// the true positive rate against the false positive rate of each report.
// Points are sorted by false positive rate, and a dashed diagonal marks
// the no-skill baseline.
func ThresholdCurve(reports []*metrics.ThresholdReport) (*plot.Plot, error) {
	if len(reports) == 0 {
		return nil, errors.NewValueError("ThresholdCurve", "no reports to plot")
	}

	pts := make(plotter.XYs, len(reports))
	for i, r := range reports {
		if r == nil {
			return nil, errors.NewValueError("ThresholdCurve", "nil report")
		}
		pts[i] = plotter.XY{X: r.FalsePositiveRate, Y: r.TruePositiveRate}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	p := plot.New()
	p.Title.Text = "threshold sweep: " + reports[0].Target
	p.X.Label.Text = "false positive rate"
	p.Y.Label.Text = "true positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "ThresholdCurve")
	}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("model", line)

	baseline, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, errors.Wrap(err, "ThresholdCurve")
	}
	baseline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(baseline)

	return p, nil
}
