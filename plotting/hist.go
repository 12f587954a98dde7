// Package plotting renders diagnostic charts for modeling datasets and
// threshold sweeps on gonum/plot. Callers persist the returned plots via
// their Save method.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/modeling"
	"github.com/kgocks/bamboo/pkg/errors"
)

type histConfig struct {
	bins int
}

// HistOption configures ClassHistogram.
type HistOption func(*histConfig)

// WithBins sets the bin count per class histogram. Defaults to 10.
func WithBins(n int) HistOption {
	return func(cfg *histConfig) { cfg.bins = n }
}

// ClassHistogram overlays one histogram of the named numeric feature per
// target class. Fill colors cycle through plotutil.DefaultColors in
// ascending class order, so the first class takes the first color.
func ClassHistogram(md *modeling.ModelingData, feature string, opts ...HistOption) (*plot.Plot, error) {
	if md == nil {
		return nil, errors.NewValueError("ClassHistogram", "nil dataset")
	}
	cfg := histConfig{bins: 10}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bins <= 0 {
		return nil, errors.NewValidationError("bins", "must be positive", cfg.bins)
	}

	col, err := md.Features().Column(feature)
	if err != nil {
		return nil, err
	}
	if !col.DType().Numeric() {
		return nil, errors.NewValueError("ClassHistogram",
			fmt.Sprintf("column %q is %s, need a numeric feature", feature, col.DType()))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by %s", feature, md.Targets().Name())
	p.X.Label.Text = feature
	p.Y.Label.Text = "count"

	grouped := md.GroupedTargets()
	for i, key := range grouped.Keys() {
		positions, _ := grouped.Positions(key)
		sub, err := col.Take(positions)
		if err != nil {
			return nil, err
		}
		values, err := sub.Float64s()
		if err != nil {
			return nil, err
		}

		h, err := plotter.NewHist(plotter.Values(values), cfg.bins)
		if err != nil {
			return nil, errors.Wrapf(err, "ClassHistogram: class %s", frame.FormatValue(key))
		}
		h.FillColor = plotutil.Color(i)
		h.LineStyle.Color = plotutil.Color(i)
		p.Add(h)
	}
	return p, nil
}
