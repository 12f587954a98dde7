package frame

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kgocks/bamboo/pkg/errors"
)

// StandardExtensions returns a registry pre-populated with the common
// summary operations: "describe", "zscore" and "corr". Callers can add
// their own operations on top before handing the registry to a
// Dispatcher.
func StandardExtensions() *Registry {
	return &Registry{funcs: map[string]ExtensionFunc{
		"describe": describeOp,
		"zscore":   zscoreOp,
		"corr":     corrOp,
	}}
}

// describeOp summarizes every numeric column with count, mean, sample
// standard deviation and the five-number summary. One output row per
// numeric column.
func describeOp(f *Frame, args ...any) (any, error) {
	names := f.NumericColumns()
	if len(names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "describe: frame has no numeric columns")
	}
	if f.NumRows() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "describe: frame has no rows")
	}

	colNames := make([]string, len(names))
	counts := make([]int64, len(names))
	means := make([]float64, len(names))
	stds := make([]float64, len(names))
	mins := make([]float64, len(names))
	q25s := make([]float64, len(names))
	medians := make([]float64, len(names))
	q75s := make([]float64, len(names))
	maxs := make([]float64, len(names))

	for i, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		values, err := col.Float64s()
		if err != nil {
			return nil, err
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		colNames[i] = name
		counts[i] = int64(len(values))
		means[i] = stat.Mean(values, nil)
		stds[i] = stat.StdDev(values, nil)
		mins[i] = sorted[0]
		q25s[i] = stat.Quantile(0.25, stat.Empirical, sorted, nil)
		medians[i] = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		q75s[i] = stat.Quantile(0.75, stat.Empirical, sorted, nil)
		maxs[i] = sorted[len(sorted)-1]
	}

	return New(
		NewStringSeries("column", colNames, nil),
		NewIntSeries("count", counts, nil),
		NewFloatSeries("mean", means, nil),
		NewFloatSeries("std", stds, nil),
		NewFloatSeries("min", mins, nil),
		NewFloatSeries("q25", q25s, nil),
		NewFloatSeries("median", medians, nil),
		NewFloatSeries("q75", q75s, nil),
		NewFloatSeries("max", maxs, nil),
	)
}

// zscoreOp standardizes numeric columns to zero mean and unit sample
// variance. Columns with zero spread become all zeros. Non-numeric
// columns pass through unchanged.
func zscoreOp(f *Frame, args ...any) (any, error) {
	cols := make([]*Series, 0, f.NumCols())
	for _, name := range f.Columns() {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if !col.DType().Numeric() {
			cols = append(cols, col)
			continue
		}
		values, err := col.Float64s()
		if err != nil {
			return nil, err
		}
		mean := stat.Mean(values, nil)
		std := stat.StdDev(values, nil)
		out := make([]float64, len(values))
		if std > 0 {
			for i, v := range values {
				out[i] = (v - mean) / std
			}
		}
		cols = append(cols, NewFloatSeries(name, out, f.labels))
	}
	return newFrame(f.labels, cols)
}

// corrOp computes the Pearson correlation matrix over numeric columns.
// The result carries one row and one float column per numeric column,
// plus a leading "column" name column.
func corrOp(f *Frame, args ...any) (any, error) {
	names := f.NumericColumns()
	if len(names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "corr: frame has no numeric columns")
	}

	data := make([][]float64, len(names))
	for i, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		values, err := col.Float64s()
		if err != nil {
			return nil, err
		}
		data[i] = values
	}

	cols := make([]*Series, 0, len(names)+1)
	cols = append(cols, NewStringSeries("column", append([]string(nil), names...), nil))
	for j, name := range names {
		column := make([]float64, len(names))
		for i := range names {
			column[i] = stat.Correlation(data[i], data[j], nil)
		}
		cols = append(cols, NewFloatSeries(name, column, nil))
	}
	return New(cols...)
}
