// Package frame provides labeled, typed tabular data for modeling workflows.
//
// A Frame is an ordered collection of equal-length columns (Series) sharing
// one integer row-label index. Row labels default to 0..n-1 but survive row
// selection, so resampled data keeps a reference back to the original rows.
// Duplicate labels are permitted (sampling with replacement produces them);
// label lookups resolve to the first occurrence.
package frame

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/kgocks/bamboo/pkg/errors"
)

// DType identifies the storage type of a Series.
type DType int

const (
	// Float is a float64-backed column.
	Float DType = iota
	// Int is an int64-backed column.
	Int
	// Bool is a bool-backed column.
	Bool
	// String is a string-backed column.
	String
)

// String returns the dtype name.
func (d DType) String() string {
	switch d {
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Numeric reports whether the dtype participates in numeric operations.
// The whitelist is fixed: Float and Int.
func (d DType) Numeric() bool {
	return d == Float || d == Int
}

// Series is a named, typed column with integer row labels.
// Exactly one backing slice is populated, selected by dtype.
type Series struct {
	name   string
	dtype  DType
	labels []int

	floats []float64
	ints   []int64
	bools  []bool
	strs   []string
}

// NewFloatSeries creates a float64 column. A nil labels slice defaults to 0..n-1.
func NewFloatSeries(name string, values []float64, labels []int) *Series {
	return &Series{
		name:   name,
		dtype:  Float,
		labels: normalizeLabels(labels, len(values)),
		floats: values,
	}
}

// NewIntSeries creates an int64 column. A nil labels slice defaults to 0..n-1.
func NewIntSeries(name string, values []int64, labels []int) *Series {
	return &Series{
		name:   name,
		dtype:  Int,
		labels: normalizeLabels(labels, len(values)),
		ints:   values,
	}
}

// NewBoolSeries creates a bool column. A nil labels slice defaults to 0..n-1.
func NewBoolSeries(name string, values []bool, labels []int) *Series {
	return &Series{
		name:   name,
		dtype:  Bool,
		labels: normalizeLabels(labels, len(values)),
		bools:  values,
	}
}

// NewStringSeries creates a string column. A nil labels slice defaults to 0..n-1.
func NewStringSeries(name string, values []string, labels []int) *Series {
	return &Series{
		name:   name,
		dtype:  String,
		labels: normalizeLabels(labels, len(values)),
		strs:   values,
	}
}

func normalizeLabels(labels []int, n int) []int {
	if labels != nil {
		return labels
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// DType returns the storage type.
func (s *Series) DType() DType { return s.dtype }

// Len returns the number of rows.
func (s *Series) Len() int { return len(s.labels) }

// Labels returns a copy of the row labels.
func (s *Series) Labels() []int {
	out := make([]int, len(s.labels))
	copy(out, s.labels)
	return out
}

// Rename returns a series with the same data under a new name.
func (s *Series) Rename(name string) *Series {
	out := *s
	out.name = name
	return &out
}

// Value returns the value at position i.
func (s *Series) Value(i int) any {
	switch s.dtype {
	case Float:
		return s.floats[i]
	case Int:
		return s.ints[i]
	case Bool:
		return s.bools[i]
	default:
		return s.strs[i]
	}
}

// Values returns all values as a slice of any, in row order.
func (s *Series) Values() []any {
	out := make([]any, s.Len())
	for i := range out {
		out[i] = s.Value(i)
	}
	return out
}

// ValueAt returns the value for the first row carrying the given label.
func (s *Series) ValueAt(label int) (any, error) {
	for i, l := range s.labels {
		if l == label {
			return s.Value(i), nil
		}
	}
	return nil, errors.NewKeyError("Series.ValueAt", "label", label)
}

// Take returns a new series with the rows at the given positions, in order.
// Positions may repeat, which duplicates rows and their labels.
func (s *Series) Take(positions []int) (*Series, error) {
	n := s.Len()
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, errors.NewValueError("Series.Take",
				fmt.Sprintf("position %d out of range [0, %d)", p, n))
		}
	}
	out := &Series{name: s.name, dtype: s.dtype, labels: make([]int, len(positions))}
	for i, p := range positions {
		out.labels[i] = s.labels[p]
	}
	switch s.dtype {
	case Float:
		out.floats = make([]float64, len(positions))
		for i, p := range positions {
			out.floats[i] = s.floats[p]
		}
	case Int:
		out.ints = make([]int64, len(positions))
		for i, p := range positions {
			out.ints[i] = s.ints[p]
		}
	case Bool:
		out.bools = make([]bool, len(positions))
		for i, p := range positions {
			out.bools[i] = s.bools[p]
		}
	default:
		out.strs = make([]string, len(positions))
		for i, p := range positions {
			out.strs[i] = s.strs[p]
		}
	}
	return out, nil
}

// TakeLabels returns a new series with the rows carrying the given labels.
// Each label resolves to its first occurrence.
func (s *Series) TakeLabels(labels []int) (*Series, error) {
	positions, err := s.positionsForLabels("Series.TakeLabels", labels)
	if err != nil {
		return nil, err
	}
	return s.Take(positions)
}

func (s *Series) positionsForLabels(op string, labels []int) ([]int, error) {
	first := make(map[int]int, len(s.labels))
	for i, l := range s.labels {
		if _, seen := first[l]; !seen {
			first[l] = i
		}
	}
	positions := make([]int, len(labels))
	for i, l := range labels {
		p, ok := first[l]
		if !ok {
			return nil, errors.NewKeyError(op, "label", l)
		}
		positions[i] = p
	}
	return positions, nil
}

// Float64s returns the column converted to float64.
// Only numeric dtypes convert; Int values widen to float64.
func (s *Series) Float64s() ([]float64, error) {
	switch s.dtype {
	case Float:
		out := make([]float64, len(s.floats))
		copy(out, s.floats)
		return out, nil
	case Int:
		out := make([]float64, len(s.ints))
		for i, v := range s.ints {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, errors.NewValueError("Series.Float64s",
			fmt.Sprintf("column %q has non-numeric dtype %s", s.name, s.dtype))
	}
}

// Vector returns the column as a dense vector for estimator interop.
func (s *Series) Vector() (*mat.VecDense, error) {
	values, err := s.Float64s()
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(values), values), nil
}

// DistinctSorted returns the distinct values in ascending order.
// For classification targets this defines the class ordering contract:
// probability vectors index into this slice.
func (s *Series) DistinctSorted() []any {
	seen := make(map[any]struct{}, s.Len())
	var distinct []any
	for i := 0; i < s.Len(); i++ {
		v := s.Value(i)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return lessValue(distinct[i], distinct[j])
	})
	return distinct
}

// ValueCounts returns the number of occurrences of each distinct value.
func (s *Series) ValueCounts() map[any]int {
	return s.GroupBySelf().Counts()
}

// GroupBySelf partitions row positions by the series' own values.
func (s *Series) GroupBySelf() *GroupBy {
	return newGroupBy(s, nil)
}

// String renders a short description of the series.
func (s *Series) String() string {
	return fmt.Sprintf("Series(%s, %s, %d rows)", s.name, s.dtype, s.Len())
}

// lessValue orders two values of the same dtype.
func lessValue(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case int64:
		bv, _ := b.(int64)
		return av < bv
	case bool:
		bv, _ := b.(bool)
		return !av && bv
	case string:
		bv, _ := b.(string)
		return av < bv
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

// FormatValue renders a cell value the way column keys and labels expect:
// floats in shortest round-trip form, ints in decimal, bools as true/false.
func FormatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}
