package frame

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/kgocks/bamboo/pkg/errors"
)

// Frame is an ordered collection of equal-length columns sharing one
// integer row-label index. Frames are immutable: every operation returns
// a new Frame, and column Series returned by Column are views.
type Frame struct {
	labels  []int
	columns []*Series
	byName  map[string]int

	// labelPos maps each label to its first occurrence.
	labelPos map[int]int
}

// New creates a frame from the given columns. All columns must have the
// same length and identical row labels; the frame adopts the first
// column's labels. Column names must be unique.
func New(columns ...*Series) (*Frame, error) {
	if len(columns) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "frame.New: no columns")
	}
	labels := columns[0].labels
	for _, c := range columns[1:] {
		if c.Len() != len(labels) {
			return nil, errors.NewDimensionError("frame.New", len(labels), c.Len(), 0)
		}
		for i, l := range c.labels {
			if l != labels[i] {
				return nil, errors.NewValueError("frame.New",
					fmt.Sprintf("column %q labels diverge from frame labels at position %d", c.name, i))
			}
		}
	}
	return newFrame(labels, columns)
}

// newFrame assembles a frame without re-validating label alignment.
// Columns are rebound to share the frame's label slice.
func newFrame(labels []int, columns []*Series) (*Frame, error) {
	byName := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := byName[c.name]; dup {
			return nil, errors.NewValidationError("columns",
				"duplicate column name", c.name)
		}
		byName[c.name] = i
		c.labels = labels
	}
	labelPos := make(map[int]int, len(labels))
	for i, l := range labels {
		if _, seen := labelPos[l]; !seen {
			labelPos[l] = i
		}
	}
	return &Frame{labels: labels, columns: columns, byName: byName, labelPos: labelPos}, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return len(f.labels) }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.columns) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	for i, c := range f.columns {
		out[i] = c.name
	}
	return out
}

// Index returns a copy of the row labels.
func (f *Frame) Index() []int {
	out := make([]int, len(f.labels))
	copy(out, f.labels)
	return out
}

// HasLabel reports whether any row carries the given label.
func (f *Frame) HasLabel(label int) bool {
	_, ok := f.labelPos[label]
	return ok
}

// Column returns the named column as a view sharing the frame's labels.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.byName[name]
	if !ok {
		return nil, errors.NewKeyError("Frame.Column", "column", name)
	}
	return f.columns[i], nil
}

// Select returns a frame restricted to the named columns, in the given
// order. An empty name list yields a frame with no columns but all rows.
func (f *Frame) Select(names []string) (*Frame, error) {
	cols := make([]*Series, 0, len(names))
	for _, name := range names {
		i, ok := f.byName[name]
		if !ok {
			return nil, errors.NewKeyError("Frame.Select", "column", name)
		}
		cols = append(cols, f.columns[i])
	}
	return newFrame(f.labels, cols)
}

// Drop returns a frame without the named columns.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	dropped := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := f.byName[name]; !ok {
			return nil, errors.NewKeyError("Frame.Drop", "column", name)
		}
		dropped[name] = struct{}{}
	}
	var cols []*Series
	for _, c := range f.columns {
		if _, skip := dropped[c.name]; !skip {
			cols = append(cols, c)
		}
	}
	return newFrame(f.labels, cols)
}

// TakeRows returns a frame with the rows at the given positions, in
// order. Positions may repeat, which duplicates rows and their labels.
func (f *Frame) TakeRows(positions []int) (*Frame, error) {
	n := f.NumRows()
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, errors.NewValueError("Frame.TakeRows",
				fmt.Sprintf("position %d out of range [0, %d)", p, n))
		}
	}
	labels := make([]int, len(positions))
	for i, p := range positions {
		labels[i] = f.labels[p]
	}
	cols := make([]*Series, len(f.columns))
	for i, c := range f.columns {
		taken, err := c.Take(positions)
		if err != nil {
			return nil, err
		}
		cols[i] = taken
	}
	return newFrame(labels, cols)
}

// RowsByLabel returns a frame with the rows carrying the given labels.
// Each label resolves to its first occurrence; labels may repeat.
func (f *Frame) RowsByLabel(labels []int) (*Frame, error) {
	positions := make([]int, len(labels))
	for i, l := range labels {
		p, ok := f.labelPos[l]
		if !ok {
			return nil, errors.NewKeyError("Frame.RowsByLabel", "label", l)
		}
		positions[i] = p
	}
	return f.TakeRows(positions)
}

// WithIndex returns a frame with the same data under new row labels.
func (f *Frame) WithIndex(labels []int) (*Frame, error) {
	if len(labels) != f.NumRows() {
		return nil, errors.NewDimensionError("Frame.WithIndex", f.NumRows(), len(labels), 0)
	}
	cols := make([]*Series, len(f.columns))
	for i, c := range f.columns {
		clone := *c
		cols[i] = &clone
	}
	return newFrame(labels, cols)
}

// Head returns the first n rows, or the whole frame when n exceeds it.
func (f *Frame) Head(n int) (*Frame, error) {
	if n > f.NumRows() {
		n = f.NumRows()
	}
	if n < 0 {
		n = 0
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return f.TakeRows(positions)
}

// DTypes returns the column dtypes in column order.
func (f *Frame) DTypes() []DType {
	out := make([]DType, len(f.columns))
	for i, c := range f.columns {
		out[i] = c.dtype
	}
	return out
}

// NumericColumns returns the names of columns with a numeric dtype.
func (f *Frame) NumericColumns() []string {
	var out []string
	for _, c := range f.columns {
		if c.dtype.Numeric() {
			out = append(out, c.name)
		}
	}
	return out
}

// SelectNumeric returns a frame restricted to numeric columns.
func (f *Frame) SelectNumeric() (*Frame, error) {
	return f.Select(f.NumericColumns())
}

// Matrix converts the frame to a dense matrix for estimator interop.
// All columns must be numeric; Int columns widen to float64.
func (f *Frame) Matrix() (*mat.Dense, error) {
	if f.NumRows() == 0 || f.NumCols() == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData,
			"Frame.Matrix: frame is %dx%d", f.NumRows(), f.NumCols())
	}
	out := mat.NewDense(f.NumRows(), f.NumCols(), nil)
	for j, c := range f.columns {
		values, err := c.Float64s()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// RowFloats returns row i as a float64 slice across all columns.
// All columns must be numeric.
func (f *Frame) RowFloats(i int) ([]float64, error) {
	if i < 0 || i >= f.NumRows() {
		return nil, errors.NewValueError("Frame.RowFloats",
			fmt.Sprintf("position %d out of range [0, %d)", i, f.NumRows()))
	}
	out := make([]float64, len(f.columns))
	for j, c := range f.columns {
		switch c.dtype {
		case Float:
			out[j] = c.floats[i]
		case Int:
			out[j] = float64(c.ints[i])
		default:
			return nil, errors.NewValueError("Frame.RowFloats",
				fmt.Sprintf("column %q has non-numeric dtype %s", c.name, c.dtype))
		}
	}
	return out, nil
}

// GroupBy partitions row positions by the values of the given key
// series, which must align row-for-row with the frame.
func (f *Frame) GroupBy(key *Series) (*GroupBy, error) {
	if key.Len() != f.NumRows() {
		return nil, errors.NewDimensionError("Frame.GroupBy", f.NumRows(), key.Len(), 0)
	}
	return newGroupBy(key, f), nil
}

// GroupByColumn partitions rows by one of the frame's own columns.
func (f *Frame) GroupByColumn(name string) (*GroupBy, error) {
	key, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	return newGroupBy(key, f), nil
}

// String renders a compact description of the frame.
func (f *Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame(%dx%d)[", f.NumRows(), f.NumCols())
	for i, c := range f.columns {
		if i > 0 {
			b.WriteString(" ")
		}
		if i >= 6 {
			b.WriteString("...")
			break
		}
		fmt.Fprintf(&b, "%s:%s", c.name, c.dtype)
	}
	b.WriteString("]")
	return b.String()
}
