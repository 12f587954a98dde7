package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kgocks/bamboo/pkg/errors"
)

// CSVOption configures ReadCSV.
type CSVOption func(*csvConfig)

type csvConfig struct {
	comma       rune
	indexColumn string
}

// WithDelimiter sets the field delimiter, comma by default.
func WithDelimiter(r rune) CSVOption {
	return func(c *csvConfig) { c.comma = r }
}

// WithIndexColumn promotes the named integer column to the row-label
// index. The column is removed from the frame's data columns.
func WithIndexColumn(name string) CSVOption {
	return func(c *csvConfig) { c.indexColumn = name }
}

// ReadCSV reads a header CSV into a frame, inferring one dtype per
// column. Inference tries int, then float, then bool, then falls back
// to string. Missing values are not modeled: a column with empty cells
// becomes a string column. A column holding a mix of integer and
// floating point cells is promoted to Float with a DataConversionWarning.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	cfg := csvConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadCSV: parse failed")
	}
	if len(records) < 2 {
		return nil, errors.Wrap(errors.ErrEmptyData, "frame.ReadCSV: need a header row and at least one data row")
	}

	header := records[0]
	rows := records[1:]
	cols := make([]*Series, len(header))
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		cols[j] = inferSeries(name, cells)
	}

	f, err := New(cols...)
	if err != nil {
		return nil, err
	}
	if cfg.indexColumn == "" {
		return f, nil
	}
	return promoteIndex(f, cfg.indexColumn)
}

// inferSeries picks the narrowest dtype that parses every cell.
func inferSeries(name string, cells []string) *Series {
	intVals := make([]int64, len(cells))
	intOK := true
	intAny := false
	for i, cell := range cells {
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			intOK = false
			continue
		}
		intVals[i] = v
		intAny = true
	}
	if intOK {
		return NewIntSeries(name, intVals, nil)
	}

	floatVals := make([]float64, len(cells))
	floatOK := true
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			floatOK = false
			break
		}
		floatVals[i] = v
	}
	if floatOK {
		if intAny {
			errors.Warn(errors.NewDataConversionWarning("int", "float64",
				fmt.Sprintf("column %q holds mixed integer and floating point values", name)))
		}
		return NewFloatSeries(name, floatVals, nil)
	}

	boolVals := make([]bool, len(cells))
	boolOK := true
	for i, cell := range cells {
		v, err := strconv.ParseBool(cell)
		if err != nil {
			boolOK = false
			break
		}
		boolVals[i] = v
	}
	if boolOK {
		return NewBoolSeries(name, boolVals, nil)
	}

	strVals := make([]string, len(cells))
	copy(strVals, cells)
	return NewStringSeries(name, strVals, nil)
}

// promoteIndex moves an integer column into the row-label index.
func promoteIndex(f *Frame, name string) (*Frame, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if col.DType() != Int {
		return nil, errors.NewValidationError("indexColumn",
			"index column must have int dtype", fmt.Sprintf("%s:%s", name, col.DType()))
	}
	labels := make([]int, col.Len())
	for i, v := range col.ints {
		labels[i] = int(v)
	}
	dropped, err := f.Drop(name)
	if err != nil {
		return nil, err
	}
	return dropped.WithIndex(labels)
}
