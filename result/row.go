package result

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMissingValue is returned by the custom-parser accessors when a column
// holds no string value
var ErrMissingValue = errors.New("value is missing or not a string")

// Row maps each selected column, by its literal text, to a cell
type Row struct {
	columns []string
	cells   map[string]Cell
}

// NewRow builds a row from parallel column and cell slices
func NewRow(columns []string, cells []Cell) Row {
	m := make(map[string]Cell, len(columns))
	for i, column := range columns {
		if i < len(cells) {
			m[column] = cells[i]
		}
	}
	return Row{columns: columns, cells: m}
}

// Columns returns the column names in SELECT order
func (r Row) Columns() []string {
	return r.columns
}

// Len returns the number of cells in the row
func (r Row) Len() int {
	return len(r.cells)
}

// IsEmpty reports whether the row holds no cells
func (r Row) IsEmpty() bool {
	return len(r.cells) == 0
}

// Get returns the cell stored for column
func (r Row) Get(column string) (Cell, bool) {
	c, ok := r.cells[column]
	return c, ok
}

// Values returns the cells in column order
func (r Row) Values() []Cell {
	values := make([]Cell, 0, len(r.columns))
	for _, column := range r.columns {
		values = append(values, r.cells[column])
	}
	return values
}

// GetString returns the scalar stored for column, or def when the column is
// absent or holds a list or map
func (r Row) GetString(column, def string) string {
	if s, ok := r.cells[column].Str(); ok {
		return s
	}
	return def
}

// GetInt returns the column parsed as an integer, or def when it does not parse
func (r Row) GetInt(column string, def int) int {
	n, err := strconv.Atoi(r.GetString(column, ""))
	if err != nil {
		return def
	}
	return n
}

// GetList returns the elements of a list column, or nil
func (r Row) GetList(column string) []Cell {
	return r.cells[column].Items()
}

// GetMap returns a map column as a Go map, or nil
func (r Row) GetMap(column string) map[string]string {
	return r.cells[column].Map()
}

// GetDate parses the column with ParseDate. Columns without a scalar value
// yield def.
func (r Row) GetDate(column string, def time.Time) (time.Time, error) {
	s, ok := r.cells[column].Str()
	if !ok {
		return def, nil
	}
	return ParseDate(s)
}

// GetDateTime parses the column with ParseDateTime. Columns without a scalar
// value yield def.
func (r Row) GetDateTime(column string, def time.Time) (time.Time, error) {
	s, ok := r.cells[column].Str()
	if !ok {
		return def, nil
	}
	return ParseDateTime(s)
}

// GetDateTimeWith parses the column with a caller-supplied parser
func (r Row) GetDateTimeWith(column string, parse func(string) (time.Time, error)) (time.Time, error) {
	s, ok := r.cells[column].Str()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingValue, column)
	}
	return parse(s)
}
