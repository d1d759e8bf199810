package output

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/jsonquery/result"
)

// ErrNoColumns is returned when a result set without columns is written as
// parquet
var ErrNoColumns = errors.New("result set has no columns")

// ParquetFormatter outputs rows as a parquet file with one required string
// column per selected column. Lists and maps are stored as JSON text.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes the result set as a complete parquet file
func (p *ParquetFormatter) Format(rs *result.ResultSet) error {
	columns := uniqueSorted(rs.Columns())
	if len(columns) == 0 {
		return ErrNoColumns
	}

	// group fields are laid out by name, so leaf i is columns[i]
	group := make(parquet.Group, len(columns))
	for _, column := range columns {
		group[column] = parquet.String()
	}
	schema := parquet.NewSchema("result", group)

	writer := parquet.NewWriter(p.writer, schema)
	rows := make([]parquet.Row, 0, rs.Size())
	for _, r := range rs.Rows() {
		row := make(parquet.Row, len(columns))
		for i, column := range columns {
			cell, _ := r.Get(column)
			text, err := cellText(cell)
			if err != nil {
				return err
			}
			row[i] = parquet.ValueOf(text).Level(0, 0, i)
		}
		rows = append(rows, row)
	}

	if _, err := writer.WriteRows(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func uniqueSorted(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
