package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/jsonquery/result"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header of the selected columns followed by one record per
// row. Lists and maps are written as JSON text.
func (c *CSVFormatter) Format(rs *result.ResultSet) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(rs.Columns()) > 0 {
		if err := csvWriter.Write(rs.Columns()); err != nil {
			return err
		}
	}

	for _, row := range rs.Rows() {
		record := make([]string, 0, len(rs.Columns()))
		for _, column := range rs.Columns() {
			cell, _ := row.Get(column)
			value, err := cellText(cell)
			if err != nil {
				return err
			}
			if cell.Kind() == result.CellString {
				value = sanitize(value)
			}
			record = append(record, value)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitize prefixes values that spreadsheet applications would run as
// formulas, escaping existing single quotes
func sanitize(val string) string {
	if val == "" {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
