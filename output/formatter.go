package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/jsonquery/result"
)

// Format names accepted by New
const (
	FormatJSONL   = "jsonl"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatTable   = "table"
	FormatParquet = "parquet"
)

// ErrUnknownFormat is returned by New for an unsupported format name
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a result set in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the result set, columns in SELECT order
	Format(rs *result.ResultSet) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under format
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatJSONL:
		return NewJSONFormatter(w), nil
	case FormatJSON:
		return NewJSONArrayFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (use jsonl, json, csv, table or parquet)", ErrUnknownFormat, format)
	}
}
