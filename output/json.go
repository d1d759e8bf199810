package output

import (
	"bytes"
	"io"

	"github.com/tidwall/pretty"

	"github.com/vegasq/jsonquery/result"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keys in column order
func (j *JSONFormatter) Format(rs *result.ResultSet) error {
	for _, row := range rs.Rows() {
		line, err := rowJSON(row)
		if err != nil {
			return err
		}
		if _, err := j.writer.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// JSONArrayFormatter outputs the whole result set as one indented JSON array
type JSONArrayFormatter struct {
	writer io.Writer
}

// NewJSONArrayFormatter creates a new JSON array formatter
func NewJSONArrayFormatter(w io.Writer) *JSONArrayFormatter {
	return &JSONArrayFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONArrayFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes all rows as a single JSON array
func (j *JSONArrayFormatter) Format(rs *result.ResultSet) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range rs.Rows() {
		if i > 0 {
			buf.WriteByte(',')
		}
		obj, err := rowJSON(row)
		if err != nil {
			return err
		}
		buf.Write(obj)
	}
	buf.WriteByte(']')

	_, err := j.writer.Write(pretty.Pretty(buf.Bytes()))
	return err
}
