package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/jsonquery/result"
)

// TableFormatter outputs rows as an aligned text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the result set with a header of the selected columns.
// Lists and maps are shown in their bracketed form, e.g. [a, {k=v}].
func (f *TableFormatter) Format(rs *result.ResultSet) error {
	table := tablewriter.NewWriter(f.writer)
	table.SetHeader(rs.Columns())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	data := make([][]string, 0, rs.Size())
	for _, row := range rs.Rows() {
		line := make([]string, 0, len(rs.Columns()))
		for _, cell := range row.Values() {
			line = append(line, cell.String())
		}
		data = append(data, line)
	}
	table.AppendBulk(data)
	table.Render()
	return nil
}
