package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/jsonquery/document"
)

// Column describes one leaf column of a parquet file
type Column struct {
	// Path is the dotted path a query selects the column with
	Path         string
	Type         string
	PhysicalType string
	LogicalType  string
	Required     bool
	Optional     bool
	Repeated     bool
}

// SchemaColumns lists the field names of SchemaDocument records in order
var SchemaColumns = []string{"path", "type", "physical_type", "logical_type", "required", "optional", "repeated"}

// ExtractSchema lists the leaf columns of a parquet file. Nested fields use
// dotted paths such as address.street, matching how queries address them.
func ExtractSchema(path string) ([]Column, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var columns []Column
	for _, field := range r.Schema().Fields() {
		columns = appendColumns(columns, field, "", false)
	}
	return columns, nil
}

// SchemaDocument converts columns into an array document with one record per
// column, so a schema can be queried and formatted like any other document
func SchemaDocument(columns []Column) document.Value {
	records := make([]document.Value, len(columns))
	for i, c := range columns {
		records[i] = document.ObjectValue([]document.Field{
			{Key: "path", Value: document.StringValue(c.Path)},
			{Key: "type", Value: document.StringValue(c.Type)},
			{Key: "physical_type", Value: document.StringValue(c.PhysicalType)},
			{Key: "logical_type", Value: document.StringValue(c.LogicalType)},
			{Key: "required", Value: document.BoolValue(c.Required)},
			{Key: "optional", Value: document.BoolValue(c.Optional)},
			{Key: "repeated", Value: document.BoolValue(c.Repeated)},
		})
	}
	return document.ArrayValue(records)
}

// appendColumns walks field depth first. Groups contribute only their leaves,
// and a repeated group marks every leaf below it as repeated.
func appendColumns(columns []Column, field parquet.Field, prefix string, parentRepeated bool) []Column {
	path := field.Name()
	if prefix != "" {
		path = prefix + "." + path
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			columns = appendColumns(columns, child, path, repeated)
		}
		return columns
	}

	return append(columns, Column{
		Path:         path,
		Type:         friendlyType(field),
		PhysicalType: physicalType(field),
		LogicalType:  logicalType(field),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	})
}

func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

func logicalType(field parquet.Field) string {
	if field.Type() == nil || field.Type().LogicalType() == nil {
		return ""
	}
	return field.Type().LogicalType().String()
}

// friendlyType names a column the way it reads in query results: logical
// types win over physical ones, and floats are named by width
func friendlyType(field parquet.Field) string {
	switch lt := logicalType(field); lt {
	case "STRING", "UTF8":
		return "STRING"
	case "ENUM", "UUID", "DATE", "TIME", "TIMESTAMP", "DECIMAL", "JSON", "BSON":
		return lt
	}

	switch pt := physicalType(field); pt {
	case "FLOAT":
		return "FLOAT32"
	case "DOUBLE":
		return "FLOAT64"
	default:
		return pt
	}
}

// String renders the column as path: type
func (c Column) String() string {
	return fmt.Sprintf("%s: %s", c.Path, c.Type)
}
