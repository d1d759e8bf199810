// Package output renders query result sets.
//
// Every formatter implements Formatter and writes the columns in the order
// they were selected. New picks a formatter by name:
//
//   - jsonl: one JSON object per row
//   - json: a single indented JSON array
//   - csv: a header row followed by one record per row
//   - table: an aligned text table
//   - parquet: a parquet file with one string column per selected column
//
// # Basic Usage
//
//	f, err := output.New("jsonl", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := f.Format(rs); err != nil {
//	    log.Fatal(err)
//	}
//
// Columns are flat keys: selecting detail.service produces a key named
// "detail.service", not a nested object. List cells become JSON arrays and
// map cells JSON objects. Formats without nesting (csv and parquet) store
// them as compact JSON text, and table shows their bracketed form.
//
// # Security
//
// The CSV formatter prefixes string values starting with =, +, -, @, tab,
// carriage return, newline or | with a single quote so spreadsheet
// applications do not evaluate them as formulas.
package output
