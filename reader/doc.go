// Package reader loads documents from JSON and Apache Parquet files.
//
// JSON files are parsed as a whole. Parquet files are read row by row, each
// row becoming one object record of an array document, so both formats can
// be queried the same way.
//
// # Basic Usage
//
// Reading a single file, dispatching on its extension:
//
//	doc, err := reader.ReadDocument("events.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reading a parquet file directly:
//
//	r, err := reader.NewReader("events.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	doc, err := r.ReadAll()
//
// # Multi-file Operations
//
// Reading every file matching a glob pattern into one array document:
//
//	doc, err := reader.ReadMultipleFiles("events/*.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each object record carries a "_file" field with its source path, so a
// query can select or filter on it.
//
// # Schema Introspection
//
// ExtractSchema lists the leaf columns of a parquet file and SchemaDocument
// turns them into a queryable document:
//
//	columns, err := reader.ExtractSchema("events.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range columns {
//	    fmt.Println(c)
//	}
//
// The package uses github.com/parquet-go/parquet-go for parquet files and
// github.com/tidwall/gjson, through package document, for JSON.
package reader
