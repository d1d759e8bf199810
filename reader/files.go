package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/jsonquery/document"
)

// FileColumn is the field added to every record read through a glob pattern,
// holding the path of the file the record came from
const FileColumn = "_file"

// maxFiles bounds how many files one glob pattern may expand to
const maxFiles = 1000

// IsParquet reports whether path names a parquet file
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// ReadDocument reads a single file as a document. Files ending in .parquet
// are read as parquet, everything else as JSON.
func ReadDocument(path string) (document.Value, error) {
	if !IsParquet(path) {
		return ReadJSONFile(path)
	}

	r, err := NewReader(path)
	if err != nil {
		return document.Value{}, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// ReadMultipleFiles reads every file matching a glob pattern into a single
// array document.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Examples:
//   - "events/*.json" - all JSON files in the events directory
//   - "data/2024-*.parquet" - parquet files starting with 2024- in data
//
// Records are the elements of array documents and the documents themselves
// otherwise. Object records are tagged with a _file field holding their
// source path. A pattern without wildcards reads that one file unchanged and
// untagged.
func ReadMultipleFiles(pattern string) (document.Value, error) {
	if !strings.ContainsAny(pattern, "*?[]") {
		return ReadDocument(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return document.Value{}, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return document.Value{}, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return document.Value{}, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var records []document.Value
	for _, path := range matches {
		doc, err := ReadDocument(path)
		if err != nil {
			return document.Value{}, fmt.Errorf("failed to read %s: %w", path, err)
		}

		file := document.StringValue(path)
		for _, record := range doc.Records() {
			records = append(records, record.With(FileColumn, file))
		}
	}

	return document.ArrayValue(records), nil
}
