package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/jsonquery/document"
)

// Reader reads a parquet file as a document.
//
// It keeps both the OS file handle and the parquet file handle so that Close
// releases everything.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens path and validates it as a parquet file.
//
// Example:
//
//	r, err := NewReader("events.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads every row into an array document. Each row becomes an
// object whose top-level fields follow the schema order; nested groups
// become objects and repeated fields become arrays.
//
// The whole file is loaded into memory.
func (r *Reader) ReadAll() (document.Value, error) {
	order := r.fieldNames()
	records := make([]document.Value, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return document.Value{}, fmt.Errorf("failed to read row: %w", err)
		}
		records = append(records, document.FromGoOrdered(row, order))
	}

	return document.ArrayValue(records), nil
}

func (r *Reader) fieldNames() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}
	return names
}

// Schema returns the parquet file schema
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the underlying file. It is safe to call Close more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
