package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/vegasq/jsonquery/document"
)

// ReadJSON reads a whole JSON document from r
func ReadJSON(r io.Reader) (document.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return document.Value{}, fmt.Errorf("failed to read input: %w", err)
	}
	return document.ParseBytes(data)
}

// ReadJSONFile reads a JSON document from path
func ReadJSONFile(path string) (document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Value{}, fmt.Errorf("failed to open file: %w", err)
	}
	doc, err := document.ParseBytes(data)
	if err != nil {
		return document.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
