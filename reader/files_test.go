package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vegasq/jsonquery/document"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadJSON(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(`{"id":"A1"}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if v, _ := doc.Lookup("id"); v.Text() != "A1" {
		t.Errorf("id = %q, want A1", v.Text())
	}

	if _, err := ReadJSON(strings.NewReader(`{"id":`)); !errors.Is(err, document.ErrMalformedDocument) {
		t.Errorf("ReadJSON() error = %v, want ErrMalformedDocument", err)
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	jsonPath := writeFile(t, dir, "event.json", `[{"id":"A1"},{"id":"A2"}]`)
	doc, err := ReadDocument(jsonPath)
	if err != nil {
		t.Fatalf("ReadDocument(json) error = %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("ReadDocument(json) returned %d records, want 2", doc.Len())
	}

	pqPath := writeParquet(t, dir, "events.PARQUET", []event{{ID: 1, Service: "EC2"}})
	doc, err = ReadDocument(pqPath)
	if err != nil {
		t.Fatalf("ReadDocument(parquet) error = %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("ReadDocument(parquet) returned %d records, want 1", doc.Len())
	}

	bad := writeFile(t, dir, "bad.json", `{"id":`)
	if _, err := ReadDocument(bad); !errors.Is(err, document.ErrMalformedDocument) {
		t.Errorf("ReadDocument(bad) error = %v, want ErrMalformedDocument", err)
	}
	if _, err := ReadDocument(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadDocument(missing) succeeded")
	}
}

func TestReadMultipleFiles_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "event.json", `{"id":"A1"}`)

	doc, err := ReadMultipleFiles(path)
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}
	if doc.Kind() != document.KindObject {
		t.Fatalf("single file kind = %v, want the document unchanged", doc.Kind())
	}
	if _, ok := doc.Field(FileColumn); ok {
		t.Error("single file read added _file")
	}
}

func TestReadMultipleFiles_GlobPattern(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.json", `[{"id":"A1"},{"id":"A2"}]`)
	second := writeFile(t, dir, "b.json", `{"id":"B1"}`)
	writeFile(t, dir, "notes.txt", "ignored")

	doc, err := ReadMultipleFiles(filepath.Join(dir, "*.json"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}

	records := doc.Records()
	if len(records) != 3 {
		t.Fatalf("ReadMultipleFiles() returned %d records, want 3", len(records))
	}
	wantFiles := []string{first, first, second}
	for i, record := range records {
		if got := text(t, record, FileColumn); got != wantFiles[i] {
			t.Errorf("record %d _file = %q, want %q", i, got, wantFiles[i])
		}
	}
	if got := text(t, records[2], "id"); got != "B1" {
		t.Errorf("record 2 id = %q, want B1", got)
	}
}

func TestReadMultipleFiles_MixedFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-01.json", `[{"id":1,"service":"S3"}]`)
	writeParquet(t, dir, "2024-02.parquet", []event{{ID: 2, Service: "EC2"}})

	doc, err := ReadMultipleFiles(filepath.Join(dir, "2024-*"))
	if err != nil {
		t.Fatalf("ReadMultipleFiles() error = %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("ReadMultipleFiles() returned %d records, want 2", doc.Len())
	}
	if got := text(t, doc.Records()[1], "service"); got != "EC2" {
		t.Errorf("parquet record service = %q, want EC2", got)
	}
}

func TestReadMultipleFiles_NoMatch(t *testing.T) {
	_, err := ReadMultipleFiles(filepath.Join(t.TempDir(), "*.json"))
	if err == nil || !strings.Contains(err.Error(), "no files match pattern") {
		t.Errorf("ReadMultipleFiles() error = %v, want no files match", err)
	}
}

func TestReadMultipleFiles_BadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"id":"A1"}`)
	writeFile(t, dir, "b.json", `not json`)

	if _, err := ReadMultipleFiles(filepath.Join(dir, "*.json")); !errors.Is(err, document.ErrMalformedDocument) {
		t.Errorf("ReadMultipleFiles() error = %v, want ErrMalformedDocument", err)
	}
}
