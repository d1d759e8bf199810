package query

import (
	"fmt"

	"github.com/tidwall/match"

	"github.com/vegasq/jsonquery/document"
	"github.com/vegasq/jsonquery/result"
)

// Handler runs queries against one document under one source name. A
// Handler never mutates its document and is safe for concurrent use.
type Handler struct {
	parser *Parser
	doc    document.Value
}

// NewHandler parses text as JSON and returns a handler serving it as source
func NewHandler(source, text string) (*Handler, error) {
	doc, err := document.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewHandlerFromDocument(source, doc), nil
}

// NewHandlerFromDocument returns a handler serving an already built document
func NewHandlerFromDocument(source string, doc document.Value) *Handler {
	return &Handler{parser: NewParser(source), doc: doc}
}

// Source returns the source name queries must select from
func (h *Handler) Source() string {
	return h.parser.Source()
}

// Document returns the document the handler queries
func (h *Handler) Document() document.Value {
	return h.doc
}

// Execute parses, binds and runs text against the document
func (h *Handler) Execute(text string, params Params) (*result.ResultSet, error) {
	q, err := h.parser.Parse(text)
	if err != nil {
		return nil, err
	}

	records := h.doc.Records()
	if q.HasWhere {
		where, err := Bind(q.Where, params)
		if err != nil {
			return nil, err
		}
		if !IsAlwaysTrue(where) {
			records, err = ApplyFilter(records, Tokenize(where))
			if err != nil {
				return nil, fmt.Errorf("failed to apply filter: %w", err)
			}
		}
	}

	return Assemble(records, h.expandColumns(q.Columns)), nil
}

// expandColumns replaces a lone * with the document's top-level keys
func (h *Handler) expandColumns(columns []string) []string {
	if len(columns) == 1 && columns[0] == "*" {
		return h.doc.Keys(1)
	}
	return columns
}

// Assemble projects columns against every record, keeping record order and
// column order
func Assemble(records []document.Value, columns []string) *result.ResultSet {
	rows := make([]result.Row, 0, len(records))
	for _, record := range records {
		cells := make([]result.Cell, len(columns))
		for i, column := range columns {
			cells[i] = result.Project(record.Lookup(column))
		}
		rows = append(rows, result.NewRow(columns, cells))
	}
	return result.NewResultSet(columns, rows)
}

// Keys returns the dotted key paths of the document down to depth
func (h *Handler) Keys(depth int) []string {
	return h.doc.Keys(depth)
}

// KeysMatching returns the keys down to depth that match a wildcard pattern
// such as detail.* or *Code
func (h *Handler) KeysMatching(depth int, pattern string) []string {
	keys := make([]string, 0)
	for _, key := range h.doc.Keys(depth) {
		if match.Match(key, pattern) {
			keys = append(keys, key)
		}
	}
	return keys
}
