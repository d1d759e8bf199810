package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Parser matches queries against one source name
type Parser struct {
	source  string
	pattern *regexp.Regexp
}

// NewParser creates a parser for queries that select from source. The
// keywords are case-insensitive, the source name must match exactly.
func NewParser(source string) *Parser {
	expr := `(?is)^select\s+(.+?)\s+from\s+(?-i:` + regexp.QuoteMeta(source) + `)(?:\s+where\s+(.+))?$`
	return &Parser{
		source:  source,
		pattern: regexp.MustCompile(expr),
	}
}

// Source returns the source name the parser accepts
func (p *Parser) Source() string {
	return p.source
}

// Parse parses a query against the parser's source name
func (p *Parser) Parse(text string) (*Query, error) {
	if err := ValidateQuery(text); err != nil {
		return nil, err
	}
	if p.source == "" {
		return nil, fmt.Errorf("%w: empty source name", ErrInvalidQuery)
	}

	trimmed := strings.TrimSpace(text)
	m := p.pattern.FindStringSubmatchIndex(trimmed)
	if m == nil {
		return nil, fmt.Errorf("%w: expected select <columns> from %s [where <condition>]", ErrInvalidQuery, p.source)
	}

	columns := splitColumns(trimmed[m[2]:m[3]])
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns selected", ErrInvalidQuery)
	}
	if err := ValidateColumns(columns); err != nil {
		return nil, err
	}

	q := &Query{Columns: columns}
	if m[4] >= 0 {
		q.HasWhere = true
		q.Where = strings.TrimSpace(trimmed[m[4]:m[5]])
	}
	return q, nil
}

// Parse parses a query that selects from source
func Parse(text, source string) (*Query, error) {
	return NewParser(source).Parse(text)
}

// splitColumns splits a column list on commas, dropping empty entries
func splitColumns(list string) []string {
	parts := strings.Split(list, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		if column := strings.TrimSpace(part); column != "" {
			columns = append(columns, column)
		}
	}
	return columns
}
