package query

// TokenKind represents the kind of a condition token
type TokenKind int

const (
	// TokenAtom is a single comparison such as detail.service = 'EC2'
	TokenAtom TokenKind = iota
	// TokenAnd is the AND connective
	TokenAnd
	// TokenOr is the OR connective
	TokenOr
)

// String returns a readable name for the kind
func (k TokenKind) String() string {
	switch k {
	case TokenAtom:
		return "ATOM"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Token is one element of a tokenized WHERE clause
type Token struct {
	Kind TokenKind
	Text string
}

// Query represents a parsed query
type Query struct {
	// Columns holds the selected column paths in SELECT order
	Columns []string
	// Where holds the raw, trimmed WHERE text
	Where string
	// HasWhere reports whether a WHERE keyword was present
	HasWhere bool
}

// Params maps placeholder names, without the leading colon, to values.
// Values are rendered with fmt.Sprint when bound.
type Params map[string]any
