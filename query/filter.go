package query

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"

	"github.com/vegasq/jsonquery/document"
	"github.com/vegasq/jsonquery/result"
)

var (
	// atomPattern splits an atom into field, operator and literal. A quoted
	// literal yields its inner text.
	atomPattern = regexp.MustCompile(`^(?s)(.+?)\s*(<=|>=|=|<|>)\s*(?:'(.*)'|(.*))$`)

	numericPattern = regexp.MustCompile(`^[+-]?(?:\d[\d.]*|\.[\d.]+)(?:[eE][+-]?\d+)?$`)
)

// Evaluate reports whether record satisfies tokens.
//
// Connectives are applied strictly left to right with no precedence, so
// a OR b AND c means (a OR b) AND c. Evaluation short-circuits: once the
// running result decides a connective, the atom after it is not evaluated.
// An empty token list matches every record.
func Evaluate(record document.Value, tokens []Token) (bool, error) {
	if len(tokens) == 0 {
		return true, nil
	}

	matched, err := evaluateAtom(record, tokens[0].Text)
	if err != nil {
		return false, err
	}

	for i := 1; i+1 < len(tokens); i += 2 {
		switch tokens[i].Kind {
		case TokenAnd:
			if !matched {
				continue
			}
		case TokenOr:
			if matched {
				continue
			}
		case TokenAtom:
			return false, fmt.Errorf("%w: expected connective, got %q", ErrInvalidQuery, tokens[i].Text)
		}
		if matched, err = evaluateAtom(record, tokens[i+1].Text); err != nil {
			return false, err
		}
	}
	return matched, nil
}

// evaluateAtom evaluates a single comparison such as detail.code >= '10'
func evaluateAtom(record document.Value, atom string) (bool, error) {
	m := atomPattern.FindStringSubmatchIndex(atom)
	if m == nil {
		return false, nil
	}

	field := atom[m[2]:m[3]]
	operator := atom[m[4]:m[5]]
	var literal string
	if m[6] >= 0 {
		literal = atom[m[6]:m[7]]
	} else {
		literal = atom[m[8]:m[9]]
	}

	value := result.Project(record.Lookup(field)).String()

	if operator == "=" {
		return value == literal, nil
	}

	c, err := compareValues(value, literal)
	if err != nil {
		return false, err
	}

	switch operator {
	case "<":
		return c < 0, nil
	case ">":
		return c > 0, nil
	case "<=":
		return c <= 0, nil
	case ">=":
		return c >= 0, nil
	default:
		return false, nil
	}
}

// compareValues compares numerically when both sides look numeric and
// lexicographically otherwise
func compareValues(left, right string) (int, error) {
	if !numericPattern.MatchString(left) || !numericPattern.MatchString(right) {
		return cmp.Compare(left, right), nil
	}

	l, err := parseNumber(left)
	if err != nil {
		return 0, err
	}
	r, err := parseNumber(right)
	if err != nil {
		return 0, err
	}

	if l.isInt && r.isInt {
		return cmp.Compare(l.i, r.i), nil
	}
	return cmp.Compare(l.float(), r.float()), nil
}

type number struct {
	i     int64
	f     float64
	isInt bool
}

func (n number) float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// parseNumber parses s as an integer first, then as a float
func parseNumber(s string) (number, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{i: i, isInt: true}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return number{f: f}, nil
}

// ApplyFilter returns the records that satisfy tokens, in order
func ApplyFilter(records []document.Value, tokens []Token) ([]document.Value, error) {
	if len(tokens) == 0 {
		return records, nil
	}

	filtered := make([]document.Value, 0)
	for _, record := range records {
		match, err := Evaluate(record, tokens)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
