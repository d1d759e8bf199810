package query

import (
	"regexp"
	"strings"
)

var (
	// conditionPattern finds connectives and atoms, leftmost first. Quoted
	// literals may contain spaces, bare literals run to the next whitespace.
	conditionPattern = regexp.MustCompile(`(?i)\b(?:and|or)\b|\S+\s*(?:<=|>=|=|<|>)\s*'[^']*'|\S+\s*(?:<=|>=|=|<|>)\s*\S+`)

	alwaysTruePattern = regexp.MustCompile(`(?i)^(?:1\s*=\s*1|'t'\s*=\s*'t')$`)
)

// Tokenize splits a bound WHERE clause into atoms and connectives.
//
// Fragments that match neither form are dropped. The result always
// alternates atom, connective, atom and starts and ends on an atom: a
// connective with no atom before it is dropped, as is an atom directly after
// another atom and a trailing connective. Tokenize never fails.
func Tokenize(where string) []Token {
	tokens := make([]Token, 0)
	for _, text := range conditionPattern.FindAllString(where, -1) {
		tok := classify(strings.TrimSpace(text))

		expectAtom := len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenAtom
		if (tok.Kind == TokenAtom) != expectAtom {
			continue
		}
		tokens = append(tokens, tok)
	}

	if n := len(tokens); n > 0 && tokens[n-1].Kind != TokenAtom {
		tokens = tokens[:n-1]
	}
	return tokens
}

func classify(text string) Token {
	switch strings.ToLower(text) {
	case "and":
		return Token{Kind: TokenAnd, Text: text}
	case "or":
		return Token{Kind: TokenOr, Text: text}
	default:
		return Token{Kind: TokenAtom, Text: text}
	}
}

// IsAlwaysTrue reports whether where matches every record without being
// evaluated: empty text, 1 = 1 or 'T' = 'T'
func IsAlwaysTrue(where string) bool {
	where = strings.TrimSpace(where)
	return where == "" || alwaysTruePattern.MatchString(where)
}
