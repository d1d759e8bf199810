package query

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches quoted literals, which are copied untouched, and
// :name placeholders
var placeholderPattern = regexp.MustCompile(`'[^']*'|:(\w+)`)

// Bind replaces every :name placeholder in where with the quoted string form
// of params[name].
//
// Placeholders are matched on whole names, so :id never clobbers :identifier.
// Text inside single-quoted literals is left alone and substituted values are
// not scanned again. A colon directly after a word character, as in 10:30, is
// not a placeholder. The first placeholder without a value fails the bind with
// ErrUnboundParameter. Unused params are ignored.
func Bind(where string, params Params) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(where, -1)
	if len(matches) == 0 {
		return where, nil
	}

	var b strings.Builder
	b.Grow(len(where))
	last := 0
	for _, m := range matches {
		if m[2] < 0 {
			// quoted literal
			continue
		}
		if m[0] > 0 && isWordByte(where[m[0]-1]) {
			continue
		}

		name := where[m[2]:m[3]]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: :%s", ErrUnboundParameter, name)
		}
		b.WriteString(where[last:m[0]])
		b.WriteByte('\'')
		b.WriteString(fmt.Sprint(value))
		b.WriteByte('\'')
		last = m[1]
	}
	b.WriteString(where[last:])
	return b.String(), nil
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
