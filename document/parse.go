package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedDocument is returned when input text is not valid JSON
var ErrMalformedDocument = errors.New("malformed document")

// Parse parses JSON text into a document
func Parse(text string) (Value, error) {
	if !gjson.Valid(text) {
		return Value{}, fmt.Errorf("%w: input is not valid JSON", ErrMalformedDocument)
	}
	return fromResult(gjson.Parse(text)), nil
}

// ParseBytes parses JSON bytes into a document
func ParseBytes(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, fmt.Errorf("%w: input is not valid JSON", ErrMalformedDocument)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// fromResult converts a gjson node, walking containers with ForEach so that
// object fields keep their source order
func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return NullValue()
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return NumberValue(strings.TrimSpace(r.Raw))
	case gjson.String:
		return StringValue(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return ArrayValue(items)
		}
		fields := make([]Field, 0)
		r.ForEach(func(key, item gjson.Result) bool {
			fields = append(fields, Field{Key: key.String(), Value: fromResult(item)})
			return true
		})
		return ObjectValue(fields)
	default:
		return NullValue()
	}
}
