// Package document provides the JSON value tree that queries run against.
//
// A document is an explicit tagged variant: every Value is exactly one of
// null, bool, number, string, array or object. Objects keep their fields in
// source order. Values are immutable once built, so a document can be shared
// between goroutines without locking.
//
// Example usage:
//
//	doc, err := document.Parse(`{"id":"A1","detail":{"service":"EC2"}}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, ok := doc.Lookup("detail.service") // "EC2", true
package document

import "strings"

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is a single key/value pair of an object
type Field struct {
	Key   string
	Value Value
}

// Value is a node of a JSON document. The zero Value is null.
type Value struct {
	kind   Kind
	text   string // string content or number literal
	truth  bool
	items  []Value
	fields []Field
	index  map[string]int
}

// NullValue returns a null value
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a boolean value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, truth: b}
}

// NumberValue returns a number holding its literal text, e.g. "20" or "2.50".
// The literal is kept verbatim so that text projection never reformats it.
func NumberValue(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// StringValue returns a string value
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// ArrayValue returns an array holding items in order
func ArrayValue(items []Value) Value {
	return Value{kind: KindArray, items: items}
}

// ObjectValue returns an object holding fields in order.
//
// When a key appears more than once, the field keeps the position of its
// first occurrence and the value of its last one.
func ObjectValue(fields []Field) Value {
	v := Value{
		kind:   KindObject,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if i, exists := v.index[f.Key]; exists {
			v.fields[i].Value = f.Value
			continue
		}
		v.index[f.Key] = len(v.fields)
		v.fields = append(v.fields, f)
	}
	return v
}

// Kind returns the variant of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean held by v and whether v is a bool
func (v Value) Bool() (bool, bool) {
	return v.truth, v.kind == KindBool
}

// Text returns the scalar text form of v.
//
// Strings yield their content, numbers their literal, booleans "true" or
// "false" and null yields "null". Arrays and objects have no scalar form and
// yield the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.truth {
			return "true"
		}
		return "false"
	case KindNumber, KindString:
		return v.text
	case KindArray, KindObject:
		return ""
	default:
		return ""
	}
}

// Len returns the number of items of an array or fields of an object
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Items returns the elements of an array, or nil for any other kind
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Fields returns the fields of an object in order, or nil for any other kind
func (v Value) Fields() []Field {
	if v.kind != KindObject {
		return nil
	}
	return v.fields
}

// Field returns the value stored under key in an object
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.fields[i].Value, true
}

// With returns a copy of the object v with key set to val. An existing key
// keeps its position. Non-object values are returned unchanged.
func (v Value) With(key string, val Value) Value {
	if v.kind != KindObject {
		return v
	}
	fields := make([]Field, len(v.fields), len(v.fields)+1)
	copy(fields, v.fields)
	return ObjectValue(append(fields, Field{Key: key, Value: val}))
}

// Lookup walks a dot-separated path of object keys starting at v.
//
// Only named object traversal is supported; a segment applied to an array
// or scalar, or a key that does not exist, reports false.
func (v Value) Lookup(path string) (Value, bool) {
	current := v
	for _, part := range strings.Split(path, ".") {
		next, ok := current.Field(part)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Records returns the candidate records of a document: the elements of a
// root array, or the root itself for any other kind
func (v Value) Records() []Value {
	if v.kind == KindArray {
		return v.items
	}
	return []Value{v}
}
