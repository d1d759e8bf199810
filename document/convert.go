package document

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// FromGo converts a decoded Go value (as produced by encoding/json or a
// parquet row reader) into a document Value.
//
// Map keys are sorted, since Go maps carry no order. Values of unknown types
// are stored as strings using their fmt representation.
func FromGo(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return val
	case bool:
		return BoolValue(val)
	case string:
		return StringValue(val)
	case []byte:
		return StringValue(string(val))
	case json.Number:
		return NumberValue(val.String())
	case int:
		return NumberValue(strconv.FormatInt(int64(val), 10))
	case int8:
		return NumberValue(strconv.FormatInt(int64(val), 10))
	case int16:
		return NumberValue(strconv.FormatInt(int64(val), 10))
	case int32:
		return NumberValue(strconv.FormatInt(int64(val), 10))
	case int64:
		return NumberValue(strconv.FormatInt(val, 10))
	case uint:
		return NumberValue(strconv.FormatUint(uint64(val), 10))
	case uint8:
		return NumberValue(strconv.FormatUint(uint64(val), 10))
	case uint16:
		return NumberValue(strconv.FormatUint(uint64(val), 10))
	case uint32:
		return NumberValue(strconv.FormatUint(uint64(val), 10))
	case uint64:
		return NumberValue(strconv.FormatUint(val, 10))
	case float32:
		return NumberValue(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		return NumberValue(strconv.FormatFloat(val, 'f', -1, 64))
	case time.Time:
		return StringValue(val.UTC().Format(time.RFC3339Nano))
	case []interface{}:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = FromGo(item)
		}
		return ArrayValue(items)
	case map[string]interface{}:
		return FromGoOrdered(val, nil)
	}

	return fromReflect(reflect.ValueOf(v))
}

// FromGoOrdered converts a map into an object whose leading fields follow
// order. Keys missing from order are appended in sorted order.
func FromGoOrdered(m map[string]interface{}, order []string) Value {
	fields := make([]Field, 0, len(m))
	seen := make(map[string]bool, len(order))
	for _, key := range order {
		val, ok := m[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, Field{Key: key, Value: FromGo(val)})
	}

	rest := make([]string, 0, len(m)-len(fields))
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fields = append(fields, Field{Key: key, Value: FromGo(m[key])})
	}

	return ObjectValue(fields)
}

// fromReflect handles slices, pointers and string-keyed maps of concrete types
func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Invalid:
		return NullValue()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullValue()
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = FromGo(rv.Index(i).Interface())
		}
		return ArrayValue(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGoOrdered(m, nil)
	}
	return StringValue(fmt.Sprintf("%v", rv.Interface()))
}
