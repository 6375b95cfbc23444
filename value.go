package simpleval

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// fieldValue is the view of a data value that rules operate on.
type fieldValue struct {
	text       string
	items      []any
	collection bool
}

func newFieldValue(v any) fieldValue {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return fieldValue{}
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fieldValue{text: string(rv.Bytes())}
		}
		return fieldValue{text: stringify(rv.Interface()), items: elements(rv), collection: true}
	case reflect.Array, reflect.Map:
		return fieldValue{text: stringify(rv.Interface()), items: elements(rv), collection: true}
	default:
		return fieldValue{text: stringify(rv.Interface())}
	}
}

// indirect follows pointers and interfaces. ok is false for nil or a nil
// pointer anywhere along the chain.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// empty reports whether the value has no content: "" for scalars, no items
// for collections.
func (fv fieldValue) empty() bool {
	if fv.collection {
		return len(fv.items) == 0
	}
	return fv.text == ""
}

// elements returns slice/array elements or map keys.
func elements(rv reflect.Value) []any {
	if rv.Kind() == reflect.Map {
		items := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			items = append(items, k.Interface())
		}
		return items
	}

	items := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		items = append(items, rv.Index(i).Interface())
	}
	return items
}

// stringify converts a primitive into the string form rules compare against.
// nil becomes "". Types cast cannot convert fall back to fmt formatting.
func stringify(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// members returns the string forms of the members of an auxiliary value:
// elements of a slice or array, keys of a map, or a single string.
// Anything else has no members.
func members(v any) []string {
	if s, ok := v.(string); ok {
		return []string{s}
	}
	if s, ok := v.([]string); ok {
		return s
	}

	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		return []string{rv.String()}
	case reflect.Slice, reflect.Array, reflect.Map:
		items := elements(rv)
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, stringify(item))
		}
		return out
	default:
		return nil
	}
}
