package store

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// anyOf is a filter value matching any of several values
type anyOf []any

// AnyOf builds a filter value that matches when the field equals, or the
// array field contains, any of the given values
func AnyOf[V any](values ...V) any {
	out := make(anyOf, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

type clause struct {
	field  string
	values []any
}

// matcher is a compiled filter over decoded JSON documents
type matcher []clause

// compile normalizes filter values to their JSON form so they compare
// equal to decoded documents regardless of the Go type used to build them
func compile(f Filter) (matcher, error) {
	m := make(matcher, 0, len(f))
	for field, v := range f {
		var raw []any
		if many, ok := v.(anyOf); ok {
			raw = many
		} else {
			raw = []any{v}
		}

		values := make([]any, 0, len(raw))
		for _, r := range raw {
			n, err := normalize(r)
			if err != nil {
				return nil, fmt.Errorf("invalid filter value for %q: %w", field, err)
			}
			values = append(values, n)
		}
		m = append(m, clause{field: field, values: values})
	}
	return m, nil
}

// id returns the single ID the matcher pins, if any
func (m matcher) id() (string, bool) {
	for _, c := range m {
		if c.field != "id" || len(c.values) != 1 {
			continue
		}
		if id, ok := c.values[0].(string); ok {
			return id, true
		}
	}
	return "", false
}

func (m matcher) matches(fields map[string]any) bool {
	for _, c := range m {
		got := fields[c.field]
		hit := false
		for _, want := range c.values {
			if matchValue(got, want) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func matchValue(got, want any) bool {
	if arr, ok := got.([]any); ok {
		if _, wantArr := want.([]any); !wantArr {
			for _, v := range arr {
				if reflect.DeepEqual(v, want) {
					return true
				}
			}
			return false
		}
	}
	return reflect.DeepEqual(got, want)
}

// normalize round-trips v through JSON
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFields(data []byte) (map[string]any, error) {
	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return fields, nil
}
