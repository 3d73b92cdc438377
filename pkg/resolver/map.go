package resolver

import (
	"fmt"
	"strconv"
)

// Map resolves variables from a map[string]any, stringifying values on the
// way out. Chomp write-backs replace the stored value with the remainder
// string.
type Map struct {
	values map[string]any
}

// NewMap wraps a value map. The map is used by reference so callers can
// observe chomp mutations; pass a copy to avoid that.
func NewMap(values map[string]any) *Map {
	if values == nil {
		values = make(map[string]any)
	}
	return &Map{values: values}
}

// Get returns the stringified value, or the empty string for unknown names.
func (m *Map) Get(name string) string {
	v, ok := m.values[name]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Set stores a value, used by chomp fields to write back remainders.
func (m *Map) Set(name, value string) {
	m.values[name] = value
}

// Values exposes the backing map.
func (m *Map) Values() map[string]any {
	return m.values
}

// Stringify renders a raw value the way formatters expect to see it: floats
// keep their shortest round-trip representation, nil becomes empty.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
