package resolver

import (
	"fmt"
	"reflect"
)

// Struct resolves variables from the exported fields of a struct. A field
// tagged `report:"name"` binds under that name instead of its Go name.
// Chomp write-backs land in an override layer, leaving the struct untouched.
type Struct struct {
	v         reflect.Value
	byName    map[string]int
	overrides map[string]string
}

// NewStruct wraps a struct or pointer to struct.
func NewStruct(v any) (*Struct, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("resolver: nil struct pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("resolver: %T is not a struct", v)
	}
	s := &Struct{
		v:         rv,
		byName:    make(map[string]int),
		overrides: make(map[string]string),
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("report"); ok && tag != "" {
			name = tag
		}
		s.byName[name] = i
	}
	return s, nil
}

// Get returns the stringified field value, preferring any override written
// by a chomp field.
func (s *Struct) Get(name string) string {
	if v, ok := s.overrides[name]; ok {
		return v
	}
	i, ok := s.byName[name]
	if !ok {
		return ""
	}
	return Stringify(s.v.Field(i).Interface())
}

// Set records an override for the name; the underlying struct is never
// mutated.
func (s *Struct) Set(name, value string) {
	s.overrides[name] = value
}
