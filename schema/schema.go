// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"slices"
	"strings"
)

// Schema is a named, ordered list of fields.
type Schema struct {
	name   string
	fields []Declaration
	index  map[string]int
}

// New validates the given fields and returns a Schema for them.
//
// Field names may contain dots to describe nested configuration,
// e.g. "server.port", as long as no field name is also used as a
// parent of another field.
func New(name string, fields ...Declaration) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name() == "" {
			return nil, EmptyFieldNameError{Index: i}
		}
		if _, exists := s.index[f.Name()]; exists {
			return nil, DuplicateFieldError{Name: f.Name()}
		}
		s.index[f.Name()] = i
	}
	for _, f := range fields {
		chain := strings.Split(f.Name(), ".")
		for j := 1; j < len(chain); j++ {
			parent := strings.Join(chain[:j], ".")
			if _, ok := s.index[parent]; ok {
				return nil, ConflictingFieldError{Name: parent, Nested: f.Name()}
			}
		}
	}
	for _, f := range fields {
		if other := f.Schema(); other != nil {
			return nil, FieldRegisteredError{Field: f.Name(), Schema: other.name}
		}
	}
	for _, f := range fields {
		f.register(s)
	}
	return s, nil
}

// MustNew is like [New] but panics if the fields are invalid. It is
// intended for package level schema declarations.
func MustNew(name string, fields ...Declaration) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of the Schema.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the names of all fields in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name()
	}
	return names
}

// Has reports whether s contains a field with the given name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) indexOf(d Declaration) (int, bool) {
	i, ok := s.index[d.Name()]
	if !ok || s.fields[i] != d {
		return 0, false
	}
	return i, true
}

// Empty returns a Fragment where every field holds the identity of its accumulator.
func (s *Schema) Empty() Fragment {
	cells := make([]any, len(s.fields))
	for i, f := range s.fields {
		cells[i] = f.emptyCell()
	}
	return Fragment{schema: s, cells: cells}
}

// Decode builds a Fragment from raw values keyed by field name. Fields
// without a raw value hold their identity and keys which are not fields of s
// are ignored. Every field which fails to decode is reported as a [DecodeError].
func (s *Schema) Decode(raw map[string]any) (Fragment, error) {
	fr := s.Empty()

	var errs []error
	for k, v := range raw {
		i, ok := s.index[k]
		if !ok {
			continue
		}
		cell, err := s.fields[i].decodeCell(v)
		if err != nil {
			errs = append(errs, DecodeError{Field: k, Cause: err})
			continue
		}
		fr.cells[i] = cell
	}
	if len(errs) > 0 {
		return Fragment{}, errors.Join(errs...)
	}
	return fr, nil
}

// Resolve combines the given fragments, in order, on top of the identity
// of s and finalizes the result.
func (s *Schema) Resolve(frs ...Fragment) Resolved {
	acc := s.Empty()
	for _, fr := range frs {
		acc = acc.Combine(fr)
	}
	return acc.Finalize()
}
