// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import "strings"

// Fragment is a configuration aggregate in the assembling phase. Every
// field holds an accumulator.
//
// The zero Fragment belongs to no Schema and is the identity for every
// Schema, which makes Fragment a [monoid.Monoid].
type Fragment struct {
	schema *Schema
	cells  []any
}

// Schema returns the Schema of fr, or nil for the zero Fragment.
func (fr Fragment) Schema() *Schema {
	return fr.schema
}

// Empty implements the [monoid.Monoid] interface.
func (Fragment) Empty() Fragment {
	return Fragment{}
}

// Combine implements the [monoid.Semigroup] interface by combining fr and other
// field by field. The result has higher precedence for other wherever a field's
// accumulator is order sensitive.
//
// Combining Fragments of two different schemas panics with a [*SchemaMismatchError].
func (fr Fragment) Combine(other Fragment) Fragment {
	switch {
	case fr.schema == nil:
		return other
	case other.schema == nil:
		return fr
	case fr.schema != other.schema:
		panic(&SchemaMismatchError{Left: fr.schema.name, Right: other.schema.name})
	}

	cells := make([]any, len(fr.cells))
	for i, f := range fr.schema.fields {
		cells[i] = f.combineCells(fr.cells[i], other.cells[i])
	}
	return Fragment{schema: fr.schema, cells: cells}
}

// Finalize resolves every field independently. The zero Fragment
// finalizes into the zero Resolved.
func (fr Fragment) Finalize() Resolved {
	if fr.schema == nil {
		return Resolved{}
	}

	cells := make([]any, len(fr.cells))
	for i, f := range fr.schema.fields {
		cells[i] = f.finalizeCell(fr.cells[i])
	}
	return Resolved{schema: fr.schema, cells: cells}
}

// Resolved is a configuration aggregate in the resolved phase. Every field
// holds its final value.
type Resolved struct {
	schema *Schema
	cells  []any
}

// Schema returns the Schema of r, or nil for the zero Resolved.
func (r Resolved) Schema() *Schema {
	return r.schema
}

// Reopen turns r back into a Fragment, e.g. to use it as a low precedence
// baseline which newer fragments are combined on top of.
func (r Resolved) Reopen() Fragment {
	if r.schema == nil {
		return Fragment{}
	}

	cells := make([]any, len(r.cells))
	for i, f := range r.schema.fields {
		cells[i] = f.reopenCell(r.cells[i])
	}
	return Fragment{schema: r.schema, cells: cells}
}

// Map returns the resolved values keyed by field name. Dotted field
// names are expanded into nested maps.
func (r Resolved) Map() map[string]any {
	m := make(map[string]any)
	if r.schema == nil {
		return m
	}

	for i, f := range r.schema.fields {
		setPath(m, strings.Split(f.Name(), "."), f.valueOf(r.cells[i]))
	}
	return m
}

func setPath(m map[string]any, chain []string, v any) {
	for _, k := range chain[:len(chain)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			m[k] = sub
		}
		m = sub
	}
	m[chain[len(chain)-1]] = v
}

// Unmarshal decodes the resolved values into v, which is usually a pointer to a
// struct whose fields are tagged with `config:"name"`.
func (r Resolved) Unmarshal(v any) error {
	return decode(r.Map(), v)
}
