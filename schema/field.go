// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"cmp"

	"github.com/z5labs/partial/monoid"
	"github.com/z5labs/partial/phase"
)

// Declaration is implemented by every [Field] and lets fields with
// different accumulator and resolved types be listed in one [Schema].
type Declaration interface {
	Name() string
	Schema() *Schema

	register(*Schema)
	emptyCell() any
	combineCells(a, b any) any
	finalizeCell(any) any
	reopenCell(any) any
	decodeCell(raw any) (any, error)
	valueOf(any) any
}

// Field declares a configuration field which accumulates into M while
// being assembled and resolves into A.
//
// A Field belongs to at most one [Schema].
type Field[M monoid.Monoid[M], A any] struct {
	name     string
	finalize func(M) A
	reopen   func(A) M
	decoder  func(any) (M, error)
	schema   *Schema
}

// Define declares a field with explicit mappings between its accumulator and resolved value.
// reopen is also used to seed an accumulator from a single value, see [Field.Seed].
func Define[M monoid.Monoid[M], A any](name string, finalize func(M) A, reopen func(A) M) *Field[M, A] {
	return &Field[M, A]{
		name:     name,
		finalize: finalize,
		reopen:   reopen,
	}
}

// Last declares a field where the most recent present value wins.
// It resolves to nil if no source provided a value.
func Last[T any](name string) *Field[monoid.Last[T], *T] {
	return Define(name, monoid.Last[T].Ptr, monoid.LastFromPtr[T])
}

// LastOr declares a field where the most recent present value wins.
// It resolves to def if no source provided a value.
func LastOr[T any](name string, def T) *Field[monoid.Last[T], T] {
	return Define(
		name,
		func(l monoid.Last[T]) T {
			return l.Or(def)
		},
		monoid.LastOf[T],
	)
}

// Sum declares a field which adds up the values of every source.
func Sum[T monoid.Number](name string) *Field[monoid.Sum[T], T] {
	return Define(name, monoid.Sum[T].Value, monoid.SumOf[T])
}

// Product declares a field which multiplies the values of every source.
func Product[T monoid.Number](name string) *Field[monoid.Product[T], T] {
	return Define(name, monoid.Product[T].Value, monoid.ProductOf[T])
}

// Any declares a boolean flag which is true if any source set it to true.
func Any(name string) *Field[monoid.Any, bool] {
	return Define(
		name,
		func(a monoid.Any) bool {
			return bool(a)
		},
		func(b bool) monoid.Any {
			return monoid.Any(b)
		},
	)
}

// Set declares a field collecting the union of values from every source.
// It resolves to the members in ascending order.
func Set[T cmp.Ordered](name string) *Field[monoid.Set[T], []T] {
	return Define(
		name,
		monoid.SortedMembers[T],
		func(ts []T) monoid.Set[T] {
			return monoid.SetOf(ts...)
		},
	)
}

// Default declares a field for a Semigroup whose zero value is its identity.
func Default[S monoid.Semigroup[S]](name string) *Field[monoid.Default[S], S] {
	return Define(name, monoid.Default[S].Value, monoid.DefaultOf[S])
}

// DecodeWith overrides how raw source values are turned into accumulators.
// By default raw values are decoded into A and then seeded like [Field.Seed].
func (f *Field[M, A]) DecodeWith(dec func(raw any) (M, error)) *Field[M, A] {
	f.decoder = dec
	return f
}

// Name returns the name of the field.
func (f *Field[M, A]) Name() string {
	return f.name
}

// Schema returns the Schema f is registered with, or nil.
func (f *Field[M, A]) Schema() *Schema {
	return f.schema
}

// Select returns the phase-tagged container of f within fr.
func (f *Field[M, A]) Select(fr Fragment) phase.Select[phase.Assembling, M, A] {
	if fr.schema == nil {
		return phase.Empty[M, A]()
	}
	return fr.cells[f.indexIn(fr.schema)].(phase.Select[phase.Assembling, M, A])
}

// Accumulator returns the accumulator of f within fr.
func (f *Field[M, A]) Accumulator(fr Fragment) M {
	return f.Select(fr).Accumulator()
}

// Set returns a copy of fr where the accumulator of f is replaced with m.
func (f *Field[M, A]) Set(fr Fragment, m M) Fragment {
	if fr.schema == nil {
		if f.schema == nil {
			panic(&UnknownFieldError{Field: f.name})
		}
		fr = f.schema.Empty()
	}

	i := f.indexIn(fr.schema)
	cells := make([]any, len(fr.cells))
	copy(cells, fr.cells)
	cells[i] = phase.Accumulate[M, A](m)
	return Fragment{schema: fr.schema, cells: cells}
}

// Seed returns a copy of fr where the accumulator of f is built from the single value a.
func (f *Field[M, A]) Seed(fr Fragment, a A) Fragment {
	return f.Set(fr, f.reopen(a))
}

// Value returns the resolved value of f within r.
func (f *Field[M, A]) Value(r Resolved) A {
	if r.schema == nil {
		return f.finalize(monoid.Empty[M]())
	}
	return r.cells[f.indexIn(r.schema)].(phase.Select[phase.Resolved, M, A]).Value()
}

func (f *Field[M, A]) indexIn(s *Schema) int {
	i, ok := s.indexOf(f)
	if !ok {
		panic(&UnknownFieldError{Field: f.name, Schema: s.name})
	}
	return i
}

func (f *Field[M, A]) register(s *Schema) {
	f.schema = s
}

func (f *Field[M, A]) emptyCell() any {
	return phase.Empty[M, A]()
}

func (f *Field[M, A]) combineCells(a, b any) any {
	return a.(phase.Select[phase.Assembling, M, A]).Combine(b.(phase.Select[phase.Assembling, M, A]))
}

func (f *Field[M, A]) finalizeCell(cell any) any {
	return phase.Finalize(cell.(phase.Select[phase.Assembling, M, A]), f.finalize)
}

func (f *Field[M, A]) reopenCell(cell any) any {
	return phase.Reopen(cell.(phase.Select[phase.Resolved, M, A]), f.reopen)
}

func (f *Field[M, A]) valueOf(cell any) any {
	return cell.(phase.Select[phase.Resolved, M, A]).Value()
}

func (f *Field[M, A]) decodeCell(raw any) (any, error) {
	if f.decoder != nil {
		m, err := f.decoder(raw)
		if err != nil {
			return nil, err
		}
		return phase.Accumulate[M, A](m), nil
	}

	if raw == nil {
		return phase.Empty[M, A](), nil
	}

	a, err := decodeValue[A](raw)
	if err != nil {
		return nil, err
	}
	return phase.Seed(a, f.reopen), nil
}
