// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

import "golang.org/x/exp/constraints"

// Number is satisfied by every builtin numeric type.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum accumulates a running total. Its identity is zero.
type Sum[T Number] struct {
	value T
}

// SumOf returns a Sum seeded with v.
func SumOf[T Number](v T) Sum[T] {
	return Sum[T]{value: v}
}

// Empty implements the [Monoid] interface.
func (Sum[T]) Empty() Sum[T] {
	return Sum[T]{}
}

// Combine implements the [Semigroup] interface.
func (s Sum[T]) Combine(other Sum[T]) Sum[T] {
	return Sum[T]{value: s.value + other.value}
}

// Value returns the accumulated total.
func (s Sum[T]) Value() T {
	return s.value
}

// Product accumulates a running product. Its identity is one, which
// every type satisfying [Number] can represent.
//
// Unlike Sum, the zero value of Product is not its identity. Use
// [Empty] or [ProductOf] instead of a Product literal.
type Product[T Number] struct {
	value T
}

// ProductOf returns a Product seeded with v.
func ProductOf[T Number](v T) Product[T] {
	return Product[T]{value: v}
}

// Empty implements the [Monoid] interface.
func (Product[T]) Empty() Product[T] {
	return Product[T]{value: 1}
}

// Combine implements the [Semigroup] interface.
func (p Product[T]) Combine(other Product[T]) Product[T] {
	return Product[T]{value: p.value * other.value}
}

// Value returns the accumulated product.
func (p Product[T]) Value() T {
	return p.value
}
