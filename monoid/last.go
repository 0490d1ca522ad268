// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

// Last is an optional value where the rightmost present value wins
// when combined. The zero value is absent.
type Last[T any] struct {
	value T
	set   bool
}

// LastOf returns a present Last holding v.
func LastOf[T any](v T) Last[T] {
	return Last[T]{value: v, set: true}
}

// LastFromPtr returns an absent Last if p is nil, otherwise a present
// Last holding the dereferenced value of p.
func LastFromPtr[T any](p *T) Last[T] {
	if p == nil {
		return Last[T]{}
	}
	return LastOf(*p)
}

// Empty implements the [Monoid] interface.
func (Last[T]) Empty() Last[T] {
	return Last[T]{}
}

// Combine implements the [Semigroup] interface.
func (l Last[T]) Combine(other Last[T]) Last[T] {
	if other.set {
		return other
	}
	return l
}

// Get returns the held value and whether it is present.
func (l Last[T]) Get() (T, bool) {
	return l.value, l.set
}

// Ptr returns nil when absent, otherwise a reference to a copy of the held value.
func (l Last[T]) Ptr() *T {
	if !l.set {
		return nil
	}
	v := l.value
	return &v
}

// Or returns the held value, or def when absent.
func (l Last[T]) Or(def T) T {
	if !l.set {
		return def
	}
	return l.value
}
