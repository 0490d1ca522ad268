// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

import (
	"cmp"
	"maps"
	"slices"
)

// Set accumulates the union of all values it is combined with.
// A nil Set is empty.
type Set[T comparable] map[T]struct{}

// SetOf returns a Set containing vs.
func SetOf[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Empty implements the [Monoid] interface.
func (Set[T]) Empty() Set[T] {
	return Set[T]{}
}

// Combine implements the [Semigroup] interface. Neither operand is
// modified, the union is always a newly allocated Set.
func (s Set[T]) Combine(other Set[T]) Set[T] {
	u := make(Set[T], len(s)+len(other))
	for v := range s {
		u[v] = struct{}{}
	}
	for v := range other {
		u[v] = struct{}{}
	}
	return u
}

// Contains reports whether v is a member of s.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Members returns the members of s in no particular order.
func (s Set[T]) Members() []T {
	return slices.Collect(maps.Keys(s))
}

// SortedMembers returns the members of s in ascending order.
func SortedMembers[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
