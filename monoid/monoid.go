// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

// Semigroup represents a type with an associative binary operation.
//
// Implementations must guarantee that
// a.Combine(b).Combine(c) == a.Combine(b.Combine(c)) for all a, b and c.
type Semigroup[T any] interface {
	Combine(T) T
}

// Monoid is a Semigroup with an identity element. Empty must not
// depend on the receiver since it is called on the zero value.
type Monoid[T any] interface {
	Semigroup[T]

	Empty() T
}

// Empty returns the identity element of M.
func Empty[M Monoid[M]]() M {
	var m M
	return m.Empty()
}

// Combine is a functional form of a.Combine(b).
func Combine[S Semigroup[S]](a, b S) S {
	return a.Combine(b)
}

// CombineAll combines first with every value in rest, from left to right.
func CombineAll[S Semigroup[S]](first S, rest ...S) S {
	acc := first
	for _, s := range rest {
		acc = acc.Combine(s)
	}
	return acc
}

// Concat folds all the given values into one, starting from the identity of M.
// An empty call returns the identity.
func Concat[M Monoid[M]](ms ...M) M {
	return CombineAll(Empty[M](), ms...)
}

// FoldMap maps every element of xs into M and combines the results from left to right.
func FoldMap[M Monoid[M], T any](xs []T, f func(T) M) M {
	acc := Empty[M]()
	for _, x := range xs {
		acc = acc.Combine(f(x))
	}
	return acc
}
