// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

// Default turns a Semigroup into a Monoid by declaring its zero value
// to be the identity. This is opt-in since many types have an ambiguous
// "empty", so only wrap S when combining with its zero value is truly a no-op.
type Default[S Semigroup[S]] struct {
	value S
}

// DefaultOf wraps s.
func DefaultOf[S Semigroup[S]](s S) Default[S] {
	return Default[S]{value: s}
}

// Empty implements the [Monoid] interface.
func (Default[S]) Empty() Default[S] {
	return Default[S]{}
}

// Combine implements the [Semigroup] interface.
func (d Default[S]) Combine(other Default[S]) Default[S] {
	return Default[S]{value: d.value.Combine(other.value)}
}

// Value returns the wrapped Semigroup.
func (d Default[S]) Value() S {
	return d.value
}

// Optional lifts any Semigroup into a Monoid whose identity is the
// absence of a value. Two present values are combined with S's Combine.
type Optional[S Semigroup[S]] struct {
	value S
	set   bool
}

// Some returns a present Optional holding s.
func Some[S Semigroup[S]](s S) Optional[S] {
	return Optional[S]{value: s, set: true}
}

// Empty implements the [Monoid] interface.
func (Optional[S]) Empty() Optional[S] {
	return Optional[S]{}
}

// Combine implements the [Semigroup] interface.
func (o Optional[S]) Combine(other Optional[S]) Optional[S] {
	switch {
	case !o.set:
		return other
	case !other.set:
		return o
	}
	return Some(o.value.Combine(other.value))
}

// Get returns the held value and whether it is present.
func (o Optional[S]) Get() (S, bool) {
	return o.value, o.set
}
