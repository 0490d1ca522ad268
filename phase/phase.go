// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package phase

import (
	"fmt"

	"github.com/z5labs/partial/monoid"
)

// Assembling marks a container holding an accumulator.
type Assembling struct{}

// Resolved marks a container holding a final value.
type Resolved struct{}

// Phase is satisfied by the two phase markers.
type Phase interface {
	Assembling | Resolved
}

// Kind is the runtime name of a phase.
type Kind int

const (
	KindAssembling Kind = iota
	KindResolved

	// KindNone is reported by a zero Select in the Resolved phase,
	// which holds neither payload.
	KindNone
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case KindAssembling:
		return "assembling"
	case KindResolved:
		return "resolved"
	case KindNone:
		return "none"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the Kind named by the phase marker P.
func KindOf[P Phase]() Kind {
	var p P
	if _, ok := any(p).(Resolved); ok {
		return KindResolved
	}
	return KindAssembling
}

// PhaseMismatchError is the panic value raised when a [Select] is used
// in a phase incompatible with the requested operation.
type PhaseMismatchError struct {
	Op   string
	Want Kind
	Got  Kind
}

// Error implements the [builtin.error] interface.
func (e *PhaseMismatchError) Error() string {
	return fmt.Sprintf("phase mismatch: %s requires %s phase but found %s", e.Op, e.Want, e.Got)
}

func mismatch(op string, want, got Kind) *PhaseMismatchError {
	return &PhaseMismatchError{Op: op, Want: want, Got: got}
}

type payload interface {
	kind() Kind
}

type accumulating[M any] struct {
	m M
}

func (accumulating[M]) kind() Kind { return KindAssembling }

type final[A any] struct {
	a A
}

func (final[A]) kind() Kind { return KindResolved }

// Select holds either an accumulator of type M or a resolved value of type A,
// never both. Which one is decided by the phase P.
//
// The zero value of Select[Assembling, M, A] holds the identity of M.
type Select[P Phase, M monoid.Monoid[M], A any] struct {
	p payload
}

// Empty returns an assembling Select holding the identity of M.
func Empty[M monoid.Monoid[M], A any]() Select[Assembling, M, A] {
	return Accumulate[M, A](monoid.Empty[M]())
}

// Accumulate returns an assembling Select holding m.
func Accumulate[M monoid.Monoid[M], A any](m M) Select[Assembling, M, A] {
	return Select[Assembling, M, A]{p: accumulating[M]{m: m}}
}

// Seed returns an assembling Select whose accumulator is built from a
// single value using lift, e.g. [monoid.LastOf] or [monoid.SumOf].
func Seed[M monoid.Monoid[M], A any](a A, lift func(A) M) Select[Assembling, M, A] {
	return Accumulate[M, A](lift(a))
}

// Resolve returns a resolved Select holding a.
func Resolve[M monoid.Monoid[M], A any](a A) Select[Resolved, M, A] {
	return Select[Resolved, M, A]{p: final[A]{a: a}}
}

// Finalize consumes an assembling Select and maps its accumulator into
// the resolved value using f.
func Finalize[M monoid.Monoid[M], A any](s Select[Assembling, M, A], f func(M) A) Select[Resolved, M, A] {
	return Resolve[M](f(s.accumulator("Finalize")))
}

// Reopen consumes a resolved Select and maps its value back into an accumulator
// using f, typically by wrapping it as a single value.
func Reopen[M monoid.Monoid[M], A any](s Select[Resolved, M, A], f func(A) M) Select[Assembling, M, A] {
	return Accumulate[M, A](f(s.value("Reopen")))
}

// Kind returns the phase of the payload currently held.
func (s Select[P, M, A]) Kind() Kind {
	if s.p != nil {
		return s.p.kind()
	}
	if KindOf[P]() == KindResolved {
		return KindNone
	}
	return KindAssembling
}

// Accumulator returns the accumulator. It panics with a [*PhaseMismatchError]
// if s holds a resolved value.
func (s Select[P, M, A]) Accumulator() M {
	return s.accumulator("Accumulator")
}

// Value returns the resolved value. It panics with a [*PhaseMismatchError]
// if s holds an accumulator.
func (s Select[P, M, A]) Value() A {
	return s.value("Value")
}

// Empty implements the [monoid.Monoid] interface. It panics with a
// [*PhaseMismatchError] for any phase other than [Assembling].
func (Select[P, M, A]) Empty() Select[P, M, A] {
	if k := KindOf[P](); k != KindAssembling {
		panic(mismatch("Empty", KindAssembling, k))
	}
	return Select[P, M, A]{p: accumulating[M]{m: monoid.Empty[M]()}}
}

// Combine implements the [monoid.Semigroup] interface. Both s and other
// must hold accumulators, otherwise it panics with a [*PhaseMismatchError].
func (s Select[P, M, A]) Combine(other Select[P, M, A]) Select[P, M, A] {
	left := s.accumulator("Combine")
	right := other.accumulator("Combine")
	return Select[P, M, A]{p: accumulating[M]{m: left.Combine(right)}}
}

func (s Select[P, M, A]) accumulator(op string) M {
	if s.p == nil && s.Kind() == KindAssembling {
		return monoid.Empty[M]()
	}
	x, ok := s.p.(accumulating[M])
	if !ok {
		panic(mismatch(op, KindAssembling, s.Kind()))
	}
	return x.m
}

func (s Select[P, M, A]) value(op string) A {
	x, ok := s.p.(final[A])
	if !ok {
		panic(mismatch(op, KindResolved, s.Kind()))
	}
	return x.a
}
