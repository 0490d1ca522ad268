// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package phase provides a field container which is either being assembled
// from accumulators or has been resolved into its final value.
//
// A [Select] is tagged at the type level with its phase, [Assembling] or [Resolved].
// The only ways to move between phases are [Finalize] and [Reopen]:
//
//	s := phase.Seed(uint32(1), monoid.SumOf[uint32])
//	s = s.Combine(phase.Seed(uint32(2), monoid.SumOf[uint32]))
//
//	r := phase.Finalize(s, monoid.Sum[uint32].Value)
//	fmt.Println(r.Value()) // 3
//
// Go allows converting between instantiations of Select since they share an
// underlying type, so every Select also carries a runtime tag of which payload
// it holds. Reading or combining a payload in the wrong phase panics with a
// [*PhaseMismatchError]. This is always a programming error and is never returned.
package phase
