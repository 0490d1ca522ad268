// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package monoid provides the algebraic building blocks used to merge partial configuration.
//
// A [Semigroup] is any type with an associative Combine operation. A [Monoid] is a
// Semigroup which also has an identity element, returned by Empty. Go has no static
// methods so Empty is always invoked on the zero value of the type, see [Empty].
//
// # Accumulator policies
//
// The package ships with a handful of accumulators, each defining its own merge policy:
//
//   - [Last]: the rightmost present value wins.
//   - [Sum]: a running numeric total.
//   - [Product]: a running numeric product.
//   - [Any]: logical OR. Once true it stays true for the rest of the chain.
//   - [Set]: the union of every value seen.
//   - [Default]: opt-in wrapper using the zero value of a Semigroup as its identity.
//   - [Optional]: lifts any Semigroup into a Monoid whose identity is "absent".
//
// None of the policies are assumed to be commutative. Chaining Combine left to right in
// precedence order (later operand has higher priority) is what gives [Last] its override
// semantics:
//
//	port := monoid.Concat(
//	    monoid.LastOf(8080), // defaults
//	    monoid.Last[int]{},  // nothing from the environment
//	    monoid.LastOf(9090), // command line
//	)
//	// port.Or(0) == 9090
package monoid
