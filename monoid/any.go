// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package monoid

// Any is a logical OR accumulator. It is monotonic: once any operand
// in a chain is true the result is true, regardless of what comes after.
// Flags which should instead be overridden by later sources belong in a [Last] of bool.
type Any bool

// Empty implements the [Monoid] interface.
func (Any) Empty() Any {
	return false
}

// Combine implements the [Semigroup] interface.
func (a Any) Combine(other Any) Any {
	return a || other
}
