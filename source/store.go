// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"

	"github.com/z5labs/partial/source/key"
)

// EmptyKeyChainError occurs when a value is set with an empty key.Chain.
type EmptyKeyChainError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e EmptyKeyChainError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key chain: %v", e.Value)
}

// inMemoryStore flattens every key into its dotted form, which is
// how schema fields are named.
type inMemoryStore map[string]any

func (m inMemoryStore) Set(k key.Keyer, v any) error {
	if chain, ok := k.(key.Chain); ok && len(chain) == 0 {
		return EmptyKeyChainError{Value: v}
	}
	m[k.Key()] = v
	return nil
}
