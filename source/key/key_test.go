// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		name     string
		keyer    Keyer
		expected string
	}{
		{
			name:     "single name",
			keyer:    Name("verbose"),
			expected: "verbose",
		},
		{
			name:     "nested names",
			keyer:    Chain{Name("server"), Name("port")},
			expected: "server.port",
		},
		{
			name:     "chain of chains",
			keyer:    Chain{Name("a"), Chain{Name("b"), Name("c")}},
			expected: "a.b.c",
		},
		{
			name:     "empty chain",
			keyer:    Chain{},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.keyer.Key())
		})
	}
}

func TestSplit(t *testing.T) {
	require.Equal(t, Chain{Name("server"), Name("port")}, Split("server.port"))
	require.Equal(t, "server.port", Split("server.port").Key())
	require.Equal(t, Chain{Name("debug")}, Split("debug"))
}
