// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorMode_UnmarshalText(t *testing.T) {
	for _, mode := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		t.Run(string(mode), func(t *testing.T) {
			var c ColorMode
			require.NoError(t, c.UnmarshalText([]byte(mode)))
			require.Equal(t, mode, c)
		})
	}

	t.Run("will return an error if the mode is unknown", func(t *testing.T) {
		var c ColorMode
		err := c.UnmarshalText([]byte("sometimes"))

		var ierr InvalidColorModeError
		require.ErrorAs(t, err, &ierr)
		require.Equal(t, "sometimes", ierr.Value)
	})
}
