// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package phase

import (
	"testing"

	"github.com/z5labs/partial/monoid"

	"github.com/stretchr/testify/require"
)

// config is a statically typed aggregate. Every field shares the phase P.
type config[P Phase] struct {
	OutputFile Select[P, monoid.Last[string], *string]
	Verbose    Select[P, monoid.Sum[uint32], uint32]
	Debug      Select[P, monoid.Any, bool]
}

func (c config[P]) Empty() config[P] {
	return config[P]{
		OutputFile: c.OutputFile.Empty(),
		Verbose:    c.Verbose.Empty(),
		Debug:      c.Debug.Empty(),
	}
}

func (c config[P]) Combine(other config[P]) config[P] {
	return config[P]{
		OutputFile: c.OutputFile.Combine(other.OutputFile),
		Verbose:    c.Verbose.Combine(other.Verbose),
		Debug:      c.Debug.Combine(other.Debug),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func anyOf(b bool) monoid.Any { return monoid.Any(b) }

func anyValue(a monoid.Any) bool { return bool(a) }

func finalizeConfig(c config[Assembling]) config[Resolved] {
	return config[Resolved]{
		OutputFile: Finalize(c.OutputFile, monoid.Last[string].Ptr),
		Verbose:    Finalize(c.Verbose, monoid.Sum[uint32].Value),
		Debug:      Finalize(c.Debug, anyValue),
	}
}

func reopenConfig(c config[Resolved]) config[Assembling] {
	return config[Assembling]{
		OutputFile: Reopen(c.OutputFile, monoid.LastFromPtr[string]),
		Verbose:    Reopen(c.Verbose, monoid.SumOf[uint32]),
		Debug:      Reopen(c.Debug, anyOf),
	}
}

func TestTypedAggregate(t *testing.T) {
	t.Run("will start from accumulator identities", func(t *testing.T) {
		var c config[Assembling]

		require.Equal(t, monoid.Last[string]{}, c.OutputFile.Accumulator())
		require.Equal(t, monoid.Sum[uint32]{}, c.Verbose.Accumulator())
		require.Equal(t, monoid.Any(false), c.Debug.Accumulator())
	})

	t.Run("will combine three sources in precedence order", func(t *testing.T) {
		base := monoid.Empty[config[Assembling]]()
		env := config[Assembling]{
			Verbose: Seed(uint32(1), monoid.SumOf[uint32]),
			Debug:   Seed(true, anyOf),
		}
		args := config[Assembling]{
			OutputFile: Seed(ptr("/usr/bin/test"), monoid.LastFromPtr[string]),
			Verbose:    Seed(uint32(2), monoid.SumOf[uint32]),
			Debug:      Seed(false, anyOf),
		}

		c := monoid.CombineAll(base, env, args)
		require.Equal(t, monoid.LastOf("/usr/bin/test"), c.OutputFile.Accumulator())
		require.Equal(t, monoid.SumOf[uint32](3), c.Verbose.Accumulator())
		require.Equal(t, monoid.Any(true), c.Debug.Accumulator())

		r := finalizeConfig(c)
		require.Equal(t, "/usr/bin/test", *r.OutputFile.Value())
		require.Equal(t, uint32(3), r.Verbose.Value())
		require.True(t, r.Debug.Value())
	})

	t.Run("will resolve an empty config to default values", func(t *testing.T) {
		r := finalizeConfig(config[Assembling]{})

		require.Nil(t, r.OutputFile.Value())
		require.Equal(t, uint32(0), r.Verbose.Value())
		require.False(t, r.Debug.Value())
	})

	t.Run("will return to the identity after a finalize and reopen cycle", func(t *testing.T) {
		c := reopenConfig(finalizeConfig(config[Assembling]{}))

		require.Equal(t, monoid.Last[string]{}, c.OutputFile.Accumulator())
		require.Equal(t, monoid.Sum[uint32]{}, c.Verbose.Accumulator())
		require.Equal(t, monoid.Any(false), c.Debug.Accumulator())
	})

	t.Run("will let resolved defaults be overridden after reopening", func(t *testing.T) {
		defaults := finalizeConfig(config[Assembling]{
			OutputFile: Seed(ptr("/tmp/out"), monoid.LastFromPtr[string]),
			Verbose:    Seed(uint32(1), monoid.SumOf[uint32]),
		})
		override := config[Assembling]{
			OutputFile: Seed(ptr("/var/out"), monoid.LastFromPtr[string]),
		}

		r := finalizeConfig(reopenConfig(defaults).Combine(override))
		require.Equal(t, "/var/out", *r.OutputFile.Value())
		require.Equal(t, uint32(1), r.Verbose.Value())
	})
}
