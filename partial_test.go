// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package partial

import (
	"context"
	"errors"
	"testing"

	"github.com/z5labs/partial/schema"
	"github.com/z5labs/partial/source"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("will return a SourceReadError", func(t *testing.T) {
		t.Run("if a source fails to apply", func(t *testing.T) {
			s := schema.MustNew("app", schema.Last[string]("name"))

			applyErr := errors.New("failed to apply")
			_, err := Resolve(context.Background(), s, source.SourceFunc(func(_ context.Context, _ source.Store) error {
				return applyErr
			}))

			var ierr SourceReadError
			require.ErrorAs(t, err, &ierr)
			require.ErrorIs(t, err, applyErr)
			require.NotEmpty(t, ierr.Error())
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the schema is nil", func(t *testing.T) {
			_, err := Resolve(context.Background(), nil, source.Map{"name": "app"})

			var ierr SourceReadError
			require.ErrorAs(t, err, &ierr)
			require.ErrorIs(t, err, source.ErrNilSchema)
		})
	})

	t.Run("will resolve every field", func(t *testing.T) {
		t.Run("if sources are given from lowest to highest precedence", func(t *testing.T) {
			name := schema.Last[string]("name")
			verbose := schema.Sum[uint32]("verbose")
			debug := schema.Any("debug")
			s := schema.MustNew("app", name, verbose, debug)

			r, err := Resolve(
				context.Background(),
				s,
				source.Map{"name": "file", "verbose": 1, "debug": true},
				source.Map{"verbose": 2, "debug": false},
				source.Map{"name": "flags"},
			)
			require.NoError(t, err)
			require.Equal(t, "flags", *name.Value(r))
			require.Equal(t, uint32(3), verbose.Value(r))
			require.True(t, debug.Value(r))
		})
	})
}

func TestRebase(t *testing.T) {
	t.Run("will keep the base values", func(t *testing.T) {
		t.Run("if no newer source overrides them", func(t *testing.T) {
			name := schema.Last[string]("name")
			verbose := schema.Sum[uint32]("verbose")
			s := schema.MustNew("app", name, verbose)

			base, err := Resolve(context.Background(), s, source.Map{"name": "base", "verbose": 1})
			require.NoError(t, err)

			r, err := Rebase(context.Background(), base, source.Map{"verbose": 2})
			require.NoError(t, err)
			require.Equal(t, "base", *name.Value(r))
			require.Equal(t, uint32(3), verbose.Value(r))
		})
	})

	t.Run("will override the base values", func(t *testing.T) {
		t.Run("if a newer source sets them", func(t *testing.T) {
			name := schema.Last[string]("name")
			s := schema.MustNew("app", name)

			base, err := Resolve(context.Background(), s, source.Map{"name": "base"})
			require.NoError(t, err)

			r, err := Rebase(context.Background(), base, source.Map{"name": "override"})
			require.NoError(t, err)
			require.Equal(t, "override", *name.Value(r))
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the base is not bound to a schema", func(t *testing.T) {
			_, err := Rebase(context.Background(), schema.Resolved{})
			require.ErrorIs(t, err, ErrUnboundResolved)
		})
	})
}

func TestLoad(t *testing.T) {
	type Config struct {
		Name    *string `config:"name"`
		Verbose uint32  `config:"verbose"`
		Server  struct {
			Port int `config:"port"`
		} `config:"server"`
	}

	t.Run("will unmarshal the resolved config", func(t *testing.T) {
		t.Run("if the fields are nested", func(t *testing.T) {
			s := schema.MustNew(
				"app",
				schema.Last[string]("name"),
				schema.Sum[uint32]("verbose"),
				schema.LastOr("server.port", 8080),
			)

			cfg, err := Load[Config](
				context.Background(),
				s,
				source.Map{"name": "app", "verbose": 1},
				source.Map{"verbose": 1},
			)
			require.NoError(t, err)
			require.Equal(t, "app", *cfg.Name)
			require.Equal(t, uint32(2), cfg.Verbose)
			require.Equal(t, 8080, cfg.Server.Port)
		})
	})

	t.Run("will return an UnmarshalError", func(t *testing.T) {
		t.Run("if the resolved config does not fit the type", func(t *testing.T) {
			type BadConfig struct {
				Name []int `config:"name"`
			}

			s := schema.MustNew("app", schema.LastOr("name", "not a number"))

			_, err := Load[BadConfig](context.Background(), s)

			var ierr UnmarshalError
			require.ErrorAs(t, err, &ierr)
			require.NotEmpty(t, ierr.Error())
		})
	})
}
