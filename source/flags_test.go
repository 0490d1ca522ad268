// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestFlags_Apply(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("name", "", "")
		fs.Int("server.port", 80, "")
		fs.CountP("verbose", "v", "")
		fs.StringSlice("tags", nil, "")
		fs.Bool("debug", false, "")
		fs.String("log-level", "info", "")
		return fs
	}

	t.Run("will only set changed flags", func(t *testing.T) {
		t.Run("if some flags are left to their defaults", func(t *testing.T) {
			fs := newFlagSet()
			err := fs.Parse([]string{"--name=app", "--log-level=debug"})
			if !assert.Nil(t, err) {
				return
			}

			store := make(inMemoryStore)
			err = FromFlags(fs).Apply(context.Background(), store)
			if !assert.Nil(t, err) {
				return
			}

			expected := inMemoryStore{
				"name":      "app",
				"log_level": "debug",
			}
			if !assert.Equal(t, expected, store) {
				return
			}
		})
	})

	t.Run("will decode into typed fields", func(t *testing.T) {
		t.Run("if count, slice and bool flags are set", func(t *testing.T) {
			fs := newFlagSet()
			err := fs.Parse([]string{"-vv", "--tags=a,b", "--tags=c", "--debug", "--server.port=9090"})
			if !assert.Nil(t, err) {
				return
			}

			as := newAppSchema(t)
			r, err := read(t, as, FromFlags(fs))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 2, as.verbose.Value(r)) {
				return
			}
			if !assert.Equal(t, []string{"a", "b", "c"}, as.tags.Value(r)) {
				return
			}
			if !assert.True(t, as.debug.Value(r)) {
				return
			}
			if !assert.Equal(t, 9090, as.port.Value(r)) {
				return
			}
		})
	})
}
