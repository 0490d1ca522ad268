// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_Apply(t *testing.T) {
	t.Run("will only set prefixed variables", func(t *testing.T) {
		t.Run("if other variables are present", func(t *testing.T) {
			env := Env{
				prefix: "APP_",
				environ: func() []string {
					return []string{
						"APP_NAME=app",
						"APP_SERVER__PORT=9090",
						"APP_=ignored",
						"HOME=/root",
						"MALFORMED",
					}
				},
			}

			store := make(inMemoryStore)
			err := env.Apply(context.Background(), store)
			if !assert.Nil(t, err) {
				return
			}

			expected := inMemoryStore{
				"name":        "app",
				"server.port": "9090",
			}
			if !assert.Equal(t, expected, store) {
				return
			}
		})
	})

	t.Run("will decode into typed fields", func(t *testing.T) {
		t.Run("if the values are strings", func(t *testing.T) {
			t.Setenv("TESTAPP_VERBOSE", "2")
			t.Setenv("TESTAPP_DEBUG", "true")
			t.Setenv("TESTAPP_TAGS", "a,b")
			t.Setenv("TESTAPP_SERVER__PORT", "9090")

			as := newAppSchema(t)
			r, err := read(t, as, FromEnv("TESTAPP_"))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 2, as.verbose.Value(r)) {
				return
			}
			if !assert.True(t, as.debug.Value(r)) {
				return
			}
			if !assert.Equal(t, []string{"a", "b"}, as.tags.Value(r)) {
				return
			}
			if !assert.Equal(t, 9090, as.port.Value(r)) {
				return
			}
		})
	})
}
