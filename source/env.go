// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"os"
	"strings"

	"github.com/z5labs/partial/source/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
//
// Only variables starting with the prefix are used. The remainder of the
// name is lower cased and double underscores denote nesting, e.g. with
// the prefix "APP_" the variable APP_SERVER__PORT sets "server.port".
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config
// from the environment variables available to the
// current process.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(_ context.Context, store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(k, src.prefix)
		if !ok || name == "" {
			continue
		}

		parts := strings.Split(strings.ToLower(name), "__")
		chain := make(key.Chain, len(parts))
		for i, p := range parts {
			chain[i] = key.Name(p)
		}

		err := store.Set(chain, v)
		if err != nil {
			return err
		}
	}
	return nil
}
