// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"strings"

	"github.com/z5labs/partial/source/key"

	"github.com/spf13/pflag"
)

// Flags represents a Source backed by command line flags.
//
// Only flags which were explicitly set are applied, so a flag default never
// overrides a value from a lower precedence source. Dashes in flag names
// become underscores and dots denote nesting, e.g. --server.read-timeout
// sets "server.read_timeout".
type Flags struct {
	fs *pflag.FlagSet
}

// FromFlags returns a Source which applies the changed flags of fs.
func FromFlags(fs *pflag.FlagSet) Flags {
	return Flags{fs: fs}
}

// Apply implements the Source interface.
func (src Flags) Apply(_ context.Context, store Store) error {
	var err error
	src.fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		k := key.Split(strings.ReplaceAll(f.Name, "-", "_"))
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = store.Set(k, sv.GetSlice())
			return
		}
		err = store.Set(k, f.Value.String())
	})
	return err
}
