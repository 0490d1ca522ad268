// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package partial

import (
	"context"
	"fmt"

	"github.com/z5labs/partial/schema"
	"github.com/z5labs/partial/source"
)

// SourceReadError
type SourceReadError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e SourceReadError) Error() string {
	return fmt.Sprintf("failed to read config source(s): %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e SourceReadError) Unwrap() error {
	return e.Cause
}

// UnmarshalError
type UnmarshalError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal resolved config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e UnmarshalError) Unwrap() error {
	return e.Cause
}

// Resolve reads the given sources, combines their fragments in order and
// finalizes the result. Later sources take precedence over earlier ones.
func Resolve(ctx context.Context, s *schema.Schema, srcs ...source.Source) (schema.Resolved, error) {
	fr, err := source.NewReader(s).Read(ctx, srcs...)
	if err != nil {
		return schema.Resolved{}, SourceReadError{Cause: err}
	}
	return fr.Finalize(), nil
}

// Rebase reopens base as the lowest precedence fragment and resolves
// the given sources on top of it.
func Rebase(ctx context.Context, base schema.Resolved, srcs ...source.Source) (schema.Resolved, error) {
	s := base.Schema()
	if s == nil {
		return schema.Resolved{}, SourceReadError{Cause: ErrUnboundResolved}
	}

	fr, err := source.NewReader(s).Read(ctx, srcs...)
	if err != nil {
		return schema.Resolved{}, SourceReadError{Cause: err}
	}
	return base.Reopen().Combine(fr).Finalize(), nil
}

// Load resolves the given sources and unmarshals the result into a T.
func Load[T any](ctx context.Context, s *schema.Schema, srcs ...source.Source) (T, error) {
	var cfg T

	r, err := Resolve(ctx, s, srcs...)
	if err != nil {
		return cfg, err
	}

	err = r.Unmarshal(&cfg)
	if err != nil {
		return cfg, UnmarshalError{Cause: err}
	}
	return cfg, nil
}
