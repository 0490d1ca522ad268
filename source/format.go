// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/partial/internal/try"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a config document.
type Format int

const (
	YAML Format = iota
	JSON
	TOML
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// UnknownFormatError occurs when a document is read with a [Format]
// which is not supported.
type UnknownFormatError struct {
	Format Format
}

// Error implements the [builtin.error] interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown config format: %s", e.Format)
}

// Source returns a Source which decodes r according to f.
func (f Format) Source(r io.Reader) Source {
	switch f {
	case YAML:
		return FromYaml(r)
	case JSON:
		return FromJson(r)
	case TOML:
		return FromToml(r)
	default:
		return SourceFunc(func(_ context.Context, _ Store) (err error) {
			defer try.Close(&err, r)
			return UnknownFormatError{Format: f}
		})
	}
}

// Yaml represents a Source where its underlying
// values are backed by a YAML formatted [io.Reader].
type Yaml struct {
	r io.Reader
}

// FromYaml returns a source which will apply its config
// from YAML values parsed from the given [io.Reader].
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

// InvalidYamlError occurs when the underlying reader contains invalid YAML.
type InvalidYamlError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Yaml) Apply(ctx context.Context, store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return InvalidYamlError{Cause: err}
	}
	return Map(m).Apply(ctx, store)
}

// Json represents a Source where its underlying
// values are backed by a JSON formatted [io.Reader].
type Json struct {
	r io.Reader
}

// FromJson returns a source which will apply its config
// from JSON values parsed from the given [io.Reader].
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs when the underlying reader contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Json) Apply(ctx context.Context, store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = json.Unmarshal(b, &m)
	if err != nil {
		return InvalidJsonError{Cause: err}
	}
	return Map(m).Apply(ctx, store)
}

// Toml represents a Source where its underlying
// values are backed by a TOML formatted [io.Reader].
type Toml struct {
	r io.Reader
}

// FromToml returns a source which will apply its config
// from TOML values parsed from the given [io.Reader].
func FromToml(r io.Reader) Toml {
	return Toml{r: r}
}

// InvalidTomlError occurs when the underlying reader contains invalid TOML.
type InvalidTomlError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidTomlError) Error() string {
	return fmt.Sprintf("invalid toml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidTomlError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Toml) Apply(ctx context.Context, store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = toml.Unmarshal(b, &m)
	if err != nil {
		return InvalidTomlError{Cause: err}
	}
	return Map(m).Apply(ctx, store)
}
