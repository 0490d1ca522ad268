// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/partial/schema"
)

// ColorMode controls when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// InvalidColorModeError
type InvalidColorModeError struct {
	Value string
}

// Error implements the [builtin.error] interface.
func (e InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q, must be one of auto, always or never", e.Value)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *ColorMode) UnmarshalText(b []byte) error {
	switch m := ColorMode(b); m {
	case ColorAuto, ColorAlways, ColorNever:
		*c = m
		return nil
	default:
		return InvalidColorModeError{Value: string(b)}
	}
}

var (
	verbose    = schema.Sum[uint32]("verbose")
	debug      = schema.Any("debug")
	outputFile = schema.Last[string]("output_file")
	color      = schema.LastOr("color", ColorAuto)
	files      = schema.Set[string]("files")

	cliSchema = schema.MustNew("cli", verbose, debug, outputFile, color, files)
)
