// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"fmt"
	"reflect"
)

// EmptyFieldNameError occurs when a field is declared without a name.
type EmptyFieldNameError struct {
	Index int
}

// Error implements the [builtin.error] interface.
func (e EmptyFieldNameError) Error() string {
	return fmt.Sprintf("field at index %d has an empty name", e.Index)
}

// DuplicateFieldError occurs when two fields of the same Schema share a name.
type DuplicateFieldError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("field declared more than once: %s", e.Name)
}

// ConflictingFieldError occurs when a field name is also used as
// the parent of a nested field name, e.g. "server" and "server.port".
type ConflictingFieldError struct {
	Name   string
	Nested string
}

// Error implements the [builtin.error] interface.
func (e ConflictingFieldError) Error() string {
	return fmt.Sprintf("field %s conflicts with nested field %s", e.Name, e.Nested)
}

// FieldRegisteredError occurs when a field is used in more than one Schema.
type FieldRegisteredError struct {
	Field  string
	Schema string
}

// Error implements the [builtin.error] interface.
func (e FieldRegisteredError) Error() string {
	return fmt.Sprintf("field %s is already registered with schema %s", e.Field, e.Schema)
}

// DecodeError occurs when a raw source value can not be decoded into a field.
type DecodeError struct {
	Field string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode field %s: %s", e.Field, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// TypeCoercionError occurs when attempting to decode a value into a
// type which does not match the value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// SchemaMismatchError is the panic value raised when aggregates of
// two different schemas are combined.
type SchemaMismatchError struct {
	Left  string
	Right string
}

// Error implements the [builtin.error] interface.
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("can not combine aggregates of schema %s with schema %s", e.Left, e.Right)
}

// UnknownFieldError is the panic value raised when a field is used
// with an aggregate of a Schema it does not belong to.
type UnknownFieldError struct {
	Field  string
	Schema string
}

// Error implements the [builtin.error] interface.
func (e *UnknownFieldError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("field %s is not registered with any schema", e.Field)
	}
	return fmt.Sprintf("field %s is not part of schema %s", e.Field, e.Schema)
}
