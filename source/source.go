// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/z5labs/partial/internal/try"
	"github.com/z5labs/partial/monoid"
	"github.com/z5labs/partial/schema"
	"github.com/z5labs/partial/source/key"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(context.Context, Store) error
}

// SourceFunc is a functional implementation of the Source interface.
type SourceFunc func(context.Context, Store) error

// Apply implements the Source interface.
func (f SourceFunc) Apply(ctx context.Context, store Store) error {
	return f(ctx, store)
}

// ApplyError occurs when a Source fails to apply itself to its Store.
type ApplyError struct {
	Index int
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ApplyError) Error() string {
	return fmt.Sprintf("failed to apply config source %d: %s", e.Index, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ApplyError) Unwrap() error {
	return e.Cause
}

// UnknownKeyError occurs in strict mode when a Source sets a key
// which is not a field of the schema.
type UnknownKeyError struct {
	Index int
	Key   string
}

// Error implements the [builtin.error] interface.
func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("config source %d set unknown key: %s", e.Index, e.Key)
}

// ErrNilSchema is returned when a Reader is used without a schema.
var ErrNilSchema = errors.New("config reader has no schema")

type readerOptions struct {
	logHandler     slog.Handler
	strict         bool
	maxConcurrency int
}

// ReaderOption configures a Reader.
type ReaderOption func(*readerOptions)

// LogHandler configures the slog.Handler used by the Reader.
func LogHandler(h slog.Handler) ReaderOption {
	return func(ro *readerOptions) {
		ro.logHandler = h
	}
}

// Strict makes a Reader fail when a source sets a key which
// is not a field of the schema. By default such keys are skipped.
func Strict() ReaderOption {
	return func(ro *readerOptions) {
		ro.strict = true
	}
}

// MaxConcurrency limits how many sources are applied at the same time.
// A value less than one means no limit.
func MaxConcurrency(n int) ReaderOption {
	return func(ro *readerOptions) {
		ro.maxConcurrency = n
	}
}

// Reader turns sources into fragments of a single schema.
type Reader struct {
	log            *slog.Logger
	schema         *schema.Schema
	strict         bool
	maxConcurrency int
}

// NewReader returns a Reader for the given schema.
func NewReader(s *schema.Schema, opts ...ReaderOption) *Reader {
	ro := &readerOptions{
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(ro)
	}

	return &Reader{
		log:            slog.New(ro.logHandler),
		schema:         s,
		strict:         ro.strict,
		maxConcurrency: ro.maxConcurrency,
	}
}

// Read applies every source and combines their fragments. Sources are applied
// concurrently but combined in the order given, so the last source has the
// highest precedence. The result always belongs to the Reader's schema, even
// when no sources are given.
func (r *Reader) Read(ctx context.Context, srcs ...Source) (schema.Fragment, error) {
	if r.schema == nil {
		return schema.Fragment{}, ErrNilSchema
	}

	spanCtx, span := otel.Tracer("source").Start(ctx, "Reader.Read", trace.WithAttributes(
		attribute.String("schema", r.schema.Name()),
		attribute.Int("sources", len(srcs)),
	))
	defer span.End()

	frs := make([]schema.Fragment, len(srcs))

	g, gctx := errgroup.WithContext(spanCtx)
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}
	for i, src := range srcs {
		g.Go(func() error {
			fr, err := r.read(gctx, i, src)
			if err != nil {
				return err
			}
			frs[i] = fr
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.ErrorContext(spanCtx, "failed to read config sources", slog.Any("error", err))
		return schema.Fragment{}, err
	}

	fr := r.schema.Empty().Combine(monoid.Concat(frs...))
	r.log.DebugContext(spanCtx, "combined config fragments", slog.Int("sources", len(srcs)))
	return fr, nil
}

func (r *Reader) read(ctx context.Context, i int, src Source) (schema.Fragment, error) {
	spanCtx, span := otel.Tracer("source").Start(ctx, "Reader.read", trace.WithAttributes(
		attribute.Int("source.index", i),
	))
	defer span.End()

	store := make(inMemoryStore)
	err := apply(spanCtx, src, store)
	if err != nil {
		span.RecordError(err)
		return schema.Fragment{}, ApplyError{Index: i, Cause: err}
	}

	for k := range store {
		if r.schema.Has(k) {
			continue
		}
		if r.strict {
			return schema.Fragment{}, UnknownKeyError{Index: i, Key: k}
		}
		r.log.DebugContext(spanCtx, "skipping unknown config key", slog.Int("source", i), slog.String("key", k))
		delete(store, k)
	}

	fr, err := r.schema.Decode(store)
	if err != nil {
		span.RecordError(err)
		return schema.Fragment{}, err
	}

	r.log.DebugContext(spanCtx, "applied config source", slog.Int("source", i), slog.Int("keys", len(store)))
	return fr, nil
}

// apply keeps a panicking Source from taking down the whole process.
func apply(ctx context.Context, src Source, store Store) (err error) {
	defer try.Recover(&err)
	return src.Apply(ctx, store)
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return true }
func (noopLogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h noopLogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h noopLogHandler) WithGroup(name string) slog.Handler          { return h }
