// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"errors"
	"io/fs"
)

type fileOptions struct {
	optional     bool
	template     bool
	templateOpts []RenderTextTemplateOption
}

// FileOption configures a File source.
type FileOption func(*fileOptions)

// Optional makes a missing file apply nothing instead of failing.
func Optional() FileOption {
	return func(fo *fileOptions) {
		fo.optional = true
	}
}

// Template renders the file as a [text/template] before it is parsed.
func Template(opts ...RenderTextTemplateOption) FileOption {
	return func(fo *fileOptions) {
		fo.template = true
		fo.templateOpts = append(fo.templateOpts, opts...)
	}
}

// File represents a Source backed by a single file in a [fs.FS].
type File struct {
	fsys   fs.FS
	path   string
	format Format
	opts   fileOptions
}

// FromFile returns a Source which parses the file at path, within fsys, as format.
func FromFile(fsys fs.FS, path string, format Format, opts ...FileOption) File {
	f := File{
		fsys:   fsys,
		path:   path,
		format: format,
	}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

// Apply implements the Source interface.
func (src File) Apply(ctx context.Context, store Store) error {
	f, err := src.fsys.Open(src.path)
	if src.opts.optional && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if !src.opts.template {
		return src.format.Source(f).Apply(ctx, store)
	}
	return src.format.Source(RenderTextTemplate(f, src.opts.templateOpts...)).Apply(ctx, store)
}
