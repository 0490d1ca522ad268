// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package partial merges partial configuration from independent sources into
// one resolved configuration.
//
// Every field of a configuration is declared with a merge policy, e.g. the
// most recent value wins, counts add up or flags are true if any source set
// them. Sources only ever produce fragments holding accumulators for those
// policies. Fragments are combined associatively, with the zero fragment as
// identity, and the combined fragment is finalized exactly once into the
// values an application consumes.
//
// # Basic Usage
//
// Declare the fields of a configuration and group them into a schema:
//
//	var (
//	    verbose    = schema.Sum[uint32]("verbose")
//	    outputFile = schema.Last[string]("output_file")
//	    cfg        = schema.MustNew("app", verbose, outputFile)
//	)
//
// Resolve the schema from sources, ordered from lowest to highest precedence:
//
//	r, err := partial.Resolve(
//	    ctx,
//	    cfg,
//	    source.FromFile(os.DirFS("."), "config.yaml", source.YAML, source.Optional()),
//	    source.FromEnv("APP_"),
//	    source.FromFlags(cmd.Flags()),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(verbose.Value(r), outputFile.Value(r))
//
// A resolved configuration can be reopened and rebased beneath newer sources
// with [Rebase], or decoded straight into a struct with [Load].
package partial
