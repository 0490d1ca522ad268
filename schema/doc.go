// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema assembles configuration aggregates from an explicit list of fields.
//
// Each [Field] names an accumulator type M, a resolved type A and the two mappings
// between them. A [Schema] groups fields and produces aggregates in one of two phases:
//
//   - [Fragment]: every field holds its accumulator. Fragments from different
//     sources are merged with Combine, in precedence order.
//   - [Resolved]: every field holds its final value. This is what the application reads.
//
// A Fragment becomes a Resolved via Finalize, and a Resolved can be turned back into a
// Fragment via Reopen, e.g. to merge previously resolved defaults with new overrides:
//
//	verbose := schema.Sum[uint32]("verbose")
//	debug := schema.Any("debug")
//	output := schema.Last[string]("output_file")
//
//	s := schema.MustNew("cli", verbose, debug, output)
//
//	env := verbose.Seed(s.Empty(), 1)
//	args := output.Set(verbose.Seed(s.Empty(), 2), monoid.LastOf("/usr/bin/test"))
//
//	cfg := env.Combine(args).Finalize()
//	fmt.Println(verbose.Value(cfg)) // 3
//
// Aggregates are values and are never mutated in place. Setters return a new Fragment.
package schema
