// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source produces configuration fragments from external sources.
//
// A [Source] knows nothing about schemas or other sources, it simply writes raw
// key value pairs into a [Store]. A [Reader] applies sources to fresh stores,
// decodes each store into a [schema.Fragment] and combines the fragments in the
// order the sources were given, so later sources have higher precedence:
//
//	r := source.NewReader(s)
//	fr, err := r.Read(
//	    ctx,
//	    source.FromFile(os.DirFS("/etc/app"), "config.yaml", source.YAML, source.Optional()),
//	    source.FromEnv("APP_"),
//	    source.FromFlags(cmd.Flags()),
//	)
//
// Sources are applied concurrently since they are independent of each other.
// Only the combination of their fragments is order sensitive.
package source
