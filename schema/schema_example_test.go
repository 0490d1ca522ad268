// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import "fmt"

func Example() {
	verbose := Sum[uint32]("verbose")
	debug := Any("debug")
	output := Last[string]("output_file")

	s := MustNew("cli", verbose, debug, output)

	env, _ := s.Decode(map[string]any{
		"verbose": "1",
		"debug":   "true",
	})
	args, _ := s.Decode(map[string]any{
		"verbose":     2,
		"debug":       false,
		"output_file": "/usr/bin/test",
	})

	cfg := s.Resolve(env, args)

	fmt.Println(verbose.Value(cfg))
	fmt.Println(debug.Value(cfg))
	fmt.Println(*output.Value(cfg))
	// Output:
	// 3
	// true
	// /usr/bin/test
}
