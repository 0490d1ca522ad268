// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command cli resolves its configuration from a config file, the
// environment and command line flags, in increasing precedence, and
// prints the result as YAML.
//
//	CLI_VERBOSE=1 cli -vv --files a.txt --config cli.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := buildCmd(os.Stdout, os.Stderr, os.DirFS)
	cmd.SetArgs(os.Args[1:])

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
