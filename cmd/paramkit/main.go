// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paramkit checks, describes and exports command lines against a
// parameter schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/paramkit/pkg/paramkit"
	"github.com/yeetrun/paramkit/pkg/tui"
)

type globalFlagsParsed struct{}

func main() {
	r := newRunner(os.Stdout, os.Stderr, tui.AutoColorizer(os.Stdout))
	handlers := map[string]yargs.SubcommandHandler{
		"check": r.handleCheck,
		"info":  r.handleInfo,
		"dump":  r.handleDump,
	}
	if err := yargs.RunSubcommands(context.Background(), os.Args[1:], buildHelpConfig(), globalFlagsParsed{}, handlers); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func buildHelpConfig() yargs.HelpConfig {
	usage := "--schema=FILE [--strict] [--prefix=CHARS] [--gnu] [--no-color] -- ARGS..."
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "paramkit",
			Description: "Parse a command line against a parameter schema.",
			Examples: []string{
				"paramkit check --schema=params.toml -- -mode 3 -verbose",
				"paramkit info --schema=params.yaml -- /mode 3",
				"paramkit dump --schema=params.toml --format=env -- -mode 3",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"check": {
				Name:        "check",
				Description: "Parse ARGS and fail if a required parameter is missing",
				Usage:       usage,
			},
			"info": {
				Name:        "info",
				Description: "List every parameter with its type, value and description",
				Usage:       usage,
			},
			"dump": {
				Name:        "dump",
				Description: "Print the parsed values as json, yaml or env; hex parameters are written as 0x-prefixed values",
				Usage:       "--schema=FILE [--format=json|yaml|env] [--env-prefix=PREFIX] [--out=FILE] -- ARGS...",
				Examples:    []string{"paramkit dump --schema=params.toml --format=yaml -- -mode 3"},
			},
		},
	}
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var pe *paramkit.ParseError
	if errors.As(err, &pe) {
		for _, e := range pe.Errs {
			fmt.Fprintf(w, "error: %v\n", e)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
