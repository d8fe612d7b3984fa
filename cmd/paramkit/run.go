// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/paramkit/pkg/env"
	"github.com/yeetrun/paramkit/pkg/paramkit"
	"github.com/yeetrun/paramkit/pkg/pflagbridge"
	"github.com/yeetrun/paramkit/pkg/schema"
	"github.com/yeetrun/paramkit/pkg/tui"
	"gopkg.in/yaml.v3"
)

const programName = "paramkit"

type flagsParsed struct {
	Schema    string `flag:"schema" help:"Schema file (.toml, .yaml or .yml)"`
	Strict    bool   `flag:"strict" help:"Treat unknown switches as errors"`
	Prefix    string `flag:"prefix" help:"Switch prefix characters (default from schema, then \"-/\")"`
	GNU       bool   `flag:"gnu" help:"Parse ARGS as --name=value flags"`
	NoColor   bool   `flag:"no-color" help:"Disable colored output"`
	Format    string `flag:"format" help:"Output format for dump: json, yaml or env"`
	EnvPrefix string `flag:"env-prefix" help:"Key prefix for --format=env"`
	Out       string `flag:"out" help:"Write --format=env output to FILE instead of stdout"`
}

var errMissingRequired = errors.New("missing required parameters")

type runner struct {
	stdout io.Writer
	stderr io.Writer
	color  tui.Colorizer
	log    *log.Logger
}

func newRunner(stdout, stderr io.Writer, color tui.Colorizer) *runner {
	return &runner{
		stdout: stdout,
		stderr: stderr,
		color:  color,
		log:    log.New(stderr, programName+": ", 0),
	}
}

func parseFlags(name string, args []string) (flagsParsed, []string, error) {
	if len(args) > 0 && args[0] == name {
		args = args[1:]
	}
	result, err := yargs.ParseFlags[flagsParsed](args)
	if err != nil {
		return flagsParsed{}, nil, err
	}
	if result.Flags.Schema == "" {
		return flagsParsed{}, nil, errors.New("missing --schema")
	}
	rest := append([]string{}, result.Args...)
	rest = append(rest, result.RemainingArgs...)
	return result.Flags, rest, nil
}

// load builds the registry declared by the schema and parses argv into it.
func (r *runner) load(flags flagsParsed, argv []string) (*paramkit.Params, error) {
	doc, err := schema.Load(flags.Schema)
	if err != nil {
		return nil, err
	}
	if flags.Prefix != "" {
		doc.Prefix = flags.Prefix
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("failed to apply --prefix: %w", err)
		}
	}
	cfg := doc.Config()
	if flags.Strict {
		cfg.RequireKnownSwitches = true
	}
	params := doc.Build(cfg)
	if !flags.NoColor {
		params.SetColorizer(r.color)
	}

	if flags.GNU {
		fs := pflagbridge.FlagSet(programName, params)
		fs.SetOutput(io.Discard)
		if err := fs.Parse(argv); err != nil {
			return nil, err
		}
		for _, arg := range fs.Args() {
			r.log.Printf("warning: ignoring argument %q", arg)
		}
		return params, nil
	}

	err = params.Parse(append([]string{programName}, argv...))
	for _, d := range params.Diagnostics() {
		r.log.Printf("warning: %v", d)
	}
	if err != nil {
		return nil, err
	}
	return params, nil
}

func (r *runner) requireFilled(params *paramkit.Params) error {
	if params.HasRequiredFilled() {
		return nil
	}
	if err := params.Info(r.stderr, true); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", errMissingRequired, strings.Join(params.Missing(), ", "))
}

func (r *runner) handleCheck(_ context.Context, args []string) error {
	flags, argv, err := parseFlags("check", args)
	if err != nil {
		return err
	}
	params, err := r.load(flags, argv)
	if err != nil {
		return err
	}
	if err := r.requireFilled(params); err != nil {
		return err
	}
	return params.Print(r.stdout)
}

func (r *runner) handleInfo(_ context.Context, args []string) error {
	flags, argv, err := parseFlags("info", args)
	if err != nil {
		return err
	}
	params, err := r.load(flags, argv)
	if err != nil {
		return err
	}
	return params.Info(r.stdout, true)
}

func (r *runner) handleDump(_ context.Context, args []string) error {
	flags, argv, err := parseFlags("dump", args)
	if err != nil {
		return err
	}
	format := flags.Format
	if format == "" {
		format = "json"
	}
	switch format {
	case "json", "yaml", "env":
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or env)", format)
	}
	params, err := r.load(flags, argv)
	if err != nil {
		return err
	}
	if err := r.requireFilled(params); err != nil {
		return err
	}

	switch format {
	case "yaml":
		b, err := yaml.Marshal(dumpValues(params))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = r.stdout.Write(b)
		return err
	case "env":
		if flags.Out != "" {
			return env.Write(flags.Out, params, flags.EnvPrefix)
		}
		return env.Marshal(r.stdout, params, flags.EnvPrefix)
	default:
		b, err := json.MarshalIndent(dumpValues(params), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(r.stdout, string(b))
		return err
	}
}

// dumpValues returns the set values for json and yaml output. Hex
// parameters are written as 0x-prefixed strings, matching the env output.
func dumpValues(params *paramkit.Params) map[string]any {
	values := params.Values()
	for name := range values {
		if ip, ok := params.Lookup(name); ok {
			if p, ok := ip.(*paramkit.IntParam); ok && p.Hex {
				values[name] = "0x" + p.ValueString()
			}
		}
	}
	return values
}
