// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema declares a paramkit registry from a TOML or YAML document.
// A schema only declares parameters; values always come from the command
// line.
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/paramkit/pkg/paramkit"
	"gopkg.in/yaml.v3"
)

const (
	DefaultVersion = "1.0.0"

	supportedVersions = ">= 1.0.0, < 2.0.0"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Parameter kinds accepted in a schema.
const (
	KindInt    = "int"
	KindHex    = "hex"
	KindString = "string"
	KindBool   = "bool"
)

var ErrUnknownFormat = errors.New("unknown schema format")

type Document struct {
	Version string  `toml:"version,omitempty" yaml:"version,omitempty"`
	Prefix  string  `toml:"prefix,omitempty" yaml:"prefix,omitempty"`
	Strict  bool    `toml:"strict,omitempty" yaml:"strict,omitempty"`
	Params  []Entry `toml:"param" yaml:"param"`
}

type Entry struct {
	Name     string `toml:"name" yaml:"name"`
	Kind     string `toml:"kind" yaml:"kind"`
	Required bool   `toml:"required,omitempty" yaml:"required,omitempty"`
	Info     string `toml:"info,omitempty" yaml:"info,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads, decodes and validates the schema at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes and validates a schema document.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the schema version and every entry.
func (d *Document) Validate() error {
	v, err := semver.NewVersion(d.Version)
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %w", d.Version, err)
	}
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported schema version %s (want %s)", v, supportedVersions)
	}

	prefix := d.Prefix
	if prefix == "" {
		prefix = paramkit.DefaultPrefixChars
	}
	seen := make(map[string]bool, len(d.Params))
	for i, e := range d.Params {
		if e.Name == "" {
			return fmt.Errorf("param %d: missing name", i)
		}
		if strings.IndexFunc(e.Name, func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsControl(r)
		}) >= 0 {
			return fmt.Errorf("param %q: name contains whitespace or control characters", e.Name)
		}
		if strings.ContainsAny(e.Name[:1], prefix) {
			return fmt.Errorf("param %q: name starts with a prefix character", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("param %q: declared twice", e.Name)
		}
		seen[e.Name] = true
		switch e.Kind {
		case KindInt, KindHex, KindString, KindBool:
		default:
			return fmt.Errorf("param %q: unknown kind %q", e.Name, e.Kind)
		}
	}
	return nil
}

// Config returns the parser configuration declared by the schema.
func (d *Document) Config() paramkit.Config {
	return paramkit.Config{
		PrefixChars:          d.Prefix,
		RequireKnownSwitches: d.Strict,
	}
}

// Build returns a registry holding one parameter per entry.
func (d *Document) Build(cfg paramkit.Config) *paramkit.Params {
	params := paramkit.New(cfg)
	for _, e := range d.Params {
		param := e.Param()
		param.SetInfo(e.Info)
		params.AddParam(param)
	}
	return params
}

// Param returns a new parameter for e. Entries are assumed validated.
func (e Entry) Param() paramkit.Param {
	switch e.Kind {
	case KindHex:
		return paramkit.NewIntParam(e.Name, e.Required, true)
	case KindString:
		return paramkit.NewStringParam(e.Name, e.Required)
	case KindBool:
		return paramkit.NewBoolParam(e.Name, e.Required)
	default:
		return paramkit.NewIntParam(e.Name, e.Required, false)
	}
}
