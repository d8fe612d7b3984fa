// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pflagbridge exposes paramkit parameters as pflag values so a
// program built on spf13/pflag can declare its switches once in a
// paramkit.Params and accept GNU-style --name=value syntax.
package pflagbridge

import (
	"strconv"

	"github.com/spf13/pflag"
	"github.com/yeetrun/paramkit/pkg/paramkit"
)

// Value adapts a paramkit.Param to pflag.Value.
type Value struct {
	Param paramkit.Param
}

var _ pflag.Value = Value{}

func (v Value) String() string {
	if !v.Param.IsSet() {
		return ""
	}
	if sp, ok := v.Param.(*paramkit.StringParam); ok {
		return sp.Value
	}
	return v.Param.ValueString()
}

// Set parses s with the parameter's own rules. Bool parameters additionally
// accept the strconv.ParseBool spellings pflag users expect.
func (v Value) Set(s string) error {
	if bp, ok := v.Param.(*paramkit.BoolParam); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			bp.Value = b
			return nil
		}
	}
	return v.Param.Parse(&s)
}

func (v Value) Type() string {
	switch v.Param.Type() {
	case paramkit.TypeHex:
		return "hex"
	case paramkit.TypeDec:
		return "uint"
	}
	return v.Param.Type()
}

// Register adds every parameter of params to fs, in name order. Parameters
// that take no value get "true" as their no-option default.
func Register(fs *pflag.FlagSet, params *paramkit.Params) {
	for _, name := range params.Names() {
		param, _ := params.Lookup(name)
		f := fs.VarPF(Value{Param: param}, name, "", param.Info())
		if !param.TakesValue() {
			f.NoOptDefVal = "true"
		}
	}
}

// FlagSet returns a new FlagSet named name holding every parameter of
// params.
func FlagSet(name string, params *paramkit.Params) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	Register(fs, params)
	return fs
}
