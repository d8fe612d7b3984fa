// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/paramkit/pkg/paramkit"
)

// Write writes an environment file with the given name holding every set
// parameter of params.
func Write(name string, params *paramkit.Params, prefix string) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Marshal(f, params, prefix); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	return f.Close()
}

// Marshal writes one KEY=value line per set parameter, in name order. Keys
// are the upper-cased parameter names with prefix prepended and every
// character outside [A-Z0-9_] replaced by an underscore.
func Marshal(w io.Writer, params *paramkit.Params, prefix string) error {
	for _, name := range params.Names() {
		param, _ := params.Lookup(name)
		if !param.IsSet() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", Key(prefix, name), value(param)); err != nil {
			return err
		}
	}
	return nil
}

func Key(prefix, name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, prefix+name)
}

func value(param paramkit.Param) string {
	switch p := param.(type) {
	case *paramkit.IntParam:
		if p.Hex {
			return "0x" + p.ValueString()
		}
		return p.ValueString()
	case *paramkit.StringParam:
		if strings.ContainsAny(p.Value, " \t\n\"'\\$#") {
			return strconv.Quote(p.Value)
		}
		return p.Value
	}
	return param.ValueString()
}
