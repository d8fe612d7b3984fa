// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paramkit is a small typed-parameter registry for command-line
// switches.
//
// A program declares its parameters, registers them in a Params, parses the
// process arguments and then checks that every required parameter was
// supplied:
//
//	params := paramkit.New(paramkit.Config{})
//	params.AddParam(paramkit.NewIntParam("mode", true, false))
//	params.AddParam(paramkit.NewBoolParam("verbose", false))
//	_ = params.SetInfo("mode", "Operating mode")
//
//	if err := params.Parse(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	if !params.HasRequiredFilled() {
//	    params.Info(os.Stdout, true)
//	    os.Exit(1)
//	}
//	mode := params.GetIntValue("mode")
//
// # Switch Syntax
//
// A switch is a token starting with one of the prefix characters ("-" and
// "/" by default) followed by a parameter name:
//   - Value parameters (int, string) take the next token: -mode 3, /name foo
//   - Bool parameters stand alone (-verbose) or take an explicit decimal
//     value when the next token is a number: -verbose 0
//   - Hex int parameters accept bare digits or a 0x prefix: -addr 0x1f, -addr 1f
//
// Tokens without a prefix, unknown switches, missing values and malformed
// numbers do not stop the scan. They are reported by Diagnostics.
package paramkit
