// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingValue is returned by Param.Parse when a value-taking
	// parameter is given no token.
	ErrMissingValue = errors.New("missing value")

	// ErrUnknownParam is returned when a name is not registered.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrTypeMismatch is returned by Params.SetIntValue when the named
	// parameter is not an IntParam.
	ErrTypeMismatch = errors.New("parameter type mismatch")
)

// UnknownSwitchError records a prefixed token that names no registered
// parameter.
type UnknownSwitchError struct {
	Index  int
	Switch string
}

func (e *UnknownSwitchError) Error() string {
	return fmt.Sprintf("unknown switch: %s", e.Switch)
}

// MissingValueError records a value-taking switch at the end of the argument
// vector.
type MissingValueError struct {
	Index  int
	Switch string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("switch %s requires a value", e.Switch)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// MalformedSwitchError records a token made only of prefix characters.
type MalformedSwitchError struct {
	Index int
	Token string
}

func (e *MalformedSwitchError) Error() string {
	return fmt.Sprintf("malformed switch %q at argument %d", e.Token, e.Index)
}

// StrayTokenError records a token that does not start with a switch prefix
// and was not consumed as a value.
type StrayTokenError struct {
	Index int
	Token string
}

func (e *StrayTokenError) Error() string {
	return fmt.Sprintf("ignored argument %q", e.Token)
}

// ValueError is returned when a value token could not be scanned in full.
// The parameter still holds whatever was scanned.
type ValueError struct {
	Index int
	Param string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Param, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// ParseError is returned by Params.Parse when at least one fatal condition
// was found during the scan.
type ParseError struct {
	Errs []error
}

func (e *ParseError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return "parse failed: " + strings.Join(msgs, "; ")
}

func (e *ParseError) Unwrap() []error { return e.Errs }
