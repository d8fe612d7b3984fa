// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkit

import (
	"errors"
	"fmt"
	"strconv"
)

// Unset is the IntParam value that means no value has been parsed or assigned.
const Unset = ^uint64(0)

const (
	TypeHex    = "integer: hex"
	TypeDec    = "integer: dec"
	TypeString = "string"
	TypeBool   = "bool"
)

// Param is a single named command-line parameter.
type Param interface {
	// Name is the switch name without its prefix, e.g. "mode".
	Name() string
	Info() string
	SetInfo(info string)
	Required() bool
	// TakesValue reports whether the switch must be followed by a value token.
	TakesValue() bool

	// Parse consumes an optional raw token. A nil arg means the switch was
	// given without a value.
	Parse(arg *string) error
	IsSet() bool
	ValueString() string
	Type() string
}

type base struct {
	name     string
	info     string
	required bool
}

func (b *base) Name() string        { return b.name }
func (b *base) Info() string        { return b.info }
func (b *base) SetInfo(info string) { b.info = info }
func (b *base) Required() bool      { return b.required }

// IntParam holds an unsigned 64-bit integer parsed in a radix fixed at
// construction.
type IntParam struct {
	base
	Hex   bool
	Value uint64
}

// NewIntParam returns an IntParam with Value set to Unset.
func NewIntParam(name string, required, hex bool) *IntParam {
	return &IntParam{
		base:  base{name: name, required: required},
		Hex:   hex,
		Value: Unset,
	}
}

func (p *IntParam) TakesValue() bool { return true }

func (p *IntParam) Type() string {
	if p.Hex {
		return TypeHex
	}
	return TypeDec
}

func (p *IntParam) IsSet() bool { return p.Value != Unset }

func (p *IntParam) ValueString() string {
	if p.Hex {
		return strconv.FormatUint(p.Value, 16)
	}
	return strconv.FormatUint(p.Value, 10)
}

// Parse scans arg in the parameter's radix. Hex values may carry a 0x prefix.
// The scanned value is stored even when the token has trailing garbage or
// no digits at all (in which case the value becomes 0); both cases are
// reported as a *ValueError.
func (p *IntParam) Parse(arg *string) error {
	if arg == nil {
		return ErrMissingValue
	}
	radix := 10
	if p.Hex {
		radix = 16
	}
	v, err := scanUint(*arg, radix, false)
	p.Value = v
	if err != nil {
		return &ValueError{Param: p.name, Value: *arg, Err: err}
	}
	return nil
}

// StringParam holds arbitrary text. The empty string means unset.
type StringParam struct {
	base
	Value string
}

func NewStringParam(name string, required bool) *StringParam {
	return &StringParam{base: base{name: name, required: required}}
}

func (p *StringParam) TakesValue() bool    { return true }
func (p *StringParam) Type() string        { return TypeString }
func (p *StringParam) IsSet() bool         { return len(p.Value) > 0 }
func (p *StringParam) ValueString() string { return `"` + p.Value + `"` }

func (p *StringParam) Parse(arg *string) error {
	if arg == nil {
		return ErrMissingValue
	}
	p.Value = *arg
	return nil
}

// CopyTo copies the value into buf followed by a NUL terminator, truncating
// to the capacity of buf. It returns the number of bytes written including
// the terminator.
func (p *StringParam) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	n := min(len(p.Value), len(buf)-1)
	copy(buf, p.Value[:n])
	buf[n] = 0
	return n + 1
}

// BoolParam is a flag. The bare switch enables it; an explicit decimal value
// enables it when nonzero.
type BoolParam struct {
	base
	Value bool
}

func NewBoolParam(name string, required bool) *BoolParam {
	return &BoolParam{base: base{name: name, required: required}}
}

func (p *BoolParam) TakesValue() bool { return false }
func (p *BoolParam) Type() string     { return TypeBool }
func (p *BoolParam) IsSet() bool      { return p.Value }

func (p *BoolParam) ValueString() string {
	if p.Value {
		return "true"
	}
	return "false"
}

// Parse never fails to assign: a malformed token stores false and is
// reported as a *ValueError.
func (p *BoolParam) Parse(arg *string) error {
	if arg == nil {
		p.Value = true
		return nil
	}
	v, err := scanUint(*arg, 10, true)
	p.Value = v != 0
	if err != nil {
		return &ValueError{Param: p.name, Value: *arg, Err: err}
	}
	return nil
}

var (
	errNoDigits = errors.New("no digits")
)

// scanUint reads the longest run of digits at the start of s. Leading blanks
// are skipped and, for base 16, a 0x prefix is accepted. The value scanned so
// far is returned alongside any error.
func scanUint(s string, base int, signed bool) (uint64, error) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if signed && i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if base == 16 && i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && isDigit(s[i+2], 16) {
		i += 2
	}
	start := i
	for i < len(s) && isDigit(s[i], base) {
		i++
	}
	if start == i {
		return 0, errNoDigits
	}
	v, err := strconv.ParseUint(s[start:i], base, 64)
	if err != nil {
		// ParseUint saturates on overflow, which is what we keep.
		return v, errors.Unwrap(err)
	}
	if neg {
		v = -v
	}
	if i < len(s) {
		return v, fmt.Errorf("unexpected trailing %q", s[i:])
	}
	return v, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
