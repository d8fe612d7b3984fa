// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yeetrun/paramkit/pkg/tui"
)

// DefaultPrefixChars are the switch lead characters accepted when
// Config.PrefixChars is empty.
const DefaultPrefixChars = "-/"

// Config controls the switch grammar.
type Config struct {
	// PrefixChars lists the accepted switch lead characters.
	PrefixChars string
	// RequireKnownSwitches makes an unknown switch fail Parse. Unknown
	// switches are always recorded in Diagnostics.
	RequireKnownSwitches bool
}

// Params is a registry of named parameters. It is not safe for concurrent
// use.
type Params struct {
	cfg    Config
	params map[string]Param
	diags  []error
	color  tui.Colorizer
}

func New(cfg Config) *Params {
	if cfg.PrefixChars == "" {
		cfg.PrefixChars = DefaultPrefixChars
	}
	return &Params{
		cfg:    cfg,
		params: make(map[string]Param),
	}
}

// AddParam registers p under its own name, replacing any parameter already
// registered under that name. A nil p is ignored.
func (p *Params) AddParam(param Param) {
	if param == nil {
		return
	}
	p.params[param.Name()] = param
}

func (p *Params) Lookup(name string) (Param, bool) {
	param, ok := p.params[name]
	return param, ok
}

// Names returns the registered names in lexicographic order.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.params))
	for name := range p.params {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p *Params) Len() int { return len(p.params) }

// SetIntValue assigns val to the named IntParam directly, bypassing Parse.
func (p *Params) SetIntValue(name string, val uint64) error {
	param, ok := p.params[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	ip, ok := param.(*IntParam)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrTypeMismatch, name, param.Type())
	}
	ip.Value = val
	return nil
}

func (p *Params) SetInfo(name, info string) error {
	param, ok := p.params[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	param.SetInfo(info)
	return nil
}

// GetIntValue returns the value of the named IntParam, or Unset if there is
// no such parameter.
func (p *Params) GetIntValue(name string) uint64 {
	v, ok := p.IntValue(name)
	if !ok {
		return Unset
	}
	return v
}

// IntValue returns the value of the named IntParam. ok is false when there
// is no such IntParam or it is unset.
func (p *Params) IntValue(name string) (uint64, bool) {
	ip, ok := p.params[name].(*IntParam)
	if !ok || !ip.IsSet() {
		return Unset, false
	}
	return ip.Value, true
}

// StringValue returns the value of the named StringParam. ok is false when
// there is no such StringParam or it is unset (empty).
func (p *Params) StringValue(name string) (string, bool) {
	sp, ok := p.params[name].(*StringParam)
	if !ok || !sp.IsSet() {
		return "", false
	}
	return sp.Value, true
}

// BoolValue returns the value of the named BoolParam. Unlike IntValue and
// StringValue, ok only reports that a BoolParam of that name exists, since
// false is both the unset state and a valid value.
func (p *Params) BoolValue(name string) (bool, bool) {
	bp, ok := p.params[name].(*BoolParam)
	if !ok {
		return false, false
	}
	return bp.Value, true
}

func (p *Params) IsSet(name string) bool {
	param, ok := p.params[name]
	return ok && param.IsSet()
}

// HasRequiredFilled reports whether every required parameter is set.
func (p *Params) HasRequiredFilled() bool {
	for _, param := range p.params {
		if param.Required() && !param.IsSet() {
			return false
		}
	}
	return true
}

// Missing returns the sorted names of required parameters that are not set.
func (p *Params) Missing() []string {
	var missing []string
	for name, param := range p.params {
		if param.Required() && !param.IsSet() {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// Values returns the native values of the set parameters, keyed by name.
func (p *Params) Values() map[string]any {
	out := make(map[string]any, len(p.params))
	for name, param := range p.params {
		if !param.IsSet() {
			continue
		}
		switch v := param.(type) {
		case *IntParam:
			out[name] = v.Value
		case *StringParam:
			out[name] = v.Value
		case *BoolParam:
			out[name] = v.Value
		default:
			out[name] = param.ValueString()
		}
	}
	return out
}

// Release drops every registered parameter and the last diagnostics.
func (p *Params) Release() {
	clear(p.params)
	p.diags = nil
}

// Diagnostics returns the non-fatal conditions recorded by the last Parse.
func (p *Params) Diagnostics() []error {
	return p.diags
}

// Parse walks args, skipping args[0], and assigns every recognized switch.
// Unknown switches, missing values and malformed numbers are recorded in
// Diagnostics without stopping the scan. The returned error is a
// *ParseError when a malformed switch was seen, or an unknown switch was
// seen with Config.RequireKnownSwitches. Parse does not check required
// parameters; use HasRequiredFilled.
func (p *Params) Parse(args []string) error {
	p.diags = nil
	var fatal []error
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if !p.hasPrefix(arg) {
			p.diags = append(p.diags, &StrayTokenError{Index: i, Token: arg})
			continue
		}
		name := strings.TrimLeft(arg, p.cfg.PrefixChars)
		if name == "" {
			err := &MalformedSwitchError{Index: i, Token: arg}
			p.diags = append(p.diags, err)
			fatal = append(fatal, err)
			continue
		}
		param, ok := p.params[name]
		if !ok {
			err := &UnknownSwitchError{Index: i, Switch: arg}
			p.diags = append(p.diags, err)
			if p.cfg.RequireKnownSwitches {
				fatal = append(fatal, err)
			}
			continue
		}

		var val *string
		if param.TakesValue() {
			if i+1 >= len(args) {
				p.diags = append(p.diags, &MissingValueError{Index: i, Switch: arg})
				continue
			}
			i++
			val = &args[i]
		} else if i+1 < len(args) && isDecimal(args[i+1]) {
			i++
			val = &args[i]
		}
		if err := param.Parse(val); err != nil {
			var ve *ValueError
			if errors.As(err, &ve) {
				ve.Index = i
			}
			p.diags = append(p.diags, err)
		}
	}
	if len(fatal) > 0 {
		return &ParseError{Errs: fatal}
	}
	return nil
}

func (p *Params) hasPrefix(arg string) bool {
	return arg != "" && strings.IndexByte(p.cfg.PrefixChars, arg[0]) >= 0
}

// isDecimal reports whether s is an optionally signed run of decimal digits.
func isDecimal(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
