// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramkit

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/paramkit/pkg/tui"
)

const (
	unsetPlaceholder = "<unset>"
	missingMarker    = "[MISSING]"
)

// SetColorizer sets the colorizer used by Info. Color is off by default.
func (p *Params) SetColorizer(c tui.Colorizer) {
	p.color = c
}

func (p *Params) switchName(name string) string {
	return p.cfg.PrefixChars[:1] + name
}

// Info writes the help listing: a Required section and an Optional section,
// one row per parameter with its switch, type, current value and
// description. With highlightMissing, required parameters that are not set
// are colored and marked.
func (p *Params) Info(w io.Writer, highlightMissing bool) error {
	var required, optional []string
	for _, name := range p.Names() {
		if p.params[name].Required() {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}

	var b strings.Builder
	if len(required) > 0 {
		b.WriteString(p.color.Wrap(tui.ColorYellow, "Required:") + "\n")
		b.WriteString(p.section(required, highlightMissing))
	}
	if len(optional) > 0 {
		b.WriteString(p.color.Wrap(tui.ColorYellow, "Optional:") + "\n")
		b.WriteString(p.section(optional, false))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// section renders aligned rows for names, one output line per name. Color
// is applied after alignment so escape sequences don't skew the column
// widths.
func (p *Params) section(names []string, highlightMissing bool) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, name := range names {
		param := p.params[name]
		val := unsetPlaceholder
		if param.IsSet() {
			val = oneLine(param.ValueString())
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", oneLine(p.switchName(name)), param.Type(), val, oneLine(param.Info()))
	}
	tw.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		param := p.params[names[i]]
		switch {
		case param.IsSet():
		case highlightMissing:
			line = p.color.Wrap(tui.ColorRed, line) + " " + missingMarker
		default:
			line = p.color.Wrap(tui.ColorDim, line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Print writes the switch and value of every set parameter.
func (p *Params) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range p.Names() {
		param := p.params[name]
		if !param.IsSet() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", oneLine(p.switchName(name)), oneLine(param.ValueString()))
	}
	return tw.Flush()
}

var cellReplacer = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ", "\v", " ", "\f", " ")

// oneLine keeps a cell on a single output line and in a single column.
func oneLine(s string) string {
	return cellReplacer.Replace(s)
}
