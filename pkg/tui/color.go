// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	ColorRed    = color.New(color.FgRed, color.Bold)
	ColorYellow = color.New(color.FgYellow)
	ColorDim    = color.New(color.FgHiBlack)
)

// Colorizer wraps text in color escapes when Enabled. The zero value leaves
// text untouched.
type Colorizer struct {
	Enabled bool
}

func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// AutoColorizer enables color when f is a terminal.
func AutoColorizer(f *os.File) Colorizer {
	return NewColorizer(term.IsTerminal(int(f.Fd())))
}

func (c Colorizer) Wrap(col *color.Color, text string) string {
	if !c.Enabled || col == nil {
		return text
	}
	// fatih/color disables itself when stdout is not a tty; the caller has
	// already decided.
	styled := *col
	styled.EnableColor()
	return styled.Sprint(text)
}
