// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cloudeng.io/walltime"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// palette highlights output when it is written to a terminal.
type palette struct {
	label func(string, ...any) string
	value func(string, ...any) string
	kinds map[walltime.Kind]func(string, ...any) string
	order map[int]func(string, ...any) string
}

func plainPalette() palette {
	return palette{
		label: fmt.Sprintf,
		value: fmt.Sprintf,
		kinds: map[walltime.Kind]func(string, ...any) string{},
		order: map[int]func(string, ...any) string{},
	}
}

func newPalette(w io.Writer) palette {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return plainPalette()
	}
	return palette{
		label: color.RGB(128, 128, 128).SprintfFunc(),
		value: color.New(color.Bold).SprintfFunc(),
		kinds: map[walltime.Kind]func(string, ...any) string{
			walltime.Unspecified: color.YellowString,
			walltime.UTC:         color.CyanString,
			walltime.Local:       color.GreenString,
		},
		order: map[int]func(string, ...any) string{
			-1: color.BlueString,
			0:  color.GreenString,
			1:  color.MagentaString,
		},
	}
}

func (p palette) kind(k walltime.Kind) string {
	if fn, ok := p.kinds[k]; ok {
		return fn("%v", k)
	}
	return k.String()
}

func (p palette) compare(c int) string {
	s := [...]string{"before", "equal", "after"}[c+1]
	if fn, ok := p.order[c]; ok {
		return fn("%s", s)
	}
	return s
}

// writeDateTime writes a labelled date-time and its kind, formatted with
// pattern if it is not empty.
func (e *env) writeDateTime(label string, dt walltime.DateTime, pattern string) {
	var s string
	if len(pattern) > 0 {
		s = dt.Format(pattern)
	} else {
		s = dt.String()
	}
	fmt.Fprintf(e.out, "%s %s (%s)\n", e.colors.label("%s:", label), e.colors.value("%s", s), e.colors.kind(dt.Kind()))
}

func (e *env) writeField(label string, value any) {
	fmt.Fprintf(e.out, "%s %s\n", e.colors.label("%s:", label), e.colors.value("%v", value))
}
