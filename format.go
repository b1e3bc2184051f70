// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime

import (
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/walltime/timespan"
	"github.com/lestrrat-go/strftime"
)

// patternTokens are applied in order as literal replacements.
var patternTokens = []struct{ token, directive string }{
	{"yyyy", "%Y"},
	{"MM", "%m"},
	{"dd", "%d"},
	{"hh", "%H"},
	{"mm", "%M"},
	{"ss", "%S"},
	{"ffffff", "%f"},
	{"fff", "%L"},
}

var formatterOptions = []strftime.Option{
	strftime.WithMilliseconds('L'),
	strftime.WithMicroseconds('f'),
}

// formatters caches compiled layouts, keyed by the strftime layout.
var formatters sync.Map

// Format returns dt's naive instant formatted according to pattern.
// The only recognised tokens are yyyy (year), MM (month), dd (day),
// hh (hour, 00-23), mm (minute), ss (second), fff (milliseconds) and
// ffffff (microseconds); all other text is copied unchanged.
func (dt DateTime) Format(pattern string) string {
	for _, t := range patternTokens {
		pattern = strings.ReplaceAll(pattern, t.token, t.directive)
	}
	layout := strftimeLayout(pattern)
	if f, ok := formatters.Load(layout); ok {
		return f.(*strftime.Strftime).FormatString(dt.naive())
	}
	f, err := strftime.New(layout, formatterOptions...)
	if err != nil {
		// strftimeLayout escapes every directive that is not supported.
		return pattern
	}
	formatters.Store(layout, f)
	return f.FormatString(dt.naive())
}

// strftimeLayout escapes any % that does not introduce one of the
// directives generated from patternTokens, or %%, so that it is copied
// to the output unchanged.
func strftimeLayout(pattern string) string {
	if !strings.Contains(pattern, "%") {
		return pattern
	}
	var out strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			out.WriteByte(pattern[i])
			continue
		}
		if i+1 < len(pattern) && strings.IndexByte("YmdHMSfL%", pattern[i+1]) >= 0 {
			out.WriteString(pattern[i : i+2])
			i++
			continue
		}
		out.WriteString("%%")
	}
	return out.String()
}

// String returns the naive instant in the form 2006-01-02 15:04:05. A
// non-zero fraction of a second is written with 3, 6 or 9 digits, the
// fewest that represent it exactly.
func (dt DateTime) String() string {
	layout := "2006-01-02 15:04:05"
	switch frac := dt.ticks % timespan.TicksPerSecond; {
	case frac == 0:
	case frac%10_000 == 0:
		layout += ".000"
	case frac%10 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return dt.naive().Format(layout)
}

var parseProfiles = []struct {
	name  string
	parse func(string) (time.Time, error)
}{
	{"rfc3339", func(s string) (time.Time, error) { return time.Parse(time.RFC3339Nano, canonicalRFC3339(s)) }},
	{"rfc5322", mail.ParseDate},
}

// canonicalRFC3339 accepts a lower case t or a space as the date-time
// separator and a lower case z as the UTC designator.
func canonicalRFC3339(s string) string {
	if len(s) <= 10 {
		return s
	}
	if s[10] == 't' || s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	if s[len(s)-1] == 'z' {
		s = s[:len(s)-1] + "Z"
	}
	return s
}

// Parse parses an RFC 3339 (internet) or, failing that, an RFC 5322
// (email) date-time. The instant is converted to UTC and returned with
// Kind Unspecified. Failures are reported with an error wrapping
// ErrInvalidFormat.
func Parse(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	errs := &errors.M{}
	for _, p := range parseProfiles {
		t, err := p.parse(s)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", p.name, err))
			continue
		}
		ticks, ok := wallTicks(t.UTC())
		if !ok {
			return DateTime{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, ErrTicksOutOfRange)
		}
		return DateTime{ticks: ticks, kind: Unspecified}, nil
	}
	return DateTime{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, errs.Err())
}

// TryParse is like Parse but reports failure with a boolean.
func TryParse(s string) (DateTime, bool) {
	dt, err := Parse(s)
	return dt, err == nil
}
