// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timespan

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Calendar units are approximated as fixed lengths: a year is 365 days
// and a month is a twelfth of that.
var designatorTicks = map[string]int64{
	"PY": TicksPerDay * 365,
	"PM": (TicksPerDay * 365) / 12,
	"PW": TicksPerDay * 7,
	"PD": TicksPerDay,
	"TH": TicksPerHour,
	"TM": TicksPerMinute,
	"TS": TicksPerSecond,
}

var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (float64, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseFloat(dur[:i], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601 parses a duration string in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS. Fractional values are converted to ticks
// exactly as per FromDays etc.
func ParseISO8601(dur string) (TimeSpan, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return 0, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	var result TimeSpan
	section := byte('P')
	for len(dur) > 0 {
		if dur[0] == 'T' {
			section = 'T'
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return 0, err
		}
		dur = dur[idx:]
		unit, ok := designatorTicks[string([]byte{section, designator})]
		if !ok {
			return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
		}
		ts, err := fromUnits(n, unit)
		if err != nil {
			return 0, err
		}
		if result, err = result.Add(ts); err != nil {
			return 0, err
		}
	}
	if hasNP {
		return result.Negate()
	}
	return result, nil
}

// ISO8601 returns ts formatted as an ISO8601 duration using days,
// hours, minutes and seconds, the inverse of ParseISO8601 for values
// without year, month or week designators.
func (ts TimeSpan) ISO8601() string {
	var out strings.Builder
	t := uint64(ts)
	if ts < 0 {
		out.WriteByte('-')
		t = -t
	}
	out.WriteByte('P')
	if days := t / uint64(TicksPerDay); days > 0 {
		fmt.Fprintf(&out, "%dD", days)
	}
	t %= uint64(TicksPerDay)
	if t == 0 {
		if ts == 0 {
			out.WriteString("T0S")
		}
		return out.String()
	}
	out.WriteByte('T')
	if h := t / uint64(TicksPerHour); h > 0 {
		fmt.Fprintf(&out, "%dH", h)
	}
	if m := t / uint64(TicksPerMinute) % 60; m > 0 {
		fmt.Fprintf(&out, "%dM", m)
	}
	secs, frac := t/uint64(TicksPerSecond)%60, t%uint64(TicksPerSecond)
	switch {
	case frac != 0:
		fs := strings.TrimRight(fmt.Sprintf("%07d", frac), "0")
		fmt.Fprintf(&out, "%d.%sS", secs, fs)
	case secs > 0:
		fmt.Fprintf(&out, "%dS", secs)
	}
	return out.String()
}
