// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timespan provides TimeSpan, a signed, fixed length interval
// measured in 100 nanosecond ticks. It is the unit of arithmetic for
// walltime.DateTime values.
package timespan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/cockroachdb/apd/v3"
)

// Tick counts for each of the fixed length units.
const (
	NanosecondsPerTick        = 100
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond       = TicksPerMicrosecond * 1000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24
)

// TimeSpan is an exact, signed number of 100 nanosecond ticks.
type TimeSpan int64

const (
	Zero     TimeSpan = 0
	MinValue TimeSpan = math.MinInt64
	MaxValue TimeSpan = math.MaxInt64
)

// ErrOverflow is returned when a value cannot be represented as a
// TimeSpan.
var ErrOverflow = errors.New("timespan overflow")

// decimalContext is used for converting floating point unit counts to ticks.
// The precision is ample for any float64 that yields an in-range tick count;
// anything larger fails to quantize and is reported as an overflow.
var decimalContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(40)
	c.Rounding = apd.RoundHalfUp
	return c
}()

// FromTicks returns the TimeSpan for the specified number of ticks.
func FromTicks(ticks int64) TimeSpan {
	return TimeSpan(ticks)
}

func fromUnits(value float64, unit int64) (TimeSpan, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%v: %w", value, ErrOverflow)
	}
	var v, ticks, rounded apd.Decimal
	if _, err := v.SetFloat64(value); err != nil {
		return 0, fmt.Errorf("%v: %w", value, err)
	}
	if _, err := decimalContext.Mul(&ticks, &v, apd.New(unit, 0)); err != nil {
		return 0, fmt.Errorf("%v: %w", value, ErrOverflow)
	}
	if _, err := decimalContext.Quantize(&rounded, &ticks, 0); err != nil {
		return 0, fmt.Errorf("%v: %w", value, ErrOverflow)
	}
	n, err := rounded.Int64()
	if err != nil {
		return 0, fmt.Errorf("%v: %w", value, ErrOverflow)
	}
	return TimeSpan(n), nil
}

// FromDays returns the TimeSpan for a possibly fractional number of days.
// The value is converted to the exact decimal value of its shortest
// representation and rounded half away from zero to the nearest tick.
func FromDays(days float64) (TimeSpan, error) {
	return fromUnits(days, TicksPerDay)
}

// FromHours is like FromDays for hours.
func FromHours(hours float64) (TimeSpan, error) {
	return fromUnits(hours, TicksPerHour)
}

// FromMinutes is like FromDays for minutes.
func FromMinutes(minutes float64) (TimeSpan, error) {
	return fromUnits(minutes, TicksPerMinute)
}

// FromSeconds is like FromDays for seconds.
func FromSeconds(seconds float64) (TimeSpan, error) {
	return fromUnits(seconds, TicksPerSecond)
}

// FromMilliseconds is like FromDays for milliseconds.
func FromMilliseconds(milliseconds float64) (TimeSpan, error) {
	return fromUnits(milliseconds, TicksPerMillisecond)
}

// FromMicroseconds is like FromDays for microseconds.
func FromMicroseconds(microseconds float64) (TimeSpan, error) {
	return fromUnits(microseconds, TicksPerMicrosecond)
}

func mulAdd(acc, n, unit int64) (int64, bool) {
	if n != 0 && (n > math.MaxInt64/unit || n < math.MinInt64/unit) {
		return 0, false
	}
	return addTicks(acc, n*unit)
}

func addTicks(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// FromComponents returns the TimeSpan for the sum of the specified
// components, any of which may be negative.
func FromComponents(days, hours, minutes, seconds, milliseconds int64) (TimeSpan, error) {
	var ticks int64
	ok := true
	for _, c := range []struct{ n, unit int64 }{
		{days, TicksPerDay},
		{hours, TicksPerHour},
		{minutes, TicksPerMinute},
		{seconds, TicksPerSecond},
		{milliseconds, TicksPerMillisecond},
	} {
		if ticks, ok = mulAdd(ticks, c.n, c.unit); !ok {
			return 0, fmt.Errorf("%d.%02d:%02d:%02d.%03d: %w", days, hours, minutes, seconds, milliseconds, ErrOverflow)
		}
	}
	return TimeSpan(ticks), nil
}

// FromDuration returns the TimeSpan for d truncated to whole ticks.
func FromDuration(d time.Duration) TimeSpan {
	return TimeSpan(int64(d) / NanosecondsPerTick)
}

// Ticks returns the number of ticks in ts.
func (ts TimeSpan) Ticks() int64 {
	return int64(ts)
}

// Add returns ts+o.
func (ts TimeSpan) Add(o TimeSpan) (TimeSpan, error) {
	s, ok := addTicks(int64(ts), int64(o))
	if !ok {
		return 0, fmt.Errorf("%v + %v: %w", ts, o, ErrOverflow)
	}
	return TimeSpan(s), nil
}

// Subtract returns ts-o.
func (ts TimeSpan) Subtract(o TimeSpan) (TimeSpan, error) {
	if o == MinValue {
		return 0, fmt.Errorf("%v - %v: %w", ts, o, ErrOverflow)
	}
	return ts.Add(-o)
}

// Negate returns -ts.
func (ts TimeSpan) Negate() (TimeSpan, error) {
	if ts == MinValue {
		return 0, fmt.Errorf("-(%v): %w", ts, ErrOverflow)
	}
	return -ts, nil
}

// Days returns the whole days component of ts.
func (ts TimeSpan) Days() int {
	return int(int64(ts) / TicksPerDay)
}

// Hours returns the hours component of ts, in the range -23..23.
func (ts TimeSpan) Hours() int {
	return int(int64(ts) / TicksPerHour % 24)
}

// Minutes returns the minutes component of ts, in the range -59..59.
func (ts TimeSpan) Minutes() int {
	return int(int64(ts) / TicksPerMinute % 60)
}

// Seconds returns the seconds component of ts, in the range -59..59.
func (ts TimeSpan) Seconds() int {
	return int(int64(ts) / TicksPerSecond % 60)
}

// Milliseconds returns the milliseconds component of ts, in the range -999..999.
func (ts TimeSpan) Milliseconds() int {
	return int(int64(ts) / TicksPerMillisecond % 1000)
}

// TotalDays returns ts expressed in whole and fractional days.
func (ts TimeSpan) TotalDays() float64 {
	return float64(ts) / float64(TicksPerDay)
}

// TotalHours returns ts expressed in whole and fractional hours.
func (ts TimeSpan) TotalHours() float64 {
	return float64(ts) / float64(TicksPerHour)
}

// TotalSeconds returns ts expressed in whole and fractional seconds.
func (ts TimeSpan) TotalSeconds() float64 {
	return float64(ts) / float64(TicksPerSecond)
}

// Duration returns ts as a time.Duration, saturating at the limits of
// time.Duration.
func (ts TimeSpan) Duration() time.Duration {
	switch {
	case int64(ts) > math.MaxInt64/NanosecondsPerTick:
		return time.Duration(math.MaxInt64)
	case int64(ts) < math.MinInt64/NanosecondsPerTick:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(int64(ts) * NanosecondsPerTick)
}

// String returns ts in the form [-][d.]hh:mm:ss[.fffffff].
func (ts TimeSpan) String() string {
	var out strings.Builder
	t := uint64(ts)
	if ts < 0 {
		out.WriteByte('-')
		t = -t
	}
	tpd := uint64(TicksPerDay)
	if days := t / tpd; days > 0 {
		fmt.Fprintf(&out, "%d.", days)
	}
	t %= tpd
	fmt.Fprintf(&out, "%02d:%02d:%02d",
		t/uint64(TicksPerHour),
		t/uint64(TicksPerMinute)%60,
		t/uint64(TicksPerSecond)%60)
	if frac := t % uint64(TicksPerSecond); frac != 0 {
		fmt.Fprintf(&out, ".%07d", frac)
	}
	return out.String()
}
