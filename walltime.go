// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package walltime provides DateTime, a naive, zone-less, calendar
// timestamp with 100 nanosecond tick precision that is tagged with a Kind
// of Unspecified, UTC or Local.
//
// Calendar arithmetic (AddMonths, AddYears) clamps the day of the month,
// duration arithmetic (Add, AddDays etc) adds a fixed number of ticks.
// Comparison and subtraction first resolve each value to an absolute
// instant: UTC and Unspecified values are taken to be UTC, Local values
// are adjusted by the offset reported by hostclock.Default for that
// naive instant. Consequently, an Unspecified and a UTC value with the
// same fields are always equal whereas a Local one is not unless the
// local offset is zero.
//
// DateTime values are immutable and safe for concurrent use.
package walltime

import (
	"fmt"
	"time"

	"cloudeng.io/walltime/dates"
	"cloudeng.io/walltime/hostclock"
	"cloudeng.io/walltime/timespan"
)

const (
	daysTo10000      = 3_652_059
	maxTicks         = daysTo10000*timespan.TicksPerDay - 1
	unixEpochTicks   = 719_162 * timespan.TicksPerDay
	unixEpochSeconds = unixEpochTicks / timespan.TicksPerSecond
)

// DateTime represents a naive calendar timestamp, in the range
// 0001-01-01T00:00:00 to 9999-12-31T23:59:59.9999999, and a Kind.
// The zero value is 0001-01-01T00:00:00 with Kind Unspecified.
//
// DateTime values should be compared using Equal or Compare rather than ==
// since the latter does not take the Kind into account.
type DateTime struct {
	ticks int64 // naive ticks since 0001-01-01T00:00:00
	kind  Kind
}

func fromTicks(ticks int64, kind Kind) (DateTime, error) {
	if ticks < 0 || ticks > maxTicks {
		return DateTime{}, fmt.Errorf("%d: %w", ticks, ErrTicksOutOfRange)
	}
	return DateTime{ticks: ticks, kind: kind}, nil
}

// FromTicks returns the DateTime that is the specified number of ticks
// after 0001-01-01T00:00:00. The Kind is Unspecified.
func FromTicks(ticks int64) (DateTime, error) {
	return fromTicks(ticks, Unspecified)
}

// dayNumber returns the number of days since 0000-12-31 in the proleptic
// Gregorian calendar, ie. 0001-01-01 is day 1. It does not validate its
// arguments, which are normalized as per time.Date.
func dayNumber(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix()/86400 + unixEpochSeconds/86400 + 1
}

func validate(year, month, day, hour, minute, second, millisecond, microsecond int) error {
	switch {
	case year < 1 || year > 9999:
		return fmt.Errorf("year %d not in 1..9999", year)
	case month < 1 || month > 12:
		return fmt.Errorf("month %d not in 1..12", month)
	case day < 1 || day > DaysInMonth(year, month):
		return fmt.Errorf("day %d not in 1..%d for %04d-%02d", day, DaysInMonth(year, month), year, month)
	case hour < 0 || hour > 23:
		return fmt.Errorf("hour %d not in 0..23", hour)
	case minute < 0 || minute > 59:
		return fmt.Errorf("minute %d not in 0..59", minute)
	case second < 0 || second > 59:
		return fmt.Errorf("second %d not in 0..59", second)
	case millisecond < 0 || millisecond > 999:
		return fmt.Errorf("millisecond %d not in 0..999", millisecond)
	case microsecond < 0 || microsecond > 999:
		return fmt.Errorf("microsecond %d not in 0..999", microsecond)
	}
	return nil
}

// NewMicro returns a new DateTime for the specified fields and Kind.
// An error wrapping ErrInvalidCalendarDate is returned if the fields do
// not name a real date and time and one wrapping ErrUnsupportedKind if
// kind is not one of the defined values.
func NewMicro(year, month, day, hour, minute, second, millisecond, microsecond int, kind Kind) (DateTime, error) {
	if !kind.valid() {
		return DateTime{}, fmt.Errorf("%v: %w", kind, ErrUnsupportedKind)
	}
	if err := validate(year, month, day, hour, minute, second, millisecond, microsecond); err != nil {
		return DateTime{}, fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}
	ticks := (dayNumber(year, month, day)-1)*timespan.TicksPerDay +
		int64(hour)*timespan.TicksPerHour +
		int64(minute)*timespan.TicksPerMinute +
		int64(second)*timespan.TicksPerSecond +
		int64(millisecond)*timespan.TicksPerMillisecond +
		int64(microsecond)*timespan.TicksPerMicrosecond
	return DateTime{ticks: ticks, kind: kind}, nil
}

// NewMilli is like NewMicro without microseconds.
func NewMilli(year, month, day, hour, minute, second, millisecond int, kind Kind) (DateTime, error) {
	return NewMicro(year, month, day, hour, minute, second, millisecond, 0, kind)
}

// NewWithKind is like NewMicro without milliseconds or microseconds.
func NewWithKind(year, month, day, hour, minute, second int, kind Kind) (DateTime, error) {
	return NewMicro(year, month, day, hour, minute, second, 0, 0, kind)
}

// NewDateTime returns an Unspecified DateTime for the specified date and time.
func NewDateTime(year, month, day, hour, minute, second int) (DateTime, error) {
	return NewMicro(year, month, day, hour, minute, second, 0, 0, Unspecified)
}

// NewDate returns an Unspecified DateTime for midnight on the specified date.
func NewDate(year, month, day int) (DateTime, error) {
	return NewMicro(year, month, day, 0, 0, 0, 0, 0, Unspecified)
}

// FromDateAndTime returns the DateTime for the date d at the time of day t.
func FromDateAndTime(d dates.CalendarDate, t dates.TimeOfDay, kind Kind) (DateTime, error) {
	if !kind.valid() {
		return DateTime{}, fmt.Errorf("%v: %w", kind, ErrUnsupportedKind)
	}
	if err := d.Validate(); err != nil {
		return DateTime{}, fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}
	if err := t.Validate(); err != nil {
		return DateTime{}, fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}
	ticks := (dayNumber(d.Year, int(d.Month), d.Day)-1)*timespan.TicksPerDay + t.Ticks()
	return DateTime{ticks: ticks, kind: kind}, nil
}

// wallTicks returns the ticks for the wall clock fields of t, ignoring
// its location.
func wallTicks(t time.Time) (int64, bool) {
	_, offset := t.Zone()
	secs := t.Unix() + int64(offset) + unixEpochSeconds
	if secs < 0 || secs > maxTicks/timespan.TicksPerSecond {
		return 0, false
	}
	return secs*timespan.TicksPerSecond + int64(t.Nanosecond())/timespan.NanosecondsPerTick, true
}

func clampedWallTicks(t time.Time) int64 {
	if ticks, ok := wallTicks(t); ok {
		return ticks
	}
	if t.Year() < 1 {
		return 0
	}
	return maxTicks
}

// FromTime returns a DateTime with the wall clock fields of t, truncated
// to a whole tick, and the specified Kind. The location of t is ignored.
func FromTime(t time.Time, kind Kind) (DateTime, error) {
	if !kind.valid() {
		return DateTime{}, fmt.Errorf("%v: %w", kind, ErrUnsupportedKind)
	}
	ticks, ok := wallTicks(t)
	if !ok {
		return DateTime{}, fmt.Errorf("%v: %w", t, ErrTicksOutOfRange)
	}
	return DateTime{ticks: ticks, kind: kind}, nil
}

// Now returns the current local time as reported by hostclock.Default,
// with Kind Local.
func Now() DateTime {
	c := hostclock.Default()
	return DateTime{ticks: clampedWallTicks(c.LocalFromUTC(c.UTCNow())), kind: Local}
}

// UTCNow returns the current time in UTC, with Kind UTC.
func UTCNow() DateTime {
	return DateTime{ticks: clampedWallTicks(hostclock.Default().UTCNow().UTC()), kind: UTC}
}

// Today returns midnight of the current UTC date. Its Kind is Local.
func Today() DateTime {
	now := UTCNow()
	return DateTime{ticks: now.ticks - now.ticks%timespan.TicksPerDay, kind: Local}
}

// MinValue returns 0001-01-01T00:00:00 with Kind UTC.
func MinValue() DateTime {
	return DateTime{ticks: 0, kind: UTC}
}

// MaxValue returns 9999-12-31T23:59:59.9999999 with Kind UTC.
func MaxValue() DateTime {
	return DateTime{ticks: maxTicks, kind: UTC}
}

// UnixEpoch returns 1970-01-01T00:00:00 with Kind UTC.
func UnixEpoch() DateTime {
	return DateTime{ticks: unixEpochTicks, kind: UTC}
}

// Kind returns the Kind of dt.
func (dt DateTime) Kind() Kind {
	return dt.kind
}

// IsZero returns true if dt is the zero value.
func (dt DateTime) IsZero() bool {
	return dt == DateTime{}
}

// naive returns the naive instant as a time.Time in time.UTC.
func (dt DateTime) naive() time.Time {
	secs := dt.ticks / timespan.TicksPerSecond
	frac := dt.ticks % timespan.TicksPerSecond
	return time.Unix(secs-unixEpochSeconds, frac*timespan.NanosecondsPerTick).UTC()
}
