// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime

import (
	"fmt"
	"time"

	"cloudeng.io/walltime/dates"
	"cloudeng.io/walltime/timespan"
)

// DaysInMonth returns the number of days in the given month of the given
// year. It returns 0 for a year outside of 1..9999 or a month outside of
// 1..12.
func DaysInMonth(year, month int) int {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return 0
	}
	return dates.DaysInMonth(year, dates.Month(month))
}

// IsLeapYear returns true if February of the given year has 29 days.
func IsLeapYear(year int) bool {
	return DaysInMonth(year, 2) == 29
}

func (dt DateTime) Year() int {
	return dt.naive().Year()
}

func (dt DateTime) Month() int {
	return int(dt.naive().Month())
}

func (dt DateTime) Day() int {
	return dt.naive().Day()
}

func (dt DateTime) Hour() int {
	return int(dt.ticks / timespan.TicksPerHour % 24)
}

func (dt DateTime) Minute() int {
	return int(dt.ticks / timespan.TicksPerMinute % 60)
}

func (dt DateTime) Second() int {
	return int(dt.ticks / timespan.TicksPerSecond % 60)
}

// Millisecond returns the millisecond within the second, 0..999.
func (dt DateTime) Millisecond() int {
	return int(dt.ticks / timespan.TicksPerMillisecond % 1000)
}

// Microsecond returns the microsecond within the millisecond, 0..999.
func (dt DateTime) Microsecond() int {
	return int(dt.ticks / timespan.TicksPerMicrosecond % 1000)
}

// Nanosecond returns the nanosecond within the microsecond, 0..900 in
// steps of 100.
func (dt DateTime) Nanosecond() int {
	return int(dt.ticks%timespan.TicksPerMicrosecond) * timespan.NanosecondsPerTick
}

// DayOfWeek returns the day of the week, time.Sunday is 0.
func (dt DateTime) DayOfWeek() time.Weekday {
	// 0001-01-01 was a Monday.
	return time.Weekday((dt.ticks/timespan.TicksPerDay + 1) % 7)
}

// DayOfYear returns the day of the year, 1..365 or 1..366 in leap years.
func (dt DateTime) DayOfYear() int {
	return dt.naive().YearDay()
}

// DayNumber returns the number of days since 0000-12-31, so that
// 0001-01-01 is day 1.
func (dt DateTime) DayNumber() int {
	return int(dt.ticks/timespan.TicksPerDay) + 1
}

// TimeOfDay returns the time elapsed since midnight.
func (dt DateTime) TimeOfDay() timespan.TimeSpan {
	return timespan.FromTicks(dt.ticks % timespan.TicksPerDay)
}

// Date returns midnight of the same day with the same Kind.
func (dt DateTime) Date() DateTime {
	return DateTime{ticks: dt.ticks - dt.ticks%timespan.TicksPerDay, kind: dt.kind}
}

// DateOnly returns the calendar date of dt.
func (dt DateTime) DateOnly() dates.CalendarDate {
	y, m, d := dt.naive().Date()
	return dates.CalendarDate{Year: y, Month: dates.Month(m), Day: d}
}

// TimeOnly returns the time of day of dt.
func (dt DateTime) TimeOnly() dates.TimeOfDay {
	return dates.TimeOfDay{
		Hour:       dt.Hour(),
		Minute:     dt.Minute(),
		Second:     dt.Second(),
		Nanosecond: int(dt.ticks%timespan.TicksPerSecond) * timespan.NanosecondsPerTick,
	}
}

// at most this many months can separate two representable dates.
const maxMonths = 9999 * 12

// AddMonths returns dt shifted by the specified number of calendar months.
// If the day of the month does not exist in the destination month it is
// clamped to the last day of that month, eg. Jan 31 + 1 month is Feb 28
// (or 29). The time of day and Kind are unchanged. An error wrapping
// ErrTicksOutOfRange is returned if the result is outside of years 1..9999.
func (dt DateTime) AddMonths(months int) (DateTime, error) {
	if months < -maxMonths || months > maxMonths {
		return DateTime{}, fmt.Errorf("%v + %d months: %w", dt, months, ErrTicksOutOfRange)
	}
	year, month, day := dt.naive().Date()
	total := year*12 + int(month) - 1 + months
	if total < 12 || total >= 10000*12 {
		return DateTime{}, fmt.Errorf("%v + %d months: %w", dt, months, ErrTicksOutOfRange)
	}
	year, nm := total/12, total%12+1
	day = min(day, DaysInMonth(year, nm))
	ticks := (dayNumber(year, nm, day)-1)*timespan.TicksPerDay + dt.ticks%timespan.TicksPerDay
	return DateTime{ticks: ticks, kind: dt.kind}, nil
}

// AddYears is AddMonths(years * 12).
func (dt DateTime) AddYears(years int) (DateTime, error) {
	if years < -9999 || years > 9999 {
		return DateTime{}, fmt.Errorf("%v + %d years: %w", dt, years, ErrTicksOutOfRange)
	}
	return dt.AddMonths(years * 12)
}

func (dt DateTime) addUnits(fn func(float64) (timespan.TimeSpan, error), value float64) (DateTime, error) {
	ts, err := fn(value)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %w", ErrTicksOutOfRange, err)
	}
	return dt.Add(ts)
}

// AddDays returns dt plus a possibly fractional number of fixed length,
// 24 hour, days.
func (dt DateTime) AddDays(days float64) (DateTime, error) {
	return dt.addUnits(timespan.FromDays, days)
}

func (dt DateTime) AddHours(hours float64) (DateTime, error) {
	return dt.addUnits(timespan.FromHours, hours)
}

func (dt DateTime) AddMinutes(minutes float64) (DateTime, error) {
	return dt.addUnits(timespan.FromMinutes, minutes)
}

func (dt DateTime) AddSeconds(seconds float64) (DateTime, error) {
	return dt.addUnits(timespan.FromSeconds, seconds)
}

func (dt DateTime) AddMilliseconds(milliseconds float64) (DateTime, error) {
	return dt.addUnits(timespan.FromMilliseconds, milliseconds)
}

func (dt DateTime) AddMicroseconds(microseconds float64) (DateTime, error) {
	return dt.addUnits(timespan.FromMicroseconds, microseconds)
}

func (dt DateTime) AddTicks(ticks int64) (DateTime, error) {
	return dt.Add(timespan.FromTicks(ticks))
}

// Add returns dt shifted by ts with the same Kind. An error wrapping
// ErrTicksOutOfRange is returned if the result is not representable.
func (dt DateTime) Add(ts timespan.TimeSpan) (DateTime, error) {
	d := ts.Ticks()
	if d > maxTicks-dt.ticks || d < -dt.ticks {
		return DateTime{}, fmt.Errorf("%v + %v: %w", dt, ts, ErrTicksOutOfRange)
	}
	return DateTime{ticks: dt.ticks + d, kind: dt.kind}, nil
}

// Subtract returns dt shifted back by ts with the same Kind.
func (dt DateTime) Subtract(ts timespan.TimeSpan) (DateTime, error) {
	neg, err := ts.Negate()
	if err != nil {
		return DateTime{}, fmt.Errorf("%v - %v: %w", dt, ts, ErrTicksOutOfRange)
	}
	return dt.Add(neg)
}
