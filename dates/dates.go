// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides the date only and time of day values from which
// a walltime.DateTime can be assembled and into which it can be decomposed.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

// DaysInMonth returns the number of days in the given month for the given
// year, that is the distance in days between the first of month and the
// first of the following month.
func DaysInMonth(year int, month Month) int {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return int(start.AddDate(0, 1, 0).Sub(start) / (24 * time.Hour))
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return DaysInMonth(year, Month(time.February)) == 29
}

// Month as an int.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// CalendarDate represents a date with a year, month and day, with years
// in the range 1 to 9999.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate after checking that it refers to
// a real date.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	cd := CalendarDate{Year: year, Month: month, Day: day}
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// Validate returns an error if cd does not refer to a real date.
func (cd CalendarDate) Validate() error {
	if cd.Year < 1 || cd.Year > 9999 {
		return fmt.Errorf("invalid year: %d", cd.Year)
	}
	if cd.Month < 1 || cd.Month > 12 {
		return fmt.Errorf("invalid month: %d", cd.Month)
	}
	if cd.Day < 1 || cd.Day > DaysInMonth(cd.Year, cd.Month) {
		return fmt.Errorf("invalid day for %v %v: %d", cd.Month, cd.Year, cd.Day)
	}
	return nil
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Parse parses a date in the form '2024-02-29' or '2024-Feb-29'.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(strings.TrimSpace(val), "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format '2024-02-29'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	nd, err := NewCalendarDate(year, month, day)
	if err != nil {
		return err
	}
	*cd = nd
	return nil
}

func (cd *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	return cd.Parse(node.Value)
}
