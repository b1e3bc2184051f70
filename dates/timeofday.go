// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TimeOfDay represents a time of day with 100 nanosecond precision.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewTimeOfDay returns a TimeOfDay after checking that each field is in range.
// Nanoseconds are truncated to a multiple of 100.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond - nanosecond%100}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Validate returns an error if any field of t is out of range.
func (t TimeOfDay) Validate() error {
	switch {
	case t.Hour < 0 || t.Hour > 23:
		return fmt.Errorf("invalid hour: %d", t.Hour)
	case t.Minute < 0 || t.Minute > 59:
		return fmt.Errorf("invalid minute: %d", t.Minute)
	case t.Second < 0 || t.Second > 59:
		return fmt.Errorf("invalid second: %d", t.Second)
	case t.Nanosecond < 0 || t.Nanosecond > 999_999_999:
		return fmt.Errorf("invalid nanosecond: %d", t.Nanosecond)
	}
	return nil
}

// Ticks returns the number of 100 nanosecond ticks since midnight.
func (t TimeOfDay) Ticks() int64 {
	secs := int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
	return secs*10_000_000 + int64(t.Nanosecond)/100
}

func (t TimeOfDay) String() string {
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%07d", t.Hour, t.Minute, t.Second, t.Nanosecond/100)
}

func parseField(val, name string, limit int) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 || n > limit {
		return 0, fmt.Errorf("invalid %s: %s", name, val)
	}
	return n, nil
}

func parseFraction(val string) (int, error) {
	if len(val) == 0 || len(val) > 9 {
		return 0, fmt.Errorf("invalid fractional second: %s", val)
	}
	n, err := strconv.Atoi(val + strings.Repeat("0", 9-len(val)))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid fractional second: %s", val)
	}
	return n - n%100, nil
}

// Parse val in formats '08:12[:10[.1234567]]'.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08:12[:10[.fffffff]]'")
	}
	parts := strings.Split(strings.TrimSpace(val), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid format, expected '08:12[:10[.fffffff]]'")
	}
	var (
		nt  TimeOfDay
		err error
	)
	if nt.Hour, err = parseField(parts[0], "hour", 23); err != nil {
		return err
	}
	if nt.Minute, err = parseField(parts[1], "minute", 59); err != nil {
		return err
	}
	if len(parts) == 3 {
		sec, frac, hasFrac := strings.Cut(parts[2], ".")
		if nt.Second, err = parseField(sec, "second", 59); err != nil {
			return err
		}
		if hasFrac {
			if nt.Nanosecond, err = parseFraction(frac); err != nil {
				return err
			}
		}
	}
	*t = nt
	return nil
}

func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	return t.Parse(node.Value)
}

// Before returns true if t is before t2.
func (t TimeOfDay) Before(t2 TimeOfDay) bool {
	return t.Ticks() < t2.Ticks()
}
