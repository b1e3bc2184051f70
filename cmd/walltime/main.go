// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command walltime parses, formats, converts and performs calendar and
// duration arithmetic on date-times.
//
// Date-time arguments may be RFC 3339 or RFC 5322 date-times, naive
// dates or date-times such as 2024-02-29 or 2024-02-29T10:15:30, or one
// of now, utcnow, today, min, max, epoch and ref (the reference date-time
// from the configuration file).
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: walltime
summary: inspect, convert and perform arithmetic on calendar date-times
commands:
  - name: now
    summary: print the current local and UTC date-times
  - name: today
    summary: print midnight of the current date
  - name: parse
    summary: parse and print date-times along with their kind
    arguments:
      - <date-time>
      - ...
  - name: format
    summary: format date-times using a pattern made up of yyyy, MM, dd, hh, mm, ss, fff and ffffff
    arguments:
      - <date-time>
      - ...
  - name: convert
    summary: convert date-times to UTC or to local time
    arguments:
      - <date-time>
      - ...
  - name: kind
    summary: reinterpret a date-time as being of the specified kind without converting it
    arguments:
      - <date-time>
      - <kind>
  - name: add
    summary: add calendar years and months followed by ISO 8601 durations, eg. P1DT2H or -PT30M, to a date-time
    arguments:
      - <date-time>
      - ...
  - name: diff
    summary: print the exact difference between two date-times
    arguments:
      - <date-time>
      - <date-time>
  - name: compare
    summary: compare two date-times
    arguments:
      - <date-time>
      - <date-time>
  - name: ticks
    summary: convert tick counts to date-times and date-times to tick counts
    arguments:
      - <ticks-or-date-time>
      - ...
  - name: calendar
    summary: print calendar information for date-times
    arguments:
      - <date-time>
      - ...
`

var cmdSet = subcmd.MustFromYAML(commands)

func init() {
	cmdSet.Set("now").MustRunner(nowCmd, &CommonFlags{})
	cmdSet.Set("today").MustRunner(todayCmd, &CommonFlags{})
	cmdSet.Set("parse").MustRunner(parseCmd, &CommonFlags{})
	cmdSet.Set("format").MustRunner(formatCmd, &FormatFlags{})
	cmdSet.Set("convert").MustRunner(convertCmd, &ConvertFlags{})
	cmdSet.Set("kind").MustRunner(kindCmd, &CommonFlags{})
	cmdSet.Set("add").MustRunner(addCmd, &AddFlags{})
	cmdSet.Set("diff").MustRunner(diffCmd, &CommonFlags{})
	cmdSet.Set("compare").MustRunner(compareCmd, &CommonFlags{})
	cmdSet.Set("ticks").MustRunner(ticksCmd, &CommonFlags{})
	cmdSet.Set("calendar").MustRunner(calendarCmd, &CommonFlags{})
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
