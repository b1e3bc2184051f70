// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/walltime"
	"cloudeng.io/walltime/dates"
	"cloudeng.io/walltime/hostclock"
	"cloudeng.io/walltime/timespan"
)

func run(ctx context.Context, fv *CommonFlags, fn func(context.Context, *env) error) error {
	ctx, e, cleanup, err := newEnv(ctx, fv)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, e)
}

// forEach calls fn for every argument, all failures are logged and
// returned together.
func forEach(ctx context.Context, args []string, fn func(arg string) error) error {
	errs := &errors.M{}
	for _, arg := range args {
		if err := fn(arg); err != nil {
			ctxlog.Logger(ctx).Warn("argument failed", "arg", arg, "error", err)
			errs.Append(fmt.Errorf("%v: %w", arg, err))
		}
	}
	return errs.Err()
}

func (e *env) forEachDateTime(ctx context.Context, args []string, fn func(arg string, dt walltime.DateTime) error) error {
	return forEach(ctx, args, func(arg string) error {
		dt, err := e.dateTime(arg)
		if err != nil {
			return err
		}
		return fn(arg, dt)
	})
}

func (e *env) dateTimePair(a, b string) (walltime.DateTime, walltime.DateTime, error) {
	x, err := e.dateTime(a)
	if err != nil {
		return x, x, fmt.Errorf("%v: %w", a, err)
	}
	y, err := e.dateTime(b)
	if err != nil {
		return x, y, fmt.Errorf("%v: %w", b, err)
	}
	return x, y, nil
}

func nowCmd(ctx context.Context, values any, _ []string) error {
	return run(ctx, values.(*CommonFlags), func(ctx context.Context, e *env) error {
		e.writeDateTime("local", walltime.Now(), "")
		e.writeDateTime("utc", walltime.UTCNow(), "")
		e.writeField("zone", hostclock.FromContext(ctx))
		return nil
	})
}

func todayCmd(ctx context.Context, values any, _ []string) error {
	return run(ctx, values.(*CommonFlags), func(_ context.Context, e *env) error {
		e.writeDateTime("today", walltime.Today(), "")
		return nil
	})
}

func parseCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(ctx context.Context, e *env) error {
		return e.forEachDateTime(ctx, args, func(arg string, dt walltime.DateTime) error {
			e.writeDateTime(arg, dt, "")
			return nil
		})
	})
}

func formatCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*FormatFlags)
	return run(ctx, &fv.CommonFlags, func(ctx context.Context, e *env) error {
		pattern := e.pattern
		if len(fv.Pattern) > 0 {
			pattern = fv.Pattern
		}
		return e.forEachDateTime(ctx, args, func(arg string, dt walltime.DateTime) error {
			e.writeField(arg, dt.Format(pattern))
			return nil
		})
	})
}

func convertCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*ConvertFlags)
	var convert func(walltime.DateTime) walltime.DateTime
	switch strings.ToLower(fv.To) {
	case "utc":
		convert = walltime.DateTime.ToUniversalTime
	case "local":
		convert = walltime.DateTime.ToLocalTime
	default:
		return fmt.Errorf("unsupported conversion %q: use utc or local", fv.To)
	}
	return run(ctx, &fv.CommonFlags, func(ctx context.Context, e *env) error {
		return e.forEachDateTime(ctx, args, func(arg string, dt walltime.DateTime) error {
			e.writeDateTime(arg, convert(dt), "")
			return nil
		})
	})
}

func kindCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(_ context.Context, e *env) error {
		dt, err := e.dateTime(args[0])
		if err != nil {
			return err
		}
		kind, err := walltime.ParseKind(args[1])
		if err != nil {
			return err
		}
		if dt, err = walltime.SpecifyKind(dt, kind); err != nil {
			return err
		}
		e.writeDateTime(args[0], dt, "")
		e.writeField("instant", dt.Time().Format(time.RFC3339Nano))
		return nil
	})
}

func addCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*AddFlags)
	return run(ctx, &fv.CommonFlags, func(ctx context.Context, e *env) error {
		dt, err := e.dateTime(args[0])
		if err != nil {
			return err
		}
		if fv.Years != 0 {
			if dt, err = dt.AddYears(fv.Years); err != nil {
				return err
			}
		}
		if fv.Months != 0 {
			if dt, err = dt.AddMonths(fv.Months); err != nil {
				return err
			}
		}
		for _, arg := range args[1:] {
			ts, err := timespan.ParseISO8601(arg)
			if err != nil {
				return err
			}
			if dt, err = dt.Add(ts); err != nil {
				return err
			}
			ctxlog.Logger(ctx).Debug("added", "duration", ts, "result", dt)
		}
		e.writeDateTime("result", dt, "")
		return nil
	})
}

func diffCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(_ context.Context, e *env) error {
		x, y, err := e.dateTimePair(args[0], args[1])
		if err != nil {
			return err
		}
		d := x.Sub(y)
		e.writeField("difference", d)
		e.writeField("iso8601", d.ISO8601())
		e.writeField("total-hours", strconv.FormatFloat(d.TotalHours(), 'f', -1, 64))
		return nil
	})
}

func compareCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(_ context.Context, e *env) error {
		x, y, err := e.dateTimePair(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "%s %s %s\n", args[0], e.colors.compare(walltime.Compare(x, y)), args[1])
		return nil
	})
}

func ticksCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(ctx context.Context, e *env) error {
		return forEach(ctx, args, func(arg string) error {
			if ticks, err := strconv.ParseInt(arg, 10, 64); err == nil {
				dt, err := walltime.FromTicks(ticks)
				if err != nil {
					return err
				}
				e.writeDateTime(arg, dt, "")
				return nil
			}
			dt, err := e.dateTime(arg)
			if err != nil {
				return err
			}
			e.writeField(arg, dt.Ticks())
			return nil
		})
	})
}

func calendarCmd(ctx context.Context, values any, args []string) error {
	return run(ctx, values.(*CommonFlags), func(ctx context.Context, e *env) error {
		return e.forEachDateTime(ctx, args, func(arg string, dt walltime.DateTime) error {
			e.writeDateTime(arg, dt, "")
			e.writeField("date", dt.DateOnly())
			e.writeField("time", dt.TimeOnly())
			e.writeField("month", dates.Month(dt.Month()))
			e.writeField("day-of-week", dt.DayOfWeek())
			e.writeField("day-of-year", dt.DayOfYear())
			e.writeField("day-number", dt.DayNumber())
			e.writeField("days-in-month", walltime.DaysInMonth(dt.Year(), dt.Month()))
			e.writeField("leap-year", walltime.IsLeapYear(dt.Year()))
			e.writeField("time-of-day", dt.TimeOfDay())
			return nil
		})
	})
}
