// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/walltime"
	"cloudeng.io/walltime/dates"
	"cloudeng.io/walltime/hostclock"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
	Zone   string `subcmd:"zone,,'time zone used for local time, either an IANA name or an offset such as +05:30; defaults to the host time zone'"`
	Kind   string `subcmd:"kind,,'kind assigned to date-time arguments: unspecified, utc or local'"`
}

type FormatFlags struct {
	CommonFlags
	Pattern string `subcmd:"pattern,,'format pattern, defaults to the configured format or yyyy-MM-dd hh:mm:ss.fff'"`
}

type ConvertFlags struct {
	CommonFlags
	To string `subcmd:"to,utc,'convert to utc or local'"`
}

type AddFlags struct {
	CommonFlags
	Years  int `subcmd:"years,0,'calendar years to add'"`
	Months int `subcmd:"months,0,'calendar months to add'"`
}

// Config represents the optional yaml configuration file, eg:
//
//	zone: Asia/Kolkata
//	format: dd/MM/yyyy hh:mm
//	kind: local
//	reference: 2024-02-29
//	reference-time: 08:30
type Config struct {
	Zone          string             `yaml:"zone"`
	Format        string             `yaml:"format"`
	Kind          string             `yaml:"kind"`
	Reference     dates.CalendarDate `yaml:"reference"`
	ReferenceTime dates.TimeOfDay    `yaml:"reference-time"`
}

const defaultPattern = "yyyy-MM-dd hh:mm:ss.fff"

var (
	stdout  io.Writer = os.Stdout
	nowFunc           = time.Now
)

// env is the environment shared by all commands once flags and the
// configuration file have been processed.
type env struct {
	kind      walltime.Kind
	pattern   string
	reference walltime.DateTime
	hasRef    bool
	out       io.Writer
	colors    palette
}

// zoneFor returns a Clock for an IANA time zone name or for a fixed
// offset of the form [+-]hh:mm.
func zoneFor(name string) (hostclock.Clock, error) {
	if len(name) == 0 {
		return hostclock.Zone{Location: time.Local, Now: nowFunc}, nil
	}
	if name[0] == '+' || name[0] == '-' {
		offset, err := time.Parse("-07:00", name)
		if err != nil {
			return nil, fmt.Errorf("invalid zone offset %q: %w", name, err)
		}
		_, secs := offset.Zone()
		return hostclock.Zone{Location: time.FixedZone(name, secs), Now: nowFunc}, nil
	}
	return hostclock.Load(name, nowFunc)
}

// newEnv configures logging, reads the configuration file if one is
// specified and installs the selected time zone as the default clock.
// The returned function must be called to undo these changes.
func newEnv(ctx context.Context, fv *CommonFlags) (context.Context, *env, func(), error) {
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)

	var cfg Config
	if len(fv.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, fv.Config, &cfg); err != nil {
			logger.Close()
			return ctx, nil, nil, err
		}
	}
	zone := cfg.Zone
	if len(fv.Zone) > 0 {
		zone = fv.Zone
	}
	clock, err := zoneFor(zone)
	if err != nil {
		logger.Close()
		return ctx, nil, nil, err
	}

	e := &env{
		pattern: defaultPattern,
		out:     stdout,
		colors:  newPalette(stdout),
	}
	if len(cfg.Format) > 0 {
		e.pattern = cfg.Format
	}
	kind := cfg.Kind
	if len(fv.Kind) > 0 {
		kind = fv.Kind
	}
	if len(kind) > 0 {
		if e.kind, err = walltime.ParseKind(kind); err != nil {
			logger.Close()
			return ctx, nil, nil, err
		}
	}

	restore := hostclock.SetDefault(clock)
	ctx = hostclock.ContextWith(ctx, clock)

	if cfg.Reference != (dates.CalendarDate{}) {
		e.reference, err = walltime.FromDateAndTime(cfg.Reference, cfg.ReferenceTime, e.kind)
		if err != nil {
			restore()
			logger.Close()
			return ctx, nil, nil, fmt.Errorf("reference date-time: %w", err)
		}
		e.hasRef = true
	}

	ctxlog.Logger(ctx).Info("configuration",
		"zone", fmt.Sprintf("%v", clock),
		"kind", e.kind,
		"pattern", e.pattern,
		"reference", e.referenceString())

	return ctx, e, func() {
		restore()
		logger.Close()
	}, nil
}

func (e *env) referenceString() string {
	if !e.hasRef {
		return "none"
	}
	return e.reference.String()
}

// dateTime interprets arg as a date-time. Parsed date-times are assigned
// the configured kind.
func (e *env) dateTime(arg string) (walltime.DateTime, error) {
	switch strings.ToLower(arg) {
	case "now":
		return walltime.Now(), nil
	case "utcnow":
		return walltime.UTCNow(), nil
	case "today":
		return walltime.Today(), nil
	case "min":
		return walltime.MinValue(), nil
	case "max":
		return walltime.MaxValue(), nil
	case "epoch":
		return walltime.UnixEpoch(), nil
	case "ref":
		if !e.hasRef {
			return walltime.DateTime{}, fmt.Errorf("no reference date-time has been configured")
		}
		return e.reference, nil
	}
	dt, err := walltime.Parse(arg)
	if err == nil {
		return walltime.SpecifyKind(dt, e.kind)
	}
	if naive, nerr := e.naiveDateTime(arg); nerr == nil {
		return naive, nil
	}
	return walltime.DateTime{}, err
}

// naiveDateTime parses a date optionally followed by a time of day
// separated by T or a space, eg. 2024-02-29 or 2024-Feb-29T10:15:30.5.
func (e *env) naiveDateTime(arg string) (walltime.DateTime, error) {
	datePart, timePart, _ := strings.Cut(strings.TrimSpace(arg), "T")
	if len(timePart) == 0 {
		datePart, timePart, _ = strings.Cut(datePart, " ")
	}
	var d dates.CalendarDate
	if err := d.Parse(datePart); err != nil {
		return walltime.DateTime{}, err
	}
	var tod dates.TimeOfDay
	if len(timePart) > 0 {
		if err := tod.Parse(timePart); err != nil {
			return walltime.DateTime{}, err
		}
	}
	return walltime.FromDateAndTime(d, tod, e.kind)
}
