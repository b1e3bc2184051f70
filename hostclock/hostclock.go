// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hostclock provides the source of the current time and of the
// local time zone offset used by walltime.DateTime.
//
// Naive, zone-less, instants are exchanged as time.Time values whose
// location is time.UTC; only their wall clock fields are significant.
package hostclock

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock supplies the current time and converts naive instants between
// UTC and local time. Conversions for local times that are skipped or
// repeated by an offset transition are resolved as per time.Date.
type Clock interface {
	// UTCNow returns the current instant.
	UTCNow() time.Time
	// LocalOffset returns the offset from UTC in effect at the naive
	// local time.
	LocalOffset(local time.Time) time.Duration
	// LocalFromUTC returns the naive local time for the naive UTC time.
	LocalFromUTC(utc time.Time) time.Time
	// UTCFromLocal returns the naive UTC time for the naive local time.
	UTCFromLocal(local time.Time) time.Time
}

// Zone implements Clock for a time.Location.
type Zone struct {
	Location *time.Location
	// Now defaults to time.Now if nil.
	Now func() time.Time
}

// System returns a Clock that uses time.Local and time.Now.
func System() Zone {
	return Zone{Location: time.Local, Now: time.Now}
}

// Fixed returns a Clock with a constant offset from UTC whose current
// time is always now.
func Fixed(offset time.Duration, now time.Time) Zone {
	return Zone{
		Location: time.FixedZone("", int(offset/time.Second)),
		Now:      func() time.Time { return now },
	}
}

// Load returns a Clock for the named IANA location.
func Load(name string, now func() time.Time) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, err
	}
	return Zone{Location: loc, Now: now}, nil
}

func (z Zone) location() *time.Location {
	if z.Location == nil {
		return time.UTC
	}
	return z.Location
}

func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func (z Zone) inZone(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), z.location())
}

// UTCNow implements Clock.
func (z Zone) UTCNow() time.Time {
	if z.Now == nil {
		return time.Now().UTC()
	}
	return z.Now().UTC()
}

// LocalOffset implements Clock.
func (z Zone) LocalOffset(local time.Time) time.Duration {
	_, offset := z.inZone(local).Zone()
	return time.Duration(offset) * time.Second
}

// LocalFromUTC implements Clock.
func (z Zone) LocalFromUTC(utc time.Time) time.Time {
	return naive(naive(utc).In(z.location()))
}

// UTCFromLocal implements Clock.
func (z Zone) UTCFromLocal(local time.Time) time.Time {
	return z.inZone(local).UTC()
}

func (z Zone) String() string {
	return z.location().String()
}

var defaultClock atomic.Pointer[Clock]

func init() {
	var c Clock = System()
	defaultClock.Store(&c)
}

// Default returns the process wide Clock, System unless replaced
// by SetDefault.
func Default() Clock {
	return *defaultClock.Load()
}

// SetDefault replaces the process wide Clock and returns a function
// that restores the previous one.
func SetDefault(c Clock) (restore func()) {
	prev := defaultClock.Swap(&c)
	return func() { defaultClock.Store(prev) }
}

type ctxKey struct{}

// ContextWith returns a new context with the given Clock stored in it.
func ContextWith(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the Clock stored in the given context, or Default
// if there is none.
func FromContext(ctx context.Context) Clock {
	if c, ok := ctx.Value(ctxKey{}).(Clock); ok {
		return c
	}
	return Default()
}
