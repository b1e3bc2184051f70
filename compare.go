// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/walltime/hostclock"
	"cloudeng.io/walltime/timespan"
)

// instant resolves dt to an absolute instant, expressed as ticks since
// 0001-01-01T00:00:00 UTC. UTC and Unspecified values are taken as UTC,
// Local values are adjusted by the local offset in effect at their naive
// instant. The result may lie slightly outside of the representable range
// for Local values close to MinValue or MaxValue.
//
// All comparison and subtraction goes through instant.
func (dt DateTime) instant() int64 {
	if dt.kind != Local {
		return dt.ticks
	}
	offset := hostclock.Default().LocalOffset(dt.naive())
	return dt.ticks - int64(offset/(timespan.NanosecondsPerTick*time.Nanosecond))
}

// Ticks returns the number of ticks between MinValue and the absolute
// instant represented by dt. For UTC and Unspecified values this is the
// same as the naive tick count. Local values whose instant falls outside
// of the representable range are clamped to it, so the result is always
// acceptable to FromTicks.
func (dt DateTime) Ticks() int64 {
	return min(max(dt.instant(), 0), maxTicks)
}

// Compare returns -1, 0 or +1 depending on whether the absolute instant
// of x is before, the same as, or after that of y.
func Compare(x, y DateTime) int {
	return cmp.Compare(x.instant(), y.instant())
}

// Equal returns true if x and y represent the same absolute instant.
func Equal(x, y DateTime) bool {
	return x.instant() == y.instant()
}

// Compare is equivalent to Compare(dt, o).
func (dt DateTime) Compare(o DateTime) int {
	return Compare(dt, o)
}

// Equal is equivalent to Equal(dt, o).
func (dt DateTime) Equal(o DateTime) bool {
	return Equal(dt, o)
}

// Before returns true if dt is before o.
func (dt DateTime) Before(o DateTime) bool {
	return Compare(dt, o) < 0
}

// After returns true if dt is after o.
func (dt DateTime) After(o DateTime) bool {
	return Compare(dt, o) > 0
}

// Sub returns the exact difference between the absolute instants of
// dt and o.
func (dt DateTime) Sub(o DateTime) timespan.TimeSpan {
	return timespan.FromTicks(dt.instant() - o.instant())
}

// ToUniversalTime converts dt to UTC. UTC values are returned unchanged;
// Local and Unspecified values are both assumed to be in local time and
// are converted using hostclock.Default. Results outside of the
// representable range are clamped to MinValue or MaxValue.
func (dt DateTime) ToUniversalTime() DateTime {
	if dt.kind == UTC {
		return dt
	}
	utc := hostclock.Default().UTCFromLocal(dt.naive())
	return DateTime{ticks: clampedWallTicks(utc), kind: UTC}
}

// ToLocalTime converts dt to local time. Local values are returned
// unchanged; UTC and Unspecified values are both assumed to be in UTC.
// Note that this differs from ToUniversalTime which assumes that an
// Unspecified value is in local time. Results outside of the representable
// range are clamped.
func (dt DateTime) ToLocalTime() DateTime {
	if dt.kind == Local {
		return dt
	}
	local := hostclock.Default().LocalFromUTC(dt.naive())
	return DateTime{ticks: clampedWallTicks(local), kind: Local}
}

// SpecifyKind returns a DateTime with the same naive instant as dt but
// with the specified Kind. No conversion is performed.
func SpecifyKind(dt DateTime, kind Kind) (DateTime, error) {
	if !kind.valid() {
		return DateTime{}, fmt.Errorf("%v: %w", kind, ErrUnsupportedKind)
	}
	return DateTime{ticks: dt.ticks, kind: kind}, nil
}

// Time returns the absolute instant represented by dt as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	t := dt.instant()
	return time.Unix(t/timespan.TicksPerSecond-unixEpochSeconds, t%timespan.TicksPerSecond*timespan.NanosecondsPerTick).UTC()
}
