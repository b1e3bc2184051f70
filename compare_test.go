// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/walltime"
	"cloudeng.io/walltime/hostclock"
	"cloudeng.io/walltime/timespan"
	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	useFixedClock(t, 5*time.Hour+30*time.Minute)

	utc := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.UTC))
	unspecified := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.Unspecified))
	local := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.Local))
	sameInstant := must(walltime.NewWithKind(2024, 3, 5, 15, 30, 0, walltime.Local))

	for _, tc := range []struct {
		x, y    walltime.DateTime
		compare int
	}{
		{utc, unspecified, 0},
		{unspecified, utc, 0},
		{local, utc, -1},
		{utc, local, 1},
		{sameInstant, utc, 0},
		{sameInstant, unspecified, 0},
		{local, sameInstant, -1},
		{walltime.MinValue(), walltime.MaxValue(), -1},
	} {
		if got, want := walltime.Compare(tc.x, tc.y), tc.compare; got != want {
			t.Errorf("%v (%v) vs %v (%v): got %v, want %v", tc.x, tc.x.Kind(), tc.y, tc.y.Kind(), got, want)
		}
		if got, want := tc.x.Compare(tc.y), tc.compare; got != want {
			t.Errorf("%v (%v) vs %v (%v): got %v, want %v", tc.x, tc.x.Kind(), tc.y, tc.y.Kind(), got, want)
		}
		if got, want := walltime.Equal(tc.x, tc.y), tc.compare == 0; got != want {
			t.Errorf("%v (%v) vs %v (%v): got %v, want %v", tc.x, tc.x.Kind(), tc.y, tc.y.Kind(), got, want)
		}
		if got, want := tc.x.Before(tc.y), tc.compare < 0; got != want {
			t.Errorf("%v (%v) vs %v (%v): got %v, want %v", tc.x, tc.x.Kind(), tc.y, tc.y.Kind(), got, want)
		}
		if got, want := tc.x.After(tc.y), tc.compare > 0; got != want {
			t.Errorf("%v (%v) vs %v (%v): got %v, want %v", tc.x, tc.x.Kind(), tc.y, tc.y.Kind(), got, want)
		}
	}

	if got, want := local.Sub(utc), timespan.FromTicks(-(5*timespan.TicksPerHour + 30*timespan.TicksPerMinute)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sameInstant.Ticks(), utc.Ticks(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sameInstant.Time(), time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompareZeroOffset(t *testing.T) {
	useFixedClock(t, 0)
	utc := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.UTC))
	local := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.Local))
	if !utc.Equal(local) {
		t.Errorf("%v and %v should be equal when the local offset is zero", utc, local)
	}
}

func TestSub(t *testing.T) {
	useFixedClock(t, -8*time.Hour)
	for _, kind := range []walltime.Kind{walltime.Unspecified, walltime.UTC, walltime.Local} {
		a := must(walltime.NewMicro(2024, 2, 28, 22, 45, 10, 100, 200, kind))
		if got, want := a.Sub(a), timespan.Zero; got != want {
			t.Errorf("%v: got %v, want %v", kind, got, want)
		}
		for _, ticks := range []int64{1, -1, timespan.TicksPerDay, -37 * timespan.TicksPerHour, 400 * timespan.TicksPerDay} {
			d := timespan.FromTicks(ticks)
			b, err := a.Add(d)
			if err != nil {
				t.Errorf("%v: %v", kind, err)
				continue
			}
			if got, want := b.Sub(a), d; got != want {
				t.Errorf("%v: got %v, want %v", kind, got, want)
			}
			if got, want := b.Kind(), kind; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestConversions(t *testing.T) {
	useFixedClock(t, 5*time.Hour+30*time.Minute)

	local := must(walltime.NewMicro(2024, 3, 5, 15, 30, 0, 1, 2, walltime.Local))
	utc := local.ToUniversalTime()
	if diff := cmp.Diff(fields{2024, 3, 5, 10, 0, 0, 1, 2, 0, walltime.UTC}, fieldsOf(utc)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	back := utc.ToLocalTime()
	if diff := cmp.Diff(fieldsOf(local), fieldsOf(back)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !local.Equal(utc) || !back.Equal(utc) {
		t.Errorf("conversion should not change the instant")
	}

	// Identity conversions.
	if diff := cmp.Diff(fieldsOf(utc), fieldsOf(utc.ToUniversalTime())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fieldsOf(local), fieldsOf(local.ToLocalTime())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// Unspecified is local time to ToUniversalTime but UTC to ToLocalTime.
	unspecified := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.Unspecified))
	if diff := cmp.Diff(fields{2024, 3, 5, 4, 30, 0, 0, 0, 0, walltime.UTC}, fieldsOf(unspecified.ToUniversalTime())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fields{2024, 3, 5, 15, 30, 0, 0, 0, 0, walltime.Local}, fieldsOf(unspecified.ToLocalTime())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// Conversions clamp to the representable range.
	upper := walltime.MaxValue().ToLocalTime()
	if diff := cmp.Diff(fields{9999, 12, 31, 23, 59, 59, 999, 999, 900, walltime.Local}, fieldsOf(upper)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	lower := must(walltime.SpecifyKind(walltime.MinValue(), walltime.Local)).ToUniversalTime()
	if diff := cmp.Diff(fields{1, 1, 1, 0, 0, 0, 0, 0, 0, walltime.UTC}, fieldsOf(lower)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConversionsNamedZone(t *testing.T) {
	zone, err := hostclock.Load("America/New_York", nil)
	if err != nil {
		t.Skipf("time zone database not available: %v", err)
	}
	t.Cleanup(hostclock.SetDefault(zone))
	for _, tc := range []struct {
		month, hour, utcHour int
	}{
		{1, 12, 17},
		{7, 12, 16},
	} {
		local := must(walltime.NewWithKind(2024, tc.month, 1, tc.hour, 0, 0, walltime.Local))
		utc := local.ToUniversalTime()
		if got, want := utc.Hour(), tc.utcHour; got != want {
			t.Errorf("%v: got %v, want %v", local, got, want)
		}
		if !utc.Equal(local) {
			t.Errorf("%v and %v should be equal", local, utc)
		}
		if diff := cmp.Diff(fieldsOf(local), fieldsOf(utc.ToLocalTime())); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSpecifyKind(t *testing.T) {
	useFixedClock(t, time.Hour)
	dt := must(walltime.NewWithKind(2024, 3, 5, 10, 0, 0, walltime.UTC))
	for _, kind := range []walltime.Kind{walltime.Unspecified, walltime.UTC, walltime.Local} {
		sk := must(walltime.SpecifyKind(dt, kind))
		if diff := cmp.Diff(fields{2024, 3, 5, 10, 0, 0, 0, 0, 0, kind}, fieldsOf(sk)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
	local := must(walltime.SpecifyKind(dt, walltime.Local))
	if local.Equal(dt) {
		t.Errorf("%v: changing the kind to local should change the instant", local)
	}
	if _, err := walltime.SpecifyKind(dt, walltime.Kind(3)); !errors.Is(err, walltime.ErrUnsupportedKind) {
		t.Errorf("expected an unsupported kind: %v", err)
	}
}
