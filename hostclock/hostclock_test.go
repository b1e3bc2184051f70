// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hostclock_test

import (
	"context"
	"testing"
	"time"

	"cloudeng.io/walltime/hostclock"
)

func naive(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func TestFixed(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 15, 30, 0, time.UTC)
	c := hostclock.Fixed(5*time.Hour+30*time.Minute, now)
	if got, want := c.UTCNow(), now; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.LocalOffset(naive(2024, 1, 1, 0, 0)), 5*time.Hour+30*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	local := c.LocalFromUTC(naive(2024, 12, 31, 20, 0))
	if got, want := local, naive(2025, 1, 1, 1, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := local.Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.UTCFromLocal(local), naive(2024, 12, 31, 20, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZone(t *testing.T) {
	c, err := hostclock.Load("America/New_York", nil)
	if err != nil {
		t.Skipf("no timezone database: %v", err)
	}
	for _, tc := range []struct {
		local  time.Time
		offset time.Duration
	}{
		{naive(2024, 1, 15, 12, 0), -5 * time.Hour},
		{naive(2024, 7, 15, 12, 0), -4 * time.Hour},
	} {
		if got, want := c.LocalOffset(tc.local), tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.local, got, want)
		}
		utc := c.UTCFromLocal(tc.local)
		if got, want := utc, tc.local.Add(-tc.offset); !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.local, got, want)
		}
		if got, want := c.LocalFromUTC(utc), tc.local; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.local, got, want)
		}
	}
	if got, want := c.String(), "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if time.Since(c.UTCNow()) > time.Minute {
		t.Errorf("now is not now")
	}
}

func TestDefault(t *testing.T) {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	fixed := hostclock.Fixed(-8*time.Hour, now)
	restore := hostclock.SetDefault(fixed)
	if got, want := hostclock.Default().UTCNow(), now; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	restore()
	if _, ok := hostclock.Default().(hostclock.Zone); !ok {
		t.Errorf("default clock was not restored")
	}

	ctx := context.Background()
	if got, want := hostclock.FromContext(ctx).LocalOffset(now), hostclock.Default().LocalOffset(now); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	ctx = hostclock.ContextWith(ctx, fixed)
	if got, want := hostclock.FromContext(ctx).LocalOffset(now), -8*time.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
