// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime

import "cloudeng.io/errors"

// Errors returned by this package are always wrapped around one of the
// following and hence must be tested for using errors.Is.
var (
	// ErrInvalidCalendarDate is returned when the fields supplied to a
	// constructor do not name a real date and time.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	// ErrTicksOutOfRange is returned when a tick count, or the result of
	// arithmetic, falls outside of years 1 to 9999.
	ErrTicksOutOfRange = errors.New("ticks out of range")
	// ErrUnsupportedKind is returned for a Kind other than Unspecified,
	// UTC or Local.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrInvalidFormat is returned by Parse when the text is neither an
	// RFC 3339 nor an RFC 5322 date-time.
	ErrInvalidFormat = errors.New("invalid date-time format")
)
