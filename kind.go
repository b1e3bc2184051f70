// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package walltime

import (
	"fmt"
	"strings"
)

// Kind determines how the naive instant of a DateTime is interpreted
// when an absolute instant is required.
type Kind int

const (
	// Unspecified is treated as UTC for comparison and subtraction but
	// as local time by ToUniversalTime.
	Unspecified Kind = iota
	UTC
	Local
)

var kindNames = []string{"unspecified", "utc", "local"}

func (k Kind) valid() bool {
	return k >= Unspecified && k <= Local
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindFromInt returns the Kind for its integer value, 0 for Unspecified,
// 1 for UTC and 2 for Local.
func KindFromInt(v int) (Kind, error) {
	k := Kind(v)
	if !k.valid() {
		return Unspecified, fmt.Errorf("%d: valid values are 0 (unspecified), 1 (utc) or 2 (local): %w", v, ErrUnsupportedKind)
	}
	return k, nil
}

// ParseKind parses one of 'unspecified', 'utc' or 'local' in either
// lower or upper case.
func ParseKind(val string) (Kind, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for i, n := range kindNames {
		if n == lc {
			return Kind(i), nil
		}
	}
	return Unspecified, fmt.Errorf("%q: expected one of %s: %w", val, strings.Join(kindNames, ", "), ErrUnsupportedKind)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	nk, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = nk
	return nil
}
