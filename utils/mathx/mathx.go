// File: mathx.go
// Title: Bounds and Flag Helpers
// Description: Generic clamping, inclusive range checks and bit flag tests.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic
// - 2026-10-15 v0.2.0: Replaced by generic bounds and flag helpers

package mathx

import "cmp"

// Unsigned covers the integer types used as bit flags
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Clamp returns v limited to [lo, hi]. Values below lo give lo and values
// above hi give hi; lo is checked first, so lo wins when lo > hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if cmp.Less(v, lo) {
		return lo
	}
	if cmp.Less(hi, v) {
		return hi
	}
	return v
}

// Between reports whether from <= v <= to
func Between[T cmp.Ordered](v, from, to T) bool {
	return cmp.Compare(v, from) >= 0 && cmp.Compare(v, to) <= 0
}

// HasFlag reports whether v shares any bit with mask
func HasFlag[T Unsigned](v, mask T) bool {
	return v&mask != 0
}

// HasAllFlags reports whether every bit of mask is set in v
func HasAllFlags[T Unsigned](v, mask T) bool {
	return v&mask == mask
}
