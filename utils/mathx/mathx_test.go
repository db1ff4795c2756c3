// File: mathx_test.go
// Title: Bounds and Flag Helper Tests
// Description: Table-driven tests for Clamp, Between and the flag helpers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Tests for generic helpers

package mathx

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 5, 1, 10, 5},
		{"below", -3, 1, 10, 1},
		{"above", 42, 1, 10, 10},
		{"on lower bound", 1, 1, 10, 1},
		{"on upper bound", 10, 1, 10, 10},
		{"inverted bounds", 5, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampOtherTypes(t *testing.T) {
	if got := Clamp(2.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(2.5) = %v, want 1", got)
	}
	if got := Clamp("m", "a", "k"); got != "k" {
		t.Errorf("Clamp(m) = %q, want k", got)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name        string
		v, from, to int
		want        bool
	}{
		{"inside", 5, 1, 10, true},
		{"lower bound inclusive", 1, 1, 10, true},
		{"upper bound inclusive", 10, 1, 10, true},
		{"below", 0, 1, 10, false},
		{"above", 11, 1, 10, false},
		{"empty range", 5, 10, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Between(tt.v, tt.from, tt.to); got != tt.want {
				t.Errorf("Between(%d, %d, %d) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

type perm uint8

const (
	permRead perm = 1 << iota
	permWrite
	permExec
)

func TestHasFlag(t *testing.T) {
	p := permRead | permExec

	tests := []struct {
		name   string
		mask   perm
		hasAny bool
		hasAll bool
	}{
		{"single set", permRead, true, true},
		{"single unset", permWrite, false, false},
		{"partial", permRead | permWrite, true, false},
		{"all set", permRead | permExec, true, true},
		{"zero mask", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFlag(p, tt.mask); got != tt.hasAny {
				t.Errorf("HasFlag(%b, %b) = %v, want %v", p, tt.mask, got, tt.hasAny)
			}
			if got := HasAllFlags(p, tt.mask); got != tt.hasAll {
				t.Errorf("HasAllFlags(%b, %b) = %v, want %v", p, tt.mask, got, tt.hasAll)
			}
		})
	}
}
