// File: stringx.go
// Title: Core String Utility Functions
// Description: Whitespace helpers, occurrence search, comparisons and small
//              conversions that extend the Go standard library.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Whitespace helpers, NthIndexOf, SubstringToIndexOf, ParseEnum

package stringx

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goldenacre/extensions/core/errors"
)

// Comparison selects how SubstringToIndexOf matches the separator
type Comparison int

const (
	// Ordinal compares bytes exactly
	Ordinal Comparison = iota

	// IgnoreCase compares using Unicode simple case folding
	IgnoreCase
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, adding ellipsis if truncated.
// If the ellipsis does not fit, the string is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// ToAlphaNumeric keeps only letters and digits.
func ToAlphaNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// EqualsAny reports whether s equals any of values exactly.
func EqualsAny(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

// EqualsAnyFold reports whether s equals any of values ignoring case.
func EqualsAnyFold(s string, values ...string) bool {
	for _, v := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// ContainsAllFold reports whether s contains every value, ignoring case.
func ContainsAllFold(s string, values ...string) bool {
	lower := strings.ToLower(s)
	for _, v := range values {
		if !strings.Contains(lower, strings.ToLower(v)) {
			return false
		}
	}
	return true
}

// NameWithoutDomain strips a DOMAIN\ prefix from an account name.
// Example: `CORP\jsmith ` -> "jsmith"
func NameWithoutDomain(name string) string {
	if idx := strings.LastIndexByte(name, '\\'); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSpace(name)
}

// RemoveAllWhitespace removes every space and tab. Other whitespace such as
// newlines is kept.
func RemoveAllWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if c := s[i]; c != ' ' && c != '\t' {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// TrimAndCollapseWhitespace turns tabs into spaces, trims outer whitespace
// and collapses runs of spaces into one.
// Example: "\t a \t  b  " -> "a b"
func TrimAndCollapseWhitespace(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			c = ' '
		}
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteByte(c)
	}

	return b.String()
}

// indexFold returns the byte index of the first case-insensitive match of
// needle in s at or after from, or -1. Candidate windows have the byte
// length of needle.
func indexFold(s, needle string, from int) int {
	n := len(needle)
	for i := from; i+n <= len(s); {
		if strings.EqualFold(s[i:i+n], needle) {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1
}

// NthIndexOf returns the byte index of the n-th (1-based) case-insensitive
// occurrence of needle in s. Occurrences may overlap. It returns -1 when
// there are fewer than n occurrences, n < 1 or needle is empty.
func NthIndexOf(s, needle string, n int) int {
	if n < 1 || needle == "" {
		return -1
	}

	idx := -1
	for found := 0; found < n; found++ {
		from := 0
		if idx >= 0 {
			_, size := utf8.DecodeRuneInString(s[idx:])
			from = idx + size
		}
		if idx = indexFold(s, needle, from); idx < 0 {
			return -1
		}
	}

	return idx
}

// SubstringToIndexOf returns the part of s before the first sep. It returns
// "" when s starts with sep and s unchanged when sep does not occur.
func SubstringToIndexOf(s, sep string, cmp Comparison) string {
	var idx int
	if cmp == IgnoreCase {
		idx = indexFold(s, sep, 0)
	} else {
		idx = strings.Index(s, sep)
	}

	if idx < 0 {
		return s
	}
	return s[:idx]
}

// ParseEnum looks up the trimmed s in names. With ignoreCase, the first
// key in sorted order that matches case-insensitively wins.
func ParseEnum[T any](s string, names map[string]T, ignoreCase bool) (T, error) {
	var zero T

	if IsBlank(s) {
		return zero, errors.StringxInvalidInput("parse_enum", s, "non-blank name")
	}
	s = strings.TrimSpace(s)

	if v, ok := names[s]; ok {
		return v, nil
	}

	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if ignoreCase {
		for _, k := range keys {
			if strings.EqualFold(k, s) {
				return names[k], nil
			}
		}
	}

	return zero, errors.StringxInvalidInput("parse_enum", s, "one of "+strings.Join(keys, ", "))
}
