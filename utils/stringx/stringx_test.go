// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests for whitespace helpers, occurrence search, comparisons
//              and enum parsing.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Tests for the reworked helpers

package stringx

import (
	"strings"
	"testing"

	"github.com/goldenacre/extensions/core/errors"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "short", 10, "...", "short"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"unicode", "こんにちは世界", 4, "…", "こんに…"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Truncate(tt.input, tt.maxLen, tt.ellipsis); result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestRemoveAllWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"spaces", " a b  c ", "abc"},
		{"tabs", "\ta\t\tb", "ab"},
		{"newlines kept", "a \n b", "a\nb"},
		{"only whitespace", " \t \t ", ""},
		{"unicode", " こん にちは ", "こんにちは"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RemoveAllWhitespace(tt.input); result != tt.expected {
				t.Errorf("RemoveAllWhitespace(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTrimAndCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"outer", "  a  ", "a"},
		{"inner runs", "a     b  c", "a b c"},
		{"tabs", "\ta\t\t b\t", "a b"},
		{"newline inside kept", "a \n  b", "a \n b"},
		{"already clean", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := TrimAndCollapseWhitespace(tt.input); result != tt.expected {
				t.Errorf("TrimAndCollapseWhitespace(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTrimAndCollapseWhitespaceIdempotent(t *testing.T) {
	inputs := []string{" a  b ", "\t\tx \t y", "", "p  q   r    s"}
	for _, in := range inputs {
		once := TrimAndCollapseWhitespace(in)
		if twice := TrimAndCollapseWhitespace(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Errorf("double space left in %q", once)
		}
	}
}

func TestNthIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		n        int
		expected int
	}{
		{"first at start", "abcABCabc", "abc", 1, 0},
		{"second ignores case", "abcABCabc", "abc", 2, 3},
		{"third", "abcABCabc", "ABC", 3, 6},
		{"too few", "abcABCabc", "abc", 4, -1},
		{"overlapping", "aaaa", "aa", 3, 2},
		{"absent", "hello", "x", 1, -1},
		{"zero n", "hello", "l", 0, -1},
		{"empty needle", "hello", "", 1, -1},
		{"multibyte prefix", "ééxéX", "x", 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := NthIndexOf(tt.haystack, tt.needle, tt.n); result != tt.expected {
				t.Errorf("NthIndexOf(%q, %q, %d) = %d; want %d", tt.haystack, tt.needle, tt.n, result, tt.expected)
			}
		})
	}
}

func TestSubstringToIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		cmp      Comparison
		expected string
	}{
		{"prefix", "user@example.com", "@", Ordinal, "user"},
		{"match at start", "@example", "@", Ordinal, ""},
		{"absent", "plain", "@", Ordinal, "plain"},
		{"ordinal is case sensitive", "KeyValue", "value", Ordinal, "KeyValue"},
		{"ignore case", "KeyValue", "value", IgnoreCase, "Key"},
		{"empty separator", "abc", "", Ordinal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := SubstringToIndexOf(tt.input, tt.sep, tt.cmp); result != tt.expected {
				t.Errorf("SubstringToIndexOf(%q, %q) = %q; want %q", tt.input, tt.sep, result, tt.expected)
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	if !EqualsAny("b", "a", "b") || EqualsAny("B", "a", "b") {
		t.Error("EqualsAny should compare exactly")
	}
	if !EqualsAnyFold("B", "a", "b") || EqualsAnyFold("c", "a", "b") {
		t.Error("EqualsAnyFold should ignore case")
	}
	if !ContainsAllFold("The Quick Brown Fox", "quick", "FOX") {
		t.Error("ContainsAllFold should match all values")
	}
	if ContainsAllFold("The Quick Brown Fox", "quick", "dog") {
		t.Error("ContainsAllFold should fail on a missing value")
	}
}

func TestToAlphaNumeric(t *testing.T) {
	if got := ToAlphaNumeric(`"(BROWN)!"`); got != "BROWN" {
		t.Errorf("ToAlphaNumeric() = %q", got)
	}
	if got := ToAlphaNumeric("año-2024"); got != "año2024" {
		t.Errorf("ToAlphaNumeric() = %q", got)
	}
}

func TestNameWithoutDomain(t *testing.T) {
	tests := map[string]string{
		`CORP\jsmith`: "jsmith",
		`A\B\ jdoe `:  "jdoe",
		"plain":       "plain",
		"":            "",
		`trailing\`:   "",
	}

	for input, expected := range tests {
		if result := NameWithoutDomain(input); result != expected {
			t.Errorf("NameWithoutDomain(%q) = %q; want %q", input, result, expected)
		}
	}
}

type colour int

const (
	red colour = iota + 1
	green
)

var colourNames = map[string]colour{"Red": red, "Green": green}

func TestParseEnum(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		ignoreCase bool
		expected   colour
		wantErr    bool
	}{
		{"exact", "Red", false, red, false},
		{"trimmed", "  Green ", false, green, false},
		{"case mismatch", "green", false, 0, true},
		{"ignore case", "GREEN", true, green, false},
		{"unknown", "Blue", true, 0, true},
		{"blank", "  ", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseEnum(tt.input, colourNames, tt.ignoreCase)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEnum(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.IsInvalidInput(err) {
				t.Errorf("ParseEnum(%q) error should be invalid input, got %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseEnum(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
