// File: case_test.go
// Title: Unit Tests for Case Conversion Functions
// Description: Tests for sentence PascalCase, SplitOnCapitals and the
//              language-aware casing strategy.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Tests for the sentence casing rules

package stringx

import (
	"testing"

	"github.com/goldenacre/extensions/core/errors"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ignore   []string
		expected string
	}{
		{"ignored word kept", "the quick BROWN fox", []string{"BROWN"}, "the Quick BROWN Fox"},
		{"empty", "", nil, ""},
		{"only spaces", "    ", nil, ""},
		{"outer spaces kept", "  hello world  ", nil, "  Hello World  "},
		{"inner runs kept", "hello   world", nil, "Hello   World"},
		{"small words", "WAR AND PEACE", nil, "War and Peace"},
		{"small words anywhere", "a tale to tell", nil, "a Tale to Tell"},
		{"quotes and brackets", `"quoted" (paren) [bracket] 'single'`, nil, `"Quoted" (Paren) [Bracket] 'Single'`},
		{"lone quote", `say " now`, nil, `Say " Now`},
		{"ignore uses alphanumeric form", "visit NASA, today", []string{"NASA"}, "Visit NASA, Today"},
		{"ignore is case sensitive", "visit nasa", []string{"NASA"}, "Visit Nasa"},
		{"ignored small word still lowered", "go The way", []string{"The"}, "Go the Way"},
		{"unicode", "élan vital", nil, "Élan Vital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToPascalCase(tt.input, tt.ignore...); result != tt.expected {
				t.Errorf("ToPascalCase(%q, %v) = %q; want %q", tt.input, tt.ignore, result, tt.expected)
			}
		})
	}
}

func TestSplitOnCapitals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"single rune", "A", "A"},
		{"two words", "HelloWorld", "Hello World"},
		{"short run not split", "ThisIsATest", "This IsA Test"},
		{"digits", "HelloWorld2024", "Hello World 2024"},
		{"acronym", "ABC", "ABC"},
		{"hyphen", "some-ThingElse", "some-Thing Else"},
		{"existing space", "Hello World", "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := SplitOnCapitals(tt.input); result != tt.expected {
				t.Errorf("SplitOnCapitals(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	if result := ToTitleCase("hello wORLD"); result != "Hello World" {
		t.Errorf("ToTitleCase() = %q", result)
	}
	if result := ToTitleCaseWith("hello", nil); result != "Hello" {
		t.Errorf("ToTitleCaseWith(nil) = %q", result)
	}
}

func TestLanguageCaser(t *testing.T) {
	caser, err := NewLanguageCaser("tr")
	if err != nil {
		t.Fatalf("NewLanguageCaser(tr) error = %v", err)
	}

	if result := caser.Upper("i"); result != "İ" {
		t.Errorf("Upper(i) = %q; want İ", result)
	}
	if result := ToTitleCaseWith("istanbul", caser); result != "İstanbul" {
		t.Errorf("Title(istanbul) = %q; want İstanbul", result)
	}
	if result := caser.Lower("I"); result != "ı" {
		t.Errorf("Lower(I) = %q; want ı", result)
	}
}

func TestNewLanguageCaserInvalid(t *testing.T) {
	_, err := NewLanguageCaser("???")
	if err == nil {
		t.Fatal("NewLanguageCaser(???) should fail")
	}
	if !errors.IsInvalidInput(err) {
		t.Errorf("error should be invalid input, got %v", err)
	}
}

var _ CaseStrategy = (*LanguageCaser)(nil)
