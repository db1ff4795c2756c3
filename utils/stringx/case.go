// File: case.go
// Title: String Case Conversion Utilities
// Description: Sentence-style PascalCase, splitting of run-together words and
//              language-aware title casing through golang.org/x/text.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-15 v0.2.0: Sentence PascalCase with ignore list, SplitOnCapitals, CaseStrategy

package stringx

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goldenacre/extensions/core/errors"
)

// smallWords are kept lower case by ToPascalCase
var smallWords = []string{"The", "And", "A", "To"}

// ToPascalCase capitalizes every space separated word of a sentence and
// lowers the rest of each word. Words whose alphanumeric form is listed in
// ignore are kept as they are. A word opening with a quote or bracket gets
// its first two characters upper cased. The words "the", "and", "a" and
// "to" stay lower case. Leading and trailing spaces are preserved.
// Example: ToPascalCase("the quick BROWN fox", "BROWN") -> "the Quick BROWN Fox"
func ToPascalCase(s string, ignore ...string) string {
	body := strings.TrimSpace(s)
	if body == "" {
		return ""
	}

	leading := s[:len(s)-len(strings.TrimLeft(s, " "))]
	trailing := s[len(strings.TrimRight(s, " ")):]

	words := strings.Split(body, " ")
	for i, word := range words {
		if word != "" && !EqualsAny(ToAlphaNumeric(word), ignore...) {
			word = capitalizeWord(word)
		}
		// small words are lowered even when listed in ignore
		if EqualsAny(word, smallWords...) {
			word = strings.ToLower(word)
		}
		words[i] = word
	}

	return leading + strings.Join(words, " ") + trailing
}

func capitalizeWord(word string) string {
	runes := []rune(word)

	upper := 1
	if len(runes) > 1 && strings.ContainsRune(`'"([`, runes[0]) {
		upper = 2
	}

	for i := range runes {
		if i < upper {
			runes[i] = unicode.ToUpper(runes[i])
		} else {
			runes[i] = unicode.ToLower(runes[i])
		}
	}

	return string(runes)
}

// SplitOnCapitals inserts a space where a run of at least three characters
// is followed by an upper case letter, or a non-digit by a digit. No space
// is inserted after a space or hyphen.
// Example: "HelloWorld2024" -> "Hello World 2024"
func SplitOnCapitals(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(runes)/3)

	sinceSpace := 0
	for i := 0; i < len(runes)-1; i++ {
		cur, next := runes[i], runes[i+1]
		b.WriteRune(cur)

		if sinceSpace > 2 && cur != ' ' && cur != '-' &&
			(unicode.IsUpper(next) || (!unicode.IsDigit(cur) && unicode.IsDigit(next))) {
			b.WriteByte(' ')
			sinceSpace = 0
		}
		sinceSpace++
	}
	b.WriteRune(runes[len(runes)-1])

	return b.String()
}

// CaseStrategy converts the case of text
type CaseStrategy interface {
	Title(s string) string
	Upper(s string) string
	Lower(s string) string
}

// LanguageCaser applies the casing rules of a language
type LanguageCaser struct {
	tag language.Tag
}

// NewLanguageCaser creates a caser for a BCP 47 tag such as "en", "de-DE"
// or "tr".
func NewLanguageCaser(tag string) (*LanguageCaser, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("new_language_caser").
			Code(errors.CodeInvalidInput).
			Messagef("invalid language tag %q", tag).
			Cause(err).
			Detail("input", tag).
			Build()
	}
	return &LanguageCaser{tag: parsed}, nil
}

// Tag returns the language of the caser
func (c *LanguageCaser) Tag() language.Tag {
	return c.tag
}

// A cases.Caser keeps state, so each call builds its own.

// Title title-cases s
func (c *LanguageCaser) Title(s string) string {
	return cases.Title(c.tag).String(s)
}

// Upper upper-cases s
func (c *LanguageCaser) Upper(s string) string {
	return cases.Upper(c.tag).String(s)
}

// Lower lower-cases s
func (c *LanguageCaser) Lower(s string) string {
	return cases.Lower(c.tag).String(s)
}

var englishCaser = &LanguageCaser{tag: language.English}

// ToTitleCase title-cases s using English rules.
// Example: "hello wORLD" -> "Hello World"
func ToTitleCase(s string) string {
	return englishCaser.Title(s)
}

// ToTitleCaseWith title-cases s with the given strategy
func ToTitleCaseWith(s string, strategy CaseStrategy) string {
	if strategy == nil {
		return ToTitleCase(s)
	}
	return strategy.Title(s)
}
