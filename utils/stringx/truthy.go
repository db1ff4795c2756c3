// File: truthy.go
// Title: Truthiness of Arbitrary Values
// Description: Loose boolean interpretation of values from configuration,
//              query strings and user input.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"
)

// TruthyWords is the set of words that count as true, compared ignoring case
type TruthyWords []string

// DefaultTruthyWords is used by IsTruthy
var DefaultTruthyWords = TruthyWords{"true", "yes", "y", "1", "on"}

// ParseTruthyWords splits a comma separated list, dropping empty entries.
// Example: "true, yes,,ja" -> [true yes ja]
func ParseTruthyWords(csv string) TruthyWords {
	var words TruthyWords
	for _, w := range strings.Split(csv, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Contains reports whether s is one of the words, ignoring case
func (w TruthyWords) Contains(s string) bool {
	return EqualsAnyFold(s, w...)
}

// String joins the words with commas
func (w TruthyWords) String() string {
	return strings.Join(w, ",")
}

// IsTruthy interprets v as a boolean using DefaultTruthyWords.
func IsTruthy(v any) bool {
	return IsTruthyWith(v, DefaultTruthyWords)
}

// IsTruthyWith interprets v as a boolean. nil is false and a bool (or a
// non-nil *bool) is itself. Anything else is turned into text, which is
// true when it is a number greater than zero or one of words.
func IsTruthyWith(v any, words TruthyWords) bool {
	var s string

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case *bool:
		return val != nil && *val
	case string:
		s = val
	default:
		// fmt prints Stringers through String and survives nil receivers
		s = fmt.Sprint(val)
	}

	if num, ok := ParseNumber(s); ok && num > 0 {
		return true
	}

	if IsBlank(s) {
		return false
	}
	return words.Contains(s)
}
