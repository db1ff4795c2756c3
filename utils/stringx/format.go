// File: format.go
// Title: Format Sniffing Predicates
// Description: Predicates that report whether text looks like a number, a
//              date or a GUID, with pluggable matchers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package stringx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// FormatMatcher reports whether a string has a given format
type FormatMatcher interface {
	Match(s string) bool
}

// FormatMatcherFunc adapts a function to FormatMatcher
type FormatMatcherFunc func(s string) bool

// Match calls f(s)
func (f FormatMatcherFunc) Match(s string) bool {
	return f(s)
}

// guidPattern accepts 32 bare hex digits, 8-4-4-4-12 groups optionally
// wrapped in braces or parentheses, and the C struct initializer form
// {0x00000000,0x0000,0x0000,{0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00}}.
var guidPattern = regexp.MustCompile(
	`^[A-Fa-f0-9]{32}$` +
		`|^[{(]?[A-Fa-f0-9]{8}-([A-Fa-f0-9]{4}-){3}[A-Fa-f0-9]{12}[})]?$` +
		`|^\{?[0xA-Fa-f0-9]{3,10}(, ?[0xA-Fa-f0-9]{3,6}){2}, ?\{([0xA-Fa-f0-9]{3,4}, ?){7}[0xA-Fa-f0-9]{3,4}\}\}$`)

// RegexGUIDMatcher matches the GUID spellings accepted by IsGUID
var RegexGUIDMatcher FormatMatcher = FormatMatcherFunc(guidPattern.MatchString)

// UUIDMatcher matches anything github.com/google/uuid can parse, which
// includes the urn:uuid: prefix.
var UUIDMatcher FormatMatcher = FormatMatcherFunc(func(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
})

// DefaultDateLayouts lists the layouts tried by IsDate
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
}

// LayoutDateMatcher returns a matcher that accepts strings parseable with
// any of layouts. Without layouts DefaultDateLayouts is used.
func LayoutDateMatcher(layouts ...string) FormatMatcher {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	return FormatMatcherFunc(func(s string) bool {
		s = strings.TrimSpace(s)
		for _, layout := range layouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	})
}

// NumericMatcher accepts the number spellings described at ParseNumber
var NumericMatcher FormatMatcher = FormatMatcherFunc(func(s string) bool {
	_, ok := ParseNumber(s)
	return ok
})

var defaultDateMatcher = LayoutDateMatcher()

// IsNumeric reports whether s is a number. Surrounding whitespace, a
// currency symbol, "," group separators, an exponent, a trailing sign and
// accounting parentheses are accepted.
func IsNumeric(s string) bool {
	return IsNumericWith(s, NumericMatcher)
}

// IsNumericWith reports whether m matches a non-blank s
func IsNumericWith(s string, m FormatMatcher) bool {
	return !IsBlank(s) && m.Match(s)
}

// IsDate reports whether s parses with one of DefaultDateLayouts
func IsDate(s string) bool {
	return IsDateWith(s, defaultDateMatcher)
}

// IsDateWith reports whether m matches a non-blank s
func IsDateWith(s string, m FormatMatcher) bool {
	return !IsBlank(s) && m.Match(s)
}

// IsGUID reports whether s is a GUID in one of the spellings accepted by
// RegexGUIDMatcher.
func IsGUID(s string) bool {
	return IsGUIDWith(s, RegexGUIDMatcher)
}

// IsGUIDWith reports whether m matches a non-empty s
func IsGUIDWith(s string, m FormatMatcher) bool {
	return s != "" && m.Match(s)
}

// ParseNumber parses the number spellings accepted by IsNumeric.
// Example: " ($1,234.50) " -> -1234.5
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) || r == ',' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	// trailing sign: "12-"
	if n := len(s); n > 1 && (s[n-1] == '-' || s[n-1] == '+') {
		if s[n-1] == '-' {
			negative = !negative
		}
		s = s[:n-1]
	}

	if s == "" || strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	}) >= 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	if negative {
		v = -v
	}
	return v, true
}
