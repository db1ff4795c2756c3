// Package stringx provides text helpers that extend the Go standard library.
//
// Package: stringx
// Title: Extended String Operations
// Description: Sentence casing, whitespace normalization, format sniffing,
//              loose truthiness and case-insensitive occurrence search.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-15 v0.2.0: Reworked around the goldenacre text extensions
//
// Overview
//
// All functions are free functions taking the text as their first argument.
// Go strings cannot be nil, so none of them fail on missing input; blank
// input is handled explicitly where it matters.
//
// The package is organized into functional groups:
//
//   - Core Operations: whitespace, search and comparison (stringx.go)
//   - Case Conversion: PascalCase, SplitOnCapitals, title casing (case.go)
//   - Format Sniffing: IsNumeric, IsDate, IsGUID and matchers (format.go)
//   - Truthiness: IsTruthy and truthy word sets (truthy.go)
//
// Usage Examples
//
//	stringx.ToPascalCase("the quick BROWN fox", "BROWN") // "the Quick BROWN Fox"
//	stringx.SplitOnCapitals("HelloWorld")                // "Hello World"
//	stringx.TrimAndCollapseWhitespace(" a \t b ")        // "a b"
//	stringx.IsGUID("{1234ABCD-12AB-34CD-56EF-1234ABCD5678}")
//	stringx.IsTruthy("Yes")                              // true
//	stringx.NthIndexOf("abcABCabc", "abc", 2)            // 3
//
// Language-aware casing
//
//	caser, err := stringx.NewLanguageCaser("tr")
//	if err != nil {
//		return err
//	}
//	stringx.ToTitleCaseWith("istanbul", caser) // "İstanbul"
package stringx
