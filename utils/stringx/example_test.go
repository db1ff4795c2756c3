// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-15 v0.2.0: Examples for the reworked helpers

package stringx_test

import (
	"fmt"

	"github.com/goldenacre/extensions/utils/stringx"
)

func ExampleToPascalCase() {
	fmt.Println(stringx.ToPascalCase("the quick BROWN fox", "BROWN"))
	fmt.Printf("%q\n", stringx.ToPascalCase("  war and peace "))
	// Output:
	// the Quick BROWN Fox
	// "  War and Peace "
}

func ExampleSplitOnCapitals() {
	fmt.Println(stringx.SplitOnCapitals("HelloWorld2024"))
	// Output:
	// Hello World 2024
}

func ExampleTrimAndCollapseWhitespace() {
	fmt.Printf("%q\n", stringx.TrimAndCollapseWhitespace("\t hello \t  world  "))
	fmt.Printf("%q\n", stringx.RemoveAllWhitespace("\t hello \t  world  "))
	// Output:
	// "hello world"
	// "helloworld"
}

func ExampleIsGUID() {
	fmt.Println(stringx.IsGUID("{1234ABCD-12AB-34CD-56EF-1234ABCD5678}"))
	fmt.Println(stringx.IsGUID("not-a-guid"))
	// Output:
	// true
	// false
}

func ExampleIsTruthy() {
	fmt.Println(stringx.IsTruthy("Yes"))
	fmt.Println(stringx.IsTruthy("0"))
	fmt.Println(stringx.IsTruthy(12))
	fmt.Println(stringx.IsTruthyWith("ja", stringx.ParseTruthyWords("ja,oui")))
	// Output:
	// true
	// false
	// true
	// true
}

func ExampleNthIndexOf() {
	fmt.Println(stringx.NthIndexOf("abcABCabc", "abc", 2))
	fmt.Println(stringx.NthIndexOf("abcABCabc", "abc", 4))
	// Output:
	// 3
	// -1
}

func ExampleSubstringToIndexOf() {
	fmt.Println(stringx.SubstringToIndexOf("user@example.com", "@", stringx.Ordinal))
	fmt.Println(stringx.SubstringToIndexOf("KeyValue", "VALUE", stringx.IgnoreCase))
	// Output:
	// user
	// Key
}
