// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples for the bounds helpers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-15 v0.2.0: Examples for Clamp and Between

package mathx_test

import (
	"fmt"

	"github.com/goldenacre/extensions/utils/mathx"
)

func ExampleClamp() {
	fmt.Println(mathx.Clamp(150, 0, 100))
	fmt.Println(mathx.Clamp(-5, 0, 100))
	// Output:
	// 100
	// 0
}

func ExampleBetween() {
	fmt.Println(mathx.Between(7, 1, 7))
	// Output: true
}
