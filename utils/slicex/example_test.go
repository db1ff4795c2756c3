// File: example_test.go
// Title: Example Tests for SliceX Package Documentation
// Description: Executable examples for the sequence helpers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial example implementation
// - 2026-10-15 v0.2.0: Examples for Batch and DistinctBy

package slicex_test

import (
	"fmt"
	"slices"

	"github.com/goldenacre/extensions/utils/slicex"
)

func ExampleBatch() {
	batches, err := slicex.Batch(slices.Values([]int{1, 2, 3, 4, 5}), 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	for batch := range batches {
		fmt.Println(slices.Collect(batch))
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleDistinctBy() {
	type user struct {
		Name  string
		Email string
	}

	users := []user{
		{"Ann", "ann@example.com"},
		{"Bob", "bob@example.com"},
		{"Ann B.", "ann@example.com"},
	}

	distinct, _ := slicex.DistinctBy(slices.Values(users), func(u user) string { return u.Email })
	for u := range distinct {
		fmt.Println(u.Name)
	}
	// Output:
	// Ann
	// Bob
}

func ExampleForEachIndexed() {
	_ = slicex.ForEachIndexed(slices.Values([]string{"a", "b"}), func(i int, s string) {
		fmt.Println(i, s)
	})
	// Output:
	// 0 a
	// 1 b
}
