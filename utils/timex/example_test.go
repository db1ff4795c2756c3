// File: example_test.go
// Title: Example Tests for TimeX Package Documentation
// Description: Executable examples for the zone-tagged helpers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial example implementation

package timex_test

import (
	"fmt"
	"time"

	"github.com/goldenacre/extensions/utils/timex"
)

func ExampleToNiceDateString() {
	d := timex.Date(2015, time.January, 1, 13, 34, 0, timex.KindUnspecified)

	fmt.Println(timex.ToNiceDateString(d))
	fmt.Println(timex.ToNiceDateTimeString(d))
	// Output:
	// Thu 1st Jan 2015
	// Thu 1st Jan 2015 13:34
}

func ExampleEnsureUTC() {
	wall := time.Date(2015, 1, 1, 13, 34, 0, 0, time.FixedZone("AEST", 10*60*60))

	fmt.Println(timex.EnsureUTC(timex.Unspecified(wall)).Format(time.RFC3339))
	fmt.Println(timex.EnsureUTC(timex.From(wall)).Format(time.RFC3339))
	// Output:
	// 2015-01-01T13:34:00Z
	// 2015-01-01T03:34:00Z
}

func ExampleToUnixTimestamp() {
	d := timex.FromUnixTimestamp(1420119240)

	fmt.Println(d)
	fmt.Println(timex.ToUnixTimestamp(d))
	// Output:
	// 2015-01-01T13:34:00Z
	// 1420119240
}
