// Package timex provides zone-aware date and time helpers.
//
// Package: timex
// Title: Time Utilities
// Description: A DateTime value tagged as UTC, local or unspecified, with
//              conversions that never compare values of different tags
//              without normalizing to UTC first. Adds unix timestamps,
//              weekend checks and "Thu 1st Jan 2015" style formatting.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Zone-tagged DateTime, friendly formats, CoerceUTC
//
// Usage:
//
//	d, err := timex.ParseDateTime("2015-01-01 13:34:00") // KindUnspecified
//	if err != nil {
//		return err
//	}
//
//	timex.EnsureUTC(d)            // 2015-01-01 13:34:00 +0000 UTC
//	timex.ToUnixTimestamp(d)      // 1420119240
//	timex.ToNiceDateTimeString(d) // "Thu 1st Jan 2015 13:34"
//
//	sydney, _ := timex.LoadLocation("Australia/Sydney")
//	timex.IsWeekend(d, sydney)
package timex
