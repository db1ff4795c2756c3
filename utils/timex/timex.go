// File: timex.go
// Title: Core Time Utilities
// Description: Unix timestamps, weekend checks, friendly date strings,
//              parsing into zone-tagged values and cached location lookup.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-15 v0.2.0: Reworked around zone-tagged DateTime values

package timex

import (
	"strings"
	"sync"
	"time"

	"github.com/goldenacre/extensions/core/errors"
)

// Common time formats
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"
	DisplayDate      = "January 2, 2006"
	ShortDate        = "01/02/2006"
	ShortDateTime    = "01/02/2006 15:04"
	LogTimestamp     = "2006-01-02 15:04:05.000"

	// friendly format pieces; the ordinal suffix goes after the day
	niceDay   = "Mon 2"
	niceMonth = " Jan 2006"
	niceTime  = " 15:04"
)

// EpochUTC is 1970-01-01T00:00:00Z
var EpochUTC = UTC(time.Unix(0, 0))

// parseLayouts are tried in order by ParseDateTime
var parseLayouts = []struct {
	layout  string
	hasZone bool
}{
	{time.RFC3339Nano, true},
	{ISO8601DateTime, false},
	{LogTimestamp, false},
	{BusinessDateTime, false},
	{ISO8601Date, false},
	{ShortDateTime, false},
	{ShortDate, false},
	{DisplayDate, false},
	{time.RFC1123, true},
	{time.RFC1123Z, true},
	{time.RFC822, true},
	{time.RFC822Z, true},
	{time.RFC850, true},
}

var (
	locationCache = make(map[string]*time.Location)
	locationMu    sync.RWMutex
)

// LoadLocation returns a cached IANA location. "" and "UTC" give time.UTC,
// "Local" gives the machine location.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)

	locationMu.RLock()
	if loc, exists := locationCache[name]; exists {
		locationMu.RUnlock()
		return loc, nil
	}
	locationMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleTimex).
			Operation("load_location").
			Code(errors.CodeNotFound).
			Messagef("unknown time zone %q", name).
			Cause(err).
			Detail("input", name).
			Build()
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc, nil
}

// ParseDateTime parses common layouts. Layouts carrying a zone give a UTC
// or local value; zone-less layouts give an unspecified value.
func ParseDateTime(value string) (DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateTime{}, errors.TimexParseError(value, "date/time")
	}

	for _, l := range parseLayouts {
		t, err := time.Parse(l.layout, value)
		if err != nil {
			continue
		}
		if !l.hasZone {
			return Unspecified(t), nil
		}
		return From(t), nil
	}

	return DateTime{}, errors.TimexParseError(value, "date/time")
}

// Elapsed returns the time since d, read as UTC
func Elapsed(d DateTime) time.Duration {
	return time.Since(EnsureUTC(d))
}

// ToUnixTimestamp returns the whole seconds between the epoch and d.
// Sub-second precision is truncated toward zero.
func ToUnixTimestamp(d DateTime) int64 {
	t := EnsureUTC(d)
	sec := t.Unix()
	if sec < 0 && t.Nanosecond() > 0 {
		sec++
	}
	return sec
}

// FromUnixTimestamp returns the UTC value sec seconds after the epoch
func FromUnixTimestamp(sec int64) DateTime {
	return UTC(time.Unix(sec, 0))
}

// IsWeekend reports whether d falls on Saturday or Sunday in loc. A nil
// loc means the machine location.
func IsWeekend(d DateTime, loc *time.Location) bool {
	switch EnsureLocal(d, loc).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsWeekday reports whether d falls on Monday to Friday in loc
func IsWeekday(d DateTime, loc *time.Location) bool {
	return !IsWeekend(d, loc)
}

// OrdinalSuffix returns "st", "nd", "rd" or "th" for a day of the month
func OrdinalSuffix(day int) string {
	switch {
	case day%10 == 1 && day%100 != 11:
		return "st"
	case day%10 == 2 && day%100 != 12:
		return "nd"
	case day%10 == 3 && day%100 != 13:
		return "rd"
	default:
		return "th"
	}
}

// ToNiceDateString formats the wall clock of d as "Thu 1st Jan 2015"
func ToNiceDateString(d DateTime) string {
	t := d.Time()
	return t.Format(niceDay) + OrdinalSuffix(t.Day()) + t.Format(niceMonth)
}

// ToNiceDateTimeString formats the wall clock of d as
// "Thu 1st Jan 2015 13:34"
func ToNiceDateTimeString(d DateTime) string {
	return ToNiceDateString(d) + d.Time().Format(niceTime)
}
