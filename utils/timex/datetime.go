// File: datetime.go
// Title: Zone-Tagged Date Time Values
// Description: DateTime pairs a wall clock with a tag saying whether it is
//              UTC, local or of unknown zone, plus the conversions between them.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"time"
)

// Kind tells how the wall clock of a DateTime relates to a time zone
type Kind int

const (
	// KindUnspecified is a wall clock with no known zone
	KindUnspecified Kind = iota

	// KindUTC is a UTC instant
	KindUTC

	// KindLocal is an instant in a specific non-UTC location
	KindLocal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindUTC:
		return "utc"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

// DateTime is a time value tagged with a Kind. The zero value is an
// unspecified 0001-01-01 00:00:00.
type DateTime struct {
	// t carries the wall clock in UTC for KindUnspecified
	t    time.Time
	kind Kind
}

// Unspecified tags the wall clock of t as having no zone. The location of t
// is discarded.
func Unspecified(t time.Time) DateTime {
	return DateTime{t: wallUTC(t), kind: KindUnspecified}
}

// UTC tags t, converted to UTC, as KindUTC
func UTC(t time.Time) DateTime {
	return DateTime{t: t.UTC(), kind: KindUTC}
}

// Local tags t, converted to the machine location, as KindLocal
func Local(t time.Time) DateTime {
	return DateTime{t: t.Local(), kind: KindLocal}
}

// From tags t by its location: time.UTC gives KindUTC, anything else
// KindLocal in that location.
func From(t time.Time) DateTime {
	if t.Location() == time.UTC {
		return DateTime{t: t, kind: KindUTC}
	}
	return DateTime{t: t, kind: KindLocal}
}

// Date builds a DateTime from calendar fields. KindLocal uses the machine
// location.
func Date(year int, month time.Month, day, hour, minute, sec int, kind Kind) DateTime {
	loc := time.UTC
	if kind == KindLocal {
		loc = time.Local
	}
	return DateTime{t: time.Date(year, month, day, hour, minute, sec, 0, loc), kind: kind}
}

// Kind returns the zone tag
func (d DateTime) Kind() Kind {
	return d.kind
}

// Time returns the underlying time. For KindUnspecified the wall clock is
// returned in UTC.
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether d holds the zero instant
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Equal compares two values after normalizing both to UTC
func (d DateTime) Equal(other DateTime) bool {
	return EnsureUTC(d).Equal(EnsureUTC(other))
}

// Before compares two values after normalizing both to UTC
func (d DateTime) Before(other DateTime) bool {
	return EnsureUTC(d).Before(EnsureUTC(other))
}

// After compares two values after normalizing both to UTC
func (d DateTime) After(other DateTime) bool {
	return EnsureUTC(d).After(EnsureUTC(other))
}

// String formats d as RFC 3339, without offset when the zone is unknown
func (d DateTime) String() string {
	if d.kind == KindUnspecified {
		return d.t.Format(ISO8601DateTime)
	}
	return d.t.Format(time.RFC3339)
}

func wallUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// EnsureUTC returns d as a UTC time. An unspecified wall clock is read as
// UTC without shifting, a local time is converted.
func EnsureUTC(d DateTime) time.Time {
	// unspecified values already hold their wall clock in UTC
	return d.t.UTC()
}

// EnsureUTCPtr is EnsureUTC for an optional value; nil stays nil
func EnsureUTCPtr(d *DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := EnsureUTC(*d)
	return &t
}

// EnsureLocal returns d in loc, reading an unspecified wall clock as UTC
// first. A nil loc means the machine location.
func EnsureLocal(d DateTime, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return EnsureUTC(d).In(loc)
}

// EnsureLocalPtr is EnsureLocal for an optional value; nil stays nil
func EnsureLocalPtr(d *DateTime, loc *time.Location) *time.Time {
	if d == nil {
		return nil
	}
	t := EnsureLocal(*d, loc)
	return &t
}

// CoerceUTC re-tags every non-nil field as UTC in place: unspecified wall
// clocks are read as UTC and local times are converted.
// Example: timex.CoerceUTC(&row.CreatedAt, &row.UpdatedAt)
func CoerceUTC(fields ...*DateTime) {
	for _, f := range fields {
		if f == nil || f.kind == KindUTC {
			continue
		}
		*f = UTC(EnsureUTC(*f))
	}
}
