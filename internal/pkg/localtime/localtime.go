// Package localtime pins calendar-day arithmetic to the business timezone
// (America/Guayaquil, UTC-5, no DST).
package localtime

import (
	"time"

	"cuponera-backend/internal/pkg/errs"
)

const offsetSeconds = -5 * 60 * 60

var ErrInvalidRange = errs.Kind(errs.ErrInvalidArgument, "start date must not be after end date")

// Zone is a fixed zone so the result does not depend on the host tzdata.
var Zone = time.FixedZone("America/Guayaquil", offsetSeconds)

// StartOfDay returns 00:00:00 of t's local calendar day.
func StartOfDay(t time.Time) time.Time {
	l := t.In(Zone)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Zone)
}

// NextDayStart returns 00:00:00 of the local day after t's.
func NextDayStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// DayRange expands the calendar days start..end to the half-open interval
// [from, until). until is the first instant outside the range, so callers
// filter with from <= t < until.
func DayRange(start, end time.Time) (from, until time.Time, err error) {
	from, until = StartOfDay(start), NextDayStart(end)
	if !from.Before(until) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, until, nil
}

// ParseDate accepts YYYY-MM-DD (interpreted in Zone) or RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, Zone); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "invalid date "+s), errs.ErrInvalidArgument)
	}
	return t, nil
}
