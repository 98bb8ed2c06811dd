package kernel

import (
	"fmt"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// ISODateLayout is the wire and storage form of a calendar date. ISO dates
// sort chronologically as plain strings, which the schedule views rely on.
const ISODateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not created through one
// of the constructor functions. It is returned when validating a zero-value
// Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate or DateFromString")

// Date is a calendar-date value object. It carries no time-of-day and no
// timezone: two orders scheduled for "2025-01-06" compare equal regardless
// of where or when they were entered.
//
// A delivery week is keyed by the ISO week convention: the Monday on or
// before the date. WeekStart derives that key; it is never stored.
type Date struct {
	day time.Time
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromString parses an ISO "YYYY-MM-DD" date.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not an ISO date: %w", s, err))
	}
	return Date{day: t}, nil
}

// DateOf truncates a timestamp to its calendar date (UTC).
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Validate returns ErrDateIsNotConstructed for a zero-value Date.
func (d Date) Validate() error {
	if d.day.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// String returns the ISO "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.day.Format(ISODateLayout)
}

// Time returns the date as a UTC midnight timestamp, for persistence.
func (d Date) Time() time.Time {
	return d.day
}

// IsEqual reports whether two dates name the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.day.Before(other.day)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{day: d.day.AddDate(0, 0, n)}
}

// Weekday returns the day of week of the date.
func (d Date) Weekday() time.Weekday {
	return d.day.Weekday()
}

// WeekStart returns the Monday on or before the date. It is the grouping key
// for weekly schedule views: every date from a Monday through the following
// Sunday maps to that Monday.
func (d Date) WeekStart() Date {
	// time.Weekday counts Sunday as 0, ISO weeks start on Monday.
	offset := (int(d.day.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday closing the ISO week containing the date.
func (d Date) WeekEnd() Date {
	return d.WeekStart().AddDays(6)
}

// WeekRange formats the displayed range of the week containing the date, as
// "[weekStart, weekStart+6d]" ISO strings.
func (d Date) WeekRange() string {
	return fmt.Sprintf("%s - %s", d.WeekStart(), d.WeekEnd())
}
