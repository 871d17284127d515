/*
Package datex provides calendar arithmetic helpers: period boundaries,
business day math and inclusive time ranges.
*/
package datex

import (
	"iter"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v2"
)

var conf = &now.Config{
	WeekStartDay: time.Monday,
}

// BeginningOfDay returns the first instant of t's day.
func BeginningOfDay(t time.Time) time.Time {
	return conf.With(t).BeginningOfDay()
}

// BeginningOfWeek returns the first instant of t's week.
// Weeks start on Monday.
func BeginningOfWeek(t time.Time) time.Time {
	return conf.With(t).BeginningOfWeek()
}

// BeginningOfMonth returns the first instant of t's month.
func BeginningOfMonth(t time.Time) time.Time {
	return conf.With(t).BeginningOfMonth()
}

// BeginningOfQuarter returns the first instant of t's quarter.
func BeginningOfQuarter(t time.Time) time.Time {
	return conf.With(t).BeginningOfQuarter()
}

// BeginningOfYear returns the first instant of t's year.
func BeginningOfYear(t time.Time) time.Time {
	return conf.With(t).BeginningOfYear()
}

// EndOfDay returns the last instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return conf.With(t).EndOfDay()
}

// EndOfWeek returns the last instant of t's week.
// Weeks start on Monday.
func EndOfWeek(t time.Time) time.Time {
	return conf.With(t).EndOfWeek()
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return conf.With(t).EndOfMonth()
}

// EndOfQuarter returns the last instant of t's quarter.
func EndOfQuarter(t time.Time) time.Time {
	return conf.With(t).EndOfQuarter()
}

// EndOfYear returns the last instant of t's year.
func EndOfYear(t time.Time) time.Time {
	return conf.With(t).EndOfYear()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddBusinessDays returns t moved by n business days, skipping
// Saturdays and Sundays in either direction.
func AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}

	for n > 0 {
		t = t.AddDate(0, 0, step)
		if !IsWeekend(t) {
			n--
		}
	}

	return t
}

// BusinessDaysBetween counts the business days from a through b, both
// days included. The count is negative when a is after b.
func BusinessDaysBetween(a, b time.Time) int {
	if a.After(b) {
		return -BusinessDaysBetween(b, a)
	}

	count := 0
	for d := BeginningOfDay(a); !d.After(b); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}

	return count
}

// DaysBetween counts the calendar days from a to b, ignoring the time
// of day. The count is negative when a is after b.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(bd.Sub(ad).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Range is an inclusive time range.
type Range struct {
	From time.Time
	To   time.Time
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// Contains reports whether t falls within the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Overlaps reports whether the ranges share at least one instant.
func (r Range) Overlaps(other Range) bool {
	return !r.From.After(other.To) && !other.From.After(r.To)
}

// Days returns an iterator over the midnights of every calendar day
// the range touches, from first to last.
func (r Range) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := BeginningOfDay(r.From); !d.After(r.To); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

var locations = xsync.NewMapOf[*time.Location]()

// Location returns the time.Location with the given name, caching
// loaded locations for reuse.
func Location(name string) (*time.Location, error) {
	if loc, ok := locations.Load(name); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading location: %v", name)
	}

	actual, _ := locations.LoadOrStore(name, loc)

	return actual, nil
}
