package holiday

import (
	"fmt"
	"time"
)

// Holiday pairs a recurrence pattern with a display name. The name carries
// no resolution behavior; it only affects formatting and ordering
// tie-breaks.
type Holiday struct {
	name string
	date Pattern
}

// NewFixed creates a named fixed-date holiday.
func NewFixed(name string, month time.Month, day int) (Holiday, error) {
	d, err := NewDayOfMonth(month, day)
	if err != nil {
		return Holiday{}, fmt.Errorf("holiday %q: %w", name, err)
	}
	return Holiday{name: name, date: d}, nil
}

// NewNth creates a named nth-weekday-of-month holiday.
func NewNth(name string, nth Nth, weekday time.Weekday, month time.Month) (Holiday, error) {
	n, err := NewNthWeekday(nth, weekday, month)
	if err != nil {
		return Holiday{}, fmt.Errorf("holiday %q: %w", name, err)
	}
	return Holiday{name: name, date: n}, nil
}

// MustFixed is like NewFixed but panics on an invalid pattern. Intended for
// constant catalogs.
func MustFixed(name string, month time.Month, day int) Holiday {
	h, err := NewFixed(name, month, day)
	if err != nil {
		panic(err)
	}
	return h
}

// MustNth is like NewNth but panics on an invalid pattern. Intended for
// constant catalogs.
func MustNth(name string, nth Nth, weekday time.Weekday, month time.Month) Holiday {
	h, err := NewNth(name, nth, weekday, month)
	if err != nil {
		panic(err)
	}
	return h
}

// Name returns the holiday's display name.
func (h Holiday) Name() string {
	return h.name
}

// Date returns the underlying recurrence pattern.
func (h Holiday) Date() Pattern {
	return h.date
}

// InYear resolves the holiday's date within the given year.
func (h Holiday) InYear(year int) time.Time {
	return InYear(h, year)
}

// Iter returns a bidirectional iterator over the holiday's occurrences.
func (h Holiday) Iter() *Iterator {
	return NewIterator(h)
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s (%s)", h.name, h.date)
}

// After returns the next occurrence at or after date.
func (h Holiday) After(date time.Time) time.Time {
	return h.date.After(date)
}

// Before returns the previous occurrence strictly before date.
func (h Holiday) Before(date time.Time) time.Time {
	return h.date.Before(date)
}

// Matches reports whether date is an occurrence of the holiday.
func (h Holiday) Matches(date time.Time) bool {
	return h.date.Matches(date)
}

func (Holiday) isPattern() {}
