package holiday

import (
	"fmt"
	"time"

	"github.com/ryanobeirne/holiday/internal/dateutil"
)

// Pattern is an annually repeating calendar rule. The two concrete rules
// are DayOfMonth and NthWeekdayOfMonth; Holiday wraps either one with a
// display name. The interface is closed to this package.
type Pattern interface {
	// After returns the earliest occurrence of the pattern at or after date.
	After(date time.Time) time.Time

	// Before returns the latest occurrence of the pattern strictly before date.
	Before(date time.Time) time.Time

	// Matches reports whether date is an occurrence of the pattern.
	Matches(date time.Time) bool

	isPattern()
}

// Nth identifies which occurrence of a weekday within a month a pattern
// refers to. Last always names the final occurrence; Fifth only matches in
// months that actually contain five of the weekday.
type Nth int

// Occurrence ranks within a month.
const (
	First Nth = iota + 1
	Second
	Third
	Fourth
	Fifth
	Last
)

var nthNames = map[Nth]string{
	First:  "1st",
	Second: "2nd",
	Third:  "3rd",
	Fourth: "4th",
	Fifth:  "5th",
	Last:   "Last",
}

func (n Nth) String() string {
	if s, ok := nthNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Nth(%d)", int(n))
}

// DayOfMonth is a fixed annual date, e.g. "October 31".
type DayOfMonth struct {
	Month time.Month
	Day   int
}

// NewDayOfMonth builds a fixed-date rule. Month/day combinations that can
// never occur in any year (February 30, April 31, ...) are rejected here so
// the resolution scan cannot run off the end of the calendar looking for
// them.
func NewDayOfMonth(month time.Month, day int) (DayOfMonth, error) {
	if month < time.January || month > time.December {
		return DayOfMonth{}, fmt.Errorf("invalid month: %d", int(month))
	}
	if day < 1 || day > dateutil.MaxDays(month) {
		return DayOfMonth{}, fmt.Errorf("%s has no day %d", month, day)
	}
	return DayOfMonth{Month: month, Day: day}, nil
}

func (d DayOfMonth) String() string {
	return fmt.Sprintf("%s %d", d.Month, d.Day)
}

func (DayOfMonth) isPattern() {}

// NthWeekdayOfMonth is a relative annual date, e.g. "4th Thursday in
// November".
type NthWeekdayOfMonth struct {
	Nth     Nth
	Weekday time.Weekday
	Month   time.Month
}

// NewNthWeekday builds a relative-date rule. A zero or out-of-range ordinal
// is a programmer error and is rejected immediately.
func NewNthWeekday(nth Nth, weekday time.Weekday, month time.Month) (NthWeekdayOfMonth, error) {
	if nth < First || nth > Last {
		return NthWeekdayOfMonth{}, fmt.Errorf("ordinal out of range: %d", int(nth))
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return NthWeekdayOfMonth{}, fmt.Errorf("invalid weekday: %d", int(weekday))
	}
	if month < time.January || month > time.December {
		return NthWeekdayOfMonth{}, fmt.Errorf("invalid month: %d", int(month))
	}
	return NthWeekdayOfMonth{Nth: nth, Weekday: weekday, Month: month}, nil
}

// FromDate derives the relative rule a concrete date satisfies: its weekday,
// its month, and the count of that weekday from the start of the month
// through the date itself. The derived ordinal is always numeric; whether
// the date is also the last of its weekday is a separate question answered
// by dateutil.IsLastWeekday.
func FromDate(date time.Time) NthWeekdayOfMonth {
	date = dateutil.Civil(date)
	nth := 0
	for d := dateutil.FirstOfMonth(date); ; d = dateutil.NextDay(d) {
		if d.Weekday() == date.Weekday() {
			nth++
		}
		if !d.Before(date) {
			break
		}
	}
	return NthWeekdayOfMonth{Nth: Nth(nth), Weekday: date.Weekday(), Month: date.Month()}
}

func (n NthWeekdayOfMonth) String() string {
	return fmt.Sprintf("%s %s in %s", n.Nth, n.Weekday, n.Month)
}

func (NthWeekdayOfMonth) isPattern() {}
