package holiday

import (
	"fmt"
	"time"

	"github.com/ryanobeirne/holiday/internal/dateutil"
)

// The fixed-date scan walks day by day, so its longest possible run is the
// gap between two February 29ths across a skipped century leap year
// (eight years). Anything beyond that means the pattern can never occur.
const maxFixedScan = 9 * 366

// AfterToday returns the next occurrence of p at or after the current local
// date.
func AfterToday(p Pattern) time.Time {
	return p.After(dateutil.Today())
}

// BeforeToday returns the previous occurrence of p strictly before the
// current local date.
func BeforeToday(p Pattern) time.Time {
	return p.Before(dateutil.Today())
}

// FirstDate returns the earliest representable occurrence of p.
func FirstDate(p Pattern) time.Time {
	return p.After(dateutil.MinDate)
}

// LastDate returns the latest representable occurrence of p.
func LastDate(p Pattern) time.Time {
	return p.Before(dateutil.MaxDate)
}

// InYear resolves p within the given year by searching forward from
// January 1.
func InYear(p Pattern, year int) time.Time {
	return p.After(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// After returns the earliest date at or after date whose month and day
// match. The scan is day by day; NewDayOfMonth guarantees the target exists
// in some year, and the cap is a backstop against hand-built impossible
// values such as February 30.
func (d DayOfMonth) After(date time.Time) time.Time {
	check := dateutil.Civil(date)
	for i := 0; i < maxFixedScan; i++ {
		if d.Matches(check) {
			return check
		}
		check = dateutil.NextDay(check)
	}
	panic(fmt.Sprintf("%s can never occur", d))
}

// Before returns the latest date strictly before date whose month and day
// match.
func (d DayOfMonth) Before(date time.Time) time.Time {
	check := dateutil.PrevDay(dateutil.Civil(date))
	for i := 0; i < maxFixedScan; i++ {
		if d.Matches(check) {
			return check
		}
		check = dateutil.PrevDay(check)
	}
	panic(fmt.Sprintf("%s can never occur", d))
}

// After returns the earliest date at or after date matching the rule.
// Months other than the target are skipped in one jump: forward to the
// first of the target month in the current year when the reference month
// precedes it, or in the following year when it has already passed. Within
// the target month the scan advances one day at a time until the
// comparison engine reports a match.
func (n NthWeekdayOfMonth) After(date time.Time) time.Time {
	check := dateutil.Civil(date)
	for {
		if n.Matches(check) {
			return check
		}
		switch {
		case check.Month() < n.Month:
			check = time.Date(check.Year(), n.Month, 1, 0, 0, 0, 0, time.UTC)
		case check.Month() > n.Month:
			check = time.Date(check.Year()+1, n.Month, 1, 0, 0, 0, 0, time.UTC)
		default:
			check = dateutil.NextDay(check)
		}
	}
}

// Before returns the latest date strictly before date matching the rule.
// Symmetric with After, anchored on the last day of the target month:
// jumping back a year when the reference month precedes the target, or to
// the month's end in the same year when it follows.
func (n NthWeekdayOfMonth) Before(date time.Time) time.Time {
	check := dateutil.PrevDay(dateutil.Civil(date))
	for {
		if n.Matches(check) {
			return check
		}
		switch {
		case check.Month() > n.Month:
			check = dateutil.LastOfMonth(time.Date(check.Year(), n.Month, 1, 0, 0, 0, 0, time.UTC))
		case check.Month() < n.Month:
			check = dateutil.LastOfMonth(time.Date(check.Year()-1, n.Month, 1, 0, 0, 0, 0, time.UTC))
		default:
			check = dateutil.PrevDay(check)
		}
	}
}
