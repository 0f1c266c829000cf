// Package dateutil provides the calendar day arithmetic shared by the
// pattern resolution engine. All functions operate on civil dates:
// time.Time values pinned to midnight UTC with no sub-day component.
package dateutil

import "time"

var (
	// MinDate is the earliest date the resolver will consider.
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

	// MaxDate is the latest date the resolver will consider.
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Civil strips the time-of-day and location from t, leaving the calendar
// day as midnight UTC.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day as a civil date.
func Today() time.Time {
	return Civil(time.Now())
}

// NextDay returns the day after t.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// PrevDay returns the day before t.
func PrevDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// FirstOfMonth returns the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns the last day of t's month. It is computed by rolling
// over to the first day of the following month and stepping back one day,
// so leap years fall out of the rollover without a day-count table.
func LastOfMonth(t time.Time) time.Time {
	nextMonth, nextYear := t.Month()+1, t.Year()
	if t.Month() == time.December {
		nextMonth, nextYear = time.January, t.Year()+1
	}
	return PrevDay(time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, time.UTC))
}

// IsLastWeekday reports whether t is the final occurrence of its weekday
// within its month. Only days inside t's own month count: a same-weekday
// day at the start of the next month must not reject the month's true
// final occurrence (May 25 2020 is the last Monday in May even though
// June 1 is a Monday).
func IsLastWeekday(t time.Time) bool {
	end := LastOfMonth(t)
	for d := NextDay(t); !d.After(end); d = NextDay(d) {
		if d.Weekday() == t.Weekday() {
			return false
		}
	}
	return true
}

// DaysUntil returns the number of whole days from one civil date to another.
// Negative when to precedes from.
func DaysUntil(from, to time.Time) int {
	return int(Civil(to).Sub(Civil(from)) / (24 * time.Hour))
}

// MaxDays returns the greatest number of days the month can have in any
// year: 29 for February, 30 or 31 otherwise.
func MaxDays(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
