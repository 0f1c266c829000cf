package holiday

import (
	"cmp"
	"time"

	"github.com/ryanobeirne/holiday/internal/dateutil"
)

// Matches reports whether date's month and day equal the rule's.
func (d DayOfMonth) Matches(date time.Time) bool {
	return d.Month == date.Month() && d.Day == date.Day()
}

// Matches reports whether date is the rule's occurrence of its weekday.
// A Last rule matches any date that is the final occurrence of the weekday
// in its own month; a numbered rule matches when the rank derived from the
// date equals the rule exactly.
func (n NthWeekdayOfMonth) Matches(date time.Time) bool {
	if n.Nth == Last && date.Weekday() == n.Weekday {
		return dateutil.IsLastWeekday(date)
	}
	return n == FromDate(date)
}

// Compare orders two patterns for sorting, primarily by month. Within the
// same month a fixed date sorts before any nth-weekday rule regardless of
// the days involved; this asymmetry is deliberate and only needs to be
// self-consistent for sorting mixed catalogs, not a true calendar order.
// Holiday values are unwrapped to their underlying patterns (names do not
// participate; see Holiday.Compare).
func Compare(a, b Pattern) int {
	x, y := unwrap(a), unwrap(b)
	switch xv := x.(type) {
	case DayOfMonth:
		switch yv := y.(type) {
		case DayOfMonth:
			if xv.Month == yv.Month {
				return cmp.Compare(xv.Day, yv.Day)
			}
			return cmp.Compare(xv.Month, yv.Month)
		case NthWeekdayOfMonth:
			if xv.Month == yv.Month {
				return -1
			}
			return cmp.Compare(xv.Month, yv.Month)
		}
	case NthWeekdayOfMonth:
		switch yv := y.(type) {
		case DayOfMonth:
			if xv.Month == yv.Month {
				return 1
			}
			return cmp.Compare(xv.Month, yv.Month)
		case NthWeekdayOfMonth:
			if xv.Month != yv.Month {
				return cmp.Compare(xv.Month, yv.Month)
			}
			if xv.Nth != yv.Nth {
				return cmp.Compare(xv.Nth, yv.Nth)
			}
			return cmp.Compare(xv.Weekday, yv.Weekday)
		}
	}
	return 0
}

func unwrap(p Pattern) Pattern {
	if h, ok := p.(Holiday); ok {
		return h.date
	}
	return p
}

// Compare orders two holidays by their patterns, breaking ties by name.
func (h Holiday) Compare(other Holiday) int {
	if c := Compare(h.date, other.date); c != 0 {
		return c
	}
	return cmp.Compare(h.name, other.name)
}

// Equal reports whether two holidays have the same pattern and name.
func (h Holiday) Equal(other Holiday) bool {
	return h.date == other.date && h.name == other.name
}
