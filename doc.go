// Package holiday defines annually repeating calendar dates and resolves
// them to concrete days.
//
// A pattern is either a fixed date ("October 31") or an nth weekday of a
// month ("4th Thursday in November"). Patterns answer successor and
// predecessor queries against any reference date, compare against concrete
// dates and against each other, and enumerate their occurrences through a
// bidirectional windowed iterator.
//
//	pastover, _ := holiday.NewNth("Pastover", holiday.First, time.Friday, time.April)
//	pastover.InYear(2021)                  // 2021-04-02
//	holiday.AfterToday(pastover)           // next occurrence from today
//
//	it := pastover.Iter().At(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
//	next, ok := it.Next()                  // 2021-04-02, true
//
// Predefined holiday catalogs and name lookup live in the holidays
// subpackage; iCalendar export lives in the ical subpackage.
package holiday
