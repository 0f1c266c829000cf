package holiday

import (
	"time"

	"github.com/ryanobeirne/holiday/internal/dateutil"
)

// Iterator walks the occurrences of a pattern in both directions within a
// bounded window of dates. The window defaults to the pattern's earliest
// and latest representable occurrences. The cursor is shared between the
// two directions, so forward and backward steps may be interleaved.
//
// An Iterator holds mutable cursor state and must not be shared between
// goroutines.
type Iterator struct {
	pattern Pattern
	first   time.Time
	last    time.Time
	current time.Time
}

// NewIterator returns an iterator over p's occurrences, bounded by the
// representable date range and positioned at the earliest occurrence.
func NewIterator(p Pattern) *Iterator {
	first := FirstDate(p)
	return &Iterator{
		pattern: p,
		first:   first,
		last:    LastDate(p),
		current: first,
	}
}

// At repositions the cursor to the day before date, so the next forward
// step yields the occurrence at or after date. The window widens to include
// date if it falls outside.
func (it *Iterator) At(date time.Time) *Iterator {
	date = dateutil.Civil(date)
	it.current = dateutil.PrevDay(date)
	it.widen(date)
	return it
}

// StartingAt sets the window's lower bound to the occurrence at or after
// date.
func (it *Iterator) StartingAt(date time.Time) *Iterator {
	date = dateutil.Civil(date)
	it.first = it.pattern.After(date)
	it.widen(date)
	return it
}

// EndingAt sets the window's upper bound to the occurrence strictly before
// date.
func (it *Iterator) EndingAt(date time.Time) *Iterator {
	date = dateutil.Civil(date)
	it.last = it.pattern.Before(date)
	it.widen(date)
	return it
}

// widen grows the window to include date when it lies outside.
func (it *Iterator) widen(date time.Time) {
	if date.Before(it.first) {
		it.first = date
	}
	if date.After(it.last) {
		it.last = date
	}
}

// Next advances the cursor to the following occurrence and returns it.
// The second result is false once the occurrence would pass the window's
// upper bound; the cursor is left in place so a later EndingAt can resume
// the traversal.
func (it *Iterator) Next() (time.Time, bool) {
	next := it.pattern.After(dateutil.NextDay(it.current))
	if next.After(it.last) {
		return time.Time{}, false
	}
	it.current = next
	return next, true
}

// Prev moves the cursor to the preceding occurrence and returns it. The
// second result is false once the cursor has passed the window's lower
// bound.
func (it *Iterator) Prev() (time.Time, bool) {
	prev := it.pattern.Before(it.current)
	if it.current.Before(it.first) {
		return time.Time{}, false
	}
	it.current = prev
	return prev, true
}
