package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNext(t *testing.T, it *Iterator) time.Time {
	t.Helper()
	d, ok := it.Next()
	require.True(t, ok)
	return d
}

func mustPrev(t *testing.T, it *Iterator) time.Time {
	t.Helper()
	d, ok := it.Prev()
	require.True(t, ok)
	return d
}

func TestIteratorInterleaved(t *testing.T) {
	tgives := MustNth("Thanksgiving", Fourth, time.Thursday, time.November)

	it := tgives.Iter().At(ymd(2020, 11, 1))
	assert.Equal(t, ymd(2020, 11, 26), mustNext(t, it))
	assert.Equal(t, ymd(2021, 11, 25), mustNext(t, it))
	assert.Equal(t, ymd(2022, 11, 24), mustNext(t, it))
	assert.Equal(t, ymd(2021, 11, 25), mustPrev(t, it))
	assert.Equal(t, ymd(2020, 11, 26), mustPrev(t, it))
	assert.Equal(t, ymd(2019, 11, 28), mustPrev(t, it))
}

func TestIteratorFirstWednesdayJanuary(t *testing.T) {
	jan, err := NewNthWeekday(First, time.Wednesday, time.January)
	require.NoError(t, err)

	it := NewIterator(jan).At(ymd(2020, 1, 1))
	assert.Equal(t, ymd(2020, 1, 1), mustNext(t, it))
	assert.Equal(t, ymd(2021, 1, 6), mustNext(t, it))
	assert.Equal(t, ymd(2022, 1, 5), mustNext(t, it))
	assert.Equal(t, ymd(2023, 1, 4), mustNext(t, it))
}

func TestIteratorFifthWednesdayDecember(t *testing.T) {
	dec, err := NewNthWeekday(Fifth, time.Wednesday, time.December)
	require.NoError(t, err)

	it := NewIterator(dec).At(ymd(2020, 12, 1))
	assert.Equal(t, ymd(2020, 12, 30), mustNext(t, it))
	assert.Equal(t, ymd(2021, 12, 29), mustNext(t, it))
	assert.Equal(t, ymd(2025, 12, 31), mustNext(t, it))
}

func TestIteratorEndingAt(t *testing.T) {
	xmas, err := NewDayOfMonth(time.December, 25)
	require.NoError(t, err)

	it := NewIterator(xmas).At(ymd(2020, 1, 1)).EndingAt(ymd(2022, 12, 25))
	assert.Equal(t, ymd(2020, 12, 25), mustNext(t, it))
	assert.Equal(t, ymd(2021, 12, 25), mustNext(t, it))

	// EndingAt resolves the bound to the occurrence strictly before its
	// argument, but the window then widens back out to the argument
	// itself, so an occurrence landing exactly on it is still yielded.
	assert.Equal(t, ymd(2022, 12, 25), mustNext(t, it))
	_, ok := it.Next()
	assert.False(t, ok)

	// Exhaustion is stable until the window is widened again.
	_, ok = it.Next()
	assert.False(t, ok)

	it.EndingAt(ymd(2024, 1, 1))
	assert.Equal(t, ymd(2023, 12, 25), mustNext(t, it))
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorStartingAt(t *testing.T) {
	xmas, err := NewDayOfMonth(time.December, 25)
	require.NoError(t, err)

	it := NewIterator(xmas).StartingAt(ymd(2020, 1, 1)).At(ymd(2021, 6, 1))
	assert.Equal(t, ymd(2021, 12, 25), mustNext(t, it))
	assert.Equal(t, ymd(2020, 12, 25), mustPrev(t, it))

	// One more step is allowed because exhaustion is checked against the
	// cursor, not the produced date; after that the cursor has passed the
	// lower bound.
	assert.Equal(t, ymd(2019, 12, 25), mustPrev(t, it))
	_, ok := it.Prev()
	assert.False(t, ok)
}

func TestIteratorDefaultsSpanRepresentableRange(t *testing.T) {
	flag, err := NewDayOfMonth(time.June, 14)
	require.NoError(t, err)

	it := NewIterator(flag)
	assert.Equal(t, FirstDate(flag), it.first)
	assert.Equal(t, LastDate(flag), it.last)
	assert.Equal(t, it.first, it.current)
}
