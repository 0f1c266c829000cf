package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/ryanobeirne/holiday"
	"github.com/ryanobeirne/holiday/holidays"
)

func TestRRule(t *testing.T) {
	tests := []struct {
		name     string
		pattern  holiday.Pattern
		contains []string
	}{
		{
			name:     "fixed date",
			pattern:  holiday.DayOfMonth{Month: time.October, Day: 31},
			contains: []string{"FREQ=YEARLY", "BYMONTH=10", "BYMONTHDAY=31"},
		},
		{
			name:     "fourth thursday",
			pattern:  holiday.NthWeekdayOfMonth{Nth: holiday.Fourth, Weekday: time.Thursday, Month: time.November},
			contains: []string{"FREQ=YEARLY", "BYMONTH=11", "4TH"},
		},
		{
			name:     "last monday",
			pattern:  holiday.NthWeekdayOfMonth{Nth: holiday.Last, Weekday: time.Monday, Month: time.May},
			contains: []string{"FREQ=YEARLY", "BYMONTH=5", "-1MO"},
		},
		{
			name:     "holiday wrapper unwraps",
			pattern:  holidays.Thanksgiving,
			contains: []string{"FREQ=YEARLY", "BYMONTH=11", "4TH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := RRule(tt.pattern)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, rule, want)
			}
		})
	}
}

// The generated rule must resolve to the same dates as the pattern itself.
func TestRRuleAgreesWithResolver(t *testing.T) {
	patterns := []holiday.Pattern{
		holiday.DayOfMonth{Month: time.October, Day: 31},
		holiday.NthWeekdayOfMonth{Nth: holiday.Fourth, Weekday: time.Thursday, Month: time.November},
		holiday.NthWeekdayOfMonth{Nth: holiday.Last, Weekday: time.Monday, Month: time.May},
	}

	for _, p := range patterns {
		rule, err := RRule(p)
		require.NoError(t, err)

		r, err := rrule.StrToRRule(rule)
		require.NoError(t, err)
		r.DTStart(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

		got := r.Between(
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
			true,
		)
		require.NotEmpty(t, got, "pattern %v", p)
		for _, occ := range got {
			assert.True(t, p.Matches(occ), "pattern %v: rrule produced %v", p, occ)
		}
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []holiday.Holiday{holidays.Thanksgiving, holidays.Halloween}, Options{Year: 2021})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Thanksgiving")
	assert.Contains(t, out, "SUMMARY:Halloween")
	assert.Contains(t, out, "RRULE:FREQ=YEARLY")
	assert.NotContains(t, out, `\;`, "recurrence rule semicolons must not be escaped")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20211125")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20211031")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestCalendarProps(t *testing.T) {
	cal, err := Calendar([]holiday.Holiday{holidays.Christmas}, Options{ProdID: "-//test//EN", Year: 2020})
	require.NoError(t, err)

	assert.Equal(t, "-//test//EN", cal.Props.Get("PRODID").Value)
	assert.Equal(t, "2.0", cal.Props.Get("VERSION").Value)
	require.Len(t, cal.Children, 1)

	event := cal.Children[0]
	assert.Equal(t, "VEVENT", event.Name)
	assert.Equal(t, "Christmas", event.Props.Get("SUMMARY").Value)
	assert.Equal(t, "20201225", event.Props.Get("DTSTART").Value)
	assert.NotEmpty(t, event.Props.Get("UID").Value)
}
