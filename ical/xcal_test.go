package ical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanobeirne/holiday"
	"github.com/ryanobeirne/holiday/holidays"
)

func TestXCal(t *testing.T) {
	doc, err := XCal([]holiday.Holiday{holidays.Thanksgiving, holidays.Halloween, holidays.MemorialDay}, Options{Year: 2021})
	require.NoError(t, err)

	root := doc.SelectElement("icalendar")
	require.NotNil(t, root)
	assert.Equal(t, xcalNS, root.SelectAttrValue("xmlns", ""))

	vcal := root.SelectElement("vcalendar")
	require.NotNil(t, vcal)
	assert.Equal(t, "2.0", vcal.FindElement("properties/version/text").Text())

	events := vcal.FindElements("components/vevent")
	require.Len(t, events, 3)

	summaries := make([]string, 0, len(events))
	for _, ev := range events {
		summaries = append(summaries, ev.FindElement("properties/summary/text").Text())
		assert.NotEmpty(t, ev.FindElement("properties/uid/text").Text())
		assert.Equal(t, "YEARLY", ev.FindElement("properties/rrule/recur/freq").Text())
	}
	assert.Equal(t, []string{"Thanksgiving", "Halloween", "Memorial Day"}, summaries)

	tgives := events[0]
	assert.Equal(t, "2021-11-25", tgives.FindElement("properties/dtstart/date").Text())
	assert.Equal(t, "11", tgives.FindElement("properties/rrule/recur/bymonth").Text())
	assert.Equal(t, "4TH", tgives.FindElement("properties/rrule/recur/byday").Text())

	halloween := events[1]
	assert.Equal(t, "31", halloween.FindElement("properties/rrule/recur/bymonthday").Text())

	memorial := events[2]
	assert.Equal(t, "-1MO", memorial.FindElement("properties/rrule/recur/byday").Text())
}
