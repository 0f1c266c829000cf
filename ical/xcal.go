package ical

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/ryanobeirne/holiday"
)

// xCal namespace (RFC 6321).
const xcalNS = "urn:ietf:params:xml:ns:icalendar-2.0"

var xcalWeekdays = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// XCal builds the xCal document for the holidays: an <icalendar> root with
// one <vevent> per holiday carrying uid, summary, a date-valued dtstart,
// and a structured yearly <rrule> recur.
func XCal(hs []holiday.Holiday, opts Options) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", xcalNS)
	vcal := root.CreateElement("vcalendar")

	props := vcal.CreateElement("properties")
	props.CreateElement("prodid").CreateElement("text").SetText(opts.prodID())
	props.CreateElement("version").CreateElement("text").SetText("2.0")

	comps := vcal.CreateElement("components")
	for _, h := range hs {
		if err := addVEvent(comps, h, opts.year()); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func addVEvent(comps *etree.Element, h holiday.Holiday, year int) error {
	event := comps.CreateElement("vevent")
	props := event.CreateElement("properties")

	props.CreateElement("uid").CreateElement("text").SetText(uuid.NewString())
	props.CreateElement("summary").CreateElement("text").SetText(h.Name())
	props.CreateElement("dtstart").CreateElement("date").SetText(h.InYear(year).Format("2006-01-02"))

	recur := props.CreateElement("rrule").CreateElement("recur")
	recur.CreateElement("freq").SetText("YEARLY")
	switch v := h.Date().(type) {
	case holiday.DayOfMonth:
		recur.CreateElement("bymonth").SetText(strconv.Itoa(int(v.Month)))
		recur.CreateElement("bymonthday").SetText(strconv.Itoa(v.Day))
	case holiday.NthWeekdayOfMonth:
		rank := int(v.Nth)
		if v.Nth == holiday.Last {
			rank = -1
		}
		recur.CreateElement("bymonth").SetText(strconv.Itoa(int(v.Month)))
		recur.CreateElement("byday").SetText(fmt.Sprintf("%d%s", rank, xcalWeekdays[v.Weekday]))
	default:
		return fmt.Errorf("holiday %q: unsupported pattern type %T", h.Name(), v)
	}
	return nil
}
