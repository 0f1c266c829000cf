// Package ical renders named holidays as iCalendar data: RFC 5545 text via
// Encode and RFC 6321 xCal XML via XCal. Each holiday becomes an all-day
// VEVENT anchored at its next occurrence in the chosen year, repeating with
// a yearly RRULE derived from its pattern.
package ical

import (
	"fmt"
	"io"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/ryanobeirne/holiday"
)

const defaultProdID = "-//holiday//Pattern Export//EN"

// Options configures calendar rendering.
type Options struct {
	// ProdID overrides the PRODID property.
	ProdID string

	// Year anchors each event's DTSTART at the holiday's occurrence in
	// that year. Zero means the current year.
	Year int
}

func (o Options) prodID() string {
	if o.ProdID != "" {
		return o.ProdID
	}
	return defaultProdID
}

func (o Options) year() int {
	if o.Year != 0 {
		return o.Year
	}
	return time.Now().Year()
}

// Calendar builds a VCALENDAR containing one recurring all-day event per
// holiday.
func Calendar(hs []holiday.Holiday, opts Options) (*goical.Calendar, error) {
	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropProductID, opts.prodID())
	cal.Props.SetText(goical.PropVersion, "2.0")

	for _, h := range hs {
		event, err := newEvent(h, opts.year())
		if err != nil {
			return nil, err
		}
		cal.Children = append(cal.Children, event.Component)
	}
	return cal, nil
}

// Encode writes the holidays as iCalendar text.
func Encode(w io.Writer, hs []holiday.Holiday, opts Options) error {
	cal, err := Calendar(hs, opts)
	if err != nil {
		return err
	}
	if err := goical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func newEvent(h holiday.Holiday, year int) (*goical.Event, error) {
	rule, err := RRule(h.Date())
	if err != nil {
		return nil, fmt.Errorf("holiday %q: %w", h.Name(), err)
	}

	event := goical.NewEvent()
	event.Props.SetText(goical.PropUID, uuid.NewString())
	event.Props.SetText(goical.PropSummary, h.Name())
	event.Props.SetDateTime(goical.PropDateTimeStamp, time.Now())
	event.Props.Set(dateProp(goical.PropDateTimeStart, h.InYear(year)))
	event.Props.Set(recurProp(rule))
	return event, nil
}

// recurProp builds the RRULE property with its value stored raw: RECUR
// values keep their semicolons, so text escaping would corrupt the rule.
func recurProp(rule string) *goical.Prop {
	p := goical.NewProp(goical.PropRecurrenceRule)
	p.Value = rule
	return p
}

// dateProp builds a DATE-valued (all-day) property.
func dateProp(name string, date time.Time) *goical.Prop {
	p := goical.NewProp(name)
	p.SetValueType(goical.ValueDate)
	p.Value = date.Format("20060102")
	return p
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// RRule derives the yearly recurrence rule string for a pattern: BYMONTHDAY
// for fixed dates, BYDAY with a positive rank or -1 (last) for nth-weekday
// rules.
func RRule(p holiday.Pattern) (string, error) {
	opt := rrule.ROption{Freq: rrule.YEARLY}
	switch v := p.(type) {
	case holiday.Holiday:
		return RRule(v.Date())
	case holiday.DayOfMonth:
		opt.Bymonth = []int{int(v.Month)}
		opt.Bymonthday = []int{v.Day}
	case holiday.NthWeekdayOfMonth:
		rank := int(v.Nth)
		if v.Nth == holiday.Last {
			rank = -1
		}
		wd := rruleWeekdays[v.Weekday]
		opt.Bymonth = []int{int(v.Month)}
		opt.Byweekday = []rrule.Weekday{wd.Nth(rank)}
	default:
		return "", fmt.Errorf("unsupported pattern type %T", p)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("build rrule for %s: %w", p, err)
	}
	return r.OrigOptions.RRuleString(), nil
}
