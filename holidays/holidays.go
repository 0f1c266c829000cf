// Package holidays provides catalogs of well-known named holidays and a
// tolerant name lookup over them.
package holidays

import (
	"time"

	"github.com/ryanobeirne/holiday"
)

// Globally recognized holidays.
var (
	// New Year's Day: January 1
	NewYearsDay = holiday.MustFixed("New Year's Day", time.January, 1)

	// St. Patrick's Day: March 17
	StPatricksDay = holiday.MustFixed("St. Patrick's Day", time.March, 17)

	// Christmas Eve: December 24
	ChristmasEve = holiday.MustFixed("Christmas Eve", time.December, 24)

	// Christmas: December 25
	Christmas = holiday.MustFixed("Christmas", time.December, 25)

	// New Year's Eve: December 31
	NewYearsEve = holiday.MustFixed("New Year's Eve", time.December, 31)
)

// Holidays observed in the United States.
var (
	// Martin Luther King Jr. Day: 3rd Monday in January
	MLKDay = holiday.MustNth("Martin Luther King Jr. Day", holiday.Third, time.Monday, time.January)

	// Groundhog Day: February 2
	GroundhogDay = holiday.MustFixed("Groundhog Day", time.February, 2)

	// Super Bowl Sunday: 1st Sunday in February
	SuperBowlSunday = holiday.MustNth("Super Bowl Sunday", holiday.First, time.Sunday, time.February)

	// President's Day: 3rd Monday in February
	PresidentsDay = holiday.MustNth("President's Day", holiday.Third, time.Monday, time.February)

	// Valentine's Day: February 14
	ValentinesDay = holiday.MustFixed("Valentine's Day", time.February, 14)

	// Daylight Saving Time Starts: 2nd Sunday in March
	DSTStart = holiday.MustNth("Daylight Saving Time Starts", holiday.Second, time.Sunday, time.March)

	// April Fool's Day: April 1
	AprilFoolsDay = holiday.MustFixed("April Fool's Day", time.April, 1)

	// Kentucky Derby: 1st Saturday in May
	KentuckyDerby = holiday.MustNth("Kentucky Derby", holiday.First, time.Saturday, time.May)

	// Memorial Day: Last Monday in May
	MemorialDay = holiday.MustNth("Memorial Day", holiday.Last, time.Monday, time.May)

	// Mother's Day: 2nd Sunday in May
	MothersDay = holiday.MustNth("Mother's Day", holiday.Second, time.Sunday, time.May)

	// Flag Day: June 14
	FlagDay = holiday.MustFixed("Flag Day", time.June, 14)

	// Father's Day: 3rd Sunday in June
	FathersDay = holiday.MustNth("Father's Day", holiday.Third, time.Sunday, time.June)

	// Independence Day: July 4
	IndependenceDay = holiday.MustFixed("Independence Day", time.July, 4)

	// Labor Day: 1st Monday in September
	LaborDay = holiday.MustNth("Labor Day", holiday.First, time.Monday, time.September)

	// Halloween: October 31
	Halloween = holiday.MustFixed("Halloween", time.October, 31)

	// Columbus Day: 2nd Monday in October
	ColumbusDay = holiday.MustNth("Columbus Day", holiday.Second, time.Monday, time.October)

	// Veteran's Day: November 11
	VeteransDay = holiday.MustFixed("Veteran's Day", time.November, 11)

	// Daylight Saving Time Ends: 1st Sunday in November
	DSTEnd = holiday.MustNth("Daylight Saving Time Ends", holiday.First, time.Sunday, time.November)

	// Thanksgiving: 4th Thursday in November
	Thanksgiving = holiday.MustNth("Thanksgiving", holiday.Fourth, time.Thursday, time.November)
)

// Global returns the globally recognized holiday catalog.
func Global() []holiday.Holiday {
	return []holiday.Holiday{
		NewYearsDay,
		StPatricksDay,
		ChristmasEve,
		Christmas,
		NewYearsEve,
	}
}

// UnitedStates returns the United States holiday catalog.
func UnitedStates() []holiday.Holiday {
	return []holiday.Holiday{
		MLKDay,
		GroundhogDay,
		SuperBowlSunday,
		PresidentsDay,
		ValentinesDay,
		DSTStart,
		AprilFoolsDay,
		KentuckyDerby,
		MemorialDay,
		MothersDay,
		FlagDay,
		FathersDay,
		IndependenceDay,
		LaborDay,
		Halloween,
		ColumbusDay,
		VeteransDay,
		DSTEnd,
		Thanksgiving,
	}
}

// All returns every catalog holiday.
func All() []holiday.Holiday {
	return append(Global(), UnitedStates()...)
}
