package holidays

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"

	"github.com/ryanobeirne/holiday"
)

// ErrUnknownHoliday is returned by FromName for text that matches no
// catalog entry.
var ErrUnknownHoliday = errors.New("unknown holiday")

// byName maps normalized names and common aliases to catalog entries.
var byName = map[string]holiday.Holiday{
	"new years":                   NewYearsDay,
	"new years eve":               NewYearsEve,
	"st. patricks":                StPatricksDay,
	"st patricks":                 StPatricksDay,
	"martin luther king jr.":      MLKDay,
	"groundhog":                   GroundhogDay,
	"superbowl sunday":            SuperBowlSunday,
	"superbowl":                   SuperBowlSunday,
	"presidents":                  PresidentsDay,
	"valentines":                  ValentinesDay,
	"daylight saving time starts": DSTStart,
	"april fools":                 AprilFoolsDay,
	"kentucky derby":              KentuckyDerby,
	"memorial":                    MemorialDay,
	"mothers":                     MothersDay,
	"flag":                        FlagDay,
	"independence":                IndependenceDay,
	"july 4th":                    IndependenceDay,
	"july fourth":                 IndependenceDay,
	"fourth of july":              IndependenceDay,
	"fathers":                     FathersDay,
	"labor":                       LaborDay,
	"halloween":                   Halloween,
	"columbus":                    ColumbusDay,
	"veterans":                    VeteransDay,
	"daylight saving time ends":   DSTEnd,
	"thanksgiving":                Thanksgiving,
	"christmas eve":               ChristmasEve,
	"christmas":                   Christmas,
}

// normalize lowercases the name and strips apostrophes, a leading article,
// and a trailing "day", so "The Mother's Day" and "mothers" land on the
// same key.
func normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.TrimPrefix(s, "the")
	s = strings.TrimSuffix(strings.TrimSpace(s), " day")
	return strings.TrimSpace(s)
}

// Find looks a holiday up by free-text name. The result is empty when the
// text matches no catalog entry.
func Find(name string) mo.Option[holiday.Holiday] {
	if h, ok := byName[normalize(name)]; ok {
		return mo.Some(h)
	}
	return mo.None[holiday.Holiday]()
}

// FromName looks a holiday up by free-text name, reporting
// ErrUnknownHoliday for unrecognized text. The miss is recoverable: callers
// processing several inputs can skip the bad one and continue.
func FromName(name string) (holiday.Holiday, error) {
	h, ok := Find(name).Get()
	if !ok {
		return holiday.Holiday{}, fmt.Errorf("%q: %w", name, ErrUnknownHoliday)
	}
	return h, nil
}
