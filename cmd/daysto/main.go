// Command daysto prints the number of days until each named holiday or
// free-text date given on the command line.
//
//	daysto thanksgiving "new year's day" "next friday"
//
// Arguments are tried against the holiday catalog first; anything
// unrecognized falls back to natural-language date parsing. Inputs that
// parse as neither are reported and skipped.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/ryanobeirne/holiday"
	"github.com/ryanobeirne/holiday/holidays"
	"github.com/ryanobeirne/holiday/internal/dateutil"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: daysto <holiday or date>...")
		os.Exit(2)
	}

	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	today := dateutil.Today()
	failed := 0
	for _, arg := range args {
		if h, ok := holidays.Find(arg).Get(); ok {
			next := holiday.AfterToday(h)
			fmt.Printf("Days until %s: %d\n", h.Name(), dateutil.DaysUntil(today, next))
			continue
		}

		res, err := parser.Parse(arg, time.Now())
		if err != nil || res == nil {
			slog.Error("unknown holiday", "input", arg)
			failed++
			continue
		}
		fmt.Printf("Days until %s: %d\n", arg, dateutil.DaysUntil(today, res.Time))
	}

	if failed == len(args) {
		os.Exit(1)
	}
}
