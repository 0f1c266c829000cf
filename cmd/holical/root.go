package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ryanobeirne/holiday"
	"github.com/ryanobeirne/holiday/holidays"
	"github.com/ryanobeirne/holiday/ical"
	"github.com/ryanobeirne/holiday/internal/dateutil"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "holical",
		Short:        "Inspect and export the holiday catalog",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(icsCmd())
	cmd.AddCommand(xcalCmd())
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog holidays in calendar order",
		RunE: func(_ *cobra.Command, _ []string) error {
			hs := holidays.All()
			slices.SortFunc(hs, holiday.Holiday.Compare)

			today := dateutil.Today()
			for _, h := range hs {
				next := holiday.AfterToday(h)
				fmt.Printf("%-45s %s  (in %d days)\n",
					h.String(), next.Format("2006-01-02"), dateutil.DaysUntil(today, next))
			}
			return nil
		},
	}
}

func icsCmd() *cobra.Command {
	var output string
	var year int

	cmd := &cobra.Command{
		Use:   "ics [holiday]...",
		Short: "Export holidays as an iCalendar file",
		RunE: func(_ *cobra.Command, args []string) error {
			hs, err := selectHolidays(args)
			if err != nil {
				return err
			}
			return withOutput(output, func(w io.Writer) error {
				return ical.Encode(w, hs, ical.Options{Year: year})
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().IntVar(&year, "year", 0, "Anchor year for event start dates (default: current)")
	return cmd
}

func xcalCmd() *cobra.Command {
	var output string
	var year int

	cmd := &cobra.Command{
		Use:   "xcal [holiday]...",
		Short: "Export holidays as xCal XML",
		RunE: func(_ *cobra.Command, args []string) error {
			hs, err := selectHolidays(args)
			if err != nil {
				return err
			}
			doc, err := ical.XCal(hs, ical.Options{Year: year})
			if err != nil {
				return err
			}
			doc.Indent(2)
			return withOutput(output, func(w io.Writer) error {
				_, err := doc.WriteTo(w)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().IntVar(&year, "year", 0, "Anchor year for event start dates (default: current)")
	return cmd
}

// selectHolidays resolves name arguments against the catalog, or returns
// the whole catalog when none are given. An unrecognized name fails the
// command.
func selectHolidays(names []string) ([]holiday.Holiday, error) {
	if len(names) == 0 {
		return holidays.All(), nil
	}
	hs := make([]holiday.Holiday, 0, len(names))
	for _, name := range names {
		h, err := holidays.FromName(name)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}
	return hs, nil
}

func withOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
