// Command holical lists the holiday catalog and exports it as iCalendar or
// xCal data.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
