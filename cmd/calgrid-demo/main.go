// Command calgrid-demo runs the terminal calendar shell over a configurable
// month range.
//
// Usage:
//
//	calgrid-demo [-from 2023-01] [-to 2024-12] [-first-day monday] [-fixed-grid] [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/calgrid/calendar"
	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/tui"
)

func main() {
	from := flag.String("from", "", "start month, YYYY-MM (default: 6 months back)")
	to := flag.String("to", "", "end month, YYYY-MM (default: 18 months ahead)")
	firstDay := flag.String("first-day", "monday", "first day of the week (e.g. monday, sunday)")
	fixedGrid := flag.Bool("fixed-grid", false, "pad every month to 6 week rows")
	verbose := flag.Bool("v", false, "log out-of-range scroll diagnostics to stderr")
	flag.Parse()

	now := time.Now()
	start, err := parseMonth(*from, core.YearMonthOf(now).AddMonths(-6))
	if err != nil {
		log.Fatalf("bad -from: %v", err)
	}
	end, err := parseMonth(*to, core.YearMonthOf(now).AddMonths(18))
	if err != nil {
		log.Fatalf("bad -to: %v", err)
	}
	wd, err := parseWeekday(*firstDay)
	if err != nil {
		log.Fatalf("bad -first-day: %v", err)
	}

	style := core.OutDateStyleEndOfRow
	if *fixedGrid {
		style = core.OutDateStyleEndOfGrid
	}

	opts := []calendar.Option{
		calendar.WithFirstDayOfWeek(wd),
		calendar.WithOutDateStyle(style),
	}
	if *verbose {
		opts = append(opts, calendar.WithLogger(log.New(os.Stderr, "calgrid: ", log.LstdFlags)))
	}

	model, err := tui.NewModel(start, end, opts...)
	if err != nil {
		log.Fatalf("building calendar: %v", err)
	}
	model.SetToday(now)
	model.Calendar().ScrollToMonth(core.YearMonthOf(now))

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}

	// Print the persistable record on exit so a wrapper script can stash it.
	if data, err := model.Calendar().State().Marshal(); err == nil {
		fmt.Println(string(data))
	}
}

// parseMonth reads "YYYY-MM", falling back to def on empty input.
func parseMonth(s string, def core.YearMonth) (core.YearMonth, error) {
	if s == "" {
		return def, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return core.YearMonth{}, fmt.Errorf("%q is not YYYY-MM: %w", s, err)
	}
	return core.YearMonthOf(t), nil
}

// parseWeekday matches a case-insensitive English weekday name.
func parseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
