package monthgen

import (
	"time"

	"github.com/katalvlaran/calgrid/core"
)

// GridStart returns the first date of the week-aligned grid for anchor:
// the nearest date on or before the 1st of the month whose weekday equals
// firstDayOfWeek.
// Complexity: O(1)
func GridStart(anchor core.YearMonth, firstDayOfWeek time.Weekday) time.Time {
	first := anchor.FirstDay()
	back := (int(first.Weekday()) - int(firstDayOfWeek) + core.DaysPerWeek) % core.DaysPerWeek
	return first.AddDate(0, 0, -back)
}

// WeekCount returns the number of week rows Generate would produce for the
// given configuration, without building the grid.
// Complexity: O(1)
func WeekCount(anchor core.YearMonth, firstDayOfWeek time.Weekday, style core.OutDateStyle) int {
	if style == core.OutDateStyleEndOfGrid {
		return core.GridWeekCount
	}
	lead := (int(anchor.FirstDay().Weekday()) - int(firstDayOfWeek) + core.DaysPerWeek) % core.DaysPerWeek
	covered := lead + anchor.NumDays()
	return (covered + core.DaysPerWeek - 1) / core.DaysPerWeek
}

// DayCount returns the total number of day cells Generate would produce,
// out-dates included. Always a multiple of core.DaysPerWeek.
// Complexity: O(1)
func DayCount(anchor core.YearMonth, firstDayOfWeek time.Weekday, style core.OutDateStyle) int {
	return WeekCount(anchor, firstDayOfWeek, style) * core.DaysPerWeek
}

// Generate builds the complete week grid for anchor. Deterministic: equal
// inputs always yield structurally equal months.
//
// Time:   O(weeks·7)
// Memory: O(weeks·7)
func Generate(anchor core.YearMonth, firstDayOfWeek time.Weekday, style core.OutDateStyle) core.CalendarMonth {
	var (
		first = anchor.FirstDay()
		last  = anchor.LastDay()
		rows  = WeekCount(anchor, firstDayOfWeek, style)
		cur   = GridStart(anchor, firstDayOfWeek)
	)

	weeks := make([][]core.CalendarDay, rows)
	for wi := 0; wi < rows; wi++ {
		week := make([]core.CalendarDay, core.DaysPerWeek)
		for di := 0; di < core.DaysPerWeek; di++ {
			week[di] = core.CalendarDay{Date: cur, Position: classify(cur, first, last)}
			cur = cur.AddDate(0, 0, 1)
		}
		weeks[wi] = week
	}

	return core.CalendarMonth{YearMonth: anchor, Weeks: weeks}
}

// classify tags a date relative to the anchor month's [first, last] span.
func classify(date, first, last time.Time) core.DayPosition {
	switch {
	case date.Before(first):
		return core.PositionOutBefore
	case date.After(last):
		return core.PositionOutAfter
	default:
		return core.PositionInMonth
	}
}
