package core

import (
	"fmt"
	"time"
)

// Date returns midnight UTC on the given civil date. All CalendarDay dates
// are built through this helper so that equal civil dates are equal values.
// Complexity: O(1)
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates t to midnight UTC on the same civil date, reading the
// civil date in t's own location.
func Midnight(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// CalendarDay is one day cell of a month grid: a civil date plus its
// DayPosition within the owning month. Two days are equal when both the
// date and the position match; the same civil date may therefore appear as
// distinct values in adjacent month grids (once as an out-date, once in-month).
type CalendarDay struct {
	Date     time.Time
	Position DayPosition
}

// NewDay builds a CalendarDay with the date normalized to midnight UTC.
func NewDay(date time.Time, position DayPosition) CalendarDay {
	return CalendarDay{Date: Midnight(date), Position: position}
}

// Equal reports structural equality on the (date, position) pair.
func (d CalendarDay) Equal(other CalendarDay) bool {
	return d.Position == other.Position && d.Date.Equal(other.Date)
}

// YearMonth returns the month grid this day belongs to. An out-date belongs
// to the adjacent anchor month, not the month of its own civil date.
func (d CalendarDay) YearMonth() YearMonth {
	ym := YearMonthOf(d.Date)
	switch d.Position {
	case PositionOutBefore:
		return ym.Next()
	case PositionOutAfter:
		return ym.Previous()
	default:
		return ym
	}
}

// String renders the day as "2006-01-02 (Position)".
func (d CalendarDay) String() string {
	return fmt.Sprintf("%s (%s)", d.Date.Format("2006-01-02"), d.Position)
}
