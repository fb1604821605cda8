package core

// CalendarMonth is one fully generated month grid: the anchor YearMonth plus
// its week rows. It is immutable once produced by the generator.
//
// Invariants (enforced by monthgen, relied on everywhere else):
//   - every week holds exactly DaysPerWeek entries;
//   - weeks are in chronological order;
//   - the flattened day sequence is strictly increasing in date.
type CalendarMonth struct {
	YearMonth YearMonth
	Weeks     [][]CalendarDay
}

// DayCount returns the total number of day cells in the grid,
// out-dates included.
func (m CalendarMonth) DayCount() int {
	return len(m.Weeks) * DaysPerWeek
}

// Days returns the flattened day sequence in chronological order.
// The result is freshly allocated; mutating it does not affect the month.
// Complexity: O(weeks·7)
func (m CalendarMonth) Days() []CalendarDay {
	days := make([]CalendarDay, 0, m.DayCount())
	for _, week := range m.Weeks {
		days = append(days, week...)
	}
	return days
}

// DayAt returns the day cell at the given flattened offset (row-major),
// with ok=false when the offset is outside [0, DayCount).
func (m CalendarMonth) DayAt(offset int) (CalendarDay, bool) {
	if offset < 0 || offset >= m.DayCount() {
		return CalendarDay{}, false
	}
	return m.Weeks[offset/DaysPerWeek][offset%DaysPerWeek], true
}

// OffsetOf returns the flattened offset of the given day within the grid,
// matching on the full (date, position) pair; ok=false when absent.
// Complexity: O(weeks·7)
func (m CalendarMonth) OffsetOf(day CalendarDay) (int, bool) {
	for wi, week := range m.Weeks {
		for di, d := range week {
			if d.Equal(day) {
				return wi*DaysPerWeek + di, true
			}
		}
	}
	return 0, false
}

// WeekContaining returns the week row holding the given day, or nil when the
// day is not part of this month's grid.
func (m CalendarMonth) WeekContaining(day CalendarDay) []CalendarDay {
	for _, week := range m.Weeks {
		for _, d := range week {
			if d.Equal(day) {
				return week
			}
		}
	}
	return nil
}

// Equal reports structural equality of two month grids.
func (m CalendarMonth) Equal(other CalendarMonth) bool {
	if m.YearMonth != other.YearMonth || len(m.Weeks) != len(other.Weeks) {
		return false
	}
	for wi, week := range m.Weeks {
		if len(week) != len(other.Weeks[wi]) {
			return false
		}
		for di, d := range week {
			if !d.Equal(other.Weeks[wi][di]) {
				return false
			}
		}
	}
	return true
}
