package calendar

import (
	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/indexmap"
)

// FirstVisibleMonth returns the month owning the first visible position.
// Falls back to the first month of the range when the viewport has not
// reported a window yet (before first layout) or the window is unresolvable.
func (c *Calendar) FirstVisibleMonth() core.CalendarMonth {
	return c.boundaryMonth(false)
}

// LastVisibleMonth returns the month owning the last visible position, with
// the same fallback as FirstVisibleMonth.
func (c *Calendar) LastVisibleMonth() core.CalendarMonth {
	return c.boundaryMonth(true)
}

// FirstVisibleDay returns the first visible day cell. When the first
// visible position is a month header, the day immediately after it is
// returned instead. ok=false when no day is resolvable.
func (c *Calendar) FirstVisibleDay() (core.CalendarDay, bool) {
	day, _, ok := c.boundaryDay(false)
	return day, ok
}

// LastVisibleDay returns the last visible day cell. When the last visible
// position is a month header, the day immediately before it is returned
// instead. ok=false when no day is resolvable — notably a header at the
// very start of the data with nothing before it.
func (c *Calendar) LastVisibleDay() (core.CalendarDay, bool) {
	day, _, ok := c.boundaryDay(true)
	return day, ok
}

// FirstVisibleWeek returns the 7-day row of the first visible month that
// contains the first visible day, or nil when no boundary day resolves.
func (c *Calendar) FirstVisibleWeek() []core.CalendarDay {
	return c.boundaryWeek(false)
}

// LastVisibleWeek returns the 7-day row containing the last visible day,
// or nil when no boundary day resolves.
func (c *Calendar) LastVisibleWeek() []core.CalendarDay {
	return c.boundaryWeek(true)
}

// boundaryMonth resolves the month at one end of the visible window. A day
// cell contributes the owning month tracked alongside it in the cache, so
// out-dates attribute to their anchor month rather than their civil month.
func (c *Calendar) boundaryMonth(last bool) core.CalendarMonth {
	if first, lastIdx, ok := c.viewport.VisibleIndexWindow(); ok {
		idx := first
		if last {
			idx = lastIdx
		}
		if entry, ok := c.entryAt(idx); ok {
			return entry.Month
		}
	}
	month, _ := c.mapper.Month(c.rng.Start)
	return month
}

// boundaryDay resolves the day cell at one end of the visible window,
// stepping one position inward past a month header. Month generation always
// yields at least one day per header, so the step lands on a day whenever
// one exists; anything else reports ok=false.
func (c *Calendar) boundaryDay(last bool) (core.CalendarDay, core.CalendarMonth, bool) {
	first, lastIdx, ok := c.viewport.VisibleIndexWindow()
	if !ok {
		return core.CalendarDay{}, core.CalendarMonth{}, false
	}
	idx, step := first, 1
	if last {
		idx, step = lastIdx, -1
	}

	entry, ok := c.entryAt(idx)
	if !ok {
		return core.CalendarDay{}, core.CalendarMonth{}, false
	}
	if entry.Item.Kind == indexmap.ItemMonthHeader {
		entry, ok = c.entryAt(idx + step)
		if !ok || entry.Item.Kind != indexmap.ItemDayCell {
			return core.CalendarDay{}, core.CalendarMonth{}, false
		}
	}
	return entry.Item.Day, entry.Month, true
}

// boundaryWeek locates the week row of the boundary month containing the
// boundary day.
func (c *Calendar) boundaryWeek(last bool) []core.CalendarDay {
	day, month, ok := c.boundaryDay(last)
	if !ok {
		return nil
	}
	return month.WeekContaining(day)
}
