package calendar

import (
	"context"
	"time"

	"github.com/katalvlaran/calgrid/core"
)

// ScrollToMonth jumps the viewport to the header of the given month.
// A month outside the configured range is a logged no-op: scroll requests
// racing a range shrink degrade gracefully instead of failing.
func (c *Calendar) ScrollToMonth(ym core.YearMonth) {
	if idx, ok := c.mapper.IndexOfMonth(ym); ok {
		c.viewport.ScrollTo(idx)
		return
	}
	c.logf("calendar: scroll target %s outside range %s, ignoring", ym, c.rng)
}

// AnimateScrollToMonth smooth-scrolls the viewport to the header of the
// given month, blocking until the animation completes or is superseded.
// Out-of-range targets are a logged no-op.
func (c *Calendar) AnimateScrollToMonth(ctx context.Context, ym core.YearMonth) error {
	idx, ok := c.mapper.IndexOfMonth(ym)
	if !ok {
		c.logf("calendar: animated scroll target %s outside range %s, ignoring", ym, c.rng)
		return nil
	}
	return c.viewport.AnimateScrollTo(ctx, idx)
}

// ScrollToDay jumps the viewport to the given day cell. A day absent from
// the current range and configuration is a logged no-op.
func (c *Calendar) ScrollToDay(day core.CalendarDay) {
	if idx, ok := c.mapper.IndexOfDay(day); ok {
		c.viewport.ScrollTo(idx)
		return
	}
	c.logf("calendar: scroll target %s not present in range %s, ignoring", day, c.rng)
}

// AnimateScrollToDay smooth-scrolls the viewport to the given day cell.
// Absent days are a logged no-op.
func (c *Calendar) AnimateScrollToDay(ctx context.Context, day core.CalendarDay) error {
	idx, ok := c.mapper.IndexOfDay(day)
	if !ok {
		c.logf("calendar: animated scroll target %s not present in range %s, ignoring", day, c.rng)
		return nil
	}
	return c.viewport.AnimateScrollTo(ctx, idx)
}

// ScrollToDate is a convenience wrapper constructing the day cell from a
// civil date and position tag.
func (c *Calendar) ScrollToDate(date time.Time, position core.DayPosition) {
	c.ScrollToDay(core.NewDay(date, position))
}

// AnimateScrollToDate is the animated variant of ScrollToDate.
func (c *Calendar) AnimateScrollToDate(ctx context.Context, date time.Time, position core.DayPosition) error {
	return c.AnimateScrollToDay(ctx, core.NewDay(date, position))
}
