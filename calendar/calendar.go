package calendar

import (
	"log"
	"time"

	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/indexmap"
	"github.com/katalvlaran/calgrid/poscache"
)

// Calendar is the state controller backing one scrollable calendar grid.
// Not safe for concurrent use; a single owner performs all mutation.
type Calendar struct {
	viewport Viewport
	logger   *log.Logger

	rng              core.Range
	firstDayOfWeek   time.Weekday
	style            core.OutDateStyle
	visibleItemState VisibleItemState
	hasInitialState  bool

	mapper *indexmap.Mapper
	cache  *poscache.Cache[indexmap.Entry]
	count  int
}

// New builds a controller over the inclusive [start, end] month range.
// Fails with core.ErrInvalidRange on an inverted range and ErrNilViewport
// on a missing viewport. When a restored VisibleItemState was supplied,
// its index is forwarded to the viewport as the initial position hint.
func New(viewport Viewport, start, end core.YearMonth, opts ...Option) (*Calendar, error) {
	if viewport == nil {
		return nil, ErrNilViewport
	}
	c := &Calendar{
		viewport:       viewport,
		rng:            core.Range{Start: start, End: end},
		firstDayOfWeek: time.Monday,
		style:          core.OutDateStyleEndOfRow,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.rebuild(c.rng, c.firstDayOfWeek, c.style); err != nil {
		return nil, err
	}
	if c.hasInitialState {
		c.viewport.RequestInitialScrollTo(c.visibleItemState.FirstVisibleIndex)
	}
	return c, nil
}

// rebuild validates the candidate configuration and, only on success,
// swaps in a fresh mapper, rebinds the cache, and recomputes the count.
// Either the whole configuration applies or none of it does.
func (c *Calendar) rebuild(rng core.Range, firstDayOfWeek time.Weekday, style core.OutDateStyle) error {
	mapper, err := indexmap.New(rng, firstDayOfWeek, style)
	if err != nil {
		return err
	}
	c.rng = rng
	c.firstDayOfWeek = firstDayOfWeek
	c.style = style
	c.mapper = mapper
	if c.cache == nil {
		c.cache = poscache.New(mapper.Resolve)
	} else {
		c.cache.Bind(mapper.Resolve)
	}
	c.count = mapper.Count()
	return nil
}

// Range returns the current inclusive month range.
func (c *Calendar) Range() core.Range { return c.rng }

// FirstDayOfWeek returns the weekday opening every week row.
func (c *Calendar) FirstDayOfWeek() time.Weekday { return c.firstDayOfWeek }

// OutDateStyle returns the current trailing out-date policy.
func (c *Calendar) OutDateStyle() core.OutDateStyle { return c.style }

// VisibleItemState returns the carried scroll-restoration state.
func (c *Calendar) VisibleItemState() VisibleItemState { return c.visibleItemState }

// SetVisibleItemState records the scroll position the host wants persisted.
func (c *Calendar) SetVisibleItemState(state VisibleItemState) {
	c.visibleItemState = state
}

// SetRange replaces both range bounds together. Validation happens before
// anything mutates, so a failed call leaves the previous range, cache, and
// count fully intact. Equal bounds are a no-op, preserving the cache.
func (c *Calendar) SetRange(start, end core.YearMonth) error {
	next := core.Range{Start: start, End: end}
	if next == c.rng {
		return nil
	}
	return c.rebuild(next, c.firstDayOfWeek, c.style)
}

// SetFirstDayOfWeek reconfigures week alignment. No-op on an equal value;
// otherwise the whole cache is invalidated and the count recomputed.
func (c *Calendar) SetFirstDayOfWeek(wd time.Weekday) {
	if wd == c.firstDayOfWeek {
		return
	}
	// Only the range can fail validation; it is unchanged here.
	_ = c.rebuild(c.rng, wd, c.style)
}

// SetOutDateStyle reconfigures trailing out-date padding. No-op on an equal
// value; otherwise every cached position is invalidated and ItemCount
// changes in place — callers never reconstruct the controller for this.
func (c *Calendar) SetOutDateStyle(style core.OutDateStyle) {
	if style == c.style {
		return
	}
	_ = c.rebuild(c.rng, c.firstDayOfWeek, style)
}

// ItemCount returns the total number of addressable positions under the
// current configuration.
func (c *Calendar) ItemCount() int { return c.count }

// ItemAt resolves a position through the cache; ok=false when the position
// is out of bounds (memoized, so repeated misses stay cheap).
func (c *Calendar) ItemAt(position int) (indexmap.GridItem, bool) {
	entry, ok := c.cache.Get(position)
	if !ok {
		return indexmap.GridItem{}, false
	}
	return entry.Item, true
}

// MonthAt returns the month grid owning the item at position.
func (c *Calendar) MonthAt(position int) (core.CalendarMonth, bool) {
	entry, ok := c.cache.Get(position)
	if !ok {
		return core.CalendarMonth{}, false
	}
	return entry.Month, true
}

// AllItems materializes the full item sequence by resolving every position
// through the cache. Finite and re-derivable at any time; the result is a
// fresh slice on every call.
// Time: O(itemCount)
func (c *Calendar) AllItems() []indexmap.GridItem {
	items := make([]indexmap.GridItem, 0, c.count)
	for pos := 0; pos < c.count; pos++ {
		if entry, ok := c.cache.Get(pos); ok {
			items = append(items, entry.Item)
		}
	}
	return items
}

// entryAt is the cache read-through shared by the visibility queries.
func (c *Calendar) entryAt(position int) (indexmap.Entry, bool) {
	return c.cache.Get(position)
}

// logf reports a diagnostic when a logger is installed.
func (c *Calendar) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
