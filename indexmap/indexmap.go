package indexmap

import (
	"time"

	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/monthgen"
)

// Mapper computes the flattened index space for one fixed configuration.
// Construct with New; replace wholesale when the configuration changes.
type Mapper struct {
	rng            core.Range
	firstDayOfWeek time.Weekday
	style          core.OutDateStyle

	// generated month grids, memoized per anchor
	months map[core.YearMonth]core.CalendarMonth
}

// New validates the range and returns a Mapper for it.
// Complexity: O(1)
func New(rng core.Range, firstDayOfWeek time.Weekday, style core.OutDateStyle) (*Mapper, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return &Mapper{
		rng:            rng,
		firstDayOfWeek: firstDayOfWeek,
		style:          style,
		months:         make(map[core.YearMonth]core.CalendarMonth),
	}, nil
}

// Range returns the configured month range.
func (m *Mapper) Range() core.Range { return m.rng }

// Count returns the total number of flattened positions: one header plus one
// slot per day cell, summed over every month in the range. Never negative.
// Time: O(months), no grid allocation.
func (m *Mapper) Count() int {
	total := 0
	for ym := m.rng.Start; !ym.After(m.rng.End); ym = ym.Next() {
		total += 1 + monthgen.DayCount(ym, m.firstDayOfWeek, m.style)
	}
	return total
}

// Month returns the generated grid for ym, memoized per anchor;
// ok=false when ym is outside the range.
func (m *Mapper) Month(ym core.YearMonth) (core.CalendarMonth, bool) {
	if !m.rng.Contains(ym) {
		return core.CalendarMonth{}, false
	}
	if cached, ok := m.months[ym]; ok {
		return cached, true
	}
	generated := monthgen.Generate(ym, m.firstDayOfWeek, m.style)
	m.months[ym] = generated
	return generated, true
}

// Resolve maps a flattened position to its Entry, walking months from the
// start of the range and accumulating a running offset; ok=false when the
// position is out of bounds.
// Time: O(months walked)
func (m *Mapper) Resolve(position int) (Entry, bool) {
	if position < 0 {
		return Entry{}, false
	}
	offset := 0
	for ym := m.rng.Start; !ym.After(m.rng.End); ym = ym.Next() {
		if position == offset {
			month, _ := m.Month(ym)
			return Entry{
				Item:  GridItem{Kind: ItemMonthHeader, Month: month},
				Month: month,
			}, true
		}
		dayCount := monthgen.DayCount(ym, m.firstDayOfWeek, m.style)
		if position <= offset+dayCount {
			month, _ := m.Month(ym)
			day, _ := month.DayAt(position - offset - 1)
			return Entry{
				Item:  GridItem{Kind: ItemDayCell, Day: day},
				Month: month,
			}, true
		}
		offset += 1 + dayCount
	}
	return Entry{}, false
}

// IndexOfMonth returns the header position of ym; ok=false when ym is
// outside the range.
// Time: O(months before ym)
func (m *Mapper) IndexOfMonth(ym core.YearMonth) (int, bool) {
	if !m.rng.Contains(ym) {
		return 0, false
	}
	offset := 0
	for cur := m.rng.Start; cur.Before(ym); cur = cur.Next() {
		offset += 1 + monthgen.DayCount(cur, m.firstDayOfWeek, m.style)
	}
	return offset, true
}

// IndexOfDay returns the position of a day cell, matching the full
// (date, position) pair; ok=false when the owning month is outside the
// range or the cell does not exist under the current configuration
// (an EndOfRow grid has fewer out-dates than an EndOfGrid one).
// Time: O(months before owner + weeks·7)
func (m *Mapper) IndexOfDay(day core.CalendarDay) (int, bool) {
	owner := day.YearMonth()
	header, ok := m.IndexOfMonth(owner)
	if !ok {
		return 0, false
	}
	month, _ := m.Month(owner)
	cell, ok := month.OffsetOf(day)
	if !ok {
		return 0, false
	}
	return header + 1 + cell, true
}
