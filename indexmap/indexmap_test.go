package indexmap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/indexmap"
	"github.com/katalvlaran/calgrid/monthgen"
)

func newMapper(t *testing.T, start, end core.YearMonth, style core.OutDateStyle) *indexmap.Mapper {
	t.Helper()
	rng, err := core.NewRange(start, end)
	require.NoError(t, err)
	m, err := indexmap.New(rng, time.Monday, style)
	require.NoError(t, err)
	return m
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := indexmap.New(
		core.Range{Start: core.YM(2023, time.May), End: core.YM(2023, time.April)},
		time.Monday, core.OutDateStyleEndOfRow)
	assert.ErrorIs(t, err, core.ErrInvalidRange)
}

// TestCount_SumsHeadersAndDays checks Count against a by-hand sum of
// 1 + dayCount over every month of the range.
func TestCount_SumsHeadersAndDays(t *testing.T) {
	start, end := core.YM(2022, time.November), core.YM(2023, time.March)
	m := newMapper(t, start, end, core.OutDateStyleEndOfRow)

	want := 0
	for ym := start; !ym.After(end); ym = ym.Next() {
		want += 1 + monthgen.DayCount(ym, time.Monday, core.OutDateStyleEndOfRow)
	}
	assert.Equal(t, want, m.Count())
}

// TestCount_SingleMonthJanuary2023 pins the reference scenario: one header
// plus 42 day cells.
func TestCount_SingleMonthJanuary2023(t *testing.T) {
	jan := core.YM(2023, time.January)
	m := newMapper(t, jan, jan, core.OutDateStyleEndOfRow)
	assert.Equal(t, 43, m.Count())
}

func TestCount_EndOfGridIsSixWeeksPerMonth(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.December), core.OutDateStyleEndOfGrid)
	assert.Equal(t, 12*(1+core.GridWeekCount*core.DaysPerWeek), m.Count())
}

// TestResolve_EveryPositionInBounds resolves the full index space: no
// position inside [0, Count) may be absent, and Count itself must be.
func TestResolve_EveryPositionInBounds(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.June), core.OutDateStyleEndOfRow)

	count := m.Count()
	for pos := 0; pos < count; pos++ {
		entry, ok := m.Resolve(pos)
		require.True(t, ok, "position %d", pos)
		switch entry.Item.Kind {
		case indexmap.ItemMonthHeader:
			assert.Equal(t, entry.Month.YearMonth, entry.Item.Month.YearMonth)
		case indexmap.ItemDayCell:
			assert.Equal(t, entry.Month.YearMonth, entry.Item.Day.YearMonth(),
				"day cell at %d must be owned by its month", pos)
		}
	}

	_, ok := m.Resolve(count)
	assert.False(t, ok)
	_, ok = m.Resolve(-1)
	assert.False(t, ok)
}

// TestResolve_IndexOf_RoundTrip checks IndexOf(Resolve(i)) == i across the
// whole space for both styles.
func TestResolve_IndexOf_RoundTrip(t *testing.T) {
	for _, style := range []core.OutDateStyle{core.OutDateStyleEndOfRow, core.OutDateStyleEndOfGrid} {
		m := newMapper(t, core.YM(2022, time.December), core.YM(2023, time.February), style)
		for pos := 0; pos < m.Count(); pos++ {
			entry, ok := m.Resolve(pos)
			require.True(t, ok)

			var got int
			switch entry.Item.Kind {
			case indexmap.ItemMonthHeader:
				got, ok = m.IndexOfMonth(entry.Item.Month.YearMonth)
			case indexmap.ItemDayCell:
				got, ok = m.IndexOfDay(entry.Item.Day)
			}
			require.True(t, ok, "style %s position %d", style, pos)
			assert.Equal(t, pos, got, "style %s", style)
		}
	}
}

func TestResolve_LayoutOrder(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.February), core.OutDateStyleEndOfRow)

	entry, ok := m.Resolve(0)
	require.True(t, ok)
	assert.Equal(t, indexmap.ItemMonthHeader, entry.Item.Kind)
	assert.Equal(t, core.YM(2023, time.January), entry.Item.Month.YearMonth)

	entry, ok = m.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, indexmap.ItemDayCell, entry.Item.Kind)
	assert.Equal(t, core.Date(2022, time.December, 26), entry.Item.Day.Date)

	// January (EndOfRow, Monday) holds 42 cells, so February's header is at 43.
	entry, ok = m.Resolve(43)
	require.True(t, ok)
	assert.Equal(t, indexmap.ItemMonthHeader, entry.Item.Kind)
	assert.Equal(t, core.YM(2023, time.February), entry.Item.Month.YearMonth)
}

func TestIndexOfMonth_OutsideRange(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.June), core.OutDateStyleEndOfRow)

	_, ok := m.IndexOfMonth(core.YM(2022, time.December))
	assert.False(t, ok)
	_, ok = m.IndexOfMonth(core.YM(2023, time.July))
	assert.False(t, ok)
}

func TestIndexOfDay_PositionTagMatters(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.February), core.OutDateStyleEndOfRow)

	// Feb 1 exists twice: as January's trailing out-date and in-month in
	// February. The position tag selects the slot.
	feb1 := core.Date(2023, time.February, 1)

	asOutDate, ok := m.IndexOfDay(core.NewDay(feb1, core.PositionOutAfter))
	require.True(t, ok)
	asInMonth, ok := m.IndexOfDay(core.NewDay(feb1, core.PositionInMonth))
	require.True(t, ok)
	assert.NotEqual(t, asOutDate, asInMonth)
	assert.Less(t, asOutDate, asInMonth, "January's slot comes first")
}

func TestIndexOfDay_AbsentCell(t *testing.T) {
	// April 2023 with Monday first day: Apr 30 (Sunday) ends the final row
	// exactly, so an EndOfRow grid has no trailing out-dates at all.
	m := newMapper(t, core.YM(2023, time.April), core.YM(2023, time.April), core.OutDateStyleEndOfRow)

	_, ok := m.IndexOfDay(core.NewDay(core.Date(2023, time.May, 1), core.PositionOutAfter))
	assert.False(t, ok, "cell only exists under EndOfGrid padding")

	// Owner outside the range.
	_, ok = m.IndexOfDay(core.NewDay(core.Date(2023, time.May, 10), core.PositionInMonth))
	assert.False(t, ok)
}

func TestMonth_MemoizedAndBounded(t *testing.T) {
	m := newMapper(t, core.YM(2023, time.January), core.YM(2023, time.March), core.OutDateStyleEndOfGrid)

	a, ok := m.Month(core.YM(2023, time.February))
	require.True(t, ok)
	b, ok := m.Month(core.YM(2023, time.February))
	require.True(t, ok)
	assert.True(t, a.Equal(b))

	_, ok = m.Month(core.YM(2023, time.April))
	assert.False(t, ok)
}
