// Package indexmap declares the grid item union addressed by flattened
// positions.
package indexmap

import (
	"fmt"

	"github.com/katalvlaran/calgrid/core"
)

// ItemKind discriminates the two variants of GridItem.
type ItemKind int

const (
	// ItemMonthHeader is the single header slot preceding a month's days.
	ItemMonthHeader ItemKind = iota

	// ItemDayCell is one day cell of a month grid.
	ItemDayCell
)

// String returns a human-readable kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemMonthHeader:
		return "MonthHeader"
	case ItemDayCell:
		return "DayCell"
	default:
		return "Unknown"
	}
}

// GridItem is the atomic unit addressed by a flattened integer position:
// either a month header or a single day cell. Month is populated for
// headers, Day for day cells.
type GridItem struct {
	Kind  ItemKind
	Month core.CalendarMonth
	Day   core.CalendarDay
}

// String renders the item for diagnostics.
func (it GridItem) String() string {
	switch it.Kind {
	case ItemMonthHeader:
		return fmt.Sprintf("MonthHeader(%s)", it.Month.YearMonth)
	case ItemDayCell:
		return fmt.Sprintf("DayCell(%s)", it.Day)
	default:
		return "Unknown"
	}
}

// Entry pairs a resolved GridItem with the month grid that owns its slot.
// Keeping the owning month alongside the item lets visibility queries
// recover the month of a day cell without re-deriving it from the date.
type Entry struct {
	Item  GridItem
	Month core.CalendarMonth
}
