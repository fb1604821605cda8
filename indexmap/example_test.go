package indexmap_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/indexmap"
)

// ExampleMapper walks the first positions of a one-month index space:
// the header slot at 0, then the day cells in grid order.
func ExampleMapper() {
	rng, _ := core.NewRange(core.YM(2023, time.January), core.YM(2023, time.January))
	m, _ := indexmap.New(rng, time.Monday, core.OutDateStyleEndOfRow)

	fmt.Println("count:", m.Count())
	for pos := 0; pos < 3; pos++ {
		entry, _ := m.Resolve(pos)
		fmt.Printf("%d: %s\n", pos, entry.Item)
	}

	idx, _ := m.IndexOfDay(core.NewDay(core.Date(2023, time.January, 1), core.PositionInMonth))
	fmt.Println("index of Jan 1:", idx)

	// Output:
	// count: 43
	// 0: MonthHeader(2023-01)
	// 1: DayCell(2022-12-26 (OutDateBefore))
	// 2: DayCell(2022-12-27 (OutDateBefore))
	// index of Jan 1: 7
}
