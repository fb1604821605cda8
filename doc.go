// Package calgrid is the data model behind a scrollable calendar grid:
// deterministic month generation, a flattened index space over headers and
// day cells, lazy position caching, and viewport-driven visibility.
//
// What calgrid gives you:
//
//   - Deterministic month grids — (anchor, first day of week, out-date
//     style) in, week rows of exactly 7 tagged days out; no wall clock,
//     no ambient locale, ever.
//   - A single integer address space — every month header and day cell
//     across a configured range maps to one stable position, so any
//     list-shaped rendering surface can drive it.
//   - Lazy, invalidation-correct caching — positions resolve on demand and
//     the whole cache drops atomically when any configuration input
//     changes, because the index space shifts non-locally.
//   - Viewport-derived visibility — first/last visible month, day, and
//     week computed from whatever index window the host reports.
//
// The packages, leaf-first:
//
//	core/     — YearMonth, CalendarDay, CalendarMonth, Range, enums, errors
//	monthgen/ — pure month grid generation and O(1) sizing arithmetic
//	indexmap/ — position ↔ item mapping across a month range
//	poscache/ — generic position-addressed memo with negative caching
//	calendar/ — the state controller: config mutation, visibility, scrolling
//	tui/      — a bubbletea/lipgloss rendering shell consuming the model
//
// A minimal session:
//
//	cal, err := calendar.New(viewport,
//		core.YM(2023, time.January), core.YM(2024, time.December),
//		calendar.WithFirstDayOfWeek(time.Monday),
//		calendar.WithOutDateStyle(core.OutDateStyleEndOfGrid))
//	if err != nil { ... }
//	for i := 0; i < cal.ItemCount(); i++ {
//		item, _ := cal.ItemAt(i)
//		render(item)
//	}
//	cal.ScrollToMonth(core.YM(2024, time.March))
//	week := cal.FirstVisibleWeek()
//
// The rendering shell, saved-state persistence, and locale defaults stay
// outside the model: the controller consumes a minimal Viewport contract
// and exposes a flat, JSON-round-trippable SavedState record.
package calgrid
