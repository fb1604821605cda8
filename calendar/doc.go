// Package calendar orchestrates the calgrid data model for one scrollable
// calendar surface.
//
// Calendar owns the mutable configuration — month range, first day of the
// week, out-date style — and keeps three derived pieces consistent with it:
// an indexmap.Mapper for the flattened index space, a poscache.Cache
// memoizing resolved positions, and the total item count. Every setter
// validates first, applies atomically, and invalidates the cache wholesale;
// the flattened index space shifts non-locally when any upstream parameter
// changes, so incremental patching is never attempted.
//
// The host rendering surface participates through the Viewport interface:
// it reports the window of currently visible index positions and accepts
// scroll requests. From that window the controller derives the visible
// month, day, and week boundaries on demand:
//
//	vp := newMyViewport()
//	cal, err := calendar.New(vp,
//		core.YM(2023, time.January), core.YM(2023, time.December),
//		calendar.WithFirstDayOfWeek(time.Monday))
//	...
//	month := cal.FirstVisibleMonth()
//	cal.ScrollToMonth(core.YM(2023, time.June))
//
// Derived queries are pure recomputations over current state: safe to call
// repeatedly, never caching across viewport changes, never pushing
// notifications. Reacting to "the window changed" is the host's concern.
//
// Out-of-range scroll targets are a deliberate leniency case: a scroll
// request racing a range shrink degrades to a logged no-op instead of an
// error. Range mutations themselves are strict and fail with
// core.ErrInvalidRange before any state changes.
//
// Concurrency: a Calendar is single-owner, like every mutable structure in
// calgrid. All mutation and derivation happen on the owning goroutine; the
// animated scroll calls block on the viewport's completion and take a
// context for cancellation.
package calendar
