// Package core provides the calendar value vocabulary the rest of
// github.com/katalvlaran/calgrid is built from.
//
// Types:
//
//   - YearMonth     — a (year, month) pair addressing one calendar month;
//     totally ordered, with month arithmetic (AddMonths, Next, Previous,
//     MonthsUntil) that wraps across year boundaries.
//   - CalendarDay   — an immutable (date, DayPosition) value. The position
//     tag records whether the date is in-month or a leading/trailing
//     out-date, so the same civil date can legitimately appear in two
//     adjacent month grids as distinct values.
//   - CalendarMonth — one generated month grid: an anchor YearMonth plus
//     chronological week rows of exactly 7 days each.
//   - Range         — an inclusive (start, end) month span with validation.
//
// Configuration enums:
//
//   - DayPosition  — PositionInMonth | PositionOutBefore | PositionOutAfter.
//   - OutDateStyle — OutDateStyleEndOfRow | OutDateStyleEndOfGrid; governs
//     whether trailing out-dates only complete the last week row or pad the
//     month to a constant GridWeekCount rows.
//
// Conventions:
//
//   - Dates are time.Time values pinned to midnight UTC (see Date and
//     Midnight), so equal civil dates are equal values and CalendarDay
//     equality is purely structural.
//   - Nothing here reads ambient state: no wall clock, no locale lookup.
//     Callers resolve "today" and the first day of the week themselves and
//     pass them in explicitly.
//
// Errors: Range.Validate returns ErrInvalidRange (wrapped with the offending
// bounds) when start > end; use errors.Is to detect it.
package core
