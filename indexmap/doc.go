// Package indexmap flattens a month range into a single integer index space.
//
// Every month in the range contributes one header slot followed by one slot
// per day cell, so a range of k months with day counts d1..dk addresses
// positions 0 .. (k + Σdi - 1):
//
//	position 0            → MonthHeader(start month)
//	positions 1..d1       → that month's day cells, row-major
//	position d1+1         → MonthHeader(second month)
//	...
//
// Mapper owns this arithmetic for one fixed (range, first-day-of-week,
// out-date style) configuration:
//
//   - Count       — total addressable positions; a pure prefix sum over
//     monthgen.DayCount, no grids are materialized.
//   - Resolve     — position → Entry (the GridItem plus its owning month).
//   - IndexOfMonth / IndexOfDay — the inverse mapping.
//
// Resolve walks months from the start of the range, so a single call costs
// O(months). Callers that resolve repeatedly front a Mapper with
// poscache.Cache, which memoizes per position; the Mapper additionally
// memoizes generated months per anchor so repeated walks only pay the
// arithmetic, not regeneration.
//
// A Mapper is immutable after construction and is replaced wholesale when
// any configuration input changes. It is not safe for concurrent use; the
// owning controller serializes access.
package indexmap
