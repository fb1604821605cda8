// Package core declares the shared enums, constants, and sentinel errors
// for the calgrid calendar model.
package core

import "errors"

// Sentinel errors for core calendar operations.
var (
	// ErrInvalidRange indicates a range whose start month is after its end month.
	ErrInvalidRange = errors.New("core: start month is after end month")
)

// DaysPerWeek is the number of day cells in one generated week row.
const DaysPerWeek = 7

// GridWeekCount is the fixed row count a month grid is padded to under
// OutDateStyleEndOfGrid, so every month renders at a constant height.
const GridWeekCount = 6

// DayPosition classifies a day cell relative to the month grid that owns it.
type DayPosition int

const (
	// PositionInMonth marks a date inside the owning month's [1st, last] range.
	PositionInMonth DayPosition = iota

	// PositionOutBefore marks a leading out-date: a date before the 1st of the
	// owning month, present only to week-align the first row.
	PositionOutBefore

	// PositionOutAfter marks a trailing out-date: a date after the last day of
	// the owning month, present to complete the final row or pad the grid.
	PositionOutAfter
)

// String returns a human-readable position name.
func (p DayPosition) String() string {
	switch p {
	case PositionInMonth:
		return "InMonth"
	case PositionOutBefore:
		return "OutDateBefore"
	case PositionOutAfter:
		return "OutDateAfter"
	default:
		return "Unknown"
	}
}

// OutDateStyle governs how many trailing out-dates a generated month carries.
type OutDateStyle int

const (
	// OutDateStyleEndOfRow pads only to the end of the final in-month week row,
	// so months span between 4 and 6 rows depending on their shape.
	OutDateStyleEndOfRow OutDateStyle = iota

	// OutDateStyleEndOfGrid pads with additional all-out-date weeks until the
	// month spans exactly GridWeekCount rows, keeping grid height constant
	// across months.
	OutDateStyleEndOfGrid
)

// String returns a human-readable style name.
func (s OutDateStyle) String() string {
	switch s {
	case OutDateStyleEndOfRow:
		return "EndOfRow"
	case OutDateStyleEndOfGrid:
		return "EndOfGrid"
	default:
		return "Unknown"
	}
}
