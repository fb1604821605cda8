package core

import "fmt"

// Range is an inclusive span of months, the addressable universe of a grid.
// The zero Range covers a single month (the zero YearMonth) and is valid.
type Range struct {
	Start YearMonth
	End   YearMonth
}

// NewRange builds a Range and validates it in one step.
func NewRange(start, end YearMonth) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate returns ErrInvalidRange when Start is after End. Pure; called on
// every range mutation before any index computation proceeds.
// Complexity: O(1)
func (r Range) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Contains reports whether ym lies within the inclusive range.
func (r Range) Contains(ym YearMonth) bool {
	return !ym.Before(r.Start) && !ym.After(r.End)
}

// Months returns the number of months spanned, inclusive of both ends.
// A valid range spans at least 1.
func (r Range) Months() int {
	return r.Start.MonthsUntil(r.End) + 1
}

// String renders the range as "2006-01..2006-12".
func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}
