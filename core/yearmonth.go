package core

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month: a (year, month) pair.
// It is the sole addressing key for month generation and range bounds.
// YearMonth values are comparable with == and totally ordered via Compare.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YM constructs a normalized YearMonth. Month values outside [1,12] wrap
// into the adjacent years, following time.Date overflow semantics, so
// YM(2023, 13) == YM(2024, time.January).
// Complexity: O(1)
func YM(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// YearMonthOf returns the YearMonth containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Compare orders two YearMonth values chronologically:
// -1 if ym < other, 0 if equal, +1 if ym > other.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Year < other.Year:
		return -1
	case ym.Year > other.Year:
		return 1
	case ym.Month < other.Month:
		return -1
	case ym.Month > other.Month:
		return 1
	default:
		return 0
	}
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool { return ym.Compare(other) < 0 }

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool { return ym.Compare(other) > 0 }

// AddMonths returns the YearMonth n months after ym (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return YM(ym.Year, ym.Month+time.Month(n))
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth { return ym.AddMonths(1) }

// Previous returns the preceding month.
func (ym YearMonth) Previous() YearMonth { return ym.AddMonths(-1) }

// MonthsUntil returns the signed number of whole months from ym to other:
// 0 when equal, positive when other is later.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year-ym.Year)*12 + int(other.Month-ym.Month)
}

// FirstDay returns midnight UTC on the 1st of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the final day of the month.
// Day 0 of the next month is the last day of this one.
func (ym YearMonth) LastDay() time.Time {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// NumDays returns the number of civil days in the month (28..31).
func (ym YearMonth) NumDays() int {
	return ym.LastDay().Day()
}

// String renders the month as "2006-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
