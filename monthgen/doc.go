// Package monthgen turns a month anchor into a fully populated week grid.
//
// Generate is a pure function of its three inputs — anchor month, first day
// of the week, and out-date style — with no dependency on wall-clock time or
// ambient locale. The grid is built by walking backward from the 1st of the
// anchor month to the nearest date whose weekday matches the configured
// first day of the week, then emitting consecutive 7-day rows until the
// month's last day is covered:
//
//	Mo Tu We Th Fr Sa Su        anchor = 2023-01, first day = Monday
//	26 27 28 29 30 31  1   ← leading out-dates from December
//	 2  3  4  5  6  7  8
//	 9 10 11 12 13 14 15
//	16 17 18 19 20 21 22
//	23 24 25 26 27 28 29
//	30 31  1  2  3  4  5   ← trailing out-dates from February
//
// OutDateStyleEndOfRow stops once the row holding the month's last day is
// complete, producing 4 to 6 rows depending on the month's shape.
// OutDateStyleEndOfGrid keeps appending all-out-date rows until the grid
// spans exactly core.GridWeekCount rows, so every month renders at the same
// height.
//
// DayCount and WeekCount answer the sizing questions arithmetically, without
// materializing a grid, which keeps range-wide index counting cheap.
package monthgen
