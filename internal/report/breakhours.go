package report

import "tdl-hrms/internal/shared/clock"

// TotalBreakHours sums the three labeled break intervals of one day.
func TotalBreakHours(b BreakDay) float64 {
	return clock.IntervalHours(b.Tea1Start, b.Tea1End) +
		clock.IntervalHours(b.LunchStart, b.LunchEnd) +
		clock.IntervalHours(b.Tea2Start, b.Tea2End)
}
