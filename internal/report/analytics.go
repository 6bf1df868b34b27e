package report

import (
	"math"
	"sort"
	"time"

	"tdl-hrms/internal/shared/clock"
)

// BuildAnalytics derives the dashboard view for a single employee whose
// punches and breaks have already been filtered to the month. A calendar day
// is non-working when it is a Sunday or a listed holiday; present and absent
// are counted on working days only, and remaining is whatever working days
// carry no punch record at all (unreached or unrecorded), floored at zero.
//
// The trend pairs each working day that has a punch record with its recorded
// worked hours and that date's computed break total, date ascending, for the
// dashboard chart.
func BuildAnalytics(
	punches []Punch,
	breaks []BreakDay,
	holidays []Holiday,
	year, month, daysInMonth int,
) DailyAnalytics {
	holidayDates := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidayDates[h.Date] = true
	}

	workingDates := make(map[string]bool)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		key := date.Format(clock.DateLayout)
		if date.Weekday() == time.Sunday || holidayDates[key] {
			continue
		}
		workingDates[key] = true
	}

	working := len(workingDates)
	present, absent := 0, 0
	for _, p := range punches {
		if !workingDates[p.Date] {
			continue
		}
		switch p.Status {
		case StatusPresent:
			present++
		case StatusAbsent:
			absent++
		}
	}

	remaining := working - (present + absent)
	if remaining < 0 {
		remaining = 0
	}

	breakHoursByDate := make(map[string]float64, len(breaks))
	for _, b := range breaks {
		breakHoursByDate[b.Date] = round2(TotalBreakHours(b))
	}

	trend := make([]TrendPoint, 0, len(punches))
	for _, p := range punches {
		if !workingDates[p.Date] {
			continue
		}
		trend = append(trend, TrendPoint{
			Date:        p.Date,
			WorkedHours: p.WorkedHours,
			BreakHours:  breakHoursByDate[p.Date],
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	return DailyAnalytics{
		TotalDays:      daysInMonth,
		WorkingDays:    working,
		NonWorkingDays: daysInMonth - working,
		PresentDays:    present,
		AbsentDays:     absent,
		RemainingDays:  remaining,
		Trend:          trend,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
