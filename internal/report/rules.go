package report

import (
	"time"

	"tdl-hrms/internal/shared/clock"
)

// Business rule constants. The late cutoff comparison is deliberately a plain
// string comparison: it is valid only because the clock format is fixed-width
// zero-padded HH:MM:SS, which ingestion enforces.
const (
	lateArrivalCutoff = "09:11:00"
	freeLateArrivals  = 3
	minNetShiftHours  = 4.0
	halfDayPenalty    = 0.5
)

// Canonical enum values as they appear on leave applications.
const (
	StatusApproved = "Approved"
	StatusPending  = "Pending"
	StatusRejected = "Rejected"

	LeaveTypeSick            = "Sick leave"
	LeaveTypePaid            = "Paid leave"
	LeaveTypeLossOfPay       = "LOP"
	LeaveTypeOptionalHoliday = "Optional holiday"

	DurationFullDay = "Full Day"
	DurationHalfDay = "Half Day"
)

const (
	StatusPresent = 1
	StatusAbsent  = 0
)

// CountLeaveDays sums the day weight of the employee's approved applications
// of the given type whose start date falls in (year, month). An application
// spanning a month boundary is attributed entirely to its start month.
// Multiple qualifying applications accumulate without a cap.
func CountLeaveDays(apps []LeaveApp, employeeID, leaveType string, year, month int) float64 {
	var total float64
	for _, a := range apps {
		if a.EmployeeID != employeeID || a.Status != StatusApproved || a.Type != leaveType {
			continue
		}
		start, err := time.Parse(clock.DateLayout, a.StartDate)
		if err != nil {
			continue
		}
		if start.Year() != year || int(start.Month()) != month {
			continue
		}
		if a.Duration == DurationHalfDay {
			total += 0.5
		} else {
			total += 1
		}
	}
	return total
}

// LateLOP counts arrivals after the cutoff across the month's present punches
// and converts the fourth and every later occurrence into half a day of loss
// of pay. The first three are free.
func LateLOP(punches []Punch) float64 {
	late := 0
	for _, p := range punches {
		if p.LoginTime != "" && p.LoginTime > lateArrivalCutoff {
			late++
		}
	}
	if late <= freeLateArrivals {
		return 0
	}
	return float64(late-freeLateArrivals) * halfDayPenalty
}

// ShortShiftLOP charges half a day for every punch whose net worked time
// (gross span minus that date's break total) falls under the minimum. Punches
// without a logoff are skipped, and a date without a break record counts as
// zero break time. A day can trip this rule and the late rule independently.
func ShortShiftLOP(punches []Punch, breaksByDate map[string]BreakDay) float64 {
	var lop float64
	for _, p := range punches {
		if p.LoginTime == "" || p.LogoffTime == "" {
			continue
		}

		gross := clock.HoursBetween(p.LoginTime, p.LogoffTime)
		var breakHours float64
		if b, ok := breaksByDate[p.Date]; ok {
			breakHours = TotalBreakHours(b)
		}

		if gross-breakHours < minNetShiftHours {
			lop += halfDayPenalty
		}
	}
	return lop
}
