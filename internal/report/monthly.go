package report

import (
	"sort"
	"strings"
	"time"
)

// DaysInMonth returns the calendar length of (year, month).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthlyReport reconciles the four record streams into one payroll row
// per employee. Rows are ordered by profile id ascending with dense 1-based
// ranks. The computation per employee:
//
//	totalLop = manual LOP applications + late-arrival LOP + short-shift LOP
//	present  = totalDays - (pl + sl + totalLop)
//	paidDays = totalDays - totalLop
//
// totalDays is the full month length; weekends and holidays are not excluded
// here. The function is pure: identical inputs always yield identical rows.
func BuildMonthlyReport(
	employees []Employee,
	punches []Punch,
	breaks []BreakDay,
	apps []LeaveApp,
	year, month int,
) []MonthlyReportRow {
	roster := make([]Employee, len(employees))
	copy(roster, employees)
	sort.Slice(roster, func(i, j int) bool {
		return roster[i].ProfileID < roster[j].ProfileID
	})

	totalDays := DaysInMonth(year, month)

	presentByEmployee := make(map[string][]Punch)
	for _, p := range punches {
		if p.Status == StatusPresent {
			presentByEmployee[p.EmployeeID] = append(presentByEmployee[p.EmployeeID], p)
		}
	}

	breaksByEmployee := make(map[string]map[string]BreakDay)
	for _, b := range breaks {
		byDate, ok := breaksByEmployee[b.EmployeeID]
		if !ok {
			byDate = make(map[string]BreakDay)
			breaksByEmployee[b.EmployeeID] = byDate
		}
		byDate[b.Date] = b
	}

	rows := make([]MonthlyReportRow, 0, len(roster))
	for i, emp := range roster {
		pl := CountLeaveDays(apps, emp.ProfileID, LeaveTypePaid, year, month)
		sl := CountLeaveDays(apps, emp.ProfileID, LeaveTypeSick, year, month)
		manualLop := CountLeaveDays(apps, emp.ProfileID, LeaveTypeLossOfPay, year, month)

		presentPunches := presentByEmployee[emp.ProfileID]
		lateLop := LateLOP(presentPunches)
		shortLop := ShortShiftLOP(presentPunches, breaksByEmployee[emp.ProfileID])

		totalLop := manualLop + lateLop + shortLop

		rows = append(rows, MonthlyReportRow{
			SrNo:         i + 1,
			EmpProfileID: emp.ProfileID,
			EmpName:      displayName(emp),
			TotalDays:    totalDays,
			Present:      float64(totalDays) - (pl + sl + totalLop),
			PaidLeave:    pl,
			SickLeave:    sl,
			LossOfPay:    totalLop,
			PaidDays:     float64(totalDays) - totalLop,
		})
	}

	return rows
}

func displayName(e Employee) string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
