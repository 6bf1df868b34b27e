package report

// Engine input records. The service layer maps persistence entities into these
// before aggregation; all dates are normalized to YYYY-MM-DD and all wall-clock
// values to zero-padded HH:MM:SS at ingestion, so the engine never re-parses
// loosely formatted data.

type Employee struct {
	ProfileID   string
	FirstName   string
	LastName    string
	Designation string
}

// Punch is one attendance record for one employee on one date. Status is
// 1 = present, 0 = absent. LoginTime and LogoffTime are empty when not
// recorded; an empty LogoffTime with a present login is a valid state
// (still clocked in, or a half day).
type Punch struct {
	EmployeeID  string
	Date        string
	Status      int
	LoginTime   string
	LogoffTime  string
	WorkedHours float64
}

// BreakDay holds the up-to-three labeled break intervals for one employee on
// one date. An interval whose start or end is empty or the 00:00:00 sentinel
// was not taken.
type BreakDay struct {
	EmployeeID string
	Date       string
	Tea1Start  string
	Tea1End    string
	LunchStart string
	LunchEnd   string
	Tea2Start  string
	Tea2End    string
}

type LeaveApp struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Type       string
	Duration   string
	Status     string
}

type Holiday struct {
	Date string
	Name string
}

// MonthlyReportRow is one payroll report line. Present is a residual
// (TotalDays minus leave and loss of pay), not an attendance tally, and is
// deliberately left unclamped: a negative value flags an employee whose
// recorded leave exceeds the month.
type MonthlyReportRow struct {
	SrNo         int     `json:"sr_no"`
	EmpProfileID string  `json:"emp_profile_id"`
	EmpName      string  `json:"emp_name"`
	TotalDays    int     `json:"total_days"`
	Present      float64 `json:"present"`
	PaidLeave    float64 `json:"pl"`
	SickLeave    float64 `json:"sl"`
	LossOfPay    float64 `json:"lop"`
	PaidDays     float64 `json:"paid_days"`
}

type TrendPoint struct {
	Date        string  `json:"date"`
	WorkedHours float64 `json:"worked_hours"`
	BreakHours  float64 `json:"break_hours"`
}

type DailyAnalytics struct {
	TotalDays      int          `json:"total_days"`
	WorkingDays    int          `json:"working_days"`
	NonWorkingDays int          `json:"non_working"`
	PresentDays    int          `json:"present"`
	AbsentDays     int          `json:"absent"`
	RemainingDays  int          `json:"remaining"`
	Trend          []TrendPoint `json:"trend"`
}
