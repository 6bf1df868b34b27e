package breaks

type PunchBreakRequest struct {
	EmpProfileID string `json:"emp_profile_id" binding:"required"`
	BreakDate    string `json:"break_date" binding:"required"`
	BreakTime    string `json:"break_time" binding:"required"`
}

type MarkAbsentBreaksRequest struct {
	EmpProfileID string `json:"emp_profile_id" binding:"required"`
	BreakDate    string `json:"break_date" binding:"required"`
}

type BreakResponse struct {
	ID              string `json:"id"`
	EmpProfileID    string `json:"emp_profile_id"`
	BreakDate       string `json:"break_date"`
	TeaBreak1Start  string `json:"emp_tea_break_1_start_time"`
	TeaBreak1End    string `json:"emp_tea_break_1_end_time"`
	LunchBreakStart string `json:"emp_lunch_break_start_time"`
	LunchBreakEnd   string `json:"emp_lunch_break_end_time"`
	TeaBreak2Start  string `json:"emp_tea_break_2_start_time"`
	TeaBreak2End    string `json:"emp_tea_break_2_end_time"`
}

// DailyActivityResponse pairs the stored intervals for one date with the
// per-break and total durations computed from them.
type DailyActivityResponse struct {
	BreakResponse
	TeaBreak1Hours  float64 `json:"tea_break_1_hours"`
	LunchBreakHours float64 `json:"lunch_break_hours"`
	TeaBreak2Hours  float64 `json:"tea_break_2_hours"`
	TotalBreakHours float64 `json:"total_break_hours"`
}
