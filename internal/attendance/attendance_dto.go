package attendance

type AddLoginRequest struct {
	EmpProfileID string `json:"emp_profile_id" binding:"required"`
	LoginDate    string `json:"login_date" binding:"required"`
	LoginTime    string `json:"login_time" binding:"required"`
}

type AddLogoffRequest struct {
	EmpProfileID string `json:"emp_profile_id" binding:"required"`
	LogoffDate   string `json:"logoff_date" binding:"required"`
	LogoffTime   string `json:"logoff_time" binding:"required"`
}

type MarkAbsentRequest struct {
	EmpProfileID string `json:"emp_profile_id" binding:"required"`
	AbsentDate   string `json:"absent_date" binding:"required"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmpProfileID string   `json:"emp_profile_id"`
	LoginDate    string   `json:"emp_login_date"`
	LoginStatus  int      `json:"emp_login_status"`
	LoginTime    *string  `json:"emp_login_time,omitempty"`
	LogoffTime   *string  `json:"emp_logoff_time,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}
