package leave

type SubmitLeaveRequest struct {
	EmpProfileID     string `json:"emp_profile_id" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	EmailID          string `json:"email_id" binding:"required,email"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	LeaveType        string `json:"leave_type" binding:"required,oneof='Sick leave' 'Paid leave' 'LOP' 'Optional holiday'"`
	LeaveDuration    string `json:"leave_duration" binding:"required,oneof='Full Day' 'Half Day'"`
	Reason           string `json:"reason" binding:"required"`
	ReportingManager string `json:"reporting_manager" binding:"required"`
	Department       string `json:"department" binding:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`

	// LeaveType lets the approver correct a misfiled application while
	// deciding it. Empty keeps the submitted type.
	LeaveType string `json:"leave_type" binding:"omitempty,oneof='Sick leave' 'Paid leave' 'LOP' 'Optional holiday'"`
}

type LeaveResponse struct {
	ID               string `json:"id"`
	EmpProfileID     string `json:"emp_profile_id"`
	FullName         string `json:"full_name"`
	EmailID          string `json:"email_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	LeaveType        string `json:"leave_type"`
	LeaveDuration    string `json:"leave_duration"`
	Reason           string `json:"reason"`
	ReportingManager string `json:"reporting_manager"`
	Department       string `json:"department"`
	Status           string `json:"status"`
}
