package auth

type LoginRequest struct {
	EmailID  string `json:"email_id" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	EmpProfileID string `json:"emp_profile_id"`
	EmpName      string `json:"emp_name"`
	Role         string `json:"role"`
}

type MeResponse struct {
	EmpProfileID string `json:"emp_profile_id"`
	EmpName      string `json:"emp_name"`
	EmailID      string `json:"email_id"`
	Designation  string `json:"designation"`
	Role         string `json:"role"`
}
