package employee

type CreateEmployeeRequest struct {
	EmpProfileID  string  `json:"emp_profile_id" binding:"required,max=20"`
	FirstName     string  `json:"emp_first_name" binding:"required"`
	MiddleName    *string `json:"emp_middle_name"`
	LastName      string  `json:"emp_last_name" binding:"required"`
	DOB           string  `json:"emp_dob" binding:"required"`
	ContactNumber string  `json:"emp_contact_number" binding:"required"`
	EmailID       string  `json:"emp_email_id" binding:"required,email"`
	Designation   string  `json:"emp_designation" binding:"required"`
	JoinDate      string  `json:"emp_join_date" binding:"required"`
	PANNumber     *string `json:"emp_pan_number"`
	AadhaarNumber *string `json:"emp_adhar_number"`
	Role          string  `json:"emp_role" binding:"required,oneof=administrator employee"`
	Password      string  `json:"password" binding:"required,min=8"`
}

type UpdateEmployeeRequest struct {
	FirstName     string  `json:"emp_first_name" binding:"required"`
	MiddleName    *string `json:"emp_middle_name"`
	LastName      string  `json:"emp_last_name" binding:"required"`
	DOB           string  `json:"emp_dob" binding:"required"`
	ContactNumber string  `json:"emp_contact_number" binding:"required"`
	EmailID       string  `json:"emp_email_id" binding:"required,email"`
	Designation   string  `json:"emp_designation" binding:"required"`
	JoinDate      string  `json:"emp_join_date" binding:"required"`
	PANNumber     *string `json:"emp_pan_number"`
	AadhaarNumber *string `json:"emp_adhar_number"`
	Role          string  `json:"emp_role" binding:"required,oneof=administrator employee"`
}

type EmployeeResponse struct {
	EmpProfileID  string  `json:"emp_profile_id"`
	FirstName     string  `json:"emp_first_name"`
	MiddleName    *string `json:"emp_middle_name,omitempty"`
	LastName      string  `json:"emp_last_name"`
	FullName      string  `json:"emp_name"`
	DOB           string  `json:"emp_dob"`
	Age           int     `json:"age"`
	ContactNumber string  `json:"emp_contact_number"`
	EmailID       string  `json:"emp_email_id"`
	Designation   string  `json:"emp_designation"`
	JoinDate      string  `json:"emp_join_date"`
	PANNumber     *string `json:"emp_pan_number,omitempty"`
	AadhaarNumber *string `json:"emp_adhar_number,omitempty"`
	Role          string  `json:"emp_role"`
	IsActive      bool    `json:"is_active"`
}

type BirthdayResponse struct {
	EmpProfileID string `json:"emp_profile_id"`
	FullName     string `json:"emp_name"`
	Designation  string `json:"emp_designation"`
	DOB          string `json:"emp_dob"`
}
