package employee

import (
	"time"
)

const (
	RoleAdministrator = "administrator"
	RoleEmployee      = "employee"
)

type Employee struct {
	EmpProfileID  string    `gorm:"column:emp_profile_id;type:varchar(20);primaryKey"`
	FirstName     string    `gorm:"column:emp_first_name;type:varchar(60);not null"`
	MiddleName    *string   `gorm:"column:emp_middle_name;type:varchar(60)"`
	LastName      string    `gorm:"column:emp_last_name;type:varchar(60);not null"`
	DOB           time.Time `gorm:"column:emp_dob;type:date;not null"`
	ContactNumber string    `gorm:"column:emp_contact_number;type:varchar(15);not null"`
	EmailID       string    `gorm:"column:emp_email_id;type:varchar(120);not null;uniqueIndex"`
	Designation   string    `gorm:"column:emp_designation;type:varchar(80);not null"`
	JoinDate      time.Time `gorm:"column:emp_join_date;type:date;not null"`
	PANNumber     *string   `gorm:"column:emp_pan_number;type:varchar(10)"`
	AadhaarNumber *string   `gorm:"column:emp_adhar_number;type:varchar(12)"`
	Role          string    `gorm:"column:emp_role;type:varchar(20);not null;default:employee"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(100);not null"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// FullName joins the name parts, skipping an absent middle name.
func (e Employee) FullName() string {
	name := e.FirstName
	if e.MiddleName != nil && *e.MiddleName != "" {
		name += " " + *e.MiddleName
	}
	if e.LastName != "" {
		name += " " + e.LastName
	}
	return name
}
