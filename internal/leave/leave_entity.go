package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveApplication is a single leave request. Status moves from Pending to
// Approved or Rejected exactly once; an approver may correct the leave type
// while deciding. Payroll attributes an application to the month its start
// date falls in.
type LeaveApplication struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpProfileID     string    `gorm:"column:emp_profile_id;type:varchar(20);not null;index"`
	FullName         string    `gorm:"column:full_name;type:varchar(120);not null"`
	EmailID          string    `gorm:"column:email_id;type:varchar(120);not null"`
	StartDate        time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate          time.Time `gorm:"column:end_date;type:date;not null"`
	LeaveType        string    `gorm:"column:leave_type;type:varchar(40);not null"`
	LeaveDuration    string    `gorm:"column:leave_duration;type:varchar(20);not null"`
	Reason           string    `gorm:"column:reason;type:text;not null"`
	ReportingManager string    `gorm:"column:reporting_manager;type:varchar(120);not null"`
	Department       string    `gorm:"column:department;type:varchar(80);not null"`
	Status           string    `gorm:"column:status;type:varchar(20);not null;default:'Pending'"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (LeaveApplication) TableName() string {
	return "leave_applications"
}
