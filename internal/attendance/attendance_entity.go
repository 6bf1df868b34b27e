package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = 1
	StatusAbsent  = 0
)

// Attendance is one punch record per employee per date. Times are stored as
// zero-padded HH:MM:SS wall-clock strings; a present login without a logoff
// is valid (still clocked in, or a half day). WorkingHours is filled in at
// logoff and feeds the dashboard trend.
type Attendance struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpProfileID string    `gorm:"column:emp_profile_id;type:varchar(20);not null;uniqueIndex:idx_attendance_emp_date"`
	LoginDate    time.Time `gorm:"column:emp_login_date;type:date;not null;uniqueIndex:idx_attendance_emp_date"`
	LoginStatus  int       `gorm:"column:emp_login_status;type:smallint;not null"`
	LoginTime    *string   `gorm:"column:emp_login_time;type:varchar(8)"`
	LogoffTime   *string   `gorm:"column:emp_logoff_time;type:varchar(8)"`
	WorkingHours *float64  `gorm:"column:working_hours;type:numeric(5,2)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}
