package breaks

import (
	"time"

	"github.com/google/uuid"
)

// AbsentInterval is the sentinel written for every interval endpoint when an
// employee is marked absent. Reporting treats it as a zero-length break.
const AbsentInterval = "00:00:00"

// BreakRecord holds the three daily break intervals for one employee on one
// date. Endpoints are zero-padded HH:MM:SS strings; an empty string means the
// endpoint was never punched.
type BreakRecord struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpProfileID    string    `gorm:"column:emp_profile_id;type:varchar(20);not null;uniqueIndex:idx_breaks_emp_date"`
	BreakDate       time.Time `gorm:"column:break_date;type:date;not null;uniqueIndex:idx_breaks_emp_date"`
	TeaBreak1Start  string    `gorm:"column:emp_tea_break_1_start_time;type:varchar(8);not null;default:''"`
	TeaBreak1End    string    `gorm:"column:emp_tea_break_1_end_time;type:varchar(8);not null;default:''"`
	LunchBreakStart string    `gorm:"column:emp_lunch_break_start_time;type:varchar(8);not null;default:''"`
	LunchBreakEnd   string    `gorm:"column:emp_lunch_break_end_time;type:varchar(8);not null;default:''"`
	TeaBreak2Start  string    `gorm:"column:emp_tea_break_2_start_time;type:varchar(8);not null;default:''"`
	TeaBreak2End    string    `gorm:"column:emp_tea_break_2_end_time;type:varchar(8);not null;default:''"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (BreakRecord) TableName() string {
	return "break_records"
}
