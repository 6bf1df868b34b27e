package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is a company-observed non-working date. Dashboard analytics treats
// these dates like Sundays when splitting a month into working and
// non-working days.
type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex"`
	Name        string    `gorm:"column:holiday_name;type:varchar(120);not null"`
	Description *string   `gorm:"column:holiday_description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
