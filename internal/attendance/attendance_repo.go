package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, empProfileID string, date time.Time) (*Attendance, error)
	FindByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	FindByEmployeeAndRange(ctx context.Context, empProfileID string, start, end time.Time) ([]Attendance, error)
	FindAllByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, empProfileID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		Where("emp_login_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("emp_login_date = ?", date.Format("2006-01-02")).
		Order("emp_profile_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, empProfileID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		Where("emp_login_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("emp_login_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRange(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("emp_login_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("emp_profile_id ASC, emp_login_date ASC").
		Find(&rows).Error
	return rows, err
}
