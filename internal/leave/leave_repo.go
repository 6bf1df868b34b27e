package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveApplication) error
	Update(ctx context.Context, l *LeaveApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveApplication, error)
	FindAll(ctx context.Context) ([]LeaveApplication, error)
	FindByEmployee(ctx context.Context, empProfileID string) ([]LeaveApplication, error)
	FindByStartRange(ctx context.Context, start, end time.Time) ([]LeaveApplication, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveApplication, error) {
	var l LeaveApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveApplication, error) {
	var rows []LeaveApplication
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, empProfileID string) ([]LeaveApplication, error) {
	var rows []LeaveApplication
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

// FindByStartRange returns applications whose start date falls inside the
// range, which is how payroll attributes a leave to a month.
func (r *repository) FindByStartRange(ctx context.Context, start, end time.Time) ([]LeaveApplication, error) {
	var rows []LeaveApplication
	err := r.db.WithContext(ctx).
		Where("start_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
