package breaks

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=breaks_repo.go -destination=mock/breaks_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *BreakRecord) error
	Update(ctx context.Context, b *BreakRecord) error
	FindByEmployeeAndDate(ctx context.Context, empProfileID string, date time.Time) (*BreakRecord, error)
	FindByEmployeeAndRange(ctx context.Context, empProfileID string, start, end time.Time) ([]BreakRecord, error)
	FindAllByRange(ctx context.Context, start, end time.Time) ([]BreakRecord, error)
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

func (r *repository) Create(ctx context.Context, b *BreakRecord) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *BreakRecord) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, empProfileID string, date time.Time) (*BreakRecord, error) {
	var b BreakRecord
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		Where("break_date = ?", date.Format("2006-01-02")).
		First(&b).Error
	return &b, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, empProfileID string, start, end time.Time) ([]BreakRecord, error) {
	var rows []BreakRecord
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		Where("break_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("break_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRange(ctx context.Context, start, end time.Time) ([]BreakRecord, error) {
	var rows []BreakRecord
	err := r.db.WithContext(ctx).
		Where("break_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("emp_profile_id ASC, break_date ASC").
		Find(&rows).Error
	return rows, err
}
