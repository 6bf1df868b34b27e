package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, empProfileID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByBirthday(ctx context.Context, month, day int) ([]Employee, error)
	FindByBirthdayMonth(ctx context.Context, month int) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Deactivate(ctx context.Context, empProfileID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx routes the repository's queries through an open transaction by
// swapping the session's connection pool for the *sql.Tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("emp_profile_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, empProfileID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("emp_profile_id = ?", empProfileID).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("emp_email_id = ?", email).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByBirthday(ctx context.Context, month, day int) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("EXTRACT(MONTH FROM emp_dob) = ? AND EXTRACT(DAY FROM emp_dob) = ?", month, day).
		Order("emp_profile_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByBirthdayMonth(ctx context.Context, month int) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("EXTRACT(MONTH FROM emp_dob) = ?", month).
		Order("EXTRACT(DAY FROM emp_dob) ASC, emp_profile_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Deactivate(ctx context.Context, empProfileID string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("emp_profile_id = ?", empProfileID).
		Update("is_active", false).Error
}
