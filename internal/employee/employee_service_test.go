package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tdl-hrms/internal/employee"
	employeeerrors "tdl-hrms/internal/employee/errors"
)

type fakeEmployeeRepository struct {
	createFn              func(ctx context.Context, e *employee.Employee) error
	findAllActiveFn       func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn            func(ctx context.Context, empProfileID string) (*employee.Employee, error)
	findByEmailFn         func(ctx context.Context, email string) (*employee.Employee, error)
	findByBirthdayMonthFn func(ctx context.Context, month int) ([]employee.Employee, error)
	updateFn              func(ctx context.Context, e *employee.Employee) error
	deactivateFn          func(ctx context.Context, empProfileID string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}
func (f *fakeEmployeeRepository) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, empProfileID string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, empProfileID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindByBirthday(ctx context.Context, month, day int) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByBirthdayMonth(ctx context.Context, month int) ([]employee.Employee, error) {
	if f.findByBirthdayMonthFn != nil {
		return f.findByBirthdayMonthFn(ctx, month)
	}
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}
func (f *fakeEmployeeRepository) Deactivate(ctx context.Context, empProfileID string) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, empProfileID)
	}
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeEmployeeRepository
	service employee.Service
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    &fakeEmployeeRepository{},
	}
	deps.service = employee.NewService(db, deps.repo)
	return deps
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmpProfileID:  "TDL001",
		FirstName:     "Ravi",
		LastName:      "Kumar",
		DOB:           "1992-03-21",
		ContactNumber: "9876543210",
		EmailID:       "ravi.kumar@example.com",
		Designation:   "Software Engineer",
		JoinDate:      "2022-01-10",
		Role:          employee.RoleEmployee,
		Password:      "s3cret-pass",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	var created *employee.Employee
	deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
		created = e
		return nil
	}

	got, err := deps.service.Create(ctx, createRequest())

	assert.NoError(t, err)
	assert.Equal(t, "TDL001", got.EmpProfileID)
	assert.Equal(t, "Ravi Kumar", got.FullName)
	assert.True(t, created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_ProfileIDTaken(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findByIDFn = func(ctx context.Context, empProfileID string) (*employee.Employee, error) {
		return &employee.Employee{EmpProfileID: empProfileID}, nil
	}

	_, err := deps.service.Create(context.Background(), createRequest())

	assert.ErrorIs(t, err, employeeerrors.ErrProfileIDTaken)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_EmailTaken(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
		return &employee.Employee{EmailID: email}, nil
	}

	_, err := deps.service.Create(context.Background(), createRequest())

	assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_ConcurrentDuplicateMapsToConflict(t *testing.T) {
	// The pre-insert checks race: two concurrent creates can both pass them
	// and the loser hits the unique constraint instead. That violation must
	// still come back as the typed conflict, not an internal error.
	cases := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "profile id", constraint: "employees_pkey", want: employeeerrors.ErrProfileIDTaken},
		{name: "email", constraint: "idx_employees_emp_email_id", want: employeeerrors.ErrEmailTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupEmployeeServiceTest(t)
			defer deps.db.Close()

			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectRollback()

			deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: tc.constraint}
			}

			_, err := deps.service.Create(context.Background(), createRequest())

			assert.ErrorIs(t, err, tc.want)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeService_Update_DuplicateEmailMapsToConflict(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findByIDFn = func(ctx context.Context, empProfileID string) (*employee.Employee, error) {
		return &employee.Employee{EmpProfileID: empProfileID, IsActive: true}, nil
	}
	deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_employees_emp_email_id"}
	}

	_, err := deps.service.Update(context.Background(), "TDL001", employee.UpdateEmployeeRequest{
		FirstName:     "Ravi",
		LastName:      "Kumar",
		DOB:           "1992-03-21",
		ContactNumber: "9876543210",
		EmailID:       "taken@example.com",
		Designation:   "Software Engineer",
		JoinDate:      "2022-01-10",
		Role:          employee.RoleEmployee,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(context.Background(), "TDL404")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.findByIDFn = func(ctx context.Context, empProfileID string) (*employee.Employee, error) {
		return &employee.Employee{
			EmpProfileID: empProfileID,
			FirstName:    "Ravi",
			LastName:     "Kumar",
			Designation:  "Software Engineer",
			Role:         employee.RoleEmployee,
			IsActive:     true,
		}, nil
	}
	var updated *employee.Employee
	deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
		updated = e
		return nil
	}

	got, err := deps.service.Update(ctx, "TDL001", employee.UpdateEmployeeRequest{
		FirstName:     "Ravi",
		LastName:      "Kumar",
		DOB:           "1992-03-21",
		ContactNumber: "9876543210",
		EmailID:       "ravi.kumar@example.com",
		Designation:   "Senior Software Engineer",
		JoinDate:      "2022-01-10",
		Role:          employee.RoleAdministrator,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", updated.Designation)
	assert.Equal(t, employee.RoleAdministrator, got.Role)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.findByIDFn = func(ctx context.Context, empProfileID string) (*employee.Employee, error) {
		return &employee.Employee{EmpProfileID: empProfileID, IsActive: true}, nil
	}
	deactivated := ""
	deps.repo.deactivateFn = func(ctx context.Context, empProfileID string) error {
		deactivated = empProfileID
		return nil
	}

	err := deps.service.Delete(context.Background(), "TDL001")

	assert.NoError(t, err)
	assert.Equal(t, "TDL001", deactivated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	err := deps.service.Delete(context.Background(), "TDL404")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_BirthdaysByMonth(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByBirthdayMonthFn = func(ctx context.Context, month int) ([]employee.Employee, error) {
		assert.Equal(t, 3, month)
		return []employee.Employee{
			{
				EmpProfileID: "TDL001",
				FirstName:    "Ravi",
				LastName:     "Kumar",
				Designation:  "Software Engineer",
				DOB:          time.Date(1992, 3, 21, 0, 0, 0, 0, time.UTC),
			},
		}, nil
	}

	got, err := deps.service.BirthdaysByMonth(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "1992-03-21", got[0].DOB)
}

func TestEmployeeService_BirthdaysByMonth_InvalidMonth(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.BirthdaysByMonth(context.Background(), 0)

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidMonth)
}
