package employee

import (
	"errors"
	"strings"

	employeeerrors "tdl-hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError turns driver-level failures into the module's typed
// errors. The pre-insert existence checks race under concurrent requests, so
// the unique constraints are the authority and their violations must still
// surface as conflicts, not internal errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_pkey":
				return employeeerrors.ErrProfileIDTaken
			case "idx_employees_emp_email_id":
				return employeeerrors.ErrEmailTaken
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "employees_pkey") {
		return employeeerrors.ErrProfileIDTaken
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "emp_email_id") {
		return employeeerrors.ErrEmailTaken
	}

	return err
}
