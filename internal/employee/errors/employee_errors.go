package employeeerrors

import (
	"net/http"

	"tdl-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrProfileIDTaken = apperror.New(
		apperror.CodeConflict,
		"employee profile id already exists",
		http.StatusConflict,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"employee email already exists",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
)
