package attendanceerrors

import (
	"net/http"

	"tdl-hrms/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidClockFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected zero-padded HH:MM or HH:MM:SS",
		http.StatusBadRequest,
	)
	ErrAlreadyLoggedIn = apperror.New(
		apperror.CodeConflict,
		"login already recorded for this date",
		http.StatusConflict,
	)
	ErrLoginNotFound = apperror.New(
		apperror.CodeNotFound,
		"no login recorded for this date",
		http.StatusNotFound,
	)
	ErrAlreadyLoggedOff = apperror.New(
		apperror.CodeConflict,
		"logoff already recorded for this date",
		http.StatusConflict,
	)
	ErrMarkedAbsent = apperror.New(
		apperror.CodeInvalidState,
		"employee is marked absent for this date",
		http.StatusBadRequest,
	)
	ErrAlreadyMarkedAbsent = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this date",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
)
