package breakserrors

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
	ErrBreakNotStarted = apperror.New(
		apperror.CodeInvalidState,
		"break has not been started for this date",
		http.StatusBadRequest,
	)
	ErrBreakAlreadyStarted = apperror.New(
		apperror.CodeConflict,
		"break start already recorded for this date",
		http.StatusConflict,
	)
	ErrBreakAlreadyEnded = apperror.New(
		apperror.CodeConflict,
		"break end already recorded for this date",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
)
