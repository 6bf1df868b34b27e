package holidayerrors

import (
	"net/http"

	"tdl-hrms/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrHolidayExists = apperror.New(
		apperror.CodeConflict,
		"a holiday is already registered on this date",
		http.StatusConflict,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
)
