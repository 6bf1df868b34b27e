package reporterrors

import (
	"net/http"

	"tdl-hrms/internal/shared/apperror"
)

var (
	ErrNoRecords = apperror.New(
		apperror.CodeNotFound,
		"No records found for the selected period",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must form a valid reporting period",
		http.StatusBadRequest,
	)
)
