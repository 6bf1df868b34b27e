package report

import (
	"net/http"
	"strconv"

	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parsePeriod(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "month must be a number", nil)
		return 0, 0, false
	}
	return year, month, true
}

func (h *Handler) Monthly(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	rows, err := h.service.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

// Dashboard serves the calling employee's own analytics; the profile id comes
// from the auth middleware, not the request.
func (h *Handler) Dashboard(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	analytics, err := h.service.DashboardAnalytics(c.Request.Context(), c.GetString("emp_profile_id"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, analytics, nil)
}

// DashboardFor serves any employee's analytics to an administrator.
func (h *Handler) DashboardFor(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	analytics, err := h.service.DashboardAnalytics(c.Request.Context(), c.Param("empProfileId"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, analytics, nil)
}
