package breaks

import (
	"net/http"

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

func (h *Handler) punch(c *gin.Context, slot Slot, end bool) {
	var req PunchBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	var (
		resp *BreakResponse
		err  error
	)
	if end {
		resp, err = h.service.EndBreak(c.Request.Context(), slot, req)
	} else {
		resp, err = h.service.StartBreak(c.Request.Context(), slot, req)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartTeaBreak1(c *gin.Context) { h.punch(c, SlotTeaBreak1, false) }
func (h *Handler) EndTeaBreak1(c *gin.Context)   { h.punch(c, SlotTeaBreak1, true) }
func (h *Handler) StartLunchBreak(c *gin.Context) { h.punch(c, SlotLunchBreak, false) }
func (h *Handler) EndLunchBreak(c *gin.Context)   { h.punch(c, SlotLunchBreak, true) }
func (h *Handler) StartTeaBreak2(c *gin.Context) { h.punch(c, SlotTeaBreak2, false) }
func (h *Handler) EndTeaBreak2(c *gin.Context)   { h.punch(c, SlotTeaBreak2, true) }

func (h *Handler) MarkAbsent(c *gin.Context) {
	var req MarkAbsentBreaksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.MarkAllAbsent(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDailyActivity(c *gin.Context) {
	resp, err := h.service.GetDailyActivity(c.Request.Context(), c.Param("empProfileId"), c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByRange(c *gin.Context) {
	resp, err := h.service.GetByEmployeeAndRange(
		c.Request.Context(),
		c.Param("empProfileId"),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
