package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tdl-hrms/internal/attendance"
	attendanceerrors "tdl-hrms/internal/attendance/errors"
)

type fakeService struct {
	addLoginFn   func(ctx context.Context, req attendance.AddLoginRequest) (*attendance.AttendanceResponse, error)
	addLogoffFn  func(ctx context.Context, req attendance.AddLogoffRequest) (*attendance.AttendanceResponse, error)
	markAbsentFn func(ctx context.Context, req attendance.MarkAbsentRequest) (*attendance.AttendanceResponse, error)
}

func (f *fakeService) AddLogin(ctx context.Context, req attendance.AddLoginRequest) (*attendance.AttendanceResponse, error) {
	return f.addLoginFn(ctx, req)
}
func (f *fakeService) AddLogoff(ctx context.Context, req attendance.AddLogoffRequest) (*attendance.AttendanceResponse, error) {
	return f.addLogoffFn(ctx, req)
}
func (f *fakeService) MarkAbsent(ctx context.Context, req attendance.MarkAbsentRequest) (*attendance.AttendanceResponse, error) {
	return f.markAbsentFn(ctx, req)
}
func (f *fakeService) GetByEmployeeAndDate(ctx context.Context, empProfileID, date string) (*attendance.AttendanceResponse, error) {
	return nil, nil
}
func (f *fakeService) GetByEmployeeAndRange(ctx context.Context, empProfileID, startDate, endDate string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}
func (f *fakeService) GetAllByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func TestHandler_AddLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		addLoginFn: func(ctx context.Context, req attendance.AddLoginRequest) (*attendance.AttendanceResponse, error) {
			assert.Equal(t, "TDL001", req.EmpProfileID)
			login := "09:05:00"
			return &attendance.AttendanceResponse{
				EmpProfileID: req.EmpProfileID,
				LoginDate:    req.LoginDate,
				LoginStatus:  attendance.StatusPresent,
				LoginTime:    &login,
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"emp_profile_id":"TDL001","login_date":"2025-07-14","login_time":"09:05"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AddLogin(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "09:05:00")
}

func TestHandler_AddLogin_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/login", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AddLogin(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddLogoff_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		addLogoffFn: func(ctx context.Context, req attendance.AddLogoffRequest) (*attendance.AttendanceResponse, error) {
			return nil, attendanceerrors.ErrAlreadyLoggedOff
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"emp_profile_id":"TDL001","logoff_date":"2025-07-14","logoff_time":"18:00"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/logoff", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AddLogoff(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "logoff already recorded")
}

func TestHandler_MarkAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markAbsentFn: func(ctx context.Context, req attendance.MarkAbsentRequest) (*attendance.AttendanceResponse, error) {
			return &attendance.AttendanceResponse{
				EmpProfileID: req.EmpProfileID,
				LoginDate:    req.AbsentDate,
				LoginStatus:  attendance.StatusAbsent,
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"emp_profile_id":"TDL001","absent_date":"2025-07-14"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/absent", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.MarkAbsent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
