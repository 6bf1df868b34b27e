package holiday_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"tdl-hrms/internal/holiday"
	holidayerrors "tdl-hrms/internal/holiday/errors"
)

type fakeHolidayService struct {
	createFn     func(ctx context.Context, req holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error)
	getByYearFn  func(ctx context.Context, year int) ([]holiday.HolidayResponse, error)
	getByMonthFn func(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error)
}

func (f *fakeHolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeHolidayService) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeHolidayService) GetByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	return f.getByYearFn(ctx, year)
}
func (f *fakeHolidayService) GetByMonth(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	return f.getByMonthFn(ctx, year, month)
}

func TestHandler_Create_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeHolidayService{
		createFn: func(ctx context.Context, req holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
			return nil, holidayerrors.ErrHolidayExists
		},
	}
	h := holiday.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"holiday_date":"2025-08-15","holiday_name":"Independence Day"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/holidays", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAll_ByMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeHolidayService{
		getByMonthFn: func(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
			assert.Equal(t, 2025, year)
			assert.Equal(t, 8, month)
			return []holiday.HolidayResponse{
				{ID: uuid.NewString(), HolidayDate: "2025-08-15", Name: "Independence Day"},
			}, nil
		},
	}
	h := holiday.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/holidays?year=2025&month=8", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Independence Day")
}

func TestHandler_GetAll_BadMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := holiday.NewHandler(&fakeHolidayService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/holidays?year=2025&month=13", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
