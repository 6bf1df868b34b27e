package attendance

import (
	"context"
	"errors"
	"math"
	"regexp"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	attendanceerrors "tdl-hrms/internal/attendance/errors"
	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/clock"
)

type Service interface {
	AddLogin(ctx context.Context, req AddLoginRequest) (*AttendanceResponse, error)
	AddLogoff(ctx context.Context, req AddLogoffRequest) (*AttendanceResponse, error)
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (*AttendanceResponse, error)
	GetByEmployeeAndDate(ctx context.Context, empProfileID, date string) (*AttendanceResponse, error)
	GetByEmployeeAndRange(ctx context.Context, empProfileID, startDate, endDate string) ([]AttendanceResponse, error)
	GetAllByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("attendance_service"),
	}
}

// clockPattern accepts zero-padded 24h clocks, seconds optional.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// normalizeClock validates a clock string and pads it to HH:MM:SS.
func normalizeClock(value string) (string, error) {
	if !clockPattern.MatchString(value) {
		return "", attendanceerrors.ErrInvalidClockFormat
	}
	if len(value) == 5 {
		return value + ":00", nil
	}
	return value, nil
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (s *service) AddLogin(ctx context.Context, req AddLoginRequest) (*AttendanceResponse, error) {
	date, err := parseDate(req.LoginDate)
	if err != nil {
		return nil, err
	}
	loginTime, err := normalizeClock(req.LoginTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, req.EmpProfileID, date)
	if err == nil {
		if existing.LoginStatus == StatusAbsent {
			return nil, attendanceerrors.ErrMarkedAbsent
		}
		return nil, attendanceerrors.ErrAlreadyLoggedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check attendance", 500)
	}

	record := &Attendance{
		EmpProfileID: req.EmpProfileID,
		LoginDate:    date,
		LoginStatus:  StatusPresent,
		LoginTime:    &loginTime,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to record login", 500)
	}

	s.logger.Info("login recorded",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.LoginDate),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) AddLogoff(ctx context.Context, req AddLogoffRequest) (*AttendanceResponse, error) {
	date, err := parseDate(req.LogoffDate)
	if err != nil {
		return nil, err
	}
	logoffTime, err := normalizeClock(req.LogoffTime)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByEmployeeAndDate(ctx, req.EmpProfileID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrLoginNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance", 500)
	}
	if record.LoginStatus == StatusAbsent {
		return nil, attendanceerrors.ErrMarkedAbsent
	}
	if record.LoginTime == nil {
		return nil, attendanceerrors.ErrLoginNotFound
	}
	if record.LogoffTime != nil {
		return nil, attendanceerrors.ErrAlreadyLoggedOff
	}

	worked := math.Round(clock.HoursBetween(*record.LoginTime, logoffTime)*100) / 100
	record.LogoffTime = &logoffTime
	record.WorkingHours = &worked

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to record logoff", 500)
	}

	s.logger.Info("logoff recorded",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.LogoffDate),
		zap.Float64("working_hours", worked),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) MarkAbsent(ctx context.Context, req MarkAbsentRequest) (*AttendanceResponse, error) {
	date, err := parseDate(req.AbsentDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, req.EmpProfileID, date)
	if err == nil {
		if existing.LoginStatus == StatusAbsent {
			return nil, attendanceerrors.ErrAlreadyMarkedAbsent
		}
		return nil, attendanceerrors.ErrAlreadyLoggedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check attendance", 500)
	}

	record := &Attendance{
		EmpProfileID: req.EmpProfileID,
		LoginDate:    date,
		LoginStatus:  StatusAbsent,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to mark absent", 500)
	}

	s.logger.Info("marked absent",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.AbsentDate),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) GetByEmployeeAndDate(ctx context.Context, empProfileID, dateStr string) (*AttendanceResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByEmployeeAndDate(ctx, empProfileID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrLoginNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance", 500)
	}

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) GetByEmployeeAndRange(ctx context.Context, empProfileID, startDate, endDate string) ([]AttendanceResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, empProfileID, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance range", 500)
	}

	responses := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toResponse(&rows[i]))
	}
	return responses, nil
}

// GetAllByDate lists every employee's punch for one date, roster order.
func (s *service) GetAllByDate(ctx context.Context, dateStr string) ([]AttendanceResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance", 500)
	}

	responses := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toResponse(&rows[i]))
	}
	return responses, nil
}

func toResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID.String(),
		EmpProfileID: a.EmpProfileID,
		LoginDate:    a.LoginDate.Format(clock.DateLayout),
		LoginStatus:  a.LoginStatus,
		LoginTime:    a.LoginTime,
		LogoffTime:   a.LogoffTime,
		WorkingHours: a.WorkingHours,
	}
}
