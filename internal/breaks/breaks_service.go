package breaks

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	breakserrors "tdl-hrms/internal/breaks/errors"
	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/clock"
)

// Slot identifies one of the three daily break intervals.
type Slot string

const (
	SlotTeaBreak1  Slot = "tea_break_1"
	SlotLunchBreak Slot = "lunch_break"
	SlotTeaBreak2  Slot = "tea_break_2"
)

type Service interface {
	StartBreak(ctx context.Context, slot Slot, req PunchBreakRequest) (*BreakResponse, error)
	EndBreak(ctx context.Context, slot Slot, req PunchBreakRequest) (*BreakResponse, error)
	MarkAllAbsent(ctx context.Context, req MarkAbsentBreaksRequest) (*BreakResponse, error)
	GetDailyActivity(ctx context.Context, empProfileID, date string) (*DailyActivityResponse, error)
	GetByEmployeeAndRange(ctx context.Context, empProfileID, startDate, endDate string) ([]DailyActivityResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("breaks_service"),
	}
}

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func normalizeClock(value string) (string, error) {
	if !clockPattern.MatchString(value) {
		return "", breakserrors.ErrInvalidClockFormat
	}
	if len(value) == 5 {
		return value + ":00", nil
	}
	return value, nil
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return time.Time{}, breakserrors.ErrInvalidDateFormat
	}
	return t, nil
}

func slotEndpoints(b *BreakRecord, slot Slot) (start, end *string) {
	switch slot {
	case SlotLunchBreak:
		return &b.LunchBreakStart, &b.LunchBreakEnd
	case SlotTeaBreak2:
		return &b.TeaBreak2Start, &b.TeaBreak2End
	default:
		return &b.TeaBreak1Start, &b.TeaBreak1End
	}
}

// loadOrNew returns the break record for the employee and date, creating an
// empty one when none exists yet. The second return reports whether the
// record is new.
func (s *service) loadOrNew(ctx context.Context, empProfileID string, date time.Time) (*BreakRecord, bool, error) {
	record, err := s.repo.FindByEmployeeAndDate(ctx, empProfileID, date)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperror.Wrap(err, apperror.CodeInternalError, "failed to load break record", 500)
	}
	return &BreakRecord{EmpProfileID: empProfileID, BreakDate: date}, true, nil
}

func (s *service) save(ctx context.Context, record *BreakRecord, isNew bool) error {
	if isNew {
		if err := s.repo.Create(ctx, record); err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to create break record", 500)
		}
		return nil
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to update break record", 500)
	}
	return nil
}

func (s *service) StartBreak(ctx context.Context, slot Slot, req PunchBreakRequest) (*BreakResponse, error) {
	date, err := parseDate(req.BreakDate)
	if err != nil {
		return nil, err
	}
	punchTime, err := normalizeClock(req.BreakTime)
	if err != nil {
		return nil, err
	}

	record, isNew, err := s.loadOrNew(ctx, req.EmpProfileID, date)
	if err != nil {
		return nil, err
	}

	start, _ := slotEndpoints(record, slot)
	if *start != "" {
		return nil, breakserrors.ErrBreakAlreadyStarted
	}
	*start = punchTime

	if err := s.save(ctx, record, isNew); err != nil {
		return nil, err
	}

	s.logger.Info("break started",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.BreakDate),
		zap.String("slot", string(slot)),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) EndBreak(ctx context.Context, slot Slot, req PunchBreakRequest) (*BreakResponse, error) {
	date, err := parseDate(req.BreakDate)
	if err != nil {
		return nil, err
	}
	punchTime, err := normalizeClock(req.BreakTime)
	if err != nil {
		return nil, err
	}

	record, isNew, err := s.loadOrNew(ctx, req.EmpProfileID, date)
	if err != nil {
		return nil, err
	}
	if isNew {
		return nil, breakserrors.ErrBreakNotStarted
	}

	start, end := slotEndpoints(record, slot)
	if *start == "" {
		return nil, breakserrors.ErrBreakNotStarted
	}
	if *end != "" {
		return nil, breakserrors.ErrBreakAlreadyEnded
	}
	*end = punchTime

	if err := s.save(ctx, record, false); err != nil {
		return nil, err
	}

	s.logger.Info("break ended",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.BreakDate),
		zap.String("slot", string(slot)),
	)

	resp := toResponse(record)
	return &resp, nil
}

// MarkAllAbsent writes the absent sentinel into every endpoint so downstream
// reporting counts zero break hours for the date.
func (s *service) MarkAllAbsent(ctx context.Context, req MarkAbsentBreaksRequest) (*BreakResponse, error) {
	date, err := parseDate(req.BreakDate)
	if err != nil {
		return nil, err
	}

	record, isNew, err := s.loadOrNew(ctx, req.EmpProfileID, date)
	if err != nil {
		return nil, err
	}

	record.TeaBreak1Start = AbsentInterval
	record.TeaBreak1End = AbsentInterval
	record.LunchBreakStart = AbsentInterval
	record.LunchBreakEnd = AbsentInterval
	record.TeaBreak2Start = AbsentInterval
	record.TeaBreak2End = AbsentInterval

	if err := s.save(ctx, record, isNew); err != nil {
		return nil, err
	}

	s.logger.Info("breaks marked absent",
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("date", req.BreakDate),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *service) GetDailyActivity(ctx context.Context, empProfileID, dateStr string) (*DailyActivityResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByEmployeeAndDate(ctx, empProfileID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load break record", 500)
	}

	resp := toActivity(record)
	return &resp, nil
}

func (s *service) GetByEmployeeAndRange(ctx context.Context, empProfileID, startDate, endDate string) ([]DailyActivityResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, breakserrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, empProfileID, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load break records", 500)
	}

	responses := make([]DailyActivityResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toActivity(&rows[i]))
	}
	return responses, nil
}

func toResponse(b *BreakRecord) BreakResponse {
	return BreakResponse{
		ID:              b.ID.String(),
		EmpProfileID:    b.EmpProfileID,
		BreakDate:       b.BreakDate.Format(clock.DateLayout),
		TeaBreak1Start:  b.TeaBreak1Start,
		TeaBreak1End:    b.TeaBreak1End,
		LunchBreakStart: b.LunchBreakStart,
		LunchBreakEnd:   b.LunchBreakEnd,
		TeaBreak2Start:  b.TeaBreak2Start,
		TeaBreak2End:    b.TeaBreak2End,
	}
}

func toActivity(b *BreakRecord) DailyActivityResponse {
	tea1 := clock.IntervalHours(b.TeaBreak1Start, b.TeaBreak1End)
	lunch := clock.IntervalHours(b.LunchBreakStart, b.LunchBreakEnd)
	tea2 := clock.IntervalHours(b.TeaBreak2Start, b.TeaBreak2End)
	return DailyActivityResponse{
		BreakResponse:   toResponse(b),
		TeaBreak1Hours:  tea1,
		LunchBreakHours: lunch,
		TeaBreak2Hours:  tea2,
		TotalBreakHours: tea1 + lunch + tea2,
	}
}
