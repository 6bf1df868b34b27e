package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	holidayerrors "tdl-hrms/internal/holiday/errors"
	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/clock"
)

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (*HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	GetByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	GetByMonth(ctx context.Context, year, month int) ([]HolidayResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("holiday_service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (*HolidayResponse, error) {
	date, err := time.Parse(clock.DateLayout, req.HolidayDate)
	if err != nil {
		return nil, holidayerrors.ErrInvalidDateFormat
	}

	if _, err := s.repo.FindByDate(ctx, date); err == nil {
		return nil, holidayerrors.ErrHolidayExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to check holiday", 500)
	}

	h := &Holiday{
		HolidayDate: date,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to create holiday", 500)
	}

	s.logger.Info("holiday created",
		zap.String("date", req.HolidayDate),
		zap.String("name", req.Name),
	)

	resp := toResponse(h)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	holidayID, err := uuid.Parse(id)
	if err != nil {
		return holidayerrors.ErrHolidayNotFound
	}
	if err := s.repo.Delete(ctx, holidayID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to delete holiday", 500)
	}
	s.logger.Info("holiday deleted", zap.String("id", id))
	return nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1000 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.listRange(ctx, start, end)
}

func (s *service) GetByMonth(ctx context.Context, year, month int) ([]HolidayResponse, error) {
	if year < 1000 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return s.listRange(ctx, start, end)
}

func (s *service) listRange(ctx context.Context, start, end time.Time) ([]HolidayResponse, error) {
	rows, err := s.repo.FindByRange(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load holidays", 500)
	}
	list := make([]HolidayResponse, 0, len(rows))
	for i := range rows {
		list = append(list, toResponse(&rows[i]))
	}
	return list, nil
}

func toResponse(h *Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		HolidayDate: h.HolidayDate.Format(clock.DateLayout),
		Name:        h.Name,
		Description: h.Description,
	}
}
