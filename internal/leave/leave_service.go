package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"tdl-hrms/internal/events"
	leaveerrors "tdl-hrms/internal/leave/errors"
	"tdl-hrms/internal/messaging/kafka"
	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/clock"
	"tdl-hrms/internal/shared/contextutil"
)

type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (*LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, empProfileID string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (*LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	cache  ListCache
	outbox kafka.OutboxRepository
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cache ListCache, outbox kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		repo:   repo,
		cache:  cache,
		outbox: outbox,
		logger: zap.L().Named("leave_service"),
	}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (*LeaveResponse, error) {
	start, err := time.Parse(clock.DateLayout, req.StartDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(clock.DateLayout, req.EndDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	application := &LeaveApplication{
		EmpProfileID:     req.EmpProfileID,
		FullName:         req.FullName,
		EmailID:          req.EmailID,
		StartDate:        start,
		EndDate:          end,
		LeaveType:        req.LeaveType,
		LeaveDuration:    req.LeaveDuration,
		Reason:           req.Reason,
		ReportingManager: req.ReportingManager,
		Department:       req.Department,
		Status:           StatusPending,
	}
	if err := s.repo.Create(ctx, application); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to submit leave application", 500)
	}

	s.invalidateList(ctx)

	s.logger.Info("leave submitted",
		zap.String("leave_id", application.ID.String()),
		zap.String("emp_profile_id", req.EmpProfileID),
		zap.String("leave_type", req.LeaveType),
	)

	resp := toResponse(application)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("cache read failed, falling back to database", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	// Collapse concurrent refills into one database read.
	v, err, _ := s.group.Do(listCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load leave applications", 500)
		}
		list := make([]LeaveResponse, 0, len(rows))
		for i := range rows {
			list = append(list, toResponse(&rows[i]))
		}
		if s.cache != nil {
			if err := s.cache.Put(ctx, list); err != nil {
				s.logger.Warn("cache write failed", zap.Error(err))
			}
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LeaveResponse), nil
}

func (s *service) GetByEmployee(ctx context.Context, empProfileID string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, empProfileID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load leave applications", 500)
	}
	list := make([]LeaveResponse, 0, len(rows))
	for i := range rows {
		list = append(list, toResponse(&rows[i]))
	}
	return list, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (*LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return nil, leaveerrors.ErrInvalidStatus
	}

	application, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load leave application", 500)
	}
	if application.Status != StatusPending {
		return nil, leaveerrors.ErrAlreadyDecided
	}

	application.Status = req.Status
	if req.LeaveType != "" {
		application.LeaveType = req.LeaveType
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to begin transaction", 500)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, application); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to update leave application", 500)
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:    "leave_status_changed",
			LeaveID:      application.ID.String(),
			EmpProfileID: application.EmpProfileID,
			LeaveType:    application.LeaveType,
			Status:       application.Status,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to queue leave event", 500)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave_application",
			AggregateID:   application.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveStatusChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("leave status outbox persist failed",
				zap.String("leave_id", application.ID.String()),
				zap.Error(err),
			)
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to queue leave event", 500)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to commit transaction", 500)
	}

	s.invalidateList(ctx)

	s.logger.Info("leave status updated",
		zap.String("request_id", rid),
		zap.String("leave_id", application.ID.String()),
		zap.String("status", application.Status),
	)

	resp := toResponse(application)
	return &resp, nil
}

func (s *service) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func toResponse(l *LeaveApplication) LeaveResponse {
	return LeaveResponse{
		ID:               l.ID.String(),
		EmpProfileID:     l.EmpProfileID,
		FullName:         l.FullName,
		EmailID:          l.EmailID,
		StartDate:        l.StartDate.Format(clock.DateLayout),
		EndDate:          l.EndDate.Format(clock.DateLayout),
		LeaveType:        l.LeaveType,
		LeaveDuration:    l.LeaveDuration,
		Reason:           l.Reason,
		ReportingManager: l.ReportingManager,
		Department:       l.Department,
		Status:           l.Status,
	}
}
