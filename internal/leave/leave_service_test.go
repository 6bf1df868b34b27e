package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tdl-hrms/internal/events"
	"tdl-hrms/internal/leave"
	leaveerrors "tdl-hrms/internal/leave/errors"
	"tdl-hrms/internal/messaging/kafka"
)

type fakeLeaveRepository struct {
	createFn   func(ctx context.Context, l *leave.LeaveApplication) error
	updateFn   func(ctx context.Context, l *leave.LeaveApplication) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*leave.LeaveApplication, error)
	findAllFn  func(ctx context.Context) ([]leave.LeaveApplication, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveApplication) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	l.ID = uuid.New()
	return nil
}
func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveApplication) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}
func (f *fakeLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*leave.LeaveApplication, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveApplication, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}
func (f *fakeLeaveRepository) FindByEmployee(ctx context.Context, empProfileID string) ([]leave.LeaveApplication, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) FindByStartRange(ctx context.Context, start, end time.Time) ([]leave.LeaveApplication, error) {
	return nil, nil
}

type fakeListCache struct {
	cached      []leave.LeaveResponse
	hit         bool
	puts        int
	invalidates int
}

func (f *fakeListCache) Get(ctx context.Context) ([]leave.LeaveResponse, bool, error) {
	return f.cached, f.hit, nil
}
func (f *fakeListCache) Put(ctx context.Context, list []leave.LeaveResponse) error {
	f.cached = list
	f.hit = true
	f.puts++
	return nil
}
func (f *fakeListCache) Invalidate(ctx context.Context) error {
	f.cached = nil
	f.hit = false
	f.invalidates++
	return nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeLeaveRepository
	cache   *fakeListCache
	outbox  *fakeOutboxRepository
	service leave.Service
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    &fakeLeaveRepository{},
		cache:   &fakeListCache{},
		outbox:  &fakeOutboxRepository{},
	}
	deps.service = leave.NewService(db, deps.repo, deps.cache, deps.outbox)
	return deps
}

func submitRequest() leave.SubmitLeaveRequest {
	return leave.SubmitLeaveRequest{
		EmpProfileID:     "TDL001",
		FullName:         "Ravi Kumar",
		EmailID:          "ravi.kumar@example.com",
		StartDate:        "2025-07-14",
		EndDate:          "2025-07-15",
		LeaveType:        "Paid leave",
		LeaveDuration:    "Full Day",
		Reason:           "Family function",
		ReportingManager: "Meena Nair",
		Department:       "Engineering",
	}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	var created *leave.LeaveApplication
	deps.repo.createFn = func(ctx context.Context, l *leave.LeaveApplication) error {
		l.ID = uuid.New()
		created = l
		return nil
	}

	got, err := deps.service.Submit(ctx, submitRequest())

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "2025-07-14", got.StartDate)
	assert.Equal(t, leave.StatusPending, got.Status)
	assert.Equal(t, 1, deps.cache.invalidates)
}

func TestLeaveService_Submit_InvalidRange(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	req := submitRequest()
	req.StartDate = "2025-07-15"
	req.EndDate = "2025-07-14"

	_, err := deps.service.Submit(context.Background(), req)

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestLeaveService_Submit_BadDate(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	req := submitRequest()
	req.StartDate = "14-07-2025"

	_, err := deps.service.Submit(context.Background(), req)

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
}

func TestLeaveService_GetAll_CacheMissThenHit(t *testing.T) {
	ctx := context.Background()

	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	dbReads := 0
	deps.repo.findAllFn = func(ctx context.Context) ([]leave.LeaveApplication, error) {
		dbReads++
		return []leave.LeaveApplication{
			{
				ID:           uuid.New(),
				EmpProfileID: "TDL001",
				StartDate:    time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
				Status:       leave.StatusPending,
			},
		}, nil
	}

	first, err := deps.service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, dbReads)
	assert.Equal(t, 1, deps.cache.puts)

	second, err := deps.service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, dbReads)
}

func TestLeaveService_UpdateStatus_Approve(t *testing.T) {
	ctx := context.Background()

	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	id := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, got uuid.UUID) (*leave.LeaveApplication, error) {
		assert.Equal(t, id, got)
		return &leave.LeaveApplication{
			ID:           id,
			EmpProfileID: "TDL001",
			LeaveType:    "LOP",
			Status:       leave.StatusPending,
		}, nil
	}
	var updated *leave.LeaveApplication
	deps.repo.updateFn = func(ctx context.Context, l *leave.LeaveApplication) error {
		updated = l
		return nil
	}
	var queued kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		queued = event
		return nil
	}

	got, err := deps.service.UpdateStatus(ctx, id.String(), leave.UpdateLeaveStatusRequest{
		Status:    leave.StatusApproved,
		LeaveType: "Paid leave",
	})

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, "Paid leave", updated.LeaveType)
	assert.Equal(t, 1, deps.cache.invalidates)

	assert.Equal(t, events.LeaveStatusChangedTopic, queued.Topic)
	assert.Equal(t, id.String(), queued.AggregateID)
	var event events.LeaveStatusChangedEvent
	assert.NoError(t, json.Unmarshal(queued.Payload, &event))
	assert.Equal(t, "leave_status_changed", event.EventType)
	assert.Equal(t, leave.StatusApproved, event.Status)
	assert.Equal(t, "Paid leave", event.LeaveType)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_UpdateStatus_AlreadyDecided(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	id := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, got uuid.UUID) (*leave.LeaveApplication, error) {
		return &leave.LeaveApplication{ID: id, Status: leave.StatusApproved}, nil
	}

	_, err := deps.service.UpdateStatus(context.Background(), id.String(), leave.UpdateLeaveStatusRequest{
		Status: leave.StatusRejected,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	assert.Equal(t, 0, deps.cache.invalidates)
}

func TestLeaveService_UpdateStatus_NotFound(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.UpdateStatus(context.Background(), "not-a-uuid", leave.UpdateLeaveStatusRequest{
		Status: leave.StatusApproved,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	_, err = deps.service.UpdateStatus(context.Background(), uuid.NewString(), leave.UpdateLeaveStatusRequest{
		Status: leave.StatusApproved,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}
