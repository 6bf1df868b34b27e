package breaks_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tdl-hrms/internal/breaks"
	breakserrors "tdl-hrms/internal/breaks/errors"
)

type fakeBreaksRepository struct {
	createFn              func(ctx context.Context, b *breaks.BreakRecord) error
	updateFn              func(ctx context.Context, b *breaks.BreakRecord) error
	findByEmployeeAndDate func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error)
}

func (f *fakeBreaksRepository) WithTx(tx *sql.Tx) breaks.Repository { return f }
func (f *fakeBreaksRepository) Create(ctx context.Context, b *breaks.BreakRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}
func (f *fakeBreaksRepository) Update(ctx context.Context, b *breaks.BreakRecord) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}
func (f *fakeBreaksRepository) FindByEmployeeAndDate(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
	if f.findByEmployeeAndDate != nil {
		return f.findByEmployeeAndDate(ctx, empProfileID, date)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeBreaksRepository) FindByEmployeeAndRange(ctx context.Context, empProfileID string, start, end time.Time) ([]breaks.BreakRecord, error) {
	return nil, nil
}
func (f *fakeBreaksRepository) FindAllByRange(ctx context.Context, start, end time.Time) ([]breaks.BreakRecord, error) {
	return nil, nil
}

func punchRequest(breakTime string) breaks.PunchBreakRequest {
	return breaks.PunchBreakRequest{
		EmpProfileID: "TDL001",
		BreakDate:    "2025-07-14",
		BreakTime:    breakTime,
	}
}

func TestBreaksService_StartBreak_NewRecord(t *testing.T) {
	repo := &fakeBreaksRepository{}
	var created *breaks.BreakRecord
	repo.createFn = func(ctx context.Context, b *breaks.BreakRecord) error {
		created = b
		return nil
	}
	service := breaks.NewService(repo)

	got, err := service.StartBreak(context.Background(), breaks.SlotLunchBreak, punchRequest("13:00"))

	assert.NoError(t, err)
	assert.Equal(t, "13:00:00", created.LunchBreakStart)
	assert.Empty(t, created.LunchBreakEnd)
	assert.Empty(t, created.TeaBreak1Start)
	assert.Equal(t, "13:00:00", got.LunchBreakStart)
}

func TestBreaksService_StartBreak_AlreadyStarted(t *testing.T) {
	repo := &fakeBreaksRepository{}
	repo.findByEmployeeAndDate = func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
		return &breaks.BreakRecord{
			EmpProfileID:    empProfileID,
			BreakDate:       date,
			LunchBreakStart: "13:00:00",
		}, nil
	}
	service := breaks.NewService(repo)

	_, err := service.StartBreak(context.Background(), breaks.SlotLunchBreak, punchRequest("13:05:00"))

	assert.ErrorIs(t, err, breakserrors.ErrBreakAlreadyStarted)
}

func TestBreaksService_EndBreak(t *testing.T) {
	repo := &fakeBreaksRepository{}
	repo.findByEmployeeAndDate = func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
		return &breaks.BreakRecord{
			EmpProfileID:   empProfileID,
			BreakDate:      date,
			TeaBreak1Start: "11:00:00",
		}, nil
	}
	var updated *breaks.BreakRecord
	repo.updateFn = func(ctx context.Context, b *breaks.BreakRecord) error {
		updated = b
		return nil
	}
	service := breaks.NewService(repo)

	_, err := service.EndBreak(context.Background(), breaks.SlotTeaBreak1, punchRequest("11:15:00"))

	assert.NoError(t, err)
	assert.Equal(t, "11:15:00", updated.TeaBreak1End)
}

func TestBreaksService_EndBreak_NotStarted(t *testing.T) {
	service := breaks.NewService(&fakeBreaksRepository{})

	// No record at all for the date.
	_, err := service.EndBreak(context.Background(), breaks.SlotTeaBreak1, punchRequest("11:15:00"))
	assert.ErrorIs(t, err, breakserrors.ErrBreakNotStarted)

	// Record exists but the slot was never started.
	repo := &fakeBreaksRepository{}
	repo.findByEmployeeAndDate = func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
		return &breaks.BreakRecord{
			EmpProfileID:    empProfileID,
			BreakDate:       date,
			LunchBreakStart: "13:00:00",
		}, nil
	}
	service = breaks.NewService(repo)

	_, err = service.EndBreak(context.Background(), breaks.SlotTeaBreak1, punchRequest("11:15:00"))
	assert.ErrorIs(t, err, breakserrors.ErrBreakNotStarted)
}

func TestBreaksService_EndBreak_AlreadyEnded(t *testing.T) {
	repo := &fakeBreaksRepository{}
	repo.findByEmployeeAndDate = func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
		return &breaks.BreakRecord{
			EmpProfileID:   empProfileID,
			BreakDate:      date,
			TeaBreak2Start: "16:00:00",
			TeaBreak2End:   "16:15:00",
		}, nil
	}
	service := breaks.NewService(repo)

	_, err := service.EndBreak(context.Background(), breaks.SlotTeaBreak2, punchRequest("16:20:00"))

	assert.ErrorIs(t, err, breakserrors.ErrBreakAlreadyEnded)
}

func TestBreaksService_MarkAllAbsent(t *testing.T) {
	repo := &fakeBreaksRepository{}
	var created *breaks.BreakRecord
	repo.createFn = func(ctx context.Context, b *breaks.BreakRecord) error {
		created = b
		return nil
	}
	service := breaks.NewService(repo)

	got, err := service.MarkAllAbsent(context.Background(), breaks.MarkAbsentBreaksRequest{
		EmpProfileID: "TDL001",
		BreakDate:    "2025-07-14",
	})

	assert.NoError(t, err)
	assert.Equal(t, breaks.AbsentInterval, created.TeaBreak1Start)
	assert.Equal(t, breaks.AbsentInterval, created.LunchBreakEnd)
	assert.Equal(t, breaks.AbsentInterval, created.TeaBreak2End)
	assert.Equal(t, breaks.AbsentInterval, got.LunchBreakStart)
}

func TestBreaksService_GetDailyActivity(t *testing.T) {
	repo := &fakeBreaksRepository{}
	repo.findByEmployeeAndDate = func(ctx context.Context, empProfileID string, date time.Time) (*breaks.BreakRecord, error) {
		return &breaks.BreakRecord{
			EmpProfileID:    empProfileID,
			BreakDate:       date,
			TeaBreak1Start:  "11:00:00",
			TeaBreak1End:    "11:15:00",
			LunchBreakStart: "13:00:00",
			LunchBreakEnd:   "13:30:00",
			TeaBreak2Start:  breaks.AbsentInterval,
			TeaBreak2End:    breaks.AbsentInterval,
		}, nil
	}
	service := breaks.NewService(repo)

	got, err := service.GetDailyActivity(context.Background(), "TDL001", "2025-07-14")

	assert.NoError(t, err)
	assert.InDelta(t, 0.25, got.TeaBreak1Hours, 1e-9)
	assert.InDelta(t, 0.5, got.LunchBreakHours, 1e-9)
	// The absent sentinel counts as no break taken.
	assert.InDelta(t, 0.0, got.TeaBreak2Hours, 1e-9)
	assert.InDelta(t, 0.75, got.TotalBreakHours, 1e-9)
}

func TestBreaksService_GetByEmployeeAndRange_InvalidRange(t *testing.T) {
	service := breaks.NewService(&fakeBreaksRepository{})

	_, err := service.GetByEmployeeAndRange(context.Background(), "TDL001", "2025-07-15", "2025-07-14")

	assert.ErrorIs(t, err, breakserrors.ErrInvalidDateRange)
}
