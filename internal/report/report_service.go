package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tdl-hrms/internal/attendance"
	"tdl-hrms/internal/breaks"
	"tdl-hrms/internal/employee"
	employeeerrors "tdl-hrms/internal/employee/errors"
	"tdl-hrms/internal/events"
	"tdl-hrms/internal/holiday"
	"tdl-hrms/internal/leave"
	"tdl-hrms/internal/messaging/kafka"
	reporterrors "tdl-hrms/internal/report/errors"
	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/clock"
	"tdl-hrms/internal/shared/contextutil"
)

type Service interface {
	MonthlyReport(ctx context.Context, year, month int) ([]MonthlyReportRow, error)
	DashboardAnalytics(ctx context.Context, empProfileID string, year, month int) (*DailyAnalytics, error)
}

type service struct {
	db        *sql.DB
	employees employee.Repository
	punches   attendance.Repository
	breaks    breaks.Repository
	leaves    leave.Repository
	holidays  holiday.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	employees employee.Repository,
	punches attendance.Repository,
	brk breaks.Repository,
	leaves leave.Repository,
	holidays holiday.Repository,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		employees: employees,
		punches:   punches,
		breaks:    brk,
		leaves:    leaves,
		holidays:  holidays,
		outbox:    outbox,
		logger:    zap.L().Named("report_service"),
	}
}

func validPeriod(year, month int) bool {
	return year >= 1000 && year <= 9999 && month >= 1 && month <= 12
}

func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return start, end
}

// MonthlyReport reconciles the month's punches, breaks and leave applications
// into one payroll row per active employee and queues a generated event for
// downstream consumers.
func (s *service) MonthlyReport(ctx context.Context, year, month int) ([]MonthlyReportRow, error) {
	if !validPeriod(year, month) {
		return nil, reporterrors.ErrInvalidPeriod
	}

	roster, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load employees", 500)
	}
	if len(roster) == 0 {
		return nil, reporterrors.ErrNoRecords
	}

	start, end := monthBounds(year, month)

	punchRows, err := s.punches.FindAllByRange(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance", 500)
	}
	breakRows, err := s.breaks.FindAllByRange(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load breaks", 500)
	}
	leaveRows, err := s.leaves.FindByStartRange(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load leave applications", 500)
	}

	rows := BuildMonthlyReport(
		mapEmployees(roster),
		mapPunches(punchRows),
		mapBreaks(breakRows),
		mapLeaves(leaveRows),
		year, month,
	)

	if err := s.queueGeneratedEvent(ctx, year, month, len(rows)); err != nil {
		return nil, err
	}

	s.logger.Info("monthly report generated",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("employees", len(rows)),
	)
	return rows, nil
}

// DashboardAnalytics splits the month into working and non-working days for
// one employee and derives their attendance counters and daily trend.
func (s *service) DashboardAnalytics(ctx context.Context, empProfileID string, year, month int) (*DailyAnalytics, error) {
	if !validPeriod(year, month) {
		return nil, reporterrors.ErrInvalidPeriod
	}

	if _, err := s.employees.FindByID(ctx, empProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load employee", 500)
	}

	start, end := monthBounds(year, month)

	punchRows, err := s.punches.FindByEmployeeAndRange(ctx, empProfileID, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load attendance", 500)
	}
	breakRows, err := s.breaks.FindByEmployeeAndRange(ctx, empProfileID, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load breaks", 500)
	}
	holidayRows, err := s.holidays.FindByRange(ctx, start, end)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load holidays", 500)
	}

	analytics := BuildAnalytics(
		mapPunches(punchRows),
		mapBreaks(breakRows),
		mapHolidays(holidayRows),
		year, month, DaysInMonth(year, month),
	)
	return &analytics, nil
}

func (s *service) queueGeneratedEvent(ctx context.Context, year, month, employeeCount int) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.ReportMonthlyGeneratedEvent{
		EventType:     "report_monthly_generated",
		Year:          year,
		Month:         month,
		EmployeeCount: employeeCount,
		GeneratedBy:   contextutil.GetActorID(ctx),
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to queue report event", 500)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to begin transaction", 500)
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "monthly_report",
		AggregateID:   time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		EventType:     event.EventType,
		Topic:         events.ReportMonthlyGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("report outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to queue report event", 500)
	}

	if err := tx.Commit(); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to commit transaction", 500)
	}
	return nil
}

func mapEmployees(rows []employee.Employee) []Employee {
	out := make([]Employee, 0, len(rows))
	for _, e := range rows {
		out = append(out, Employee{
			ProfileID:   e.EmpProfileID,
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Designation: e.Designation,
		})
	}
	return out
}

func mapPunches(rows []attendance.Attendance) []Punch {
	out := make([]Punch, 0, len(rows))
	for _, a := range rows {
		p := Punch{
			EmployeeID: a.EmpProfileID,
			Date:       a.LoginDate.Format(clock.DateLayout),
			Status:     a.LoginStatus,
		}
		if a.LoginTime != nil {
			p.LoginTime = *a.LoginTime
		}
		if a.LogoffTime != nil {
			p.LogoffTime = *a.LogoffTime
		}
		if a.WorkingHours != nil {
			p.WorkedHours = *a.WorkingHours
		}
		out = append(out, p)
	}
	return out
}

func mapBreaks(rows []breaks.BreakRecord) []BreakDay {
	out := make([]BreakDay, 0, len(rows))
	for _, b := range rows {
		out = append(out, BreakDay{
			EmployeeID: b.EmpProfileID,
			Date:       b.BreakDate.Format(clock.DateLayout),
			Tea1Start:  b.TeaBreak1Start,
			Tea1End:    b.TeaBreak1End,
			LunchStart: b.LunchBreakStart,
			LunchEnd:   b.LunchBreakEnd,
			Tea2Start:  b.TeaBreak2Start,
			Tea2End:    b.TeaBreak2End,
		})
	}
	return out
}

func mapLeaves(rows []leave.LeaveApplication) []LeaveApp {
	out := make([]LeaveApp, 0, len(rows))
	for _, l := range rows {
		out = append(out, LeaveApp{
			EmployeeID: l.EmpProfileID,
			StartDate:  l.StartDate.Format(clock.DateLayout),
			EndDate:    l.EndDate.Format(clock.DateLayout),
			Type:       l.LeaveType,
			Duration:   l.LeaveDuration,
			Status:     l.Status,
		})
	}
	return out
}

func mapHolidays(rows []holiday.Holiday) []Holiday {
	out := make([]Holiday, 0, len(rows))
	for _, h := range rows {
		out = append(out, Holiday{
			Date: h.HolidayDate.Format(clock.DateLayout),
			Name: h.Name,
		})
	}
	return out
}
