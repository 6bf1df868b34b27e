package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "tdl-hrms/internal/employee/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, empProfileID string) (EmployeeResponse, error)
	Update(ctx context.Context, empProfileID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, empProfileID string) error
	TodaysBirthdays(ctx context.Context) ([]BirthdayResponse, error)
	BirthdaysByMonth(ctx context.Context, month int) ([]BirthdayResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, req.EmpProfileID); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrProfileIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	}

	if _, err := qtx.FindByEmail(ctx, req.EmailID); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		EmpProfileID:  req.EmpProfileID,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		DOB:           dob,
		ContactNumber: req.ContactNumber,
		EmailID:       req.EmailID,
		Designation:   req.Designation,
		JoinDate:      joinDate,
		PANNumber:     req.PANNumber,
		AadhaarNumber: req.AadhaarNumber,
		Role:          req.Role,
		PasswordHash:  string(hash),
		IsActive:      true,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created", zap.String("emp_profile_id", e.EmpProfileID))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, empProfileID string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, empProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, empProfileID string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, empProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e.FirstName = req.FirstName
	e.MiddleName = req.MiddleName
	e.LastName = req.LastName
	e.DOB = dob
	e.ContactNumber = req.ContactNumber
	e.EmailID = req.EmailID
	e.Designation = req.Designation
	e.JoinDate = joinDate
	e.PANNumber = req.PANNumber
	e.AadhaarNumber = req.AadhaarNumber
	e.Role = req.Role

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, empProfileID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, empProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}
	if err := qtx.Deactivate(ctx, empProfileID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) TodaysBirthdays(ctx context.Context) ([]BirthdayResponse, error) {
	now := time.Now()
	rows, err := s.repo.FindByBirthday(ctx, int(now.Month()), now.Day())
	if err != nil {
		return nil, err
	}
	return mapToBirthdays(rows), nil
}

func (s *service) BirthdaysByMonth(ctx context.Context, month int) ([]BirthdayResponse, error) {
	if month < 1 || month > 12 {
		return nil, employeeerrors.ErrInvalidMonth
	}
	rows, err := s.repo.FindByBirthdayMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return mapToBirthdays(rows), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpProfileID:  e.EmpProfileID,
		FirstName:     e.FirstName,
		MiddleName:    e.MiddleName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		DOB:           e.DOB.Format("2006-01-02"),
		Age:           age(e.DOB, time.Now()),
		ContactNumber: e.ContactNumber,
		EmailID:       e.EmailID,
		Designation:   e.Designation,
		JoinDate:      e.JoinDate.Format("2006-01-02"),
		PANNumber:     e.PANNumber,
		AadhaarNumber: e.AadhaarNumber,
		Role:          e.Role,
		IsActive:      e.IsActive,
	}
}

func mapToBirthdays(rows []Employee) []BirthdayResponse {
	res := make([]BirthdayResponse, len(rows))
	for i, e := range rows {
		res[i] = BirthdayResponse{
			EmpProfileID: e.EmpProfileID,
			FullName:     e.FullName(),
			Designation:  e.Designation,
			DOB:          e.DOB.Format("2006-01-02"),
		}
	}
	return res
}

func age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
