package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "tdl-hrms/internal/auth/errors"
	"tdl-hrms/internal/employee"
	"tdl-hrms/internal/shared/apperror"
)

const tokenTTL = 24 * time.Hour

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, empProfileID string) (*MeResponse, error)
}

type service struct {
	employees employee.Repository
	secret    []byte
	logger    *zap.Logger
}

func NewService(employees employee.Repository) Service {
	return &service{
		employees: employees,
		secret:    []byte(os.Getenv("JWT_SECRET")),
		logger:    zap.L().Named("auth_service"),
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	empl, err := s.employees.FindByEmail(ctx, req.EmailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidCredentials
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load account", 500)
	}
	if !empl.IsActive {
		return nil, autherrors.ErrInactiveAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(req.Password)); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"emp_profile_id": empl.EmpProfileID,
		"emp_name":       empl.FullName(),
		"role":           empl.Role,
		"iat":            now.Unix(),
		"exp":            now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to issue token", 500)
	}

	s.logger.Info("login succeeded",
		zap.String("emp_profile_id", empl.EmpProfileID),
		zap.String("role", empl.Role),
	)

	return &LoginResponse{
		Token:        token,
		EmpProfileID: empl.EmpProfileID,
		EmpName:      empl.FullName(),
		Role:         empl.Role,
	}, nil
}

func (s *service) Me(ctx context.Context, empProfileID string) (*MeResponse, error) {
	empl, err := s.employees.FindByID(ctx, empProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidToken
		}
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load account", 500)
	}
	return &MeResponse{
		EmpProfileID: empl.EmpProfileID,
		EmpName:      empl.FullName(),
		EmailID:      empl.EmailID,
		Designation:  empl.Designation,
		Role:         empl.Role,
	}, nil
}
