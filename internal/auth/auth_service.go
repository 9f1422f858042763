package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/BenitoJD/ROTA-API/internal/auth/errors"
	"github.com/BenitoJD/ROTA-API/internal/middleware"
	"github.com/BenitoJD/ROTA-API/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	role, err := s.users.FindRole(ctx, u.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrRoleNotFound
		}
		return AuthResponse{}, err
	}

	token, err := generateToken(u, role)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("update last login failed", zap.Uint("user_id", u.ID), zap.Error(err))
	}

	s.logger.Info("login success", zap.Uint("user_id", u.ID), zap.String("username", u.Username))
	return AuthResponse{
		Token:      token,
		UserID:     u.ID,
		EmployeeID: u.EmployeeID,
		Username:   u.Username,
		IsAdmin:    role.IsAdmin,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	taken, err := s.users.UsernameTaken(ctx, req.Username)
	if err != nil {
		return AuthResponse{}, err
	}
	if taken {
		return AuthResponse{}, autherrors.ErrUsernameTaken
	}

	exists, err := s.users.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AuthResponse{}, err
	}
	if !exists {
		return AuthResponse{}, autherrors.ErrEmployeeNotFound
	}

	role, err := s.users.FindRole(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrRoleNotFound
		}
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		EmployeeID:   req.EmployeeID,
		RoleID:       req.RoleID,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("register success", zap.Uint("user_id", u.ID), zap.Uint("employee_id", u.EmployeeID))
	return AuthResponse{
		UserID:     u.ID,
		EmployeeID: u.EmployeeID,
		Username:   u.Username,
		IsAdmin:    role.IsAdmin,
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hashed)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("change password success", zap.Uint("user_id", userID))
	return nil
}

func generateToken(u *user.User, role *user.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id":                  u.ID,
		"employee_id":              u.EmployeeID,
		"is_admin":                 role.IsAdmin,
		middleware.CapEditRota:     role.CanEditRota,
		middleware.CapEditLeave:    role.CanEditLeave,
		middleware.CapApproveLeave: role.CanApproveLeave,
		middleware.CapViewRota:     role.CanViewRota,
		middleware.CapViewLeave:    role.CanViewLeave,
		"exp":                      time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
