package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = apperror.New(apperror.CodeNotFound, "user not found", http.StatusNotFound)
	ErrRoleNotFound = apperror.New(apperror.CodeNotFound, "role not found", http.StatusNotFound)
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]UserResponse, error)
	SetRole(ctx context.Context, userID uint, req SetRoleRequest) error
	SetActive(ctx context.Context, userID uint, req SetActiveRequest) error
	ListRoles(ctx context.Context) ([]RoleResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	details, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(details))
	for i, d := range details {
		resp[i] = UserResponse{
			ID:           d.ID,
			Username:     d.Username,
			EmployeeID:   d.EmployeeID,
			EmployeeName: d.EmployeeName(),
			RoleID:       d.RoleID,
			RoleName:     d.RoleName,
			IsAdmin:      d.IsAdmin,
			IsActive:     d.IsActive,
			LastLogin:    d.LastLogin,
		}
	}
	return resp, nil
}

func (s *service) SetRole(ctx context.Context, userID uint, req SetRoleRequest) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if _, err := s.repo.FindRole(ctx, req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	u.RoleID = req.RoleID
	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("set user role success", zap.Uint("user_id", userID), zap.Uint("role_id", req.RoleID))
	return nil
}

func (s *service) SetActive(ctx context.Context, userID uint, req SetActiveRequest) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	u.IsActive = *req.IsActive
	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("set user active success", zap.Uint("user_id", userID), zap.Bool("is_active", u.IsActive))
	return nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = RoleResponse{
			ID:              r.ID,
			RoleName:        r.RoleName,
			IsAdmin:         r.IsAdmin,
			CanEditRota:     r.CanEditRota,
			CanEditLeave:    r.CanEditLeave,
			CanApproveLeave: r.CanApproveLeave,
			CanViewRota:     r.CanViewRota,
			CanViewLeave:    r.CanViewLeave,
			Description:     r.Description,
		}
	}
	return resp, nil
}
