package leavetype

import (
	"context"
	"errors"
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrLeaveTypeNotFound = apperror.New(apperror.CodeNotFound, "leave type not found", http.StatusNotFound)
	ErrLeaveNameTaken    = apperror.New(apperror.CodeConflict, "a leave type with this name already exists", http.StatusConflict)
	ErrLeaveTypeInUse    = apperror.New(apperror.CodeConflict, "leave type is referenced by existing leave requests", http.StatusConflict)
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id uint) (LeaveTypeResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	taken, err := s.repo.NameTaken(ctx, req.LeaveTypeName, nil)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	if taken {
		return LeaveTypeResponse{}, ErrLeaveNameTaken
	}

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	lt := &LeaveType{
		LeaveTypeName:    req.LeaveTypeName,
		RequiresApproval: requiresApproval,
		Description:      req.Description,
	}
	if err := s.repo.Create(ctx, lt); err != nil {
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success", zap.Uint("leave_type_id", lt.ID))
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	taken, err := s.repo.NameTaken(ctx, req.LeaveTypeName, &id)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	if taken {
		return LeaveTypeResponse{}, ErrLeaveNameTaken
	}

	lt.LeaveTypeName = req.LeaveTypeName
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	lt.Description = req.Description

	if err := s.repo.Update(ctx, lt); err != nil {
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeaveTypeNotFound
		}
		return err
	}

	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrLeaveTypeInUse
	}

	return s.repo.Delete(ctx, id)
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:               lt.ID,
		LeaveTypeName:    lt.LeaveTypeName,
		RequiresApproval: lt.RequiresApproval,
		Description:      lt.Description,
	}
}
