package employee

import (
	"context"
	"database/sql"
	"errors"

	employeeerrors "github.com/BenitoJD/ROTA-API/internal/employee/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id uint) error
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
	if req.TeamID != nil {
		exists, err := s.repo.TeamExists(ctx, *req.TeamID)
		if err != nil {
			s.logger.Error("create employee team check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrTeamNotFound
		}
	}

	e := &Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		TeamID:      req.TeamID,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success", zap.Uint("employee_id", e.ID))
	return s.mapToResponse(ctx, *e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = s.mapToResponse(ctx, e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return s.mapToResponse(ctx, *e), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.TeamID != nil && (e.TeamID == nil || *req.TeamID != *e.TeamID) {
		exists, err := s.repo.TeamExists(ctx, *req.TeamID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrTeamNotFound
		}
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Email = req.Email
	e.PhoneNumber = req.PhoneNumber
	e.TeamID = req.TeamID
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	return s.mapToResponse(ctx, *e), nil
}

// Deactivate is the delete operation: rows stay behind shifts and leave
// history, only the IsActive flag drops.
func (s *service) Deactivate(ctx context.Context, id uint) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	e.IsActive = false
	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}

	s.logger.Info("deactivate employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) mapToResponse(ctx context.Context, e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		TeamID:      e.TeamID,
		IsActive:    e.IsActive,
	}
	if e.TeamID != nil {
		if name, err := s.repo.TeamName(ctx, *e.TeamID); err == nil && name != "" {
			resp.TeamName = &name
		}
	}
	return resp
}
