package shifttype

import (
	"context"
	"errors"
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrShiftTypeNotFound = apperror.New(apperror.CodeNotFound, "shift type not found", http.StatusNotFound)
	ErrTypeNameTaken     = apperror.New(apperror.CodeConflict, "a shift type with this name already exists", http.StatusConflict)
	ErrShiftTypeInUse    = apperror.New(apperror.CodeConflict, "shift type is referenced by existing shifts", http.StatusConflict)
)

//go:generate mockgen -source=shift_type_service.go -destination=mock/shift_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error)
	GetAll(ctx context.Context) ([]ShiftTypeResponse, error)
	GetByID(ctx context.Context, id uint) (ShiftTypeResponse, error)
	Update(ctx context.Context, id uint, req UpdateShiftTypeRequest) (ShiftTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shifttype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shifttype.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error) {
	taken, err := s.repo.NameTaken(ctx, req.TypeName, nil)
	if err != nil {
		return ShiftTypeResponse{}, err
	}
	if taken {
		return ShiftTypeResponse{}, ErrTypeNameTaken
	}

	st := &ShiftType{
		TypeName:    req.TypeName,
		IsOnCall:    req.IsOnCall,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return ShiftTypeResponse{}, err
	}

	s.logger.Info("create shift type success", zap.Uint("shift_type_id", st.ID), zap.Bool("is_on_call", st.IsOnCall))
	return mapToResponse(*st), nil
}

func (s *service) GetAll(ctx context.Context) ([]ShiftTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ShiftTypeResponse, len(types))
	for i, st := range types {
		resp[i] = mapToResponse(st)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (ShiftTypeResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftTypeResponse{}, ErrShiftTypeNotFound
		}
		return ShiftTypeResponse{}, err
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateShiftTypeRequest) (ShiftTypeResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftTypeResponse{}, ErrShiftTypeNotFound
		}
		return ShiftTypeResponse{}, err
	}

	taken, err := s.repo.NameTaken(ctx, req.TypeName, &id)
	if err != nil {
		return ShiftTypeResponse{}, err
	}
	if taken {
		return ShiftTypeResponse{}, ErrTypeNameTaken
	}

	st.TypeName = req.TypeName
	st.IsOnCall = req.IsOnCall
	st.Description = req.Description

	if err := s.repo.Update(ctx, st); err != nil {
		return ShiftTypeResponse{}, err
	}
	return mapToResponse(*st), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftTypeNotFound
		}
		return err
	}

	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrShiftTypeInUse
	}

	return s.repo.Delete(ctx, id)
}

func mapToResponse(st ShiftType) ShiftTypeResponse {
	return ShiftTypeResponse{
		ID:          st.ID,
		TypeName:    st.TypeName,
		IsOnCall:    st.IsOnCall,
		Description: st.Description,
	}
}
