package shift

import (
	"context"
	"database/sql"
	"errors"

	shifterrors "github.com/BenitoJD/ROTA-API/internal/shift/errors"
	"github.com/BenitoJD/ROTA-API/internal/shared/timewindow"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	List(ctx context.Context, query ListShiftsQuery) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id uint) (ShiftResponse, error)
	Update(ctx context.Context, id uint, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create shift begin tx failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.checkReferences(ctx, qtx, req.EmployeeID, req.ShiftTypeID); err != nil {
		return ShiftResponse{}, err
	}

	overlap, err := qtx.HasOverlappingShift(ctx, req.EmployeeID, req.StartTime, req.EndTime, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	if overlap {
		return ShiftResponse{}, shifterrors.ErrShiftOverlap
	}

	sh := &Shift{
		EmployeeID:  req.EmployeeID,
		ShiftTypeID: req.ShiftTypeID,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Notes:       req.Notes,
	}
	if err := qtx.Create(ctx, sh); err != nil {
		return ShiftResponse{}, mapConstraintError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create shift commit failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	s.logger.Info("create shift success",
		zap.Uint("shift_id", sh.ID),
		zap.Uint("employee_id", sh.EmployeeID),
		zap.Time("start_time", sh.StartTime),
	)
	return s.GetByID(ctx, sh.ID)
}

func (s *service) List(ctx context.Context, query ListShiftsQuery) ([]ShiftResponse, error) {
	filter := ListFilter{
		EmployeeID: query.EmployeeID,
		TeamID:     query.TeamID,
		IsOnCall:   query.IsOnCall,
	}
	if query.StartDate != nil && query.EndDate != nil {
		winStart, winEnd := timewindow.QueryWindow(*query.StartDate, *query.EndDate)
		filter.WindowStart = &winStart
		filter.WindowEnd = &winEnd
	}

	details, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]ShiftResponse, len(details))
	for i, d := range details {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (ShiftResponse, error) {
	d, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateShiftRequest) (ShiftResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftRange
	}

	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update shift begin tx failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.checkReferences(ctx, qtx, req.EmployeeID, req.ShiftTypeID); err != nil {
		return ShiftResponse{}, err
	}

	overlap, err := qtx.HasOverlappingShift(ctx, req.EmployeeID, req.StartTime, req.EndTime, &id)
	if err != nil {
		return ShiftResponse{}, err
	}
	if overlap {
		return ShiftResponse{}, shifterrors.ErrShiftOverlap
	}

	sh.EmployeeID = req.EmployeeID
	sh.ShiftTypeID = req.ShiftTypeID
	sh.StartTime = req.StartTime.UTC()
	sh.EndTime = req.EndTime.UTC()
	sh.Notes = req.Notes

	if err := qtx.Update(ctx, sh); err != nil {
		return ShiftResponse{}, mapConstraintError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update shift commit failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shifterrors.ErrShiftNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("delete shift success", zap.Uint("shift_id", id))
	return nil
}

func (s *service) checkReferences(ctx context.Context, repo Repository, employeeID uint, shiftTypeID *uint) error {
	exists, active, err := repo.EmployeeStatus(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return shifterrors.ErrEmployeeNotFound
	}
	if !active {
		return shifterrors.ErrEmployeeInactive
	}

	if shiftTypeID != nil {
		found, err := repo.ShiftTypeExists(ctx, *shiftTypeID)
		if err != nil {
			return err
		}
		if !found {
			return shifterrors.ErrShiftTypeNotFound
		}
	}
	return nil
}

// mapConstraintError keeps concurrent writers honest: the overlap check and
// the insert are not atomic without help from the database, so an exclusion
// or unique violation surfaces as the same conflict error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
		return shifterrors.ErrShiftOverlap
	}
	return err
}

func mapToResponse(d ShiftDetail) ShiftResponse {
	return ShiftResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName(),
		TeamID:        d.TeamID,
		TeamName:      d.TeamName,
		ShiftTypeID:   d.ShiftTypeID,
		ShiftTypeName: d.ShiftTypeName,
		IsOnCall:      d.IsOnCall,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Notes:         d.Notes,
	}
}
