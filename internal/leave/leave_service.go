package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BenitoJD/ROTA-API/internal/events"
	leaveerrors "github.com/BenitoJD/ROTA-API/internal/leave/errors"
	"github.com/BenitoJD/ROTA-API/internal/messaging/kafka"
	"github.com/BenitoJD/ROTA-API/internal/shared/contextutil"
	"github.com/BenitoJD/ROTA-API/internal/shared/timewindow"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cancelledAfterApprovalNote = " [Cancelled after approval]"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, actor Actor, query ListLeaveQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id uint, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actor Actor, id uint) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, actor Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	targetEmployee := actor.EmployeeID
	if req.EmployeeID != nil {
		targetEmployee = *req.EmployeeID
	}
	if !actor.IsAdmin && targetEmployee != actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrNotOwnRequest
	}
	if targetEmployee == 0 {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}
	if !req.StartDate.Before(req.EndDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, active, err := qtx.EmployeeStatus(ctx, targetEmployee)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}
	if !active {
		return LeaveResponse{}, leaveerrors.ErrEmployeeInactive
	}

	typeExists, requiresApproval, err := qtx.LeaveTypeInfo(ctx, req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !typeExists {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}

	overlap, err := qtx.ApprovedLeaveOverlapExists(ctx, targetEmployee, req.StartDate, req.EndDate, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	shiftConflict, err := qtx.HasShiftInRange(ctx, targetEmployee, req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	lr := &LeaveRequest{
		EmployeeID:  targetEmployee,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
		Reason:      req.Reason,
		Status:      StatusPending,
		RequestDate: now,
		CreatedByID: actor.UserID,
	}
	if !requiresApproval {
		lr.Status = StatusApproved
		lr.ApprovalDate = &now
	}

	if err := qtx.Create(ctx, lr); err != nil {
		return LeaveResponse{}, mapConstraintError(err)
	}

	if err := s.queueStatusEvent(ctx, tx, lr, "", lr.Status, actor.UserID); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.Uint("leave_request_id", lr.ID),
		zap.Uint("employee_id", lr.EmployeeID),
		zap.String("status", lr.Status),
		zap.Bool("shift_conflict_warning", shiftConflict),
	)

	resp, err := s.fetchResponse(ctx, lr.ID)
	if err != nil {
		return LeaveResponse{}, err
	}
	resp.ShiftConflictWarning = shiftConflict
	return resp, nil
}

func (s *service) List(ctx context.Context, actor Actor, query ListLeaveQuery) ([]LeaveResponse, error) {
	filter := ListFilter{
		TeamID:      query.TeamID,
		LeaveTypeID: query.LeaveTypeID,
	}

	if !actor.IsAdmin {
		// Asking for someone else's records yields an empty list rather
		// than revealing they exist.
		if query.EmployeeID != nil && *query.EmployeeID != actor.EmployeeID {
			return []LeaveResponse{}, nil
		}
		own := actor.EmployeeID
		filter.EmployeeID = &own
	} else {
		filter.EmployeeID = query.EmployeeID
	}

	if query.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*query.Status))
		if !ValidStatus(status) {
			return []LeaveResponse{}, nil
		}
		filter.Status = &status
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

	resp := make([]LeaveResponse, len(details))
	for i, d := range details {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id uint) (LeaveResponse, error) {
	d, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !actor.IsAdmin && d.EmployeeID != actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*d), nil
}

// UpdateStatus moves a PENDING request to APPROVED or REJECTED. Approval
// re-checks the overlap invariant because other leave may have been
// approved since the request was submitted.
func (s *service) UpdateStatus(ctx context.Context, actor Actor, id uint, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !CanTransition(lr.Status, req.Status) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.Status == StatusApproved {
		overlap, err := qtx.ApprovedLeaveOverlapExists(ctx, lr.EmployeeID, lr.StartDate, lr.EndDate, &lr.ID)
		if err != nil {
			return LeaveResponse{}, err
		}
		if overlap {
			return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
	}

	fromStatus := lr.Status
	now := time.Now().UTC()
	lr.Status = req.Status
	lr.ApprovedByID = &actor.UserID
	lr.ApprovalDate = &now
	lr.ApprovalNotes = req.Notes
	lr.UpdatedByID = &actor.UserID

	if err := qtx.Update(ctx, lr); err != nil {
		return LeaveResponse{}, mapConstraintError(err)
	}

	if err := s.queueStatusEvent(ctx, tx, lr, fromStatus, lr.Status, actor.UserID); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave status success",
		zap.Uint("leave_request_id", lr.ID),
		zap.String("from_status", fromStatus),
		zap.String("to_status", lr.Status),
	)
	return s.fetchResponse(ctx, lr.ID)
}

// Cancel is available to the owning employee and to admins. Cancelling an
// already approved request clears the approver fields and records the fact
// in the notes.
func (s *service) Cancel(ctx context.Context, actor Actor, id uint) (LeaveResponse, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !actor.IsAdmin && lr.EmployeeID != actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	if !CanTransition(lr.Status, StatusCancelled) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	fromStatus := lr.Status
	lr.Status = StatusCancelled
	lr.UpdatedByID = &actor.UserID
	if fromStatus == StatusApproved {
		existing := ""
		if lr.ApprovalNotes != nil {
			existing = *lr.ApprovalNotes
		}
		note := existing + cancelledAfterApprovalNote
		lr.ApprovalNotes = &note
		lr.ApprovedByID = nil
		lr.ApprovalDate = nil
	}

	if err := qtx.Update(ctx, lr); err != nil {
		return LeaveResponse{}, err
	}

	if err := s.queueStatusEvent(ctx, tx, lr, fromStatus, StatusCancelled, actor.UserID); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success",
		zap.Uint("leave_request_id", lr.ID),
		zap.String("from_status", fromStatus),
	)
	return s.fetchResponse(ctx, lr.ID)
}

func (s *service) queueStatusEvent(ctx context.Context, tx *sql.Tx, lr *LeaveRequest, from, to string, actorUserID uint) error {
	event := events.LeaveStatusChangedEvent{
		EventType:      "leave.status_changed",
		LeaveRequestID: lr.ID,
		EmployeeID:     lr.EmployeeID,
		FromStatus:     from,
		ToStatus:       to,
		ActorUserID:    actorUserID,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   fmt.Sprintf("%d", lr.ID),
		EventType:     event.EventType,
		Topic:         events.LeaveStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) fetchResponse(ctx context.Context, id uint) (LeaveResponse, error) {
	d, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*d), nil
}

// mapConstraintError covers the race between the overlap check and the
// write when the database carries its own exclusion constraint.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
		return leaveerrors.ErrLeaveOverlap
	}
	return err
}

func mapToResponse(d LeaveDetail) LeaveResponse {
	return LeaveResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName(),
		TeamID:        d.TeamID,
		TeamName:      d.TeamName,
		LeaveTypeID:   d.LeaveTypeID,
		LeaveTypeName: d.LeaveTypeName,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Reason:        d.Reason,
		Status:        d.Status,
		RequestDate:   d.RequestDate,
		ApprovedByID:  d.ApprovedByID,
		ApprovalDate:  d.ApprovalDate,
		ApprovalNotes: d.ApprovalNotes,
	}
}
