package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	leaveerrors "github.com/BenitoJD/ROTA-API/internal/leave/errors"
	"github.com/BenitoJD/ROTA-API/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn                     func(tx *sql.Tx) Repository
	createFn                     func(ctx context.Context, lr *LeaveRequest) error
	findByIDFn                   func(ctx context.Context, id uint) (*LeaveRequest, error)
	findDetailByIDFn             func(ctx context.Context, id uint) (*LeaveDetail, error)
	listFn                       func(ctx context.Context, filter ListFilter) ([]LeaveDetail, error)
	updateFn                     func(ctx context.Context, lr *LeaveRequest) error
	approvedLeaveOverlapExistsFn func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error)
	hasShiftInRangeFn            func(ctx context.Context, employeeID uint, start, end time.Time) (bool, error)
	employeeStatusFn             func(ctx context.Context, employeeID uint) (bool, bool, error)
	leaveTypeInfoFn              func(ctx context.Context, leaveTypeID uint) (bool, bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, lr *LeaveRequest) error {
	return f.createFn(ctx, lr)
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindDetailByID(ctx context.Context, id uint) (*LeaveDetail, error) {
	return f.findDetailByIDFn(ctx, id)
}
func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]LeaveDetail, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeRepo) Update(ctx context.Context, lr *LeaveRequest) error {
	return f.updateFn(ctx, lr)
}
func (f *fakeRepo) ApprovedLeaveOverlapExists(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
	return f.approvedLeaveOverlapExistsFn(ctx, employeeID, start, end, excludeID)
}
func (f *fakeRepo) HasShiftInRange(ctx context.Context, employeeID uint, start, end time.Time) (bool, error) {
	return f.hasShiftInRangeFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) EmployeeStatus(ctx context.Context, employeeID uint) (bool, bool, error) {
	return f.employeeStatusFn(ctx, employeeID)
}
func (f *fakeRepo) LeaveTypeInfo(ctx context.Context, leaveTypeID uint) (bool, bool, error) {
	return f.leaveTypeInfoFn(ctx, leaveTypeID)
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeStatusFn = func(ctx context.Context, employeeID uint) (bool, bool, error) { return true, true, nil }
	repo.leaveTypeInfoFn = func(ctx context.Context, leaveTypeID uint) (bool, bool, error) { return true, true, nil }
	repo.approvedLeaveOverlapExistsFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		return false, nil
	}
	repo.hasShiftInRangeFn = func(ctx context.Context, employeeID uint, start, end time.Time) (bool, error) {
		return false, nil
	}
	repo.createFn = func(ctx context.Context, lr *LeaveRequest) error {
		lr.ID = 10
		return nil
	}
	repo.findDetailByIDFn = func(ctx context.Context, id uint) (*LeaveDetail, error) {
		return &LeaveDetail{ID: id, EmployeeID: 3, FirstName: "Ada", LastName: "Nolan", LeaveTypeName: "Annual", Status: StatusPending}, nil
	}
	return repo
}

var (
	leaveStart = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	leaveEnd   = time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
)

func TestService_Create_OwnRequest(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), Actor{UserID: 1, EmployeeID: 3}, CreateLeaveRequest{
		LeaveTypeID: 2,
		StartDate:   leaveStart,
		EndDate:     leaveEnd,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(10), resp.ID)
	assert.False(t, resp.ShiftConflictWarning)
	if assert.Len(t, outbox.events, 1) {
		assert.Equal(t, "leave.status_changed", outbox.events[0].EventType)
		assert.Equal(t, "leave_request", outbox.events[0].AggregateType)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ForOtherEmployeeDenied(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo, &fakeOutbox{})

	other := uint(9)
	_, err := svc.Create(context.Background(), Actor{UserID: 1, EmployeeID: 3}, CreateLeaveRequest{
		EmployeeID:  &other,
		LeaveTypeID: 2,
		StartDate:   leaveStart,
		EndDate:     leaveEnd,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrNotOwnRequest)
}

func TestService_Create_ApprovedOverlapBlocks(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.approvedLeaveOverlapExistsFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		return true, nil
	}
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), Actor{UserID: 1, EmployeeID: 3}, CreateLeaveRequest{
		LeaveTypeID: 2,
		StartDate:   leaveStart,
		EndDate:     leaveEnd,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	assert.Empty(t, outbox.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ShiftConflictWarns(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.hasShiftInRangeFn = func(ctx context.Context, employeeID uint, start, end time.Time) (bool, error) {
		return true, nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), Actor{UserID: 1, EmployeeID: 3}, CreateLeaveRequest{
		LeaveTypeID: 2,
		StartDate:   leaveStart,
		EndDate:     leaveEnd,
	})
	assert.NoError(t, err)
	assert.True(t, resp.ShiftConflictWarning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_AutoApprovedType(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.leaveTypeInfoFn = func(ctx context.Context, leaveTypeID uint) (bool, bool, error) { return true, false, nil }

	var saved LeaveRequest
	repo.createFn = func(ctx context.Context, lr *LeaveRequest) error {
		lr.ID = 11
		saved = *lr
		return nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Create(context.Background(), Actor{UserID: 1, EmployeeID: 3}, CreateLeaveRequest{
		LeaveTypeID: 2,
		StartDate:   leaveStart,
		EndDate:     leaveEnd,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, saved.Status)
	assert.NotNil(t, saved.ApprovalDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_OnlyFromPending(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*LeaveRequest, error) {
		return &LeaveRequest{ID: id, EmployeeID: 3, Status: StatusRejected}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	_, err := svc.UpdateStatus(context.Background(), Actor{UserID: 1, IsAdmin: true}, 10, UpdateLeaveStatusRequest{Status: StatusApproved})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
}

func TestService_UpdateStatus_ApproveRechecksOverlapExcludingSelf(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*LeaveRequest, error) {
		return &LeaveRequest{ID: id, EmployeeID: 3, Status: StatusPending, StartDate: leaveStart, EndDate: leaveEnd}, nil
	}

	var gotExclude *uint
	repo.approvedLeaveOverlapExistsFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		gotExclude = excludeID
		return false, nil
	}

	var saved LeaveRequest
	repo.updateFn = func(ctx context.Context, lr *LeaveRequest) error {
		saved = *lr
		return nil
	}

	outbox := &fakeOutbox{}
	svc := NewService(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.UpdateStatus(context.Background(), Actor{UserID: 7, IsAdmin: true}, 10, UpdateLeaveStatusRequest{Status: StatusApproved})
	assert.NoError(t, err)
	if assert.NotNil(t, gotExclude) {
		assert.Equal(t, uint(10), *gotExclude)
	}
	assert.Equal(t, StatusApproved, saved.Status)
	if assert.NotNil(t, saved.ApprovedByID) {
		assert.Equal(t, uint(7), *saved.ApprovedByID)
	}
	assert.Len(t, outbox.events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Cancel_AfterApprovalClearsApprover(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	approver := uint(7)
	approvedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	notes := "enjoy"

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*LeaveRequest, error) {
		return &LeaveRequest{
			ID:            id,
			EmployeeID:    3,
			Status:        StatusApproved,
			ApprovedByID:  &approver,
			ApprovalDate:  &approvedAt,
			ApprovalNotes: &notes,
		}, nil
	}

	var saved LeaveRequest
	repo.updateFn = func(ctx context.Context, lr *LeaveRequest) error {
		saved = *lr
		return nil
	}

	svc := NewService(db, repo, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Cancel(context.Background(), Actor{UserID: 2, EmployeeID: 3}, 10)
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, saved.Status)
	assert.Nil(t, saved.ApprovedByID)
	assert.Nil(t, saved.ApprovalDate)
	if assert.NotNil(t, saved.ApprovalNotes) {
		assert.Equal(t, "enjoy [Cancelled after approval]", *saved.ApprovalNotes)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Cancel_OthersRequestHidden(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*LeaveRequest, error) {
		return &LeaveRequest{ID: id, EmployeeID: 9, Status: StatusPending}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	_, err := svc.Cancel(context.Background(), Actor{UserID: 2, EmployeeID: 3}, 10)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestService_GetByID_ScopedToOwnRecords(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findDetailByIDFn = func(ctx context.Context, id uint) (*LeaveDetail, error) {
		return &LeaveDetail{ID: id, EmployeeID: 9}, nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	_, err := svc.GetByID(context.Background(), Actor{UserID: 2, EmployeeID: 3}, 10)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	resp, err := svc.GetByID(context.Background(), Actor{UserID: 2, EmployeeID: 3, IsAdmin: true}, 10)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), resp.EmployeeID)
}

func TestService_List_NonAdminScoping(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	var gotFilter ListFilter
	repo.listFn = func(ctx context.Context, filter ListFilter) ([]LeaveDetail, error) {
		gotFilter = filter
		return nil, nil
	}
	svc := NewService(db, repo, &fakeOutbox{})

	other := uint(9)
	resp, err := svc.List(context.Background(), Actor{UserID: 2, EmployeeID: 3}, ListLeaveQuery{EmployeeID: &other})
	assert.NoError(t, err)
	assert.Empty(t, resp)

	_, err = svc.List(context.Background(), Actor{UserID: 2, EmployeeID: 3}, ListLeaveQuery{})
	assert.NoError(t, err)
	if assert.NotNil(t, gotFilter.EmployeeID) {
		assert.Equal(t, uint(3), *gotFilter.EmployeeID)
	}
}
