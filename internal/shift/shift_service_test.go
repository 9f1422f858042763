package shift

import (
	"context"
	"database/sql"
	"testing"
	"time"

	shifterrors "github.com/BenitoJD/ROTA-API/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn              func(tx *sql.Tx) Repository
	createFn              func(ctx context.Context, s *Shift) error
	findByIDFn            func(ctx context.Context, id uint) (*Shift, error)
	findDetailByIDFn      func(ctx context.Context, id uint) (*ShiftDetail, error)
	listFn                func(ctx context.Context, filter ListFilter) ([]ShiftDetail, error)
	updateFn              func(ctx context.Context, s *Shift) error
	deleteFn              func(ctx context.Context, id uint) error
	hasOverlappingShiftFn func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error)
	employeeStatusFn      func(ctx context.Context, employeeID uint) (bool, bool, error)
	shiftTypeExistsFn     func(ctx context.Context, shiftTypeID uint) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, s *Shift) error {
	return f.createFn(ctx, s)
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Shift, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindDetailByID(ctx context.Context, id uint) (*ShiftDetail, error) {
	return f.findDetailByIDFn(ctx, id)
}
func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]ShiftDetail, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeRepo) Update(ctx context.Context, s *Shift) error {
	return f.updateFn(ctx, s)
}
func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) HasOverlappingShift(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
	return f.hasOverlappingShiftFn(ctx, employeeID, start, end, excludeID)
}
func (f *fakeRepo) EmployeeStatus(ctx context.Context, employeeID uint) (bool, bool, error) {
	return f.employeeStatusFn(ctx, employeeID)
}
func (f *fakeRepo) ShiftTypeExists(ctx context.Context, shiftTypeID uint) (bool, error) {
	return f.shiftTypeExistsFn(ctx, shiftTypeID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeStatusFn = func(ctx context.Context, employeeID uint) (bool, bool, error) { return true, true, nil }
	repo.shiftTypeExistsFn = func(ctx context.Context, shiftTypeID uint) (bool, error) { return true, nil }
	repo.hasOverlappingShiftFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		return false, nil
	}
	return repo
}

func TestService_Create_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()
	repo := newFakeRepo()

	var saved Shift
	repo.createFn = func(ctx context.Context, s *Shift) error {
		s.ID = 7
		saved = *s
		return nil
	}
	repo.findDetailByIDFn = func(ctx context.Context, id uint) (*ShiftDetail, error) {
		return &ShiftDetail{
			ID:         saved.ID,
			EmployeeID: saved.EmployeeID,
			FirstName:  "Ada",
			LastName:   "Nolan",
			StartTime:  saved.StartTime,
			EndTime:    saved.EndTime,
		}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(ctx, CreateShiftRequest{
		EmployeeID: 3,
		StartTime:  time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "Ada Nolan", resp.EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo)

	start := time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), CreateShiftRequest{
		EmployeeID: 3,
		StartTime:  start,
		EndTime:    start,
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftRange)
}

func TestService_Create_Overlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.hasOverlappingShiftFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		return true, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateShiftRequest{
		EmployeeID: 3,
		StartTime:  time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, shifterrors.ErrShiftOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InactiveEmployee(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.employeeStatusFn = func(ctx context.Context, employeeID uint) (bool, bool, error) {
		return true, false, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateShiftRequest{
		EmployeeID: 3,
		StartTime:  time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, shifterrors.ErrEmployeeInactive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_UnknownShiftType(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.shiftTypeExistsFn = func(ctx context.Context, shiftTypeID uint) (bool, error) { return false, nil }

	svc := NewService(db, repo)
	typeID := uint(99)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateShiftRequest{
		EmployeeID:  3,
		ShiftTypeID: &typeID,
		StartTime:   time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, shifterrors.ErrShiftTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_ExcludesOwnShiftFromOverlapCheck(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	existing := &Shift{ID: 5, EmployeeID: 3}
	repo.findByIDFn = func(ctx context.Context, id uint) (*Shift, error) { return existing, nil }
	repo.updateFn = func(ctx context.Context, s *Shift) error { return nil }
	repo.findDetailByIDFn = func(ctx context.Context, id uint) (*ShiftDetail, error) {
		return &ShiftDetail{ID: id, EmployeeID: 3, FirstName: "Ada", LastName: "Nolan"}, nil
	}

	var gotExclude *uint
	repo.hasOverlappingShiftFn = func(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
		gotExclude = excludeID
		return false, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Update(context.Background(), 5, UpdateShiftRequest{
		EmployeeID: 3,
		StartTime:  time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	if assert.NotNil(t, gotExclude) {
		assert.Equal(t, uint(5), *gotExclude)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_List_ConvertsDateWindow(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	var gotFilter ListFilter
	repo.listFn = func(ctx context.Context, filter ListFilter) ([]ShiftDetail, error) {
		gotFilter = filter
		return nil, nil
	}

	svc := NewService(db, repo)

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(context.Background(), ListShiftsQuery{StartDate: &startDate, EndDate: &endDate})
	assert.NoError(t, err)
	if assert.NotNil(t, gotFilter.WindowEnd) {
		assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), *gotFilter.WindowEnd)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findDetailByIDFn = func(ctx context.Context, id uint) (*ShiftDetail, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
}
