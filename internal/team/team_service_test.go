package team

import (
	"context"
	"database/sql"
	"testing"

	teamerrors "github.com/BenitoJD/ROTA-API/internal/team/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                 func(tx *sql.Tx) Repository
	createFn                 func(ctx context.Context, t *Team) error
	findAllFn                func(ctx context.Context) ([]Team, error)
	findByIDFn               func(ctx context.Context, id uint) (*Team, error)
	updateFn                 func(ctx context.Context, t *Team) error
	deleteFn                 func(ctx context.Context, id uint) error
	nameTakenFn              func(ctx context.Context, name string, excludeID *uint) (bool, error)
	memberCountFn            func(ctx context.Context, teamID uint) (int64, error)
	clearMemberAssignmentsFn func(ctx context.Context, teamID uint) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, t *Team) error {
	return f.createFn(ctx, t)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Team, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Team, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, t *Team) error {
	return f.updateFn(ctx, t)
}
func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) NameTaken(ctx context.Context, name string, excludeID *uint) (bool, error) {
	return f.nameTakenFn(ctx, name, excludeID)
}
func (f *fakeRepo) MemberCount(ctx context.Context, teamID uint) (int64, error) {
	return f.memberCountFn(ctx, teamID)
}
func (f *fakeRepo) ClearMemberAssignments(ctx context.Context, teamID uint) error {
	return f.clearMemberAssignmentsFn(ctx, teamID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.nameTakenFn = func(ctx context.Context, name string, excludeID *uint) (bool, error) { return false, nil }
	repo.memberCountFn = func(ctx context.Context, teamID uint) (int64, error) { return 0, nil }
	return repo
}

func TestService_Create_TrimsNameAndReturnsTeam(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	var checkedName string
	repo.nameTakenFn = func(ctx context.Context, name string, excludeID *uint) (bool, error) {
		checkedName = name
		return false, nil
	}
	repo.createFn = func(ctx context.Context, team *Team) error {
		team.ID = 4
		return nil
	}

	svc := NewService(db, repo)

	resp, err := svc.Create(context.Background(), CreateTeamRequest{TeamName: "  Night Ops "})
	assert.NoError(t, err)
	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, "Night Ops", resp.TeamName)
	// The uniqueness check runs against the trimmed name, so a copy padded
	// with whitespace cannot slip past it.
	assert.Equal(t, "Night Ops", checkedName)
	assert.Equal(t, int64(0), resp.MemberCount)
}

func TestService_Create_NameTaken(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.nameTakenFn = func(ctx context.Context, name string, excludeID *uint) (bool, error) { return true, nil }

	svc := NewService(db, repo)

	_, err := svc.Create(context.Background(), CreateTeamRequest{TeamName: "Night Ops"})
	assert.ErrorIs(t, err, teamerrors.ErrTeamNameTaken)
}

func TestService_Create_MapsUniqueConstraint(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, team *Team) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_team_name"}
	}

	svc := NewService(db, repo)

	_, err := svc.Create(context.Background(), CreateTeamRequest{TeamName: "Night Ops"})
	assert.ErrorIs(t, err, teamerrors.ErrTeamNameTaken)
}

func TestService_Update_ExcludesSelfFromNameCheck(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*Team, error) {
		return &Team{ID: id, TeamName: "Night Ops"}, nil
	}
	var checkedName string
	var excluded *uint
	repo.nameTakenFn = func(ctx context.Context, name string, excludeID *uint) (bool, error) {
		checkedName = name
		excluded = excludeID
		return false, nil
	}
	repo.updateFn = func(ctx context.Context, team *Team) error { return nil }

	svc := NewService(db, repo)

	resp, err := svc.Update(context.Background(), 9, UpdateTeamRequest{TeamName: " Day Ops "})
	assert.NoError(t, err)
	assert.Equal(t, "Day Ops", resp.TeamName)
	assert.Equal(t, "Day Ops", checkedName)
	if assert.NotNil(t, excluded) {
		assert.Equal(t, uint(9), *excluded)
	}
}

func TestService_Delete_DetachesMembersBeforeDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*Team, error) {
		return &Team{ID: id, TeamName: "Night Ops"}, nil
	}
	var calls []string
	repo.clearMemberAssignmentsFn = func(ctx context.Context, teamID uint) error {
		calls = append(calls, "clear")
		return nil
	}
	repo.deleteFn = func(ctx context.Context, id uint) error {
		calls = append(calls, "delete")
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Delete(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, []string{"clear", "delete"}, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*Team, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)
}

func TestService_GetByID_ReportsMemberCount(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*Team, error) {
		return &Team{ID: id, TeamName: "Night Ops"}, nil
	}
	repo.memberCountFn = func(ctx context.Context, teamID uint) (int64, error) { return 6, nil }

	svc := NewService(db, repo)

	resp, err := svc.GetByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), resp.MemberCount)
}
