package team

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	teamerrors "github.com/BenitoJD/ROTA-API/internal/team/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByID(ctx context.Context, id uint) (TeamResponse, error)
	Update(ctx context.Context, id uint, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	name := strings.TrimSpace(req.TeamName)
	taken, err := s.repo.NameTaken(ctx, name, nil)
	if err != nil {
		s.logger.Error("create team name check failed", zap.Error(err))
		return TeamResponse{}, err
	}
	if taken {
		return TeamResponse{}, teamerrors.ErrTeamNameTaken
	}

	t := &Team{
		TeamName:    name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return TeamResponse{}, mapConstraintError(err)
	}

	s.logger.Info("create team success", zap.Uint("team_id", t.ID), zap.String("team_name", t.TeamName))
	return mapToResponse(*t, 0), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TeamResponse, len(teams))
	for i, t := range teams {
		members, err := s.repo.MemberCount(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		resp[i] = mapToResponse(t, members)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (TeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}

	members, err := s.repo.MemberCount(ctx, t.ID)
	if err != nil {
		return TeamResponse{}, err
	}
	return mapToResponse(*t, members), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateTeamRequest) (TeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}

	name := strings.TrimSpace(req.TeamName)
	taken, err := s.repo.NameTaken(ctx, name, &id)
	if err != nil {
		return TeamResponse{}, err
	}
	if taken {
		return TeamResponse{}, teamerrors.ErrTeamNameTaken
	}

	t.TeamName = name
	t.Description = req.Description

	if err := s.repo.Update(ctx, t); err != nil {
		return TeamResponse{}, mapConstraintError(err)
	}

	members, err := s.repo.MemberCount(ctx, t.ID)
	if err != nil {
		return TeamResponse{}, err
	}
	return mapToResponse(*t, members), nil
}

// Delete detaches members inside the same transaction before removing the
// team, so employee rows are never deleted along with it.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrTeamNotFound
		}
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete team begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.ClearMemberAssignments(ctx, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete team commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete team success", zap.Uint("team_id", id))
	return nil
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_team_name" {
		return teamerrors.ErrTeamNameTaken
	}
	return err
}

func mapToResponse(t Team, members int64) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		TeamName:    t.TeamName,
		Description: t.Description,
		MemberCount: members,
	}
}
