package team

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindAll(ctx context.Context) ([]Team, error)
	FindByID(ctx context.Context, id uint) (*Team, error)
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id uint) error
	NameTaken(ctx context.Context, name string, excludeID *uint) (bool, error)
	MemberCount(ctx context.Context, teamID uint) (int64, error)
	ClearMemberAssignments(ctx context.Context, teamID uint) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds every statement of the returned repository to the caller's
// transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Initialized: true})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Order("team_name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Team{}, "id = ?", id).Error
}

func (r *repository) NameTaken(ctx context.Context, name string, excludeID *uint) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Team{}).
		Where("LOWER(team_name) = LOWER(?)", name)

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) MemberCount(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

// ClearMemberAssignments detaches all employees from the team. Deleting a
// team never cascades to its members.
func (r *repository) ClearMemberAssignments(ctx context.Context, teamID uint) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}
