package user

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAllDetails(ctx context.Context) ([]UserDetail, error)
	Update(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	FindRole(ctx context.Context, roleID uint) (*Role, error)
	FindAllRoles(ctx context.Context) ([]Role, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "LOWER(username) = LOWER(?)", username).Error
	return &u, err
}

func (r *repository) FindAllDetails(ctx context.Context) ([]UserDetail, error) {
	var details []UserDetail
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id, u.username, u.employee_id, e.first_name, e.last_name,
			u.role_id, r.role_name, r.is_admin, u.is_active, u.last_login`).
		Joins("JOIN employees e ON e.id = u.employee_id").
		Joins("JOIN roles r ON r.id = u.role_id").
		Order("u.username ASC").
		Find(&details).Error
	return details, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *repository) FindRole(ctx context.Context, roleID uint) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", roleID).Error
	return &role, err
}

func (r *repository) FindAllRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("role_name ASC").Find(&roles).Error
	return roles, err
}

func (r *repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
