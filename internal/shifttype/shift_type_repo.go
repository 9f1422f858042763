package shifttype

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_type_repo.go -destination=mock/shift_type_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, st *ShiftType) error
	FindAll(ctx context.Context) ([]ShiftType, error)
	FindByID(ctx context.Context, id uint) (*ShiftType, error)
	Update(ctx context.Context, st *ShiftType) error
	Delete(ctx context.Context, id uint) error
	NameTaken(ctx context.Context, name string, excludeID *uint) (bool, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, st *ShiftType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ShiftType, error) {
	var types []ShiftType
	err := r.db.WithContext(ctx).Order("type_name ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*ShiftType, error) {
	var st ShiftType
	err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error
	return &st, err
}

func (r *repository) Update(ctx context.Context, st *ShiftType) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ShiftType{}, "id = ?", id).Error
}

func (r *repository) NameTaken(ctx context.Context, name string, excludeID *uint) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&ShiftType{}).
		Where("LOWER(type_name) = LOWER(?)", name)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) InUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("shift_type_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
