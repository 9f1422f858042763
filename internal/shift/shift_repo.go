package shift

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows shift reads. WindowStart/WindowEnd form a half-open
// window: a shift matches when it overlaps [WindowStart, WindowEnd).
type ListFilter struct {
	WindowStart *time.Time
	WindowEnd   *time.Time
	EmployeeID  *uint
	TeamID      *uint
	IsOnCall    *bool
}

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, id uint) (*Shift, error)
	FindDetailByID(ctx context.Context, id uint) (*ShiftDetail, error)
	List(ctx context.Context, filter ListFilter) ([]ShiftDetail, error)
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id uint) error
	HasOverlappingShift(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error)
	EmployeeStatus(ctx context.Context, employeeID uint) (exists bool, active bool, err error)
	ShiftTypeExists(ctx context.Context, shiftTypeID uint) (bool, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shifts AS s").
		Select(`s.id, s.employee_id, e.first_name, e.last_name, e.team_id, t.team_name,
			s.shift_type_id, st.type_name AS shift_type_name,
			COALESCE(st.is_on_call, FALSE) AS is_on_call,
			s.start_time, s.end_time, s.notes`).
		Joins("JOIN employees e ON e.id = s.employee_id").
		Joins("LEFT JOIN teams t ON t.id = e.team_id").
		Joins("LEFT JOIN shift_types st ON st.id = s.shift_type_id")
}

func (r *repository) FindDetailByID(ctx context.Context, id uint) (*ShiftDetail, error) {
	var d ShiftDetail
	err := r.detailQuery(ctx).Where("s.id = ?", id).Take(&d).Error
	return &d, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]ShiftDetail, error) {
	db := r.detailQuery(ctx)

	if filter.WindowStart != nil && filter.WindowEnd != nil {
		db = db.Where("s.start_time < ? AND s.end_time > ?", *filter.WindowEnd, *filter.WindowStart)
	}
	if filter.EmployeeID != nil {
		db = db.Where("s.employee_id = ?", *filter.EmployeeID)
	}
	if filter.TeamID != nil {
		db = db.Where("e.team_id = ?", *filter.TeamID)
	}
	if filter.IsOnCall != nil {
		db = db.Where("COALESCE(st.is_on_call, FALSE) = ?", *filter.IsOnCall)
	}

	var details []ShiftDetail
	err := db.Order("s.start_time ASC").Find(&details).Error
	return details, err
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id).Error
}

// HasOverlappingShift applies the half-open overlap predicate, so a shift
// ending exactly when another starts is not a conflict.
func (r *repository) HasOverlappingShift(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("employee_id = ?", employeeID).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeStatus(ctx context.Context, employeeID uint) (bool, bool, error) {
	var row struct {
		IsActive bool
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("is_active").
		Where("id = ?", employeeID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, row.IsActive, nil
}

func (r *repository) ShiftTypeExists(ctx context.Context, shiftTypeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shift_types").
		Where("id = ?", shiftTypeID).
		Count(&count).Error
	return count > 0, err
}
