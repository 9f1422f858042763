package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows leave reads. WindowStart/WindowEnd form a half-open
// window matched against [StartDate, EndDate).
type ListFilter struct {
	WindowStart *time.Time
	WindowEnd   *time.Time
	EmployeeID  *uint
	TeamID      *uint
	LeaveTypeID *uint
	Status      *string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*LeaveRequest, error)
	FindDetailByID(ctx context.Context, id uint) (*LeaveDetail, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveDetail, error)
	Update(ctx context.Context, lr *LeaveRequest) error
	ApprovedLeaveOverlapExists(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error)
	HasShiftInRange(ctx context.Context, employeeID uint, start, end time.Time) (bool, error)
	EmployeeStatus(ctx context.Context, employeeID uint) (exists bool, active bool, err error)
	LeaveTypeInfo(ctx context.Context, leaveTypeID uint) (exists bool, requiresApproval bool, err error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds every statement of the returned repository to the caller's
// transaction, so entity writes commit or roll back together with the
// outbox insert.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Initialized: true})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select(`lr.id, lr.employee_id, e.first_name, e.last_name, e.team_id, t.team_name,
			lr.leave_type_id, lt.leave_type_name,
			lr.start_date, lr.end_date, lr.reason, lr.status, lr.request_date,
			lr.approved_by_id, lr.approval_date, lr.approval_notes`).
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Joins("LEFT JOIN teams t ON t.id = e.team_id").
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id")
}

func (r *repository) FindDetailByID(ctx context.Context, id uint) (*LeaveDetail, error) {
	var d LeaveDetail
	err := r.detailQuery(ctx).Where("lr.id = ?", id).Take(&d).Error
	return &d, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]LeaveDetail, error) {
	db := r.detailQuery(ctx)

	if filter.WindowStart != nil && filter.WindowEnd != nil {
		db = db.Where("lr.start_date < ? AND lr.end_date > ?", *filter.WindowEnd, *filter.WindowStart)
	}
	if filter.EmployeeID != nil {
		db = db.Where("lr.employee_id = ?", *filter.EmployeeID)
	}
	if filter.TeamID != nil {
		db = db.Where("e.team_id = ?", *filter.TeamID)
	}
	if filter.LeaveTypeID != nil {
		db = db.Where("lr.leave_type_id = ?", *filter.LeaveTypeID)
	}
	if filter.Status != nil {
		db = db.Where("lr.status = ?", *filter.Status)
	}

	var details []LeaveDetail
	err := db.Order("lr.start_date ASC").Find(&details).Error
	return details, err
}

func (r *repository) Update(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

// ApprovedLeaveOverlapExists applies the half-open overlap predicate to
// APPROVED requests only. Pending, rejected and cancelled leave never block.
func (r *repository) ApprovedLeaveOverlapExists(ctx context.Context, employeeID uint, start, end time.Time, excludeID *uint) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date < ? AND end_date > ?", end, start)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) HasShiftInRange(ctx context.Context, employeeID uint, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("employee_id = ?", employeeID).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
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

func (r *repository) LeaveTypeInfo(ctx context.Context, leaveTypeID uint) (bool, bool, error) {
	var row struct {
		RequiresApproval bool
	}
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Select("requires_approval").
		Where("id = ?", leaveTypeID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, row.RequiresApproval, nil
}
