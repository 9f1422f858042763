package dashboard

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ShiftSnapshot is the read-side projection of a shift used by the
// aggregation queries.
type ShiftSnapshot struct {
	ID            uint
	EmployeeID    uint
	FirstName     string
	LastName      string
	TeamID        *uint
	TeamName      *string
	ShiftTypeID   *uint
	ShiftTypeName *string
	IsOnCall      bool
	StartTime     time.Time
	EndTime       time.Time
	Notes         *string
}

func (s ShiftSnapshot) EmployeeName() string {
	return s.FirstName + " " + s.LastName
}

// LeaveSnapshot is the read-side projection of a leave request.
type LeaveSnapshot struct {
	ID            uint
	EmployeeID    uint
	FirstName     string
	LastName      string
	TeamID        *uint
	TeamName      *string
	LeaveTypeID   uint
	LeaveTypeName string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	Reason        *string
}

func (l LeaveSnapshot) EmployeeName() string {
	return l.FirstName + " " + l.LastName
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	ShiftsInWindow(ctx context.Context, winStart, winEnd time.Time, teamID, shiftTypeID, employeeID *uint, onCallOnly bool) ([]ShiftSnapshot, error)
	LeaveInWindow(ctx context.Context, winStart, winEnd time.Time, statuses []string, teamID, employeeID *uint) ([]LeaveSnapshot, error)
	TeamName(ctx context.Context, teamID uint) (string, bool, error)
	ActiveTeamEmployeeIDs(ctx context.Context, teamID uint) ([]uint, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	PendingLeaveCount(ctx context.Context, teamID *uint) (int64, error)
	ShiftTypeInfo(ctx context.Context, shiftTypeID uint) (name string, isOnCall bool, exists bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) shiftQuery(ctx context.Context) *gorm.DB {
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

func (r *repository) ShiftsInWindow(ctx context.Context, winStart, winEnd time.Time, teamID, shiftTypeID, employeeID *uint, onCallOnly bool) ([]ShiftSnapshot, error) {
	db := r.shiftQuery(ctx).
		Where("s.start_time < ? AND s.end_time > ?", winEnd, winStart)
	if teamID != nil {
		db = db.Where("e.team_id = ?", *teamID)
	}
	if shiftTypeID != nil {
		db = db.Where("s.shift_type_id = ?", *shiftTypeID)
	}
	if employeeID != nil {
		db = db.Where("s.employee_id = ?", *employeeID)
	}
	if onCallOnly {
		db = db.Where("st.is_on_call = TRUE")
	}

	var shifts []ShiftSnapshot
	err := db.Order("s.start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *repository) LeaveInWindow(ctx context.Context, winStart, winEnd time.Time, statuses []string, teamID, employeeID *uint) ([]LeaveSnapshot, error) {
	db := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select(`lr.id, lr.employee_id, e.first_name, e.last_name, e.team_id, t.team_name,
			lr.leave_type_id, lt.leave_type_name,
			lr.start_date, lr.end_date, lr.status, lr.reason`).
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Joins("LEFT JOIN teams t ON t.id = e.team_id").
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id").
		Where("lr.start_date < ? AND lr.end_date > ?", winEnd, winStart).
		Where("lr.status IN ?", statuses)
	if teamID != nil {
		db = db.Where("e.team_id = ?", *teamID)
	}
	if employeeID != nil {
		db = db.Where("lr.employee_id = ?", *employeeID)
	}

	var leave []LeaveSnapshot
	err := db.Order("lr.start_date ASC").Find(&leave).Error
	return leave, err
}

func (r *repository) TeamName(ctx context.Context, teamID uint) (string, bool, error) {
	var row struct {
		TeamName string
	}
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("team_name").
		Where("id = ?", teamID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.TeamName, true, nil
}

func (r *repository) ActiveTeamEmployeeIDs(ctx context.Context, teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id").
		Where("team_id = ? AND is_active = TRUE", teamID).
		Scan(&ids).Error
	return ids, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) PendingLeaveCount(ctx context.Context, teamID *uint) (int64, error) {
	db := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Where("lr.status = ?", "PENDING")
	if teamID != nil {
		db = db.
			Joins("JOIN employees e ON e.id = lr.employee_id").
			Where("e.team_id = ?", *teamID)
	}

	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *repository) ShiftTypeInfo(ctx context.Context, shiftTypeID uint) (string, bool, bool, error) {
	var row struct {
		TypeName string
		IsOnCall bool
	}
	err := r.db.WithContext(ctx).
		Table("shift_types").
		Select("type_name, is_on_call").
		Where("id = ?", shiftTypeID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, false, nil
	}
	if err != nil {
		return "", false, false, err
	}
	return row.TypeName, row.IsOnCall, true, nil
}
