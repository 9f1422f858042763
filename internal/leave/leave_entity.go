package leave

import "time"

// LeaveRequest stores a half-open absence interval [StartDate, EndDate).
// Only APPROVED requests block new leave for the same employee.
type LeaveRequest struct {
	ID            uint       `gorm:"primaryKey"`
	EmployeeID    uint       `gorm:"not null;index:ix_leave_employee"`
	LeaveTypeID   uint       `gorm:"not null;index:ix_leave_type"`
	StartDate     time.Time  `gorm:"not null;index:ix_leave_start"`
	EndDate       time.Time  `gorm:"not null"`
	Reason        *string    `gorm:"size:500"`
	Status        string     `gorm:"size:20;not null;default:PENDING;index:ix_leave_status"`
	RequestDate   time.Time  `gorm:"not null"`
	ApprovedByID  *uint
	ApprovalDate  *time.Time
	ApprovalNotes *string    `gorm:"size:500"`
	CreatedByID   uint       `gorm:"not null"`
	UpdatedByID   *uint
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveDetail is a leave request joined with its employee, team and type
// labels for read paths.
type LeaveDetail struct {
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
	Reason        *string
	Status        string
	RequestDate   time.Time
	ApprovedByID  *uint
	ApprovalDate  *time.Time
	ApprovalNotes *string
}

func (d LeaveDetail) EmployeeName() string {
	return d.FirstName + " " + d.LastName
}
