package leave

import "time"

// Actor identifies the authenticated caller for scoping decisions.
type Actor struct {
	UserID     uint
	EmployeeID uint
	IsAdmin    bool
}

type CreateLeaveRequest struct {
	EmployeeID  *uint     `json:"employee_id"`
	LeaveTypeID uint      `json:"leave_type_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Reason      *string   `json:"reason" binding:"omitempty,max=500"`
}

type UpdateLeaveStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Notes  *string `json:"notes" binding:"omitempty,max=500"`
}

type ListLeaveQuery struct {
	StartDate   *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"endDate" time_format:"2006-01-02"`
	EmployeeID  *uint      `form:"employeeId"`
	TeamID      *uint      `form:"teamId"`
	LeaveTypeID *uint      `form:"leaveTypeId"`
	Status      *string    `form:"status"`
}

type LeaveResponse struct {
	ID            uint       `json:"id"`
	EmployeeID    uint       `json:"employee_id"`
	EmployeeName  string     `json:"employee_name"`
	TeamID        *uint      `json:"team_id,omitempty"`
	TeamName      *string    `json:"team_name,omitempty"`
	LeaveTypeID   uint       `json:"leave_type_id"`
	LeaveTypeName string     `json:"leave_type_name"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	Reason        *string    `json:"reason,omitempty"`
	Status        string     `json:"status"`
	RequestDate   time.Time  `json:"request_date"`
	ApprovedByID  *uint      `json:"approved_by_id,omitempty"`
	ApprovalDate  *time.Time `json:"approval_date,omitempty"`
	ApprovalNotes *string    `json:"approval_notes,omitempty"`

	// Set on creation when the period overlaps an existing shift. Advisory
	// only, never blocks the request.
	ShiftConflictWarning bool `json:"shift_conflict_warning,omitempty"`
}
