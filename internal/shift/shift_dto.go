package shift

import "time"

type CreateShiftRequest struct {
	EmployeeID  uint      `json:"employee_id" binding:"required"`
	ShiftTypeID *uint     `json:"shift_type_id"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Notes       *string   `json:"notes" binding:"omitempty,max=500"`
}

type UpdateShiftRequest struct {
	EmployeeID  uint      `json:"employee_id" binding:"required"`
	ShiftTypeID *uint     `json:"shift_type_id"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Notes       *string   `json:"notes" binding:"omitempty,max=500"`
}

type ListShiftsQuery struct {
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
	EmployeeID *uint      `form:"employeeId"`
	TeamID     *uint      `form:"teamId"`
	IsOnCall   *bool      `form:"isOnCall"`
}

type ShiftResponse struct {
	ID            uint      `json:"id"`
	EmployeeID    uint      `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	TeamID        *uint     `json:"team_id,omitempty"`
	TeamName      *string   `json:"team_name,omitempty"`
	ShiftTypeID   *uint     `json:"shift_type_id,omitempty"`
	ShiftTypeName *string   `json:"shift_type_name,omitempty"`
	IsOnCall      bool      `json:"is_on_call"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Notes         *string   `json:"notes,omitempty"`
}
