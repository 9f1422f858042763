package shift

import "time"

// Shift stores a half-open assignment interval [StartTime, EndTime).
// Two shifts for the same employee conflict when the intervals overlap;
// back-to-back shifts sharing a boundary instant do not.
type Shift struct {
	ID          uint       `gorm:"primaryKey"`
	EmployeeID  uint       `gorm:"not null;index:ix_shift_employee"`
	ShiftTypeID *uint      `gorm:"index:ix_shift_type"`
	StartTime   time.Time  `gorm:"not null;index:ix_shift_start"`
	EndTime     time.Time  `gorm:"not null"`
	Notes       *string    `gorm:"size:500"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Shift) TableName() string {
	return "shifts"
}

// ShiftDetail is a shift joined with its employee, team and type labels
// for read paths.
type ShiftDetail struct {
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

func (d ShiftDetail) EmployeeName() string {
	return d.FirstName + " " + d.LastName
}
