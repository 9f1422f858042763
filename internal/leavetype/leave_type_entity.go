package leavetype

import "time"

type LeaveType struct {
	ID               uint      `gorm:"primaryKey"`
	LeaveTypeName    string    `gorm:"size:100;not null;uniqueIndex:uq_leave_type_name"`
	RequiresApproval bool      `gorm:"not null;default:true"`
	Description      *string   `gorm:"size:255"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
