package shifttype

type ShiftType struct {
	ID       uint   `gorm:"primaryKey"`
	TypeName string `gorm:"type:varchar(100);not null;uniqueIndex:uq_shift_type_name"`

	// On-call types represent standby coverage; gap analysis only applies to them.
	IsOnCall    bool    `gorm:"not null;default:false"`
	Description *string `gorm:"type:text"`
}
