package employee

import "time"

type Employee struct {
	ID          uint    `gorm:"primaryKey"`
	FirstName   string  `gorm:"type:varchar(100);not null"`
	LastName    string  `gorm:"type:varchar(100);not null"`
	Email       *string `gorm:"type:varchar(255)"`
	PhoneNumber *string `gorm:"type:varchar(50)"`
	TeamID      *uint   `gorm:"index"`

	// Employees referenced by shifts or leave are disabled, never removed.
	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
