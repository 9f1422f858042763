package user

import "time"

// Role carries the capability flags consumed by the route gates. Roles are
// seeded data; the API only reads them.
type Role struct {
	ID              uint    `gorm:"primaryKey"`
	RoleName        string  `gorm:"size:100;not null;uniqueIndex:uq_role_name"`
	IsAdmin         bool    `gorm:"not null;default:false"`
	CanEditRota     bool    `gorm:"not null;default:false"`
	CanEditLeave    bool    `gorm:"not null;default:false"`
	CanApproveLeave bool    `gorm:"not null;default:false"`
	CanViewRota     bool    `gorm:"not null;default:false"`
	CanViewLeave    bool    `gorm:"not null;default:false"`
	Description     *string `gorm:"size:255"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"size:100;not null;uniqueIndex:uq_username"`
	PasswordHash string     `gorm:"size:255;not null"`
	EmployeeID   uint       `gorm:"not null;uniqueIndex:uq_user_employee"`
	RoleID       uint       `gorm:"not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// UserDetail joins the account with its employee and role labels.
type UserDetail struct {
	ID         uint
	Username   string
	EmployeeID uint
	FirstName  string
	LastName   string
	RoleID     uint
	RoleName   string
	IsAdmin    bool
	IsActive   bool
	LastLogin  *time.Time
}

func (d UserDetail) EmployeeName() string {
	return d.FirstName + " " + d.LastName
}
