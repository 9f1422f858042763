package user

import "time"

type SetRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserResponse struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	EmployeeID   uint       `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	RoleID       uint       `json:"role_id"`
	RoleName     string     `json:"role_name"`
	IsAdmin      bool       `json:"is_admin"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type RoleResponse struct {
	ID              uint    `json:"id"`
	RoleName        string  `json:"role_name"`
	IsAdmin         bool    `json:"is_admin"`
	CanEditRota     bool    `json:"can_edit_rota"`
	CanEditLeave    bool    `json:"can_edit_leave"`
	CanApproveLeave bool    `json:"can_approve_leave"`
	CanViewRota     bool    `json:"can_view_rota"`
	CanViewLeave    bool    `json:"can_view_leave"`
	Description     *string `json:"description,omitempty"`
}
