package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=100"`
	Password   string `json:"password" binding:"required,min=8"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
	RoleID     uint   `json:"role_id" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type AuthResponse struct {
	Token      string `json:"token"`
	UserID     uint   `json:"user_id"`
	EmployeeID uint   `json:"employee_id"`
	Username   string `json:"username"`
	IsAdmin    bool   `json:"is_admin"`
}
