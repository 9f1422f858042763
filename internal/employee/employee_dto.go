package employee

type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=50"`
	TeamID      *uint   `json:"team_id"`
}

type UpdateEmployeeRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=50"`
	TeamID      *uint   `json:"team_id"`
	IsActive    *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	TeamID      *uint   `json:"team_id,omitempty"`
	TeamName    *string `json:"team_name,omitempty"`
	IsActive    bool    `json:"is_active"`
}
