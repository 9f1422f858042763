package shifttype

type CreateShiftTypeRequest struct {
	TypeName    string  `json:"type_name" binding:"required,max=100"`
	IsOnCall    bool    `json:"is_on_call"`
	Description *string `json:"description"`
}

type UpdateShiftTypeRequest struct {
	TypeName    string  `json:"type_name" binding:"required,max=100"`
	IsOnCall    bool    `json:"is_on_call"`
	Description *string `json:"description"`
}

type ShiftTypeResponse struct {
	ID          uint    `json:"id"`
	TypeName    string  `json:"type_name"`
	IsOnCall    bool    `json:"is_on_call"`
	Description *string `json:"description,omitempty"`
}
