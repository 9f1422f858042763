package leavetype

type CreateLeaveTypeRequest struct {
	LeaveTypeName    string  `json:"leave_type_name" binding:"required,max=100"`
	RequiresApproval *bool   `json:"requires_approval"`
	Description      *string `json:"description"`
}

type UpdateLeaveTypeRequest struct {
	LeaveTypeName    string  `json:"leave_type_name" binding:"required,max=100"`
	RequiresApproval *bool   `json:"requires_approval"`
	Description      *string `json:"description"`
}

type LeaveTypeResponse struct {
	ID               uint    `json:"id"`
	LeaveTypeName    string  `json:"leave_type_name"`
	RequiresApproval bool    `json:"requires_approval"`
	Description      *string `json:"description,omitempty"`
}
