package team

type CreateTeamRequest struct {
	TeamName    string  `json:"team_name" binding:"required,max=100"`
	Description *string `json:"description"`
}

type UpdateTeamRequest struct {
	TeamName    string  `json:"team_name" binding:"required,max=100"`
	Description *string `json:"description"`
}

type TeamResponse struct {
	ID          uint    `json:"id"`
	TeamName    string  `json:"team_name"`
	Description *string `json:"description,omitempty"`
	MemberCount int64   `json:"member_count"`
}
