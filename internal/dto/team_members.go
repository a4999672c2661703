package dto

// CreateTeamMemberRequest is the payload for adding a roster entry.
type CreateTeamMemberRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
}
