package dto

// CreateActivityLogRequest is the payload for appending an audit entry.
// CompanyID is optional and never validated against the companies table: an
// entry may outlive, or never reference, a company.
type CreateActivityLogRequest struct {
	CompanyID   *string `json:"companyId,omitempty"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	Action      string  `json:"action"`
	Description string  `json:"description"`
}
