package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit entry. CompanyID is a back-reference,
// not an ownership link: a log survives deletion of its company.
type ActivityLog struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   *uuid.UUID `json:"companyId,omitempty"`
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	Timestamp   time.Time  `json:"timestamp"`
}
