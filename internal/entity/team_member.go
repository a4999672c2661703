package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a roster entry. Members are created and listed only; there is
// no update or delete operation.
type TeamMember struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	JoinedAt   time.Time `json:"joinedAt"`
}
