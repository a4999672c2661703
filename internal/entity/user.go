package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account roles. Admins manage accounts, analysts work the pipeline and run
// AI generation, viewers get read access through the public routes only.
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// Roles enumerates the valid account roles.
var Roles = []string{RoleAdmin, RoleAnalyst, RoleViewer}

// User is a dashboard account. Distinct from TeamMember, which is the sales
// roster shown in the dashboard; users authenticate, team members are data.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidRole reports whether s is one of the account roles.
func IsValidRole(s string) bool {
	for _, role := range Roles {
		if s == role {
			return true
		}
	}
	return false
}
