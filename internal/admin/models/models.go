// Package models describes console operators as recorded in admin_users.
package models

import (
	"time"

	"github.com/google/uuid"

	"coreid/pkg/requestcontext"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

type Admin struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (a Admin) Identity() requestcontext.AdminIdentity {
	return requestcontext.AdminIdentity{ID: a.UserID, Email: a.Email, Role: a.Role}
}

// Me is what the console shows about the signed-in caller.
type Me struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Machine bool      `json:"machine"`
}

func MeFrom(a requestcontext.AdminIdentity) Me {
	return Me{ID: a.ID, Email: a.Email, Role: a.Role, Machine: a.Machine}
}
