package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles an admin can be invited with.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

var Roles = []string{RoleSuperAdmin, RoleAdmin, RoleModerator}

// Invitation states stored in admin_invitations.status.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Invitation is an admin_invitations row. The token is never serialized.
type Invitation struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Token      string     `json:"-"`
	Status     string     `json:"status"`
	InvitedBy  *uuid.UUID `json:"invited_by,omitempty"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Expired reports whether the invitation lapsed before now.
func (i *Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

// InviteOutcome is the JSON object returned by invite_admin_user. An empty
// InvitationToken means an existing user was granted access directly.
type InviteOutcome struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Error           string `json:"error"`
	InvitationToken string `json:"invitation_token"`
}

// InviteResult is returned to the inviting admin.
type InviteResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ExistingUser bool   `json:"existing_user"`
	EmailSent    bool   `json:"email_sent"`
}

// EmailRequest is the send-admin-invitation payload.
type EmailRequest struct {
	Email           string `json:"email"`
	Role            string `json:"role"`
	InvitationToken string `json:"invitation_token"`
}
