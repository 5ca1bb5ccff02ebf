package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the moderation state stored in endorsements.verification_status.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
	StatusFlagged  Status = "flagged"
)

// Statuses lists every moderation state.
var Statuses = []Status{StatusPending, StatusVerified, StatusRejected, StatusFlagged}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected, StatusFlagged:
		return true
	}
	return false
}

// Person is the slice of a profile shown next to an endorsement.
type Person struct {
	Email     string  `json:"email"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ProjectRef is the endorsed project with its owner.
type ProjectRef struct {
	Title  string    `json:"title"`
	UserID uuid.UUID `json:"user_id"`
	Owner  *Person   `json:"owner,omitempty"`
}

// Endorsement is one endorsement row flattened with its joins.
type Endorsement struct {
	ID                 uuid.UUID   `json:"id"`
	ProjectID          uuid.UUID   `json:"project_id"`
	EndorserID         uuid.UUID   `json:"endorser_id"`
	VerificationStatus Status      `json:"verification_status"`
	Rating             int         `json:"rating"`
	Comment            *string     `json:"comment,omitempty"`
	SkillName          *string     `json:"skill_name,omitempty"`
	Relationship       *string     `json:"relationship,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	Project            *ProjectRef `json:"project,omitempty"`
	Endorser           *Person     `json:"endorser,omitempty"`
}

// Filters narrows the endorsement list. Search matches skill name or comment.
type Filters struct {
	Search string
	Status []Status
}

// StatusCounts is the number of endorsements per status.
type StatusCounts map[Status]int

// Total sums every status.
func (c StatusCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
