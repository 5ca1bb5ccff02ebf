package models

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

type Owner struct {
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Category    *string   `json:"category,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	Budget      *float64  `json:"budget,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       *Owner    `json:"owner,omitempty"`
}

// Filters narrows the project list. Search matches the title.
type Filters struct {
	Search   string
	Status   []Status
	Category []string
}
