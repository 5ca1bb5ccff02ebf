package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultPageSize is the page size of announcement and notification lists.
const DefaultPageSize = 50

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// Audience selects who sees an announcement. AudienceAll reaches every
// user type.
type Audience string

const (
	AudienceAll          Audience = "all"
	AudienceBusiness     Audience = "business"
	AudienceProfessional Audience = "professional"
	AudienceAdmin        Audience = "admin"
	AudienceIndividual   Audience = "individual"
)

func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceBusiness, AudienceProfessional, AudienceAdmin, AudienceIndividual:
		return true
	}
	return false
}

// Priority orders active announcements, urgent first.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Announcement struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           Type       `json:"type"`
	TargetAudience Audience   `json:"target_audience"`
	Priority       Priority   `json:"priority"`
	IsActive       bool       `json:"is_active"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	// Live is set on admin listings when the announcement is shown now.
	Live bool `json:"live"`
}

// IsLive reports whether a is shown at t.
func (a *Announcement) IsLive(t time.Time) bool {
	return a.IsActive && !a.StartsAt.After(t) && (a.EndsAt == nil || a.EndsAt.After(t))
}

type AnnouncementInput struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Message        string     `json:"message" validate:"required,max=5000"`
	Type           Type       `json:"type" validate:"required,oneof=info success warning error"`
	TargetAudience Audience   `json:"target_audience" validate:"required,oneof=all business professional admin individual"`
	Priority       Priority   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
}

// AnnouncementUpdate replaces every editable field; a nil EndsAt keeps the
// announcement open-ended.
type AnnouncementUpdate struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Message        string     `json:"message" validate:"required,max=5000"`
	Type           Type       `json:"type" validate:"required,oneof=info success warning error"`
	TargetAudience Audience   `json:"target_audience" validate:"required,oneof=all business professional admin individual"`
	Priority       Priority   `json:"priority" validate:"required,oneof=low normal high urgent"`
	IsActive       bool       `json:"is_active"`
	EndsAt         *time.Time `json:"ends_at"`
}

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      Type       `json:"type"`
	Category  *string    `json:"category,omitempty"`
	Link      *string    `json:"link,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type NotificationInput struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Title    string    `json:"title" validate:"required,max=200"`
	Message  string    `json:"message" validate:"required,max=2000"`
	Type     Type      `json:"type" validate:"omitempty,oneof=info success warning error"`
	Category *string   `json:"category" validate:"omitempty,max=50"`
	Link     *string   `json:"link" validate:"omitempty,max=500"`
}

type Statistics struct {
	TotalAnnouncements      int            `json:"total_announcements"`
	ActiveAnnouncements     int            `json:"active_announcements"`
	TotalNotifications      int            `json:"total_notifications"`
	UnreadNotifications     int            `json:"unread_notifications"`
	AnnouncementsByType     map[string]int `json:"announcements_by_type"`
	NotificationsByCategory map[string]int `json:"notifications_by_category"`
	ReadRate                float64        `json:"read_rate"`
}

// ReadRate is the share of notifications read, as a percentage rounded to
// one decimal.
func ReadRate(total, unread int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(total-unread)/float64(total)*1000) / 10
}
