package models

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Actor types accepted by log_audit_event.
const (
	ActorAdmin  = "admin"
	ActorSystem = "system"
	ActorUser   = "user"
)

// Outcomes recorded on audit_logs rows.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusPending = "pending"
)

// DefaultRetentionDays is used by Cleanup when no retention is given.
const DefaultRetentionDays = 90

// AdminAction is an admin_audit_logs row with the actor resolved to an email.
type AdminAction struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Target    string         `json:"target"`
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// LogEntry is one row of get_audit_logs.
type LogEntry struct {
	ID           uuid.UUID       `json:"id"`
	UserID       *uuid.UUID      `json:"user_id"`
	UserEmail    string          `json:"user_email"`
	ActorType    string          `json:"actor_type"`
	Action       string          `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   *string         `json:"resource_id"`
	OldValues    json.RawMessage `json:"old_values,omitempty"`
	NewValues    json.RawMessage `json:"new_values,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	Status       string          `json:"status"`
	ErrorMessage *string         `json:"error_message"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Activity is one row of get_user_activity.
type Activity struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	UserEmail    string          `json:"user_email"`
	ActivityType string          `json:"activity_type"`
	Details      json.RawMessage `json:"details,omitempty"`
	IPAddress    *string         `json:"ip_address"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Statistics is the single row of get_audit_statistics.
type Statistics struct {
	TotalEvents      int            `json:"total_events"`
	SuccessfulEvents int            `json:"successful_events"`
	FailedEvents     int            `json:"failed_events"`
	UniqueUsers      int            `json:"unique_users"`
	EventsByAction   map[string]int `json:"events_by_action"`
	EventsByResource map[string]int `json:"events_by_resource"`
	EventsByDay      map[string]int `json:"events_by_day"`
}

// Filters narrows get_audit_logs. Empty fields are passed as NULL.
type Filters struct {
	UserID       *uuid.UUID
	Action       string
	ResourceType string
	ActorType    string
	Status       string
	From         *time.Time
	To           *time.Time
}

// ActivityFilters narrows get_user_activity.
type ActivityFilters struct {
	UserID       *uuid.UUID
	ActivityType string
	From         *time.Time
	To           *time.Time
}

// Event is the input to log_audit_event.
type Event struct {
	UserID       *uuid.UUID
	UserEmail    string
	ActorType    string
	Action       string `validate:"required"`
	ResourceType string `validate:"required"`
	ResourceID   string
	OldValues    any
	NewValues    any
	Metadata     any
	Status       string
	ErrorMessage string
}

// CleanupResult reports a cleanup_old_audit_logs run.
type CleanupResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FormatAction turns "user_suspended" into "User Suspended".
func FormatAction(action string) string {
	words := strings.Split(action, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
