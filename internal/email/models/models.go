package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const DefaultPageSize = 50

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSent, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether an email in s can still be stopped.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusFailed
}

// Retryable reports whether an email in s can be queued again.
func (s Status) Retryable() bool {
	return s == StatusFailed || s == StatusCancelled
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

type QueuedEmail struct {
	ID           uuid.UUID      `json:"id"`
	UserID       *uuid.UUID     `json:"user_id"`
	ToEmail      string         `json:"to_email"`
	TemplateID   string         `json:"template_id"`
	Subject      string         `json:"subject"`
	Variables    map[string]any `json:"variables"`
	Priority     Priority       `json:"priority"`
	Status       Status         `json:"status"`
	Attempts     int            `json:"attempts"`
	ScheduledFor time.Time      `json:"scheduled_for"`
	SentAt       *time.Time     `json:"sent_at"`
	ErrorMessage *string        `json:"error_message"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Log is one delivery record; Status is the provider's delivery state
// (sent, delivered, opened, clicked, bounced, failed).
type Log struct {
	ID         uuid.UUID  `json:"id"`
	QueueID    *uuid.UUID `json:"queue_id"`
	UserID     *uuid.UUID `json:"user_id"`
	EmailType  *string    `json:"email_type"`
	ToEmail    string     `json:"to_email"`
	TemplateID string     `json:"template_id"`
	Status     string     `json:"status"`
	OpenedAt   *time.Time `json:"opened_at"`
	ClickedAt  *time.Time `json:"clicked_at"`
	OpenCount  int        `json:"open_count"`
	ClickCount int        `json:"click_count"`
	CreatedAt  time.Time  `json:"created_at"`
}

type QueueFilters struct {
	Status     Status
	TemplateID string
}

type LogFilters struct {
	UserID     *uuid.UUID
	TemplateID string
	Status     string
}

type Statistics struct {
	TotalSent      int     `json:"total_sent"`
	TotalDelivered int     `json:"total_delivered"`
	TotalOpened    int     `json:"total_opened"`
	TotalClicked   int     `json:"total_clicked"`
	TotalBounced   int     `json:"total_bounced"`
	TotalFailed    int     `json:"total_failed"`
	PendingCount   int     `json:"pending_count"`
	DeliveryRate   float64 `json:"delivery_rate"`
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
}

// WithRates fills the delivery, open and click rates. Opens and clicks are
// relative to delivered mail.
func (s Statistics) WithRates() Statistics {
	s.DeliveryRate = Rate(s.TotalDelivered, s.TotalSent)
	s.OpenRate = Rate(s.TotalOpened, s.TotalDelivered)
	s.ClickRate = Rate(s.TotalClicked, s.TotalDelivered)
	return s
}

// Rate is n/of as a percentage rounded to one decimal, or 0 when of is 0.
func Rate(n, of int) float64 {
	if of <= 0 {
		return 0
	}
	return math.Round(float64(n)/float64(of)*1000) / 10
}

type Preferences struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	MarketingEmails bool       `json:"marketing_emails"`
	ProductUpdates  bool       `json:"product_updates"`
	Announcements   bool       `json:"announcements"`
	WeeklyDigest    bool       `json:"weekly_digest"`
	AccountAlerts   bool       `json:"account_alerts"`
	AllEmails       bool       `json:"all_emails"`
	UnsubscribedAt  *time.Time `json:"unsubscribed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PreferencesUpdate changes only the non-nil flags. Turning AllEmails off
// unsubscribes the user.
type PreferencesUpdate struct {
	MarketingEmails *bool `json:"marketing_emails"`
	ProductUpdates  *bool `json:"product_updates"`
	Announcements   *bool `json:"announcements"`
	WeeklyDigest    *bool `json:"weekly_digest"`
	AccountAlerts   *bool `json:"account_alerts"`
	AllEmails       *bool `json:"all_emails"`
}

func (u PreferencesUpdate) IsEmpty() bool {
	return u.MarketingEmails == nil && u.ProductUpdates == nil && u.Announcements == nil &&
		u.WeeklyDigest == nil && u.AccountAlerts == nil && u.AllEmails == nil
}

type QueueInput struct {
	UserID       *uuid.UUID     `json:"user_id"`
	ToEmail      string         `json:"to_email" validate:"required,email,max=320"`
	TemplateID   string         `json:"template_id" validate:"required,max=100"`
	Subject      string         `json:"subject" validate:"required,max=300"`
	Variables    map[string]any `json:"variables"`
	Priority     Priority       `json:"priority" validate:"omitempty,oneof=high normal low"`
	ScheduledFor *time.Time     `json:"scheduled_for"`
}

type TestEmailInput struct {
	ToEmail   string         `json:"to_email" validate:"required,email,max=320"`
	Template  string         `json:"template" validate:"required,max=100"`
	Variables map[string]any `json:"variables"`
}

// TestSubject is the subject of a test send of template.
func TestSubject(template string) string {
	return "[TEST] " + template + " template"
}
