package models

import (
	"time"

	"github.com/google/uuid"

	"coreid/internal/logs/device"
)

// Filters narrows a log list. Blank or "all" values do not filter.
type Filters struct {
	Search    string
	Status    string
	EventType string
}

type AuthLog struct {
	ID                uuid.UUID      `json:"id"`
	UserID            *uuid.UUID     `json:"user_id,omitempty"`
	UserEmail         *string        `json:"user_email,omitempty"`
	EventType         string         `json:"event_type"`
	Status            string         `json:"status"`
	IPAddress         *string        `json:"ip_address,omitempty"`
	UserAgent         *string        `json:"user_agent,omitempty"`
	Location          *string        `json:"location,omitempty"`
	DeviceFingerprint *string        `json:"device_fingerprint,omitempty"`
	ErrorMessage      *string        `json:"error_message,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	Client            *device.Client `json:"client,omitempty"`
}

type PINLoginLog struct {
	ID           uuid.UUID      `json:"id"`
	UserID       *uuid.UUID     `json:"user_id,omitempty"`
	UserEmail    *string        `json:"user_email,omitempty"`
	PhoneNumber  *string        `json:"phone_number,omitempty"`
	Status       string         `json:"status"`
	PINSent      bool           `json:"pin_sent"`
	PINVerified  bool           `json:"pin_verified"`
	IPAddress    *string        `json:"ip_address,omitempty"`
	UserAgent    *string        `json:"user_agent,omitempty"`
	DeviceInfo   *string        `json:"device_info,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	BlockedUntil *time.Time     `json:"blocked_until,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	Client       *device.Client `json:"client,omitempty"`
}

type EmailVerificationLog struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	Type          *string    `json:"type,omitempty"`
	LinkSentAt    *time.Time `json:"link_sent_at,omitempty"`
	LinkClickedAt *time.Time `json:"link_clicked_at,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IPAddress     *string    `json:"ip_address,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
