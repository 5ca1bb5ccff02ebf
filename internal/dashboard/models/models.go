package models

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stats are the headline numbers on the console home page.
type Stats struct {
	TotalUsers            int     `json:"total_users"`
	ActiveProfessionals   int     `json:"active_professionals"`
	DailySignups          int     `json:"daily_signups"`
	EmailVerificationRate float64 `json:"email_verification_rate"`
	PINActivationRate     float64 `json:"pin_activation_rate"`
	APIIntegrations       int     `json:"api_integrations"`
	ActivePartners        int     `json:"active_partners"`
	EndorsementActivity   int     `json:"endorsement_activity"`
}

// Counts are the raw figures Stats is derived from.
type Counts struct {
	TotalUsers          int
	ActiveProfessionals int
	Partners            int
	DailySignups        int
	EndorsementsMonth   int
	APIKeys             int
	PINs                int
	VerifiedProfiles    int
}

// Stats derives rates from c.
func (c Counts) Stats() Stats {
	return Stats{
		TotalUsers:            c.TotalUsers,
		ActiveProfessionals:   c.ActiveProfessionals,
		DailySignups:          c.DailySignups,
		EmailVerificationRate: Rate(c.VerifiedProfiles, c.TotalUsers),
		PINActivationRate:     Rate(c.PINs, c.TotalUsers),
		APIIntegrations:       c.APIKeys,
		ActivePartners:        c.Partners,
		EndorsementActivity:   c.EndorsementsMonth,
	}
}

// Rate is part/total as a percentage rounded to one decimal; 0 when total is 0.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// ProfileCount narrows a profiles count.
type ProfileCount struct {
	IdentityTypes    []string
	ExcludeSuspended bool
	CreatedSince     *time.Time
}

// ActivityType classifies a feed item for its icon.
type ActivityType string

const (
	ActivityUser        ActivityType = "user"
	ActivitySecurity    ActivityType = "security"
	ActivityAPI         ActivityType = "api"
	ActivityEndorsement ActivityType = "endorsement"
)

type Activity struct {
	ID     string       `json:"id"`
	Action string       `json:"action"`
	User   string       `json:"user"`
	Time   time.Time    `json:"time"`
	Type   ActivityType `json:"type"`
}

// AuditEvent is an audit_events row written by the public sign-up flow.
type AuditEvent struct {
	ID        uuid.UUID
	EventType string
	UserID    *uuid.UUID
	PhoneHash string
	CreatedAt time.Time
}

type EndorsementEvent struct {
	ID        uuid.UUID
	SkillName string
	CreatedAt time.Time
}

var eventLabels = map[string]string{
	"registration_started":   "New registration started",
	"registration_finalized": "User registration completed",
	"otp_sent":               "OTP code sent",
	"otp_verified":           "OTP verified successfully",
	"pin_issued":             "New security PIN set",
	"welcome_email_sent":     "Welcome email sent",
	"email_verified":         "Email address verified",
}

// EventLabel renders an audit event type for the feed.
func EventLabel(eventType string) string {
	if l, ok := eventLabels[eventType]; ok {
		return l
	}
	return strings.ReplaceAll(eventType, "_", " ")
}

// EventType classifies an audit event type.
func EventType(eventType string) ActivityType {
	switch {
	case strings.Contains(eventType, "otp"), strings.Contains(eventType, "pin"):
		return ActivitySecurity
	case strings.Contains(eventType, "registration"), strings.Contains(eventType, "email"):
		return ActivityUser
	}
	return ActivityAPI
}

// Activity maps e into a feed item. The actor shows the last four characters
// of a phone hash when one was recorded.
func (e AuditEvent) Activity() Activity {
	user := "Visitor"
	if e.UserID != nil {
		user = "Registered User"
	}
	if e.PhoneHash != "" {
		h := e.PhoneHash
		if len(h) > 4 {
			h = h[len(h)-4:]
		}
		user = "Ph: ..." + h
	}
	return Activity{
		ID:     e.ID.String(),
		Action: EventLabel(e.EventType),
		User:   user,
		Time:   e.CreatedAt,
		Type:   EventType(e.EventType),
	}
}

func (e EndorsementEvent) Activity() Activity {
	return Activity{
		ID:     e.ID.String(),
		Action: "Endorsement created: " + e.SkillName,
		User:   "Professional",
		Time:   e.CreatedAt,
		Type:   ActivityEndorsement,
	}
}

// Health reports the console's dependencies.
type Health struct {
	APIStatus string           `json:"api_status"`
	DBStatus  string           `json:"db_status"`
	LatencyMS int64            `json:"latency"`
	Uptime    float64          `json:"uptime"`
	Cache     *ComponentHealth `json:"cache,omitempty"`
	// Dependencies holds circuit-guarded downstreams by name.
	Dependencies map[string]ComponentHealth `json:"dependencies,omitempty"`
	CheckedAt    time.Time                  `json:"checked_at"`
}

type ComponentHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency"`
	Error     string `json:"error,omitempty"`
}

const (
	APIOperational = "Operational"
	APIDegraded    = "Degraded"
	DBHealthy      = "Healthy"
	DBIssue        = "Issue"

	CircuitOpen = "circuit open"
)
