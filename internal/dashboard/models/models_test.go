package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	assert.Zero(t, Rate(5, 0))
	assert.Equal(t, 50.0, Rate(1, 2))
	assert.Equal(t, 33.3, Rate(1, 3))
	assert.Equal(t, 100.0, Rate(7, 7))
}

func TestEventLabel(t *testing.T) {
	assert.Equal(t, "New security PIN set", EventLabel("pin_issued"))
	assert.Equal(t, "api key created", EventLabel("api_key_created"))
}

func TestEventType(t *testing.T) {
	assert.Equal(t, ActivitySecurity, EventType("otp_verified"))
	assert.Equal(t, ActivitySecurity, EventType("pin_issued"))
	assert.Equal(t, ActivityUser, EventType("registration_started"))
	assert.Equal(t, ActivityUser, EventType("welcome_email_sent"))
	assert.Equal(t, ActivityAPI, EventType("webhook_delivered"))
}

func TestAuditEventActivityLabels(t *testing.T) {
	assert.Equal(t, "Visitor", AuditEvent{EventType: "otp_sent"}.Activity().User)
	assert.Equal(t, "Ph: ...ab", AuditEvent{PhoneHash: "ab"}.Activity().User)
}
