// Package audit defines admin action events and the sinks that record them.
package audit

import (
	"context"
	"time"
)

// EventCategory classifies actions for retention and stream routing.
type EventCategory string

const (
	// CategoryCompliance covers changes to people's data or access.
	CategoryCompliance EventCategory = "compliance"
	// CategorySecurity covers credentials, admin access and security policy.
	CategorySecurity EventCategory = "security"
	// CategoryOperations covers content and reporting chores.
	CategoryOperations EventCategory = "operations"
)

// Status is the outcome recorded with an action.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Action names an admin console action. Values are the strings stored in
// admin_audit_logs.action.
type Action string

const (
	ActionUserSuspended           Action = "user_suspended"
	ActionUserReactivated         Action = "user_reactivated"
	ActionUserUpdated             Action = "user_updated"
	ActionUserDeleted             Action = "user_deleted"
	ActionUserPINReset            Action = "user_pin_reset"
	ActionUsersBulkStatus         Action = "users_bulk_status_updated"
	ActionUsersBulkVerification   Action = "users_bulk_verification_updated"
	ActionUsersBulkDeleted        Action = "users_bulk_deleted"
	ActionUsersExported           Action = "users_exported"
	ActionEndorsementApproved     Action = "endorsement_approved"
	ActionEndorsementRejected     Action = "endorsement_rejected"
	ActionEndorsementFlagged      Action = "endorsement_flagged"
	ActionProjectStatusUpdated    Action = "project_status_updated"
	ActionProjectDeleted          Action = "project_deleted"
	ActionSettingUpdated          Action = "setting_updated"
	ActionSecuritySettingsUpdated Action = "security_settings_updated"
	ActionAdminInvited            Action = "admin_invited"
	ActionAdminInvitationAccepted Action = "admin_invitation_accepted"
	ActionContentCreated          Action = "content_created"
	ActionContentUpdated          Action = "content_updated"
	ActionContentDeleted          Action = "content_deleted"
	ActionContentPublished        Action = "content_published"
	ActionContentUnpublished      Action = "content_unpublished"
	ActionReportGenerated         Action = "report_generated"
	ActionReportExported          Action = "report_exported"
	ActionReportTemplateChanged   Action = "report_template_changed"
	ActionReportScheduleChanged   Action = "report_schedule_changed"
	ActionAuditLogsCleaned        Action = "audit_logs_cleaned"
	ActionAuditLogsExported       Action = "audit_logs_exported"
	ActionAnnouncementCreated     Action = "announcement_created"
	ActionAnnouncementUpdated     Action = "announcement_updated"
	ActionAnnouncementDeleted     Action = "announcement_deleted"
	ActionNotificationSent        Action = "notification_sent"
	ActionEmailQueued             Action = "email_queued"
	ActionEmailCancelled          Action = "email_cancelled"
	ActionEmailRetried            Action = "email_retried"
	ActionEmailPreferencesUpdated Action = "email_preferences_updated"
)

var actionCategories = map[Action]EventCategory{
	ActionUserSuspended:           CategoryCompliance,
	ActionUserReactivated:         CategoryCompliance,
	ActionUserUpdated:             CategoryCompliance,
	ActionUserDeleted:             CategoryCompliance,
	ActionUsersBulkStatus:         CategoryCompliance,
	ActionUsersBulkVerification:   CategoryCompliance,
	ActionUsersBulkDeleted:        CategoryCompliance,
	ActionUsersExported:           CategoryCompliance,
	ActionAuditLogsCleaned:        CategoryCompliance,
	ActionAuditLogsExported:       CategoryCompliance,
	ActionEmailPreferencesUpdated: CategoryCompliance,
	ActionUserPINReset:            CategorySecurity,
	ActionSettingUpdated:          CategorySecurity,
	ActionSecuritySettingsUpdated: CategorySecurity,
	ActionAdminInvited:            CategorySecurity,
	ActionAdminInvitationAccepted: CategorySecurity,
}

// Category returns the category for a; unknown actions are operations.
func (a Action) Category() EventCategory {
	if cat, ok := actionCategories[a]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is one admin action. Target is a free-form identifier of the
// affected resource ("user:<id>", "setting:security/timeout").
type Event struct {
	Timestamp  time.Time
	Action     Action
	Target     string
	Status     Status
	Details    map[string]any
	ActorID    string
	ActorEmail string
	RequestID  string
	ClientIP   string
}

// Store persists events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
