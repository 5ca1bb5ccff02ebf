package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"

	"coreid/internal/platform/postgres"
	audit "coreid/pkg/platform/audit"
)

// Store records admin actions through the log_admin_action function, which
// writes admin_audit_logs.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes one admin action. Actor and request metadata travel in the
// details document because the function derives the actor column itself.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	details := make(map[string]any, len(event.Details)+5)
	maps.Copy(details, event.Details)
	details["category"] = string(event.Action.Category())
	details["occurred_at"] = event.Timestamp.UTC()
	if event.ActorID != "" {
		details["actor_id"] = event.ActorID
	}
	if event.ActorEmail != "" {
		details["actor_email"] = event.ActorEmail
	}
	if event.RequestID != "" {
		details["request_id"] = event.RequestID
	}
	if event.ClientIP != "" {
		details["client_ip"] = event.ClientIP
	}

	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	_, err = postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`SELECT log_admin_action($1, $2, $3, $4::jsonb)`,
		string(event.Action), event.Target, string(event.Status), string(payload),
	)
	if err != nil {
		return fmt.Errorf("log admin action: %w", err)
	}
	return nil
}
