package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/invitations/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/platform/sentinel"
)

const invitationColumns = `id, email, role, token, status, invited_by, expires_at, accepted_at, created_at`

// PostgresStore reads admin_invitations and calls the invitation functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Invite calls invite_admin_user, which either grants an existing user
// access or creates a pending invitation.
func (s *PostgresStore) Invite(ctx context.Context, email, role string, invitedBy *uuid.UUID, expiresAt time.Time) (*models.InviteOutcome, error) {
	by := uuid.NullUUID{}
	if invitedBy != nil {
		by = uuid.NullUUID{UUID: *invitedBy, Valid: true}
	}
	var raw []byte
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT invite_admin_user(p_email => $1, p_role => $2, p_invited_by => $3, p_expires_at => $4)`,
		email, role, by, expiresAt,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("invite_admin_user: %w", err)
	}
	return decodeOutcome(raw)
}

// Accept calls accept_admin_invitation for userID.
func (s *PostgresStore) Accept(ctx context.Context, token string, userID uuid.UUID) (*models.InviteOutcome, error) {
	var raw []byte
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT accept_admin_invitation(p_token => $1, p_user_id => $2)`, token, userID,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("accept_admin_invitation: %w", err)
	}
	return decodeOutcome(raw)
}

func (s *PostgresStore) FindByToken(ctx context.Context, token string) (*models.Invitation, error) {
	row := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM admin_invitations WHERE token = $1`, token)
	inv, err := scanInvitation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return inv, err
}

// Pending lists invitations still open at now, newest first.
func (s *PostgresStore) Pending(ctx context.Context, now time.Time) ([]*models.Invitation, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT `+invitationColumns+`
		FROM admin_invitations
		WHERE status = 'pending' AND expires_at > $1
		ORDER BY created_at DESC`, now)
	if err != nil {
		return nil, fmt.Errorf("query invitations: %w", err)
	}
	defer rows.Close()

	var out []*models.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvitation(row scanner) (*models.Invitation, error) {
	var (
		inv        models.Invitation
		invitedBy  uuid.NullUUID
		acceptedAt sql.NullTime
	)
	if err := row.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.Status, &invitedBy,
		&inv.ExpiresAt, &acceptedAt, &inv.CreatedAt); err != nil {
		return nil, err
	}
	if invitedBy.Valid {
		inv.InvitedBy = &invitedBy.UUID
	}
	if acceptedAt.Valid {
		inv.AcceptedAt = &acceptedAt.Time
	}
	return &inv, nil
}

func decodeOutcome(raw []byte) (*models.InviteOutcome, error) {
	var out models.InviteOutcome
	if len(raw) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode invitation result: %w", err)
	}
	return &out, nil
}
