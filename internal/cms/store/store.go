package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore reads CMS rows as jsonb (to_jsonb) and decodes them into the
// models, so column additions on the database side never break a scan.
type PostgresStore struct {
	db *sql.DB
	tx *postgres.Tx
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, tx: postgres.NewTx(db)}
}

// assignments collects SET clauses for a partial update.
type assignments struct {
	f    backend.Filter
	sets []string
}

func (a *assignments) add(col string, v any) {
	a.sets = append(a.sets, col+" = "+a.f.Arg(v))
}

func setPtr[T any](a *assignments, col string, v *T) {
	if v != nil {
		a.add(col, *v)
	}
}

// update runs UPDATE table SET ... WHERE id and returns the new row. An
// empty patch still bumps updated_at.
func (s *PostgresStore) update(ctx context.Context, table string, id uuid.UUID, a *assignments, at time.Time, out any) error {
	a.add("updated_at", at)
	query := fmt.Sprintf("UPDATE %s t SET %s WHERE t.id = %s RETURNING to_jsonb(t)",
		table, strings.Join(a.sets, ", "), a.f.Arg(id))
	var raw []byte
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, query, a.f.Args()...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return json.Unmarshal(raw, out)
}

func (s *PostgresStore) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func null(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
