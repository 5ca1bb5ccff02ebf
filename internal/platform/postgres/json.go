package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"coreid/pkg/platform/sentinel"
)

// QueryJSON scans a single jsonb column (usually to_jsonb(t)) into T.
// No rows maps to sentinel.ErrNotFound.
func QueryJSON[T any](ctx context.Context, db Execer, query string, args ...any) (*T, error) {
	var raw []byte
	err := db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return &out, nil
}

// QueryJSONRows is QueryJSON for result sets.
func QueryJSONRows[T any](ctx context.Context, db Execer, query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
