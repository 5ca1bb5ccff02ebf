package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"coreid/internal/platform/postgres"
	"coreid/internal/users/models"
	"coreid/pkg/platform/sentinel"
)

const managedColumns = `id, email, coalesce(full_name, ''), coalesce(user_type, 'individual'),
	coalesce(verification_status, 'pending'), coalesce(profile_completion, 0),
	country, state, city, phone, date_of_birth::text, coalesce(is_active, true),
	last_login, created_at, updated_at`

// Search calls get_users_with_filters. The function repeats the unpaged
// total on every row; total is 0 when no row comes back.
func (s *PostgresStore) Search(ctx context.Context, filters models.SearchFilters, sort models.Sort, limit, offset int) ([]*models.ManagedUser, int, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT `+managedColumns+`, total_count FROM get_users_with_filters(
			p_search => $1, p_user_type => $2, p_verification_status => $3,
			p_country => $4, p_status => $5, p_limit => $6, p_offset => $7,
			p_sort_by => $8, p_sort_order => $9)`,
		null(filters.Search), null(filters.UserType), null(filters.VerificationStatus),
		null(filters.Country), null(filters.Status), limit, offset, sort.By, sort.Order)
	if err != nil {
		return nil, 0, fmt.Errorf("get_users_with_filters: %w", err)
	}
	defer rows.Close()

	var (
		out   []*models.ManagedUser
		total int
	)
	for rows.Next() {
		u, rowTotal, err := scanManaged(rows, true)
		if err != nil {
			return nil, 0, err
		}
		if len(out) == 0 {
			total = rowTotal
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) Details(ctx context.Context, userID uuid.UUID) (*models.ManagedUser, error) {
	row := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+managedColumns+` FROM get_user_details(p_user_id => $1)`, userID)
	u, _, err := scanManaged(row, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return u, err
}

func (s *PostgresStore) Statistics(ctx context.Context) (*models.Statistics, error) {
	var st models.Statistics
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_users, active_users, inactive_users, verified_users,
		       pending_verification, individual_users, business_users,
		       new_users_today, new_users_this_week, new_users_this_month
		FROM get_user_statistics()`).Scan(
		&st.TotalUsers, &st.ActiveUsers, &st.InactiveUsers, &st.VerifiedUsers,
		&st.PendingVerification, &st.IndividualUsers, &st.BusinessUsers,
		&st.NewUsersToday, &st.NewUsersThisWeek, &st.NewUsersThisMonth,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// FilterOptions returns empty lists when the function yields no row.
func (s *PostgresStore) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var countries, userTypes, statuses []byte
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT coalesce(to_jsonb(countries), '[]'), coalesce(to_jsonb(user_types), '[]'),
		       coalesce(to_jsonb(verification_statuses), '[]')
		FROM get_user_filter_options()`).Scan(&countries, &userTypes, &statuses)
	opts := &models.FilterOptions{Countries: []string{}, UserTypes: []string{}, VerificationStatuses: []string{}}
	if errors.Is(err, sql.ErrNoRows) {
		return opts, nil
	}
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		json.Unmarshal(countries, &opts.Countries),
		json.Unmarshal(userTypes, &opts.UserTypes),
		json.Unmarshal(statuses, &opts.VerificationStatuses),
	); err != nil {
		return nil, fmt.Errorf("decode filter options: %w", err)
	}
	return opts, nil
}

func (s *PostgresStore) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, active bool) (*models.BulkResult, error) {
	return s.bulk(ctx, `SELECT success, updated_count, message
		FROM bulk_update_user_status(p_user_ids => $1::uuid[], p_is_active => $2)`, false, pq.Array(uuidStrings(ids)), active)
}

func (s *PostgresStore) BulkUpdateVerification(ctx context.Context, ids []uuid.UUID, status string) (*models.BulkResult, error) {
	return s.bulk(ctx, `SELECT success, updated_count, message
		FROM bulk_update_verification_status(p_user_ids => $1::uuid[], p_verification_status => $2)`, false, pq.Array(uuidStrings(ids)), status)
}

func (s *PostgresStore) BulkDelete(ctx context.Context, ids []uuid.UUID) (*models.BulkResult, error) {
	return s.bulk(ctx, `SELECT success, deleted_count, message
		FROM bulk_delete_users(p_user_ids => $1::uuid[])`, true, pq.Array(uuidStrings(ids)))
}

func (s *PostgresStore) bulk(ctx context.Context, query string, deleted bool, args ...any) (*models.BulkResult, error) {
	var (
		success sql.NullBool
		count   sql.NullInt64
		message sql.NullString
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, query, args...).Scan(&success, &count, &message)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	res := &models.BulkResult{Success: success.Bool, Message: message.String}
	if res.Message == "" {
		res.Message = "Update completed"
		if deleted {
			res.Message = "Deletion completed"
		}
	}
	if deleted {
		res.DeletedCount = int(count.Int64)
	} else {
		res.UpdatedCount = int(count.Int64)
	}
	return res, nil
}

func scanManaged(row scanner, withTotal bool) (*models.ManagedUser, int, error) {
	var (
		u                                  models.ManagedUser
		country, state, city, phone, birth sql.NullString
		lastLogin, updatedAt               sql.NullTime
		total                              sql.NullInt64
	)
	dest := []any{&u.ID, &u.Email, &u.FullName, &u.UserType, &u.VerificationStatus, &u.ProfileCompletion,
		&country, &state, &city, &phone, &birth, &u.IsActive, &lastLogin, &u.CreatedAt, &updatedAt}
	if withTotal {
		dest = append(dest, &total)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, 0, err
	}
	u.Country, u.State, u.City, u.Phone, u.DateOfBirth = str(country), str(state), str(city), str(phone), str(birth)
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return &u, int(total.Int64), nil
}

func null(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
