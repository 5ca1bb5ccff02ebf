package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/endorsements/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

const selectColumns = `
	e.id, e.project_id, e.endorser_id, e.verification_status, e.rating,
	e.comment, e.skill_name, e.relationship, e.created_at, e.updated_at,
	p.title, p.user_id, o.email, o.full_name,
	en.email, en.full_name, en.avatar_url`

const fromJoined = `
	FROM endorsements e
	LEFT JOIN projects p ON p.id = e.project_id
	LEFT JOIN profiles o ON o.user_id = p.user_id
	LEFT JOIN profiles en ON en.user_id = e.endorser_id`

// PostgresStore reads and moderates endorsements.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func applyFilters(f *backend.Filter, filters models.Filters) {
	if len(filters.Status) > 0 {
		statuses := make([]string, len(filters.Status))
		for i, s := range filters.Status {
			statuses[i] = string(s)
		}
		// NULL status is pending, as in CountByStatus and the row scan.
		f.Where("coalesce(e.verification_status, 'pending') = ANY(" + f.Array(statuses) + ")")
	}
	f.Search(filters.Search, "e.skill_name", "e.comment")
}

// List returns one page, newest first, and the filtered total.
func (s *PostgresStore) List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Endorsement, int, error) {
	db := postgres.ExecerFor(ctx, s.db)

	var count backend.Filter
	applyFilters(&count, filters)
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM endorsements e"+count.SQL(), count.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count endorsements: %w", err)
	}

	var f backend.Filter
	applyFilters(&f, filters)
	query := "SELECT " + selectColumns + fromJoined + f.SQL() + " ORDER BY e.created_at DESC" + f.Page(p)
	rows, err := db.QueryContext(ctx, query, f.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list endorsements: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Endorsement, 0, p.Limit())
	for rows.Next() {
		e, err := scanEndorsement(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate endorsements: %w", err)
	}
	return out, total, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Endorsement, error) {
	row := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		"SELECT "+selectColumns+fromJoined+" WHERE e.id = $1", id)
	e, err := scanEndorsement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return e, err
}

// UpdateStatus sets verification_status and returns the refreshed row.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, at time.Time) (*models.Endorsement, error) {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE endorsements SET verification_status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), at)
	if err != nil {
		return nil, fmt.Errorf("update endorsement status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sentinel.ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *PostgresStore) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT coalesce(verification_status, 'pending'), count(*) FROM endorsements GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("count endorsements by status: %w", err)
	}
	defer rows.Close()

	counts := make(models.StatusCounts, len(models.Statuses))
	for _, st := range models.Statuses {
		counts[st] = 0
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[models.Status(status)] += n
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEndorsement(row scanner) (*models.Endorsement, error) {
	var (
		e                          models.Endorsement
		status                     sql.NullString
		rating                     sql.NullInt64
		title                      sql.NullString
		ownerID                    uuid.NullUUID
		ownerEmail, ownerName      sql.NullString
		endorserEmail, endorserNm  sql.NullString
		endorserAvatar             sql.NullString
		comment, skill, relationTo sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.ProjectID, &e.EndorserID, &status, &rating,
		&comment, &skill, &relationTo, &e.CreatedAt, &e.UpdatedAt,
		&title, &ownerID, &ownerEmail, &ownerName,
		&endorserEmail, &endorserNm, &endorserAvatar,
	)
	if err != nil {
		return nil, err
	}

	e.VerificationStatus = models.StatusPending
	if status.Valid {
		e.VerificationStatus = models.Status(status.String)
	}
	e.Rating = int(rating.Int64)
	e.Comment = nullable(comment)
	e.SkillName = nullable(skill)
	e.Relationship = nullable(relationTo)

	if title.Valid {
		e.Project = &models.ProjectRef{Title: title.String, UserID: ownerID.UUID}
		if ownerEmail.Valid {
			e.Project.Owner = &models.Person{Email: ownerEmail.String, FullName: nullable(ownerName)}
		}
	}
	if endorserEmail.Valid {
		e.Endorser = &models.Person{
			Email:     endorserEmail.String,
			FullName:  nullable(endorserNm),
			AvatarURL: nullable(endorserAvatar),
		}
	}
	return &e, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
