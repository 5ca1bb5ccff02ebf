package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/platform/postgres"
	"coreid/internal/projects/models"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

const projectColumns = `
	p.id, p.title, p.description, p.status, p.category, p.user_id, p.budget,
	p.created_at, p.updated_at, o.email, o.full_name
	FROM projects p
	LEFT JOIN profiles o ON o.user_id = p.user_id`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func filter(filters models.Filters) *backend.Filter {
	f := &backend.Filter{}
	f.Search(filters.Search, "p.title")
	if len(filters.Status) > 0 {
		statuses := make([]string, len(filters.Status))
		for i, s := range filters.Status {
			statuses[i] = string(s)
		}
		f.Where("p.status = ANY(" + f.Array(statuses) + ")")
	}
	if len(filters.Category) > 0 {
		f.Where("p.category = ANY(" + f.Array(filters.Category) + ")")
	}
	return f
}

func (s *PostgresStore) List(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.Project, int, error) {
	db := postgres.ExecerFor(ctx, s.db)

	count := filter(filters)
	var total int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM projects p"+count.SQL(), count.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	f := filter(filters)
	rows, err := db.QueryContext(ctx,
		"SELECT "+projectColumns+f.SQL()+" ORDER BY p.created_at DESC"+f.Page(p), f.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, project)
	}
	return out, total, rows.Err()
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, "SELECT "+projectColumns+" WHERE p.id = $1", id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return project, err
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, at time.Time) (*models.Project, error) {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE projects SET status = $2, updated_at = $3 WHERE id = $1`, id, string(status), at)
	if err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sentinel.ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	var (
		p                         models.Project
		status                    string
		userID                    uuid.NullUUID
		description, category     sql.NullString
		budget                    sql.NullFloat64
		ownerEmail, ownerFullName sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Title, &description, &status, &category, &userID, &budget,
		&p.CreatedAt, &p.UpdatedAt, &ownerEmail, &ownerFullName); err != nil {
		return nil, err
	}
	p.Status = models.Status(status)
	p.UserID = userID.UUID
	if description.Valid {
		p.Description = &description.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	if budget.Valid {
		p.Budget = &budget.Float64
	}
	if ownerEmail.Valid {
		p.Owner = &models.Owner{Email: ownerEmail.String}
		if ownerFullName.Valid {
			p.Owner.FullName = &ownerFullName.String
		}
	}
	return &p, nil
}
