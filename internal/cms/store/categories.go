package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/cms/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
)

func (s *PostgresStore) ListCategories(ctx context.Context, typ models.CategoryType) ([]*models.Category, error) {
	var f backend.Filter
	if typ != "" {
		f.Where("t.type = " + f.Arg(string(typ)))
	}
	out, err := postgres.QueryJSONRows[models.Category](ctx, postgres.ExecerFor(ctx, s.db),
		"SELECT to_jsonb(t) FROM cms_categories t"+f.SQL()+" ORDER BY t.display_order ASC", f.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, in models.CategoryInput, at time.Time) (*models.Category, error) {
	c, err := postgres.QueryJSON[models.Category](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO cms_categories AS t (name, slug, description, type, parent_id, display_order, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING to_jsonb(t)`,
		in.Name, in.Slug, in.Description, string(in.Type), nullUUID(in.ParentID), in.DisplayOrder, in.Icon, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch, at time.Time) (*models.Category, error) {
	a := &assignments{}
	setPtr(a, "name", patch.Name)
	setPtr(a, "slug", patch.Slug)
	setPtr(a, "description", patch.Description)
	setPtr(a, "parent_id", patch.ParentID)
	setPtr(a, "display_order", patch.DisplayOrder)
	setPtr(a, "icon", patch.Icon)
	var c models.Category
	if err := s.update(ctx, "cms_categories", id, a, at, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "cms_categories", id)
}
