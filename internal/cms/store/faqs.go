package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coreid/internal/cms/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

func (s *PostgresStore) ListFAQs(ctx context.Context, filters models.FAQFilters) ([]*models.FAQ, error) {
	var f backend.Filter
	if filters.Status != "" {
		f.Where("t.status = " + f.Arg(string(filters.Status)))
	}
	if filters.CategoryID != nil {
		f.Where("t.category_id = " + f.Arg(*filters.CategoryID))
	}
	faqs, err := postgres.QueryJSONRows[models.FAQ](ctx, postgres.ExecerFor(ctx, s.db),
		"SELECT to_jsonb(t) FROM cms_faqs t"+f.SQL()+" ORDER BY t.display_order ASC", f.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}

func (s *PostgresStore) CreateFAQ(ctx context.Context, in models.FAQInput, at time.Time) (*models.FAQ, error) {
	faq, err := postgres.QueryJSON[models.FAQ](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO cms_faqs AS t (question, answer, category_id, display_order, is_featured, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING to_jsonb(t)`,
		in.Question, in.Answer, nullUUID(in.CategoryID), in.DisplayOrder, in.IsFeatured, string(in.Status), at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert faq: %w", err)
	}
	return faq, nil
}

func (s *PostgresStore) UpdateFAQ(ctx context.Context, id uuid.UUID, patch models.FAQPatch, at time.Time) (*models.FAQ, error) {
	a := &assignments{}
	setPtr(a, "question", patch.Question)
	setPtr(a, "answer", patch.Answer)
	setPtr(a, "category_id", patch.CategoryID)
	setPtr(a, "display_order", patch.DisplayOrder)
	setPtr(a, "is_featured", patch.IsFeatured)
	if patch.Status != nil {
		a.add("status", string(*patch.Status))
	}
	var faq models.FAQ
	if err := s.update(ctx, "cms_faqs", id, a, at, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// ReorderFAQs applies every position in one transaction; an unknown id
// rolls the whole batch back.
func (s *PostgresStore) ReorderFAQs(ctx context.Context, order []models.FAQOrder, at time.Time) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := postgres.ExecerFor(ctx, s.db)
		for _, o := range order {
			res, err := db.ExecContext(ctx,
				`UPDATE cms_faqs SET display_order = $2, updated_at = $3 WHERE id = $1`, o.ID, o.DisplayOrder, at)
			if err != nil {
				return fmt.Errorf("reorder faq %s: %w", o.ID, err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return fmt.Errorf("faq %s: %w", o.ID, sentinel.ErrNotFound)
			}
		}
		return nil
	})
}

func (s *PostgresStore) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "cms_faqs", id)
}

func (s *PostgresStore) MarkFAQHelpful(ctx context.Context, id uuid.UUID, helpful bool) error {
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`SELECT mark_faq_helpful(p_faq_id => $1, p_is_helpful => $2)`, id, helpful)
	if err != nil {
		return fmt.Errorf("mark_faq_helpful: %w", err)
	}
	return nil
}
