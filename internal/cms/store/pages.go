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

func (s *PostgresStore) ListPages(ctx context.Context, filters models.PageFilters) ([]*models.Page, error) {
	var f backend.Filter
	if filters.Status != "" {
		f.Where("t.status = " + f.Arg(string(filters.Status)))
	}
	if filters.CategoryID != nil {
		f.Where("t.category_id = " + f.Arg(*filters.CategoryID))
	}
	pages, err := postgres.QueryJSONRows[models.Page](ctx, postgres.ExecerFor(ctx, s.db),
		"SELECT to_jsonb(t) FROM cms_pages t"+f.SQL()+" ORDER BY t.created_at DESC", f.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

func (s *PostgresStore) FindPage(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return postgres.QueryJSON[models.Page](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(t) FROM cms_pages t WHERE t.id = $1`, id)
}

// FindPageBySlug renders a published page through get_page_by_slug.
func (s *PostgresStore) FindPageBySlug(ctx context.Context, slug string) (*models.PageView, error) {
	return postgres.QueryJSON[models.PageView](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(p) FROM get_page_by_slug(p_slug => $1) p`, slug)
}

func (s *PostgresStore) CreatePage(ctx context.Context, in models.PageInput, authorID uuid.UUID, at time.Time) (*models.Page, error) {
	var publishedAt *time.Time
	if in.Status == models.StatusPublished {
		publishedAt = &at
	}
	page, err := postgres.QueryJSON[models.Page](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO cms_pages AS t (title, slug, content, excerpt, category_id, meta_title,
			meta_description, meta_keywords, status, is_featured, published_at, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING to_jsonb(t)`,
		in.Title, in.Slug, in.Content, in.Excerpt, nullUUID(in.CategoryID), in.MetaTitle,
		in.MetaDescription, in.MetaKeywords, string(in.Status), in.IsFeatured, publishedAt, authorID, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert page: %w", err)
	}
	return page, nil
}

func (s *PostgresStore) UpdatePage(ctx context.Context, id uuid.UUID, patch models.PagePatch, at time.Time) (*models.Page, error) {
	a := &assignments{}
	setPtr(a, "title", patch.Title)
	setPtr(a, "slug", patch.Slug)
	setPtr(a, "content", patch.Content)
	setPtr(a, "excerpt", patch.Excerpt)
	setPtr(a, "category_id", patch.CategoryID)
	setPtr(a, "meta_title", patch.MetaTitle)
	setPtr(a, "meta_description", patch.MetaDescription)
	setPtr(a, "meta_keywords", patch.MetaKeywords)
	if patch.Status != nil {
		a.add("status", string(*patch.Status))
	}
	setPtr(a, "is_featured", patch.IsFeatured)
	a.sets = append(a.sets, "version = t.version + 1")

	var page models.Page
	if err := s.update(ctx, "cms_pages", id, a, at, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SetPagePublished publishes a page stamping published_at, or returns it to
// draft and clears the stamp.
func (s *PostgresStore) SetPagePublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (*models.Page, error) {
	a := &assignments{}
	if published {
		a.add("status", string(models.StatusPublished))
		a.add("published_at", at)
	} else {
		a.add("status", string(models.StatusDraft))
		a.sets = append(a.sets, "published_at = NULL")
	}
	var page models.Page
	if err := s.update(ctx, "cms_pages", id, a, at, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *PostgresStore) DeletePage(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "cms_pages", id)
}

// TrackPageView records one view; userID is empty for anonymous readers.
func (s *PostgresStore) TrackPageView(ctx context.Context, pageID uuid.UUID, userID *uuid.UUID) error {
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`SELECT track_page_view(p_page_id => $1, p_user_id => $2)`, pageID, nullUUID(userID))
	if err != nil {
		return fmt.Errorf("track_page_view: %w", err)
	}
	return nil
}

// Search runs search_cms_content across pages, FAQs and posts.
func (s *PostgresStore) Search(ctx context.Context, query string) ([]*models.SearchResult, error) {
	out, err := postgres.QueryJSONRows[models.SearchResult](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(r) FROM search_cms_content(p_query => $1) r`, query)
	if err != nil {
		return nil, fmt.Errorf("search_cms_content: %w", err)
	}
	return out, nil
}
