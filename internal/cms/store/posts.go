package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"coreid/internal/cms/models"
	"coreid/internal/platform/postgres"
)

// PublishedPosts pages through get_published_blog_posts.
func (s *PostgresStore) PublishedPosts(ctx context.Context, q models.BlogQuery) ([]*models.BlogPost, error) {
	out, err := postgres.QueryJSONRows[models.BlogPost](ctx, postgres.ExecerFor(ctx, s.db), `
		SELECT to_jsonb(p) FROM get_published_blog_posts(p_limit => $1, p_offset => $2, p_category_id => $3) p`,
		q.Limit, q.Offset, nullUUID(q.CategoryID),
	)
	if err != nil {
		return nil, fmt.Errorf("get_published_blog_posts: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return postgres.QueryJSON[models.BlogPost](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(p) FROM get_blog_post_by_slug(p_slug => $1) p`, slug)
}

func (s *PostgresStore) CreatePost(ctx context.Context, in models.BlogPostInput, authorID uuid.UUID, at time.Time) (*models.BlogPost, error) {
	var publishedAt *time.Time
	if in.Status == models.StatusPublished {
		publishedAt = &at
	}
	post, err := postgres.QueryJSON[models.BlogPost](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO cms_blog_posts AS t (title, slug, excerpt, content, cover_image, category_id, tags,
			status, published_at, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::text[], $8, $9, $10, $11, $11)
		RETURNING to_jsonb(t)`,
		in.Title, in.Slug, in.Excerpt, in.Content, in.CoverImage, nullUUID(in.CategoryID), pq.Array(tags(in.Tags)),
		string(in.Status), publishedAt, authorID, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	return post, nil
}

func (s *PostgresStore) UpdatePost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch, at time.Time) (*models.BlogPost, error) {
	a := &assignments{}
	setPtr(a, "title", patch.Title)
	setPtr(a, "slug", patch.Slug)
	setPtr(a, "excerpt", patch.Excerpt)
	setPtr(a, "content", patch.Content)
	setPtr(a, "cover_image", patch.CoverImage)
	setPtr(a, "category_id", patch.CategoryID)
	if patch.Tags != nil {
		a.sets = append(a.sets, "tags = "+a.f.Arg(pq.Array(patch.Tags))+"::text[]")
	}
	if patch.Status != nil {
		a.add("status", string(*patch.Status))
	}
	var post models.BlogPost
	if err := s.update(ctx, "cms_blog_posts", id, a, at, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostgresStore) SetPostPublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (*models.BlogPost, error) {
	a := &assignments{}
	if published {
		a.add("status", string(models.StatusPublished))
		a.add("published_at", at)
	} else {
		a.add("status", string(models.StatusDraft))
		a.sets = append(a.sets, "published_at = NULL")
	}
	var post models.BlogPost
	if err := s.update(ctx, "cms_blog_posts", id, a, at, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostgresStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "cms_blog_posts", id)
}

func (s *PostgresStore) LikePost(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, `SELECT like_blog_post(p_post_id => $1)`, id)
	if err != nil {
		return fmt.Errorf("like_blog_post: %w", err)
	}
	return nil
}

// PublishedStories lists success stories through get_published_stories.
func (s *PostgresStore) PublishedStories(ctx context.Context, q models.StoryQuery) ([]*models.SuccessStory, error) {
	out, err := postgres.QueryJSONRows[models.SuccessStory](ctx, postgres.ExecerFor(ctx, s.db), `
		SELECT to_jsonb(p) FROM get_published_stories(p_limit => $1, p_industry => $2, p_use_case => $3) p`,
		q.Limit, null(q.Industry), null(q.UseCase),
	)
	if err != nil {
		return nil, fmt.Errorf("get_published_stories: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateStory(ctx context.Context, in models.SuccessStoryInput, at time.Time) (*models.SuccessStory, error) {
	var publishedAt *time.Time
	if in.Status == models.StatusPublished {
		publishedAt = &at
	}
	metrics := sql.NullString{String: string(in.Metrics), Valid: len(in.Metrics) > 0}
	story, err := postgres.QueryJSON[models.SuccessStory](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO success_stories AS t (title, company_name, industry, use_case, summary, content, logo_url,
			metrics, status, is_featured, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11, $12, $12)
		RETURNING to_jsonb(t)`,
		in.Title, in.CompanyName, in.Industry, in.UseCase, in.Summary, in.Content, in.LogoURL,
		metrics, string(in.Status), in.IsFeatured, publishedAt, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert success story: %w", err)
	}
	return story, nil
}

func tags(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}
