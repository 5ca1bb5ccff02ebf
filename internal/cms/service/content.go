package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"coreid/internal/cms/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/requestcontext"
)

const (
	defaultPostLimit  = 10
	defaultStoryLimit = 20
	maxPublicLimit    = 100
)

func (s *Service) ListFAQs(ctx context.Context, filters models.FAQFilters) ([]*models.FAQ, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, invalidStatus(filters.Status)
	}
	faqs, err := s.store.ListFAQs(ctx, filters)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return faqs, nil
}

func (s *Service) CreateFAQ(ctx context.Context, in models.FAQInput) (*models.FAQ, error) {
	if in.Status == "" {
		in.Status = models.StatusDraft
	}
	faq, err := s.store.CreateFAQ(ctx, in, requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentCreated, Target: "faq:" + faq.ID.String()})
	return faq, nil
}

func (s *Service) UpdateFAQ(ctx context.Context, id uuid.UUID, patch models.FAQPatch) (*models.FAQ, error) {
	faq, err := s.store.UpdateFAQ(ctx, id, patch, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "faq")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentUpdated, Target: "faq:" + id.String()})
	return faq, nil
}

// ReorderFAQs moves several FAQs at once. The batch is all-or-nothing.
func (s *Service) ReorderFAQs(ctx context.Context, order []models.FAQOrder) error {
	if len(order) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(order))
	for _, o := range order {
		if _, dup := seen[o.ID]; dup {
			return dErrors.NewValidation("faq listed twice: "+o.ID.String(), map[string]string{"id": "unique"})
		}
		seen[o.ID] = struct{}{}
	}
	if err := s.store.ReorderFAQs(ctx, order, requestcontext.Now(ctx)); err != nil {
		return translate(err, "faq")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentUpdated, Target: "faqs", Details: map[string]any{"reordered": len(order)}})
	return nil
}

func (s *Service) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteFAQ(ctx, id); err != nil {
		return translate(err, "faq")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentDeleted, Target: "faq:" + id.String()})
	return nil
}

// MarkFAQHelpful records reader feedback. Failures are logged and dropped.
func (s *Service) MarkFAQHelpful(ctx context.Context, id uuid.UUID, helpful bool) {
	if err := s.store.MarkFAQHelpful(ctx, id, helpful); err != nil {
		s.logger.WarnContext(ctx, "failed to record faq feedback", "faq_id", id, "error", err)
	}
}

func (s *Service) ListCategories(ctx context.Context, typ models.CategoryType) ([]*models.Category, error) {
	if typ != "" && !typ.IsValid() {
		return nil, dErrors.NewValidation("unknown category type: "+string(typ), map[string]string{"type": "oneof"})
	}
	out, err := s.store.ListCategories(ctx, typ)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

func (s *Service) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	var err error
	if in.Slug, err = resolveSlug(in.Slug, in.Name); err != nil {
		return nil, err
	}
	c, err := s.store.CreateCategory(ctx, in, requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentCreated, Target: "category:" + c.ID.String(), Details: map[string]any{"name": c.Name}})
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.Category, error) {
	if patch.Slug != nil && !models.ValidSlug(*patch.Slug) {
		return nil, invalidSlug(*patch.Slug)
	}
	if patch.ParentID != nil && *patch.ParentID == id {
		return nil, dErrors.NewValidation("a category cannot be its own parent", map[string]string{"parent_id": "ne"})
	}
	c, err := s.store.UpdateCategory(ctx, id, patch, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "category")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentUpdated, Target: "category:" + id.String()})
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return translate(err, "category")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentDeleted, Target: "category:" + id.String()})
	return nil
}

func (s *Service) PublishedPosts(ctx context.Context, q models.BlogQuery) ([]*models.BlogPost, error) {
	q.Limit = clampLimit(q.Limit, defaultPostLimit)
	if q.Offset < 0 {
		q.Offset = 0
	}
	out, err := s.store.PublishedPosts(ctx, q)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

func (s *Service) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.store.FindPostBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err, "blog post")
	}
	return post, nil
}

func (s *Service) CreatePost(ctx context.Context, in models.BlogPostInput) (*models.BlogPost, error) {
	author, err := authorID(ctx)
	if err != nil {
		return nil, err
	}
	if in.Slug, err = resolveSlug(in.Slug, in.Title); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = models.StatusDraft
	}
	post, err := s.store.CreatePost(ctx, in, author, requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionContentCreated,
		Target:  "post:" + post.ID.String(),
		Details: map[string]any{"title": post.Title, "status": string(post.Status)},
	})
	return post, nil
}

func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch) (*models.BlogPost, error) {
	if patch.Slug != nil && !models.ValidSlug(*patch.Slug) {
		return nil, invalidSlug(*patch.Slug)
	}
	post, err := s.store.UpdatePost(ctx, id, patch, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "blog post")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentUpdated, Target: "post:" + id.String()})
	return post, nil
}

func (s *Service) PublishPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	return s.setPostPublished(ctx, id, true)
}

func (s *Service) UnpublishPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	return s.setPostPublished(ctx, id, false)
}

func (s *Service) setPostPublished(ctx context.Context, id uuid.UUID, published bool) (*models.BlogPost, error) {
	post, err := s.store.SetPostPublished(ctx, id, published, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "blog post")
	}
	s.emit(ctx, audit.Event{Action: publishAction(published), Target: "post:" + id.String()})
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeletePost(ctx, id); err != nil {
		return translate(err, "blog post")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentDeleted, Target: "post:" + id.String()})
	return nil
}

// LikePost bumps a post's like counter. Failures are logged and dropped.
func (s *Service) LikePost(ctx context.Context, id uuid.UUID) {
	if err := s.store.LikePost(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to like post", "post_id", id, "error", err)
	}
}

func (s *Service) PublishedStories(ctx context.Context, q models.StoryQuery) ([]*models.SuccessStory, error) {
	q.Limit = clampLimit(q.Limit, defaultStoryLimit)
	out, err := s.store.PublishedStories(ctx, q)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

func (s *Service) CreateStory(ctx context.Context, in models.SuccessStoryInput) (*models.SuccessStory, error) {
	if len(in.Metrics) > 0 && !json.Valid(in.Metrics) {
		return nil, dErrors.NewValidation("metrics must be valid JSON", map[string]string{"metrics": "json"})
	}
	if in.Status == "" {
		in.Status = models.StatusDraft
	}
	story, err := s.store.CreateStory(ctx, in, requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionContentCreated,
		Target:  "story:" + story.ID.String(),
		Details: map[string]any{"company": story.CompanyName},
	})
	return story, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxPublicLimit)
}
