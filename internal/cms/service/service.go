package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"coreid/internal/cms/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

type Store interface {
	ListPages(ctx context.Context, filters models.PageFilters) ([]*models.Page, error)
	FindPage(ctx context.Context, id uuid.UUID) (*models.Page, error)
	FindPageBySlug(ctx context.Context, slug string) (*models.PageView, error)
	CreatePage(ctx context.Context, in models.PageInput, authorID uuid.UUID, at time.Time) (*models.Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, patch models.PagePatch, at time.Time) (*models.Page, error)
	SetPagePublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (*models.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	TrackPageView(ctx context.Context, pageID uuid.UUID, userID *uuid.UUID) error
	Search(ctx context.Context, query string) ([]*models.SearchResult, error)

	ListFAQs(ctx context.Context, filters models.FAQFilters) ([]*models.FAQ, error)
	CreateFAQ(ctx context.Context, in models.FAQInput, at time.Time) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id uuid.UUID, patch models.FAQPatch, at time.Time) (*models.FAQ, error)
	ReorderFAQs(ctx context.Context, order []models.FAQOrder, at time.Time) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
	MarkFAQHelpful(ctx context.Context, id uuid.UUID, helpful bool) error

	ListCategories(ctx context.Context, typ models.CategoryType) ([]*models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput, at time.Time) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch, at time.Time) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	PublishedPosts(ctx context.Context, q models.BlogQuery) ([]*models.BlogPost, error)
	FindPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, in models.BlogPostInput, authorID uuid.UUID, at time.Time) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch, at time.Time) (*models.BlogPost, error)
	SetPostPublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	LikePost(ctx context.Context, id uuid.UUID) error

	PublishedStories(ctx context.Context, q models.StoryQuery) ([]*models.SuccessStory, error)
	CreateStory(ctx context.Context, in models.SuccessStoryInput, at time.Time) (*models.SuccessStory, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages site content: pages, FAQs, categories, blog posts and
// success stories.
type Service struct {
	store   Store
	auditor AuditPublisher
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListPages(ctx context.Context, filters models.PageFilters) ([]*models.Page, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, invalidStatus(filters.Status)
	}
	pages, err := s.store.ListPages(ctx, filters)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return pages, nil
}

func (s *Service) GetPage(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	page, err := s.store.FindPage(ctx, id)
	if err != nil {
		return nil, translate(err, "page")
	}
	return page, nil
}

func (s *Service) PageBySlug(ctx context.Context, slug string) (*models.PageView, error) {
	page, err := s.store.FindPageBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err, "page")
	}
	return page, nil
}

// CreatePage stores a page authored by the calling admin. A blank slug is
// derived from the title.
func (s *Service) CreatePage(ctx context.Context, in models.PageInput) (*models.Page, error) {
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

	ctx, span := tracing.Start(ctx, "cms", "create_page")
	page, err := s.store.CreatePage(ctx, in, author, requestcontext.Now(ctx))
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionContentCreated,
		Target:  "page:" + page.ID.String(),
		Details: map[string]any{"title": page.Title, "status": string(page.Status)},
	})
	return page, nil
}

func (s *Service) UpdatePage(ctx context.Context, id uuid.UUID, patch models.PagePatch) (*models.Page, error) {
	if patch.Slug != nil && !models.ValidSlug(*patch.Slug) {
		return nil, invalidSlug(*patch.Slug)
	}
	page, err := s.store.UpdatePage(ctx, id, patch, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "page")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentUpdated, Target: "page:" + id.String(), Details: map[string]any{"version": page.Version}})
	return page, nil
}

func (s *Service) PublishPage(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return s.setPagePublished(ctx, id, true)
}

func (s *Service) UnpublishPage(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	return s.setPagePublished(ctx, id, false)
}

func (s *Service) setPagePublished(ctx context.Context, id uuid.UUID, published bool) (*models.Page, error) {
	page, err := s.store.SetPagePublished(ctx, id, published, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "page")
	}
	s.emit(ctx, audit.Event{Action: publishAction(published), Target: "page:" + id.String()})
	return page, nil
}

func (s *Service) DeletePage(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeletePage(ctx, id); err != nil {
		return translate(err, "page")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionContentDeleted, Target: "page:" + id.String()})
	return nil
}

// TrackPageView counts a view for the signed-in reader, if any. Failures are
// logged and dropped.
func (s *Service) TrackPageView(ctx context.Context, pageID uuid.UUID) {
	var reader *uuid.UUID
	if u := requestcontext.Session(ctx); u.ID != uuid.Nil {
		reader = &u.ID
	}
	if err := s.store.TrackPageView(ctx, pageID, reader); err != nil {
		s.logger.WarnContext(ctx, "failed to track page view", "page_id", pageID, "error", err)
	}
}

// Search matches query across all published content. Blank queries match
// nothing.
func (s *Service) Search(ctx context.Context, query string) ([]*models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.SearchResult{}, nil
	}
	out, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func authorID(ctx context.Context) (uuid.UUID, error) {
	admin := requestcontext.Admin(ctx)
	if admin.IsZero() || admin.Machine {
		return uuid.Nil, dErrors.New(dErrors.CodeUnauthorized, "Not authenticated")
	}
	return admin.ID, nil
}

func resolveSlug(slug, title string) (string, error) {
	if slug == "" {
		slug = models.Slugify(title)
	}
	if !models.ValidSlug(slug) {
		return "", invalidSlug(slug)
	}
	return slug, nil
}

func publishAction(published bool) audit.Action {
	if published {
		return audit.ActionContentPublished
	}
	return audit.ActionContentUnpublished
}

func invalidSlug(slug string) error {
	return dErrors.NewValidation("slug must be lowercase words joined by hyphens: "+slug, map[string]string{"slug": "slug"})
}

func invalidStatus(st models.Status) error {
	return dErrors.NewValidation("unknown content status: "+string(st), map[string]string{"status": "oneof"})
}

func translate(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	}
	return backend.HandleError(err)
}
