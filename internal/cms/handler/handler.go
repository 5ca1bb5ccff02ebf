package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coreid/internal/cms/models"
	"coreid/pkg/platform/httputil"
)

type Service interface {
	ListPages(ctx context.Context, filters models.PageFilters) ([]*models.Page, error)
	GetPage(ctx context.Context, id uuid.UUID) (*models.Page, error)
	PageBySlug(ctx context.Context, slug string) (*models.PageView, error)
	CreatePage(ctx context.Context, in models.PageInput) (*models.Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, patch models.PagePatch) (*models.Page, error)
	PublishPage(ctx context.Context, id uuid.UUID) (*models.Page, error)
	UnpublishPage(ctx context.Context, id uuid.UUID) (*models.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	TrackPageView(ctx context.Context, pageID uuid.UUID)
	Search(ctx context.Context, query string) ([]*models.SearchResult, error)

	ListFAQs(ctx context.Context, filters models.FAQFilters) ([]*models.FAQ, error)
	CreateFAQ(ctx context.Context, in models.FAQInput) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id uuid.UUID, patch models.FAQPatch) (*models.FAQ, error)
	ReorderFAQs(ctx context.Context, order []models.FAQOrder) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
	MarkFAQHelpful(ctx context.Context, id uuid.UUID, helpful bool)

	ListCategories(ctx context.Context, typ models.CategoryType) ([]*models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	PublishedPosts(ctx context.Context, q models.BlogQuery) ([]*models.BlogPost, error)
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, in models.BlogPostInput) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch) (*models.BlogPost, error)
	PublishPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	UnpublishPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	LikePost(ctx context.Context, id uuid.UUID)

	PublishedStories(ctx context.Context, q models.StoryQuery) ([]*models.SuccessStory, error)
	CreateStory(ctx context.Context, in models.SuccessStoryInput) (*models.SuccessStory, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type reorderRequest struct {
	Order []models.FAQOrder `json:"order" validate:"required,min=1,dive"`
}

type feedbackRequest struct {
	Helpful *bool `json:"helpful" validate:"required"`
}

// Register mounts the content management routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/cms", func(r chi.Router) {
		r.Get("/pages", h.handleListPages)
		r.Post("/pages", httputil.Create(h.logger, "page", h.service.CreatePage))
		r.Get("/pages/{id}", httputil.ByID(h.logger, "page", h.service.GetPage))
		r.Patch("/pages/{id}", httputil.PatchByID(h.logger, "page", h.service.UpdatePage))
		r.Delete("/pages/{id}", httputil.DeleteByID(h.logger, "page", h.service.DeletePage))
		r.Post("/pages/{id}/publish", httputil.ByID(h.logger, "page", h.service.PublishPage))
		r.Post("/pages/{id}/unpublish", httputil.ByID(h.logger, "page", h.service.UnpublishPage))

		r.Get("/faqs", h.handleListFAQs)
		r.Post("/faqs", httputil.Create(h.logger, "faq", h.service.CreateFAQ))
		r.Put("/faqs/order", h.handleReorderFAQs)
		r.Patch("/faqs/{id}", httputil.PatchByID(h.logger, "faq", h.service.UpdateFAQ))
		r.Delete("/faqs/{id}", httputil.DeleteByID(h.logger, "faq", h.service.DeleteFAQ))

		r.Get("/categories", h.handleListCategories)
		r.Post("/categories", httputil.Create(h.logger, "category", h.service.CreateCategory))
		r.Patch("/categories/{id}", httputil.PatchByID(h.logger, "category", h.service.UpdateCategory))
		r.Delete("/categories/{id}", httputil.DeleteByID(h.logger, "category", h.service.DeleteCategory))

		r.Post("/posts", httputil.Create(h.logger, "blog post", h.service.CreatePost))
		r.Patch("/posts/{id}", httputil.PatchByID(h.logger, "blog post", h.service.UpdatePost))
		r.Delete("/posts/{id}", httputil.DeleteByID(h.logger, "blog post", h.service.DeletePost))
		r.Post("/posts/{id}/publish", httputil.ByID(h.logger, "blog post", h.service.PublishPost))
		r.Post("/posts/{id}/unpublish", httputil.ByID(h.logger, "blog post", h.service.UnpublishPost))

		r.Post("/stories", httputil.Create(h.logger, "success story", h.service.CreateStory))
	})
}

// RegisterPublic mounts the reader-facing routes, which need no admin.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Route("/content", func(r chi.Router) {
		r.Get("/search", h.handleSearch)
		r.Get("/pages/{slug}", h.handlePageBySlug)
		r.Post("/page-views/{id}", h.handleTrackView)
		r.Post("/faqs/{id}/feedback", h.handleFAQFeedback)
		r.Get("/posts", h.handlePublishedPosts)
		r.Get("/posts/{slug}", h.handlePostBySlug)
		r.Post("/post-likes/{id}", h.handleLike)
		r.Get("/stories", h.handleStories)
	})
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := httputil.QueryUUID(r, "category_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	pages, err := h.service.ListPages(ctx, models.PageFilters{
		Status:     models.Status(r.URL.Query().Get("status")),
		CategoryID: categoryID,
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list pages", err)
		return
	}
	httputil.WriteList(w, pages)
}

func (h *Handler) handleListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := httputil.QueryUUID(r, "category_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	faqs, err := h.service.ListFAQs(ctx, models.FAQFilters{
		Status:     models.Status(r.URL.Query().Get("status")),
		CategoryID: categoryID,
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list faqs", err)
		return
	}
	httputil.WriteList(w, faqs)
}

func (h *Handler) handleReorderFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[reorderRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := h.service.ReorderFAQs(ctx, req.Order); err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to reorder faqs", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cats, err := h.service.ListCategories(ctx, models.CategoryType(r.URL.Query().Get("type")))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list categories", err)
		return
	}
	httputil.WriteList(w, cats)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hits, err := h.service.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to search content", err)
		return
	}
	httputil.WriteList(w, hits)
}

func (h *Handler) handlePageBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.service.PageBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load page", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleTrackView(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.service.TrackPageView(r.Context(), id)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleFAQFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[feedbackRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.service.MarkFAQHelpful(r.Context(), id, *req.Helpful)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handlePublishedPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := httputil.QueryUUID(r, "category_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	posts, err := h.service.PublishedPosts(ctx, models.BlogQuery{
		Limit:      httputil.QueryInt(r, "limit", 0),
		Offset:     httputil.QueryInt(r, "offset", 0),
		CategoryID: categoryID,
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list blog posts", err)
		return
	}
	httputil.WriteList(w, posts)
}

func (h *Handler) handlePostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := h.service.PostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to load blog post", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.URLParamUUID(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.service.LikePost(r.Context(), id)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleStories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	stories, err := h.service.PublishedStories(ctx, models.StoryQuery{
		Limit:    httputil.QueryInt(r, "limit", 0),
		Industry: q.Get("industry"),
		UseCase:  q.Get("use_case"),
	})
	if err != nil {
		httputil.LogAndWriteError(ctx, w, h.logger, "failed to list success stories", err)
		return
	}
	httputil.WriteList(w, stories)
}
