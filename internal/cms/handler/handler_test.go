package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"coreid/internal/cms/handler/mocks"
	"coreid/internal/cms/models"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/testutil"
)

func setup(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	svc := mocks.NewMockService(gomock.NewController(t))
	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	h.RegisterPublic(r)
	return r, svc
}

func TestCreatePage(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().CreatePage(gomock.Any(), models.PageInput{Title: "About", Content: "<p>hi</p>"}).
		Return(&models.Page{ID: uuid.New(), Title: "About", Slug: "about", Status: models.StatusDraft}, nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/cms/pages", map[string]any{
		"title": "About", "content": "<p>hi</p>",
	}))
	assert.Equal(t, http.StatusCreated, rr.Code)
	testutil.AssertJSONContains(t, rr, "slug", "about")
}

func TestCreatePageRequiresTitle(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/cms/pages", map[string]any{"content": "x"}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestUpdatePagePatch(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	title := "New title"
	svc.EXPECT().UpdatePage(gomock.Any(), id, models.PagePatch{Title: &title}).
		Return(&models.Page{ID: id, Title: title, Version: 2}, nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPatch, "/cms/pages/"+id.String(), map[string]any{"title": title}))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "version", float64(2))
}

func TestPublishPage(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().PublishPage(gomock.Any(), id).Return(&models.Page{ID: id, Status: models.StatusPublished}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/cms/pages/"+id.String()+"/publish"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "status", "published")
}

func TestGetPageBadID(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cms/pages/not-a-uuid"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestDeleteCategoryNotFound(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().DeleteCategory(gomock.Any(), id).Return(dErrors.New(dErrors.CodeNotFound, "category not found"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/cms/categories/"+id.String()))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "NOT_FOUND")
}

func TestReorderFAQs(t *testing.T) {
	router, svc := setup(t)
	a, b := uuid.New(), uuid.New()
	svc.EXPECT().ReorderFAQs(gomock.Any(), []models.FAQOrder{{ID: a, DisplayOrder: 0}, {ID: b, DisplayOrder: 1}}).Return(nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/cms/faqs/order", map[string]any{
		"order": []map[string]any{{"id": a, "display_order": 0}, {"id": b, "display_order": 1}},
	}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestListFAQsRejectsBadCategory(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/cms/faqs?category_id=nope"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestSearchEmptyIsArray(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Search(gomock.Any(), "pin").Return(nil, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/content/search?q=pin"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestPublishedPostsQuery(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().PublishedPosts(gomock.Any(), models.BlogQuery{Limit: 5, Offset: 10}).Return([]*models.BlogPost{{Title: "Hello"}}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/content/posts?limit=5&offset=10"))
	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, rr.Body.String(), "Hello")
}

func TestFAQFeedbackRequiresFlag(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/content/faqs/"+uuid.NewString()+"/feedback", map[string]any{}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestFAQFeedback(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().MarkFAQHelpful(gomock.Any(), id, false)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/content/faqs/"+id.String()+"/feedback", map[string]any{"helpful": false}))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestTrackPageView(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().TrackPageView(gomock.Any(), id)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/content/page-views/"+id.String()))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}
