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

	"coreid/internal/projects/handler/mocks"
	"coreid/internal/projects/models"
	"coreid/pkg/backend"
	"coreid/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestListProjects(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().List(gomock.Any(), models.Filters{
		Status:   []models.Status{models.StatusActive, models.StatusPending},
		Category: nil,
	}, backend.Pagination{Page: 1, PageSize: 10}).Return(backend.NewPage[*models.Project](nil, 0, backend.Pagination{}), nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/projects?status=active&status=pending&category=all"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "data", []any{})
	testutil.AssertJSONContains(t, rr, "summary", "No results")
	testutil.AssertJSONContains(t, rr, "hasNext", false)
}

func TestUpdateProjectStatus(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusCompleted).
			Return(&models.Project{ID: id, Status: models.StatusCompleted}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPatch, "/projects/"+id.String()+"/status", map[string]string{"status": "completed"})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "completed")
	})

	t.Run("invalid body", func(t *testing.T) {
		router, _ := newRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/projects/"+id.String()+"/status", map[string]string{"status": "gone"})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteProject(t *testing.T) {
	router, svc := newRouter(t)
	id := uuid.New()
	svc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/projects/"+id.String()))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
