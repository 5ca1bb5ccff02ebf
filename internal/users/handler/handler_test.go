package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coreid/internal/users/handler/mocks"
	"coreid/internal/users/models"
	"coreid/pkg/backend"
	"coreid/pkg/testutil"
)

func setup(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	svc := mocks.NewMockService(gomock.NewController(t))
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestListParsesFilters(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().List(gomock.Any(), gomock.Any(), backend.Pagination{Page: 3, PageSize: 20}).
		DoAndReturn(func(_ any, f models.Filters, p backend.Pagination) (backend.Page[*models.Profile], error) {
			assert.Equal(t, "ada", f.Search)
			assert.Equal(t, []string{"suspended"}, f.Status)
			assert.Equal(t, models.NoPIN, f.Verified)
			require.NotNil(t, f.To)
			assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *f.To)
			assert.Nil(t, f.From)
			return backend.NewPage[*models.Profile](nil, 0, p), nil
		})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
		"/users?search=ada&status=suspended&verified=no_pin&to=2025-03-31&page=3&pageSize=20"))
	testutil.AssertStatusOK(t, rr)
}

func TestListRejectsBadDate(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/users?from=last-week"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestSuspendRoutes(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().SetSuspended(gomock.Any(), id, true).Return(&models.Profile{UserID: id, IsSuspended: true}, nil)
	svc.EXPECT().SetSuspended(gomock.Any(), id, false).Return(&models.Profile{UserID: id}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/users/"+id.String()+"/suspend"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "is_suspended", true)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/users/"+id.String()+"/reactivate"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "is_suspended", false)
}

func TestBulkStatusRequiresFlag(t *testing.T) {
	router, svc := setup(t)
	ids := []uuid.UUID{uuid.New()}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/bulk/status", map[string]any{"user_ids": ids}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")

	svc.EXPECT().BulkUpdateStatus(gomock.Any(), ids, true).Return(&models.BulkResult{Success: true, UpdatedCount: 1}, nil)
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/bulk/status", map[string]any{"user_ids": ids, "is_active": true}))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "updated_count", float64(1))
}

func TestExportWritesCSV(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().ExportCSV(gomock.Any(), models.SearchFilters{Country: "GH"}).
		Return([]byte("ID,Email\n"), "users-export-2025-01-01.csv", nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/users/export?country=GH"))
	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "users-export-2025-01-01.csv")
	assert.Equal(t, "ID,Email\n", rr.Body.String())
}

func TestUpdateRejectsUnknownFields(t *testing.T) {
	router, _ := setup(t)
	id := uuid.New()
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPatch, "/users/"+id.String(), map[string]any{"email": "x@y.z"}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "BAD_REQUEST")
}
