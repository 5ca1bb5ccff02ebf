package handler

import (
	"encoding/json"
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

	"coreid/internal/audit/handler/mocks"
	"coreid/internal/audit/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/testutil"
)

func setup(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	svc := mocks.NewMockService(gomock.NewController(t))
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestRecentAdminActionsEmptyIsArray(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().RecentAdminActions(gomock.Any()).Return(nil, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/admin-actions"))
	testutil.AssertStatusOK(t, rr)
	var body struct {
		Data    []any  `json:"data"`
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Equal(t, "No results", body.Summary)
}

func TestRecentAdminActionsSortAndPage(t *testing.T) {
	router, svc := setup(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().RecentAdminActions(gomock.Any()).Return([]*models.AdminAction{
		{ID: uuid.New(), Action: "user_suspended", Actor: "b@coreid.test", Timestamp: base},
		{ID: uuid.New(), Action: "admin_invited", Actor: "c@coreid.test", Timestamp: base.Add(-time.Hour)},
		{ID: uuid.New(), Action: "setting_updated", Actor: "a@coreid.test", Timestamp: base.Add(-2 * time.Hour)},
	}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/admin-actions?sort=actor&direction=desc&page=1&pageSize=2"))
	testutil.AssertStatusOK(t, rr)
	var body struct {
		Data    []models.AdminAction `json:"data"`
		Total   int                  `json:"total"`
		HasNext bool                 `json:"hasNext"`
		Sort    struct {
			Key       string `json:"key"`
			Direction string `json:"direction"`
		} `json:"sort"`
		Columns []struct {
			Key  string `json:"key"`
			Next *struct {
				Key       string `json:"key"`
				Direction string `json:"direction"`
			} `json:"next"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "c@coreid.test", body.Data[0].Actor)
	assert.Equal(t, "b@coreid.test", body.Data[1].Actor)
	assert.Equal(t, 3, body.Total)
	assert.True(t, body.HasNext)
	assert.Equal(t, "actor", body.Sort.Key)
	assert.Equal(t, "desc", body.Sort.Direction)
	require.Len(t, body.Columns, len(adminActionColumns))
	assert.Equal(t, "actor", body.Columns[1].Key)
	require.NotNil(t, body.Columns[1].Next)
	assert.Empty(t, body.Columns[1].Next.Direction, "desc toggles back to unsorted")
	assert.Nil(t, body.Columns[5].Next, "details is not sortable")
}

func TestLogAdminAction(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().LogAdminAction(gomock.Any(), "report_viewed", "report:weekly", "", map[string]any{"format": "csv"}).Return(nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/audit/admin-actions", map[string]any{
		"action": "report_viewed", "target": "report:weekly", "details": map[string]any{"format": "csv"},
	}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestLogAdminActionRejectsUnknownStatus(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/audit/admin-actions", map[string]any{
		"action": "x", "status": "maybe",
	}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestLogEvent(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e models.Event) (uuid.UUID, error) {
		assert.Equal(t, "user_updated", e.Action)
		assert.Equal(t, "user", e.ResourceType)
		assert.Equal(t, "42", e.ResourceID)
		assert.Equal(t, map[string]any{"name": "Ada"}, e.NewValues)
		return id, nil
	})

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/audit/logs", map[string]any{
		"action": "user_updated", "resource_type": "user", "resource_id": "42",
		"new_values": map[string]any{"name": "Ada"},
	}))
	assert.Equal(t, http.StatusCreated, rr.Code)
	testutil.AssertJSONContains(t, rr, "id", id.String())
}

func TestListParsesFilters(t *testing.T) {
	router, svc := setup(t)
	uid := uuid.New()
	svc.EXPECT().List(gomock.Any(), gomock.Any(), 2, 25).
		DoAndReturn(func(_ any, f models.Filters, page, size int) (backend.Page[*models.LogEntry], error) {
			require.NotNil(t, f.UserID)
			assert.Equal(t, uid, *f.UserID)
			assert.Equal(t, "user_suspended", f.Action)
			assert.Equal(t, "failure", f.Status)
			require.NotNil(t, f.From)
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Nil(t, f.To)
			return backend.NewPage[*models.LogEntry](nil, 0, backend.Pagination{Page: page, PageSize: size}), nil
		})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
		"/audit/logs?user_id="+uid.String()+"&action=user_suspended&status=failure&start_date=2025-01-01&page=2&limit=25"))
	testutil.AssertStatusOK(t, rr)
}

func TestListRejectsBadUserID(t *testing.T) {
	router, _ := setup(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/logs?user_id=nope"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestExportWritesAttachment(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().ExportCSV(gomock.Any(), models.Filters{ActorType: "admin"}).
		Return([]byte("Timestamp,User Email\n"), "audit-logs-2025-06-01.csv", nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/logs/export?actor_type=admin"))
	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, `attachment; filename="audit-logs-2025-06-01.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "Timestamp,User Email\n", rr.Body.String())
}

func TestStatisticsError(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Statistics(gomock.Any(), nil, nil).Return(nil, dErrors.New(dErrors.CodeServer, "Database table does not exist."))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/statistics"))
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "SERVER_ERROR")
}

func TestCleanup(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Cleanup(gomock.Any(), 30).Return(&models.CleanupResult{Success: true, Message: "Cleanup completed"}, nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/audit/cleanup", map[string]any{"retention_days": 30}))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "message", "Cleanup completed")
}

func TestUserActivityDefaultsPage(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().UserActivity(gomock.Any(), models.ActivityFilters{ActivityType: "login"}, 1, 0).
		Return(backend.Page[*models.Activity]{}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/audit/activity?activity_type=login"))
	testutil.AssertStatusOK(t, rr)
}
