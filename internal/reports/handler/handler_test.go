package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"coreid/internal/reports/handler/mocks"
	"coreid/internal/reports/models"
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

func TestTemplatesByType(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Templates(gomock.Any(), models.TypeEngagement).Return(nil, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/reports/templates?type=engagement"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateTemplateValidates(t *testing.T) {
	router, _ := setup(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/reports/templates", map[string]any{
		"name": "Signups", "report_type": "weekly", "data_sources": []string{"profiles"}, "columns": []string{"id"},
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTemplate(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).Return(&models.Template{ID: uuid.New(), Name: "Signups"}, nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/reports/templates", map[string]any{
		"name": "Signups", "report_type": "engagement", "data_sources": []string{"profiles"}, "columns": []string{"id"},
	}))
	assert.Equal(t, http.StatusCreated, rr.Code)
	testutil.AssertJSONContains(t, rr, "name", "Signups")
}

func TestGenerateAccepted(t *testing.T) {
	router, svc := setup(t)
	tmpl, report := uuid.New(), uuid.New()
	svc.EXPECT().Generate(gomock.Any(), tmpl, json.RawMessage(`{"month":"2025-03"}`)).Return(report, nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
		"/reports/templates/"+tmpl.String()+"/generate", map[string]any{"parameters": map[string]string{"month": "2025-03"}}))
	assert.Equal(t, http.StatusAccepted, rr.Code)
	testutil.AssertJSONContains(t, rr, "report_id", report.String())
}

func TestCreateScheduleRejectsBadRecipient(t *testing.T) {
	router, _ := setup(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/reports/schedules", map[string]any{
		"template_id": uuid.NewString(), "name": "Daily", "schedule_type": "daily",
		"schedule_config": map[string]string{"time": "09:00"}, "recipients": []string{"not-an-email"}, "export_format": "csv",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggleRequiresFlag(t *testing.T) {
	router, _ := setup(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut,
		"/reports/schedules/"+uuid.NewString()+"/active", map[string]any{}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggle(t *testing.T) {
	router, svc := setup(t)
	id := uuid.New()
	svc.EXPECT().ToggleSchedule(gomock.Any(), id, true).Return(nil)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut,
		"/reports/schedules/"+id.String()+"/active", map[string]any{"is_active": true}))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "is_active", true)
}

func TestHistoryFilters(t *testing.T) {
	router, svc := setup(t)
	tmpl := uuid.New()
	svc.EXPECT().History(gomock.Any(), 25, &tmpl).Return([]*models.History{{Name: "March"}}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
		"/reports/history?limit=25&template_id="+tmpl.String()))
	testutil.AssertStatusOK(t, rr)
}

func TestHistoryBadTemplateID(t *testing.T) {
	router, _ := setup(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/reports/history?template_id=nope"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportInlineStreamsCSV(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Export(gomock.Any(), models.ExportUsers).
		Return(&models.Export{Filename: "users.csv", Data: []byte("id\n1\n")}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/reports/exports/users"))
	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "users.csv")
	assert.Equal(t, "id\n1\n", rr.Body.String())
}

func TestExportStoredReturnsLink(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Export(gomock.Any(), models.ExportAuditLogs).
		Return(&models.Export{Kind: models.ExportAuditLogs, Filename: "audit.csv", URL: "https://exports.example/audit.csv"}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/reports/exports/audit_logs"))
	assert.Equal(t, http.StatusCreated, rr.Code)
	testutil.AssertJSONContains(t, rr, "url", "https://exports.example/audit.csv")
}

func TestExportUnknownKind(t *testing.T) {
	router, svc := setup(t)
	svc.EXPECT().Export(gomock.Any(), models.ExportKind("payments")).
		Return(nil, dErrors.New(dErrors.CodeValidation, "unknown export: payments"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/reports/exports/payments"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
