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
	"go.uber.org/mock/gomock"

	"coreid/internal/email/handler/mocks"
	"coreid/internal/email/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestQueue(t *testing.T) {
	router, svc := newRouter(t)
	p := backend.Pagination{Page: 2, PageSize: 10}
	svc.EXPECT().Queue(gomock.Any(), models.QueueFilters{Status: models.StatusFailed, TemplateID: "welcome"}, p).
		Return(backend.NewPage([]*models.QueuedEmail{{TemplateID: "welcome"}}, 11, p), nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/queue?status=failed&template_id=welcome&page=2&limit=10"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "total", float64(11))
	testutil.AssertJSONContains(t, rr, "hasPrev", true)
}

func TestLogs(t *testing.T) {
	t.Run("filters by user", func(t *testing.T) {
		router, svc := newRouter(t)
		user := uuid.New()
		svc.EXPECT().Logs(gomock.Any(), models.LogFilters{UserID: &user, Status: "bounced"}, backend.Pagination{Page: 1}).
			Return(backend.NewPage([]*models.Log{}, 0, backend.Pagination{Page: 1, PageSize: 50}), nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/logs?user_id="+user.String()+"&status=bounced"))
		testutil.AssertStatusOK(t, rr)
	})

	t.Run("bad user id", func(t *testing.T) {
		router, _ := newRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/logs?user_id=nope"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestStatistics(t *testing.T) {
	t.Run("date range", func(t *testing.T) {
		router, svc := newRouter(t)
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().Statistics(gomock.Any(), &from, &to).Return(&models.Statistics{TotalSent: 10, DeliveryRate: 90}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/statistics?start_date=2026-09-01&end_date=2026-09-30"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "delivery_rate", float64(90))
	})

	t.Run("unparseable date", func(t *testing.T) {
		router, _ := newRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/statistics?start_date=last-week"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestEnqueue(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		router, svc := newRouter(t)
		id := uuid.New()
		svc.EXPECT().Enqueue(gomock.Any(), models.QueueInput{
			ToEmail: "ana@example.com", TemplateID: "welcome", Subject: "Welcome",
		}).Return(id, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/email/queue", map[string]any{
			"to_email": "ana@example.com", "template_id": "welcome", "subject": "Welcome",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONContains(t, rr, "id", id.String())
	})

	t.Run("bad address", func(t *testing.T) {
		router, _ := newRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/email/queue", map[string]any{
			"to_email": "not-an-address", "template_id": "welcome", "subject": "Welcome",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestSendTest(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().SendTest(gomock.Any(), models.TestEmailInput{ToEmail: "qa@example.com", Template: "reset"}).
			Return(uuid.New(), nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/email/test", map[string]any{
			"to_email": "qa@example.com", "template": "reset",
		})
		testutil.AssertStatus(t, testutil.DoRequest(router, req), http.StatusAccepted)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().SendTest(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, dErrors.New(dErrors.CodeUnauthorized, "admin identity required"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/email/test", map[string]any{
			"to_email": "qa@example.com", "template": "reset",
		})
		testutil.AssertStatusAndError(t, testutil.DoRequest(router, req), http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func TestCancelAndRetry(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		router, svc := newRouter(t)
		id := uuid.New()
		svc.EXPECT().Cancel(gomock.Any(), id).Return(&models.QueuedEmail{ID: id, Status: models.StatusCancelled}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/email/queue/"+id.String()+"/cancel"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "cancelled")
	})

	t.Run("retry of a sent email conflicts", func(t *testing.T) {
		router, svc := newRouter(t)
		id := uuid.New()
		svc.EXPECT().Retry(gomock.Any(), id).Return(nil, dErrors.New(dErrors.CodeConflict, "cannot retry an email that is sent"))

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/email/queue/"+id.String()+"/retry"))
		testutil.AssertStatusAndError(t, rr, http.StatusConflict, "CONFLICT")
	})
}

func TestPreferences(t *testing.T) {
	t.Run("none saved", func(t *testing.T) {
		router, svc := newRouter(t)
		user := uuid.New()
		svc.EXPECT().Preferences(gomock.Any(), user).Return(nil, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/email/preferences/"+user.String()))
		testutil.AssertStatusOK(t, rr)
		assert.JSONEq(t, `null`, rr.Body.String())
	})

	t.Run("unsubscribe", func(t *testing.T) {
		router, svc := newRouter(t)
		user := uuid.New()
		off := false
		svc.EXPECT().UpdatePreferences(gomock.Any(), user, models.PreferencesUpdate{AllEmails: &off}).
			Return(&models.Preferences{UserID: user}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPut, "/email/preferences/"+user.String(), map[string]any{"all_emails": false})
		testutil.AssertStatusOK(t, testutil.DoRequest(router, req))
	})
}
