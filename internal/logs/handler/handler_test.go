package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"coreid/internal/logs/handler/mocks"
	"coreid/internal/logs/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/testutil"
)

func TestLogRoutes(t *testing.T) {
	svc := mocks.NewMockService(gomock.NewController(t))
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)

	t.Run("auth logs pass filters through", func(t *testing.T) {
		svc.EXPECT().AuthLogs(gomock.Any(), models.Filters{Search: "10.0", Status: "all", EventType: "login"}, backend.Pagination{Page: 1, PageSize: 25}).
			Return(backend.NewPage[*models.AuthLog](nil, 0, backend.Pagination{PageSize: 25}), nil)
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/logs/auth?search=10.0&status=all&eventType=login&pageSize=25"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "pageSize", float64(25))
	})

	t.Run("pin logs", func(t *testing.T) {
		svc.EXPECT().PINLoginLogs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.NewPage[*models.PINLoginLog](nil, 0, backend.Pagination{}), nil)
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/logs/pin"))
		testutil.AssertStatusOK(t, rr)
	})

	t.Run("backend failure", func(t *testing.T) {
		svc.EXPECT().EmailVerificationLogs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.Page[*models.EmailVerificationLog]{}, dErrors.New(dErrors.CodeServer, "Database table does not exist.").WithBackendCode("42P01"))
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/logs/email-verification"))
		testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "SERVER_ERROR")
	})
}
