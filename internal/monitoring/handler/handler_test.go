package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"coreid/internal/monitoring/handler/mocks"
	"coreid/internal/monitoring/models"
	"coreid/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestHealth(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Health(gomock.Any()).Return(&models.HealthReport{
		Score:           90,
		Status:          models.StatusExcellent,
		Recommendations: []string{"System performance is optimal - continue monitoring"},
	}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/monitoring/health"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "score", float64(90))
	testutil.AssertJSONContains(t, rr, "status", "excellent")
}

func TestPeriodDefaults(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Summary(gomock.Any(), models.PeriodHour).Return(&models.Summary{}, nil)
	svc.EXPECT().Trends(gomock.Any(), models.PeriodDay).Return([]models.TrendPoint{}, nil)
	svc.EXPECT().Trends(gomock.Any(), models.PeriodWeek).Return([]models.TrendPoint{}, nil)

	testutil.AssertStatusOK(t, testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/monitoring/summary")))
	testutil.AssertStatusOK(t, testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/monitoring/trends")))
	testutil.AssertStatusOK(t, testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/monitoring/trends?period=7d")))
}

func TestSlowEndpointsThreshold(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().SlowEndpoints(gomock.Any(), 250).Return([]models.SlowEndpoint{}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/monitoring/slow-endpoints?threshold=250"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestLogMetric(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Log(gomock.Any(), models.APIMetric{
			Endpoint: "/v1/verify", Method: "POST", ResponseTimeMS: 87, StatusCode: 201,
		}).Return(nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/monitoring/metrics", map[string]any{
			"endpoint": "/v1/verify", "method": "POST", "response_time": 87, "status_code": 201,
		})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("status code out of range", func(t *testing.T) {
		router, _ := newRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/monitoring/metrics", map[string]any{
			"endpoint": "/v1/verify", "method": "POST", "response_time": 87, "status_code": 700,
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}
