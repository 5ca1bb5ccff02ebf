package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"coreid/internal/revenue/handler/mocks"
	"coreid/internal/revenue/models"
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

func TestDashboardDefaultsToThirtyDays(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Dashboard(gomock.Any(), models.Period30Days).Return(&models.Dashboard{
		Period:      models.Period30Days,
		HealthScore: 72,
		Insights:    []string{"4 active subscribers"},
	}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/revenue/"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "health_score", float64(72))
	testutil.AssertJSONContains(t, rr, "insights", []any{"4 active subscribers"})
}

func TestOverviewPeriod(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Overview(gomock.Any(), models.PeriodYear).Return(&models.Overview{MRR: 90}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/revenue/overview?period=1y"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "mrr", float64(90))
}

func TestTrendsRejectsUnknownPeriod(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Trends(gomock.Any(), models.Period("all")).
		Return(nil, dErrors.NewValidation("unknown period: all", map[string]string{"period": "oneof"}))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/revenue/trends?period=all"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestPlans(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Plans(gomock.Any()).Return([]models.PlanRevenue{{PlanID: "pro", PlanName: "Pro Plan"}}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/revenue/plans"))
	testutil.AssertStatusOK(t, rr)
}

func TestStoreFailureIsInternal(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().LTV(gomock.Any()).Return(nil, dErrors.Wrap(errors.New("connection refused"), dErrors.CodeInternal, "database error"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/revenue/ltv"))
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "INTERNAL_ERROR")
}
