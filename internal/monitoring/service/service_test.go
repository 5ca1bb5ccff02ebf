package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coreid/internal/monitoring/models"
	"coreid/internal/monitoring/service/mocks"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

func newService(t *testing.T) (*Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	return New(store), store
}

func TestLog(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	t.Run("stamps time and normalizes method", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Record(ctx, []models.APIMetric{{
			Endpoint: "/users", Method: "GET", ResponseTimeMS: 31, StatusCode: 200, CreatedAt: now,
		}}).Return(nil)

		require.NoError(t, svc.Log(ctx, models.APIMetric{Endpoint: "/users", Method: " get", ResponseTimeMS: 31, StatusCode: 200}))
	})

	t.Run("rejects bad samples", func(t *testing.T) {
		svc, _ := newService(t)
		assert.True(t, dErrors.IsValidation(svc.Log(ctx, models.APIMetric{Method: "GET", StatusCode: 200})))
		assert.True(t, dErrors.IsValidation(svc.Log(ctx, models.APIMetric{Endpoint: "/x", StatusCode: 999})))
		assert.True(t, dErrors.IsValidation(svc.Log(ctx, models.APIMetric{Endpoint: "/x", StatusCode: 200, ResponseTimeMS: -1})))
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty window", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Summary(ctx, models.PeriodHour).Return(nil, sentinel.ErrNotFound)
		sum, err := svc.Summary(ctx, models.PeriodHour)
		require.NoError(t, err)
		assert.Zero(t, sum.TotalRequests)
	})

	t.Run("unknown period", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Summary(ctx, "30d")
		assert.True(t, dErrors.IsValidation(err))
	})
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	store.EXPECT().Endpoints(ctx, DefaultEndpointLimit).Return(nil, nil)
	store.EXPECT().SlowEndpoints(ctx, DefaultSlowThreshold).Return(nil, nil)

	endpoints, err := svc.Endpoints(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []models.EndpointStat{}, endpoints)

	slow, err := svc.SlowEndpoints(ctx, -5)
	require.NoError(t, err)
	assert.Equal(t, []models.SlowEndpoint{}, slow)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("scores and recommends", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Summary(gomock.Any(), models.PeriodHour).
			Return(&models.Summary{TotalRequests: 600, AvgResponseTime: 640, ErrorRate: 2, RequestsPerMinute: 10}, nil)
		store.EXPECT().SlowEndpoints(gomock.Any(), DefaultSlowThreshold).
			Return([]models.SlowEndpoint{{Endpoint: "/reports/generate", Method: http.MethodPost}}, nil)

		report, err := svc.Health(ctx)
		require.NoError(t, err)
		assert.Equal(t, 75, report.Score)
		assert.Equal(t, models.StatusGood, report.Status)
		assert.Equal(t, []string{
			"Consider implementing caching for frequently accessed endpoints",
			"Optimize slow endpoints: /reports/generate",
		}, report.Recommendations)
	})

	t.Run("no summary is critical", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Summary(gomock.Any(), models.PeriodHour).Return(nil, sentinel.ErrNotFound)
		store.EXPECT().SlowEndpoints(gomock.Any(), DefaultSlowThreshold).Return(nil, nil)

		report, err := svc.Health(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.Score)
		assert.Equal(t, models.StatusCritical, report.Status)
		assert.Equal(t, []models.SlowEndpoint{}, report.SlowEndpoints)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset by peer")).AnyTimes()
		store.EXPECT().SlowEndpoints(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := svc.Health(ctx)
		require.Error(t, err)
	})
}
