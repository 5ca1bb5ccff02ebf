package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coreid/internal/revenue/metrics"
	"coreid/internal/revenue/models"
	"coreid/internal/revenue/service/mocks"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
)

func newService(t *testing.T, opts ...Option) (*Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(store, opts...), store
}

func TestOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("no payments yet", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Overview(ctx, models.Period90Days).Return(nil, sentinel.ErrNotFound)

		o, err := svc.Overview(ctx, models.Period90Days)
		require.NoError(t, err)
		assert.Equal(t, &models.Overview{}, o)
	})

	t.Run("unknown period", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Overview(ctx, "all")
		assert.True(t, dErrors.IsValidation(err))
	})
}

func TestPlansAreNamed(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	store.EXPECT().Plans(ctx).Return([]models.PlanRevenue{{PlanID: "pro"}, {PlanID: "legacy"}}, nil)

	plans, err := svc.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pro Plan", plans[0].PlanName)
	assert.Equal(t, "legacy", plans[1].PlanName)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles sections and scores", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.New(reg)
		svc, store := newService(t, WithMetrics(m))
		store.EXPECT().Overview(gomock.Any(), models.Period30Days).
			Return(&models.Overview{MRR: 500, ARR: 6000, SuccessRate: 100}, nil)
		store.EXPECT().Subscriptions(gomock.Any()).
			Return(&models.SubscriptionMetrics{ActiveSubscriptions: 9, NewThisMonth: 2}, nil)
		store.EXPECT().LTV(gomock.Any()).Return(nil, sentinel.ErrNotFound)
		store.EXPECT().Trends(gomock.Any(), models.Period30Days).Return(nil, nil)
		store.EXPECT().Plans(gomock.Any()).Return([]models.PlanRevenue{{PlanID: "basic"}}, nil)
		store.EXPECT().PaymentMethods(gomock.Any()).Return(nil, nil)

		d, err := svc.Dashboard(ctx, models.Period30Days)
		require.NoError(t, err)
		// 30 success + 30 churn + 20 growth + 5 for 9 subscribers
		assert.Equal(t, 85, d.HealthScore)
		assert.Equal(t, []string{
			"Monthly Recurring Revenue: $500",
			"Annual Run Rate: $6,000",
			"Excellent payment success rate: 100%",
			"Net subscription growth: +2 this month",
			"9 active subscribers",
		}, d.Insights)
		assert.Equal(t, "Basic Plan", d.Plans[0].PlanName)
		assert.Equal(t, []models.Trend{}, d.Trends)
		assert.Equal(t, []models.PaymentMethod{}, d.Methods)
		assert.Zero(t, d.LTV)
		assert.Equal(t, 85.0, testutil.ToFloat64(m.HealthScore))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).AnyTimes()
		store.EXPECT().Subscriptions(gomock.Any()).Return(&models.SubscriptionMetrics{}, nil).AnyTimes()
		store.EXPECT().LTV(gomock.Any()).Return(&models.CustomerLTV{}, nil).AnyTimes()
		store.EXPECT().Trends(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		store.EXPECT().Plans(gomock.Any()).Return(nil, nil).AnyTimes()
		store.EXPECT().PaymentMethods(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := svc.Dashboard(ctx, models.Period7Days)
		require.Error(t, err)
		_, ok := dErrors.As(err)
		assert.True(t, ok)
	})

	t.Run("served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)
		svc, _ := newService(t, WithCache(cache, time.Minute))
		cache.EXPECT().GetJSON(gomock.Any(), "revenue:dashboard:1y", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
				dst.(*models.Dashboard).HealthScore = 61
				return true, nil
			})

		d, err := svc.Dashboard(ctx, models.PeriodYear)
		require.NoError(t, err)
		assert.Equal(t, 61, d.HealthScore)
	})

	t.Run("cache miss stores the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)
		svc, store := newService(t, WithCache(cache, time.Minute))
		cache.EXPECT().GetJSON(gomock.Any(), "revenue:dashboard:7d", gomock.Any()).Return(false, nil)
		store.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(&models.Overview{}, nil)
		store.EXPECT().Subscriptions(gomock.Any()).Return(&models.SubscriptionMetrics{}, nil)
		store.EXPECT().LTV(gomock.Any()).Return(&models.CustomerLTV{}, nil)
		store.EXPECT().Trends(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Plans(gomock.Any()).Return(nil, nil)
		store.EXPECT().PaymentMethods(gomock.Any()).Return(nil, nil)
		cache.EXPECT().SetJSON(gomock.Any(), "revenue:dashboard:7d", gomock.Any(), time.Minute).Return(nil)

		_, err := svc.Dashboard(ctx, models.Period7Days)
		require.NoError(t, err)
	})
}
