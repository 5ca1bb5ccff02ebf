package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"coreid/internal/platform/tracing"
	"coreid/internal/revenue/metrics"
	"coreid/internal/revenue/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
)

const dashboardTimeout = 15 * time.Second

type Store interface {
	Overview(ctx context.Context, period models.Period) (*models.Overview, error)
	Trends(ctx context.Context, period models.Period) ([]models.Trend, error)
	Subscriptions(ctx context.Context) (*models.SubscriptionMetrics, error)
	Plans(ctx context.Context) ([]models.PlanRevenue, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	LTV(ctx context.Context) (*models.CustomerLTV, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

type Service struct {
	store    Store
	cache    Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithCache caches the dashboard for ttl.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview returns a zero overview when there is nothing to report.
func (s *Service) Overview(ctx context.Context, period models.Period) (*models.Overview, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return single(s.store.Overview(ctx, period))
}

func (s *Service) Trends(ctx context.Context, period models.Period) ([]models.Trend, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return list(s.store.Trends(ctx, period))
}

func (s *Service) Subscriptions(ctx context.Context) (*models.SubscriptionMetrics, error) {
	return single(s.store.Subscriptions(ctx))
}

// Plans adds display names to the per-plan breakdown.
func (s *Service) Plans(ctx context.Context) ([]models.PlanRevenue, error) {
	plans, err := list(s.store.Plans(ctx))
	if err != nil {
		return nil, err
	}
	named(plans)
	return plans, nil
}

func (s *Service) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return list(s.store.PaymentMethods(ctx))
}

func (s *Service) LTV(ctx context.Context) (*models.CustomerLTV, error) {
	return single(s.store.LTV(ctx))
}

// Dashboard loads every revenue section concurrently and derives the health
// score and insights from the overview and subscription metrics.
func (s *Service) Dashboard(ctx context.Context, period models.Period) (*models.Dashboard, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	key := "revenue:dashboard:" + string(period)
	var cached models.Dashboard
	if s.cached(ctx, key, &cached) {
		return &cached, nil
	}

	ctx, span := tracing.Start(ctx, "revenue", "dashboard")
	ctx, cancel := context.WithTimeout(ctx, dashboardTimeout)
	defer cancel()

	d := models.Dashboard{Period: period}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o, err := orZero(s.store.Overview(gctx, period))
		d.Overview = o
		return err
	})
	g.Go(func() error {
		m, err := orZero(s.store.Subscriptions(gctx))
		d.Subscriptions = m
		return err
	})
	g.Go(func() error {
		l, err := orZero(s.store.LTV(gctx))
		d.LTV = l
		return err
	})
	g.Go(func() (err error) {
		d.Trends, err = s.store.Trends(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		d.Plans, err = s.store.Plans(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Methods, err = s.store.PaymentMethods(gctx)
		return err
	})
	err := g.Wait()
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}

	d.Trends, d.Plans, d.Methods = orEmpty(d.Trends), orEmpty(d.Plans), orEmpty(d.Methods)
	named(d.Plans)
	d.HealthScore = models.HealthScore(d.Overview, d.Subscriptions)
	d.Insights = models.Insights(d.Overview, d.Subscriptions)
	s.metrics.SetHealthScore(d.HealthScore)
	if d.HealthScore < 50 {
		s.logger.WarnContext(ctx, "revenue health is low",
			"score", d.HealthScore,
			"success_rate", d.Overview.SuccessRate,
			"churn_rate", d.Subscriptions.ChurnRate,
		)
	}

	s.remember(ctx, key, &d)
	return &d, nil
}

func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil || s.cacheTTL <= 0 {
		return false
	}
	found, err := s.cache.GetJSON(ctx, key, dst)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "revenue cache read failed", "key", key, "error", err)
		s.metrics.IncrementCache("error")
		return false
	case !found:
		s.metrics.IncrementCache("miss")
		return false
	}
	s.metrics.IncrementCache("hit")
	return true
}

func (s *Service) remember(ctx context.Context, key string, v any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "revenue cache write failed", "key", key, "error", err)
	}
}

func checkPeriod(p models.Period) error {
	if !p.IsValid() {
		return dErrors.NewValidation("unknown period: "+string(p), map[string]string{"period": "oneof"})
	}
	return nil
}

func named(plans []models.PlanRevenue) {
	for i := range plans {
		plans[i].PlanName = models.PlanName(plans[i].PlanID)
	}
}

// orZero turns a missing row into the zero value.
func orZero[T any](v *T, err error) (T, error) {
	var zero T
	if errors.Is(err, sentinel.ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return *v, nil
}

func single[T any](v *T, err error) (*T, error) {
	out, err := orZero(v, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return &out, nil
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func list[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return orEmpty(rows), nil
}
