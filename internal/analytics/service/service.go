package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"coreid/internal/analytics/metrics"
	"coreid/internal/analytics/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
)

const (
	DefaultTopCountries = 10
	DefaultCityLimit    = 20
	maxLimit            = 100

	overviewTimeout = 15 * time.Second
)

type Store interface {
	UserGrowth(ctx context.Context, period models.Period) ([]models.GrowthPoint, error)
	UserTypes(ctx context.Context) ([]models.TypeShare, error)
	Funnel(ctx context.Context) ([]models.FunnelStage, error)
	Countries(ctx context.Context) ([]models.CountryStat, error)
	Regions(ctx context.Context, country string) ([]models.RegionStat, error)
	Cities(ctx context.Context, limit int) ([]models.CityStat, error)
	Demographics(ctx context.Context) ([]models.Demographic, error)
	CountryGrowth(ctx context.Context, period models.Period) ([]models.CountryGrowth, error)
	Summary(ctx context.Context) (*models.GeoSummary, error)
}

// Cache holds computed overviews between requests.
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

// WithCache caches the overview pages for ttl.
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

func (s *Service) UserGrowth(ctx context.Context, period models.Period) ([]models.GrowthPoint, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return list(s.store.UserGrowth(ctx, period))
}

func (s *Service) UserTypes(ctx context.Context) ([]models.TypeShare, error) {
	return list(s.store.UserTypes(ctx))
}

func (s *Service) Funnel(ctx context.Context) ([]models.FunnelStage, error) {
	return list(s.store.Funnel(ctx))
}

// Overview loads growth, user types and the funnel concurrently. GrowthRate
// compares the user base at the end of the period with the base before it.
func (s *Service) Overview(ctx context.Context, period models.Period) (*models.Overview, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	key := "analytics:overview:" + string(period)
	var cached models.Overview
	if s.cached(ctx, "analytics", key, &cached) {
		return &cached, nil
	}

	ctx, span := tracing.Start(ctx, "analytics", "overview")
	ctx, cancel := context.WithTimeout(ctx, overviewTimeout)
	defer cancel()

	o := models.Overview{Period: period}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		o.Growth, err = s.store.UserGrowth(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		o.UserTypes, err = s.store.UserTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		o.Funnel, err = s.store.Funnel(gctx)
		return err
	})
	err := g.Wait()
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}

	o.Growth, o.UserTypes, o.Funnel = orEmpty(o.Growth), orEmpty(o.UserTypes), orEmpty(o.Funnel)
	for _, p := range o.Growth {
		o.NewUsers += p.Count
	}
	for _, t := range o.UserTypes {
		o.TotalUsers += t.Count
	}
	o.GrowthRate = models.GrowthRate(o.TotalUsers, o.TotalUsers-o.NewUsers)

	s.remember(ctx, key, &o)
	return &o, nil
}

func (s *Service) Countries(ctx context.Context) ([]models.CountryStat, error) {
	return list(s.store.Countries(ctx))
}

// TopCountries returns the limit largest countries; limit defaults to
// DefaultTopCountries.
func (s *Service) TopCountries(ctx context.Context, limit int) ([]models.CountryStat, error) {
	rows, err := s.store.Countries(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	limit = clamp(limit, DefaultTopCountries)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return orEmpty(rows), nil
}

func (s *Service) Regions(ctx context.Context, country string) ([]models.RegionStat, error) {
	return list(s.store.Regions(ctx, country))
}

func (s *Service) Cities(ctx context.Context, limit int) ([]models.CityStat, error) {
	return list(s.store.Cities(ctx, clamp(limit, DefaultCityLimit)))
}

func (s *Service) Demographics(ctx context.Context) (map[string][]models.Demographic, error) {
	rows, err := s.store.Demographics(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return models.GroupDemographics(rows), nil
}

func (s *Service) CountryGrowth(ctx context.Context, period models.Period) ([]models.CountryGrowth, error) {
	if !period.IsGeographic() {
		return nil, dErrors.NewValidation("unknown growth period: "+string(period), map[string]string{"period": "oneof"})
	}
	return list(s.store.CountryGrowth(ctx, period))
}

func (s *Service) Summary(ctx context.Context) (*models.GeoSummary, error) {
	sum, err := s.store.Summary(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.GeoSummary{}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return sum, nil
}

// CountryMap keys user counts by country.
func (s *Service) CountryMap(ctx context.Context) (map[string]int, error) {
	rows, err := s.store.Countries(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return models.CountryMap(rows), nil
}

// GeoOverview assembles the geographic page: summary, top countries,
// growth, demographics, a diversity score and generated insights.
func (s *Service) GeoOverview(ctx context.Context, period models.Period) (*models.GeoOverview, error) {
	if !period.IsGeographic() {
		return nil, dErrors.NewValidation("unknown growth period: "+string(period), map[string]string{"period": "oneof"})
	}
	key := "geographic:overview:" + string(period)
	var cached models.GeoOverview
	if s.cached(ctx, "geographic", key, &cached) {
		return &cached, nil
	}

	ctx, span := tracing.Start(ctx, "analytics", "geo_overview")
	ctx, cancel := context.WithTimeout(ctx, overviewTimeout)
	defer cancel()

	var (
		countries    []models.CountryStat
		demographics []models.Demographic
		o            = models.GeoOverview{Period: period}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		o.Summary, err = s.store.Summary(gctx)
		if errors.Is(err, sentinel.ErrNotFound) {
			o.Summary, err = &models.GeoSummary{}, nil
		}
		return err
	})
	g.Go(func() (err error) {
		countries, err = s.store.Countries(gctx)
		return err
	})
	g.Go(func() (err error) {
		o.Growth, err = s.store.CountryGrowth(gctx, period)
		return err
	})
	g.Go(func() (err error) {
		demographics, err = s.store.Demographics(gctx)
		return err
	})
	err := g.Wait()
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}

	o.Growth = orEmpty(o.Growth)
	o.DiversityScore = models.DiversityScore(countries)
	o.Insights = models.GeoInsights(countries, o.Growth)
	o.Demographics = models.GroupDemographics(demographics)
	o.TopCountries = orEmpty(countries[:min(len(countries), DefaultTopCountries)])

	s.remember(ctx, key, &o)
	return &o, nil
}

func (s *Service) cached(ctx context.Context, page, key string, dst any) bool {
	if s.cache == nil || s.cacheTTL <= 0 {
		return false
	}
	found, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.logger.WarnContext(ctx, "analytics cache read failed", "key", key, "error", err)
		s.metrics.IncrementCache(page, "error")
		return false
	}
	if !found {
		s.metrics.IncrementCache(page, "miss")
		return false
	}
	s.metrics.IncrementCache(page, "hit")
	return true
}

func (s *Service) remember(ctx context.Context, key string, v any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "analytics cache write failed", "key", key, "error", err)
	}
}

func checkPeriod(p models.Period) error {
	if !p.IsValid() {
		return dErrors.NewValidation("unknown period: "+string(p), map[string]string{"period": "oneof"})
	}
	return nil
}

func clamp(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
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
