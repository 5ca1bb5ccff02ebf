package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"coreid/internal/dashboard/metrics"
	"coreid/internal/dashboard/models"
	"coreid/internal/dashboard/store"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	"coreid/pkg/requestcontext"
)

const (
	statsCacheKey = "dashboard:stats"

	auditFeedSize       = 10
	endorsementFeedSize = 5
	activityFeedSize    = 10

	statsTimeout = 10 * time.Second
)

var (
	professionalTypes = []string{"professional"}
	partnerTypes      = []string{"employer"}
	verifiedTypes     = []string{"professional", "employer", "business"}
)

type Store interface {
	CountProfiles(ctx context.Context, q models.ProfileCount) (int, error)
	CountRows(ctx context.Context, table string, since *time.Time) (int, error)
	RecentAuditEvents(ctx context.Context, limit int) ([]models.AuditEvent, error)
	RecentEndorsements(ctx context.Context, limit int) ([]models.EndorsementEvent, error)
	Ping(ctx context.Context) (time.Duration, error)
}

// Cache holds computed stats between requests.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Latency(ctx context.Context) (time.Duration, error)
}

// Dependency is a downstream guarded by a circuit breaker.
type Dependency interface {
	Healthy() bool
}

type Service struct {
	store    Store
	cache    Cache
	cacheTTL time.Duration
	deps     map[string]Dependency
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

// WithCache caches stats for ttl. A zero ttl keeps the cache for health
// reporting only.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithDependency reports d under name in Health.
func WithDependency(name string, d Dependency) Option {
	return func(s *Service) {
		if s.deps == nil {
			s.deps = make(map[string]Dependency)
		}
		s.deps[name] = d
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats counts users, partners, signups and activity concurrently. The
// first failing count cancels the rest.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	if st, ok := s.cachedStats(ctx); ok {
		return st, nil
	}

	now := requestcontext.Now(ctx).UTC()
	dayAgo := now.Add(-24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	ctx, span := tracing.Start(ctx, "dashboard", "stats")
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	var c models.Counts
	g, gctx := errgroup.WithContext(ctx)
	profiles := func(dst *int, q models.ProfileCount) {
		g.Go(func() error {
			n, err := s.store.CountProfiles(gctx, q)
			*dst = n
			return err
		})
	}
	rows := func(dst *int, table string, since *time.Time) {
		g.Go(func() error {
			n, err := s.store.CountRows(gctx, table, since)
			*dst = n
			return err
		})
	}
	profiles(&c.TotalUsers, models.ProfileCount{})
	profiles(&c.ActiveProfessionals, models.ProfileCount{IdentityTypes: professionalTypes, ExcludeSuspended: true})
	profiles(&c.Partners, models.ProfileCount{IdentityTypes: partnerTypes})
	profiles(&c.DailySignups, models.ProfileCount{CreatedSince: &dayAgo})
	profiles(&c.VerifiedProfiles, models.ProfileCount{IdentityTypes: verifiedTypes})
	rows(&c.EndorsementsMonth, store.TableEndorsements, &monthStart)
	rows(&c.APIKeys, store.TableAPIKeys, nil)
	rows(&c.PINs, store.TableProfessionalPINs, nil)

	err := g.Wait()
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}

	st := c.Stats()
	s.storeStats(ctx, &st)
	return &st, nil
}

func (s *Service) cachedStats(ctx context.Context) (*models.Stats, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	var st models.Stats
	found, err := s.cache.GetJSON(ctx, statsCacheKey, &st)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard cache read failed", "error", err)
		s.metrics.IncrementCache("error")
		return nil, false
	}
	if !found {
		s.metrics.IncrementCache("miss")
		return nil, false
	}
	s.metrics.IncrementCache("hit")
	return &st, true
}

func (s *Service) storeStats(ctx context.Context, st *models.Stats) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.SetJSON(ctx, statsCacheKey, st, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "dashboard cache write failed", "error", err)
	}
}

// RecentActivity merges the latest sign-up events and endorsements into one
// feed, newest first.
func (s *Service) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	var (
		events       []models.AuditEvent
		endorsements []models.EndorsementEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.store.RecentAuditEvents(gctx, auditFeedSize)
		return err
	})
	g.Go(func() error {
		var err error
		endorsements, err = s.store.RecentEndorsements(gctx, endorsementFeedSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, backend.HandleError(err)
	}

	feed := make([]models.Activity, 0, len(events)+len(endorsements))
	for _, e := range events {
		feed = append(feed, e.Activity())
	}
	for _, e := range endorsements {
		feed = append(feed, e.Activity())
	}
	slices.SortStableFunc(feed, func(a, b models.Activity) int {
		return b.Time.Compare(a.Time)
	})
	if len(feed) > activityFeedSize {
		feed = feed[:activityFeedSize]
	}
	return feed, nil
}

// Health pings the database and, when configured, the cache. It never
// fails; problems show up in the statuses.
func (s *Service) Health(ctx context.Context) *models.Health {
	h := &models.Health{CheckedAt: requestcontext.Now(ctx)}

	latency, err := s.store.Ping(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "database health check failed", "error", err)
		h.APIStatus, h.DBStatus = models.APIDegraded, models.DBIssue
	} else {
		s.metrics.ObserveDBLatency(latency)
		h.APIStatus, h.DBStatus = models.APIOperational, models.DBHealthy
		h.LatencyMS = latency.Milliseconds()
		h.Uptime = 100
	}

	if s.cache != nil {
		h.Cache = &models.ComponentHealth{Status: models.DBHealthy}
		d, err := s.cache.Latency(ctx)
		if err != nil {
			h.Cache.Status, h.Cache.Error = models.DBIssue, err.Error()
		} else {
			h.Cache.LatencyMS = d.Milliseconds()
		}
	}

	if len(s.deps) > 0 {
		h.Dependencies = make(map[string]models.ComponentHealth, len(s.deps))
		for name, d := range s.deps {
			c := models.ComponentHealth{Status: models.DBHealthy}
			if !d.Healthy() {
				c.Status, c.Error = models.DBIssue, models.CircuitOpen
				h.APIStatus = models.APIDegraded
				s.logger.WarnContext(ctx, "dependency unhealthy", "dependency", name)
			}
			h.Dependencies[name] = c
		}
	}
	return h
}
