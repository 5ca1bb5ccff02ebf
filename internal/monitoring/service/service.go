package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"coreid/internal/monitoring/models"
	"coreid/internal/platform/tracing"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	DefaultTrendPeriod   = models.PeriodDay
	DefaultEndpointLimit = 10
	DefaultSlowThreshold = 1000
	maxEndpointLimit     = 100

	healthTimeout = 10 * time.Second
)

type Store interface {
	Record(ctx context.Context, batch []models.APIMetric) error
	Summary(ctx context.Context, period models.Period) (*models.Summary, error)
	Trends(ctx context.Context, period models.Period) ([]models.TrendPoint, error)
	Endpoints(ctx context.Context, limit int) ([]models.EndpointStat, error)
	SlowEndpoints(ctx context.Context, thresholdMS int) ([]models.SlowEndpoint, error)
	Database(ctx context.Context) (*models.DatabaseStats, error)
	Errors(ctx context.Context) ([]models.ErrorBucket, error)
}

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log records a single request metric reported by a client.
func (s *Service) Log(ctx context.Context, m models.APIMetric) error {
	m.Method = strings.ToUpper(strings.TrimSpace(m.Method))
	switch {
	case strings.TrimSpace(m.Endpoint) == "":
		return dErrors.NewValidation("endpoint is required", map[string]string{"endpoint": "required"})
	case http.StatusText(m.StatusCode) == "":
		return dErrors.NewValidation("unknown status code", map[string]string{"status_code": "http_status"})
	case m.ResponseTimeMS < 0:
		return dErrors.NewValidation("response time cannot be negative", map[string]string{"response_time": "min"})
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = requestcontext.Now(ctx)
	}
	if err := s.store.Record(ctx, []models.APIMetric{m}); err != nil {
		return backend.HandleError(err)
	}
	return nil
}

// Summary reports request volume, latency and errors for period. An empty
// window yields zeros.
func (s *Service) Summary(ctx context.Context, period models.Period) (*models.Summary, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	sum, err := s.store.Summary(ctx, period)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.Summary{}, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return sum, nil
}

func (s *Service) Trends(ctx context.Context, period models.Period) ([]models.TrendPoint, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return list(s.store.Trends(ctx, period))
}

func (s *Service) Endpoints(ctx context.Context, limit int) ([]models.EndpointStat, error) {
	if limit <= 0 {
		limit = DefaultEndpointLimit
	}
	return list(s.store.Endpoints(ctx, min(limit, maxEndpointLimit)))
}

func (s *Service) SlowEndpoints(ctx context.Context, thresholdMS int) ([]models.SlowEndpoint, error) {
	if thresholdMS <= 0 {
		thresholdMS = DefaultSlowThreshold
	}
	return list(s.store.SlowEndpoints(ctx, thresholdMS))
}

func (s *Service) Database(ctx context.Context) (*models.DatabaseStats, error) {
	st, err := s.store.Database(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return st, nil
}

func (s *Service) Errors(ctx context.Context) ([]models.ErrorBucket, error) {
	return list(s.store.Errors(ctx))
}

// Health scores the last hour and lists recommendations.
func (s *Service) Health(ctx context.Context) (*models.HealthReport, error) {
	ctx, span := tracing.Start(ctx, "monitoring", "health")
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		sum  *models.Summary
		slow []models.SlowEndpoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sum, err = s.store.Summary(gctx, models.DefaultPeriod)
		if errors.Is(err, sentinel.ErrNotFound) {
			sum, err = nil, nil
		}
		return err
	})
	g.Go(func() (err error) {
		slow, err = s.store.SlowEndpoints(gctx, DefaultSlowThreshold)
		return err
	})
	err := g.Wait()
	tracing.End(span, err)
	if err != nil {
		return nil, backend.HandleError(err)
	}

	score := models.HealthScore(sum)
	report := &models.HealthReport{
		Score:           score,
		Status:          models.StatusFor(score),
		Summary:         sum,
		SlowEndpoints:   orEmpty(slow),
		Recommendations: models.Recommendations(sum, slow),
	}
	if report.Status == models.StatusPoor || report.Status == models.StatusCritical {
		s.logger.WarnContext(ctx, "api health degraded", "score", score, "status", string(report.Status))
	}
	return report, nil
}

func checkPeriod(p models.Period) error {
	if !p.IsValid() {
		return dErrors.NewValidation("unknown period: "+string(p), map[string]string{"period": "oneof"})
	}
	return nil
}

func list[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return orEmpty(rows), nil
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
