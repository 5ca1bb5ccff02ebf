package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"coreid/internal/monitoring/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore writes api_metrics and reads the monitoring functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Record inserts a batch of request metrics in one statement. Each metric
// must carry its CreatedAt.
func (s *PostgresStore) Record(ctx context.Context, batch []models.APIMetric) error {
	if len(batch) == 0 {
		return nil
	}
	f := &backend.Filter{}
	values := make([]string, len(batch))
	for i, m := range batch {
		var user uuid.NullUUID
		if m.UserID != nil {
			user = uuid.NullUUID{UUID: *m.UserID, Valid: true}
		}
		values[i] = "(" + strings.Join([]string{
			f.Arg(m.Endpoint), f.Arg(m.Method), f.Arg(m.ResponseTimeMS), f.Arg(m.StatusCode), f.Arg(user), f.Arg(m.CreatedAt),
		}, ", ") + ")"
	}
	_, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO api_metrics (endpoint, method, response_time, status_code, user_id, created_at)
		VALUES `+strings.Join(values, ", "), f.Args()...)
	if err != nil {
		return fmt.Errorf("insert api metrics: %w", err)
	}
	return nil
}

// Summary returns sentinel.ErrNotFound when the function yields no row.
func (s *PostgresStore) Summary(ctx context.Context, period models.Period) (*models.Summary, error) {
	var sum models.Summary
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_requests, avg_response_time, error_rate, coalesce(requests_per_minute, 0)
		FROM get_api_performance_summary(time_period => $1)`, string(period),
	).Scan(&sum.TotalRequests, &sum.AvgResponseTime, &sum.ErrorRate, &sum.RequestsPerMinute)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_api_performance_summary: %w", err)
	}
	return &sum, nil
}

func (s *PostgresStore) Trends(ctx context.Context, period models.Period) ([]models.TrendPoint, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT time_bucket, avg_response_time, max_response_time, request_count
		FROM get_response_time_trends(time_period => $1)`, string(period))
	if err != nil {
		return nil, fmt.Errorf("get_response_time_trends: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.TrendPoint, error) {
		var p models.TrendPoint
		return p, r.Scan(&p.Bucket, &p.AvgResponseTime, &p.MaxResponseTime, &p.RequestCount)
	})
}

func (s *PostgresStore) Endpoints(ctx context.Context, limit int) ([]models.EndpointStat, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT endpoint, request_count, avg_response_time, max_response_time, error_count, error_rate
		FROM get_endpoint_performance(limit_count => $1)`, limit)
	if err != nil {
		return nil, fmt.Errorf("get_endpoint_performance: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.EndpointStat, error) {
		var e models.EndpointStat
		return e, r.Scan(&e.Endpoint, &e.RequestCount, &e.AvgResponseTime, &e.MaxResponseTime, &e.ErrorCount, &e.ErrorRate)
	})
}

func (s *PostgresStore) SlowEndpoints(ctx context.Context, thresholdMS int) ([]models.SlowEndpoint, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT endpoint, method, avg_response_time, max_response_time, slow_request_count
		FROM get_slow_endpoints(threshold_ms => $1)`, thresholdMS)
	if err != nil {
		return nil, fmt.Errorf("get_slow_endpoints: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.SlowEndpoint, error) {
		var e models.SlowEndpoint
		return e, r.Scan(&e.Endpoint, &e.Method, &e.AvgResponseTime, &e.MaxResponseTime, &e.SlowRequestCount)
	})
}

func (s *PostgresStore) Database(ctx context.Context) (*models.DatabaseStats, error) {
	var st models.DatabaseStats
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT database_size, total_connections, active_connections, idle_connections
		FROM get_database_performance()`,
	).Scan(&st.Size, &st.TotalConnections, &st.ActiveConnections, &st.IdleConnections)
	if err != nil {
		return nil, fmt.Errorf("get_database_performance: %w", err)
	}
	return &st, nil
}

func (s *PostgresStore) Errors(ctx context.Context) ([]models.ErrorBucket, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT status_code, error_count, percentage, sample_endpoint
		FROM get_error_distribution()`)
	if err != nil {
		return nil, fmt.Errorf("get_error_distribution: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.ErrorBucket, error) {
		var b models.ErrorBucket
		return b, r.Scan(&b.StatusCode, &b.ErrorCount, &b.Percentage, &b.SampleEndpoint)
	})
}

func collect[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
