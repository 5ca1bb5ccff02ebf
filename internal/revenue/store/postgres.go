package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coreid/internal/platform/postgres"
	"coreid/internal/revenue/models"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore calls the revenue reporting functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Overview(ctx context.Context, period models.Period) (*models.Overview, error) {
	var o models.Overview
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_revenue, mrr, arr, total_payments, successful_payments,
		       failed_payments, success_rate, avg_transaction_value
		FROM get_revenue_overview(time_period => $1)`, string(period),
	).Scan(&o.TotalRevenue, &o.MRR, &o.ARR, &o.TotalPayments, &o.SuccessfulPayments,
		&o.FailedPayments, &o.SuccessRate, &o.AvgTransactionValue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_revenue_overview: %w", err)
	}
	return &o, nil
}

func (s *PostgresStore) Trends(ctx context.Context, period models.Period) ([]models.Trend, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT period_date, revenue, payment_count, avg_transaction
		FROM get_revenue_trends(time_period => $1)`, string(period))
	if err != nil {
		return nil, fmt.Errorf("get_revenue_trends: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.Trend, error) {
		var t models.Trend
		return t, r.Scan(&t.PeriodDate, &t.Revenue, &t.PaymentCount, &t.AvgTransaction)
	})
}

func (s *PostgresStore) Subscriptions(ctx context.Context) (*models.SubscriptionMetrics, error) {
	var m models.SubscriptionMetrics
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_subscriptions, active_subscriptions, canceled_subscriptions,
		       trialing_subscriptions, churn_rate, new_this_month, canceled_this_month
		FROM get_subscription_metrics()`,
	).Scan(&m.TotalSubscriptions, &m.ActiveSubscriptions, &m.CanceledSubscriptions,
		&m.TrialingSubscriptions, &m.ChurnRate, &m.NewThisMonth, &m.CanceledThisMonth)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_subscription_metrics: %w", err)
	}
	return &m, nil
}

func (s *PostgresStore) Plans(ctx context.Context) ([]models.PlanRevenue, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT plan_id, subscription_count, total_revenue, mrr, percentage
		FROM get_revenue_by_plan()`)
	if err != nil {
		return nil, fmt.Errorf("get_revenue_by_plan: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.PlanRevenue, error) {
		var p models.PlanRevenue
		return p, r.Scan(&p.PlanID, &p.SubscriptionCount, &p.TotalRevenue, &p.MRR, &p.Percentage)
	})
}

func (s *PostgresStore) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT payment_method, payment_count, total_amount, success_rate
		FROM get_payment_methods()`)
	if err != nil {
		return nil, fmt.Errorf("get_payment_methods: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.PaymentMethod, error) {
		var m models.PaymentMethod
		return m, r.Scan(&m.PaymentMethod, &m.PaymentCount, &m.TotalAmount, &m.SuccessRate)
	})
}

func (s *PostgresStore) LTV(ctx context.Context) (*models.CustomerLTV, error) {
	var l models.CustomerLTV
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT avg_ltv, avg_subscription_length_days, avg_revenue_per_customer
		FROM get_customer_ltv()`,
	).Scan(&l.AvgLTV, &l.AvgSubscriptionLengthDays, &l.AvgRevenuePerCustomer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_customer_ltv: %w", err)
	}
	return &l, nil
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
