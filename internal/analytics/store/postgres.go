package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coreid/internal/analytics/models"
	"coreid/internal/platform/postgres"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore calls the analytics and geographic reporting functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) UserGrowth(ctx context.Context, period models.Period) ([]models.GrowthPoint, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT date, count, cumulative FROM get_user_growth_stats(time_period => $1)`, string(period))
	if err != nil {
		return nil, fmt.Errorf("get_user_growth_stats: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.GrowthPoint, error) {
		var g models.GrowthPoint
		return g, r.Scan(&g.Date, &g.Count, &g.Cumulative)
	})
}

func (s *PostgresStore) UserTypes(ctx context.Context) ([]models.TypeShare, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT type, count, coalesce(percentage, 0) FROM get_user_type_breakdown()`)
	if err != nil {
		return nil, fmt.Errorf("get_user_type_breakdown: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.TypeShare, error) {
		var t models.TypeShare
		return t, r.Scan(&t.Type, &t.Count, &t.Percentage)
	})
}

func (s *PostgresStore) Funnel(ctx context.Context) ([]models.FunnelStage, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx,
		`SELECT stage, count, coalesce(percentage, 0), coalesce(dropoff, 0) FROM get_pin_activation_funnel()`)
	if err != nil {
		return nil, fmt.Errorf("get_pin_activation_funnel: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.FunnelStage, error) {
		var f models.FunnelStage
		return f, r.Scan(&f.Stage, &f.Count, &f.Percentage, &f.Dropoff)
	})
}

func (s *PostgresStore) Countries(ctx context.Context) ([]models.CountryStat, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT country, user_count, coalesce(percentage, 0), verified_count, business_count
		FROM get_users_by_country()`)
	if err != nil {
		return nil, fmt.Errorf("get_users_by_country: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.CountryStat, error) {
		var c models.CountryStat
		return c, r.Scan(&c.Country, &c.UserCount, &c.Percentage, &c.VerifiedCount, &c.BusinessCount)
	})
}

// Regions lists regions, optionally only those of country.
func (s *PostgresStore) Regions(ctx context.Context, country string) ([]models.RegionStat, error) {
	var filter sql.NullString
	if country != "" {
		filter = sql.NullString{String: country, Valid: true}
	}
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT coalesce(country, ''), region, user_count, coalesce(percentage, 0)
		FROM get_users_by_region(country_filter => $1)`, filter)
	if err != nil {
		return nil, fmt.Errorf("get_users_by_region: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.RegionStat, error) {
		var g models.RegionStat
		return g, r.Scan(&g.Country, &g.Region, &g.UserCount, &g.Percentage)
	})
}

func (s *PostgresStore) Cities(ctx context.Context, limit int) ([]models.CityStat, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT city, coalesce(country, ''), user_count, coalesce(percentage, 0)
		FROM get_users_by_city(limit_count => $1)`, limit)
	if err != nil {
		return nil, fmt.Errorf("get_users_by_city: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.CityStat, error) {
		var c models.CityStat
		return c, r.Scan(&c.City, &c.Country, &c.UserCount, &c.Percentage)
	})
}

func (s *PostgresStore) Demographics(ctx context.Context) ([]models.Demographic, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT metric_name, metric_value, user_count, coalesce(percentage, 0)
		FROM get_demographic_breakdown()`)
	if err != nil {
		return nil, fmt.Errorf("get_demographic_breakdown: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.Demographic, error) {
		var d models.Demographic
		return d, r.Scan(&d.Metric, &d.Value, &d.UserCount, &d.Percentage)
	})
}

func (s *PostgresStore) CountryGrowth(ctx context.Context, period models.Period) ([]models.CountryGrowth, error) {
	rows, err := postgres.ExecerFor(ctx, s.db).QueryContext(ctx, `
		SELECT country, new_users, growth_rate, total_users
		FROM get_geographic_growth(time_period => $1)`, string(period))
	if err != nil {
		return nil, fmt.Errorf("get_geographic_growth: %w", err)
	}
	return collect(rows, func(r *sql.Rows) (models.CountryGrowth, error) {
		var g models.CountryGrowth
		return g, r.Scan(&g.Country, &g.NewUsers, &g.GrowthRate, &g.TotalUsers)
	})
}

func (s *PostgresStore) Summary(ctx context.Context) (*models.GeoSummary, error) {
	var (
		sum models.GeoSummary
		top sql.NullString
	)
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		SELECT total_countries, total_regions, total_cities, top_country,
		       top_country_users, top_country_percentage
		FROM get_geographic_summary()`,
	).Scan(&sum.TotalCountries, &sum.TotalRegions, &sum.TotalCities, &top,
		&sum.TopCountryUsers, &sum.TopCountryPercentage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_geographic_summary: %w", err)
	}
	if top.Valid {
		sum.TopCountry = &top.String
	}
	return &sum, nil
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
