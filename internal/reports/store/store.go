package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"coreid/internal/platform/postgres"
	"coreid/internal/reports/models"
	"coreid/pkg/backend"
	"coreid/pkg/platform/sentinel"
)

// PostgresStore keeps report_templates, scheduled_reports and report_history
// and calls the reporting functions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func jsonb(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

// Templates lists templates of one type, or all of them for an empty type.
func (s *PostgresStore) Templates(ctx context.Context, reportType models.ReportType) ([]*models.Template, error) {
	out, err := postgres.QueryJSONRows[models.Template](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(t) FROM get_report_templates(filter_type => $1) t`,
		sql.NullString{String: string(reportType), Valid: reportType != ""},
	)
	if err != nil {
		return nil, fmt.Errorf("get_report_templates: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateTemplate(ctx context.Context, in models.TemplateInput, createdBy *uuid.UUID, at time.Time) (*models.Template, error) {
	by := uuid.NullUUID{}
	if createdBy != nil {
		by = uuid.NullUUID{UUID: *createdBy, Valid: true}
	}
	t, err := postgres.QueryJSON[models.Template](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO report_templates AS t (name, description, report_type, data_sources, filters, columns,
			visualizations, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4::text[], $5::jsonb, $6::text[], $7::jsonb, true, $8, $9, $9)
		RETURNING to_jsonb(t)`,
		in.Name, in.Description, string(in.ReportType), pq.Array(in.DataSources), jsonb(in.Filters),
		pq.Array(in.Columns), jsonb(in.Visualizations), by, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert report template: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) UpdateTemplate(ctx context.Context, id uuid.UUID, p models.TemplatePatch, at time.Time) (*models.Template, error) {
	var f backend.Filter
	var sets []string
	set := func(col, placeholder string) { sets = append(sets, col+" = "+placeholder) }
	if p.Name != nil {
		set("name", f.Arg(*p.Name))
	}
	if p.Description != nil {
		set("description", f.Arg(*p.Description))
	}
	if p.ReportType != nil {
		set("report_type", f.Arg(string(*p.ReportType)))
	}
	if p.DataSources != nil {
		set("data_sources", f.Array(p.DataSources))
	}
	if p.Filters != nil {
		set("filters", f.Arg(jsonb(p.Filters))+"::jsonb")
	}
	if p.Columns != nil {
		set("columns", f.Array(p.Columns))
	}
	if p.Visualizations != nil {
		set("visualizations", f.Arg(jsonb(p.Visualizations))+"::jsonb")
	}
	if p.IsActive != nil {
		set("is_active", f.Arg(*p.IsActive))
	}
	set("updated_at", f.Arg(at))

	query := fmt.Sprintf("UPDATE report_templates t SET %s WHERE t.id = %s RETURNING to_jsonb(t)",
		strings.Join(sets, ", "), f.Arg(id))
	return postgres.QueryJSON[models.Template](ctx, postgres.ExecerFor(ctx, s.db), query, f.Args()...)
}

func (s *PostgresStore) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "report_templates", id)
}

// Schedules lists scheduled reports joined with their template names.
func (s *PostgresStore) Schedules(ctx context.Context) ([]*models.ScheduledReport, error) {
	out, err := postgres.QueryJSONRows[models.ScheduledReport](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(r) FROM get_scheduled_reports() r`)
	if err != nil {
		return nil, fmt.Errorf("get_scheduled_reports: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateSchedule(ctx context.Context, in models.ScheduleInput, nextRun time.Time, createdBy *uuid.UUID, at time.Time) (*models.ScheduledReport, error) {
	cfg, err := json.Marshal(in.ScheduleConfig)
	if err != nil {
		return nil, err
	}
	by := uuid.NullUUID{}
	if createdBy != nil {
		by = uuid.NullUUID{UUID: *createdBy, Valid: true}
	}
	r, err := postgres.QueryJSON[models.ScheduledReport](ctx, postgres.ExecerFor(ctx, s.db), `
		INSERT INTO scheduled_reports AS t (template_id, name, schedule_type, schedule_config, recipients,
			export_format, next_run_at, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, $5::text[], $6, $7, true, $8, $9, $9)
		RETURNING to_jsonb(t)`,
		in.TemplateID, in.Name, string(in.ScheduleType), string(cfg), pq.Array(in.Recipients),
		in.ExportFormat, nextRun, by, at,
	)
	if err != nil {
		return nil, fmt.Errorf("insert scheduled report: %w", err)
	}
	return r, nil
}

// UpdateSchedule applies p; nextRun is written only when non-nil.
func (s *PostgresStore) UpdateSchedule(ctx context.Context, id uuid.UUID, p models.SchedulePatch, nextRun *time.Time, at time.Time) (*models.ScheduledReport, error) {
	var f backend.Filter
	var sets []string
	set := func(col, placeholder string) { sets = append(sets, col+" = "+placeholder) }
	if p.Name != nil {
		set("name", f.Arg(*p.Name))
	}
	if p.ScheduleType != nil {
		set("schedule_type", f.Arg(string(*p.ScheduleType)))
	}
	if p.ScheduleConfig != nil {
		cfg, err := json.Marshal(p.ScheduleConfig)
		if err != nil {
			return nil, err
		}
		set("schedule_config", f.Arg(string(cfg))+"::jsonb")
	}
	if p.Recipients != nil {
		set("recipients", f.Array(p.Recipients))
	}
	if p.ExportFormat != nil {
		set("export_format", f.Arg(*p.ExportFormat))
	}
	if nextRun != nil {
		set("next_run_at", f.Arg(*nextRun))
	}
	set("updated_at", f.Arg(at))

	query := fmt.Sprintf("UPDATE scheduled_reports t SET %s WHERE t.id = %s RETURNING to_jsonb(t)",
		strings.Join(sets, ", "), f.Arg(id))
	return postgres.QueryJSON[models.ScheduledReport](ctx, postgres.ExecerFor(ctx, s.db), query, f.Args()...)
}

func (s *PostgresStore) SetScheduleActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE scheduled_reports SET is_active = $2, updated_at = $3 WHERE id = $1`, id, active, at)
	if err != nil {
		return fmt.Errorf("toggle scheduled report: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "scheduled_reports", id)
}

func (s *PostgresStore) History(ctx context.Context, limit int, templateID *uuid.UUID) ([]*models.History, error) {
	tmpl := uuid.NullUUID{}
	if templateID != nil {
		tmpl = uuid.NullUUID{UUID: *templateID, Valid: true}
	}
	out, err := postgres.QueryJSONRows[models.History](ctx, postgres.ExecerFor(ctx, s.db),
		`SELECT to_jsonb(h) FROM get_report_history(limit_count => $1, template_filter => $2) h`, limit, tmpl)
	if err != nil {
		return nil, fmt.Errorf("get_report_history: %w", err)
	}
	return out, nil
}

// Generate queues a report from a template and returns the history id. The
// function raises no_data_found for an unknown or inactive template.
func (s *PostgresStore) Generate(ctx context.Context, templateID uuid.UUID, params json.RawMessage) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT create_report_from_template(p_template_id => $1, p_parameters => $2::jsonb)`,
		templateID, jsonb(params),
	).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == "P0002") {
		return uuid.Nil, sentinel.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("create_report_from_template: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) RecordHistory(ctx context.Context, e models.HistoryEntry) (uuid.UUID, error) {
	by := uuid.NullUUID{}
	if e.GeneratedBy != nil {
		by = uuid.NullUUID{UUID: *e.GeneratedBy, Valid: true}
	}
	var id uuid.UUID
	err := postgres.ExecerFor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO report_history (name, report_type, export_format, file_url, file_size, status,
			generated_by, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		e.Name, e.ReportType, e.ExportFormat, sql.NullString{String: e.FileURL, Valid: e.FileURL != ""},
		e.FileSize, string(e.Status), by, e.GeneratedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert report history: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	res, err := postgres.ExecerFor(ctx, s.db).ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
