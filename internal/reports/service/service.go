package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,ObjectStore,AuditPublisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"coreid/internal/platform/objectstore"
	"coreid/internal/platform/tracing"
	"coreid/internal/reports/metrics"
	"coreid/internal/reports/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500

	csvContentType = "text/csv; charset=utf-8"
)

type Store interface {
	Templates(ctx context.Context, reportType models.ReportType) ([]*models.Template, error)
	CreateTemplate(ctx context.Context, in models.TemplateInput, createdBy *uuid.UUID, at time.Time) (*models.Template, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, p models.TemplatePatch, at time.Time) (*models.Template, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	Schedules(ctx context.Context) ([]*models.ScheduledReport, error)
	CreateSchedule(ctx context.Context, in models.ScheduleInput, nextRun time.Time, createdBy *uuid.UUID, at time.Time) (*models.ScheduledReport, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, p models.SchedulePatch, nextRun *time.Time, at time.Time) (*models.ScheduledReport, error)
	SetScheduleActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error

	History(ctx context.Context, limit int, templateID *uuid.UUID) ([]*models.History, error)
	Generate(ctx context.Context, templateID uuid.UUID, params json.RawMessage) (uuid.UUID, error)
	RecordHistory(ctx context.Context, e models.HistoryEntry) (uuid.UUID, error)
}

// ObjectStore keeps finished exports.
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, body io.Reader) (*objectstore.Object, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Exporter renders one data set as CSV and names the file.
type Exporter func(ctx context.Context) ([]byte, string, error)

type Service struct {
	store     Store
	objects   ObjectStore
	exporters map[models.ExportKind]Exporter
	auditor   AuditPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

// WithObjectStore uploads exports instead of returning them inline.
func WithObjectStore(o ObjectStore) Option {
	return func(s *Service) { s.objects = o }
}

func WithExporter(kind models.ExportKind, fn Exporter) Option {
	return func(s *Service) { s.exporters[kind] = fn }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		exporters: make(map[models.ExportKind]Exporter),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Templates(ctx context.Context, reportType models.ReportType) ([]*models.Template, error) {
	if reportType != "" && !reportType.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid report type: "+string(reportType))
	}
	out, err := s.store.Templates(ctx, reportType)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

func (s *Service) CreateTemplate(ctx context.Context, in models.TemplateInput) (*models.Template, error) {
	if err := validJSON(in.Filters, "filters"); err != nil {
		return nil, err
	}
	if err := validJSON(in.Visualizations, "visualizations"); err != nil {
		return nil, err
	}
	t, err := s.store.CreateTemplate(ctx, in, actorID(ctx), requestcontext.Now(ctx))
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportTemplateChanged,
		Target:  "report_template:" + t.ID.String(),
		Details: map[string]any{"change": "created", "name": t.Name, "report_type": string(t.ReportType)},
	})
	return t, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, id uuid.UUID, p models.TemplatePatch) (*models.Template, error) {
	if err := validJSON(p.Filters, "filters"); err != nil {
		return nil, err
	}
	if err := validJSON(p.Visualizations, "visualizations"); err != nil {
		return nil, err
	}
	t, err := s.store.UpdateTemplate(ctx, id, p, requestcontext.Now(ctx))
	if err != nil {
		return nil, translate(err, "report template")
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportTemplateChanged,
		Target:  "report_template:" + id.String(),
		Details: map[string]any{"change": "updated"},
	})
	return t, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteTemplate(ctx, id); err != nil {
		return translate(err, "report template")
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportTemplateChanged,
		Target:  "report_template:" + id.String(),
		Details: map[string]any{"change": "deleted"},
	})
	return nil
}

func (s *Service) Schedules(ctx context.Context) ([]*models.ScheduledReport, error) {
	out, err := s.store.Schedules(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

// CreateSchedule stores a schedule together with its first run time.
func (s *Service) CreateSchedule(ctx context.Context, in models.ScheduleInput) (*models.ScheduledReport, error) {
	now := requestcontext.Now(ctx)
	next, err := models.NextRunTime(in.ScheduleType, in.ScheduleConfig, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	}
	r, err := s.store.CreateSchedule(ctx, in, next, actorID(ctx), now)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportScheduleChanged,
		Target:  "scheduled_report:" + r.ID.String(),
		Details: map[string]any{"change": "created", "name": r.Name, "next_run_at": next},
	})
	return r, nil
}

// UpdateSchedule recomputes the next run when the schedule type or config
// changes. A config without a type is read as daily.
func (s *Service) UpdateSchedule(ctx context.Context, id uuid.UUID, p models.SchedulePatch) (*models.ScheduledReport, error) {
	now := requestcontext.Now(ctx)
	var next *time.Time
	if p.Rescheduled() {
		kind := models.ScheduleDaily
		if p.ScheduleType != nil {
			kind = *p.ScheduleType
		}
		var cfg models.ScheduleConfig
		if p.ScheduleConfig != nil {
			cfg = *p.ScheduleConfig
		}
		t, err := models.NextRunTime(kind, cfg, now)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
		}
		next = &t
	}
	r, err := s.store.UpdateSchedule(ctx, id, p, next, now)
	if err != nil {
		return nil, translate(err, "scheduled report")
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportScheduleChanged,
		Target:  "scheduled_report:" + id.String(),
		Details: map[string]any{"change": "updated"},
	})
	return r, nil
}

func (s *Service) ToggleSchedule(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.store.SetScheduleActive(ctx, id, active, requestcontext.Now(ctx)); err != nil {
		return translate(err, "scheduled report")
	}
	change := "deactivated"
	if active {
		change = "activated"
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportScheduleChanged,
		Target:  "scheduled_report:" + id.String(),
		Details: map[string]any{"change": change},
	})
	return nil
}

func (s *Service) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteSchedule(ctx, id); err != nil {
		return translate(err, "scheduled report")
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportScheduleChanged,
		Target:  "scheduled_report:" + id.String(),
		Details: map[string]any{"change": "deleted"},
	})
	return nil
}

func (s *Service) History(ctx context.Context, limit int, templateID *uuid.UUID) ([]*models.History, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	out, err := s.store.History(ctx, min(limit, maxHistoryLimit), templateID)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return out, nil
}

// Generate queues a report from a template and returns its history id.
func (s *Service) Generate(ctx context.Context, templateID uuid.UUID, params json.RawMessage) (uuid.UUID, error) {
	if err := validJSON(params, "parameters"); err != nil {
		return uuid.Nil, err
	}
	ctx, span := tracing.Start(ctx, "reports", "generate")
	id, err := s.store.Generate(ctx, templateID, params)
	tracing.End(span, err)
	if err != nil {
		return uuid.Nil, translate(err, "report template")
	}
	s.metrics.IncrementGenerated()
	s.emit(ctx, audit.Event{
		Action:  audit.ActionReportGenerated,
		Target:  "report_template:" + templateID.String(),
		Details: map[string]any{"report_id": id.String()},
	})
	return id, nil
}

// Export renders kind as CSV. With an object store the file is uploaded and
// the result carries a download URL; otherwise the bytes come back in Data.
// Either way the export is recorded in the report history.
func (s *Service) Export(ctx context.Context, kind models.ExportKind) (*models.Export, error) {
	render, ok := s.exporters[kind]
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown export: "+string(kind))
	}

	ctx, span := tracing.Start(ctx, "reports", "export")
	data, filename, err := render(ctx)
	if err != nil {
		tracing.End(span, err)
		return nil, backend.HandleError(err)
	}

	out := &models.Export{
		Kind:      kind,
		Filename:  filename,
		Size:      int64(len(data)),
		SizeLabel: models.FormatFileSize(int64(len(data))),
	}
	entry := models.HistoryEntry{
		Name:         filename,
		ReportType:   string(kind),
		ExportFormat: "csv",
		FileSize:     out.Size,
		Status:       models.HistoryCompleted,
		GeneratedBy:  actorID(ctx),
		GeneratedAt:  requestcontext.Now(ctx),
	}

	destination := "inline"
	if s.objects != nil {
		obj, err := s.objects.Put(ctx, filename, csvContentType, bytes.NewReader(data))
		if err != nil {
			tracing.End(span, err)
			entry.Status = models.HistoryFailed
			s.record(ctx, entry)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store export")
		}
		destination = "s3"
		out.URL = obj.URL
		out.ExpiresAt = &obj.ExpiresAt
		entry.FileURL = obj.URL
	} else {
		out.Data = data
	}
	tracing.End(span, nil)

	out.HistoryID = s.record(ctx, entry)
	s.metrics.ObserveExport(string(kind), destination, len(data))
	s.emit(ctx, audit.Event{
		Action: audit.ActionReportExported,
		Target: "export:" + string(kind),
		Details: map[string]any{
			"filename": filename,
			"size":     out.Size,
			"stored":   out.URL != "",
		},
	})
	return out, nil
}

// record writes a history row; a failure only loses the history entry.
func (s *Service) record(ctx context.Context, e models.HistoryEntry) *uuid.UUID {
	id, err := s.store.RecordHistory(ctx, e)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record report history", "name", e.Name, "error", err)
		return nil
	}
	return &id
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record admin action", "action", string(event.Action), "error", err)
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	admin := requestcontext.Admin(ctx)
	if admin.IsZero() || admin.Machine {
		return nil
	}
	id := admin.ID
	return &id
}

func validJSON(raw json.RawMessage, field string) error {
	if len(raw) > 0 && !json.Valid(raw) {
		return dErrors.New(dErrors.CodeValidation, field+" must be valid JSON")
	}
	return nil
}

func translate(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	}
	return backend.HandleError(err)
}
