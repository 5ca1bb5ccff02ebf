package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"coreid/internal/platform/tracing"
	"coreid/internal/settings/metrics"
	"coreid/internal/settings/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
	featuresCategory    = "features"
)

type Store interface {
	List(ctx context.Context, category string) ([]*models.Setting, error)
	Update(ctx context.Context, category, key string, value []byte, userID *uuid.UUID) (*models.UpdateResult, error)
	History(ctx context.Context, category string, limit int) ([]*models.HistoryEntry, error)
	Security(ctx context.Context) (*models.SecuritySettings, error)
	UpdateSecurity(ctx context.Context, s models.SecuritySettings) error
	AdminUsers(ctx context.Context) ([]*models.AdminUser, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service reads and changes system settings, the security policy and the
// admin roster.
type Service struct {
	store   Store
	auditor AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
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

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the settings of category, or every setting when empty.
func (s *Service) List(ctx context.Context, category string) ([]*models.Setting, error) {
	settings, err := s.store.List(ctx, category)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return settings, nil
}

// ByCategory groups every setting under the known categories. Settings in
// other categories are left out.
func (s *Service) ByCategory(ctx context.Context) (models.ByCategory, error) {
	settings, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(models.ByCategory, len(models.Categories))
	for _, c := range models.Categories {
		out[c] = map[string]models.SettingView{}
	}
	for _, st := range settings {
		group, ok := out[st.Category]
		if !ok {
			continue
		}
		group[st.Key] = models.SettingView{
			Value:       st.Decoded(),
			Description: st.Description,
			DataType:    st.DataType,
			IsSensitive: st.IsSensitive,
		}
	}
	return out, nil
}

// Value returns the decoded value of one setting.
func (s *Service) Value(ctx context.Context, category, key string) (any, error) {
	st, err := s.find(ctx, category, key)
	if err != nil {
		return nil, err
	}
	return st.Decoded(), nil
}

// IsFeatureEnabled reports whether features/key is true or "true". Missing
// flags are disabled.
func (s *Service) IsFeatureEnabled(ctx context.Context, key string) (bool, error) {
	v, err := s.Value(ctx, featuresCategory, key)
	if dErrors.Is(err, dErrors.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == true || v == "true", nil
}

// Update validates value against the setting's declared type and writes
// it as the calling admin. A result with Success=false becomes a
// validation error carrying the backend message.
func (s *Service) Update(ctx context.Context, change models.Change) error {
	st, err := s.find(ctx, change.Category, change.Key)
	if err != nil {
		return err
	}
	if change.Value == nil || !models.ValidValue(change.Value, st.DataType) {
		return dErrors.NewValidation("value must be a "+string(st.DataType), map[string]string{"value": string(st.DataType)})
	}
	raw, err := json.Marshal(change.Value)
	if err != nil {
		return dErrors.NewValidation("value is not valid JSON", map[string]string{"value": "json"})
	}

	ctx, span := tracing.Start(ctx, "settings", "update",
		attribute.String("category", change.Category),
		attribute.String("key", change.Key),
	)
	res, err := s.store.Update(ctx, change.Category, change.Key, raw, actorID(ctx))
	tracing.End(span, err)
	if err != nil {
		return backend.HandleError(err)
	}
	s.metrics.IncrementUpdate(change.Category, res.Success)
	if !res.Success {
		return dErrors.NewValidation(res.Message, nil)
	}

	details := map[string]any{"data_type": string(st.DataType)}
	if !st.IsSensitive {
		details["old_value"] = st.Decoded()
		details["new_value"] = change.Value
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionSettingUpdated,
		Target:  "setting:" + change.Category + "/" + change.Key,
		Details: details,
	})
	return nil
}

// UpdateMany applies changes in order and stops at the first failure. It
// returns how many were applied.
func (s *Service) UpdateMany(ctx context.Context, changes []models.Change) (int, error) {
	if len(changes) == 0 {
		return 0, dErrors.NewValidation("no settings given", map[string]string{"settings": "required"})
	}
	for i, c := range changes {
		if err := s.Update(ctx, c); err != nil {
			return i, err
		}
	}
	return len(changes), nil
}

// History returns recent changes. limit defaults to 50 and is capped at 500.
func (s *Service) History(ctx context.Context, category string, limit int) ([]*models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	entries, err := s.store.History(ctx, category, limit)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return entries, nil
}

// Security returns the stored policy, or the defaults when none exists.
func (s *Service) Security(ctx context.Context) (*models.SecuritySettings, error) {
	st, err := s.store.Security(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		d := models.DefaultSecurity()
		return &d, nil
	}
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return st, nil
}

func (s *Service) UpdateSecurity(ctx context.Context, st models.SecuritySettings) (*models.SecuritySettings, error) {
	if st.PasswordMinLength < 1 || st.SessionTimeout < 1 {
		return nil, dErrors.NewValidation("password length and session timeout must be positive", map[string]string{
			"passwordMinLength": "gte", "sessionTimeout": "gte",
		})
	}
	if err := s.store.UpdateSecurity(ctx, st); err != nil {
		return nil, backend.HandleError(err)
	}
	s.metrics.IncrementUpdate("security", true)
	s.emit(ctx, audit.Event{
		Action: audit.ActionSecuritySettingsUpdated,
		Target: "System Settings",
		Details: map[string]any{
			"maintenance_mode":    st.MaintenanceMode,
			"password_min_length": st.PasswordMinLength,
			"enforce_2fa":         st.Enforce2FA,
			"session_timeout":     st.SessionTimeout,
		},
	})
	return &st, nil
}

func (s *Service) AdminUsers(ctx context.Context) ([]*models.AdminUser, error) {
	admins, err := s.store.AdminUsers(ctx)
	if err != nil {
		return nil, backend.HandleError(err)
	}
	return admins, nil
}

func (s *Service) find(ctx context.Context, category, key string) (*models.Setting, error) {
	if category == "" || key == "" {
		return nil, dErrors.NewValidation("category and key are required", map[string]string{
			"category": "required", "key": "required",
		})
	}
	settings, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}
	for _, st := range settings {
		if st.Key == key {
			return st, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "setting not found: "+category+"/"+key)
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
	return &admin.ID
}
