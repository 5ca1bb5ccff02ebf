package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"coreid/internal/settings/metrics"
	"coreid/internal/settings/models"
	"coreid/internal/settings/service/mocks"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/testutil"
)

type SettingsServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *mocks.MockStore
	auditor *mocks.MockAuditPublisher
	service *Service
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}

func (s *SettingsServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = testutil.AdminContext()
	s.store = mocks.NewMockStore(ctrl)
	s.auditor = mocks.NewMockAuditPublisher(ctrl)
	s.service = New(s.store,
		WithAuditPublisher(s.auditor),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
}

func setting(category, key, raw string, t models.DataType) *models.Setting {
	return &models.Setting{ID: uuid.New(), Category: category, Key: key, Value: json.RawMessage(raw), DataType: t}
}

func (s *SettingsServiceSuite) TestByCategoryGroupsAndDecodes() {
	s.store.EXPECT().List(gomock.Any(), "").Return([]*models.Setting{
		setting("general", "site_name", `"CoreID"`, models.TypeString),
		setting("features", "beta", `"true"`, models.TypeBoolean),
		setting("email", "smtp", `"{\"host\":\"mail\"}"`, models.TypeJSON),
		setting("legacy", "old", `1`, models.TypeNumber),
	}, nil)

	got, err := s.service.ByCategory(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 6)
	s.Equal("CoreID", got["general"]["site_name"].Value)
	s.Equal(true, got["features"]["beta"].Value)
	s.Equal(map[string]any{"host": "mail"}, got["email"]["smtp"].Value)
	s.Empty(got["api"])
	s.NotContains(got, "legacy")
}

func (s *SettingsServiceSuite) TestUpdateValidatesDataType() {
	s.store.EXPECT().List(gomock.Any(), "security").Return([]*models.Setting{
		setting("security", "session_timeout", `30`, models.TypeNumber),
	}, nil)

	err := s.service.Update(s.ctx, models.Change{Category: "security", Key: "session_timeout", Value: "thirty"})
	s.True(dErrors.IsValidation(err))
}

func (s *SettingsServiceSuite) TestUpdateUnknownKey() {
	s.store.EXPECT().List(gomock.Any(), "general").Return(nil, nil)

	err := s.service.Update(s.ctx, models.Change{Category: "general", Key: "missing", Value: "x"})
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *SettingsServiceSuite) TestUpdateWritesAsCallingAdmin() {
	s.store.EXPECT().List(gomock.Any(), "security").Return([]*models.Setting{
		setting("security", "session_timeout", `30`, models.TypeNumber),
	}, nil)
	s.store.EXPECT().Update(gomock.Any(), "security", "session_timeout", []byte(`45`), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ []byte, by *uuid.UUID) (*models.UpdateResult, error) {
			s.Require().NotNil(by)
			s.Equal(testutil.TestAdmin.ID, *by)
			return &models.UpdateResult{Success: true, Message: "Setting updated"}, nil
		})
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(audit.ActionSettingUpdated, e.Action)
		s.Equal("setting:security/session_timeout", e.Target)
		s.Equal(float64(30), e.Details["old_value"])
		s.Equal(float64(45), e.Details["new_value"])
		return nil
	})

	s.NoError(s.service.Update(s.ctx, models.Change{Category: "security", Key: "session_timeout", Value: float64(45)}))
}

func (s *SettingsServiceSuite) TestUpdateSensitiveValueNotAudited() {
	secret := setting("api", "webhook_secret", `"old"`, models.TypeString)
	secret.IsSensitive = true
	s.store.EXPECT().List(gomock.Any(), "api").Return([]*models.Setting{secret}, nil)
	s.store.EXPECT().Update(gomock.Any(), "api", "webhook_secret", []byte(`"new"`), gomock.Any()).
		Return(&models.UpdateResult{Success: true}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.NotContains(e.Details, "old_value")
		s.NotContains(e.Details, "new_value")
		return nil
	})

	s.NoError(s.service.Update(s.ctx, models.Change{Category: "api", Key: "webhook_secret", Value: "new"}))
}

func (s *SettingsServiceSuite) TestUpdateDeclinedByBackend() {
	s.store.EXPECT().List(gomock.Any(), "general").Return([]*models.Setting{
		setting("general", "site_name", `"CoreID"`, models.TypeString),
	}, nil)
	s.store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.UpdateResult{Success: false, Message: "Setting is read-only"}, nil)

	err := s.service.Update(s.ctx, models.Change{Category: "general", Key: "site_name", Value: "X"})
	s.Require().True(dErrors.IsValidation(err))
	de, _ := dErrors.As(err)
	s.Equal("Setting is read-only", de.Message)
}

func (s *SettingsServiceSuite) TestUpdateManyStopsAtFirstFailure() {
	s.store.EXPECT().List(gomock.Any(), "general").Return([]*models.Setting{
		setting("general", "site_name", `"CoreID"`, models.TypeString),
	}, nil).Times(2)
	s.store.EXPECT().Update(gomock.Any(), "general", "site_name", gomock.Any(), gomock.Any()).
		Return(&models.UpdateResult{Success: true}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	n, err := s.service.UpdateMany(s.ctx, []models.Change{
		{Category: "general", Key: "site_name", Value: "A"},
		{Category: "general", Key: "missing", Value: "B"},
		{Category: "general", Key: "site_name", Value: "C"},
	})
	s.Equal(1, n)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *SettingsServiceSuite) TestIsFeatureEnabled() {
	s.store.EXPECT().List(gomock.Any(), "features").Return([]*models.Setting{
		setting("features", "beta", `true`, models.TypeBoolean),
		setting("features", "legacy", `"true"`, models.TypeString),
		setting("features", "off", `false`, models.TypeBoolean),
	}, nil).Times(4)

	for key, want := range map[string]bool{"beta": true, "legacy": true, "off": false, "absent": false} {
		got, err := s.service.IsFeatureEnabled(s.ctx, key)
		s.Require().NoError(err)
		s.Equal(want, got, key)
	}
}

func (s *SettingsServiceSuite) TestIsFeatureEnabledSurfacesBackendErrors() {
	s.store.EXPECT().List(gomock.Any(), "features").Return(nil, errors.New("boom"))

	_, err := s.service.IsFeatureEnabled(s.ctx, "beta")
	s.Error(err)
}

func (s *SettingsServiceSuite) TestHistoryLimits() {
	s.store.EXPECT().History(gomock.Any(), "", 50).Return(nil, nil)
	s.store.EXPECT().History(gomock.Any(), "security", 500).Return(nil, nil)

	_, err := s.service.History(s.ctx, "", 0)
	s.NoError(err)
	_, err = s.service.History(s.ctx, "security", 10000)
	s.NoError(err)
}

func (s *SettingsServiceSuite) TestSecurityDefaultsWhenMissing() {
	s.store.EXPECT().Security(gomock.Any()).Return(nil, sentinel.ErrNotFound)

	got, err := s.service.Security(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DefaultSecurity(), *got)
}

func (s *SettingsServiceSuite) TestUpdateSecurityAudits() {
	in := models.DefaultSecurity()
	in.MaintenanceMode = true
	s.store.EXPECT().UpdateSecurity(gomock.Any(), in).Return(nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(audit.ActionSecuritySettingsUpdated, e.Action)
		s.Equal("System Settings", e.Target)
		s.Equal(true, e.Details["maintenance_mode"])
		return nil
	})

	got, err := s.service.UpdateSecurity(s.ctx, in)
	s.Require().NoError(err)
	s.True(got.MaintenanceMode)
}

func (s *SettingsServiceSuite) TestAdminUsersWrapsErrors() {
	s.store.EXPECT().AdminUsers(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.service.AdminUsers(s.ctx)
	s.True(dErrors.Is(err, dErrors.CodeUnknown))
}
