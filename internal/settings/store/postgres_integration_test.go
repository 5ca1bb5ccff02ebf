//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coreid/internal/settings/models"
	"coreid/internal/settings/store"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"settings_history", "system_settings", "security_settings", "admin_users", "profiles")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestUpdateWritesHistory() {
	ctx := context.Background()
	_, err := s.postgres.DB.ExecContext(ctx, `
		INSERT INTO system_settings (category, key, value, data_type)
		VALUES ('general', 'site_name', '"CoreID"', 'string'), ('email', 'from', '"no-reply@coreid.app"', 'string')`)
	s.Require().NoError(err)

	general, err := s.store.List(ctx, "general")
	s.Require().NoError(err)
	s.Require().Len(general, 1)

	by := uuid.New()
	res, err := s.store.Update(ctx, "general", "site_name", []byte(`"GidiPIN"`), &by)
	s.Require().NoError(err)
	s.True(res.Success)

	missing, err := s.store.Update(ctx, "general", "nope", []byte(`1`), nil)
	s.Require().NoError(err)
	s.False(missing.Success)

	history, err := s.store.History(ctx, "general", 10)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.JSONEq(`"CoreID"`, string(history[0].OldValue))
	s.JSONEq(`"GidiPIN"`, string(history[0].NewValue))
	s.Equal(&by, history[0].ChangedBy)
}

func (s *PostgresStoreSuite) TestSecuritySettingsUpsert() {
	ctx := context.Background()
	_, err := s.store.Security(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	want := models.SecuritySettings{
		SiteName: "CoreID", SupportEmail: "help@coreid.app", PasswordMinLength: 10,
		RequireNumbers: true, Enforce2FA: true, SessionTimeout: 45,
	}
	s.Require().NoError(s.store.UpdateSecurity(ctx, want))
	want.SessionTimeout = 60
	s.Require().NoError(s.store.UpdateSecurity(ctx, want))

	got, err := s.store.Security(ctx)
	s.Require().NoError(err)
	s.NotNil(got.ID)
	got.ID = nil
	s.Equal(want, *got)
}

func (s *PostgresStoreSuite) TestAdminUsers() {
	ctx := context.Background()
	user := uuid.New()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, full_name) VALUES ($1, 'root@coreid.app', 'Root')`, user)
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx,
		`INSERT INTO admin_users (user_id, role) VALUES ($1, 'super_admin'), ($2, 'moderator')`, user, uuid.New())
	s.Require().NoError(err)

	admins, err := s.store.AdminUsers(ctx)
	s.Require().NoError(err)
	s.Require().Len(admins, 2)
	emails := []string{admins[0].Email, admins[1].Email}
	s.ElementsMatch([]string{"root@coreid.app", "Unknown"}, emails)
}
