//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coreid/internal/audit/models"
	"coreid/internal/audit/store"
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
		"audit_logs", "user_activity_logs", "admin_audit_logs", "profiles")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestLogListAndStatistics() {
	ctx := context.Background()
	user := uuid.New()

	_, err := s.store.Log(ctx, models.Event{
		UserID: &user, UserEmail: "ops@coreid.test", ActorType: "admin", Action: "update",
		ResourceType: "profile", ResourceID: user.String(),
		OldValues: map[string]any{"status": "active"}, NewValues: map[string]any{"status": "suspended"},
		Status: "success",
	})
	s.Require().NoError(err)
	_, err = s.store.Log(ctx, models.Event{
		Action: "login", ResourceType: "session", Status: "failure", ErrorMessage: "bad password",
	})
	s.Require().NoError(err)

	entries, total, err := s.store.List(ctx, models.Filters{ResourceType: "profile"}, 10, 0)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(entries, 1)
	s.JSONEq(`{"status":"suspended"}`, string(entries[0].NewValues))
	s.Require().NotNil(entries[0].ResourceID)
	s.Equal(user.String(), *entries[0].ResourceID)

	st, err := s.store.Statistics(ctx, nil, nil)
	s.Require().NoError(err)
	s.Equal(2, st.TotalEvents)
	s.Equal(1, st.SuccessfulEvents)
	s.Equal(1, st.FailedEvents)
	s.Equal(1, st.EventsByAction["login"])
	s.Equal(1, st.EventsByResource["profile"])
}

func (s *PostgresStoreSuite) TestUserActivityPagesWithTotal() {
	ctx := context.Background()
	user := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := s.postgres.DB.ExecContext(ctx, `
			INSERT INTO user_activity_logs (user_id, user_email, activity_type, details, ip_address, created_at)
			VALUES ($1, 'a@example.com', 'login', '{"device":"ios"}', '10.0.0.1', $2)`,
			user, time.Now().Add(-time.Duration(i)*time.Hour))
		s.Require().NoError(err)
	}

	page, total, err := s.store.UserActivity(ctx, models.ActivityFilters{UserID: &user}, 2, 0)
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Len(page, 2)
	s.Require().NotNil(page[0].IPAddress)
	s.Contains(*page[0].IPAddress, "10.0.0.1")
}

func (s *PostgresStoreSuite) TestRecentAdminActionsAttributesActor() {
	ctx := context.Background()
	actor := uuid.New()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email) VALUES ($1, 'ops@coreid.test')`, actor)
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx,
		`SELECT log_admin_action('user_suspended', 'user:42', 'success', jsonb_build_object('actor_id', $1::text))`,
		actor.String())
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx,
		`SELECT log_admin_action('settings_changed', 'settings', 'success', '{}'::jsonb)`)
	s.Require().NoError(err)

	actions, err := s.store.RecentAdminActions(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(actions, 2)
	actors := []string{actions[0].Actor, actions[1].Actor}
	s.ElementsMatch([]string{"ops@coreid.test", "System"}, actors)
}

func (s *PostgresStoreSuite) TestCleanupRemovesOldRows() {
	ctx := context.Background()
	_, err := s.postgres.DB.ExecContext(ctx, `
		INSERT INTO audit_logs (action, resource_type, created_at)
		VALUES ('old', 'profile', now() - interval '120 days'), ('new', 'profile', now())`)
	s.Require().NoError(err)

	msg, err := s.store.Cleanup(ctx, 90)
	s.Require().NoError(err)
	s.Contains(msg, "Deleted 1 audit logs")

	_, total, err := s.store.List(ctx, models.Filters{}, 10, 0)
	s.Require().NoError(err)
	s.Equal(1, total)
}
