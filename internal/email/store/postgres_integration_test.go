//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coreid/internal/email/models"
	"coreid/internal/email/store"
	"coreid/pkg/backend"
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
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "email_logs", "email_queue", "email_preferences"))
}

func (s *PostgresStoreSuite) enqueue(template string) uuid.UUID {
	id, err := s.store.Enqueue(context.Background(), models.QueueInput{
		ToEmail: "ana@example.com", TemplateID: template, Subject: template,
		Variables: map[string]any{"name": "Ana"}, Priority: models.PriorityNormal,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresStoreSuite) setStatus(id uuid.UUID, status models.Status) {
	_, err := s.postgres.DB.ExecContext(context.Background(), "UPDATE email_queue SET status = $1 WHERE id = $2", status, id)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestEnqueueAndFilter() {
	ctx := context.Background()
	welcome := s.enqueue("welcome")
	s.enqueue("reset")

	e, err := s.store.FindQueued(ctx, welcome)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, e.Status)
	s.Equal("Ana", e.Variables["name"])

	rows, total, err := s.store.Queue(ctx, models.QueueFilters{TemplateID: "reset"}, backend.Pagination{Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(rows, 1)
	s.Equal("reset", rows[0].TemplateID)

	_, err = s.store.FindQueued(ctx, uuid.New())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestCancelOnlyFromPendingOrFailed() {
	ctx := context.Background()
	id := s.enqueue("welcome")

	s.Require().NoError(s.store.Cancel(ctx, id))
	e, err := s.store.FindQueued(ctx, id)
	s.Require().NoError(err)
	s.Equal(models.StatusCancelled, e.Status)

	s.ErrorIs(s.store.Cancel(ctx, id), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRetryResetsAttempts() {
	ctx := context.Background()
	id := s.enqueue("welcome")
	_, err := s.postgres.DB.ExecContext(ctx,
		"UPDATE email_queue SET status = 'failed', attempts = 3, error_message = 'mailbox full' WHERE id = $1", id)
	s.Require().NoError(err)

	at := time.Now().UTC().Truncate(time.Second)
	s.Require().NoError(s.store.Retry(ctx, id, at))

	e, err := s.store.FindQueued(ctx, id)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, e.Status)
	s.Zero(e.Attempts)
	s.Nil(e.ErrorMessage)
	s.True(at.Equal(e.ScheduledFor))

	s.setStatus(id, models.StatusSent)
	s.ErrorIs(s.store.Retry(ctx, id, at), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestStatisticsAndLogs() {
	ctx := context.Background()
	queued := s.enqueue("welcome")
	user := uuid.New()
	_, err := s.postgres.DB.ExecContext(ctx, `
		INSERT INTO email_logs (queue_id, user_id, to_email, template_id, status, opened_at, open_count) VALUES
			($1, $2, 'ana@example.com', 'welcome', 'opened', now(), 1),
			(NULL, $2, 'ana@example.com', 'welcome', 'delivered', NULL, 0),
			(NULL, NULL, 'bo@example.com', 'reset', 'bounced', NULL, 0),
			(NULL, NULL, 'cy@example.com', 'reset', 'failed', NULL, 0)`, queued, user)
	s.Require().NoError(err)

	st, err := s.store.Statistics(ctx, nil, nil)
	s.Require().NoError(err)
	s.Equal(3, st.TotalSent)
	s.Equal(2, st.TotalDelivered)
	s.Equal(1, st.TotalOpened)
	s.Equal(1, st.TotalBounced)
	s.Equal(1, st.TotalFailed)
	s.Equal(1, st.PendingCount)

	logs, total, err := s.store.Logs(ctx, models.LogFilters{UserID: &user}, backend.Pagination{Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(logs, 2)
}

func (s *PostgresStoreSuite) TestPreferencesUpsert() {
	ctx := context.Background()
	user := uuid.New()

	_, err := s.store.Preferences(ctx, user)
	s.ErrorIs(err, sentinel.ErrNotFound)

	off := false
	s.Require().NoError(s.store.UpdatePreferences(ctx, user, models.PreferencesUpdate{AllEmails: &off}))
	p, err := s.store.Preferences(ctx, user)
	s.Require().NoError(err)
	s.False(p.AllEmails)
	s.True(p.MarketingEmails)
	s.NotNil(p.UnsubscribedAt)

	on := true
	s.Require().NoError(s.store.UpdatePreferences(ctx, user, models.PreferencesUpdate{AllEmails: &on}))
	p, err = s.store.Preferences(ctx, user)
	s.Require().NoError(err)
	s.True(p.AllEmails)
	s.Nil(p.UnsubscribedAt)
}
