//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coreid/internal/notifications/models"
	"coreid/internal/notifications/store"
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
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "announcements", "notifications"))
}

func (s *PostgresStoreSuite) announce(title string, audience models.Audience, priority models.Priority) uuid.UUID {
	id, err := s.store.CreateAnnouncement(context.Background(), models.AnnouncementInput{
		Title: title, Message: title + " body", Type: models.TypeInfo,
		TargetAudience: audience, Priority: priority,
	}, nil)
	s.Require().NoError(err)
	return id
}

func (s *PostgresStoreSuite) TestAnnouncementLifecycle() {
	ctx := context.Background()
	author := uuid.New()
	ends := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	id, err := s.store.CreateAnnouncement(ctx, models.AnnouncementInput{
		Title: "Maintenance", Message: "Sunday", Type: models.TypeWarning,
		TargetAudience: models.AudienceAll, Priority: models.PriorityHigh, EndsAt: &ends,
	}, &author)
	s.Require().NoError(err)

	a, err := s.store.FindAnnouncement(ctx, id)
	s.Require().NoError(err)
	s.Equal("Maintenance", a.Title)
	s.True(a.IsActive)
	s.Require().NotNil(a.CreatedBy)
	s.Equal(author, *a.CreatedBy)
	s.Require().NotNil(a.EndsAt)
	s.True(ends.Equal(*a.EndsAt))

	s.Require().NoError(s.store.UpdateAnnouncement(ctx, id, models.AnnouncementUpdate{
		Title: "Maintenance done", Message: "Back", Type: models.TypeSuccess,
		TargetAudience: models.AudienceAll, Priority: models.PriorityLow,
	}))
	a, err = s.store.FindAnnouncement(ctx, id)
	s.Require().NoError(err)
	s.False(a.IsActive)
	s.Nil(a.EndsAt)

	s.Require().NoError(s.store.DeleteAnnouncement(ctx, id))
	s.ErrorIs(s.store.DeleteAnnouncement(ctx, id), sentinel.ErrNotFound)
	_, err = s.store.FindAnnouncement(ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.UpdateAnnouncement(ctx, id, models.AnnouncementUpdate{
		Title: "x", Message: "y", Type: models.TypeInfo, TargetAudience: models.AudienceAll, Priority: models.PriorityLow,
	}), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestActiveAnnouncementsByAudience() {
	ctx := context.Background()
	s.announce("For everyone", models.AudienceAll, models.PriorityNormal)
	s.announce("For business", models.AudienceBusiness, models.PriorityUrgent)
	s.announce("For admins", models.AudienceAdmin, models.PriorityHigh)

	rows, err := s.store.ActiveAnnouncements(ctx, "business")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("For business", rows[0].Title)
	s.Equal("For everyone", rows[1].Title)

	page, total, err := s.store.ListAnnouncements(ctx, nil, 2, 0)
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Len(page, 2)

	inactive := false
	page, total, err = s.store.ListAnnouncements(ctx, &inactive, 10, 0)
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(page)
}

func (s *PostgresStoreSuite) TestNotifications() {
	ctx := context.Background()
	user := uuid.New()
	category := "security"
	first, err := s.store.CreateNotification(ctx, models.NotificationInput{
		UserID: user, Title: "New login", Message: "From Lagos", Type: models.TypeWarning, Category: &category,
	})
	s.Require().NoError(err)
	_, err = s.store.CreateNotification(ctx, models.NotificationInput{UserID: user, Title: "Welcome", Message: "Hi", Type: models.TypeInfo})
	s.Require().NoError(err)
	_, err = s.store.CreateNotification(ctx, models.NotificationInput{UserID: uuid.New(), Title: "Other", Message: "Hi", Type: models.TypeInfo})
	s.Require().NoError(err)

	s.Require().NoError(s.store.MarkRead(ctx, first))
	s.ErrorIs(s.store.MarkRead(ctx, uuid.New()), sentinel.ErrNotFound)

	unread := false
	rows, total, err := s.store.UserNotifications(ctx, user, &unread, 50, 0)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal("Welcome", rows[0].Title)
	s.Nil(rows[0].Category)

	n, err := s.store.MarkAllRead(ctx, user)
	s.Require().NoError(err)
	s.Equal(1, n)

	st, err := s.store.Statistics(ctx)
	s.Require().NoError(err)
	s.Equal(3, st.TotalNotifications)
	s.Equal(1, st.UnreadNotifications)
	s.Equal(map[string]int{"security": 1, "general": 2}, st.NotificationsByCategory)
	s.Equal(map[string]int{}, st.AnnouncementsByType)
}
