//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	adminstore "coreid/internal/admin/store"
	"coreid/internal/invitations/store"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	admins   *adminstore.PostgresStore
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
	s.admins = adminstore.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "admin_invitations", "admin_users", "profiles")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestInviteNewEmailThenAccept() {
	ctx := context.Background()
	inviter := uuid.New()
	expires := time.Now().Add(7 * 24 * time.Hour)

	out, err := s.store.Invite(ctx, "New.Admin@example.com", "moderator", &inviter, expires)
	s.Require().NoError(err)
	s.Require().True(out.Success, out.Error)
	s.NotEmpty(out.InvitationToken)

	dup, err := s.store.Invite(ctx, "new.admin@example.com", "admin", &inviter, expires)
	s.Require().NoError(err)
	s.False(dup.Success)

	pending, err := s.store.Pending(ctx, time.Now())
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal("new.admin@example.com", pending[0].Email)

	user := uuid.New()
	accepted, err := s.store.Accept(ctx, out.InvitationToken, user)
	s.Require().NoError(err)
	s.True(accepted.Success, accepted.Error)

	inv, err := s.store.FindByToken(ctx, out.InvitationToken)
	s.Require().NoError(err)
	s.Equal("accepted", inv.Status)
	s.NotNil(inv.AcceptedAt)

	again, err := s.store.Accept(ctx, out.InvitationToken, user)
	s.Require().NoError(err)
	s.False(again.Success)

	admin, err := s.admins.FindActive(ctx, user)
	s.Require().NoError(err)
	s.Equal("moderator", admin.Role)
}

func (s *PostgresStoreSuite) TestInviteExistingUserGrantsAccess() {
	ctx := context.Background()
	user := uuid.New()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, full_name) VALUES ($1, 'kemi@example.com', 'Kemi A')`, user)
	s.Require().NoError(err)

	out, err := s.store.Invite(ctx, "kemi@example.com", "admin", nil, time.Now().Add(time.Hour))
	s.Require().NoError(err)
	s.True(out.Success)
	s.Empty(out.InvitationToken)

	admin, err := s.admins.FindActive(ctx, user)
	s.Require().NoError(err)
	s.Equal("kemi@example.com", admin.Email)
	s.Equal("Kemi A", admin.FullName)
}

func (s *PostgresStoreSuite) TestAcceptExpiredInvitation() {
	ctx := context.Background()
	out, err := s.store.Invite(ctx, "late@example.com", "admin", nil, time.Now().Add(-time.Minute))
	s.Require().NoError(err)
	s.Require().True(out.Success)

	res, err := s.store.Accept(ctx, out.InvitationToken, uuid.New())
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal("Invitation has expired", res.Error)

	_, err = s.store.FindByToken(ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
