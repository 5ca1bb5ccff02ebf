package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"coreid/internal/admin/models"
	"coreid/internal/admin/service/mocks"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
	"coreid/pkg/testutil"
)

type DirectorySuite struct {
	suite.Suite
	ctx   context.Context
	store *mocks.MockStore
	cache *mocks.MockCache
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.store = mocks.NewMockStore(ctrl)
	s.cache = mocks.NewMockCache(ctrl)
}

func (s *DirectorySuite) TestLookupActiveAdmin() {
	id := uuid.New()
	s.store.EXPECT().FindActive(gomock.Any(), id).
		Return(&models.Admin{UserID: id, Email: "ada@coreid.test", Role: models.RoleModerator}, nil)

	got, err := New(s.store).LookupAdmin(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(requestcontext.AdminIdentity{ID: id, Email: "ada@coreid.test", Role: models.RoleModerator}, got)
}

func (s *DirectorySuite) TestLookupUnknownUserIsNotFound() {
	s.store.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

	_, err := New(s.store).LookupAdmin(s.ctx, uuid.New())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DirectorySuite) TestLookupDatabaseFailure() {
	s.store.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := New(s.store).LookupAdmin(s.ctx, uuid.New())
	s.Require().Error(err)
	s.False(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DirectorySuite) TestCacheHitSkipsStore() {
	id := uuid.New()
	s.cache.EXPECT().GetJSON(gomock.Any(), cacheKeyPrefix+id.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*models.Admin) = models.Admin{UserID: id, Role: models.RoleAdmin}
			return true, nil
		})

	got, err := New(s.store, WithCache(s.cache, time.Minute)).LookupAdmin(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, got.Role)
}

func (s *DirectorySuite) TestCacheMissStoresPositiveLookup() {
	id := uuid.New()
	s.cache.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().FindActive(gomock.Any(), id).Return(&models.Admin{UserID: id, Role: models.RoleSuperAdmin}, nil)
	s.cache.EXPECT().SetJSON(gomock.Any(), cacheKeyPrefix+id.String(), gomock.Any(), time.Minute).Return(nil)

	_, err := New(s.store, WithCache(s.cache, time.Minute)).LookupAdmin(s.ctx, id)
	s.Require().NoError(err)
}

func (s *DirectorySuite) TestNegativeLookupIsNotCached() {
	s.cache.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	s.store.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

	_, err := New(s.store, WithCache(s.cache, time.Minute)).LookupAdmin(s.ctx, uuid.New())
	s.Require().Error(err)
}

func (s *DirectorySuite) TestMe() {
	me, err := New(s.store).Me(testutil.AdminContext())
	s.Require().NoError(err)
	s.Equal(testutil.TestAdmin.Email, me.Email)

	_, err = New(s.store).Me(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
