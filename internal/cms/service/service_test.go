package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"coreid/internal/cms/models"
	"coreid/internal/cms/service/mocks"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
	"coreid/pkg/testutil"
)

type CMSServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	store   *mocks.MockStore
	auditor *mocks.MockAuditPublisher
	service *Service
}

func TestCMSServiceSuite(t *testing.T) {
	suite.Run(t, new(CMSServiceSuite))
}

func (s *CMSServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(testutil.AdminContext(), s.now)
	s.store = mocks.NewMockStore(ctrl)
	s.auditor = mocks.NewMockAuditPublisher(ctrl)
	s.service = New(s.store, WithAuditPublisher(s.auditor))
}

func (s *CMSServiceSuite) expectEmit(action audit.Action) {
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(action, e.Action)
		return nil
	})
}

func (s *CMSServiceSuite) TestCreatePageDerivesSlugAndDefaultsToDraft() {
	s.store.EXPECT().CreatePage(gomock.Any(), gomock.Any(), testutil.TestAdmin.ID, s.now).
		DoAndReturn(func(_ context.Context, in models.PageInput, _ uuid.UUID, _ time.Time) (*models.Page, error) {
			s.Equal("privacy-policy-2025", in.Slug)
			s.Equal(models.StatusDraft, in.Status)
			return &models.Page{ID: uuid.New(), Title: in.Title, Slug: in.Slug, Status: in.Status}, nil
		})
	s.expectEmit(audit.ActionContentCreated)

	page, err := s.service.CreatePage(s.ctx, models.PageInput{Title: "Privacy Policy (2025)"})
	s.Require().NoError(err)
	s.Equal("privacy-policy-2025", page.Slug)
}

func (s *CMSServiceSuite) TestCreatePageRejectsBadSlug() {
	_, err := s.service.CreatePage(s.ctx, models.PageInput{Title: "About", Slug: "About Us"})
	s.True(dErrors.IsValidation(err))
}

func (s *CMSServiceSuite) TestCreatePageRequiresAdminAuthor() {
	ctx := requestcontext.WithAdmin(context.Background(), requestcontext.AdminIdentity{Machine: true, Role: "super_admin"})
	_, err := s.service.CreatePage(ctx, models.PageInput{Title: "About"})
	s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
}

func (s *CMSServiceSuite) TestCreatePageSlugConflict() {
	s.store.EXPECT().CreatePage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := s.service.CreatePage(s.ctx, models.PageInput{Title: "About"})
	s.True(dErrors.Is(err, dErrors.CodeConflict))
}

func (s *CMSServiceSuite) TestGetPageNotFound() {
	id := uuid.New()
	s.store.EXPECT().FindPage(gomock.Any(), id).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.GetPage(s.ctx, id)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *CMSServiceSuite) TestPublishAndUnpublish() {
	id := uuid.New()
	s.store.EXPECT().SetPagePublished(gomock.Any(), id, true, s.now).Return(&models.Page{ID: id, Status: models.StatusPublished, PublishedAt: &s.now}, nil)
	s.store.EXPECT().SetPagePublished(gomock.Any(), id, false, s.now).Return(&models.Page{ID: id, Status: models.StatusDraft}, nil)
	s.expectEmit(audit.ActionContentPublished)
	s.expectEmit(audit.ActionContentUnpublished)

	page, err := s.service.PublishPage(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(s.now, *page.PublishedAt)

	page, err = s.service.UnpublishPage(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(page.PublishedAt)
}

func (s *CMSServiceSuite) TestListPagesRejectsUnknownStatus() {
	_, err := s.service.ListPages(s.ctx, models.PageFilters{Status: "live"})
	s.True(dErrors.IsValidation(err))
}

func (s *CMSServiceSuite) TestTrackPageViewSwallowsErrors() {
	pageID, readerID := uuid.New(), uuid.New()
	ctx := requestcontext.WithSession(s.ctx, requestcontext.SessionUser{ID: readerID})
	s.store.EXPECT().TrackPageView(gomock.Any(), pageID, &readerID).Return(errors.New("boom"))

	s.service.TrackPageView(ctx, pageID)
}

func (s *CMSServiceSuite) TestSearchBlankQuerySkipsStore() {
	out, err := s.service.Search(s.ctx, "   ")
	s.Require().NoError(err)
	s.Empty(out)
}

func (s *CMSServiceSuite) TestReorderFAQsRejectsDuplicates() {
	id := uuid.New()
	err := s.service.ReorderFAQs(s.ctx, []models.FAQOrder{{ID: id, DisplayOrder: 1}, {ID: id, DisplayOrder: 2}})
	s.True(dErrors.IsValidation(err))
}

func (s *CMSServiceSuite) TestReorderFAQsUnknownID() {
	s.store.EXPECT().ReorderFAQs(gomock.Any(), gomock.Any(), s.now).Return(sentinel.ErrNotFound)

	err := s.service.ReorderFAQs(s.ctx, []models.FAQOrder{{ID: uuid.New(), DisplayOrder: 1}})
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *CMSServiceSuite) TestUpdateCategoryRejectsSelfParent() {
	id := uuid.New()
	_, err := s.service.UpdateCategory(s.ctx, id, models.CategoryPatch{ParentID: &id})
	s.True(dErrors.IsValidation(err))
}

func (s *CMSServiceSuite) TestPublishedPostsClampsLimit() {
	s.store.EXPECT().PublishedPosts(gomock.Any(), models.BlogQuery{Limit: defaultPostLimit}).Return(nil, nil)
	s.store.EXPECT().PublishedPosts(gomock.Any(), models.BlogQuery{Limit: maxPublicLimit, Offset: 20}).Return(nil, nil)

	_, err := s.service.PublishedPosts(s.ctx, models.BlogQuery{Offset: -5})
	s.Require().NoError(err)
	_, err = s.service.PublishedPosts(s.ctx, models.BlogQuery{Limit: 5000, Offset: 20})
	s.Require().NoError(err)
}

func (s *CMSServiceSuite) TestCreateStoryRejectsInvalidMetrics() {
	_, err := s.service.CreateStory(s.ctx, models.SuccessStoryInput{Title: "t", CompanyName: "c", Metrics: json.RawMessage(`{bad`)})
	s.True(dErrors.IsValidation(err))
}

func (s *CMSServiceSuite) TestDeletePostNotFound() {
	id := uuid.New()
	s.store.EXPECT().DeletePost(gomock.Any(), id).Return(sentinel.ErrNotFound)

	err := s.service.DeletePost(s.ctx, id)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}
