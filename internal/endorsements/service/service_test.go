package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"coreid/internal/endorsements/metrics"
	"coreid/internal/endorsements/models"
	"coreid/internal/endorsements/service/mocks"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *mocks.MockStore
	auditor *mocks.MockAuditPublisher
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = testutil.AdminContext()
	s.store = mocks.NewMockStore(ctrl)
	s.auditor = mocks.NewMockAuditPublisher(ctrl)
	s.service = New(s.store,
		WithAuditPublisher(s.auditor),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
}

func (s *ServiceSuite) TestListFilteredTotal() {
	filters := models.Filters{Status: []models.Status{models.StatusVerified}}
	rows := []*models.Endorsement{
		{ID: uuid.New(), VerificationStatus: models.StatusVerified},
		{ID: uuid.New(), VerificationStatus: models.StatusVerified},
	}
	s.store.EXPECT().
		List(gomock.Any(), filters, backend.Pagination{Page: 2, PageSize: 2}).
		Return(rows, 3, nil)

	page, err := s.service.List(s.ctx, filters, backend.Pagination{Page: 2, PageSize: 2})
	s.Require().NoError(err)
	s.Equal(3, page.Total)
	s.Equal(2, page.TotalPages)
	for _, e := range page.Data {
		s.Equal(models.StatusVerified, e.VerificationStatus)
	}
}

func (s *ServiceSuite) TestListRejectsUnknownStatus() {
	_, err := s.service.List(s.ctx, models.Filters{Status: []models.Status{"archived"}}, backend.Pagination{})
	s.True(dErrors.IsValidation(err))
}

func (s *ServiceSuite) TestListWrapsBackendErrors() {
	s.store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("boom"))

	_, err := s.service.List(s.ctx, models.Filters{}, backend.Pagination{})
	s.True(dErrors.Is(err, dErrors.CodeUnknown))
}

func (s *ServiceSuite) TestGetNotFound() {
	id := uuid.New()
	s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Get(s.ctx, id)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestApproveSetsVerifiedAndAudits() {
	id := uuid.New()
	s.store.EXPECT().
		UpdateStatus(gomock.Any(), id, models.StatusVerified, gomock.Any()).
		Return(&models.Endorsement{ID: id, VerificationStatus: models.StatusVerified}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(audit.ActionEndorsementApproved, e.Action)
		s.Equal("endorsement:"+id.String(), e.Target)
		return nil
	})

	e, err := s.service.Approve(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(models.StatusVerified, e.VerificationStatus)
}

func (s *ServiceSuite) TestRejectAndFlag() {
	id := uuid.New()
	s.store.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusRejected, gomock.Any()).
		Return(&models.Endorsement{ID: id, VerificationStatus: models.StatusRejected}, nil)
	s.store.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusFlagged, gomock.Any()).
		Return(&models.Endorsement{ID: id, VerificationStatus: models.StatusFlagged}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.service.Reject(s.ctx, id)
	s.Require().NoError(err)
	_, err = s.service.Flag(s.ctx, id)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestAuditFailureDoesNotFailModeration() {
	id := uuid.New()
	s.store.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusVerified, gomock.Any()).
		Return(&models.Endorsement{ID: id}, nil)
	s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

	_, err := s.service.Approve(s.ctx, id)
	s.NoError(err)
}

func (s *ServiceSuite) TestModerationOfMissingRow() {
	id := uuid.New()
	s.store.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Reject(s.ctx, id)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestStatusCounts() {
	s.store.EXPECT().CountByStatus(gomock.Any()).Return(models.StatusCounts{
		models.StatusPending:  4,
		models.StatusVerified: 6,
	}, nil)

	counts, err := s.service.StatusCounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(10, counts.Total())

	s.store.EXPECT().CountByStatus(gomock.Any()).Return(nil, sql.ErrNoRows)
	_, err = s.service.StatusCounts(s.ctx)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}
