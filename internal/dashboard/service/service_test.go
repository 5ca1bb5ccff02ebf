package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"coreid/internal/dashboard/metrics"
	"coreid/internal/dashboard/models"
	"coreid/internal/dashboard/service/mocks"
	"coreid/internal/dashboard/store"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/requestcontext"
)

type DashboardServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	store   *mocks.MockStore
	cache   *mocks.MockCache
	service *Service
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.now = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = mocks.NewMockStore(ctrl)
	s.cache = mocks.NewMockCache(ctrl)
	s.service = New(s.store, WithCache(s.cache, time.Minute), WithMetrics(metrics.New(prometheus.NewRegistry())))
}

func (s *DashboardServiceSuite) expectCounts(total, pros, partners, signups, verified, endorsements, keys, pins int) {
	dayAgo := s.now.Add(-24 * time.Hour)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s.store.EXPECT().CountProfiles(gomock.Any(), models.ProfileCount{}).Return(total, nil)
	s.store.EXPECT().CountProfiles(gomock.Any(), models.ProfileCount{IdentityTypes: []string{"professional"}, ExcludeSuspended: true}).Return(pros, nil)
	s.store.EXPECT().CountProfiles(gomock.Any(), models.ProfileCount{IdentityTypes: []string{"employer"}}).Return(partners, nil)
	s.store.EXPECT().CountProfiles(gomock.Any(), models.ProfileCount{CreatedSince: &dayAgo}).Return(signups, nil)
	s.store.EXPECT().CountProfiles(gomock.Any(), models.ProfileCount{IdentityTypes: []string{"professional", "employer", "business"}}).Return(verified, nil)
	s.store.EXPECT().CountRows(gomock.Any(), store.TableEndorsements, &monthStart).Return(endorsements, nil)
	s.store.EXPECT().CountRows(gomock.Any(), store.TableAPIKeys, nil).Return(keys, nil)
	s.store.EXPECT().CountRows(gomock.Any(), store.TableProfessionalPINs, nil).Return(pins, nil)
}

func (s *DashboardServiceSuite) TestStatsComputesRatesAndCaches() {
	s.cache.EXPECT().GetJSON(gomock.Any(), statsCacheKey, gomock.Any()).Return(false, nil)
	s.expectCounts(300, 120, 15, 7, 200, 42, 3, 101)
	s.cache.EXPECT().SetJSON(gomock.Any(), statsCacheKey, gomock.Any(), time.Minute).Return(nil)

	st, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(300, st.TotalUsers)
	s.Equal(120, st.ActiveProfessionals)
	s.Equal(15, st.ActivePartners)
	s.Equal(7, st.DailySignups)
	s.Equal(42, st.EndorsementActivity)
	s.Equal(3, st.APIIntegrations)
	s.Equal(66.7, st.EmailVerificationRate)
	s.Equal(33.7, st.PINActivationRate)
}

func (s *DashboardServiceSuite) TestStatsServedFromCache() {
	s.cache.EXPECT().GetJSON(gomock.Any(), statsCacheKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*models.Stats) = models.Stats{TotalUsers: 9}
			return true, nil
		})

	st, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(9, st.TotalUsers)
}

func (s *DashboardServiceSuite) TestStatsCacheFailureFallsBackToDatabase() {
	s.cache.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	s.expectCounts(0, 0, 0, 0, 0, 0, 0, 0)
	s.cache.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	st, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Zero(st.EmailVerificationRate)
}

func (s *DashboardServiceSuite) TestStatsSurfacesCountErrors() {
	svc := New(s.store)
	s.store.EXPECT().CountProfiles(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused")).AnyTimes()
	s.store.EXPECT().CountRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err := svc.Stats(s.ctx)
	_, ok := dErrors.As(err)
	s.True(ok)
}

func (s *DashboardServiceSuite) TestRecentActivityMergesNewestFirst() {
	at := func(min int) time.Time { return s.now.Add(-time.Duration(min) * time.Minute) }
	user := uuid.New()
	events := []models.AuditEvent{
		{ID: uuid.New(), EventType: "otp_sent", PhoneHash: "abcdef1234", CreatedAt: at(1)},
		{ID: uuid.New(), EventType: "registration_finalized", UserID: &user, CreatedAt: at(5)},
	}
	for i := range 8 {
		events = append(events, models.AuditEvent{ID: uuid.New(), EventType: "key_rotated", CreatedAt: at(20 + i)})
	}
	s.store.EXPECT().RecentAuditEvents(gomock.Any(), auditFeedSize).Return(events, nil)
	s.store.EXPECT().RecentEndorsements(gomock.Any(), endorsementFeedSize).Return([]models.EndorsementEvent{
		{ID: uuid.New(), SkillName: "Go", CreatedAt: at(3)},
		{ID: uuid.New(), SkillName: "SQL", CreatedAt: at(100)},
	}, nil)

	feed, err := s.service.RecentActivity(s.ctx)
	s.Require().NoError(err)
	s.Len(feed, activityFeedSize)
	s.Equal("OTP code sent", feed[0].Action)
	s.Equal("Ph: ...1234", feed[0].User)
	s.Equal(models.ActivitySecurity, feed[0].Type)
	s.Equal("Endorsement created: Go", feed[1].Action)
	s.Equal(models.ActivityEndorsement, feed[1].Type)
	s.Equal("Registered User", feed[2].User)
	s.Equal(models.ActivityUser, feed[2].Type)
	for i := 1; i < len(feed); i++ {
		s.False(feed[i].Time.After(feed[i-1].Time))
	}
}

func (s *DashboardServiceSuite) TestHealthy() {
	s.store.EXPECT().Ping(gomock.Any()).Return(12*time.Millisecond, nil)
	s.cache.EXPECT().Latency(gomock.Any()).Return(time.Millisecond, nil)

	h := s.service.Health(s.ctx)
	s.Equal(models.APIOperational, h.APIStatus)
	s.Equal(models.DBHealthy, h.DBStatus)
	s.EqualValues(12, h.LatencyMS)
	s.EqualValues(100, h.Uptime)
	s.Equal(models.DBHealthy, h.Cache.Status)
}

func (s *DashboardServiceSuite) TestHealthDegraded() {
	s.store.EXPECT().Ping(gomock.Any()).Return(time.Duration(0), errors.New("timeout"))
	s.cache.EXPECT().Latency(gomock.Any()).Return(time.Duration(0), errors.New("refused"))

	h := s.service.Health(s.ctx)
	s.Equal(models.APIDegraded, h.APIStatus)
	s.Equal(models.DBIssue, h.DBStatus)
	s.Zero(h.LatencyMS)
	s.Zero(h.Uptime)
	s.Equal("refused", h.Cache.Error)
}

type dependencyStub bool

func (d dependencyStub) Healthy() bool { return bool(d) }

func (s *DashboardServiceSuite) TestHealthReportsDependencies() {
	svc := New(s.store,
		WithDependency("edge_functions", dependencyStub(false)),
		WithDependency("audit_stream", dependencyStub(true)),
	)
	s.store.EXPECT().Ping(gomock.Any()).Return(5*time.Millisecond, nil)

	h := svc.Health(s.ctx)
	s.Equal(models.DBHealthy, h.DBStatus)
	s.Equal(models.APIDegraded, h.APIStatus, "an open circuit degrades the api")
	s.Require().Len(h.Dependencies, 2)
	s.Equal(models.DBIssue, h.Dependencies["edge_functions"].Status)
	s.Equal(models.CircuitOpen, h.Dependencies["edge_functions"].Error)
	s.Equal(models.DBHealthy, h.Dependencies["audit_stream"].Status)
	s.Nil(h.Cache)
}

func (s *DashboardServiceSuite) TestHealthWithoutDependencies() {
	s.store.EXPECT().Ping(gomock.Any()).Return(time.Millisecond, nil)
	s.cache.EXPECT().Latency(gomock.Any()).Return(time.Millisecond, nil)
	s.Nil(s.service.Health(s.ctx).Dependencies)
}
