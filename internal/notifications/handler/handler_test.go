package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"coreid/internal/notifications/handler/mocks"
	"coreid/internal/notifications/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func TestListAnnouncements(t *testing.T) {
	t.Run("filters and pages", func(t *testing.T) {
		router, svc := newRouter(t)
		active := false
		svc.EXPECT().ListAnnouncements(gomock.Any(), &active, backend.Pagination{Page: 3, PageSize: 20}).
			Return(backend.NewPage([]*models.Announcement{{Title: "Old"}}, 41, backend.Pagination{Page: 3, PageSize: 20}), nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/announcements/?is_active=false&page=3&limit=20"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "total", float64(41))
	})

	t.Run("bad flag", func(t *testing.T) {
		router, _ := newRouter(t)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/announcements/?is_active=maybe"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestActiveAnnouncements(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().ActiveAnnouncements(gomock.Any(), "business").Return(nil, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/announcements/active?user_type=business"))
	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateAnnouncement(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)
		id := uuid.New()
		svc.EXPECT().CreateAnnouncement(gomock.Any(), models.AnnouncementInput{
			Title: "New regions", Message: "Ghana is live", Type: models.TypeSuccess, TargetAudience: models.AudienceBusiness,
		}).Return(&models.Announcement{ID: id, Title: "New regions"}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/announcements/", map[string]any{
			"title": "New regions", "message": "Ghana is live", "type": "success", "target_audience": "business",
		})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
		testutil.AssertJSONContains(t, rr, "id", id.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		router, _ := newRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/announcements/", map[string]any{
			"title": "x", "message": "y", "type": "critical", "target_audience": "all",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestDeleteAnnouncementNotFound(t *testing.T) {
	router, svc := newRouter(t)
	id := uuid.New()
	svc.EXPECT().DeleteAnnouncement(gomock.Any(), id).Return(dErrors.New(dErrors.CodeNotFound, "announcement not found"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/announcements/"+id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSendNotification(t *testing.T) {
	router, svc := newRouter(t)
	user, id := uuid.New(), uuid.New()
	svc.EXPECT().SendNotification(gomock.Any(), models.NotificationInput{
		UserID: user, Title: "Endorsement approved", Message: "Your endorsement is now public",
	}).Return(id, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/notifications/", map[string]any{
		"user_id": user.String(), "title": "Endorsement approved", "message": "Your endorsement is now public",
	})
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
	testutil.AssertJSONContains(t, rr, "id", id.String())
}

func TestUserNotifications(t *testing.T) {
	router, svc := newRouter(t)
	user := uuid.New()
	unread := false
	svc.EXPECT().UserNotifications(gomock.Any(), user, &unread, backend.Pagination{Page: 1}).
		Return(backend.NewPage[*models.Notification](nil, 0, backend.Pagination{Page: 1, PageSize: 50}), nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/notifications/users/"+user.String()+"?is_read=false"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "data", []any{})
}

func TestMarkRead(t *testing.T) {
	router, svc := newRouter(t)
	id, user := uuid.New(), uuid.New()
	svc.EXPECT().MarkRead(gomock.Any(), id).Return(nil)
	svc.EXPECT().MarkAllRead(gomock.Any(), user).Return(3, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/notifications/"+id.String()+"/read"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/notifications/users/"+user.String()+"/read-all"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "updated", float64(3))
}

func TestInvalidUserID(t *testing.T) {
	router, _ := newRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/notifications/users/not-a-uuid"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "VALIDATION_ERROR")
}
