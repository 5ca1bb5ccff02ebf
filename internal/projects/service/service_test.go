package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coreid/internal/projects/models"
	"coreid/internal/projects/service/mocks"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/audit"
	"coreid/pkg/platform/sentinel"
)

func newService(t *testing.T) (*Service, *mocks.MockStore, *mocks.MockAuditPublisher) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	auditor := mocks.NewMockAuditPublisher(ctrl)
	return New(store, WithAuditPublisher(auditor)), store, auditor
}

func TestList(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	t.Run("normalizes pagination", func(t *testing.T) {
		store.EXPECT().List(ctx, models.Filters{Search: "api"}, backend.Pagination{Page: 1, PageSize: 10}).
			Return([]*models.Project{{Title: "API gateway"}}, 1, nil)

		page, err := svc.List(ctx, models.Filters{Search: "api"}, backend.Pagination{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.List(ctx, models.Filters{Status: []models.Status{"draft"}}, backend.Pagination{})
		assert.True(t, dErrors.IsValidation(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("emits audit event", func(t *testing.T) {
		svc, store, auditor := newService(t)
		store.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusArchived, gomock.Any()).
			Return(&models.Project{ID: id, Status: models.StatusArchived}, nil)
		auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
			assert.Equal(t, audit.ActionProjectStatusUpdated, e.Action)
			assert.Equal(t, "archived", e.Details["status"])
			return nil
		})

		p, err := svc.UpdateStatus(ctx, id, models.StatusArchived)
		require.NoError(t, err)
		assert.Equal(t, models.StatusArchived, p.Status)
	})

	t.Run("invalid status never reaches the store", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.UpdateStatus(ctx, id, "deleted")
		assert.True(t, dErrors.IsValidation(err))
	})

	t.Run("missing project", func(t *testing.T) {
		svc, store, _ := newService(t)
		store.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusActive, gomock.Any()).Return(nil, sentinel.ErrNotFound)
		_, err := svc.UpdateStatus(ctx, id, models.StatusActive)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	svc, store, auditor := newService(t)
	store.EXPECT().Delete(ctx, id).Return(nil)
	auditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)
	require.NoError(t, svc.Delete(ctx, id))

	store.EXPECT().Delete(ctx, id).Return(errors.New("connection reset by peer"))
	err := svc.Delete(ctx, id)
	require.Error(t, err)
	_, ok := dErrors.As(err)
	assert.True(t, ok)
}
