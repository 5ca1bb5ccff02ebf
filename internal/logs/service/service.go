package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"

	"coreid/internal/logs/device"
	"coreid/internal/logs/models"
	"coreid/pkg/backend"
)

type Store interface {
	AuthLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.AuthLog, int, error)
	PINLoginLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.PINLoginLog, int, error)
	EmailVerificationLogs(ctx context.Context, filters models.Filters, p backend.Pagination) ([]*models.EmailVerificationLog, int, error)
}

// Service pages through the login and verification logs. Log rows are
// read-only.
type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// AuthLogs attaches the parsed client to each row and fills in a device
// fingerprint when none was recorded.
func (s *Service) AuthLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.AuthLog], error) {
	p = p.Normalize()
	rows, total, err := s.store.AuthLogs(ctx, filters, p)
	if err != nil {
		return backend.Page[*models.AuthLog]{}, backend.HandleError(err)
	}
	for _, l := range rows {
		if l.UserAgent == nil {
			continue
		}
		l.Client = device.Parse(*l.UserAgent)
		if l.DeviceFingerprint == nil {
			if fp := device.Fingerprint(*l.UserAgent); fp != "" {
				l.DeviceFingerprint = &fp
			}
		}
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) PINLoginLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.PINLoginLog], error) {
	p = p.Normalize()
	rows, total, err := s.store.PINLoginLogs(ctx, filters, p)
	if err != nil {
		return backend.Page[*models.PINLoginLog]{}, backend.HandleError(err)
	}
	for _, l := range rows {
		if l.UserAgent != nil {
			l.Client = device.Parse(*l.UserAgent)
		}
	}
	return backend.NewPage(rows, total, p), nil
}

func (s *Service) EmailVerificationLogs(ctx context.Context, filters models.Filters, p backend.Pagination) (backend.Page[*models.EmailVerificationLog], error) {
	p = p.Normalize()
	rows, total, err := s.store.EmailVerificationLogs(ctx, filters, p)
	if err != nil {
		return backend.Page[*models.EmailVerificationLog]{}, backend.HandleError(err)
	}
	return backend.NewPage(rows, total, p), nil
}
