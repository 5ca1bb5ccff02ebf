package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"coreid/internal/admin/models"
	"coreid/pkg/backend"
	dErrors "coreid/pkg/domain-errors"
	"coreid/pkg/platform/sentinel"
	"coreid/pkg/requestcontext"
)

const cacheKeyPrefix = "admin:identity:"

type Store interface {
	FindActive(ctx context.Context, userID uuid.UUID) (*models.Admin, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Directory resolves verified session users to console admins. It
// satisfies the admin middleware's directory contract.
type Directory struct {
	store    Store
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

type Option func(*Directory)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) { d.logger = logger }
}

// WithCache remembers positive lookups for ttl. Revoked admins keep access
// until their entry expires.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(d *Directory) {
		d.cache = c
		d.cacheTTL = ttl
	}
}

func New(store Store, opts ...Option) *Directory {
	d := &Directory{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// LookupAdmin returns the identity of an active admin, or a NOT_FOUND error.
func (d *Directory) LookupAdmin(ctx context.Context, userID uuid.UUID) (requestcontext.AdminIdentity, error) {
	key := cacheKeyPrefix + userID.String()
	if d.cache != nil && d.cacheTTL > 0 {
		var cached models.Admin
		found, err := d.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			d.logger.WarnContext(ctx, "admin cache read failed", "error", err)
		} else if found {
			return cached.Identity(), nil
		}
	}

	a, err := d.store.FindActive(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return requestcontext.AdminIdentity{}, dErrors.New(dErrors.CodeNotFound, "admin not found")
	}
	if err != nil {
		return requestcontext.AdminIdentity{}, backend.HandleError(err)
	}

	if d.cache != nil && d.cacheTTL > 0 {
		if err := d.cache.SetJSON(ctx, key, a, d.cacheTTL); err != nil {
			d.logger.WarnContext(ctx, "admin cache write failed", "error", err)
		}
	}
	return a.Identity(), nil
}

// Me describes the caller the middleware admitted.
func (d *Directory) Me(ctx context.Context) (*models.Me, error) {
	a := requestcontext.Admin(ctx)
	if a.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Not authenticated")
	}
	me := models.MeFrom(a)
	return &me, nil
}
