package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	adminhandler "coreid/internal/admin/handler"
	adminservice "coreid/internal/admin/service"
	adminstore "coreid/internal/admin/store"
	analyticshandler "coreid/internal/analytics/handler"
	analyticsmetrics "coreid/internal/analytics/metrics"
	analyticsservice "coreid/internal/analytics/service"
	analyticsstore "coreid/internal/analytics/store"
	audithandler "coreid/internal/audit/handler"
	auditmetrics "coreid/internal/audit/metrics"
	auditmodels "coreid/internal/audit/models"
	auditservice "coreid/internal/audit/service"
	auditstore "coreid/internal/audit/store"
	auditworker "coreid/internal/audit/worker"
	cmshandler "coreid/internal/cms/handler"
	cmsservice "coreid/internal/cms/service"
	cmsstore "coreid/internal/cms/store"
	dashboardhandler "coreid/internal/dashboard/handler"
	dashboardmetrics "coreid/internal/dashboard/metrics"
	dashboardservice "coreid/internal/dashboard/service"
	dashboardstore "coreid/internal/dashboard/store"
	emailhandler "coreid/internal/email/handler"
	emailservice "coreid/internal/email/service"
	emailstore "coreid/internal/email/store"
	endorsementshandler "coreid/internal/endorsements/handler"
	endorsementsmetrics "coreid/internal/endorsements/metrics"
	endorsementsservice "coreid/internal/endorsements/service"
	endorsementsstore "coreid/internal/endorsements/store"
	httpapi "coreid/internal/http"
	invitationshandler "coreid/internal/invitations/handler"
	invitationsmetrics "coreid/internal/invitations/metrics"
	invitationsservice "coreid/internal/invitations/service"
	invitationsstore "coreid/internal/invitations/store"
	jwttoken "coreid/internal/jwt_token"
	logshandler "coreid/internal/logs/handler"
	logsservice "coreid/internal/logs/service"
	logsstore "coreid/internal/logs/store"
	monitoringhandler "coreid/internal/monitoring/handler"
	monitoringmetrics "coreid/internal/monitoring/metrics"
	"coreid/internal/monitoring/recorder"
	monitoringservice "coreid/internal/monitoring/service"
	monitoringstore "coreid/internal/monitoring/store"
	notificationshandler "coreid/internal/notifications/handler"
	notificationsservice "coreid/internal/notifications/service"
	notificationsstore "coreid/internal/notifications/store"
	"coreid/internal/platform/config"
	"coreid/internal/platform/httpserver"
	"coreid/internal/platform/kafka"
	"coreid/internal/platform/logger"
	"coreid/internal/platform/metrics"
	"coreid/internal/platform/objectstore"
	"coreid/internal/platform/postgres"
	"coreid/internal/platform/redis"
	"coreid/internal/platform/supabase"
	projectshandler "coreid/internal/projects/handler"
	projectsservice "coreid/internal/projects/service"
	projectsstore "coreid/internal/projects/store"
	ratelimitmetrics "coreid/internal/ratelimit/metrics"
	ratelimit "coreid/internal/ratelimit/middleware"
	ratelimitstore "coreid/internal/ratelimit/store"
	reportshandler "coreid/internal/reports/handler"
	reportsmetrics "coreid/internal/reports/metrics"
	reportsmodels "coreid/internal/reports/models"
	reportsservice "coreid/internal/reports/service"
	reportsstore "coreid/internal/reports/store"
	revenuehandler "coreid/internal/revenue/handler"
	revenuemetrics "coreid/internal/revenue/metrics"
	revenueservice "coreid/internal/revenue/service"
	revenuestore "coreid/internal/revenue/store"
	settingshandler "coreid/internal/settings/handler"
	settingsmetrics "coreid/internal/settings/metrics"
	settingsservice "coreid/internal/settings/service"
	settingsstore "coreid/internal/settings/store"
	usershandler "coreid/internal/users/handler"
	usersmetrics "coreid/internal/users/metrics"
	usersmodels "coreid/internal/users/models"
	usersservice "coreid/internal/users/service"
	usersstore "coreid/internal/users/store"
	"coreid/pkg/backend"
	"coreid/pkg/platform/audit/publisher"
	pgaudit "coreid/pkg/platform/audit/store/postgres"
	"coreid/pkg/platform/httputil"
	"coreid/pkg/platform/middleware/admin"
)

const (
	adminCacheTTL        = 30 * time.Second
	auditBufferSize      = 256
	auditTopicPartitions = 3
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// infra holds the connections shared by every module. Redis, Kafka and the
// export bucket are optional and stay nil when unconfigured.
type infra struct {
	db       *sql.DB
	cache    *redis.Client
	kafka    *kgo.Client
	exports  *objectstore.S3Store
	registry *prometheus.Registry
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Server.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.close(log)

	audits, stream := newAuditPublisher(ctx, cfg, deps, log)
	defer audits.Close()

	reg := deps.registry
	httpMetrics := metrics.New(reg)

	directoryOpts := []adminservice.Option{adminservice.WithLogger(log)}
	if deps.cache != nil {
		directoryOpts = append(directoryOpts, adminservice.WithCache(deps.cache, adminCacheTTL))
	}
	directory := adminservice.New(adminstore.NewPostgres(deps.db), directoryOpts...)

	auditSvc := auditservice.New(auditstore.NewPostgres(deps.db),
		auditservice.WithLogger(log),
		auditservice.WithMetrics(auditmetrics.New(reg)),
		auditservice.WithAuditPublisher(audits),
		auditservice.WithRetentionDays(cfg.AuditRetentionDays),
	)

	functions := supabase.NewFunctionsClient(cfg.Supabase,
		supabase.WithLogger(log),
		supabase.WithRetry(backend.RetryOptions{
			MaxRetries:    cfg.Retry.MaxRetries,
			BaseDelay:     cfg.Retry.BaseDelay,
			OnlyRetryable: true,
		}),
	)

	dashboardOpts := []dashboardservice.Option{
		dashboardservice.WithLogger(log),
		dashboardservice.WithMetrics(dashboardmetrics.New(reg)),
		dashboardservice.WithDependency("edge_functions", functions),
	}
	if deps.cache != nil {
		dashboardOpts = append(dashboardOpts, dashboardservice.WithCache(deps.cache, cfg.DashboardCacheTTL))
	}
	if stream != nil {
		dashboardOpts = append(dashboardOpts, dashboardservice.WithDependency("audit_stream", stream))
	}
	dashboardSvc := dashboardservice.New(dashboardstore.NewPostgres(deps.db), dashboardOpts...)

	usersSvc := usersservice.New(usersstore.NewPostgres(deps.db),
		usersservice.WithLogger(log),
		usersservice.WithMetrics(usersmetrics.New(reg)),
		usersservice.WithAuditPublisher(audits),
	)

	endorsementsSvc := endorsementsservice.New(endorsementsstore.NewPostgres(deps.db),
		endorsementsservice.WithLogger(log),
		endorsementsservice.WithMetrics(endorsementsmetrics.New(reg)),
		endorsementsservice.WithAuditPublisher(audits),
	)

	projectsSvc := projectsservice.New(projectsstore.NewPostgres(deps.db),
		projectsservice.WithLogger(log),
		projectsservice.WithAuditPublisher(audits),
	)

	settingsSvc := settingsservice.New(settingsstore.NewPostgres(deps.db),
		settingsservice.WithLogger(log),
		settingsservice.WithMetrics(settingsmetrics.New(reg)),
		settingsservice.WithAuditPublisher(audits),
	)

	invitationsSvc := invitationsservice.New(invitationsstore.NewPostgres(deps.db),
		invitationsservice.WithLogger(log),
		invitationsservice.WithMetrics(invitationsmetrics.New(reg)),
		invitationsservice.WithAuditPublisher(audits),
		invitationsservice.WithMailer(functions),
		invitationsservice.WithTTL(cfg.InvitationTTL),
	)

	cmsSvc := cmsservice.New(cmsstore.NewPostgres(deps.db),
		cmsservice.WithLogger(log),
		cmsservice.WithAuditPublisher(audits),
	)

	reportsOpts := []reportsservice.Option{
		reportsservice.WithLogger(log),
		reportsservice.WithMetrics(reportsmetrics.New(reg)),
		reportsservice.WithAuditPublisher(audits),
		reportsservice.WithExporter(reportsmodels.ExportUsers, func(ctx context.Context) ([]byte, string, error) {
			return usersSvc.ExportCSV(ctx, usersmodels.SearchFilters{})
		}),
		reportsservice.WithExporter(reportsmodels.ExportAuditLogs, func(ctx context.Context) ([]byte, string, error) {
			return auditSvc.ExportCSV(ctx, auditmodels.Filters{})
		}),
	}
	if deps.exports != nil {
		reportsOpts = append(reportsOpts, reportsservice.WithObjectStore(deps.exports))
	}
	reportsSvc := reportsservice.New(reportsstore.NewPostgres(deps.db), reportsOpts...)

	analyticsOpts := []analyticsservice.Option{
		analyticsservice.WithLogger(log),
		analyticsservice.WithMetrics(analyticsmetrics.New(reg)),
	}
	revenueOpts := []revenueservice.Option{
		revenueservice.WithLogger(log),
		revenueservice.WithMetrics(revenuemetrics.New(reg)),
	}
	if deps.cache != nil {
		analyticsOpts = append(analyticsOpts, analyticsservice.WithCache(deps.cache, cfg.DashboardCacheTTL))
		revenueOpts = append(revenueOpts, revenueservice.WithCache(deps.cache, cfg.DashboardCacheTTL))
	}
	analyticsSvc := analyticsservice.New(analyticsstore.NewPostgres(deps.db), analyticsOpts...)
	revenueSvc := revenueservice.New(revenuestore.NewPostgres(deps.db), revenueOpts...)

	monitoringStore := monitoringstore.NewPostgres(deps.db)
	monitoringSvc := monitoringservice.New(monitoringStore, monitoringservice.WithLogger(log))
	apiRecorder := recorder.New(monitoringStore,
		recorder.WithLogger(log),
		recorder.WithMetrics(monitoringmetrics.New(reg)),
	)

	notificationsSvc := notificationsservice.New(notificationsstore.NewPostgres(deps.db),
		notificationsservice.WithLogger(log),
		notificationsservice.WithAuditPublisher(audits),
	)

	emailSvc := emailservice.New(emailstore.NewPostgres(deps.db),
		emailservice.WithLogger(log),
		emailservice.WithAuditPublisher(audits),
	)

	sessions := jwttoken.NewJWTServiceAdapter(jwttoken.NewJWTService(cfg.Supabase.JWTSecret, jwttoken.DefaultAudience))
	invitations := invitationshandler.New(invitationsSvc, log)
	cms := cmshandler.New(cmsSvc, log)
	limiter, sweeper := newPublicLimiter(cfg.PublicRateLimit, deps, log)

	router := httpapi.NewRouter(
		httpapi.Auth{
			Sessions: sessions,
			Admins:   directory,
			Machine:  admin.NewTokenVerifier(cfg.Server.AdminTokenHash),
		},
		httpapi.Routes{
			Admin: []httpapi.Registrar{
				adminhandler.New(directory, log),
				dashboardhandler.New(dashboardSvc, log),
				usershandler.New(usersSvc, log),
				endorsementshandler.New(endorsementsSvc, log),
				projectshandler.New(projectsSvc, log),
				settingshandler.New(settingsSvc, log),
				logshandler.New(logsservice.New(logsstore.NewPostgres(deps.db)), log),
				audithandler.New(auditSvc, log),
				cms,
				reportshandler.New(reportsSvc, log),
				invitations,
				analyticshandler.New(analyticsSvc, log),
				monitoringhandler.New(monitoringSvc, log),
				revenuehandler.New(revenueSvc, log),
				notificationshandler.New(notificationsSvc, log),
				emailhandler.New(emailSvc, log),
			},
			Session: []httpapi.Registrar{httpapi.RegistrarFunc(invitations.RegisterSession)},
			Public:  []httpapi.Registrar{httpapi.RegistrarFunc(cms.RegisterPublic)},
		},
		httpapi.Options{
			Logger:           log,
			Metrics:          httpMetrics,
			Gatherer:         reg,
			Health:           healthHandler(deps),
			PublicMiddleware: []func(http.Handler) http.Handler{limiter.Handler},
			AdminMiddleware:  []func(http.Handler) http.Handler{apiRecorder.Middleware},
		},
	)
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting coreid admin api", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	if sweeper != nil {
		g.Go(func() error {
			sweep(gctx, sweeper, cfg.PublicRateLimit.Window)
			return nil
		})
	}
	g.Go(func() error {
		if err := apiRecorder.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if cfg.AuditCleanupInterval > 0 {
		w := auditworker.New(auditSvc, cfg.AuditCleanupInterval, cfg.AuditRetentionDays, log)
		g.Go(func() error {
			if err := w.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func connect(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	deps := &infra{db: db, registry: prometheus.NewRegistry()}
	deps.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "coreid"),
	)

	if deps.cache, err = redis.New(ctx, cfg.Redis); err != nil {
		log.Warn("redis unavailable, caching disabled", "error", err)
		deps.cache = nil
	}
	if deps.kafka, err = kafka.NewClient(ctx, cfg.Kafka); err != nil {
		log.Warn("kafka unavailable, audit stream disabled", "error", err)
		deps.kafka = nil
	}
	if deps.exports, err = objectstore.New(ctx, cfg.Export); err != nil {
		deps.close(log)
		return nil, fmt.Errorf("configure export bucket: %w", err)
	}
	return deps, nil
}

func (d *infra) close(log *slog.Logger) {
	if d.kafka != nil {
		d.kafka.Close()
	}
	if d.cache != nil {
		if err := d.cache.Close(); err != nil {
			log.Warn("failed to close redis", "error", err)
		}
	}
	if err := d.db.Close(); err != nil {
		log.Warn("failed to close postgres", "error", err)
	}
}

// newPublicLimiter shares counters through Redis when it is available. The
// in-memory fallback is returned as the second value so its windows can be
// swept.
func newPublicLimiter(cfg config.PublicRateLimit, deps *infra, log *slog.Logger) (*ratelimit.Middleware, *ratelimitstore.InMemoryStore) {
	opts := []ratelimit.Option{
		ratelimit.WithLogger(log),
		ratelimit.WithMetrics(ratelimitmetrics.New(deps.registry)),
	}
	if deps.cache != nil {
		return ratelimit.New(ratelimitstore.NewRedisStore(deps.cache.Client), cfg.Requests, cfg.Window, opts...), nil
	}
	mem := ratelimitstore.NewInMemoryStore()
	return ratelimit.New(mem, cfg.Requests, cfg.Window, opts...), mem
}

func sweep(ctx context.Context, store *ratelimitstore.InMemoryStore, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Sweep()
		}
	}
}

// newAuditPublisher records admin actions through log_admin_action and
// mirrors them to Kafka when brokers are configured. The stream is nil
// without brokers.
func newAuditPublisher(ctx context.Context, cfg config.Config, deps *infra, log *slog.Logger) (*publisher.Publisher, *kafka.AuditStream) {
	opts := []publisher.Option{publisher.WithLogger(log), publisher.WithAsyncBuffer(auditBufferSize)}
	var stream *kafka.AuditStream
	if deps.kafka != nil {
		if err := kafka.EnsureTopic(ctx, deps.kafka, cfg.Kafka.AuditTopic, auditTopicPartitions); err != nil {
			log.Warn("failed to ensure audit topic", "topic", cfg.Kafka.AuditTopic, "error", err)
		}
		stream = kafka.NewAuditStream(deps.kafka, cfg.Kafka.AuditTopic, log)
		opts = append(opts, publisher.WithSink(stream))
	}
	return publisher.NewPublisher(pgaudit.New(deps.db), opts...), stream
}

// healthHandler reports liveness of the database and, when configured,
// Redis. It answers 503 when either is down.
func healthHandler(deps *infra) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		status := http.StatusOK
		body := map[string]string{"status": "ok", "database": "ok"}
		if _, err := postgres.Ping(ctx, deps.db); err != nil {
			status = http.StatusServiceUnavailable
			body["status"], body["database"] = "degraded", err.Error()
		}
		if deps.cache != nil {
			body["redis"] = "ok"
			if err := deps.cache.Health(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"], body["redis"] = "degraded", err.Error()
			}
		}
		httputil.WriteJSON(w, status, body)
	}
}
