package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/mjindal/ledgerbook/internal/adapter/http"
	"github.com/mjindal/ledgerbook/internal/adapter/http/handler"
	postgresRepo "github.com/mjindal/ledgerbook/internal/adapter/repository/postgres"
	redisRepo "github.com/mjindal/ledgerbook/internal/adapter/repository/redis"
	"github.com/mjindal/ledgerbook/internal/infrastructure/config"
	"github.com/mjindal/ledgerbook/internal/infrastructure/eventpublisher"
	"github.com/mjindal/ledgerbook/internal/infrastructure/logger"
	"github.com/mjindal/ledgerbook/internal/infrastructure/logging"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres"
	"github.com/mjindal/ledgerbook/internal/infrastructure/redis"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Register Prometheus metrics
	m := metrics.New()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DatabaseMaxConns,
		MinConns: cfg.DatabaseMinConns,
		Metrics:  m,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	partyRepo := postgresRepo.NewPartyRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	settlementRepo := postgresRepo.NewSettlementRepository(pool)
	reportRepo := postgresRepo.NewReportRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	partyUC := usecase.NewPartyUseCase(txManager, partyRepo, entryRepo, outboxRepo, auditRepo, idGen, m)
	entryUC := usecase.NewEntryUseCase(txManager, retrier, partyRepo, entryRepo, settlementRepo, outboxRepo, auditRepo, cache, idGen, m)
	settlementUC := usecase.NewSettlementUseCase(txManager, retrier, partyRepo, entryRepo, settlementRepo, outboxRepo, auditRepo, cache, idGen, m)
	reportUC := usecase.NewReportUseCase(reportRepo, cache, cfg.TrialBalanceCacheTTL, m)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Initialize handlers
	partyHandler := handler.NewPartyHandler(partyUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	settlementHandler := handler.NewSettlementHandler(settlementUC)
	reportHandler := handler.NewReportHandler(reportUC)
	auditHandler := handler.NewAuditHandler(auditUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PartyHandler:      partyHandler,
		EntryHandler:      entryHandler,
		SettlementHandler: settlementHandler,
		ReportHandler:     reportHandler,
		AuditHandler:      auditHandler,
		HealthHandler:     healthHandler,
		IdempotencyStore:  idempotencyStore,
		IdempotencyTTL:    cfg.IdempotencyTTL,
		Metrics:           m,
		Logger:            appLogger,
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
	})

	// Start outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	workerLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(workerLogger.Logger),
		Logger:     workerLogger.Logger,
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxPollInterval,
		Retention:  cfg.OutboxRetention,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("outbox publisher stopped")
		}
	}()

	// Track pool saturation for the metrics endpoint
	go trackDBConnections(publisherCtx, pool, m)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// trackDBConnections mirrors the pgx pool stats into the DB connections
// gauge until ctx is cancelled.
func trackDBConnections(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}
}
