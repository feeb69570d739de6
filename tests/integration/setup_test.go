package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	redislib "github.com/redis/go-redis/v9"

	adaptershttp "github.com/mjindal/ledgerbook/internal/adapter/http"
	"github.com/mjindal/ledgerbook/internal/adapter/http/handler"
	"github.com/mjindal/ledgerbook/internal/adapter/repository/postgres"
	redisrepo "github.com/mjindal/ledgerbook/internal/adapter/repository/redis"
	infraredis "github.com/mjindal/ledgerbook/internal/infrastructure/redis"
	"github.com/mjindal/ledgerbook/internal/usecase"
	"github.com/mjindal/ledgerbook/tests/testutil"
)

// testEnv wires the full stack against real Postgres and Redis.
type testEnv struct {
	DB     *testutil.TestDB
	Redis  *redislib.Client
	Router http.Handler

	PartyUC      *usecase.PartyUseCase
	EntryUC      *usecase.EntryUseCase
	SettlementUC *usecase.SettlementUseCase
	ReportUC     *usecase.ReportUseCase
	OutboxRepo   *postgres.OutboxRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL, nil)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier()
	partyRepo := postgres.NewPartyRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	settlementRepo := postgres.NewSettlementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)
	idGen := postgres.NewULIDGenerator()

	partyUC := usecase.NewPartyUseCase(txManager, partyRepo, entryRepo, outboxRepo, auditRepo, idGen, nil)
	entryUC := usecase.NewEntryUseCase(txManager, retrier, partyRepo, entryRepo, settlementRepo, outboxRepo, auditRepo, cache, idGen, nil)
	settlementUC := usecase.NewSettlementUseCase(txManager, retrier, partyRepo, entryRepo, settlementRepo, outboxRepo, auditRepo, cache, idGen, nil)
	reportUC := usecase.NewReportUseCase(reportRepo, cache, 0, nil)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		PartyHandler:      handler.NewPartyHandler(partyUC),
		EntryHandler:      handler.NewEntryHandler(entryUC),
		SettlementHandler: handler.NewSettlementHandler(settlementUC),
		ReportHandler:     handler.NewReportHandler(reportUC),
		AuditHandler:      handler.NewAuditHandler(auditUC),
		HealthHandler:     handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:  idempotencyStore,
	})

	return &testEnv{
		DB:           testDB,
		Redis:        redisClient,
		Router:       router,
		PartyUC:      partyUC,
		EntryUC:      entryUC,
		SettlementUC: settlementUC,
		ReportUC:     reportUC,
		OutboxRepo:   outboxRepo,
	}
}
