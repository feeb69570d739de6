package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mjindal/ledgerbook/internal/adapter/http/handler"
	"github.com/mjindal/ledgerbook/internal/adapter/http/middleware"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PartyHandler      *handler.PartyHandler
	EntryHandler      *handler.EntryHandler
	SettlementHandler *handler.SettlementHandler
	ReportHandler     *handler.ReportHandler
	AuditHandler      *handler.AuditHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	IdempotencyTTL    time.Duration
	Metrics           *metrics.Metrics
	Logger            zerolog.Logger
	RateLimitRPS      float64
	RateLimitBurst    int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	if cfg.RateLimitRPS > 0 {
		var hits *prometheus.CounterVec
		if cfg.Metrics != nil {
			hits = cfg.Metrics.RateLimitHits
		}

		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, hits)
		r.Use(limiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Parties
		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.PartyHandler.Create)
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
			r.Put("/{id}", cfg.PartyHandler.Update)
			r.Delete("/{id}", cfg.PartyHandler.Delete)
			r.Get("/{id}/entries", cfg.EntryHandler.ListByParty)
			r.Get("/{id}/statement", cfg.SettlementHandler.Statement)
			r.Post("/{id}/settlements", cfg.SettlementHandler.Create)
			r.Get("/{id}/settlements", cfg.SettlementHandler.ListByParty)
		})

		// Entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		// Settlements
		r.Route("/settlements", func(r chi.Router) {
			r.Get("/{id}", cfg.SettlementHandler.Get)
			r.Delete("/{id}", cfg.SettlementHandler.Undo)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/trial-balance", cfg.ReportHandler.TrialBalance)
			r.Get("/consistency", cfg.ReportHandler.Consistency)
		})

		// Audit logs
		r.Route("/audit-logs", func(r chi.Router) {
			r.Get("/", cfg.AuditHandler.List)
			r.Get("/{type}/{id}", cfg.AuditHandler.ListByResource)
		})
	})

	return r
}
