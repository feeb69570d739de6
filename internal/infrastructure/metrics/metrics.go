package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated  *prometheus.CounterVec
	EntriesDeleted  prometheus.Counter
	EntryAmount     prometheus.Histogram
	EntryErrors     *prometheus.CounterVec
	CommissionTaken prometheus.Counter
	CommissionGiven prometheus.Counter

	// Party metrics
	PartiesCreated  prometheus.Counter
	PartiesDeleted  prometheus.Counter
	PartyOperations *prometheus.CounterVec

	// Settlement metrics
	SettlementsCreated prometheus.Counter
	SettlementsUndone  prometheus.Counter
	SettlementDuration prometheus.Histogram
	SettledEntries     prometheus.Histogram

	// Report metrics
	ReportsGenerated *prometheus.CounterVec
	ReportCacheHits  *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxErrors    prometheus.Counter

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Entry metrics
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_entries_created_total",
				Help: "Total number of ledger entries created by kind",
			},
			[]string{"kind"},
		),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_entries_deleted_total",
			Help: "Total number of ledger entries deleted",
		}),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_entry_amount",
			Help:    "Entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_entry_errors_total",
				Help: "Total number of entry errors by type",
			},
			[]string{"error_type"},
		),
		CommissionTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_commission_taken_total",
			Help: "Total number of take commission entries created",
		}),
		CommissionGiven: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_commission_given_total",
			Help: "Total number of give commission entries created",
		}),

		// Party metrics
		PartiesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_parties_created_total",
			Help: "Total number of parties created",
		}),
		PartiesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_parties_deleted_total",
			Help: "Total number of parties deleted",
		}),
		PartyOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_party_operations_total",
				Help: "Total party operations by type",
			},
			[]string{"operation"},
		),

		// Settlement metrics
		SettlementsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_settlements_created_total",
			Help: "Total number of settlements created",
		}),
		SettlementsUndone: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_settlements_undone_total",
			Help: "Total number of settlements undone",
		}),
		SettlementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_settlement_duration_seconds",
			Help:    "Duration of settlement operations",
			Buckets: prometheus.DefBuckets,
		}),
		SettledEntries: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_settled_entries",
			Help:    "Number of entries folded into each settlement",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		// Report metrics
		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_reports_generated_total",
				Help: "Total reports generated by type",
			},
			[]string{"report"},
		),
		ReportCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_report_cache_hits_total",
				Help: "Total report cache hits by type",
			},
			[]string{"report"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerbook_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerbook_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerbook_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerbook_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerbook_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Outbox metrics
		OutboxPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_outbox_published_total",
			Help: "Total outbox events published",
		}),
		OutboxErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_outbox_errors_total",
			Help: "Total outbox publish errors",
		}),

		// Audit metrics
		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
