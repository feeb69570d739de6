package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// ReportUseCase handles ledger-wide reporting.
type ReportUseCase struct {
	reportRepo ReportRepository
	cache      Cache
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. m may be nil.
func NewReportUseCase(reportRepo ReportRepository, cache Cache, cacheTTL time.Duration, m *metrics.Metrics) *ReportUseCase {
	if cacheTTL <= 0 {
		cacheTTL = TrialBalanceCacheTTL
	}

	return &ReportUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		metrics:    m,
	}
}

// cachedTrialBalance is the Redis representation of a trial balance.
type cachedTrialBalance struct {
	CreditRows  []cachedTrialBalanceRow `json:"credit_rows"`
	DebitRows   []cachedTrialBalanceRow `json:"debit_rows"`
	CreditTotal string                  `json:"credit_total"`
	DebitTotal  string                  `json:"debit_total"`
	Difference  string                  `json:"difference"`
	PartyCount  int                     `json:"party_count"`
	GeneratedAt time.Time               `json:"generated_at"`
}

type cachedTrialBalanceRow struct {
	PartyID   string `json:"party_id"`
	PartyName string `json:"party_name"`
	Balance   string `json:"balance"`
}

// TrialBalance returns the trial balance report, serving a cached copy
// when one is fresh.
func (uc *ReportUseCase) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	if cached, err := uc.cache.Get(ctx, TrialBalanceCacheKey); err == nil && cached != "" {
		if tb, err := decodeTrialBalance(cached); err == nil {
			if uc.metrics != nil {
				uc.metrics.ReportCacheHits.WithLabelValues("trial_balance").Inc()
			}
			return tb, nil
		}
	}

	rows, err := uc.reportRepo.TrialBalanceRows(ctx)
	if err != nil {
		return nil, err
	}

	tb := domain.BuildTrialBalance(rows, time.Now().UTC())

	if encoded, err := encodeTrialBalance(tb); err == nil {
		_ = uc.cache.Set(ctx, TrialBalanceCacheKey, encoded, uc.cacheTTL)
	}

	if uc.metrics != nil {
		uc.metrics.ReportsGenerated.WithLabelValues("trial_balance").Inc()
	}

	return tb, nil
}

// ConsistencyReport lists parties whose recorded running balances do not
// match balances recomputed from credit/debit sums.
type ConsistencyReport struct {
	Consistent bool
	Mismatches []domain.ConsistencyRow
	PartyCount int
	CheckedAt  time.Time
}

// CheckConsistency verifies recorded running balances against recomputed
// sums for every party.
func (uc *ReportUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	rows, err := uc.reportRepo.ConsistencyRows(ctx)
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{
		Consistent: true,
		Mismatches: []domain.ConsistencyRow{},
		PartyCount: len(rows),
		CheckedAt:  time.Now().UTC(),
	}

	for _, row := range rows {
		if !row.Consistent() {
			report.Consistent = false
			report.Mismatches = append(report.Mismatches, row)
		}
	}

	if uc.metrics != nil {
		uc.metrics.ReportsGenerated.WithLabelValues("consistency").Inc()
	}

	return report, nil
}

func encodeTrialBalance(tb *domain.TrialBalance) (string, error) {
	cached := cachedTrialBalance{
		CreditRows:  encodeRows(tb.CreditSide.Rows),
		DebitRows:   encodeRows(tb.DebitSide.Rows),
		CreditTotal: tb.CreditSide.Total.String(),
		DebitTotal:  tb.DebitSide.Total.String(),
		Difference:  tb.Difference.String(),
		PartyCount:  tb.PartyCount,
		GeneratedAt: tb.GeneratedAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func decodeTrialBalance(data string) (*domain.TrialBalance, error) {
	var cached cachedTrialBalance
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, err
	}

	creditRows, creditTotal, err := decodeRows(cached.CreditRows, cached.CreditTotal)
	if err != nil {
		return nil, err
	}

	debitRows, debitTotal, err := decodeRows(cached.DebitRows, cached.DebitTotal)
	if err != nil {
		return nil, err
	}

	difference, err := decimal.NewFromString(cached.Difference)
	if err != nil {
		return nil, err
	}

	return &domain.TrialBalance{
		CreditSide:  domain.TrialBalanceSide{Rows: creditRows, Total: creditTotal},
		DebitSide:   domain.TrialBalanceSide{Rows: debitRows, Total: debitTotal},
		Difference:  difference,
		PartyCount:  cached.PartyCount,
		GeneratedAt: cached.GeneratedAt,
	}, nil
}

func encodeRows(rows []domain.TrialBalanceRow) []cachedTrialBalanceRow {
	out := make([]cachedTrialBalanceRow, len(rows))
	for i, row := range rows {
		out[i] = cachedTrialBalanceRow{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Balance:   row.Balance.String(),
		}
	}

	return out
}

func decodeRows(rows []cachedTrialBalanceRow, total string) ([]domain.TrialBalanceRow, decimal.Decimal, error) {
	out := make([]domain.TrialBalanceRow, len(rows))
	for i, row := range rows {
		balance, err := decimal.NewFromString(row.Balance)
		if err != nil {
			return nil, decimal.Zero, err
		}

		out[i] = domain.TrialBalanceRow{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Balance:   balance,
		}
	}

	totalDec, err := decimal.NewFromString(total)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return out, totalDec, nil
}
