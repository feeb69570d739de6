package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres/generated"
)

// ReportRepository implements usecase.ReportRepository.
type ReportRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// TrialBalanceRows returns every party's effective balance: the last
// current entry's running balance, else the latest settlement's closing
// balance, else the party's opening balance.
func (r *ReportRepository) TrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	rows, err := r.queries.TrialBalanceRows(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TrialBalanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.TrialBalanceRow{
			PartyID:   row.ID,
			PartyName: row.Name,
			Balance:   numericToDecimal(row.Balance),
		})
	}

	return out, nil
}

// ConsistencyRows returns recorded versus recomputed balances per party.
func (r *ReportRepository) ConsistencyRows(ctx context.Context) ([]domain.ConsistencyRow, error) {
	rows, err := r.queries.ConsistencyRows(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ConsistencyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ConsistencyRow{
			PartyID:   row.ID,
			PartyName: row.Name,
			Recorded:  numericToDecimal(row.Recorded),
			Computed:  numericToDecimal(row.Computed),
		})
	}

	return out, nil
}
