package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// SettlementRepository implements usecase.SettlementRepository.
type SettlementRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewSettlementRepository creates a new SettlementRepository.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new settlement within a transaction.
func (r *SettlementRepository) Create(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateSettlement(ctx, generated.CreateSettlementParams{
		ID:             settlement.ID,
		PartyID:        settlement.PartyID,
		OpeningBalance: decimalToNumeric(settlement.OpeningBalance),
		ClosingBalance: decimalToNumeric(settlement.ClosingBalance),
		EntryCount:     settlement.EntryCount,
		Note:           settlement.Note,
		SettledAt:      timeToPgTimestamptz(settlement.SettledAt),
	})

	return err
}

// GetByID retrieves a settlement by ID.
func (r *SettlementRepository) GetByID(ctx context.Context, id string) (*domain.Settlement, error) {
	row, err := r.queries.GetSettlementByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettlementNotFound
		}

		return nil, err
	}

	return rowToSettlement(row), nil
}

// LatestByParty retrieves the party's most recent settlement with a FOR UPDATE lock.
func (r *SettlementRepository) LatestByParty(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Settlement, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.LatestSettlementByParty(ctx, partyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettlementNotFound
		}

		return nil, err
	}

	return rowToSettlement(row), nil
}

// ListByParty lists a party's settlements, newest first.
func (r *SettlementRepository) ListByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Settlement, error) {
	rows, err := r.queries.ListSettlementsByParty(ctx, generated.ListSettlementsByPartyParams{
		PartyID: partyID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	settlements := make([]*domain.Settlement, 0, len(rows))
	for _, row := range rows {
		settlements = append(settlements, rowToSettlement(row))
	}

	return settlements, nil
}

// Delete deletes a settlement within a transaction.
func (r *SettlementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.DeleteSettlement(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrSettlementNotFound
	}

	return nil
}

func rowToSettlement(row generated.Settlement) *domain.Settlement {
	return &domain.Settlement{
		ID:             row.ID,
		PartyID:        row.PartyID,
		OpeningBalance: numericToDecimal(row.OpeningBalance),
		ClosingBalance: numericToDecimal(row.ClosingBalance),
		EntryCount:     row.EntryCount,
		Note:           row.Note,
		SettledAt:      row.SettledAt.Time,
	}
}
