package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		ID:           entry.ID,
		PartyID:      entry.PartyID,
		EntryDate:    timeToPgTimestamptz(entry.EntryDate),
		Remarks:      entry.Remarks,
		Credit:       decimalToNumeric(entry.Credit),
		Debit:        decimalToNumeric(entry.Debit),
		Balance:      decimalToNumeric(entry.Balance),
		Kind:         string(entry.Kind),
		RefEntryID:   stringToPgText(entry.RefEntryID),
		SettlementID: stringToPgText(entry.SettlementID),
		CreatedAt:    timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row, err := r.queries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// ListCurrentByParty lists a party's current-period entries in ledger order.
func (r *EntryRepository) ListCurrentByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.ListCurrentEntriesByParty(ctx, generated.ListCurrentEntriesByPartyParams{
		PartyID: partyID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

// AllCurrentByParty lists all of a party's current-period entries.
func (r *EntryRepository) AllCurrentByParty(ctx context.Context, partyID string) ([]*domain.Entry, error) {
	rows, err := r.queries.AllCurrentEntriesByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

// AllCurrentByPartyForUpdate lists all current-period entries with FOR UPDATE locks.
func (r *EntryRepository) AllCurrentByPartyForUpdate(ctx context.Context, tx usecase.Transaction, partyID string) ([]*domain.Entry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.AllCurrentEntriesByPartyForUpdate(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

// ListBySettlement lists the entries frozen under a settlement.
func (r *EntryRepository) ListBySettlement(ctx context.Context, settlementID string) ([]*domain.Entry, error) {
	rows, err := r.queries.ListEntriesBySettlement(ctx, pgtype.Text{String: settlementID, Valid: true})
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

// LastCurrent retrieves the party's last current-period entry.
func (r *EntryRepository) LastCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Entry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.LastCurrentEntryByParty(ctx, partyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// CountCurrent counts the party's current-period entries.
func (r *EntryRepository) CountCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.CountCurrentEntriesByParty(ctx, partyID)
}

// CountByParty counts all of a party's entries, settled included.
func (r *EntryRepository) CountByParty(ctx context.Context, partyID string) (int64, error) {
	return r.queries.CountEntriesByParty(ctx, partyID)
}

// UpdateBalance rewrites an entry's running balance.
func (r *EntryRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.UpdateEntryBalance(ctx, generated.UpdateEntryBalanceParams{
		ID:      id,
		Balance: decimalToNumeric(balance),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete deletes an entry within a transaction. The statement only
// matches unsettled rows, so an entry stamped by a concurrent settlement
// is never removed.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.DeleteEntry(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		if _, err := queries.GetEntryByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEntryNotFound
			}

			return err
		}

		return domain.ErrEntrySettled
	}

	return nil
}

// StampSettlement marks all of a party's current entries as settled.
func (r *EntryRepository) StampSettlement(ctx context.Context, tx usecase.Transaction, partyID, settlementID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.StampEntriesSettlement(ctx, generated.StampEntriesSettlementParams{
		PartyID:      partyID,
		SettlementID: pgtype.Text{String: settlementID, Valid: true},
	})
}

// ClearSettlement returns a settlement's entries to the current period.
func (r *EntryRepository) ClearSettlement(ctx context.Context, tx usecase.Transaction, settlementID string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.ClearEntriesSettlement(ctx, pgtype.Text{String: settlementID, Valid: true})
}

func rowToEntry(row generated.Entry) *domain.Entry {
	return &domain.Entry{
		ID:           row.ID,
		PartyID:      row.PartyID,
		EntryDate:    row.EntryDate.Time,
		Remarks:      row.Remarks,
		Credit:       numericToDecimal(row.Credit),
		Debit:        numericToDecimal(row.Debit),
		Balance:      numericToDecimal(row.Balance),
		Kind:         domain.EntryKind(row.Kind),
		RefEntryID:   pgTextToString(row.RefEntryID),
		SettlementID: pgTextToString(row.SettlementID),
		CreatedAt:    row.CreatedAt.Time,
	}
}

func rowsToEntries(rows []generated.Entry) []*domain.Entry {
	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries
}
