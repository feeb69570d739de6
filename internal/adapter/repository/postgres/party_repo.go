package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new party within a transaction.
func (r *PartyRepository) Create(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	_, err := queries.CreateParty(ctx, generated.CreatePartyParams{
		ID:                  party.ID,
		Name:                party.Name,
		Phone:               party.Phone,
		Address:             party.Address,
		CommissionRate:      decimalToNumeric(party.CommissionRate),
		CommissionDirection: string(party.CommissionDirection),
		OpeningBalance:      decimalToNumeric(party.OpeningBalance),
		CreatedAt:           timeToPgTimestamptz(party.CreatedAt),
		UpdatedAt:           timeToPgTimestamptz(party.UpdatedAt),
	})

	return err
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	row, err := r.queries.GetPartyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return rowToParty(row), nil
}

// GetByIDForUpdate retrieves a party by ID with a FOR UPDATE lock.
func (r *PartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetPartyByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return rowToParty(row), nil
}

// Update updates a party's profile and commission settings.
func (r *PartyRepository) Update(ctx context.Context, party *domain.Party) error {
	affected, err := r.queries.UpdateParty(ctx, generated.UpdatePartyParams{
		ID:                  party.ID,
		Name:                party.Name,
		Phone:               party.Phone,
		Address:             party.Address,
		CommissionRate:      decimalToNumeric(party.CommissionRate),
		CommissionDirection: string(party.CommissionDirection),
		UpdatedAt:           timeToPgTimestamptz(party.UpdatedAt),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// Delete deletes a party.
func (r *PartyRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteParty(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// List lists parties with pagination and optional name search.
func (r *PartyRepository) List(ctx context.Context, nameFilter string, limit, offset int) ([]*domain.Party, error) {
	rows, err := r.queries.ListParties(ctx, generated.ListPartiesParams{
		NameFilter: nameFilter,
		Limit:      int32(limit),
		Offset:     int32(offset),
	})
	if err != nil {
		return nil, err
	}

	parties := make([]*domain.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, rowToParty(row))
	}

	return parties, nil
}

func rowToParty(row generated.Party) *domain.Party {
	return &domain.Party{
		ID:                  row.ID,
		Name:                row.Name,
		Phone:               row.Phone,
		Address:             row.Address,
		CommissionRate:      numericToDecimal(row.CommissionRate),
		CommissionDirection: domain.CommissionDirection(row.CommissionDirection),
		OpeningBalance:      numericToDecimal(row.OpeningBalance),
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func stringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String

	return &s
}
