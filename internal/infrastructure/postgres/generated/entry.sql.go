package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const allCurrentEntriesByParty = `-- name: AllCurrentEntriesByParty :many
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE party_id = $1 AND settlement_id IS NULL
ORDER BY entry_date, created_at, id
`

func (q *Queries) AllCurrentEntriesByParty(ctx context.Context, partyID string) ([]Entry, error) {
	rows, err := q.db.Query(ctx, allCurrentEntriesByParty, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Entry{}
	for rows.Next() {
		var i Entry
		if err := rows.Scan(
			&i.ID,
			&i.PartyID,
			&i.EntryDate,
			&i.Remarks,
			&i.Credit,
			&i.Debit,
			&i.Balance,
			&i.Kind,
			&i.RefEntryID,
			&i.SettlementID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const allCurrentEntriesByPartyForUpdate = `-- name: AllCurrentEntriesByPartyForUpdate :many
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE party_id = $1 AND settlement_id IS NULL
ORDER BY entry_date, created_at, id
FOR UPDATE
`

func (q *Queries) AllCurrentEntriesByPartyForUpdate(ctx context.Context, partyID string) ([]Entry, error) {
	rows, err := q.db.Query(ctx, allCurrentEntriesByPartyForUpdate, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Entry{}
	for rows.Next() {
		var i Entry
		if err := rows.Scan(
			&i.ID,
			&i.PartyID,
			&i.EntryDate,
			&i.Remarks,
			&i.Credit,
			&i.Debit,
			&i.Balance,
			&i.Kind,
			&i.RefEntryID,
			&i.SettlementID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const clearEntriesSettlement = `-- name: ClearEntriesSettlement :exec
UPDATE entries SET settlement_id = NULL WHERE settlement_id = $1
`

func (q *Queries) ClearEntriesSettlement(ctx context.Context, settlementID pgtype.Text) error {
	_, err := q.db.Exec(ctx, clearEntriesSettlement, settlementID)
	return err
}

const countCurrentEntriesByParty = `-- name: CountCurrentEntriesByParty :one
SELECT COUNT(*) FROM entries WHERE party_id = $1 AND settlement_id IS NULL
`

func (q *Queries) CountCurrentEntriesByParty(ctx context.Context, partyID string) (int64, error) {
	row := q.db.QueryRow(ctx, countCurrentEntriesByParty, partyID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countEntriesByParty = `-- name: CountEntriesByParty :one
SELECT COUNT(*) FROM entries WHERE party_id = $1
`

func (q *Queries) CountEntriesByParty(ctx context.Context, partyID string) (int64, error) {
	row := q.db.QueryRow(ctx, countEntriesByParty, partyID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createEntry = `-- name: CreateEntry :one
INSERT INTO entries (id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at
`

type CreateEntryParams struct {
	ID           string             `json:"id"`
	PartyID      string             `json:"party_id"`
	EntryDate    pgtype.Timestamptz `json:"entry_date"`
	Remarks      string             `json:"remarks"`
	Credit       pgtype.Numeric     `json:"credit"`
	Debit        pgtype.Numeric     `json:"debit"`
	Balance      pgtype.Numeric     `json:"balance"`
	Kind         string             `json:"kind"`
	RefEntryID   pgtype.Text        `json:"ref_entry_id"`
	SettlementID pgtype.Text        `json:"settlement_id"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (Entry, error) {
	row := q.db.QueryRow(ctx, createEntry,
		arg.ID,
		arg.PartyID,
		arg.EntryDate,
		arg.Remarks,
		arg.Credit,
		arg.Debit,
		arg.Balance,
		arg.Kind,
		arg.RefEntryID,
		arg.SettlementID,
		arg.CreatedAt,
	)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.EntryDate,
		&i.Remarks,
		&i.Credit,
		&i.Debit,
		&i.Balance,
		&i.Kind,
		&i.RefEntryID,
		&i.SettlementID,
		&i.CreatedAt,
	)
	return i, err
}

const deleteEntry = `-- name: DeleteEntry :execrows
DELETE FROM entries WHERE id = $1 AND settlement_id IS NULL
`

func (q *Queries) DeleteEntry(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getEntryByID = `-- name: GetEntryByID :one
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE id = $1
`

func (q *Queries) GetEntryByID(ctx context.Context, id string) (Entry, error) {
	row := q.db.QueryRow(ctx, getEntryByID, id)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.EntryDate,
		&i.Remarks,
		&i.Credit,
		&i.Debit,
		&i.Balance,
		&i.Kind,
		&i.RefEntryID,
		&i.SettlementID,
		&i.CreatedAt,
	)
	return i, err
}

const lastCurrentEntryByParty = `-- name: LastCurrentEntryByParty :one
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE party_id = $1 AND settlement_id IS NULL
ORDER BY entry_date DESC, created_at DESC, id DESC
LIMIT 1
FOR UPDATE
`

func (q *Queries) LastCurrentEntryByParty(ctx context.Context, partyID string) (Entry, error) {
	row := q.db.QueryRow(ctx, lastCurrentEntryByParty, partyID)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.EntryDate,
		&i.Remarks,
		&i.Credit,
		&i.Debit,
		&i.Balance,
		&i.Kind,
		&i.RefEntryID,
		&i.SettlementID,
		&i.CreatedAt,
	)
	return i, err
}

const listCurrentEntriesByParty = `-- name: ListCurrentEntriesByParty :many
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE party_id = $1 AND settlement_id IS NULL
ORDER BY entry_date, created_at, id
LIMIT $2 OFFSET $3
`

type ListCurrentEntriesByPartyParams struct {
	PartyID string `json:"party_id"`
	Limit   int32  `json:"limit"`
	Offset  int32  `json:"offset"`
}

func (q *Queries) ListCurrentEntriesByParty(ctx context.Context, arg ListCurrentEntriesByPartyParams) ([]Entry, error) {
	rows, err := q.db.Query(ctx, listCurrentEntriesByParty, arg.PartyID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Entry{}
	for rows.Next() {
		var i Entry
		if err := rows.Scan(
			&i.ID,
			&i.PartyID,
			&i.EntryDate,
			&i.Remarks,
			&i.Credit,
			&i.Debit,
			&i.Balance,
			&i.Kind,
			&i.RefEntryID,
			&i.SettlementID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listEntriesBySettlement = `-- name: ListEntriesBySettlement :many
SELECT id, party_id, entry_date, remarks, credit, debit, balance, kind, ref_entry_id, settlement_id, created_at FROM entries
WHERE settlement_id = $1
ORDER BY entry_date, created_at, id
`

func (q *Queries) ListEntriesBySettlement(ctx context.Context, settlementID pgtype.Text) ([]Entry, error) {
	rows, err := q.db.Query(ctx, listEntriesBySettlement, settlementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Entry{}
	for rows.Next() {
		var i Entry
		if err := rows.Scan(
			&i.ID,
			&i.PartyID,
			&i.EntryDate,
			&i.Remarks,
			&i.Credit,
			&i.Debit,
			&i.Balance,
			&i.Kind,
			&i.RefEntryID,
			&i.SettlementID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const stampEntriesSettlement = `-- name: StampEntriesSettlement :execrows
UPDATE entries SET settlement_id = $2
WHERE party_id = $1 AND settlement_id IS NULL
`

type StampEntriesSettlementParams struct {
	PartyID      string      `json:"party_id"`
	SettlementID pgtype.Text `json:"settlement_id"`
}

func (q *Queries) StampEntriesSettlement(ctx context.Context, arg StampEntriesSettlementParams) (int64, error) {
	result, err := q.db.Exec(ctx, stampEntriesSettlement, arg.PartyID, arg.SettlementID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateEntryBalance = `-- name: UpdateEntryBalance :execrows
UPDATE entries SET balance = $2 WHERE id = $1
`

type UpdateEntryBalanceParams struct {
	ID      string         `json:"id"`
	Balance pgtype.Numeric `json:"balance"`
}

func (q *Queries) UpdateEntryBalance(ctx context.Context, arg UpdateEntryBalanceParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateEntryBalance, arg.ID, arg.Balance)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
