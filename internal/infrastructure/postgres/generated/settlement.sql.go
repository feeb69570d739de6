package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSettlement = `-- name: CreateSettlement :one
INSERT INTO settlements (id, party_id, opening_balance, closing_balance, entry_count, note, settled_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, party_id, opening_balance, closing_balance, entry_count, note, settled_at
`

type CreateSettlementParams struct {
	ID             string             `json:"id"`
	PartyID        string             `json:"party_id"`
	OpeningBalance pgtype.Numeric     `json:"opening_balance"`
	ClosingBalance pgtype.Numeric     `json:"closing_balance"`
	EntryCount     int64              `json:"entry_count"`
	Note           string             `json:"note"`
	SettledAt      pgtype.Timestamptz `json:"settled_at"`
}

func (q *Queries) CreateSettlement(ctx context.Context, arg CreateSettlementParams) (Settlement, error) {
	row := q.db.QueryRow(ctx, createSettlement,
		arg.ID,
		arg.PartyID,
		arg.OpeningBalance,
		arg.ClosingBalance,
		arg.EntryCount,
		arg.Note,
		arg.SettledAt,
	)
	var i Settlement
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.OpeningBalance,
		&i.ClosingBalance,
		&i.EntryCount,
		&i.Note,
		&i.SettledAt,
	)
	return i, err
}

const deleteSettlement = `-- name: DeleteSettlement :execrows
DELETE FROM settlements WHERE id = $1
`

func (q *Queries) DeleteSettlement(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSettlement, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getSettlementByID = `-- name: GetSettlementByID :one
SELECT id, party_id, opening_balance, closing_balance, entry_count, note, settled_at FROM settlements
WHERE id = $1
`

func (q *Queries) GetSettlementByID(ctx context.Context, id string) (Settlement, error) {
	row := q.db.QueryRow(ctx, getSettlementByID, id)
	var i Settlement
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.OpeningBalance,
		&i.ClosingBalance,
		&i.EntryCount,
		&i.Note,
		&i.SettledAt,
	)
	return i, err
}

const latestSettlementByParty = `-- name: LatestSettlementByParty :one
SELECT id, party_id, opening_balance, closing_balance, entry_count, note, settled_at FROM settlements
WHERE party_id = $1
ORDER BY settled_at DESC, id DESC
LIMIT 1
FOR UPDATE
`

func (q *Queries) LatestSettlementByParty(ctx context.Context, partyID string) (Settlement, error) {
	row := q.db.QueryRow(ctx, latestSettlementByParty, partyID)
	var i Settlement
	err := row.Scan(
		&i.ID,
		&i.PartyID,
		&i.OpeningBalance,
		&i.ClosingBalance,
		&i.EntryCount,
		&i.Note,
		&i.SettledAt,
	)
	return i, err
}

const listSettlementsByParty = `-- name: ListSettlementsByParty :many
SELECT id, party_id, opening_balance, closing_balance, entry_count, note, settled_at FROM settlements
WHERE party_id = $1
ORDER BY settled_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type ListSettlementsByPartyParams struct {
	PartyID string `json:"party_id"`
	Limit   int32  `json:"limit"`
	Offset  int32  `json:"offset"`
}

func (q *Queries) ListSettlementsByParty(ctx context.Context, arg ListSettlementsByPartyParams) ([]Settlement, error) {
	rows, err := q.db.Query(ctx, listSettlementsByParty, arg.PartyID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Settlement{}
	for rows.Next() {
		var i Settlement
		if err := rows.Scan(
			&i.ID,
			&i.PartyID,
			&i.OpeningBalance,
			&i.ClosingBalance,
			&i.EntryCount,
			&i.Note,
			&i.SettledAt,
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
