package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countParties = `-- name: CountParties :one
SELECT COUNT(*) FROM parties
`

func (q *Queries) CountParties(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countParties)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createParty = `-- name: CreateParty :one
INSERT INTO parties (id, name, phone, address, commission_rate, commission_direction, opening_balance, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, phone, address, commission_rate, commission_direction, opening_balance, created_at, updated_at
`

type CreatePartyParams struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Phone               string             `json:"phone"`
	Address             string             `json:"address"`
	CommissionRate      pgtype.Numeric     `json:"commission_rate"`
	CommissionDirection string             `json:"commission_direction"`
	OpeningBalance      pgtype.Numeric     `json:"opening_balance"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateParty(ctx context.Context, arg CreatePartyParams) (Party, error) {
	row := q.db.QueryRow(ctx, createParty,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.Address,
		arg.CommissionRate,
		arg.CommissionDirection,
		arg.OpeningBalance,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Party
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Address,
		&i.CommissionRate,
		&i.CommissionDirection,
		&i.OpeningBalance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteParty = `-- name: DeleteParty :execrows
DELETE FROM parties WHERE id = $1
`

func (q *Queries) DeleteParty(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteParty, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getPartyByID = `-- name: GetPartyByID :one
SELECT id, name, phone, address, commission_rate, commission_direction, opening_balance, created_at, updated_at FROM parties
WHERE id = $1
`

func (q *Queries) GetPartyByID(ctx context.Context, id string) (Party, error) {
	row := q.db.QueryRow(ctx, getPartyByID, id)
	var i Party
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Address,
		&i.CommissionRate,
		&i.CommissionDirection,
		&i.OpeningBalance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPartyByIDForUpdate = `-- name: GetPartyByIDForUpdate :one
SELECT id, name, phone, address, commission_rate, commission_direction, opening_balance, created_at, updated_at FROM parties
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetPartyByIDForUpdate(ctx context.Context, id string) (Party, error) {
	row := q.db.QueryRow(ctx, getPartyByIDForUpdate, id)
	var i Party
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Address,
		&i.CommissionRate,
		&i.CommissionDirection,
		&i.OpeningBalance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listParties = `-- name: ListParties :many
SELECT id, name, phone, address, commission_rate, commission_direction, opening_balance, created_at, updated_at FROM parties
WHERE $1::TEXT = '' OR name ILIKE '%' || $1::TEXT || '%'
ORDER BY name, id
LIMIT $2 OFFSET $3
`

type ListPartiesParams struct {
	NameFilter string `json:"name_filter"`
	Limit      int32  `json:"limit"`
	Offset     int32  `json:"offset"`
}

func (q *Queries) ListParties(ctx context.Context, arg ListPartiesParams) ([]Party, error) {
	rows, err := q.db.Query(ctx, listParties, arg.NameFilter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Party{}
	for rows.Next() {
		var i Party
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Phone,
			&i.Address,
			&i.CommissionRate,
			&i.CommissionDirection,
			&i.OpeningBalance,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateParty = `-- name: UpdateParty :execrows
UPDATE parties
SET name = $2, phone = $3, address = $4, commission_rate = $5, commission_direction = $6, updated_at = $7
WHERE id = $1
`

type UpdatePartyParams struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Phone               string             `json:"phone"`
	Address             string             `json:"address"`
	CommissionRate      pgtype.Numeric     `json:"commission_rate"`
	CommissionDirection string             `json:"commission_direction"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateParty(ctx context.Context, arg UpdatePartyParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateParty,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.Address,
		arg.CommissionRate,
		arg.CommissionDirection,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
