package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const consistencyRows = `-- name: ConsistencyRows :many
SELECT p.id, p.name,
    COALESCE(e.balance, s.closing_balance, p.opening_balance)::NUMERIC AS recorded,
    (p.opening_balance + COALESCE(t.delta, 0))::NUMERIC AS computed
FROM parties p
LEFT JOIN LATERAL (
    SELECT balance FROM entries
    WHERE party_id = p.id AND settlement_id IS NULL
    ORDER BY entry_date DESC, created_at DESC, id DESC
    LIMIT 1
) e ON true
LEFT JOIN LATERAL (
    SELECT closing_balance FROM settlements
    WHERE party_id = p.id
    ORDER BY settled_at DESC, id DESC
    LIMIT 1
) s ON true
LEFT JOIN LATERAL (
    SELECT SUM(credit - debit) AS delta FROM entries
    WHERE party_id = p.id
) t ON true
ORDER BY p.name, p.id
`

type ConsistencyRowsRow struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Recorded pgtype.Numeric `json:"recorded"`
	Computed pgtype.Numeric `json:"computed"`
}

func (q *Queries) ConsistencyRows(ctx context.Context) ([]ConsistencyRowsRow, error) {
	rows, err := q.db.Query(ctx, consistencyRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ConsistencyRowsRow{}
	for rows.Next() {
		var i ConsistencyRowsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Recorded,
			&i.Computed,
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

const trialBalanceRows = `-- name: TrialBalanceRows :many
SELECT p.id, p.name,
    COALESCE(e.balance, s.closing_balance, p.opening_balance)::NUMERIC AS balance
FROM parties p
LEFT JOIN LATERAL (
    SELECT balance FROM entries
    WHERE party_id = p.id AND settlement_id IS NULL
    ORDER BY entry_date DESC, created_at DESC, id DESC
    LIMIT 1
) e ON true
LEFT JOIN LATERAL (
    SELECT closing_balance FROM settlements
    WHERE party_id = p.id
    ORDER BY settled_at DESC, id DESC
    LIMIT 1
) s ON true
ORDER BY p.name, p.id
`

type TrialBalanceRowsRow struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Balance pgtype.Numeric `json:"balance"`
}

func (q *Queries) TrialBalanceRows(ctx context.Context) ([]TrialBalanceRowsRow, error) {
	rows, err := q.db.Query(ctx, trialBalanceRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []TrialBalanceRowsRow{}
	for rows.Next() {
		var i TrialBalanceRowsRow
		if err := rows.Scan(&i.ID, &i.Name, &i.Balance); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
