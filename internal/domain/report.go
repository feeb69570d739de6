package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one party's closing balance.
type TrialBalanceRow struct {
	PartyID   string
	PartyName string
	Balance   decimal.Decimal
}

// TrialBalanceSide is one side of the trial balance. Rows carry absolute
// amounts; Total is their sum.
type TrialBalanceSide struct {
	Rows  []TrialBalanceRow
	Total decimal.Decimal
}

// TrialBalance aggregates every party's closing balance into credit-side
// and debit-side totals for reconciliation.
type TrialBalance struct {
	CreditSide  TrialBalanceSide
	DebitSide   TrialBalanceSide
	Difference  decimal.Decimal
	PartyCount  int
	GeneratedAt time.Time
}

// BuildTrialBalance partitions per-party closing balances into credit and
// debit sides. Positive balances land on the credit side, negative ones on
// the debit side as absolute values; zero balances are counted but listed
// on neither side.
func BuildTrialBalance(rows []TrialBalanceRow, at time.Time) *TrialBalance {
	tb := &TrialBalance{
		CreditSide:  TrialBalanceSide{Rows: []TrialBalanceRow{}, Total: decimal.Zero},
		DebitSide:   TrialBalanceSide{Rows: []TrialBalanceRow{}, Total: decimal.Zero},
		PartyCount:  len(rows),
		GeneratedAt: at,
	}

	for _, row := range rows {
		switch {
		case row.Balance.IsPositive():
			tb.CreditSide.Rows = append(tb.CreditSide.Rows, row)
			tb.CreditSide.Total = tb.CreditSide.Total.Add(row.Balance)
		case row.Balance.IsNegative():
			row.Balance = row.Balance.Abs()
			tb.DebitSide.Rows = append(tb.DebitSide.Rows, row)
			tb.DebitSide.Total = tb.DebitSide.Total.Add(row.Balance)
		}
	}

	tb.Difference = tb.CreditSide.Total.Sub(tb.DebitSide.Total)

	return tb
}

// ConsistencyRow compares a party's recorded running balance with the
// balance recomputed from its credit/debit sums.
type ConsistencyRow struct {
	PartyID   string
	PartyName string
	Recorded  decimal.Decimal
	Computed  decimal.Decimal
}

// Consistent reports whether recorded and computed balances agree.
func (r ConsistencyRow) Consistent() bool {
	return r.Recorded.Equal(r.Computed)
}
