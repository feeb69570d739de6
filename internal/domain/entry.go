package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes manual entries from derived commission entries.
type EntryKind string

const (
	EntryKindRegular    EntryKind = "regular"
	EntryKindCommission EntryKind = "commission"
)

// Entry represents a single credit or debit ledger entry for a party.
// Exactly one of Credit/Debit is positive. Balance is the running balance
// of the party after this entry.
type Entry struct {
	ID           string
	PartyID      string
	EntryDate    time.Time
	Remarks      string
	Credit       decimal.Decimal
	Debit        decimal.Decimal
	Balance      decimal.Decimal
	Kind         EntryKind
	RefEntryID   *string
	SettlementID *string
	CreatedAt    time.Time
}

// Amount returns the unsigned transaction amount (one side is zero).
func (e *Entry) Amount() decimal.Decimal {
	return e.Credit.Add(e.Debit)
}

// Signed returns credit minus debit, the delta this entry applies to the
// running balance.
func (e *Entry) Signed() decimal.Decimal {
	return e.Credit.Sub(e.Debit)
}

// Side returns "credit" or "debit" depending on which side is set.
func (e *Entry) Side() string {
	if e.Credit.IsPositive() {
		return "credit"
	}
	return "debit"
}

// Settled reports whether the entry is covered by a settlement.
func (e *Entry) Settled() bool {
	return e.SettlementID != nil
}

// Validate validates the entry's credit/debit sides.
func (e *Entry) Validate() error {
	if e.Credit.IsNegative() || e.Debit.IsNegative() {
		return ErrInvalidAmount
	}

	if e.Credit.IsPositive() && e.Debit.IsPositive() {
		return ErrTwoSidedEntry
	}

	if e.Credit.IsZero() && e.Debit.IsZero() {
		return ErrEmptyEntry
	}

	return ValidateRemarks(e.Remarks)
}

// RunningBalances recomputes the running balance of entries in place.
// Entries must be in ledger order; opening is the balance before the first
// entry. Returns the closing balance.
func RunningBalances(opening decimal.Decimal, entries []*Entry) decimal.Decimal {
	balance := opening
	for _, e := range entries {
		balance = balance.Add(e.Signed())
		e.Balance = balance
	}

	return balance
}
