package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement freezes a party's current entries as old records ("Monday
// Final"). Entries stamped with the settlement ID are immutable until the
// settlement is undone.
type Settlement struct {
	ID             string
	PartyID        string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	EntryCount     int64
	Note           string
	SettledAt      time.Time
}

// StatementPeriod is one settled period of a party statement.
type StatementPeriod struct {
	Settlement *Settlement
	Entries    []*Entry
}

// Statement is the full ledger view of a party: settled periods in
// chronological order followed by the current period.
type Statement struct {
	Party          *Party
	Periods        []StatementPeriod
	OpeningBalance decimal.Decimal
	Current        []*Entry
	ClosingBalance decimal.Decimal
}
