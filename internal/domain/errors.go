package domain

import "errors"

var (
	// Party errors
	ErrPartyNotFound              = errors.New("party not found")
	ErrPartyHasEntries            = errors.New("party still has ledger entries")
	ErrMissingCommissionDirection = errors.New("commission direction required when rate is set")
	ErrCommissionNotConfigured    = errors.New("party has no commission rate configured")

	// Entry errors
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrTwoSidedEntry = errors.New("entry cannot carry both credit and debit")
	ErrEmptyEntry    = errors.New("entry must carry a credit or a debit")
	ErrEntrySettled  = errors.New("entry is covered by a settlement")

	// Settlement errors
	ErrSettlementNotFound  = errors.New("settlement not found")
	ErrNothingToSettle     = errors.New("party has no current entries to settle")
	ErrNotLatestSettlement = errors.New("only the latest settlement can be undone")
)
