package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionDirection controls the sign of a commission entry on the
// party's ledger.
type CommissionDirection string

const (
	// CommissionTake records the commission as a credit on the party ledger.
	CommissionTake CommissionDirection = "take"
	// CommissionGive records the commission as a debit on the party ledger.
	CommissionGive CommissionDirection = "give"
)

// Valid reports whether d is a known direction.
func (d CommissionDirection) Valid() bool {
	return d == CommissionTake || d == CommissionGive
}

// Party represents a counterparty whose transactions are recorded.
type Party struct {
	ID                  string
	Name                string
	Phone               string
	Address             string
	CommissionRate      decimal.Decimal
	CommissionDirection CommissionDirection
	OpeningBalance      decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasCommission reports whether the party is flagged with a commission rate.
func (p *Party) HasCommission() bool {
	return p.CommissionRate.IsPositive()
}

// Commission computes the commission fee for a transaction amount:
// round(amount * rate / 100, 2). Zero when no rate is configured.
func (p *Party) Commission(amount decimal.Decimal) decimal.Decimal {
	if !p.HasCommission() {
		return decimal.Zero
	}

	return amount.Mul(p.CommissionRate).Div(decimal.NewFromInt(100)).Round(2)
}

// Validate validates the party's fields.
func (p *Party) Validate() error {
	if err := ValidatePartyName(p.Name); err != nil {
		return err
	}

	if err := ValidateCommissionRate(p.CommissionRate); err != nil {
		return err
	}

	if p.HasCommission() && !p.CommissionDirection.Valid() {
		return ErrMissingCommissionDirection
	}

	return nil
}
