package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// CreatePartyRequest represents a request to create a party.
type CreatePartyRequest struct {
	Name                string          `json:"name"`
	Phone               string          `json:"phone,omitempty"`
	Address             string          `json:"address,omitempty"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	CommissionDirection string          `json:"commission_direction,omitempty"`
	OpeningBalance      decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartyRequest) ToUseCaseInput() usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		Name:                r.Name,
		Phone:               r.Phone,
		Address:             r.Address,
		CommissionRate:      r.CommissionRate,
		CommissionDirection: domain.CommissionDirection(r.CommissionDirection),
		OpeningBalance:      r.OpeningBalance,
	}
}

// UpdatePartyRequest represents a request to update a party's profile.
// The opening balance is fixed at creation and cannot be changed here.
type UpdatePartyRequest struct {
	Name                string          `json:"name"`
	Phone               string          `json:"phone,omitempty"`
	Address             string          `json:"address,omitempty"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	CommissionDirection string          `json:"commission_direction,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePartyRequest) ToUseCaseInput(id string) usecase.UpdatePartyInput {
	return usecase.UpdatePartyInput{
		ID:                  id,
		Name:                r.Name,
		Phone:               r.Phone,
		Address:             r.Address,
		CommissionRate:      r.CommissionRate,
		CommissionDirection: domain.CommissionDirection(r.CommissionDirection),
	}
}

// CreateEntryRequest represents a request to record a ledger entry.
// Exactly one of credit/debit must be positive.
type CreateEntryRequest struct {
	PartyID         string          `json:"party_id"`
	EntryDate       *time.Time      `json:"entry_date,omitempty"`
	Remarks         string          `json:"remarks,omitempty"`
	Credit          decimal.Decimal `json:"credit"`
	Debit           decimal.Decimal `json:"debit"`
	ApplyCommission bool            `json:"apply_commission,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		PartyID:         r.PartyID,
		EntryDate:       r.EntryDate,
		Remarks:         r.Remarks,
		Credit:          r.Credit,
		Debit:           r.Debit,
		ApplyCommission: r.ApplyCommission,
	}
}

// CreateSettlementRequest represents a request to settle a party's
// current entries.
type CreateSettlementRequest struct {
	Note string `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSettlementRequest) ToUseCaseInput(partyID string) usecase.SettleInput {
	return usecase.SettleInput{
		PartyID: partyID,
		Note:    r.Note,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
