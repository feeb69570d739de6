package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// PartyResponse represents a party in API responses.
type PartyResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone,omitempty"`
	Address             string          `json:"address,omitempty"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	CommissionDirection string          `json:"commission_direction,omitempty"`
	OpeningBalance      decimal.Decimal `json:"opening_balance"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Phone:               p.Phone,
		Address:             p.Address,
		CommissionRate:      p.CommissionRate,
		CommissionDirection: string(p.CommissionDirection),
		OpeningBalance:      p.OpeningBalance,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// ListPartiesResponse wraps a page of parties.
type ListPartiesResponse struct {
	Parties []*PartyResponse `json:"parties"`
	Total   int64            `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	PartyID      string          `json:"party_id"`
	EntryDate    time.Time       `json:"entry_date"`
	Remarks      string          `json:"remarks,omitempty"`
	Credit       decimal.Decimal `json:"credit"`
	Debit        decimal.Decimal `json:"debit"`
	Balance      decimal.Decimal `json:"balance"`
	Kind         string          `json:"kind"`
	RefEntryID   *string         `json:"ref_entry_id,omitempty"`
	SettlementID *string         `json:"settlement_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		PartyID:      e.PartyID,
		EntryDate:    e.EntryDate,
		Remarks:      e.Remarks,
		Credit:       e.Credit,
		Debit:        e.Debit,
		Balance:      e.Balance,
		Kind:         string(e.Kind),
		RefEntryID:   e.RefEntryID,
		SettlementID: e.SettlementID,
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// CreateEntryResponse carries the recorded entry and, when commission
// was applied, the derived commission entry.
type CreateEntryResponse struct {
	Entry      *EntryResponse `json:"entry"`
	Commission *EntryResponse `json:"commission,omitempty"`
}

// CreateEntryFromResult converts a use case result to a response.
func CreateEntryFromResult(res *usecase.CreateEntryResult) *CreateEntryResponse {
	out := &CreateEntryResponse{Entry: EntryFromDomain(res.Entry)}
	if res.Commission != nil {
		out.Commission = EntryFromDomain(res.Commission)
	}
	return out
}

// SettlementResponse represents a settlement in API responses.
type SettlementResponse struct {
	ID             string          `json:"id"`
	PartyID        string          `json:"party_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	EntryCount     int64           `json:"entry_count"`
	Note           string          `json:"note,omitempty"`
	SettledAt      time.Time       `json:"settled_at"`
}

// SettlementFromDomain converts a domain settlement to a response.
func SettlementFromDomain(s *domain.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:             s.ID,
		PartyID:        s.PartyID,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		EntryCount:     s.EntryCount,
		Note:           s.Note,
		SettledAt:      s.SettledAt,
	}
}

// SettlementsFromDomain converts domain settlements to responses.
func SettlementsFromDomain(settlements []*domain.Settlement) []*SettlementResponse {
	result := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		result[i] = SettlementFromDomain(s)
	}
	return result
}

// ListSettlementsResponse wraps a page of settlements.
type ListSettlementsResponse struct {
	Settlements []*SettlementResponse `json:"settlements"`
	Total       int64                 `json:"total"`
}

// StatementPeriodResponse is one settled period of a party statement.
type StatementPeriodResponse struct {
	Settlement *SettlementResponse `json:"settlement"`
	Entries    []*EntryResponse    `json:"entries"`
}

// StatementResponse is the full ledger view of a party.
type StatementResponse struct {
	Party          *PartyResponse             `json:"party"`
	Periods        []*StatementPeriodResponse `json:"periods"`
	OpeningBalance decimal.Decimal            `json:"opening_balance"`
	Current        []*EntryResponse           `json:"current"`
	ClosingBalance decimal.Decimal            `json:"closing_balance"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	periods := make([]*StatementPeriodResponse, len(s.Periods))
	for i, p := range s.Periods {
		periods[i] = &StatementPeriodResponse{
			Settlement: SettlementFromDomain(p.Settlement),
			Entries:    EntriesFromDomain(p.Entries),
		}
	}

	return &StatementResponse{
		Party:          PartyFromDomain(s.Party),
		Periods:        periods,
		OpeningBalance: s.OpeningBalance,
		Current:        EntriesFromDomain(s.Current),
		ClosingBalance: s.ClosingBalance,
	}
}

// TrialBalanceRowResponse is one party's closing balance.
type TrialBalanceRowResponse struct {
	PartyID   string          `json:"party_id"`
	PartyName string          `json:"party_name"`
	Balance   decimal.Decimal `json:"balance"`
}

// TrialBalanceSideResponse is one side of the trial balance.
type TrialBalanceSideResponse struct {
	Rows  []TrialBalanceRowResponse `json:"rows"`
	Total decimal.Decimal           `json:"total"`
}

// TrialBalanceResponse represents the trial balance report.
type TrialBalanceResponse struct {
	CreditSide  TrialBalanceSideResponse `json:"credit_side"`
	DebitSide   TrialBalanceSideResponse `json:"debit_side"`
	Difference  decimal.Decimal          `json:"difference"`
	PartyCount  int                      `json:"party_count"`
	GeneratedAt time.Time                `json:"generated_at"`
}

// TrialBalanceFromDomain converts a domain trial balance to a response.
func TrialBalanceFromDomain(tb *domain.TrialBalance) *TrialBalanceResponse {
	return &TrialBalanceResponse{
		CreditSide:  trialBalanceSide(tb.CreditSide),
		DebitSide:   trialBalanceSide(tb.DebitSide),
		Difference:  tb.Difference,
		PartyCount:  tb.PartyCount,
		GeneratedAt: tb.GeneratedAt,
	}
}

func trialBalanceSide(side domain.TrialBalanceSide) TrialBalanceSideResponse {
	rows := make([]TrialBalanceRowResponse, len(side.Rows))
	for i, row := range side.Rows {
		rows[i] = TrialBalanceRowResponse{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Balance:   row.Balance,
		}
	}
	return TrialBalanceSideResponse{Rows: rows, Total: side.Total}
}

// ConsistencyRowResponse compares recorded and recomputed balances.
type ConsistencyRowResponse struct {
	PartyID   string          `json:"party_id"`
	PartyName string          `json:"party_name"`
	Recorded  decimal.Decimal `json:"recorded"`
	Computed  decimal.Decimal `json:"computed"`
}

// ConsistencyResponse represents the consistency check report.
type ConsistencyResponse struct {
	Consistent bool                     `json:"consistent"`
	Mismatches []ConsistencyRowResponse `json:"mismatches"`
	PartyCount int                      `json:"party_count"`
	CheckedAt  time.Time                `json:"checked_at"`
}

// ConsistencyFromReport converts a use case report to a response.
func ConsistencyFromReport(report *usecase.ConsistencyReport) *ConsistencyResponse {
	mismatches := make([]ConsistencyRowResponse, len(report.Mismatches))
	for i, row := range report.Mismatches {
		mismatches[i] = ConsistencyRowResponse{
			PartyID:   row.PartyID,
			PartyName: row.PartyName,
			Recorded:  row.Recorded,
			Computed:  row.Computed,
		}
	}

	return &ConsistencyResponse{
		Consistent: report.Consistent,
		Mismatches: mismatches,
		PartyCount: report.PartyCount,
		CheckedAt:  report.CheckedAt,
	}
}

// AuditLogResponse represents an audit log in API responses.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	IPAddress    string         `json:"ip_address,omitempty"`
	RequestID    string         `json:"request_id,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogFromDomain converts a domain audit log to a response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           l.ID,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		IPAddress:    l.IPAddress,
		RequestID:    l.RequestID,
		BeforeState:  l.BeforeState,
		AfterState:   l.AfterState,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
