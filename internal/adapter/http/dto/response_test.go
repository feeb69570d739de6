package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

func TestEntryFromDomain(t *testing.T) {
	ref := "entry-1"
	entry := &domain.Entry{
		ID:         "entry-2",
		PartyID:    "party-1",
		EntryDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Credit:     decimal.NewFromInt(25),
		Debit:      decimal.Zero,
		Balance:    decimal.NewFromInt(1025),
		Kind:       domain.EntryKindCommission,
		RefEntryID: &ref,
	}

	resp := EntryFromDomain(entry)

	if resp.ID != "entry-2" || resp.PartyID != "party-1" {
		t.Errorf("unexpected identifiers: %+v", resp)
	}
	if resp.Kind != "commission" {
		t.Errorf("expected commission kind, got %q", resp.Kind)
	}
	if resp.RefEntryID == nil || *resp.RefEntryID != "entry-1" {
		t.Errorf("expected ref entry ID to carry over, got %v", resp.RefEntryID)
	}
	if resp.SettlementID != nil {
		t.Errorf("expected nil settlement ID, got %v", resp.SettlementID)
	}
}

func TestStatementFromDomain(t *testing.T) {
	party := &domain.Party{ID: "party-1", Name: "Gupta"}
	settlement := &domain.Settlement{ID: "stl-1", PartyID: "party-1", EntryCount: 2}
	stmt := &domain.Statement{
		Party: party,
		Periods: []domain.StatementPeriod{
			{Settlement: settlement, Entries: []*domain.Entry{{ID: "e1"}, {ID: "e2"}}},
		},
		OpeningBalance: decimal.NewFromInt(100),
		Current:        []*domain.Entry{{ID: "e3"}},
		ClosingBalance: decimal.NewFromInt(130),
	}

	resp := StatementFromDomain(stmt)

	if resp.Party.ID != "party-1" {
		t.Errorf("expected party in statement, got %+v", resp.Party)
	}
	if len(resp.Periods) != 1 || resp.Periods[0].Settlement.ID != "stl-1" {
		t.Fatalf("expected one settled period, got %+v", resp.Periods)
	}
	if len(resp.Periods[0].Entries) != 2 {
		t.Errorf("expected two settled entries, got %d", len(resp.Periods[0].Entries))
	}
	if len(resp.Current) != 1 || resp.Current[0].ID != "e3" {
		t.Errorf("expected one current entry, got %+v", resp.Current)
	}
	if !resp.ClosingBalance.Equal(decimal.NewFromInt(130)) {
		t.Errorf("expected closing balance 130, got %s", resp.ClosingBalance)
	}
}

func TestTrialBalanceFromDomain(t *testing.T) {
	rows := []domain.TrialBalanceRow{
		{PartyID: "p1", PartyName: "A", Balance: decimal.NewFromInt(300)},
		{PartyID: "p2", PartyName: "B", Balance: decimal.NewFromInt(-120)},
	}
	tb := domain.BuildTrialBalance(rows, time.Now())

	resp := TrialBalanceFromDomain(tb)

	if len(resp.CreditSide.Rows) != 1 || !resp.CreditSide.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("unexpected credit side: %+v", resp.CreditSide)
	}
	if len(resp.DebitSide.Rows) != 1 || !resp.DebitSide.Total.Equal(decimal.NewFromInt(120)) {
		t.Errorf("unexpected debit side: %+v", resp.DebitSide)
	}
	if !resp.Difference.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected difference 180, got %s", resp.Difference)
	}
	if resp.PartyCount != 2 {
		t.Errorf("expected party count 2, got %d", resp.PartyCount)
	}
}

func TestConsistencyFromReport(t *testing.T) {
	report := &usecase.ConsistencyReport{
		Consistent: false,
		Mismatches: []domain.ConsistencyRow{
			{PartyID: "p2", Recorded: decimal.NewFromInt(10), Computed: decimal.NewFromInt(12)},
		},
		PartyCount: 3,
	}

	resp := ConsistencyFromReport(report)

	if resp.Consistent {
		t.Error("expected inconsistent report")
	}
	if len(resp.Mismatches) != 1 || resp.Mismatches[0].PartyID != "p2" {
		t.Errorf("unexpected mismatches: %+v", resp.Mismatches)
	}
}

func TestCreateEntryFromResult(t *testing.T) {
	res := &usecase.CreateEntryResult{
		Entry:      &domain.Entry{ID: "e1", Kind: domain.EntryKindRegular},
		Commission: &domain.Entry{ID: "e2", Kind: domain.EntryKindCommission},
	}

	resp := CreateEntryFromResult(res)

	if resp.Entry.ID != "e1" {
		t.Errorf("expected entry e1, got %+v", resp.Entry)
	}
	if resp.Commission == nil || resp.Commission.ID != "e2" {
		t.Errorf("expected commission e2, got %+v", resp.Commission)
	}

	bare := CreateEntryFromResult(&usecase.CreateEntryResult{Entry: &domain.Entry{ID: "e3"}})
	if bare.Commission != nil {
		t.Errorf("expected no commission, got %+v", bare.Commission)
	}
}
