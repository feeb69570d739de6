package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
	"github.com/mjindal/ledgerbook/internal/usecase/mocks"
)

func TestReportUseCase_TrialBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportRepo := mocks.NewMockGenReportRepository(ctrl)
	reportRepo.EXPECT().TrialBalanceRows(gomock.Any()).Return([]domain.TrialBalanceRow{
		{PartyID: "p1", PartyName: "Creditor", Balance: decimal.NewFromInt(300)},
		{PartyID: "p2", PartyName: "Debtor", Balance: decimal.NewFromInt(-120)},
		{PartyID: "p3", PartyName: "Even", Balance: decimal.Zero},
	}, nil)

	uc := usecase.NewReportUseCase(reportRepo, mocks.NewMockCache(), time.Minute, nil)

	tb, err := uc.TrialBalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tb.CreditSide.Rows) != 1 {
		t.Errorf("expected 1 credit row, got %d", len(tb.CreditSide.Rows))
	}
	if len(tb.DebitSide.Rows) != 1 {
		t.Errorf("expected 1 debit row, got %d", len(tb.DebitSide.Rows))
	}
	if !tb.CreditSide.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected credit total 300, got %s", tb.CreditSide.Total)
	}
	if !tb.DebitSide.Total.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected debit total 120, got %s", tb.DebitSide.Total)
	}
	if !tb.Difference.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected difference 180, got %s", tb.Difference)
	}
	if tb.PartyCount != 3 {
		t.Errorf("expected 3 parties counted, got %d", tb.PartyCount)
	}
}

func TestReportUseCase_TrialBalance_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A single repo query is expected; the second call is served from cache.
	reportRepo := mocks.NewMockGenReportRepository(ctrl)
	reportRepo.EXPECT().TrialBalanceRows(gomock.Any()).Return([]domain.TrialBalanceRow{
		{PartyID: "p1", PartyName: "Creditor", Balance: decimal.NewFromInt(50)},
	}, nil).Times(1)

	cache := mocks.NewMockCache()
	uc := usecase.NewReportUseCase(reportRepo, cache, time.Minute, nil)

	first, err := uc.TrialBalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.TrialBalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.CreditSide.Total.Equal(first.CreditSide.Total) {
		t.Errorf("expected cached total %s, got %s", first.CreditSide.Total, second.CreditSide.Total)
	}
	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Error("expected cached copy to keep the original generation time")
	}
}

func TestReportUseCase_CheckConsistency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportRepo := mocks.NewMockGenReportRepository(ctrl)
	reportRepo.EXPECT().ConsistencyRows(gomock.Any()).Return([]domain.ConsistencyRow{
		{PartyID: "p1", PartyName: "Good", Recorded: decimal.NewFromInt(100), Computed: decimal.NewFromInt(100)},
		{PartyID: "p2", PartyName: "Drifted", Recorded: decimal.NewFromInt(90), Computed: decimal.NewFromInt(100)},
	}, nil)

	uc := usecase.NewReportUseCase(reportRepo, mocks.NewMockCache(), time.Minute, nil)

	report, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Consistent {
		t.Error("expected inconsistent report")
	}
	if len(report.Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.Mismatches))
	}
	if report.Mismatches[0].PartyID != "p2" {
		t.Errorf("expected mismatch for p2, got %s", report.Mismatches[0].PartyID)
	}
	if report.PartyCount != 2 {
		t.Errorf("expected 2 parties checked, got %d", report.PartyCount)
	}
}

func TestReportUseCase_CheckConsistency_AllGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportRepo := mocks.NewMockGenReportRepository(ctrl)
	reportRepo.EXPECT().ConsistencyRows(gomock.Any()).Return(nil, nil)

	uc := usecase.NewReportUseCase(reportRepo, mocks.NewMockCache(), time.Minute, nil)

	report, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Consistent {
		t.Error("expected consistent report")
	}
	if len(report.Mismatches) != 0 {
		t.Errorf("expected no mismatches, got %d", len(report.Mismatches))
	}
}
