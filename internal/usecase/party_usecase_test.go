package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
	"github.com/mjindal/ledgerbook/internal/usecase/mocks"
)

type partyFixture struct {
	repo       *mocks.MockPartyRepository
	entryRepo  *mocks.MockEntryRepository
	outboxRepo *mocks.MockOutboxRepository
	auditRepo  *mocks.MockAuditRepository
	idGen      *mocks.MockIDGenerator
}

func newPartyFixture() *partyFixture {
	return &partyFixture{
		repo:       mocks.NewMockPartyRepository(),
		entryRepo:  mocks.NewMockEntryRepository(),
		outboxRepo: mocks.NewMockOutboxRepository(),
		auditRepo:  mocks.NewMockAuditRepository(),
		idGen:      mocks.NewMockIDGenerator(),
	}
}

func (f *partyFixture) useCase() *usecase.PartyUseCase {
	return usecase.NewPartyUseCase(mocks.NewMockTransactionManager(), f.repo, f.entryRepo, f.outboxRepo, f.auditRepo, f.idGen, nil)
}

func TestPartyUseCase_CreateParty(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreatePartyInput
		setupMocks  func(*partyFixture)
		wantErr     error
		expectError bool
	}{
		{
			name: "successful party creation",
			input: usecase.CreatePartyInput{
				Name:           "Sharma Traders",
				Phone:          "+91-9812345678",
				OpeningBalance: decimal.NewFromInt(1000),
			},
			setupMocks: func(f *partyFixture) {
				f.idGen.GenerateFunc = func() string { return "party-123" }
			},
		},
		{
			name: "commission party with direction",
			input: usecase.CreatePartyInput{
				Name:                "Gupta & Sons",
				CommissionRate:      decimal.NewFromFloat(2.5),
				CommissionDirection: domain.CommissionTake,
			},
			setupMocks: func(f *partyFixture) {},
		},
		{
			name: "commission rate without direction",
			input: usecase.CreatePartyInput{
				Name:           "No Direction",
				CommissionRate: decimal.NewFromFloat(1.5),
			},
			setupMocks:  func(f *partyFixture) {},
			wantErr:     domain.ErrMissingCommissionDirection,
			expectError: true,
		},
		{
			name:        "empty name rejected",
			input:       usecase.CreatePartyInput{Name: "   "},
			setupMocks:  func(f *partyFixture) {},
			wantErr:     domain.ErrInvalidPartyName,
			expectError: true,
		},
		{
			name:  "repository error surfaces",
			input: usecase.CreatePartyInput{Name: "Broken Repo"},
			setupMocks: func(f *partyFixture) {
				f.repo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
					return errors.New("db down")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPartyFixture()
			tt.setupMocks(f)

			uc := f.useCase()
			party, err := uc.CreateParty(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				if len(f.outboxRepo.Events()) != 0 {
					t.Errorf("expected no outbox events on failure, got %d", len(f.outboxRepo.Events()))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if party == nil {
				t.Fatal("expected party, got nil")
			}
			if party.Name != tt.input.Name {
				t.Errorf("expected name %q, got %q", tt.input.Name, party.Name)
			}
			if party.ID == "" {
				t.Error("expected generated ID")
			}

			events := f.outboxRepo.Events()
			if len(events) != 1 {
				t.Fatalf("expected 1 outbox event, got %d", len(events))
			}
			if events[0].EventType != domain.EventTypePartyCreated {
				t.Errorf("expected event type %q, got %q", domain.EventTypePartyCreated, events[0].EventType)
			}
			if events[0].AggregateID != party.ID {
				t.Errorf("expected aggregate id %q, got %q", party.ID, events[0].AggregateID)
			}

			logs := f.auditRepo.Logs()
			if len(logs) != 1 {
				t.Fatalf("expected 1 audit log, got %d", len(logs))
			}
			if logs[0].Action != string(domain.AuditActionPartyCreate) {
				t.Errorf("expected audit action %q, got %q", domain.AuditActionPartyCreate, logs[0].Action)
			}
		})
	}
}

func TestPartyUseCase_UpdateParty(t *testing.T) {
	ctx := context.Background()

	f := newPartyFixture()
	uc := f.useCase()

	created, err := uc.CreateParty(ctx, usecase.CreatePartyInput{
		Name:           "Original Name",
		OpeningBalance: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.UpdateParty(ctx, usecase.UpdatePartyInput{
		ID:                  created.ID,
		Name:                "New Name",
		Phone:               "12345",
		CommissionRate:      decimal.NewFromFloat(3),
		CommissionDirection: domain.CommissionGive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "New Name" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if !updated.OpeningBalance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("opening balance must not change on update, got %s", updated.OpeningBalance)
	}
	if updated.CommissionDirection != domain.CommissionGive {
		t.Errorf("expected direction give, got %q", updated.CommissionDirection)
	}
}

func TestPartyUseCase_UpdateParty_NotFound(t *testing.T) {
	uc := newPartyFixture().useCase()

	_, err := uc.UpdateParty(context.Background(), usecase.UpdatePartyInput{ID: "missing", Name: "X"})
	if !errors.Is(err, domain.ErrPartyNotFound) {
		t.Errorf("expected ErrPartyNotFound, got %v", err)
	}
}

func TestPartyUseCase_DeleteParty(t *testing.T) {
	ctx := context.Background()

	f := newPartyFixture()
	uc := f.useCase()

	party, err := uc.CreateParty(ctx, usecase.CreatePartyInput{Name: "To Delete"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteParty(ctx, party.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.GetParty(ctx, party.ID); !errors.Is(err, domain.ErrPartyNotFound) {
		t.Errorf("expected ErrPartyNotFound after delete, got %v", err)
	}
}

func TestPartyUseCase_DeleteParty_WithEntries(t *testing.T) {
	ctx := context.Background()

	f := newPartyFixture()
	uc := f.useCase()

	party, err := uc.CreateParty(ctx, usecase.CreatePartyInput{Name: "Has Entries"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.entryRepo.Create(ctx, nil, &domain.Entry{
		ID:      "e1",
		PartyID: party.ID,
		Credit:  decimal.NewFromInt(100),
	})

	if err := uc.DeleteParty(ctx, party.ID); !errors.Is(err, domain.ErrPartyHasEntries) {
		t.Errorf("expected ErrPartyHasEntries, got %v", err)
	}
}

func TestPartyUseCase_ListParties(t *testing.T) {
	ctx := context.Background()

	f := newPartyFixture()
	uc := f.useCase()

	f.repo.Create(ctx, nil, &domain.Party{ID: "1", Name: "Alpha"})
	f.repo.Create(ctx, nil, &domain.Party{ID: "2", Name: "Beta"})

	parties, err := uc.ListParties(ctx, usecase.ListPartiesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parties) != 2 {
		t.Errorf("expected 2 parties, got %d", len(parties))
	}
}
