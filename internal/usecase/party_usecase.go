package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// PartyUseCase handles party business logic.
type PartyUseCase struct {
	txManager  TransactionManager
	partyRepo  PartyRepository
	entryRepo  EntryRepository
	outboxRepo OutboxRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewPartyUseCase creates a new PartyUseCase. metrics may be nil.
func NewPartyUseCase(
	txManager TransactionManager,
	partyRepo PartyRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *PartyUseCase {
	return &PartyUseCase{
		txManager:  txManager,
		partyRepo:  partyRepo,
		entryRepo:  entryRepo,
		outboxRepo: outboxRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		metrics:    m,
	}
}

// CreatePartyInput represents input for creating a party.
type CreatePartyInput struct {
	Name                string
	Phone               string
	Address             string
	CommissionRate      decimal.Decimal
	CommissionDirection domain.CommissionDirection
	OpeningBalance      decimal.Decimal
}

// CreateParty creates a new party.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	now := time.Now().UTC()

	party := &domain.Party{
		ID:                  uc.idGen.Generate(),
		Name:                strings.TrimSpace(input.Name),
		Phone:               input.Phone,
		Address:             input.Address,
		CommissionRate:      input.CommissionRate,
		CommissionDirection: input.CommissionDirection,
		OpeningBalance:      input.OpeningBalance,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := party.Validate(); err != nil {
		return nil, err
	}

	if err := uc.createPartyTx(ctx, party, now); err != nil {
		return nil, err
	}

	uc.writeAudit(ctx, domain.AuditActionPartyCreate, party.ID, nil, party)

	if uc.metrics != nil {
		uc.metrics.PartiesCreated.Inc()
		uc.metrics.PartyOperations.WithLabelValues("create").Inc()
	}

	return party, nil
}

// createPartyTx writes the party row and its outbox event in one
// transaction.
func (uc *PartyUseCase) createPartyTx(ctx context.Context, party *domain.Party, now time.Time) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.partyRepo.Create(ctx, tx, party); err != nil {
		return err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   party.ID,
		AggregateType: domain.AggregateTypeParty,
		EventType:     domain.EventTypePartyCreated,
		Payload: map[string]any{
			"party_id":             party.ID,
			"name":                 party.Name,
			"commission_direction": string(party.CommissionDirection),
			"opening_balance":      party.OpeningBalance.String(),
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetParty retrieves a party by ID.
func (uc *PartyUseCase) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, id)
}

// UpdatePartyInput represents input for updating a party.
type UpdatePartyInput struct {
	ID                  string
	Name                string
	Phone               string
	Address             string
	CommissionRate      decimal.Decimal
	CommissionDirection domain.CommissionDirection
}

// UpdateParty updates a party's profile and commission settings. The
// opening balance is fixed at creation and not updatable.
func (uc *PartyUseCase) UpdateParty(ctx context.Context, input UpdatePartyInput) (*domain.Party, error) {
	party, err := uc.partyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	before := *party

	party.Name = strings.TrimSpace(input.Name)
	party.Phone = input.Phone
	party.Address = input.Address
	party.CommissionRate = input.CommissionRate
	party.CommissionDirection = input.CommissionDirection
	party.UpdatedAt = time.Now().UTC()

	if err := party.Validate(); err != nil {
		return nil, err
	}

	if err := uc.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	uc.writeAudit(ctx, domain.AuditActionPartyUpdate, party.ID, &before, party)

	if uc.metrics != nil {
		uc.metrics.PartyOperations.WithLabelValues("update").Inc()
	}

	return party, nil
}

// DeleteParty deletes a party. Parties with ledger entries cannot be
// deleted; their entries must be removed first.
func (uc *PartyUseCase) DeleteParty(ctx context.Context, id string) error {
	party, err := uc.partyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := uc.entryRepo.CountByParty(ctx, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrPartyHasEntries
	}

	if err := uc.partyRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.writeAudit(ctx, domain.AuditActionPartyDelete, id, party, nil)

	if uc.metrics != nil {
		uc.metrics.PartiesDeleted.Inc()
		uc.metrics.PartyOperations.WithLabelValues("delete").Inc()
	}

	return nil
}

// ListPartiesInput represents input for listing parties.
type ListPartiesInput struct {
	NameFilter string
	Limit      int
	Offset     int
}

// ListParties lists parties with pagination and optional name search.
func (uc *PartyUseCase) ListParties(ctx context.Context, input ListPartiesInput) ([]*domain.Party, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.partyRepo.List(ctx, strings.TrimSpace(input.NameFilter), limit, offset)
}

func (uc *PartyUseCase) writeAudit(ctx context.Context, action domain.AuditAction, partyID string, before, after any) {
	log := &domain.AuditLog{
		Action:       string(action),
		ResourceType: "party",
		ResourceID:   partyID,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	// Audit writes are best-effort; mutations are not rolled back on failure.
	if err := uc.auditRepo.Create(ctx, log); err != nil {
		return
	}

	if uc.metrics != nil {
		uc.metrics.AuditLogsCreated.WithLabelValues(log.Action, log.Status).Inc()
	}
}
