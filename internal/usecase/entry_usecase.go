package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// EntryUseCase handles ledger entry business logic.
type EntryUseCase struct {
	txManager      TransactionManager
	retrier        Retrier
	partyRepo      PartyRepository
	entryRepo      EntryRepository
	settlementRepo SettlementRepository
	outboxRepo     OutboxRepository
	auditRepo      AuditRepository
	cache          Cache
	idGen          IDGenerator
	metrics        *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase. metrics may be nil.
func NewEntryUseCase(
	txManager TransactionManager,
	retrier Retrier,
	partyRepo PartyRepository,
	entryRepo EntryRepository,
	settlementRepo SettlementRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	cache Cache,
	idGen IDGenerator,
	m *metrics.Metrics,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:      txManager,
		retrier:        retrier,
		partyRepo:      partyRepo,
		entryRepo:      entryRepo,
		settlementRepo: settlementRepo,
		outboxRepo:     outboxRepo,
		auditRepo:      auditRepo,
		cache:          cache,
		idGen:          idGen,
		metrics:        m,
	}
}

// CreateEntryInput represents input for creating an entry.
type CreateEntryInput struct {
	PartyID         string
	EntryDate       *time.Time
	Remarks         string
	Credit          decimal.Decimal
	Debit           decimal.Decimal
	ApplyCommission bool
}

// CreateEntryResult carries the created entry and, when commission was
// applied, the derived commission entry.
type CreateEntryResult struct {
	Entry      *domain.Entry
	Commission *domain.Entry
}

// CreateEntry records a credit or debit entry for a party, computing the
// running balance under a row lock. When the party carries a commission
// rate and the input requests it, a commission entry is recorded in the
// same transaction.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*CreateEntryResult, error) {
	now := time.Now().UTC()

	entryDate := now
	if input.EntryDate != nil {
		entryDate = input.EntryDate.UTC()
	}

	entry := &domain.Entry{
		ID:        uc.idGen.Generate(),
		PartyID:   input.PartyID,
		EntryDate: entryDate,
		Remarks:   input.Remarks,
		Credit:    input.Credit,
		Debit:     input.Debit,
		Kind:      domain.EntryKindRegular,
		CreatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		if uc.metrics != nil {
			uc.metrics.EntryErrors.WithLabelValues("validation").Inc()
		}
		return nil, err
	}

	if err := domain.ValidateAmount(entry.Amount()); err != nil {
		if uc.metrics != nil {
			uc.metrics.EntryErrors.WithLabelValues("amount").Inc()
		}
		return nil, err
	}

	var result *CreateEntryResult

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		result, err = uc.createEntryTx(ctx, entry, input.ApplyCommission, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateReports(ctx)
	uc.writeAudit(ctx, domain.AuditActionEntryCreate, result.Entry.ID, nil, result.Entry)

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(result.Entry.Side()).Inc()
		amount, _ := result.Entry.Amount().Float64()
		uc.metrics.EntryAmount.Observe(amount)

		if result.Commission != nil {
			switch {
			case result.Commission.Credit.IsPositive():
				uc.metrics.CommissionTaken.Inc()
			case result.Commission.Debit.IsPositive():
				uc.metrics.CommissionGiven.Inc()
			}
		}
	}

	return result, nil
}

func (uc *EntryUseCase) createEntryTx(ctx context.Context, proto *domain.Entry, applyCommission bool, now time.Time) (*CreateEntryResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	party, err := uc.partyRepo.GetByIDForUpdate(ctx, tx, proto.PartyID)
	if err != nil {
		return nil, err
	}

	if applyCommission && !party.HasCommission() {
		return nil, domain.ErrCommissionNotConfigured
	}

	opening, last, err := uc.openingBalance(ctx, tx, party)
	if err != nil {
		return nil, err
	}

	// Copy so a retried transaction starts from the validated prototype.
	entry := *proto
	entry.Balance = opening.Add(entry.Signed())

	if err := uc.entryRepo.Create(ctx, tx, &entry); err != nil {
		return nil, err
	}

	result := &CreateEntryResult{Entry: &entry}

	if applyCommission {
		commission, err := uc.createCommissionTx(ctx, tx, party, &entry, now)
		if err != nil {
			return nil, err
		}
		result.Commission = commission
	}

	// A backdated entry lands before existing entries in ledger order,
	// so every balance from that point on must be rewritten.
	if last != nil && entry.EntryDate.Before(last.EntryDate) {
		recomputed, err := uc.recomputeCurrentTx(ctx, tx, party)
		if err != nil {
			return nil, err
		}

		for _, e := range recomputed {
			if e.ID == entry.ID {
				entry.Balance = e.Balance
			}
			if result.Commission != nil && e.ID == result.Commission.ID {
				result.Commission.Balance = e.Balance
			}
		}
	}

	if err := uc.recordEntryEvent(ctx, tx, domain.EventTypeEntryCreated, result.Entry, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// createCommissionTx records the derived commission entry. Direction
// "take" credits the party ledger, "give" debits it.
func (uc *EntryUseCase) createCommissionTx(ctx context.Context, tx Transaction, party *domain.Party, src *domain.Entry, now time.Time) (*domain.Entry, error) {
	fee := party.Commission(src.Amount())
	if !fee.IsPositive() {
		return nil, nil
	}

	commission := &domain.Entry{
		ID:         uc.idGen.Generate(),
		PartyID:    party.ID,
		EntryDate:  src.EntryDate,
		Remarks:    "commission @ " + party.CommissionRate.String() + "%",
		Kind:       domain.EntryKindCommission,
		RefEntryID: &src.ID,
		CreatedAt:  now,
	}

	switch party.CommissionDirection {
	case domain.CommissionTake:
		commission.Credit = fee
	case domain.CommissionGive:
		commission.Debit = fee
	default:
		return nil, domain.ErrMissingCommissionDirection
	}

	commission.Balance = src.Balance.Add(commission.Signed())

	if err := uc.entryRepo.Create(ctx, tx, commission); err != nil {
		return nil, err
	}

	return commission, nil
}

// openingBalance resolves the balance preceding the next current entry:
// the last current entry's balance, else the latest settlement's closing
// balance, else the party's opening balance. The last current entry is
// returned alongside, nil when the period is empty.
func (uc *EntryUseCase) openingBalance(ctx context.Context, tx Transaction, party *domain.Party) (decimal.Decimal, *domain.Entry, error) {
	last, err := uc.entryRepo.LastCurrent(ctx, tx, party.ID)
	if err == nil {
		return last.Balance, last, nil
	}
	if !errors.Is(err, domain.ErrEntryNotFound) {
		return decimal.Zero, nil, err
	}

	settlement, err := uc.settlementRepo.LatestByParty(ctx, tx, party.ID)
	if err == nil {
		return settlement.ClosingBalance, nil, nil
	}
	if !errors.Is(err, domain.ErrSettlementNotFound) {
		return decimal.Zero, nil, err
	}

	return party.OpeningBalance, nil, nil
}

// GetEntry retrieves an entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntriesByPartyInput represents input for listing current entries.
type ListEntriesByPartyInput struct {
	PartyID string
	Limit   int
	Offset  int
}

// ListEntriesByParty lists a party's current-period entries.
func (uc *EntryUseCase) ListEntriesByParty(ctx context.Context, input ListEntriesByPartyInput) ([]*domain.Entry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.ListCurrentByParty(ctx, input.PartyID, limit, offset)
}

// DeleteEntry deletes a current-period entry and recomputes the running
// balances of the party's remaining current entries. Settled entries are
// immutable until their settlement is undone.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	var deleted *domain.Entry

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		deleted, err = uc.deleteEntryTx(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	uc.invalidateReports(ctx)
	uc.writeAudit(ctx, domain.AuditActionEntryDelete, id, deleted, nil)

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.Inc()
	}

	return nil
}

func (uc *EntryUseCase) deleteEntryTx(ctx context.Context, id string) (*domain.Entry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entry.Settled() {
		return nil, domain.ErrEntrySettled
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	party, err := uc.partyRepo.GetByIDForUpdate(ctx, tx, entry.PartyID)
	if err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Delete(ctx, tx, id); err != nil {
		return nil, err
	}

	if _, err := uc.recomputeCurrentTx(ctx, tx, party); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.recordEntryEvent(ctx, tx, domain.EventTypeEntryDeleted, entry, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// recomputeCurrentTx rewrites the running balances of the party's current
// entries after a removal or an out-of-order insert. It returns the
// entries in ledger order with their fresh balances.
func (uc *EntryUseCase) recomputeCurrentTx(ctx context.Context, tx Transaction, party *domain.Party) ([]*domain.Entry, error) {
	opening := party.OpeningBalance

	settlement, err := uc.settlementRepo.LatestByParty(ctx, tx, party.ID)
	if err == nil {
		opening = settlement.ClosingBalance
	} else if !errors.Is(err, domain.ErrSettlementNotFound) {
		return nil, err
	}

	entries, err := uc.entryRepo.AllCurrentByPartyForUpdate(ctx, tx, party.ID)
	if err != nil {
		return nil, err
	}

	stale := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		stale[e.ID] = e.Balance
	}

	domain.RunningBalances(opening, entries)

	for _, e := range entries {
		if e.Balance.Equal(stale[e.ID]) {
			continue
		}

		if err := uc.entryRepo.UpdateBalance(ctx, tx, e.ID, e.Balance); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func (uc *EntryUseCase) recordEntryEvent(ctx context.Context, tx Transaction, eventType string, entry *domain.Entry, now time.Time) error {
	payload := map[string]any{
		"entry_id": entry.ID,
		"party_id": entry.PartyID,
		"credit":   entry.Credit.String(),
		"debit":    entry.Debit.String(),
		"kind":     string(entry.Kind),
	}
	if eventType == domain.EventTypeEntryCreated {
		payload["balance"] = entry.Balance.String()
	}

	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   entry.ID,
		AggregateType: domain.AggregateTypeEntry,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     now,
	})
}

func (uc *EntryUseCase) invalidateReports(ctx context.Context) {
	_ = uc.cache.Delete(ctx, TrialBalanceCacheKey)
}

func (uc *EntryUseCase) writeAudit(ctx context.Context, action domain.AuditAction, entryID string, before, after any) {
	log := &domain.AuditLog{
		Action:       string(action),
		ResourceType: "entry",
		ResourceID:   entryID,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, log); err != nil {
		return
	}

	if uc.metrics != nil {
		uc.metrics.AuditLogsCreated.WithLabelValues(log.Action, log.Status).Inc()
	}
}
