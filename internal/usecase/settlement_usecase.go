package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// SettlementUseCase handles Monday Final settlement business logic.
type SettlementUseCase struct {
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

// NewSettlementUseCase creates a new SettlementUseCase. metrics may be nil.
func NewSettlementUseCase(
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
) *SettlementUseCase {
	return &SettlementUseCase{
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

// SettleInput represents input for a Monday Final settlement.
type SettleInput struct {
	PartyID string
	Note    string
}

// Settle freezes the party's current entries as old records. The closing
// balance is the running balance of the last current entry.
func (uc *SettlementUseCase) Settle(ctx context.Context, input SettleInput) (*domain.Settlement, error) {
	start := time.Now()

	var settlement *domain.Settlement

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		settlement, err = uc.settleTx(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateReports(ctx)
	uc.writeAudit(ctx, domain.AuditActionSettlementCreate, settlement.ID, nil, settlement)

	if uc.metrics != nil {
		uc.metrics.SettlementsCreated.Inc()
		uc.metrics.SettledEntries.Observe(float64(settlement.EntryCount))
		uc.metrics.SettlementDuration.Observe(time.Since(start).Seconds())
	}

	return settlement, nil
}

func (uc *SettlementUseCase) settleTx(ctx context.Context, input SettleInput) (*domain.Settlement, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	party, err := uc.partyRepo.GetByIDForUpdate(ctx, tx, input.PartyID)
	if err != nil {
		return nil, err
	}

	last, err := uc.entryRepo.LastCurrent(ctx, tx, party.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, domain.ErrNothingToSettle
		}

		return nil, err
	}

	opening := party.OpeningBalance

	previous, err := uc.settlementRepo.LatestByParty(ctx, tx, party.ID)
	if err == nil {
		opening = previous.ClosingBalance
	} else if !errors.Is(err, domain.ErrSettlementNotFound) {
		return nil, err
	}

	count, err := uc.entryRepo.CountCurrent(ctx, tx, party.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	settlement := &domain.Settlement{
		ID:             uc.idGen.Generate(),
		PartyID:        party.ID,
		OpeningBalance: opening,
		ClosingBalance: last.Balance,
		EntryCount:     count,
		Note:           input.Note,
		SettledAt:      now,
	}

	if err := uc.settlementRepo.Create(ctx, tx, settlement); err != nil {
		return nil, err
	}

	stamped, err := uc.entryRepo.StampSettlement(ctx, tx, party.ID, settlement.ID)
	if err != nil {
		return nil, err
	}

	if stamped != count {
		// Party row is locked, so the current set cannot move under us.
		return nil, domain.ErrNothingToSettle
	}

	err = uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   settlement.ID,
		AggregateType: domain.AggregateTypeSettlement,
		EventType:     domain.EventTypeSettlementCreated,
		Payload: map[string]any{
			"settlement_id":   settlement.ID,
			"party_id":        settlement.PartyID,
			"closing_balance": settlement.ClosingBalance.String(),
			"entry_count":     settlement.EntryCount,
		},
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return settlement, nil
}

// Undo reverses a settlement, returning its entries to the current
// period. Only the party's latest settlement can be undone.
func (uc *SettlementUseCase) Undo(ctx context.Context, settlementID string) error {
	var undone *domain.Settlement

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		undone, err = uc.undoTx(ctx, settlementID)
		return err
	})
	if err != nil {
		return err
	}

	uc.invalidateReports(ctx)
	uc.writeAudit(ctx, domain.AuditActionSettlementUndo, settlementID, undone, nil)

	if uc.metrics != nil {
		uc.metrics.SettlementsUndone.Inc()
	}

	return nil
}

func (uc *SettlementUseCase) undoTx(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	settlement, err := uc.settlementRepo.GetByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := uc.partyRepo.GetByIDForUpdate(ctx, tx, settlement.PartyID); err != nil {
		return nil, err
	}

	latest, err := uc.settlementRepo.LatestByParty(ctx, tx, settlement.PartyID)
	if err != nil {
		return nil, err
	}

	if latest.ID != settlement.ID {
		return nil, domain.ErrNotLatestSettlement
	}

	if err := uc.entryRepo.ClearSettlement(ctx, tx, settlement.ID); err != nil {
		return nil, err
	}

	if err := uc.settlementRepo.Delete(ctx, tx, settlement.ID); err != nil {
		return nil, err
	}

	err = uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   settlement.ID,
		AggregateType: domain.AggregateTypeSettlement,
		EventType:     domain.EventTypeSettlementUndone,
		Payload: map[string]any{
			"settlement_id": settlement.ID,
			"party_id":      settlement.PartyID,
			"entry_count":   settlement.EntryCount,
		},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return settlement, nil
}

// GetSettlement retrieves a settlement by ID.
func (uc *SettlementUseCase) GetSettlement(ctx context.Context, id string) (*domain.Settlement, error) {
	return uc.settlementRepo.GetByID(ctx, id)
}

// ListSettlementsByPartyInput represents input for listing settlements.
type ListSettlementsByPartyInput struct {
	PartyID string
	Limit   int
	Offset  int
}

// ListSettlementsByParty lists a party's settlements, newest first.
func (uc *SettlementUseCase) ListSettlementsByParty(ctx context.Context, input ListSettlementsByPartyInput) ([]*domain.Settlement, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.settlementRepo.ListByParty(ctx, input.PartyID, limit, offset)
}

// Statement assembles the party's full ledger view: settled periods in
// chronological order followed by the current period.
func (uc *SettlementUseCase) Statement(ctx context.Context, partyID string) (*domain.Statement, error) {
	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	var settlements []*domain.Settlement
	for offset := 0; ; offset += StatementPageSize {
		page, err := uc.settlementRepo.ListByParty(ctx, partyID, StatementPageSize, offset)
		if err != nil {
			return nil, err
		}

		settlements = append(settlements, page...)
		if len(page) < StatementPageSize {
			break
		}
	}

	// ListByParty returns newest first; statements read oldest first.
	periods := make([]domain.StatementPeriod, 0, len(settlements))
	for i := len(settlements) - 1; i >= 0; i-- {
		s := settlements[i]

		entries, err := uc.entryRepo.ListBySettlement(ctx, s.ID)
		if err != nil {
			return nil, err
		}

		periods = append(periods, domain.StatementPeriod{Settlement: s, Entries: entries})
	}

	opening := party.OpeningBalance
	if len(periods) > 0 {
		opening = periods[len(periods)-1].Settlement.ClosingBalance
	}

	current, err := uc.entryRepo.AllCurrentByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	closing := opening
	if len(current) > 0 {
		closing = current[len(current)-1].Balance
	}

	return &domain.Statement{
		Party:          party,
		Periods:        periods,
		OpeningBalance: opening,
		Current:        current,
		ClosingBalance: closing,
	}, nil
}

func (uc *SettlementUseCase) invalidateReports(ctx context.Context) {
	_ = uc.cache.Delete(ctx, TrialBalanceCacheKey)
}

func (uc *SettlementUseCase) writeAudit(ctx context.Context, action domain.AuditAction, settlementID string, before, after any) {
	log := &domain.AuditLog{
		Action:       string(action),
		ResourceType: "settlement",
		ResourceID:   settlementID,
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
