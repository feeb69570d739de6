package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
)

// PartyRepository defines data access for parties.
type PartyRepository interface {
	Create(ctx context.Context, tx Transaction, party *domain.Party) error
	GetByID(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, nameFilter string, limit, offset int) ([]*domain.Party, error)
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	ListCurrentByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Entry, error)
	AllCurrentByParty(ctx context.Context, partyID string) ([]*domain.Entry, error)
	AllCurrentByPartyForUpdate(ctx context.Context, tx Transaction, partyID string) ([]*domain.Entry, error)
	ListBySettlement(ctx context.Context, settlementID string) ([]*domain.Entry, error)
	LastCurrent(ctx context.Context, tx Transaction, partyID string) (*domain.Entry, error)
	CountCurrent(ctx context.Context, tx Transaction, partyID string) (int64, error)
	CountByParty(ctx context.Context, partyID string) (int64, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal) error
	Delete(ctx context.Context, tx Transaction, id string) error
	StampSettlement(ctx context.Context, tx Transaction, partyID, settlementID string) (int64, error)
	ClearSettlement(ctx context.Context, tx Transaction, settlementID string) error
}

// SettlementRepository defines data access for settlements.
type SettlementRepository interface {
	Create(ctx context.Context, tx Transaction, settlement *domain.Settlement) error
	GetByID(ctx context.Context, id string) (*domain.Settlement, error)
	LatestByParty(ctx context.Context, tx Transaction, partyID string) (*domain.Settlement, error)
	ListByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Settlement, error)
	Delete(ctx context.Context, tx Transaction, id string) error
}

// ReportRepository defines data access for ledger-wide reports.
type ReportRepository interface {
	TrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error)
	ConsistencyRows(ctx context.Context) ([]domain.ConsistencyRow, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
