package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// MockPartyRepository is a mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, party *domain.Party) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error)
	UpdateFunc           func(ctx context.Context, party *domain.Party) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListFunc             func(ctx context.Context, nameFilter string, limit, offset int) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[string]*domain.Party),
	}
}

func (m *MockPartyRepository) Create(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPartyRepository) Update(ctx context.Context, party *domain.Party) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parties[party.ID]; !ok {
		return domain.ErrPartyNotFound
	}
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parties[id]; !ok {
		return domain.ErrPartyNotFound
	}
	delete(m.parties, id)
	return nil
}

func (m *MockPartyRepository) List(ctx context.Context, nameFilter string, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, nameFilter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var parties []*domain.Party
	for _, p := range m.parties {
		parties = append(parties, p)
	}
	sort.Slice(parties, func(i, j int) bool { return parties[i].Name < parties[j].Name })
	return parties, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
// Current entries are returned in ledger order (entry_date, created_at,
// id), mirroring the order the repositories return.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.Entry

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Entry, error)
	LastCurrentFunc     func(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Entry, error)
	StampSettlementFunc func(ctx context.Context, tx usecase.Transaction, partyID, settlementID string) (int64, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) ListCurrentByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	current := m.currentLocked(partyID)
	if offset >= len(current) {
		return nil, nil
	}
	end := offset + limit
	if end > len(current) {
		end = len(current)
	}
	return current[offset:end], nil
}

func (m *MockEntryRepository) AllCurrentByParty(ctx context.Context, partyID string) ([]*domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocked(partyID), nil
}

func (m *MockEntryRepository) AllCurrentByPartyForUpdate(ctx context.Context, tx usecase.Transaction, partyID string) ([]*domain.Entry, error) {
	return m.AllCurrentByParty(ctx, partyID)
}

func (m *MockEntryRepository) ListBySettlement(ctx context.Context, settlementID string) ([]*domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Entry
	for _, e := range m.entries {
		if e.SettlementID != nil && *e.SettlementID == settlementID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEntryRepository) LastCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Entry, error) {
	if m.LastCurrentFunc != nil {
		return m.LastCurrentFunc(ctx, tx, partyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	current := m.currentLocked(partyID)
	if len(current) == 0 {
		return nil, domain.ErrEntryNotFound
	}
	return current[len(current)-1], nil
}

func (m *MockEntryRepository) CountCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.currentLocked(partyID))), nil
}

func (m *MockEntryRepository) CountByParty(ctx context.Context, partyID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, e := range m.entries {
		if e.PartyID == partyID {
			count++
		}
	}
	return count, nil
}

func (m *MockEntryRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ID == id {
			e.Balance = balance
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == id {
			if e.Settled() {
				return domain.ErrEntrySettled
			}
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (m *MockEntryRepository) StampSettlement(ctx context.Context, tx usecase.Transaction, partyID, settlementID string) (int64, error) {
	if m.StampSettlementFunc != nil {
		return m.StampSettlementFunc(ctx, tx, partyID, settlementID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var stamped int64
	for _, e := range m.entries {
		if e.PartyID == partyID && e.SettlementID == nil {
			sid := settlementID
			e.SettlementID = &sid
			stamped++
		}
	}
	return stamped, nil
}

func (m *MockEntryRepository) ClearSettlement(ctx context.Context, tx usecase.Transaction, settlementID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.SettlementID != nil && *e.SettlementID == settlementID {
			e.SettlementID = nil
		}
	}
	return nil
}

func (m *MockEntryRepository) currentLocked(partyID string) []*domain.Entry {
	var out []*domain.Entry
	for _, e := range m.entries {
		if e.PartyID == partyID && e.SettlementID == nil {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out
}

// MockSettlementRepository is a mock implementation of SettlementRepository.
type MockSettlementRepository struct {
	mu          sync.RWMutex
	settlements []*domain.Settlement

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error
	LatestByPartyFunc func(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Settlement, error)
}

func NewMockSettlementRepository() *MockSettlementRepository {
	return &MockSettlementRepository{}
}

func (m *MockSettlementRepository) Create(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, settlement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settlements = append(m.settlements, settlement)
	return nil
}

func (m *MockSettlementRepository) GetByID(ctx context.Context, id string) (*domain.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.settlements {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSettlementNotFound
}

func (m *MockSettlementRepository) LatestByParty(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Settlement, error) {
	if m.LatestByPartyFunc != nil {
		return m.LatestByPartyFunc(ctx, tx, partyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.settlements) - 1; i >= 0; i-- {
		if m.settlements[i].PartyID == partyID {
			return m.settlements[i], nil
		}
	}
	return nil, domain.ErrSettlementNotFound
}

func (m *MockSettlementRepository) ListByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Settlement
	for i := len(m.settlements) - 1; i >= 0; i-- {
		if m.settlements[i].PartyID == partyID {
			out = append(out, m.settlements[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (m *MockSettlementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.settlements {
		if s.ID == id {
			m.settlements = append(m.settlements[:i], m.settlements[i+1:]...)
			return nil
		}
	}
	return domain.ErrSettlementNotFound
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			out = append(out, e)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.OutboxEvent
	for _, e := range m.events {
		if e.Published && e.PublishedAt != nil && e.PublishedAt.Before(before) {
			continue
		}
		kept = append(kept, e)
	}
	m.events = kept
	return nil
}

// Events returns a copy of all recorded events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.OutboxEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.AuditLog
	for _, l := range m.logs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.ResourceType != "" && l.ResourceType != filter.ResourceType {
			continue
		}
		if filter.ResourceID != "" && l.ResourceID != filter.ResourceID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	return m.List(ctx, domain.AuditFilter{ResourceType: resourceType, ResourceID: resourceID})
}

// Logs returns a copy of all recorded audit logs.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.AuditLog, len(m.logs))
	copy(out, m.logs)
	return out
}

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	TrialBalanceRowsFunc func(ctx context.Context) ([]domain.TrialBalanceRow, error)
	ConsistencyRowsFunc  func(ctx context.Context) ([]domain.ConsistencyRow, error)
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

func (m *MockReportRepository) TrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	if m.TrialBalanceRowsFunc != nil {
		return m.TrialBalanceRowsFunc(ctx)
	}
	return nil, nil
}

func (m *MockReportRepository) ConsistencyRows(ctx context.Context) ([]domain.ConsistencyRow, error) {
	if m.ConsistencyRowsFunc != nil {
		return m.ConsistencyRowsFunc(ctx)
	}
	return nil, nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out no-op transactions.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockRetrier runs the operation once without retries.
type MockRetrier struct{}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + itoa(m.next)
}

// MockCache is an in-memory cache without TTL expiry.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
