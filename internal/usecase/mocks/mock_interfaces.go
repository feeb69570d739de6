//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks -mock_names=PartyRepository=MockGenPartyRepository,EntryRepository=MockGenEntryRepository,SettlementRepository=MockGenSettlementRepository,ReportRepository=MockGenReportRepository,OutboxRepository=MockGenOutboxRepository,AuditRepository=MockGenAuditRepository,Transaction=MockGenTransaction,TransactionManager=MockGenTransactionManager,Retrier=MockGenRetrier,IDGenerator=MockGenIDGenerator,Cache=MockGenCache,IdempotencyStore=MockGenIdempotencyStore
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/mjindal/ledgerbook/internal/domain"
	usecase "github.com/mjindal/ledgerbook/internal/usecase"
	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"
)

// MockGenPartyRepository is a mock of PartyRepository interface.
type MockGenPartyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenPartyRepositoryMockRecorder
	isgomock struct{}
}

// MockGenPartyRepositoryMockRecorder is the mock recorder for MockGenPartyRepository.
type MockGenPartyRepositoryMockRecorder struct {
	mock *MockGenPartyRepository
}

// NewMockGenPartyRepository creates a new mock instance.
func NewMockGenPartyRepository(ctrl *gomock.Controller) *MockGenPartyRepository {
	mock := &MockGenPartyRepository{ctrl: ctrl}
	mock.recorder = &MockGenPartyRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenPartyRepository) EXPECT() *MockGenPartyRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGenPartyRepository) Create(ctx context.Context, tx usecase.Transaction, party *domain.Party) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, party)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGenPartyRepositoryMockRecorder) Create(ctx, tx, party any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGenPartyRepository)(nil).Create), ctx, tx, party)
}

// GetByID mocks base method.
func (m *MockGenPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Party)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockGenPartyRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockGenPartyRepository)(nil).GetByID), ctx, id)
}

// GetByIDForUpdate mocks base method.
func (m *MockGenPartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*domain.Party)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDForUpdate indicates an expected call of GetByIDForUpdate.
func (mr *MockGenPartyRepositoryMockRecorder) GetByIDForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUpdate", reflect.TypeOf((*MockGenPartyRepository)(nil).GetByIDForUpdate), ctx, tx, id)
}

// Update mocks base method.
func (m *MockGenPartyRepository) Update(ctx context.Context, party *domain.Party) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, party)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockGenPartyRepositoryMockRecorder) Update(ctx, party any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockGenPartyRepository)(nil).Update), ctx, party)
}

// Delete mocks base method.
func (m *MockGenPartyRepository) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGenPartyRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGenPartyRepository)(nil).Delete), ctx, id)
}

// List mocks base method.
func (m *MockGenPartyRepository) List(ctx context.Context, nameFilter string, limit, offset int) ([]*domain.Party, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, nameFilter, limit, offset)
	ret0, _ := ret[0].([]*domain.Party)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockGenPartyRepositoryMockRecorder) List(ctx, nameFilter, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockGenPartyRepository)(nil).List), ctx, nameFilter, limit, offset)
}

// MockGenEntryRepository is a mock of EntryRepository interface.
type MockGenEntryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenEntryRepositoryMockRecorder
	isgomock struct{}
}

// MockGenEntryRepositoryMockRecorder is the mock recorder for MockGenEntryRepository.
type MockGenEntryRepositoryMockRecorder struct {
	mock *MockGenEntryRepository
}

// NewMockGenEntryRepository creates a new mock instance.
func NewMockGenEntryRepository(ctrl *gomock.Controller) *MockGenEntryRepository {
	mock := &MockGenEntryRepository{ctrl: ctrl}
	mock.recorder = &MockGenEntryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenEntryRepository) EXPECT() *MockGenEntryRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGenEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGenEntryRepositoryMockRecorder) Create(ctx, tx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGenEntryRepository)(nil).Create), ctx, tx, entry)
}

// GetByID mocks base method.
func (m *MockGenEntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockGenEntryRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockGenEntryRepository)(nil).GetByID), ctx, id)
}

// ListCurrentByParty mocks base method.
func (m *MockGenEntryRepository) ListCurrentByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCurrentByParty", ctx, partyID, limit, offset)
	ret0, _ := ret[0].([]*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCurrentByParty indicates an expected call of ListCurrentByParty.
func (mr *MockGenEntryRepositoryMockRecorder) ListCurrentByParty(ctx, partyID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCurrentByParty", reflect.TypeOf((*MockGenEntryRepository)(nil).ListCurrentByParty), ctx, partyID, limit, offset)
}

// AllCurrentByParty mocks base method.
func (m *MockGenEntryRepository) AllCurrentByParty(ctx context.Context, partyID string) ([]*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllCurrentByParty", ctx, partyID)
	ret0, _ := ret[0].([]*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllCurrentByParty indicates an expected call of AllCurrentByParty.
func (mr *MockGenEntryRepositoryMockRecorder) AllCurrentByParty(ctx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllCurrentByParty", reflect.TypeOf((*MockGenEntryRepository)(nil).AllCurrentByParty), ctx, partyID)
}

// AllCurrentByPartyForUpdate mocks base method.
func (m *MockGenEntryRepository) AllCurrentByPartyForUpdate(ctx context.Context, tx usecase.Transaction, partyID string) ([]*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllCurrentByPartyForUpdate", ctx, tx, partyID)
	ret0, _ := ret[0].([]*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllCurrentByPartyForUpdate indicates an expected call of AllCurrentByPartyForUpdate.
func (mr *MockGenEntryRepositoryMockRecorder) AllCurrentByPartyForUpdate(ctx, tx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllCurrentByPartyForUpdate", reflect.TypeOf((*MockGenEntryRepository)(nil).AllCurrentByPartyForUpdate), ctx, tx, partyID)
}

// ListBySettlement mocks base method.
func (m *MockGenEntryRepository) ListBySettlement(ctx context.Context, settlementID string) ([]*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBySettlement", ctx, settlementID)
	ret0, _ := ret[0].([]*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBySettlement indicates an expected call of ListBySettlement.
func (mr *MockGenEntryRepositoryMockRecorder) ListBySettlement(ctx, settlementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBySettlement", reflect.TypeOf((*MockGenEntryRepository)(nil).ListBySettlement), ctx, settlementID)
}

// LastCurrent mocks base method.
func (m *MockGenEntryRepository) LastCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastCurrent", ctx, tx, partyID)
	ret0, _ := ret[0].(*domain.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastCurrent indicates an expected call of LastCurrent.
func (mr *MockGenEntryRepositoryMockRecorder) LastCurrent(ctx, tx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastCurrent", reflect.TypeOf((*MockGenEntryRepository)(nil).LastCurrent), ctx, tx, partyID)
}

// CountCurrent mocks base method.
func (m *MockGenEntryRepository) CountCurrent(ctx context.Context, tx usecase.Transaction, partyID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCurrent", ctx, tx, partyID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCurrent indicates an expected call of CountCurrent.
func (mr *MockGenEntryRepositoryMockRecorder) CountCurrent(ctx, tx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCurrent", reflect.TypeOf((*MockGenEntryRepository)(nil).CountCurrent), ctx, tx, partyID)
}

// CountByParty mocks base method.
func (m *MockGenEntryRepository) CountByParty(ctx context.Context, partyID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByParty", ctx, partyID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByParty indicates an expected call of CountByParty.
func (mr *MockGenEntryRepositoryMockRecorder) CountByParty(ctx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByParty", reflect.TypeOf((*MockGenEntryRepository)(nil).CountByParty), ctx, partyID)
}

// UpdateBalance mocks base method.
func (m *MockGenEntryRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBalance", ctx, tx, id, balance)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBalance indicates an expected call of UpdateBalance.
func (mr *MockGenEntryRepositoryMockRecorder) UpdateBalance(ctx, tx, id, balance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBalance", reflect.TypeOf((*MockGenEntryRepository)(nil).UpdateBalance), ctx, tx, id, balance)
}

// Delete mocks base method.
func (m *MockGenEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, tx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGenEntryRepositoryMockRecorder) Delete(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGenEntryRepository)(nil).Delete), ctx, tx, id)
}

// StampSettlement mocks base method.
func (m *MockGenEntryRepository) StampSettlement(ctx context.Context, tx usecase.Transaction, partyID, settlementID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StampSettlement", ctx, tx, partyID, settlementID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StampSettlement indicates an expected call of StampSettlement.
func (mr *MockGenEntryRepositoryMockRecorder) StampSettlement(ctx, tx, partyID, settlementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StampSettlement", reflect.TypeOf((*MockGenEntryRepository)(nil).StampSettlement), ctx, tx, partyID, settlementID)
}

// ClearSettlement mocks base method.
func (m *MockGenEntryRepository) ClearSettlement(ctx context.Context, tx usecase.Transaction, settlementID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearSettlement", ctx, tx, settlementID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearSettlement indicates an expected call of ClearSettlement.
func (mr *MockGenEntryRepositoryMockRecorder) ClearSettlement(ctx, tx, settlementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearSettlement", reflect.TypeOf((*MockGenEntryRepository)(nil).ClearSettlement), ctx, tx, settlementID)
}

// MockGenSettlementRepository is a mock of SettlementRepository interface.
type MockGenSettlementRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenSettlementRepositoryMockRecorder
	isgomock struct{}
}

// MockGenSettlementRepositoryMockRecorder is the mock recorder for MockGenSettlementRepository.
type MockGenSettlementRepositoryMockRecorder struct {
	mock *MockGenSettlementRepository
}

// NewMockGenSettlementRepository creates a new mock instance.
func NewMockGenSettlementRepository(ctrl *gomock.Controller) *MockGenSettlementRepository {
	mock := &MockGenSettlementRepository{ctrl: ctrl}
	mock.recorder = &MockGenSettlementRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenSettlementRepository) EXPECT() *MockGenSettlementRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGenSettlementRepository) Create(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, settlement)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGenSettlementRepositoryMockRecorder) Create(ctx, tx, settlement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGenSettlementRepository)(nil).Create), ctx, tx, settlement)
}

// GetByID mocks base method.
func (m *MockGenSettlementRepository) GetByID(ctx context.Context, id string) (*domain.Settlement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Settlement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockGenSettlementRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockGenSettlementRepository)(nil).GetByID), ctx, id)
}

// LatestByParty mocks base method.
func (m *MockGenSettlementRepository) LatestByParty(ctx context.Context, tx usecase.Transaction, partyID string) (*domain.Settlement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestByParty", ctx, tx, partyID)
	ret0, _ := ret[0].(*domain.Settlement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestByParty indicates an expected call of LatestByParty.
func (mr *MockGenSettlementRepositoryMockRecorder) LatestByParty(ctx, tx, partyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestByParty", reflect.TypeOf((*MockGenSettlementRepository)(nil).LatestByParty), ctx, tx, partyID)
}

// ListByParty mocks base method.
func (m *MockGenSettlementRepository) ListByParty(ctx context.Context, partyID string, limit, offset int) ([]*domain.Settlement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByParty", ctx, partyID, limit, offset)
	ret0, _ := ret[0].([]*domain.Settlement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByParty indicates an expected call of ListByParty.
func (mr *MockGenSettlementRepositoryMockRecorder) ListByParty(ctx, partyID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByParty", reflect.TypeOf((*MockGenSettlementRepository)(nil).ListByParty), ctx, partyID, limit, offset)
}

// Delete mocks base method.
func (m *MockGenSettlementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, tx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGenSettlementRepositoryMockRecorder) Delete(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGenSettlementRepository)(nil).Delete), ctx, tx, id)
}

// MockGenReportRepository is a mock of ReportRepository interface.
type MockGenReportRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenReportRepositoryMockRecorder
	isgomock struct{}
}

// MockGenReportRepositoryMockRecorder is the mock recorder for MockGenReportRepository.
type MockGenReportRepositoryMockRecorder struct {
	mock *MockGenReportRepository
}

// NewMockGenReportRepository creates a new mock instance.
func NewMockGenReportRepository(ctrl *gomock.Controller) *MockGenReportRepository {
	mock := &MockGenReportRepository{ctrl: ctrl}
	mock.recorder = &MockGenReportRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenReportRepository) EXPECT() *MockGenReportRepositoryMockRecorder {
	return m.recorder
}

// TrialBalanceRows mocks base method.
func (m *MockGenReportRepository) TrialBalanceRows(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TrialBalanceRows", ctx)
	ret0, _ := ret[0].([]domain.TrialBalanceRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TrialBalanceRows indicates an expected call of TrialBalanceRows.
func (mr *MockGenReportRepositoryMockRecorder) TrialBalanceRows(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TrialBalanceRows", reflect.TypeOf((*MockGenReportRepository)(nil).TrialBalanceRows), ctx)
}

// ConsistencyRows mocks base method.
func (m *MockGenReportRepository) ConsistencyRows(ctx context.Context) ([]domain.ConsistencyRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsistencyRows", ctx)
	ret0, _ := ret[0].([]domain.ConsistencyRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConsistencyRows indicates an expected call of ConsistencyRows.
func (mr *MockGenReportRepositoryMockRecorder) ConsistencyRows(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsistencyRows", reflect.TypeOf((*MockGenReportRepository)(nil).ConsistencyRows), ctx)
}

// MockGenOutboxRepository is a mock of OutboxRepository interface.
type MockGenOutboxRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenOutboxRepositoryMockRecorder
	isgomock struct{}
}

// MockGenOutboxRepositoryMockRecorder is the mock recorder for MockGenOutboxRepository.
type MockGenOutboxRepositoryMockRecorder struct {
	mock *MockGenOutboxRepository
}

// NewMockGenOutboxRepository creates a new mock instance.
func NewMockGenOutboxRepository(ctrl *gomock.Controller) *MockGenOutboxRepository {
	mock := &MockGenOutboxRepository{ctrl: ctrl}
	mock.recorder = &MockGenOutboxRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenOutboxRepository) EXPECT() *MockGenOutboxRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGenOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGenOutboxRepositoryMockRecorder) Create(ctx, tx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGenOutboxRepository)(nil).Create), ctx, tx, event)
}

// GetUnpublished mocks base method.
func (m *MockGenOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnpublished", ctx, limit)
	ret0, _ := ret[0].([]*domain.OutboxEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnpublished indicates an expected call of GetUnpublished.
func (mr *MockGenOutboxRepositoryMockRecorder) GetUnpublished(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnpublished", reflect.TypeOf((*MockGenOutboxRepository)(nil).GetUnpublished), ctx, limit)
}

// MarkPublished mocks base method.
func (m *MockGenOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPublished", ctx, id, publishedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPublished indicates an expected call of MarkPublished.
func (mr *MockGenOutboxRepositoryMockRecorder) MarkPublished(ctx, id, publishedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPublished", reflect.TypeOf((*MockGenOutboxRepository)(nil).MarkPublished), ctx, id, publishedAt)
}

// DeletePublished mocks base method.
func (m *MockGenOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePublished", ctx, before)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePublished indicates an expected call of DeletePublished.
func (mr *MockGenOutboxRepositoryMockRecorder) DeletePublished(ctx, before any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePublished", reflect.TypeOf((*MockGenOutboxRepository)(nil).DeletePublished), ctx, before)
}

// MockGenAuditRepository is a mock of AuditRepository interface.
type MockGenAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGenAuditRepositoryMockRecorder
	isgomock struct{}
}

// MockGenAuditRepositoryMockRecorder is the mock recorder for MockGenAuditRepository.
type MockGenAuditRepositoryMockRecorder struct {
	mock *MockGenAuditRepository
}

// NewMockGenAuditRepository creates a new mock instance.
func NewMockGenAuditRepository(ctrl *gomock.Controller) *MockGenAuditRepository {
	mock := &MockGenAuditRepository{ctrl: ctrl}
	mock.recorder = &MockGenAuditRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenAuditRepository) EXPECT() *MockGenAuditRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGenAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGenAuditRepositoryMockRecorder) Create(ctx, log any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGenAuditRepository)(nil).Create), ctx, log)
}

// List mocks base method.
func (m *MockGenAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*domain.AuditLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockGenAuditRepositoryMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockGenAuditRepository)(nil).List), ctx, filter)
}

// GetByResourceID mocks base method.
func (m *MockGenAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByResourceID", ctx, resourceType, resourceID)
	ret0, _ := ret[0].([]*domain.AuditLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByResourceID indicates an expected call of GetByResourceID.
func (mr *MockGenAuditRepositoryMockRecorder) GetByResourceID(ctx, resourceType, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByResourceID", reflect.TypeOf((*MockGenAuditRepository)(nil).GetByResourceID), ctx, resourceType, resourceID)
}

// MockGenTransaction is a mock of Transaction interface.
type MockGenTransaction struct {
	ctrl     *gomock.Controller
	recorder *MockGenTransactionMockRecorder
	isgomock struct{}
}

// MockGenTransactionMockRecorder is the mock recorder for MockGenTransaction.
type MockGenTransactionMockRecorder struct {
	mock *MockGenTransaction
}

// NewMockGenTransaction creates a new mock instance.
func NewMockGenTransaction(ctrl *gomock.Controller) *MockGenTransaction {
	mock := &MockGenTransaction{ctrl: ctrl}
	mock.recorder = &MockGenTransactionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenTransaction) EXPECT() *MockGenTransactionMockRecorder {
	return m.recorder
}

// Commit mocks base method.
func (m *MockGenTransaction) Commit(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockGenTransactionMockRecorder) Commit(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockGenTransaction)(nil).Commit), ctx)
}

// Rollback mocks base method.
func (m *MockGenTransaction) Rollback(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockGenTransactionMockRecorder) Rollback(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockGenTransaction)(nil).Rollback), ctx)
}

// MockGenTransactionManager is a mock of TransactionManager interface.
type MockGenTransactionManager struct {
	ctrl     *gomock.Controller
	recorder *MockGenTransactionManagerMockRecorder
	isgomock struct{}
}

// MockGenTransactionManagerMockRecorder is the mock recorder for MockGenTransactionManager.
type MockGenTransactionManagerMockRecorder struct {
	mock *MockGenTransactionManager
}

// NewMockGenTransactionManager creates a new mock instance.
func NewMockGenTransactionManager(ctrl *gomock.Controller) *MockGenTransactionManager {
	mock := &MockGenTransactionManager{ctrl: ctrl}
	mock.recorder = &MockGenTransactionManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenTransactionManager) EXPECT() *MockGenTransactionManagerMockRecorder {
	return m.recorder
}

// Begin mocks base method.
func (m *MockGenTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(usecase.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockGenTransactionManagerMockRecorder) Begin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockGenTransactionManager)(nil).Begin), ctx)
}

// MockGenRetrier is a mock of Retrier interface.
type MockGenRetrier struct {
	ctrl     *gomock.Controller
	recorder *MockGenRetrierMockRecorder
	isgomock struct{}
}

// MockGenRetrierMockRecorder is the mock recorder for MockGenRetrier.
type MockGenRetrierMockRecorder struct {
	mock *MockGenRetrier
}

// NewMockGenRetrier creates a new mock instance.
func NewMockGenRetrier(ctrl *gomock.Controller) *MockGenRetrier {
	mock := &MockGenRetrier{ctrl: ctrl}
	mock.recorder = &MockGenRetrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenRetrier) EXPECT() *MockGenRetrierMockRecorder {
	return m.recorder
}

// Retry mocks base method.
func (m *MockGenRetrier) Retry(ctx context.Context, operation func() error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Retry", ctx, operation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Retry indicates an expected call of Retry.
func (mr *MockGenRetrierMockRecorder) Retry(ctx, operation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retry", reflect.TypeOf((*MockGenRetrier)(nil).Retry), ctx, operation)
}

// MockGenIDGenerator is a mock of IDGenerator interface.
type MockGenIDGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockGenIDGeneratorMockRecorder
	isgomock struct{}
}

// MockGenIDGeneratorMockRecorder is the mock recorder for MockGenIDGenerator.
type MockGenIDGeneratorMockRecorder struct {
	mock *MockGenIDGenerator
}

// NewMockGenIDGenerator creates a new mock instance.
func NewMockGenIDGenerator(ctrl *gomock.Controller) *MockGenIDGenerator {
	mock := &MockGenIDGenerator{ctrl: ctrl}
	mock.recorder = &MockGenIDGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenIDGenerator) EXPECT() *MockGenIDGeneratorMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockGenIDGenerator) Generate() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate")
	ret0, _ := ret[0].(string)
	return ret0
}

// Generate indicates an expected call of Generate.
func (mr *MockGenIDGeneratorMockRecorder) Generate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockGenIDGenerator)(nil).Generate))
}

// MockGenCache is a mock of Cache interface.
type MockGenCache struct {
	ctrl     *gomock.Controller
	recorder *MockGenCacheMockRecorder
	isgomock struct{}
}

// MockGenCacheMockRecorder is the mock recorder for MockGenCache.
type MockGenCacheMockRecorder struct {
	mock *MockGenCache
}

// NewMockGenCache creates a new mock instance.
func NewMockGenCache(ctrl *gomock.Controller) *MockGenCache {
	mock := &MockGenCache{ctrl: ctrl}
	mock.recorder = &MockGenCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenCache) EXPECT() *MockGenCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockGenCache) Get(ctx context.Context, key string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockGenCacheMockRecorder) Get(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockGenCache)(nil).Get), ctx, key)
}

// Set mocks base method.
func (m *MockGenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockGenCacheMockRecorder) Set(ctx, key, value, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockGenCache)(nil).Set), ctx, key, value, ttl)
}

// Delete mocks base method.
func (m *MockGenCache) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockGenCacheMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockGenCache)(nil).Delete), ctx, key)
}

// MockGenIdempotencyStore is a mock of IdempotencyStore interface.
type MockGenIdempotencyStore struct {
	ctrl     *gomock.Controller
	recorder *MockGenIdempotencyStoreMockRecorder
	isgomock struct{}
}

// MockGenIdempotencyStoreMockRecorder is the mock recorder for MockGenIdempotencyStore.
type MockGenIdempotencyStoreMockRecorder struct {
	mock *MockGenIdempotencyStore
}

// NewMockGenIdempotencyStore creates a new mock instance.
func NewMockGenIdempotencyStore(ctrl *gomock.Controller) *MockGenIdempotencyStore {
	mock := &MockGenIdempotencyStore{ctrl: ctrl}
	mock.recorder = &MockGenIdempotencyStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGenIdempotencyStore) EXPECT() *MockGenIdempotencyStoreMockRecorder {
	return m.recorder
}

// CheckAndSet mocks base method.
func (m *MockGenIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAndSet", ctx, key, response, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].([]byte)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CheckAndSet indicates an expected call of CheckAndSet.
func (mr *MockGenIdempotencyStoreMockRecorder) CheckAndSet(ctx, key, response, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndSet", reflect.TypeOf((*MockGenIdempotencyStore)(nil).CheckAndSet), ctx, key, response, ttl)
}

// Update mocks base method.
func (m *MockGenIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, key, response, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockGenIdempotencyStoreMockRecorder) Update(ctx, key, response, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockGenIdempotencyStore)(nil).Update), ctx, key, response, ttl)
}
