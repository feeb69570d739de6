package usecase

import (
	"context"

	"github.com/mjindal/ledgerbook/internal/domain"
)

// AuditUseCase exposes audit trail queries.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListAuditLogs lists audit logs matching the filter.
func (uc *AuditUseCase) ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	return uc.auditRepo.List(ctx, filter)
}

// GetAuditLogsByResource lists the audit trail of a single resource.
func (uc *AuditUseCase) GetAuditLogsByResource(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	return uc.auditRepo.GetByResourceID(ctx, resourceType, resourceID)
}
