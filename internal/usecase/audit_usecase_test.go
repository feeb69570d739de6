package usecase_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
	"github.com/mjindal/ledgerbook/internal/usecase/mocks"
)

func TestAuditUseCase_ListAuditLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mocks.NewMockGenAuditRepository(ctrl)
	auditRepo.EXPECT().
		List(gomock.Any(), domain.AuditFilter{Action: "entry.create", Limit: 50}).
		Return([]*domain.AuditLog{{ID: "a1", Action: "entry.create"}}, nil)

	uc := usecase.NewAuditUseCase(auditRepo)

	// Zero limit falls back to the default page size.
	logs, err := uc.ListAuditLogs(context.Background(), domain.AuditFilter{Action: "entry.create"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected 1 log, got %d", len(logs))
	}
}

func TestAuditUseCase_GetAuditLogsByResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mocks.NewMockGenAuditRepository(ctrl)
	auditRepo.EXPECT().
		GetByResourceID(gomock.Any(), "party", "p1").
		Return([]*domain.AuditLog{
			{ID: "a1", Action: "party.create", ResourceID: "p1"},
			{ID: "a2", Action: "party.update", ResourceID: "p1"},
		}, nil)

	uc := usecase.NewAuditUseCase(auditRepo)

	logs, err := uc.GetAuditLogsByResource(context.Background(), "party", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("expected 2 logs, got %d", len(logs))
	}
}
