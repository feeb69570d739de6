package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

// SettlementService defines the behavior needed by SettlementHandler.
type SettlementService interface {
	Settle(ctx context.Context, input usecase.SettleInput) (*domain.Settlement, error)
	Undo(ctx context.Context, settlementID string) error
	GetSettlement(ctx context.Context, id string) (*domain.Settlement, error)
	ListSettlementsByParty(ctx context.Context, input usecase.ListSettlementsByPartyInput) ([]*domain.Settlement, error)
	Statement(ctx context.Context, partyID string) (*domain.Statement, error)
}

// SettlementHandler handles settlement HTTP requests.
type SettlementHandler struct {
	settlementUC SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

// Create settles a party's current entries. The request body is optional.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")
	if partyID == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	var req dto.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	settlement, err := h.settlementUC.Settle(r.Context(), req.ToUseCaseInput(partyID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to settle", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementFromDomain(settlement))
}

// Get retrieves a settlement by ID.
func (h *SettlementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing settlement ID", "")
		return
	}

	settlement, err := h.settlementUC.GetSettlement(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get settlement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementFromDomain(settlement))
}

// ListByParty lists a party's settlements, newest first.
func (h *SettlementHandler) ListByParty(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")
	if partyID == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	settlements, err := h.settlementUC.ListSettlementsByParty(r.Context(), usecase.ListSettlementsByPartyInput{
		PartyID: partyID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list settlements", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListSettlementsResponse{
		Settlements: dto.SettlementsFromDomain(settlements),
		Total:       int64(len(settlements)),
	})
}

// Undo reverts the latest settlement of a party, returning its entries
// to the current period.
func (h *SettlementHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing settlement ID", "")
		return
	}

	if err := h.settlementUC.Undo(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to undo settlement", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statement returns the full ledger view of a party: settled periods
// followed by the current period.
func (h *SettlementHandler) Statement(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")
	if partyID == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	statement, err := h.settlementUC.Statement(r.Context(), partyID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
