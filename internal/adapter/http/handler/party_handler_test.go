package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

type partyServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	getFn    func(ctx context.Context, id string) (*domain.Party, error)
	updateFn func(ctx context.Context, input usecase.UpdatePartyInput) (*domain.Party, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

func (s *partyServiceStub) CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
	return s.createFn(ctx, input)
}

func (s *partyServiceStub) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return s.getFn(ctx, id)
}

func (s *partyServiceStub) UpdateParty(ctx context.Context, input usecase.UpdatePartyInput) (*domain.Party, error) {
	return s.updateFn(ctx, input)
}

func (s *partyServiceStub) DeleteParty(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *partyServiceStub) ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
	return s.listFn(ctx, input)
}

func TestPartyHandler_Create_Success(t *testing.T) {
	party := &domain.Party{
		ID:                  "party-1",
		Name:                "Sharma Traders",
		CommissionRate:      decimal.NewFromFloat(2.5),
		CommissionDirection: domain.CommissionTake,
	}

	var captured usecase.CreatePartyInput
	h := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			captured = input
			return party, nil
		},
	})

	body, _ := json.Marshal(dto.CreatePartyRequest{
		Name:                "Sharma Traders",
		CommissionRate:      decimal.NewFromFloat(2.5),
		CommissionDirection: "take",
	})

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Sharma Traders" || captured.CommissionDirection != domain.CommissionTake {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.PartyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "party-1" {
		t.Fatalf("expected party ID party-1, got %s", resp.ID)
	}
}

func TestPartyHandler_Create_InvalidJSON(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			t.Fatal("CreateParty should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_Create_ValidationError(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			return nil, domain.ErrMissingCommissionDirection
		},
	})

	body, _ := json.Marshal(dto.CreatePartyRequest{
		Name:           "No Direction",
		CommissionRate: decimal.NewFromInt(2),
	})
	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_Get_NotFound(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Party, error) {
			return nil, domain.ErrPartyNotFound
		},
	})

	req := newRequestWithID(http.MethodGet, "/parties/missing", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPartyHandler_Update_AppliesPathID(t *testing.T) {
	var captured usecase.UpdatePartyInput
	h := NewPartyHandler(&partyServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdatePartyInput) (*domain.Party, error) {
			captured = input
			return &domain.Party{ID: input.ID, Name: input.Name}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdatePartyRequest{Name: "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/parties/party-7", bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "party-7")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.ID != "party-7" || captured.Name != "Renamed" {
		t.Fatalf("expected path ID and body to be combined, got %+v", captured)
	}
}

func TestPartyHandler_Delete_WithEntries(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrPartyHasEntries
		},
	})

	req := newRequestWithID(http.MethodDelete, "/parties/party-1", "party-1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestPartyHandler_List_PassesNameFilter(t *testing.T) {
	var captured usecase.ListPartiesInput
	h := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
			captured = input
			return []*domain.Party{{ID: "party-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/parties?name=sharma&limit=10&offset=5", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.NameFilter != "sharma" || captured.Limit != 10 || captured.Offset != 5 {
		t.Fatalf("expected query params to be forwarded, got %+v", captured)
	}
}

func TestPartyHandler_List_ServiceError(t *testing.T) {
	h := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
			return nil, errors.New("db error")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/parties", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// newRequestWithID builds a request carrying a chi route parameter.
func newRequestWithID(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
