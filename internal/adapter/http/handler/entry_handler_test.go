package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/domain"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

type entryServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateEntryInput) (*usecase.CreateEntryResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Entry, error)
	listFn   func(ctx context.Context, input usecase.ListEntriesByPartyInput) ([]*domain.Entry, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *entryServiceStub) CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*usecase.CreateEntryResult, error) {
	return s.createFn(ctx, input)
}

func (s *entryServiceStub) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return s.getFn(ctx, id)
}

func (s *entryServiceStub) ListEntriesByParty(ctx context.Context, input usecase.ListEntriesByPartyInput) ([]*domain.Entry, error) {
	return s.listFn(ctx, input)
}

func (s *entryServiceStub) DeleteEntry(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestEntryHandler_Create_Success(t *testing.T) {
	result := &usecase.CreateEntryResult{
		Entry: &domain.Entry{
			ID:      "entry-1",
			PartyID: "party-1",
			Credit:  decimal.NewFromInt(100),
			Balance: decimal.NewFromInt(100),
			Kind:    domain.EntryKindRegular,
		},
	}

	var captured usecase.CreateEntryInput
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*usecase.CreateEntryResult, error) {
			captured = input
			return result, nil
		},
	})

	body, _ := json.Marshal(dto.CreateEntryRequest{
		PartyID: "party-1",
		Credit:  decimal.NewFromInt(100),
		Remarks: "cash received",
	})

	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.PartyID != "party-1" || !captured.Credit.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CreateEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Entry.ID != "entry-1" {
		t.Fatalf("expected entry ID entry-1, got %s", resp.Entry.ID)
	}
	if resp.Commission != nil {
		t.Fatalf("expected no commission entry, got %+v", resp.Commission)
	}
}

func TestEntryHandler_Create_WithCommission(t *testing.T) {
	ref := "entry-1"
	result := &usecase.CreateEntryResult{
		Entry: &domain.Entry{ID: "entry-1", PartyID: "party-1", Credit: decimal.NewFromInt(1000)},
		Commission: &domain.Entry{
			ID:         "entry-2",
			PartyID:    "party-1",
			Credit:     decimal.NewFromInt(25),
			Kind:       domain.EntryKindCommission,
			RefEntryID: &ref,
		},
	}

	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*usecase.CreateEntryResult, error) {
			return result, nil
		},
	})

	body, _ := json.Marshal(dto.CreateEntryRequest{
		PartyID:         "party-1",
		Credit:          decimal.NewFromInt(1000),
		ApplyCommission: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	var resp dto.CreateEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Commission == nil || resp.Commission.ID != "entry-2" {
		t.Fatalf("expected commission entry in response, got %+v", resp.Commission)
	}
	if resp.Commission.Kind != "commission" {
		t.Fatalf("expected commission kind, got %q", resp.Commission.Kind)
	}
}

func TestEntryHandler_Create_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"two sided", domain.ErrTwoSidedEntry, http.StatusBadRequest},
		{"empty", domain.ErrEmptyEntry, http.StatusBadRequest},
		{"party missing", domain.ErrPartyNotFound, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewEntryHandler(&entryServiceStub{
				createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*usecase.CreateEntryResult, error) {
					return nil, tc.err
				},
			})

			body, _ := json.Marshal(dto.CreateEntryRequest{PartyID: "party-1"})
			req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, rec.Code)
			}
		})
	}
}

func TestEntryHandler_Delete_Settled(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrEntrySettled
		},
	})

	req := newRequestWithID(http.MethodDelete, "/entries/entry-1", "entry-1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEntryHandler_ListByParty(t *testing.T) {
	var captured usecase.ListEntriesByPartyInput
	h := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesByPartyInput) ([]*domain.Entry, error) {
			captured = input
			return []*domain.Entry{{ID: "e1"}, {ID: "e2"}}, nil
		},
	})

	req := newRequestWithID(http.MethodGet, "/parties/party-1/entries?limit=2", "party-1")
	rec := httptest.NewRecorder()

	h.ListByParty(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.PartyID != "party-1" || captured.Limit != 2 {
		t.Fatalf("expected party ID and limit to be forwarded, got %+v", captured)
	}

	var resp dto.ListEntriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 2 || resp.Total != 2 {
		t.Fatalf("expected two entries, got %+v", resp)
	}
}
