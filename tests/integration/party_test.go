package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

func TestPartyAPI(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("create party", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		req := dto.CreatePartyRequest{
			Name:                "Sharma Traders",
			Phone:               "9876543210",
			CommissionRate:      decimal.NewFromFloat(2.5),
			CommissionDirection: "take",
			OpeningBalance:      decimal.NewFromInt(500),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/parties/", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ID == "" {
			t.Fatal("expected party ID to be assigned")
		}
		if !resp.OpeningBalance.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected opening balance 500, got %s", resp.OpeningBalance)
		}
	})

	t.Run("create party with rate but no direction", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		req := dto.CreatePartyRequest{
			Name:           "No Direction",
			CommissionRate: decimal.NewFromInt(2),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/parties/", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list parties filters by name", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		env.DB.CreateTestParty(ctx, "Sharma Traders")
		env.DB.CreateTestParty(ctx, "Gupta Textiles")

		r := httptest.NewRequest(http.MethodGet, "/api/v1/parties/?name=sharma", nil)
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ListPartiesResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Parties) != 1 || resp.Parties[0].Name != "Sharma Traders" {
			t.Fatalf("expected only Sharma Traders, got %+v", resp.Parties)
		}
	})

	t.Run("update keeps opening balance", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestPartyWithOpeningBalance(ctx, "Fixed Opening", decimal.NewFromInt(250))

		req := dto.UpdatePartyRequest{Name: "Renamed"}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPut, "/api/v1/parties/"+party.ID, bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Name != "Renamed" {
			t.Fatalf("expected renamed party, got %q", resp.Name)
		}
		if !resp.OpeningBalance.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected opening balance unchanged, got %s", resp.OpeningBalance)
		}
	})

	t.Run("delete party with entries rejected", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Busy Party")

		_, err := env.EntryUC.CreateEntry(ctx, usecase.CreateEntryInput{
			PartyID: party.ID,
			Credit:  decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/parties/"+party.ID, nil)
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete empty party", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Empty Party")

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/parties/"+party.ID, nil)
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}

		r2 := httptest.NewRequest(http.MethodGet, "/api/v1/parties/"+party.ID, nil)
		w2 := httptest.NewRecorder()
		env.Router.ServeHTTP(w2, r2)

		if w2.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w2.Code)
		}
	})
}
