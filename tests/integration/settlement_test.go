package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/usecase"
)

func TestSettlementAPI(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	addEntry := func(t *testing.T, partyID string, credit, debit int64) {
		t.Helper()

		input := usecase.CreateEntryInput{PartyID: partyID}
		if credit > 0 {
			input.Credit = decimal.NewFromInt(credit)
		}
		if debit > 0 {
			input.Debit = decimal.NewFromInt(debit)
		}
		if _, err := env.EntryUC.CreateEntry(ctx, input); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	settle := func(t *testing.T, partyID, note string) dto.SettlementResponse {
		t.Helper()

		r := httptest.NewRequest(http.MethodPost, "/api/v1/parties/"+partyID+"/settlements", strings.NewReader(`{"note":"`+note+`"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.SettlementResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp
	}

	t.Run("settle freezes current entries", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Monday Final")
		addEntry(t, party.ID, 100, 0)
		addEntry(t, party.ID, 0, 30)

		resp := settle(t, party.ID, "first final")

		if !resp.ClosingBalance.Equal(decimal.NewFromInt(70)) {
			t.Fatalf("expected closing balance 70, got %s", resp.ClosingBalance)
		}
		if resp.EntryCount != 2 {
			t.Fatalf("expected 2 settled entries, got %d", resp.EntryCount)
		}

		// Current period is now empty
		entries, err := env.EntryUC.ListEntriesByParty(ctx, usecase.ListEntriesByPartyInput{PartyID: party.ID})
		if err != nil {
			t.Fatalf("failed to list entries: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected empty current period, got %d entries", len(entries))
		}
	})

	t.Run("settle with nothing to settle", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Nothing To Settle")

		r := httptest.NewRequest(http.MethodPost, "/api/v1/parties/"+party.ID+"/settlements", http.NoBody)
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("settlements chain opening balances", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Chained")
		addEntry(t, party.ID, 100, 0)
		first := settle(t, party.ID, "week one")

		addEntry(t, party.ID, 0, 10)
		second := settle(t, party.ID, "week two")

		if !second.OpeningBalance.Equal(first.ClosingBalance) {
			t.Fatalf("expected second settlement to open at %s, got %s", first.ClosingBalance, second.OpeningBalance)
		}
		if !second.ClosingBalance.Equal(decimal.NewFromInt(90)) {
			t.Fatalf("expected closing balance 90, got %s", second.ClosingBalance)
		}
	})

	t.Run("undo restores current period", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Undoable")
		addEntry(t, party.ID, 100, 0)
		resp := settle(t, party.ID, "to undo")

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/settlements/"+resp.ID, nil)
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}

		entries, err := env.EntryUC.ListEntriesByParty(ctx, usecase.ListEntriesByPartyInput{PartyID: party.ID})
		if err != nil {
			t.Fatalf("failed to list entries: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected entry back in current period, got %d", len(entries))
		}
	})

	t.Run("only latest settlement can be undone", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestParty(ctx, "Ordered Undo")
		addEntry(t, party.ID, 100, 0)
		first := settle(t, party.ID, "older")

		addEntry(t, party.ID, 0, 20)
		settle(t, party.ID, "newer")

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/settlements/"+first.ID, nil)
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("statement shows periods and current", func(t *testing.T) {
		env.DB.TruncateAll(ctx)

		party := env.DB.CreateTestPartyWithOpeningBalance(ctx, "Statement", decimal.NewFromInt(50))
		addEntry(t, party.ID, 100, 0)
		settle(t, party.ID, "week one")
		addEntry(t, party.ID, 0, 25)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/parties/"+party.ID+"/statement", nil)
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.StatementResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if len(resp.Periods) != 1 {
			t.Fatalf("expected one settled period, got %d", len(resp.Periods))
		}
		if len(resp.Current) != 1 {
			t.Fatalf("expected one current entry, got %d", len(resp.Current))
		}
		if !resp.ClosingBalance.Equal(decimal.NewFromInt(125)) {
			t.Fatalf("expected closing balance 125, got %s", resp.ClosingBalance)
		}
	})
}
