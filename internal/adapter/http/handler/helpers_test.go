package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mjindal/ledgerbook/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"party not found", domain.ErrPartyNotFound, http.StatusNotFound},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"settlement not found", domain.ErrSettlementNotFound, http.StatusNotFound},
		{"party has entries", domain.ErrPartyHasEntries, http.StatusConflict},
		{"entry settled", domain.ErrEntrySettled, http.StatusConflict},
		{"not latest settlement", domain.ErrNotLatestSettlement, http.StatusConflict},
		{"nothing to settle", domain.ErrNothingToSettle, http.StatusUnprocessableEntity},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"two sided entry", domain.ErrTwoSidedEntry, http.StatusBadRequest},
		{"empty entry", domain.ErrEmptyEntry, http.StatusBadRequest},
		{"missing direction", domain.ErrMissingCommissionDirection, http.StatusBadRequest},
		{"invalid party name", domain.ErrInvalidPartyName, http.StatusBadRequest},
		{"wrapped error", errors.Join(domain.ErrPartyNotFound, errors.New("context")), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapDomainError(tc.err); got != tc.expected {
				t.Fatalf("mapDomainError(%v) = %d, expected %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/parties?limit=25&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 50); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 50); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 50); got != 50 {
		t.Fatalf("expected default for non-numeric, got %d", got)
	}
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, http.StatusBadRequest, "invalid request body", "details")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	if body := rec.Body.String(); body == "" {
		t.Fatal("expected error body")
	}
}
