package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mjindal/ledgerbook/internal/adapter/http/dto"
	"github.com/mjindal/ledgerbook/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSettlementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPartyHasEntries):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEntrySettled):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotLatestSettlement):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNothingToSettle):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTwoSidedEntry):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyEntry):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingCommissionDirection):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCommissionNotConfigured):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPartyName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCommissionRate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRemarksTooLong):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
