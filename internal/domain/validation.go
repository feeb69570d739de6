package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPartyName      = errors.New("invalid party name")
	ErrInvalidCommissionRate = errors.New("invalid commission rate")
	ErrRemarksTooLong        = errors.New("remarks exceed maximum length")
	ErrAmountTooLarge        = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxPartyNameLength = 255
	MinPartyNameLength = 1
	MaxRemarksLength   = 1024
	MaxEntryAmount     = "1000000000000" // 1 trillion
	MaxCommissionRate  = 100
)

// ValidatePartyName validates a party name.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinPartyNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidPartyName)
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidPartyName, MaxPartyNameLength)
	}

	return nil
}

// ValidateCommissionRate validates a commission percentage.
func ValidateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: rate cannot be negative", ErrInvalidCommissionRate)
	}

	if rate.GreaterThan(decimal.NewFromInt(MaxCommissionRate)) {
		return fmt.Errorf("%w: rate exceeds %d%%", ErrInvalidCommissionRate, MaxCommissionRate)
	}

	return nil
}

// ValidateRemarks validates entry remarks.
func ValidateRemarks(remarks string) error {
	if len(remarks) > MaxRemarksLength {
		return fmt.Errorf("%w: limit is %d characters", ErrRemarksTooLong, MaxRemarksLength)
	}

	return nil
}

// ValidateAmount validates an entry amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxEntryAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
