package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSettlement_Balances(t *testing.T) {
	s := Settlement{
		OpeningBalance: decimal.NewFromInt(100),
		ClosingBalance: decimal.NewFromInt(-40),
		EntryCount:     3,
	}

	if !s.ClosingBalance.Sub(s.OpeningBalance).Equal(decimal.NewFromInt(-140)) {
		t.Errorf("unexpected period delta: %s", s.ClosingBalance.Sub(s.OpeningBalance))
	}
}
