package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SavingsType distinguishes deposits from withdrawals.
type SavingsType string

const (
	SavingsDeposit    SavingsType = "deposit"
	SavingsWithdrawal SavingsType = "withdrawal"
)

func (t SavingsType) Valid() bool {
	return t == SavingsDeposit || t == SavingsWithdrawal
}

// ParseSavingsType resolves an exact savings transaction type.
func ParseSavingsType(s string) (SavingsType, error) {
	t := SavingsType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown savings type %q", s)
	}
	return t, nil
}

// SavingsTransaction is one movement in or out of savings. Unlike
// expense categories, the savings category is free-form text.
type SavingsTransaction struct {
	ID          string          `json:"_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        SavingsType     `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	CreatedAt   Date            `json:"createdAt"`
}

func (t SavingsTransaction) When() Date { return t.Date }

func (t SavingsTransaction) Value() decimal.Decimal { return t.Amount }
