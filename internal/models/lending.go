package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LendingStatus classifies how much of a lent amount has come back.
type LendingStatus string

const (
	LendingPending           LendingStatus = "pending"
	LendingPartiallyReturned LendingStatus = "partially_returned"
	LendingFullyReturned     LendingStatus = "fully_returned"
)

func LendingStatuses() []LendingStatus {
	return []LendingStatus{LendingPending, LendingPartiallyReturned, LendingFullyReturned}
}

func (s LendingStatus) Valid() bool {
	switch s {
	case LendingPending, LendingPartiallyReturned, LendingFullyReturned:
		return true
	}
	return false
}

// Label returns the human-readable name ("partially_returned" -> "Partially Returned").
func (s LendingStatus) Label() string {
	return titleWords(strings.ReplaceAll(string(s), "_", " "))
}

// ParseLendingStatus resolves an exact status value.
func ParseLendingStatus(s string) (LendingStatus, error) {
	v := LendingStatus(strings.ReplaceAll(normalize(s), " ", "_"))
	if !v.Valid() {
		return "", fmt.Errorf("unknown lending status %q", s)
	}
	return v, nil
}

// DeriveLendingStatus is the single source of truth for status labels:
// a status is never trusted as stored, it is recomputed from the
// returned amount wherever one is needed.
func DeriveLendingStatus(amount, returned decimal.Decimal) LendingStatus {
	switch {
	case returned.LessThanOrEqual(decimal.Zero):
		return LendingPending
	case returned.LessThan(amount):
		return LendingPartiallyReturned
	default:
		return LendingFullyReturned
	}
}

// LendingRecord tracks money lent to a third party, with partial, zero
// or full return recorded independently of expense repayment.
type LendingRecord struct {
	ID                 string          `json:"_id"`
	BorrowerName       string          `json:"borrowerName"`
	Amount             decimal.Decimal `json:"amount"`
	Purpose            string          `json:"purpose,omitempty"`
	LendDate           Date            `json:"lendDate"`
	ExpectedReturnDate *Date           `json:"expectedReturnDate,omitempty"`
	Status             LendingStatus   `json:"status"`
	ReturnedAmount     decimal.Decimal `json:"returnedAmount"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          Date            `json:"createdAt"`
}

// CurrentStatus recomputes the status from the amounts, ignoring the
// stored label.
func (l LendingRecord) CurrentStatus() LendingStatus {
	return DeriveLendingStatus(l.Amount, l.ReturnedAmount)
}

// Outstanding is the amount still with the borrower.
func (l LendingRecord) Outstanding() decimal.Decimal {
	return l.Amount.Sub(l.ReturnedAmount)
}

func (l LendingRecord) When() Date { return l.LendDate }

func (l LendingRecord) Value() decimal.Decimal { return l.Amount }
