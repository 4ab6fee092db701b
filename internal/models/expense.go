package models

import "github.com/shopspring/decimal"

// Expense represents a single logged expense as owned by the backend.
// Records are read-mostly: the client never mutates one except by
// replacing it with a confirmed server response.
type Expense struct {
	ID            int64           `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      Category        `json:"category"`
	Date          Date            `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	IsRepaid      bool            `json:"isRepaid,omitempty"`
	RepaidAmount  decimal.Decimal `json:"repaidAmount"`
}

// Method returns the payment method, defaulting absent values to "self".
// Older records predate the paymentMethod field.
func (e Expense) Method() PaymentMethod {
	if e.PaymentMethod == "" {
		return MethodSelf
	}
	return e.PaymentMethod
}

// Kind returns the category, defaulting absent values to "other".
func (e Expense) Kind() Category {
	if e.Category == "" {
		return CategoryOther
	}
	return e.Category
}

func (e Expense) When() Date { return e.Date }

func (e Expense) Value() decimal.Decimal { return e.Amount }
