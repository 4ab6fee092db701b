package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// NewExpense is the POST /api/expenses/add_expense request body.
type NewExpense struct {
	Description   string               `json:"description"`
	Amount        decimal.Decimal      `json:"amount"`
	Category      models.Category      `json:"category"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Date          models.Date          `json:"date"`
}

// Expenses fetches every expense of the authenticated user.
func (c *Client) Expenses(ctx context.Context) ([]models.Expense, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/expenses/get_expenses", nil)
	if err != nil {
		return nil, err
	}
	var out []models.Expense
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddExpense creates an expense and returns the record as stored, ID
// assigned by the backend.
func (c *Client) AddExpense(ctx context.Context, e NewExpense) (*models.Expense, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/expenses/add_expense", e)
	if err != nil {
		return nil, err
	}
	var out models.Expense
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Repay marks a lent or credit-card expense as repaid. amount nil means
// "repaid in full"; the backend fills repaidAmount from the expense.
func (c *Client) Repay(ctx context.Context, expenseID int64, amount *decimal.Decimal, date models.Date) (*models.Expense, error) {
	body := struct {
		RepaidAmount  *decimal.Decimal `json:"repaidAmount"`
		RepaymentDate models.Date      `json:"repaymentDate"`
	}{amount, date}
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/repayments/repay/%d", expenseID), body)
	if err != nil {
		return nil, err
	}
	var out models.Expense
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearRepayment reverts a repayment, returning the expense to unpaid.
func (c *Client) ClearRepayment(ctx context.Context, expenseID int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/repayments/repay/%d", expenseID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
