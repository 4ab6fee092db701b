package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// NewSavingsTransaction is the POST /api/savings/add request body.
type NewSavingsTransaction struct {
	Amount      decimal.Decimal    `json:"amount"`
	Type        models.SavingsType `json:"type"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Date        models.Date        `json:"date"`
}

// SavingsTransactions fetches every savings transaction.
func (c *Client) SavingsTransactions(ctx context.Context) ([]models.SavingsTransaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/savings/transactions", nil)
	if err != nil {
		return nil, err
	}
	var out []models.SavingsTransaction
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SavingsSummary fetches the server-computed balance summary.
func (c *Client) SavingsSummary(ctx context.Context) (*models.SavingsSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/savings/summary", nil)
	if err != nil {
		return nil, err
	}
	var out models.SavingsSummary
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SavingsMonthly fetches the server-computed month buckets.
func (c *Client) SavingsMonthly(ctx context.Context) ([]models.MonthlySavings, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/savings/monthly", nil)
	if err != nil {
		return nil, err
	}
	var out []models.MonthlySavings
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSavings records a deposit or withdrawal.
func (c *Client) AddSavings(ctx context.Context, t NewSavingsTransaction) (*models.SavingsTransaction, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/savings/add", t)
	if err != nil {
		return nil, err
	}
	var out models.SavingsTransaction
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSavings removes a transaction.
func (c *Client) DeleteSavings(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/savings/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
