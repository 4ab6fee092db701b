package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// NewLending is the POST /api/lending/add request body.
type NewLending struct {
	BorrowerName       string          `json:"borrowerName"`
	Amount             decimal.Decimal `json:"amount"`
	Purpose            string          `json:"purpose,omitempty"`
	LendDate           models.Date     `json:"lendDate"`
	ExpectedReturnDate *models.Date    `json:"expectedReturnDate,omitempty"`
	Notes              string          `json:"notes,omitempty"`
}

// RepaymentUpdate is the PUT /api/lending/:id request body. The backend
// re-derives the status from the new returned amount.
type RepaymentUpdate struct {
	ReturnedAmount decimal.Decimal `json:"returnedAmount"`
	Notes          string          `json:"notes,omitempty"`
}

// LendingList fetches every lending record.
func (c *Client) LendingList(ctx context.Context) ([]models.LendingRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/lending/list", nil)
	if err != nil {
		return nil, err
	}
	var out []models.LendingRecord
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LendingSummary fetches the server-computed lending summary.
func (c *Client) LendingSummary(ctx context.Context) (*models.LendingSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/lending/summary", nil)
	if err != nil {
		return nil, err
	}
	var out models.LendingSummary
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddLending records newly lent money.
func (c *Client) AddLending(ctx context.Context, l NewLending) (*models.LendingRecord, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/lending/add", l)
	if err != nil {
		return nil, err
	}
	var out models.LendingRecord
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLending sets the cumulative returned amount on a record.
func (c *Client) UpdateLending(ctx context.Context, id string, u RepaymentUpdate) (*models.LendingRecord, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/api/lending/"+id, u)
	if err != nil {
		return nil, err
	}
	var out models.LendingRecord
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLending removes a record.
func (c *Client) DeleteLending(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/lending/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
