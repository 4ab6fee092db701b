package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// NewEMI is the POST /api/emis request body. The backend generates the
// installment schedule from it.
type NewEMI struct {
	LoanName      string          `json:"loanName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
	TotalMonths   int             `json:"totalMonths"`
	StartDate     models.Date     `json:"startDate"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	LenderName    string          `json:"lenderName,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// EMIs fetches every loan with its full installment schedule.
func (c *Client) EMIs(ctx context.Context) ([]models.EMI, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/emis", nil)
	if err != nil {
		return nil, err
	}
	var out envelope[[]models.EMI]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.result()
}

// EMISummary fetches the server-computed loan summary.
func (c *Client) EMISummary(ctx context.Context) (*models.EMISummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/emis/summary", nil)
	if err != nil {
		return nil, err
	}
	var out envelope[models.EMISummary]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	summary, err := out.result()
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// AddEMI registers a loan; the backend answers with the stored loan and
// its generated schedule.
func (c *Client) AddEMI(ctx context.Context, e NewEMI) (*models.EMI, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/emis", e)
	if err != nil {
		return nil, err
	}
	var out envelope[models.EMI]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	created, err := out.result()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// PayInstallment marks installment n of a loan as paid.
func (c *Client) PayInstallment(ctx context.Context, emiID string, n int, paidAmount decimal.Decimal, paidDate models.Date) error {
	body := struct {
		PaidAmount decimal.Decimal `json:"paidAmount"`
		PaidDate   models.Date     `json:"paidDate"`
	}{paidAmount, paidDate}
	req, err := c.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("/api/emis/%s/installment/%d/pay", emiID, n), body)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// UnpayInstallment reverts a paid installment to unpaid.
func (c *Client) UnpayInstallment(ctx context.Context, emiID string, n int) error {
	req, err := c.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("/api/emis/%s/installment/%d/unpay", emiID, n), struct{}{})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
