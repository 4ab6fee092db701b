package models

import "github.com/shopspring/decimal"

// EMI represents an installment loan with its server-generated schedule.
// The backend owns schedule generation; installments arrive already
// numbered 1..TotalMonths with monotonically increasing due dates.
type EMI struct {
	ID            string           `json:"_id"`
	LoanName      string           `json:"loanName"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	MonthlyAmount decimal.Decimal  `json:"monthlyAmount"`
	TotalMonths   int              `json:"totalMonths"`
	StartDate     Date             `json:"startDate"`
	EndDate       Date             `json:"endDate"`
	InterestRate  decimal.Decimal  `json:"interestRate"`
	LenderName    string           `json:"lenderName,omitempty"`
	Description   string           `json:"description,omitempty"`
	IsActive      bool             `json:"isActive"`
	Installments  []EMIInstallment `json:"installments"`
	CreatedAt     Date             `json:"createdAt"`
}

// EMIInstallment is one scheduled payment unit of an EMI loan.
type EMIInstallment struct {
	InstallmentNumber int             `json:"installmentNumber"`
	DueDate           Date            `json:"dueDate"`
	Amount            decimal.Decimal `json:"amount"`
	IsPaid            bool            `json:"isPaid"`
	PaidDate          *Date           `json:"paidDate,omitempty"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
}
