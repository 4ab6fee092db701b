package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

var march2024 = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{
			ID:          1,
			Description: "groceries",
			Amount:      decimal.NewFromInt(1500),
			Category:    models.CategoryFood,
			Date:        models.NewDate(2024, time.March, 5),
		},
		{
			ID:            2,
			Description:   "cab for a friend",
			Amount:        decimal.NewFromInt(350),
			Category:      models.CategoryTransport,
			Date:          models.NewDate(2024, time.March, 12),
			PaymentMethod: models.MethodLent,
		},
		{
			ID:          3,
			Description: "electricity",
			Amount:      decimal.NewFromInt(2000),
			Category:    models.CategoryUtilities,
			Date:        models.NewDate(2024, time.February, 28),
		},
	}
}

func TestExpensesViewRender(t *testing.T) {
	var buf bytes.Buffer
	v := ExpensesView{
		Category: aggregate.CategoryAll,
		Month:    time.March,
		Year:     2024,
		Now:      march2024,
	}
	if err := v.Render(&buf, sampleExpenses()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Monthly Comparison",
		"Current Month:   ₹1,850.00  (2 expenses)",
		"Previous Month:  ₹2,000.00  (1 expenses)",
		"This Year Total: ₹3,850.00  (3 expenses)",
		"Expense Summary (March 2024)",
		"Total: ₹1,850.00",
		"groceries",
		"cab for a friend",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "electricity") {
		t.Errorf("the February record should not be listed in March:\n%s", out)
	}
}

func TestExpensesViewPreviousMonthAtMonthEnd(t *testing.T) {
	// On day 31 the previous month must still be February, not a
	// renormalized "Feb 31" that lands back in March.
	var buf bytes.Buffer
	v := ExpensesView{
		Category: aggregate.CategoryAll,
		Month:    time.March,
		Year:     2024,
		Now:      time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC),
	}
	if err := v.Render(&buf, sampleExpenses()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "Previous Month:  ₹2,000.00  (1 expenses)") {
		t.Errorf("previous month should be February's total:\n%s", buf.String())
	}
}

func TestExpensesViewPreviousMonthAcrossYear(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Description: "fireworks", Amount: decimal.NewFromInt(900),
			Category: models.CategoryEntertainment, Date: models.NewDate(2023, time.December, 30)},
	}
	var buf bytes.Buffer
	v := ExpensesView{
		Category: aggregate.CategoryAll,
		Month:    time.January,
		Year:     2024,
		Now:      time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := v.Render(&buf, expenses); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "Previous Month:  ₹900.00  (1 expenses)") {
		t.Errorf("previous month of January should be December of the prior year:\n%s", buf.String())
	}
}

func TestExpensesViewEmpty(t *testing.T) {
	var buf bytes.Buffer
	v := ExpensesView{
		Category: models.CategoryEntertainment,
		Month:    time.March,
		Year:     2024,
		Now:      march2024,
	}
	if err := v.Render(&buf, sampleExpenses()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No expenses found for the selected filters.") {
		t.Errorf("expected the empty-state line, got:\n%s", buf.String())
	}
}

func TestMonthlySheetRender(t *testing.T) {
	var buf bytes.Buffer
	v := MonthlySheet{Month: time.March, Year: 2024}
	if err := v.Render(&buf, sampleExpenses()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Monthly Expense Sheet — March 2024",
		"Payment Method Breakdown",
		"Self",
		"Lent",
		"Credit Card",
		"TOTAL",
		"₹1,850.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMonthlySheetEmpty(t *testing.T) {
	var buf bytes.Buffer
	v := MonthlySheet{Month: time.June, Year: 2024}
	if err := v.Render(&buf, sampleExpenses()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No expenses found for June 2024") {
		t.Errorf("expected the empty-state line, got:\n%s", buf.String())
	}
}
