package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"fintrack/internal/api"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/views"
)

func (a *app) expensesView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expenses", flag.ExitOnError)
	category := fs.String("category", "all", "category filter (or 'all')")
	month := fs.String("month", a.now.Month().String(), "month filter (name, 1-12 or 'all')")
	year := fs.Int("year", a.now.Year(), "year filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cat, err := parseCategory(*category)
	if err != nil {
		return err
	}
	m, err := parseMonth(*month)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	expenses, err := a.client.Expenses(ctx)
	if err != nil {
		return err
	}
	view := views.ExpensesView{Category: cat, Month: m, Year: *year, Now: a.now}
	return view.Render(a.out, expenses)
}

func (a *app) expenseCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fintrack expense add|repay|unrepay [flags]")
	}
	switch args[0] {
	case "add":
		return a.addExpense(ctx, args[1:])
	case "repay":
		return a.repayExpense(ctx, args[1:])
	case "unrepay":
		return a.unrepayExpense(ctx, args[1:])
	default:
		return fmt.Errorf("unknown expense subcommand %q", args[0])
	}
}

func (a *app) addExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expense add", flag.ExitOnError)
	desc := fs.String("desc", "", "description")
	amount := fs.String("amount", "", "amount")
	category := fs.String("category", "", "category")
	method := fs.String("method", "self", "payment method (self, lent, credit-card)")
	date := fs.String("date", "", "date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *desc == "" || *amount == "" || *category == "" {
		return fmt.Errorf("-desc, -amount and -category are required")
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}
	cat, ok := models.MatchCategory(*category)
	if !ok {
		return fmt.Errorf("unknown category %q (want one of %v)", *category, models.Categories())
	}
	pm, ok := models.MatchPaymentMethod(*method)
	if !ok {
		return fmt.Errorf("unknown payment method %q (want one of %v)", *method, models.PaymentMethods())
	}
	when, err := a.parseDate(*date)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	created, err := a.client.AddExpense(ctx, api.NewExpense{
		Description:   *desc,
		Amount:        value,
		Category:      cat,
		PaymentMethod: pm,
		Date:          when,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added expense #%d: %s %s (%s)\n",
		created.ID, created.Description, views.Rupees(created.Amount), created.Kind().Label())
	return nil
}

func (a *app) repayExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expense repay", flag.ExitOnError)
	id := fs.Int64("id", 0, "expense id")
	amount := fs.String("amount", "", "repaid amount (default: full)")
	date := fs.String("date", "", "repayment date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	var repaid *decimal.Decimal
	if *amount != "" {
		value, err := parseAmount(*amount)
		if err != nil {
			return err
		}
		repaid = &value
	}
	when, err := a.parseDate(*date)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	updated, err := a.client.Repay(ctx, *id, repaid, when)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense #%d marked repaid (%s)\n", updated.ID, views.Rupees(updated.RepaidAmount))
	return nil
}

func (a *app) unrepayExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expense unrepay", flag.ExitOnError)
	id := fs.Int64("id", 0, "expense id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.client.ClearRepayment(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Repayment cleared on expense #%d\n", *id)
	return nil
}

func (a *app) sheetView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	month := fs.String("month", a.now.Month().String(), "month (name or 1-12)")
	year := fs.Int("year", a.now.Year(), "year")
	mailTo := fs.String("email", "", "mail the sheet to this address instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	m, err := parseMonth(*month)
	if err != nil {
		return err
	}
	if m == 0 {
		return fmt.Errorf("the monthly sheet needs a specific month")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	expenses, err := a.client.Expenses(ctx)
	if err != nil {
		return err
	}
	sheet := views.MonthlySheet{Month: m, Year: *year}

	if *mailTo == "" {
		return sheet.Render(a.out, expenses)
	}
	var body bytes.Buffer
	if err := sheet.Render(&body, expenses); err != nil {
		return err
	}
	sender := report.NewSender(a.cfg, a.log)
	return sender.SendMonthlySheet(*mailTo, sheet.Title(), body.String())
}

// watchSheet re-fetches and re-renders the current monthly sheet on the
// configured cron schedule until interrupted.
func (a *app) watchSheet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	schedule := fs.String("schedule", a.cfg.WatchSchedule, "cron schedule")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	// Each tick reads the clock anew: a watch running past a month
	// boundary must roll over to the new month's sheet.
	render := func() { a.renderCurrentSheet(ctx, time.Now()) }
	render()

	c := cron.New()
	if _, err := c.AddFunc(*schedule, render); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", *schedule, err)
	}
	a.log.Infof("Watching monthly sheet (%s)", *schedule)
	c.Run()
	return nil
}

// renderCurrentSheet renders the sheet for the month of now.
func (a *app) renderCurrentSheet(ctx context.Context, now time.Time) {
	expenses, err := a.client.Expenses(ctx)
	if err != nil {
		a.report(err)
		return
	}
	sheet := views.MonthlySheet{Month: now.Month(), Year: now.Year()}
	if err := sheet.Render(a.out, expenses); err != nil {
		a.log.Errorf("Failed to render sheet: %v", err)
	}
}
