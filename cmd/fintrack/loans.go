package main

import (
	"context"
	"flag"
	"fmt"

	"fintrack/internal/aggregate"
	"fintrack/internal/api"
	"fintrack/internal/models"
	"fintrack/internal/views"
)

func (a *app) emisView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("emis", flag.ExitOnError)
	remote := fs.Bool("remote", false, "use the server-computed summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	emis, err := a.client.EMIs(ctx)
	if err != nil {
		return err
	}
	summary := aggregate.EMISummary(emis, a.now)
	if *remote {
		s, err := a.client.EMISummary(ctx)
		if err != nil {
			return err
		}
		summary = *s
	}
	view := views.EMIView{Now: a.now}
	return view.Render(a.out, emis, summary)
}

func (a *app) emiCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fintrack emi add|pay|unpay [flags]")
	}
	switch args[0] {
	case "add":
		return a.addEMI(ctx, args[1:])
	case "pay":
		return a.payInstallment(ctx, args[1:])
	case "unpay":
		return a.unpayInstallment(ctx, args[1:])
	default:
		return fmt.Errorf("unknown emi subcommand %q", args[0])
	}
}

func (a *app) addEMI(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("emi add", flag.ExitOnError)
	name := fs.String("name", "", "loan name")
	total := fs.String("total", "", "total loan amount")
	monthly := fs.String("monthly", "", "monthly installment amount")
	months := fs.Int("months", 0, "number of installments")
	start := fs.String("start", "", "first due date (YYYY-MM-DD, default today)")
	rate := fs.String("rate", "0", "interest rate percent")
	lender := fs.String("lender", "", "lender name")
	desc := fs.String("desc", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *total == "" || *monthly == "" || *months <= 0 {
		return fmt.Errorf("-name, -total, -monthly and -months are required")
	}

	totalAmount, err := parseAmount(*total)
	if err != nil {
		return err
	}
	monthlyAmount, err := parseAmount(*monthly)
	if err != nil {
		return err
	}
	interest, err := decimalFlag(*rate)
	if err != nil {
		return err
	}
	startDate, err := a.parseDate(*start)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	created, err := a.client.AddEMI(ctx, api.NewEMI{
		LoanName:      *name,
		TotalAmount:   totalAmount,
		MonthlyAmount: monthlyAmount,
		TotalMonths:   *months,
		StartDate:     startDate,
		InterestRate:  interest,
		LenderName:    *lender,
		Description:   *desc,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added loan %s: %s/month for %d months\n",
		created.LoanName, views.Rupees(created.MonthlyAmount), created.TotalMonths)
	return nil
}

func (a *app) payInstallment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("emi pay", flag.ExitOnError)
	id := fs.String("id", "", "loan id")
	n := fs.Int("n", 0, "installment number")
	amount := fs.String("amount", "", "paid amount (default: the installment amount)")
	date := fs.String("date", "", "payment date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *n <= 0 {
		return fmt.Errorf("-id and -n are required")
	}
	when, err := a.parseDate(*date)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	paid, err := decimalFlag(*amount)
	if err != nil {
		return err
	}
	if *amount == "" {
		in, err := a.findInstallment(ctx, *id, *n)
		if err != nil {
			return err
		}
		paid = in.Amount
	}
	if err := a.client.PayInstallment(ctx, *id, *n, paid, when); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Installment %d paid (%s)\n", *n, views.Rupees(paid))
	return nil
}

func (a *app) unpayInstallment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("emi unpay", flag.ExitOnError)
	id := fs.String("id", "", "loan id")
	n := fs.Int("n", 0, "installment number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *n <= 0 {
		return fmt.Errorf("-id and -n are required")
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.client.UnpayInstallment(ctx, *id, *n); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Installment %d reverted to pending\n", *n)
	return nil
}

func (a *app) findInstallment(ctx context.Context, emiID string, n int) (*models.EMIInstallment, error) {
	emis, err := a.client.EMIs(ctx)
	if err != nil {
		return nil, err
	}
	for _, emi := range emis {
		if emi.ID != emiID {
			continue
		}
		for _, in := range emi.Installments {
			if in.InstallmentNumber == n {
				return &in, nil
			}
		}
		return nil, fmt.Errorf("loan %s has no installment %d", emiID, n)
	}
	return nil, fmt.Errorf("no loan with id %s", emiID)
}

func (a *app) lendingView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lending", flag.ExitOnError)
	status := fs.String("status", "", "status filter (pending, partially_returned, fully_returned)")
	remote := fs.Bool("remote", false, "use the server-computed summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var filter models.LendingStatus
	if *status != "" {
		parsed, err := models.ParseLendingStatus(*status)
		if err != nil {
			return err
		}
		filter = parsed
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	records, err := a.client.LendingList(ctx)
	if err != nil {
		return err
	}
	summary := aggregate.LendingSummary(records)
	if *remote {
		s, err := a.client.LendingSummary(ctx)
		if err != nil {
			return err
		}
		summary = *s
	}
	view := views.LendingView{Status: filter}
	return view.Render(a.out, records, summary)
}

func (a *app) lendCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fintrack lend add|update|delete [flags]")
	}
	switch args[0] {
	case "add":
		return a.addLending(ctx, args[1:])
	case "update":
		return a.updateLending(ctx, args[1:])
	case "delete":
		return a.deleteLending(ctx, args[1:])
	default:
		return fmt.Errorf("unknown lend subcommand %q", args[0])
	}
}

func (a *app) addLending(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lend add", flag.ExitOnError)
	borrower := fs.String("borrower", "", "borrower name")
	amount := fs.String("amount", "", "amount lent")
	purpose := fs.String("purpose", "", "purpose")
	date := fs.String("date", "", "lend date (YYYY-MM-DD, default today)")
	expected := fs.String("expected", "", "expected return date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *borrower == "" || *amount == "" {
		return fmt.Errorf("-borrower and -amount are required")
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}
	lendDate, err := a.parseDate(*date)
	if err != nil {
		return err
	}
	var expectedDate *models.Date
	if *expected != "" {
		d, err := a.parseDate(*expected)
		if err != nil {
			return err
		}
		expectedDate = &d
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	created, err := a.client.AddLending(ctx, api.NewLending{
		BorrowerName:       *borrower,
		Amount:             value,
		Purpose:            *purpose,
		LendDate:           lendDate,
		ExpectedReturnDate: expectedDate,
		Notes:              *notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Lent %s to %s\n", views.Rupees(created.Amount), created.BorrowerName)
	return nil
}

func (a *app) updateLending(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lend update", flag.ExitOnError)
	id := fs.String("id", "", "record id")
	returned := fs.String("returned", "", "total returned amount so far")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *returned == "" {
		return fmt.Errorf("-id and -returned are required")
	}
	value, err := decimalFlag(*returned)
	if err != nil {
		return err
	}
	if value.IsNegative() {
		return fmt.Errorf("returned amount cannot be negative")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	updated, err := a.client.UpdateLending(ctx, *id, api.RepaymentUpdate{
		ReturnedAmount: value,
		Notes:          *notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s has returned %s of %s (%s)\n",
		updated.BorrowerName, views.Rupees(updated.ReturnedAmount),
		views.Rupees(updated.Amount), updated.CurrentStatus().Label())
	return nil
}

func (a *app) deleteLending(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lend delete", flag.ExitOnError)
	id := fs.String("id", "", "record id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.client.DeleteLending(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted lending record %s\n", *id)
	return nil
}
