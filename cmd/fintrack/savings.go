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

func (a *app) savingsView(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("savings", flag.ExitOnError)
	txType := fs.String("type", "", "transaction type filter (deposit or withdrawal)")
	month := fs.String("month", "", "month filter (YYYY-MM)")
	remote := fs.Bool("remote", false, "use the server-computed summary and month buckets")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var filter models.SavingsType
	if *txType != "" {
		parsed, err := models.ParseSavingsType(*txType)
		if err != nil {
			return err
		}
		filter = parsed
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	txs, err := a.client.SavingsTransactions(ctx)
	if err != nil {
		return err
	}
	summary := aggregate.SavingsSummary(txs)
	monthly := aggregate.GroupByMonth(txs)
	if *remote {
		s, err := a.client.SavingsSummary(ctx)
		if err != nil {
			return err
		}
		summary = *s
		if monthly, err = a.client.SavingsMonthly(ctx); err != nil {
			return err
		}
	}
	view := views.SavingsView{Type: filter, MonthKey: *month}
	return view.Render(a.out, txs, summary, monthly)
}

func (a *app) savingCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: fintrack saving add|delete [flags]")
	}
	switch args[0] {
	case "add":
		return a.addSavings(ctx, args[1:])
	case "delete":
		return a.deleteSavings(ctx, args[1:])
	default:
		return fmt.Errorf("unknown saving subcommand %q", args[0])
	}
}

func (a *app) addSavings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("saving add", flag.ExitOnError)
	amount := fs.String("amount", "", "amount")
	txType := fs.String("type", "deposit", "transaction type (deposit or withdrawal)")
	desc := fs.String("desc", "", "description")
	category := fs.String("category", "General", "free-form category")
	date := fs.String("date", "", "date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *amount == "" || *desc == "" {
		return fmt.Errorf("-amount and -desc are required")
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}
	parsed, err := models.ParseSavingsType(*txType)
	if err != nil {
		return err
	}
	when, err := a.parseDate(*date)
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	created, err := a.client.AddSavings(ctx, api.NewSavingsTransaction{
		Amount:      value,
		Type:        parsed,
		Description: *desc,
		Category:    *category,
		Date:        when,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded %s of %s: %s\n", created.Type, views.Rupees(created.Amount), created.Description)
	return nil
}

func (a *app) deleteSavings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("saving delete", flag.ExitOnError)
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.client.DeleteSavings(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted savings transaction %s\n", *id)
	return nil
}
