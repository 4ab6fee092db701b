package views

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

// SavingsView is the savings tracker screen: balance summary, monthly
// buckets and the transaction list. Type filters deposits or
// withdrawals; MonthKey filters on a YYYY-MM label. Both empty means
// everything.
type SavingsView struct {
	Type     models.SavingsType
	MonthKey string
}

func (v SavingsView) Render(w io.Writer, txs []models.SavingsTransaction, summary models.SavingsSummary, monthly []models.MonthlySavings) error {
	fmt.Fprintln(w, "Savings Tracker")
	fmt.Fprintf(w, "  Total Deposits:    %s\n", Rupees(summary.TotalDeposits))
	fmt.Fprintf(w, "  Total Withdrawals: %s\n", Rupees(summary.TotalWithdrawals))
	fmt.Fprintf(w, "  Balance:           %s  (%d transactions)\n", Rupees(summary.Balance), summary.TransactionCount)
	fmt.Fprintln(w)

	if len(monthly) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MONTH\tDEPOSITS\tWITHDRAWALS\tNET")
		for _, m := range monthly {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				m.Month, Rupees(m.Deposits), Rupees(m.Withdrawals), Rupees(m.Net))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	filtered := txs
	if v.Type != "" {
		filtered = aggregate.FilterByType(filtered, v.Type)
	}
	if v.MonthKey != "" {
		kept := make([]models.SavingsTransaction, 0, len(filtered))
		for _, tx := range filtered {
			if tx.Date.Format("2006-01") == v.MonthKey {
				kept = append(kept, tx)
			}
		}
		filtered = kept
	}
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No savings transactions found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, tx := range filtered {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Type, tx.Description, tx.Category, Rupees(tx.Amount))
	}
	return tw.Flush()
}
