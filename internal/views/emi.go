package views

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

// EMIView is the EMI tracker screen: summary figures plus every loan
// with its installment schedule and per-installment status.
type EMIView struct {
	Now time.Time
}

func (v EMIView) Render(w io.Writer, emis []models.EMI, summary models.EMISummary) error {
	fmt.Fprintln(w, "EMI Tracker")
	fmt.Fprintf(w, "  Active Loans:        %d\n", summary.TotalActiveLoans)
	fmt.Fprintf(w, "  Total Monthly EMI:   %s\n", Rupees(summary.TotalMonthlyEMI))
	fmt.Fprintf(w, "  Outstanding Amount:  %s\n", Rupees(summary.TotalOutstanding))
	fmt.Fprintf(w, "  Total Paid:          %s\n", Rupees(summary.TotalPaidAmount))
	fmt.Fprintf(w, "  Overdue Payments:    %d\n", summary.OverdueCount)
	fmt.Fprintf(w, "  Upcoming This Month: %d\n", summary.UpcomingThisMonth)

	for _, emi := range emis {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s — %s/month, %d months, total %s",
			emi.LoanName, Rupees(emi.MonthlyAmount), emi.TotalMonths, Rupees(emi.TotalAmount))
		if emi.LenderName != "" {
			fmt.Fprintf(w, " (%s)", emi.LenderName)
		}
		if emi.InterestRate.IsPositive() {
			fmt.Fprintf(w, ", %s%% interest", emi.InterestRate)
		}
		fmt.Fprintln(w)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  #\tDUE DATE\tAMOUNT\tSTATUS\tPAID")
		for _, in := range emi.Installments {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n",
				in.InstallmentNumber, in.DueDate, Rupees(in.Amount),
				v.status(in), v.paidLabel(in))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (v EMIView) status(in models.EMIInstallment) string {
	switch {
	case in.IsPaid:
		return "Paid"
	case aggregate.IsOverdue(in.DueDate, in.IsPaid, v.Now):
		return "Overdue"
	default:
		return "Pending"
	}
}

func (v EMIView) paidLabel(in models.EMIInstallment) string {
	if !in.IsPaid {
		return "-"
	}
	label := Rupees(in.PaidAmount)
	if in.PaidDate != nil {
		label += " on " + in.PaidDate.String()
	}
	return label
}
