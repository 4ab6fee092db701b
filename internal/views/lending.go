package views

import (
	"fmt"
	"io"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

// LendingView is the lending tracker screen. Status filters on the
// recomputed status; empty means every record.
type LendingView struct {
	Status models.LendingStatus
}

func (v LendingView) Render(w io.Writer, records []models.LendingRecord, summary models.LendingSummary) error {
	stillPending := summary.StatusCounts.Pending + summary.StatusCounts.PartiallyReturned

	fmt.Fprintln(w, "Lending Tracker")
	fmt.Fprintf(w, "  Total Lent:      %s  (%d records)\n", Rupees(summary.TotalLent), summary.TotalRecords)
	fmt.Fprintf(w, "  Total Returned:  %s\n", Rupees(summary.TotalReturned))
	fmt.Fprintf(w, "  Pending Amount:  %s  (%d pending)\n", Rupees(summary.PendingAmount), stillPending)
	fmt.Fprintln(w)

	filtered := records
	if v.Status != "" {
		filtered = aggregate.FilterByStatus(records, v.Status)
	}
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No lending records found")
		return nil
	}

	fmt.Fprintf(w, "Lending Records (%d)\n", len(filtered))
	for _, r := range filtered {
		fmt.Fprintf(w, "  %s — %s [%s]\n", r.BorrowerName, Rupees(r.Amount), r.CurrentStatus().Label())
		if r.Purpose != "" {
			fmt.Fprintf(w, "    Purpose: %s\n", r.Purpose)
		}
		fmt.Fprintf(w, "    Lent: %s", r.LendDate)
		if r.ExpectedReturnDate != nil {
			fmt.Fprintf(w, ", expected back: %s", *r.ExpectedReturnDate)
		}
		fmt.Fprintln(w)
		if r.ReturnedAmount.IsPositive() {
			fmt.Fprintf(w, "    Returned: %s\n", Rupees(r.ReturnedAmount))
		}
		if r.Outstanding().IsPositive() {
			fmt.Fprintf(w, "    Pending: %s\n", Rupees(r.Outstanding()))
		}
		if r.Notes != "" {
			fmt.Fprintf(w, "    Notes: %s\n", r.Notes)
		}
	}
	return nil
}
