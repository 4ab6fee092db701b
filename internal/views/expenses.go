package views

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

// ExpensesView is the expense tracker screen: a month comparison, a
// category breakdown of the filtered records and the record list.
type ExpensesView struct {
	Category models.Category // aggregate.CategoryAll for every category
	Month    time.Month      // aggregate.MonthAll for every month
	Year     int
	Now      time.Time
}

func (v ExpensesView) Render(w io.Writer, expenses []models.Expense) error {
	now := v.Now
	// Anchor on day 1: subtracting a month from the 29th-31st would
	// normalize into the current month again.
	prev := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)

	thisMonth := aggregate.FilterByPeriod(expenses, now.Month(), now.Year())
	prevMonth := aggregate.FilterByPeriod(expenses, prev.Month(), prev.Year())
	thisYear := aggregate.FilterByPeriod(expenses, aggregate.MonthAll, now.Year())

	fmt.Fprintln(w, "Monthly Comparison")
	fmt.Fprintf(w, "  Current Month:   %s  (%d expenses)\n", Rupees(aggregate.Sum(thisMonth)), len(thisMonth))
	fmt.Fprintf(w, "  Previous Month:  %s  (%d expenses)\n", Rupees(aggregate.Sum(prevMonth)), len(prevMonth))
	fmt.Fprintf(w, "  This Year Total: %s  (%d expenses)\n", Rupees(aggregate.Sum(thisYear)), len(thisYear))
	fmt.Fprintln(w)

	filtered := aggregate.FilterByPeriod(expenses, v.Month, v.Year)
	filtered = aggregate.FilterByCategory(filtered, v.Category)

	fmt.Fprintf(w, "Expense Summary (%s)\n", v.periodLabel())
	fmt.Fprintf(w, "  Total: %s\n", Rupees(aggregate.Sum(filtered)))
	groups := aggregate.GroupByCategory(filtered)
	for _, c := range models.Categories() {
		fmt.Fprintf(w, "  %-18s %s\n", c.Label(), Rupees(groups[c]))
	}
	fmt.Fprintln(w)

	if len(filtered) == 0 {
		fmt.Fprintln(w, "No expenses found for the selected filters.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tCATEGORY\tMETHOD\tAMOUNT")
	for _, e := range filtered {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Date, e.Description, e.Kind().Label(), e.Method().Label(), Rupees(e.Amount))
	}
	return tw.Flush()
}

func (v ExpensesView) periodLabel() string {
	if v.Month == aggregate.MonthAll {
		return fmt.Sprintf("all months %d", v.Year)
	}
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}
