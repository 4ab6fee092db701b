// Package views renders one canonical text view per entity type. Views
// are given already-fetched records and recompute their figures through
// the aggregator; they never talk to the backend themselves.
package views

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rupees formats an amount in Indian rupees to two decimals with en-IN
// digit grouping: the last three integer digits, then groups of two
// (1234567.5 -> "₹12,34,567.50").
func Rupees(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "₹" + groupIndian(intPart) + "." + frac
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	groups := []string{tail}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",")
}
