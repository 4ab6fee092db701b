package views

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRupees(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999", "₹999.00"},
		{"1000", "₹1,000.00"},
		{"100000", "₹1,00,000.00"},
		{"1234567.5", "₹12,34,567.50"},
		{"12345678", "₹1,23,45,678.00"},
		{"-1234.56", "-₹1,234.56"},
		{"0.1", "₹0.10"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.input)
		if got := Rupees(d); got != tt.want {
			t.Errorf("Rupees(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
